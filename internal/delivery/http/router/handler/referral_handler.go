package handler

import (
	"log/slog"
	"net/http"

	"refboard/internal/delivery/http/response"
	domainerrors "refboard/internal/domain/errors"
	"refboard/internal/domain/repository"
	"refboard/internal/usecase"
	"refboard/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReferralHandlerParams holds dependencies for ReferralHandler, injected by Fx.
type ReferralHandlerParams struct {
	fx.In

	ReferralUC usecase.ReferralUsecase
	Logger     *slog.Logger
}

// ReferralHandler exposes the referral network read endpoints.
type ReferralHandler struct {
	referralUC usecase.ReferralUsecase
	logger     *slog.Logger
}

// NewReferralHandler is the constructor for ReferralHandler
func NewReferralHandler(params ReferralHandlerParams) *ReferralHandler {
	return &ReferralHandler{
		referralUC: params.ReferralUC,
		logger:     params.Logger,
	}
}

// GetRootProfile handles retrieving the designated network root
func (h *ReferralHandler) GetRootProfile(c echo.Context) error {
	root, err := h.referralUC.GetRootProfile(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, mapReferralError(err))
	}

	return response.Success(c, http.StatusOK, root, "Root profile retrieved successfully")
}

// GetDirectReferrals handles retrieving the direct referrals of a profile
func (h *ReferralHandler) GetDirectReferrals(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("profileId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid profile ID")
	}

	referrals, err := h.referralUC.GetDirectReferrals(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, mapReferralError(err))
	}

	return response.Success(c, http.StatusOK, referrals, "Direct referrals retrieved successfully")
}

// SearchProfiles handles the flat network search
func (h *ReferralHandler) SearchProfiles(c echo.Context) error {
	contact, ok := parseContactFilter(c.QueryParam("whatsapp"))
	if !ok {
		return response.BadRequest(c, "INVALID_FILTER", "whatsapp filter must be all, yes or no")
	}

	profiles, err := h.referralUC.SearchProfiles(c.Request().Context(), c.QueryParam("q"), contact)
	if err != nil {
		return response.HandleAppError(c, mapReferralError(err))
	}

	return response.Success(c, http.StatusOK, profiles, "Profiles retrieved successfully")
}

// ListPlans handles retrieving the plan filter options
func (h *ReferralHandler) ListPlans(c echo.Context) error {
	plans, err := h.referralUC.ListPlanOptions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plans, "Plans retrieved successfully")
}

// parseContactFilter accepts the public filter values, with the empty string
// meaning no narrowing.
func parseContactFilter(raw string) (repository.ContactChannelFilter, bool) {
	switch repository.ContactChannelFilter(raw) {
	case "":
		return repository.ContactChannelAll, true
	case repository.ContactChannelAll, repository.ContactChannelPresent, repository.ContactChannelAbsent:
		return repository.ContactChannelFilter(raw), true
	}

	return "", false
}

// mapReferralError converts use case sentinels into API error responses.
func mapReferralError(err error) error {
	switch {
	case errors.Is(err, impl.ErrRootProfileMissing):
		return domainerrors.ErrRootProfileMissing
	case errors.Is(err, impl.ErrProfileNotFound):
		return domainerrors.ErrProfileNotFound
	}

	return err
}
