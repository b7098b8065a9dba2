package handler

import (
	"log/slog"
	"net/http"

	"refboard/internal/delivery/http/response"
	domainerrors "refboard/internal/domain/errors"
	"refboard/internal/usecase"
	"refboard/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// InviteHandlerParams holds dependencies for InviteHandler, injected by Fx.
type InviteHandlerParams struct {
	fx.In

	ReferralUC usecase.ReferralUsecase
	Logger     *slog.Logger
}

// InviteHandler exposes the shareable referral invite endpoints.
type InviteHandler struct {
	referralUC usecase.ReferralUsecase
	logger     *slog.Logger
}

// NewInviteHandler is the constructor for InviteHandler
func NewInviteHandler(params InviteHandlerParams) *InviteHandler {
	return &InviteHandler{
		referralUC: params.ReferralUC,
		logger:     params.Logger,
	}
}

// GetInviteLink handles retrieving the invite link of a profile
func (h *InviteHandler) GetInviteLink(c echo.Context) error {
	invite, err := h.referralUC.GetInvite(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, h.mapInviteError(err))
	}

	return response.Success(c, http.StatusOK, map[string]string{"link": invite.Link}, "Invite link retrieved successfully")
}

// GetInviteQR handles rendering the invite QR code of a profile
func (h *InviteHandler) GetInviteQR(c echo.Context) error {
	invite, err := h.referralUC.GetInvite(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, h.mapInviteError(err))
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Type", "image/png")
	c.Response().Header().Set("Content-Disposition", "inline; filename=invite-qr.png")

	return c.Blob(http.StatusOK, "image/png", invite.QRPNG)
}

// mapInviteError treats any invite failure other than a missing profile as the
// invite service being unavailable.
func (h *InviteHandler) mapInviteError(err error) error {
	if errors.Is(err, impl.ErrProfileNotFound) {
		return domainerrors.ErrProfileNotFound
	}

	h.logger.Warn("Invite generation failed",
		slog.String("error", err.Error()),
	)

	return domainerrors.ErrInviteUnavailable
}
