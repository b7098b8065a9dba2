package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"
	mockUC "refboard/internal/mocks/usecase"
	"refboard/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestReferralHandler_GetRootProfile(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	handler := &ReferralHandler{referralUC: referralUC, logger: newTestLogger()}

	root := &entity.Profile{ID: uuid.New(), Username: "usuario_master"}
	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(root, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/referrals/root")

	require.NoError(t, handler.GetRootProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "usuario_master")
}

func TestReferralHandler_GetRootProfile_Missing(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	handler := &ReferralHandler{referralUC: referralUC, logger: newTestLogger()}

	referralUC.EXPECT().GetRootProfile(mock.Anything).Return(nil, impl.ErrRootProfileMissing).Once()

	c, rec := newTestContext(http.MethodGet, "/referrals/root")

	require.NoError(t, handler.GetRootProfile(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ROOT_PROFILE_MISSING")
}

func TestReferralHandler_GetDirectReferrals_InvalidID(t *testing.T) {
	handler := &ReferralHandler{referralUC: mockUC.NewMockReferralUsecase(t), logger: newTestLogger()}

	c, rec := newTestContext(http.MethodGet, "/referrals/nope/children")
	c.SetParamNames("profileId")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetDirectReferrals(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReferralHandler_SearchProfiles_ForwardsFilters(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	handler := &ReferralHandler{referralUC: referralUC, logger: newTestLogger()}

	results := []*entity.Profile{{ID: uuid.New(), Username: "maria"}}
	referralUC.EXPECT().
		SearchProfiles(mock.Anything, "maria", repository.ContactChannelPresent).
		Return(results, nil).
		Once()

	c, rec := newTestContext(http.MethodGet, "/referrals/search?q=maria&whatsapp=yes")

	require.NoError(t, handler.SearchProfiles(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "maria")
}

func TestReferralHandler_SearchProfiles_RejectsUnknownFilter(t *testing.T) {
	handler := &ReferralHandler{referralUC: mockUC.NewMockReferralUsecase(t), logger: newTestLogger()}

	c, rec := newTestContext(http.MethodGet, "/referrals/search?whatsapp=maybe")

	require.NoError(t, handler.SearchProfiles(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_FILTER")
}

func TestReferralHandler_ListPlans(t *testing.T) {
	referralUC := mockUC.NewMockReferralUsecase(t)
	handler := &ReferralHandler{referralUC: referralUC, logger: newTestLogger()}

	plans := []*entity.Plan{
		{ID: uuid.New(), Name: "Gratuito", Price: 0},
		{ID: uuid.New(), Name: "Premium", Price: 49.9},
	}
	referralUC.EXPECT().ListPlanOptions(mock.Anything).Return(plans, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/plans")

	require.NoError(t, handler.ListPlans(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Premium")
}
