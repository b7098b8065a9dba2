package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"refboard/config"
	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"
	mockRepo "refboard/internal/mocks/repository"
	mockSvc "refboard/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReferralTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Referral.RootUsername = "usuario_master"
	cfg.Referral.SearchLimit = 50

	return cfg
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReferralService_GetRootProfile(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	mockCache := mockSvc.NewMockPlanCache(t)
	mockInvite := mockSvc.NewMockInviteService(t)
	service := NewReferralService(mockProfileRepo, mockPlanRepo, mockCache, mockInvite, newReferralTestConfig(), newTestLogger())

	ctx := context.Background()
	root := &entity.Profile{
		ID:                   uuid.New(),
		Username:             "usuario_master",
		DirectReferralsCount: 12,
	}

	mockProfileRepo.EXPECT().
		FindProfileByUsername(ctx, "usuario_master").
		Return(root, nil)

	profile, err := service.GetRootProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, root.ID, profile.ID)
	assert.True(t, profile.IsRoot())
}

func TestReferralService_GetRootProfile_Missing(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	mockCache := mockSvc.NewMockPlanCache(t)
	mockInvite := mockSvc.NewMockInviteService(t)
	service := NewReferralService(mockProfileRepo, mockPlanRepo, mockCache, mockInvite, newReferralTestConfig(), newTestLogger())

	ctx := context.Background()

	mockProfileRepo.EXPECT().
		FindProfileByUsername(ctx, "usuario_master").
		Return(nil, repository.ErrProfileNotFound)

	profile, err := service.GetRootProfile(ctx)
	assert.ErrorIs(t, err, ErrRootProfileMissing)
	assert.Nil(t, profile)
}

func TestReferralService_GetProfile_NotFound(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	mockCache := mockSvc.NewMockPlanCache(t)
	mockInvite := mockSvc.NewMockInviteService(t)
	service := NewReferralService(mockProfileRepo, mockPlanRepo, mockCache, mockInvite, newReferralTestConfig(), newTestLogger())

	ctx := context.Background()
	id := uuid.New()

	mockProfileRepo.EXPECT().
		FindProfileByID(ctx, id).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := service.GetProfile(ctx, id)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, profile)
}

func TestReferralService_SearchProfiles_AppliesLimitAndTrims(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	mockCache := mockSvc.NewMockPlanCache(t)
	mockInvite := mockSvc.NewMockInviteService(t)
	service := NewReferralService(mockProfileRepo, mockPlanRepo, mockCache, mockInvite, newReferralTestConfig(), newTestLogger())

	ctx := context.Background()
	found := []*entity.Profile{{ID: uuid.New(), Username: "maria"}}

	mockProfileRepo.EXPECT().
		SearchProfiles(ctx, repository.ProfileSearch{
			Text:           "maria",
			ContactChannel: repository.ContactChannelPresent,
			Limit:          50,
		}).
		Return(found, nil)

	profiles, err := service.SearchProfiles(ctx, "  maria  ", repository.ContactChannelPresent)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestReferralService_ListPlanOptions_CacheHit(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	mockCache := mockSvc.NewMockPlanCache(t)
	mockInvite := mockSvc.NewMockInviteService(t)
	service := NewReferralService(mockProfileRepo, mockPlanRepo, mockCache, mockInvite, newReferralTestConfig(), newTestLogger())

	ctx := context.Background()
	cached := []*entity.Plan{
		{ID: uuid.New(), Name: "Básico", Price: 29.90},
		{ID: uuid.New(), Name: "Premium", Price: 59.90},
	}

	mockCache.EXPECT().
		GetPlans(ctx).
		Return(cached, nil)

	plans, err := service.ListPlanOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, plans)
	// The repository must not be touched on a cache hit.
	mockPlanRepo.AssertNotCalled(t, "ListActivePlans")
}

func TestReferralService_ListPlanOptions_CacheMissFillsCache(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	mockCache := mockSvc.NewMockPlanCache(t)
	mockInvite := mockSvc.NewMockInviteService(t)
	service := NewReferralService(mockProfileRepo, mockPlanRepo, mockCache, mockInvite, newReferralTestConfig(), newTestLogger())

	ctx := context.Background()
	plans := []*entity.Plan{{ID: uuid.New(), Name: "Premium", Price: 59.90}}

	mockCache.EXPECT().
		GetPlans(ctx).
		Return(nil, nil)
	mockPlanRepo.EXPECT().
		ListActivePlans(ctx).
		Return(plans, nil)
	mockCache.EXPECT().
		SetPlans(ctx, plans).
		Return(nil)

	result, err := service.ListPlanOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, plans, result)
}

func TestReferralService_GetInvite(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	mockCache := mockSvc.NewMockPlanCache(t)
	mockInvite := mockSvc.NewMockInviteService(t)
	service := NewReferralService(mockProfileRepo, mockPlanRepo, mockCache, mockInvite, newReferralTestConfig(), newTestLogger())

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), Username: "joao"}
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	mockProfileRepo.EXPECT().
		FindProfileByUsername(ctx, "joao").
		Return(profile, nil)
	mockInvite.EXPECT().
		InviteLink("joao").
		Return("https://app.example.com/cadastro?ref=joao")
	mockInvite.EXPECT().
		GenerateInviteQR("joao").
		Return(png, nil)

	invite, err := service.GetInvite(ctx, "joao")
	require.NoError(t, err)
	assert.Equal(t, "https://app.example.com/cadastro?ref=joao", invite.Link)
	assert.Equal(t, png, invite.QRPNG)
}

func TestReferralService_GetInvite_ProfileNotFound(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	mockCache := mockSvc.NewMockPlanCache(t)
	mockInvite := mockSvc.NewMockInviteService(t)
	service := NewReferralService(mockProfileRepo, mockPlanRepo, mockCache, mockInvite, newReferralTestConfig(), newTestLogger())

	ctx := context.Background()

	mockProfileRepo.EXPECT().
		FindProfileByUsername(ctx, "ninguem").
		Return(nil, repository.ErrProfileNotFound)

	invite, err := service.GetInvite(ctx, "ninguem")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, invite)
}
