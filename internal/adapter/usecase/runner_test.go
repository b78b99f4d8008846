package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

type runnerDeps struct {
	campaigns    *mocks.MockCampaignRepository
	posts        *mocks.MockPostRepository
	integrations *mocks.MockIntegrationRepository
	platform     *mocks.MockAdPlatform
	geo          *mocks.MockGeoResolver
}

// newTestRunner returns a runner whose clock reads hour:00 in Chicago.
func newTestRunner(t *testing.T, hour int) (*Runner, runnerDeps) {
	t.Helper()
	loc := chicago(t)
	deps := runnerDeps{
		campaigns:    mocks.NewMockCampaignRepository(t),
		posts:        mocks.NewMockPostRepository(t),
		integrations: mocks.NewMockIntegrationRepository(t),
		platform:     mocks.NewMockAdPlatform(t),
		geo:          mocks.NewMockGeoResolver(t),
	}
	gate := NewBusinessHoursGate(loc, 8, 18, func() time.Time {
		return time.Date(2026, 10, 16, hour, 0, 0, 0, loc)
	})
	r := NewRunner(deps.campaigns, deps.posts, deps.integrations, deps.platform, deps.geo, gate, discardLogger())
	return r, deps
}

func publishedPost() *domain.ScheduledPost {
	return &domain.ScheduledPost{
		ID:               "post-1",
		TenantID:         tenantID,
		Status:           "published",
		Content:          "Fresh paint, fresh start",
		LinkURL:          ptr("https://example.com/fall"),
		FacebookPostID:   ptr("page_1_9001"),
		InstagramMediaID: nil,
	}
}

func TestRunnerHappyPathLaunchesCampaign(t *testing.T) {
	r, d := newTestRunner(t, 10)
	c := activeCampaign(domain.PlatformFacebook)

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(connectedIntegration("act_9"), nil)
	d.platform.EXPECT().ValidateToken(mock.Anything, "tok").Return(true)
	d.posts.EXPECT().LatestPublished(mock.Anything, tenantID).Return(publishedPost(), nil)
	d.geo.EXPECT().Resolve(mock.Anything, "Nashville", "Tennessee", "tok").Return("2514815")

	var got port.LaunchRequest
	d.platform.EXPECT().Launch(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req port.LaunchRequest) { got = req }).
		Return(&port.LaunchResult{CampaignID: "cmp_1", AdSetID: "set_1", CreativeID: "cr_1", AdID: "ad_1", Activated: true}, nil).
		Once()
	d.campaigns.EXPECT().RecordLaunch(mock.Anything, c.ID, "ad_1", mock.MatchedBy(decimalEq("25"))).Return(nil).Once()

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Considered)
	assert.Equal(t, 1, report.Launched)
	assert.Empty(t, report.Skipped)

	assert.Equal(t, "act_9", got.AccountID)
	assert.Equal(t, "page_1", got.PageID)
	assert.Equal(t, domain.PlatformFacebook, got.Platform)
	assert.Equal(t, "page_1_9001", got.PostID)
	assert.Equal(t, "https://example.com/fall", got.LinkURL)
	assert.Equal(t, "Fresh paint, fresh start", got.Message)
	assert.Equal(t, "[Facebook] Fall Promo - 2026-10-16", got.Name)
	assert.True(t, got.DailyBudget.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, domain.CampaignTargeting{
		City: "Nashville", State: "Tennessee", Radius: 25, AgeMin: 25, AgeMax: 65, CityKey: "2514815",
	}, got.Targeting)
}

func TestRunnerBoostsWithoutAdAccount(t *testing.T) {
	r, d := newTestRunner(t, 12)
	c := activeCampaign(domain.PlatformFacebook)
	c.Spent = decimal.RequireFromString("10")
	c.TargetingCity = ptr("Franklin")

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(connectedIntegration(""), nil)
	d.platform.EXPECT().ValidateToken(mock.Anything, "tok").Return(true)
	d.posts.EXPECT().LatestPublished(mock.Anything, tenantID).Return(publishedPost(), nil)
	d.geo.EXPECT().Resolve(mock.Anything, "Franklin", "Tennessee", "tok").Return("777")
	d.platform.EXPECT().Boost(mock.Anything, mock.MatchedBy(func(req port.BoostRequest) bool {
		return req.PostID == "page_1_9001" &&
			req.DailyBudget.Equal(decimal.NewFromInt(15)) &&
			req.Targeting.CityKey == "777"
	})).Return("boost_ad", nil).Once()
	d.campaigns.EXPECT().RecordLaunch(mock.Anything, c.ID, "boost_ad", mock.MatchedBy(decimalEq("15"))).Return(nil)

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Boosted)
	assert.Zero(t, report.Launched)
}

func TestRunnerRecordsFailureWithoutTouchingSpend(t *testing.T) {
	r, d := newTestRunner(t, 10)
	c := activeCampaign(domain.PlatformFacebook)

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(connectedIntegration("act_9"), nil)
	d.platform.EXPECT().ValidateToken(mock.Anything, "tok").Return(true)
	d.posts.EXPECT().LatestPublished(mock.Anything, tenantID).Return(publishedPost(), nil)
	d.geo.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("2514815")
	d.platform.EXPECT().Launch(mock.Anything, mock.Anything).Return(nil, errors.New("create ad set: invalid targeting")).Once()
	d.campaigns.EXPECT().RecordFailure(mock.Anything, c.ID, "create ad set: invalid targeting").Return(nil).Once()

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	d.campaigns.AssertNotCalled(t, "RecordLaunch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunnerBudgetGating(t *testing.T) {
	for _, spent := range []string{"25", "25.01", "40"} {
		t.Run(spent, func(t *testing.T) {
			r, d := newTestRunner(t, 10)
			c := activeCampaign(domain.PlatformFacebook)
			c.Spent = decimal.RequireFromString(spent)

			d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
			d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(connectedIntegration("act_9"), nil)
			d.platform.EXPECT().ValidateToken(mock.Anything, "tok").Return(true)

			report, err := r.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 1, report.Skipped[SkipBudgetExhausted])
			d.platform.AssertNotCalled(t, "Launch", mock.Anything, mock.Anything)
			d.platform.AssertNotCalled(t, "Boost", mock.Anything, mock.Anything)
		})
	}
}

func TestRunnerActsOncePerDay(t *testing.T) {
	r, d := newTestRunner(t, 14)
	c := activeCampaign(domain.PlatformFacebook)
	// Launched at 09:00, then the 11:00 sync lowered spent to the real figure.
	acted := time.Date(2026, 10, 16, 9, 0, 0, 0, chicago(t))
	c.LastActionAt = &acted
	c.MetaAdID = ptr("ad_1")
	c.Spent = decimal.NewFromInt(3)

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(connectedIntegration("act_9"), nil)
	d.platform.EXPECT().ValidateToken(mock.Anything, "tok").Return(true)

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped[SkipActedToday])
	assert.Zero(t, report.Launched)
	d.platform.AssertNotCalled(t, "Launch", mock.Anything, mock.Anything)
	d.campaigns.AssertNotCalled(t, "RecordLaunch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunnerActsAgainOnNextDay(t *testing.T) {
	r, d := newTestRunner(t, 10)
	c := activeCampaign(domain.PlatformFacebook)
	acted := time.Date(2026, 10, 15, 16, 0, 0, 0, chicago(t))
	c.LastActionAt = &acted
	c.MetaAdID = ptr("ad_1")

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(connectedIntegration("act_9"), nil)
	d.platform.EXPECT().ValidateToken(mock.Anything, "tok").Return(true)
	d.posts.EXPECT().LatestPublished(mock.Anything, tenantID).Return(publishedPost(), nil)
	d.geo.EXPECT().Resolve(mock.Anything, "Nashville", "Tennessee", "tok").Return("2514815")
	d.platform.EXPECT().Launch(mock.Anything, mock.Anything).
		Return(&port.LaunchResult{AdID: "ad_2", Activated: true}, nil).Once()
	d.campaigns.EXPECT().RecordLaunch(mock.Anything, c.ID, "ad_2", mock.MatchedBy(decimalEq("25"))).Return(nil).Once()

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Launched)
	assert.Empty(t, report.Skipped)
}

func TestExternalNameLeadsWithChannelTag(t *testing.T) {
	c := activeCampaign(domain.PlatformInstagram)
	c.Name = "Facebook Fans Retarget"
	name := ExternalName(c, time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, "[Instagram] Facebook Fans Retarget - 2026-10-16", name)
	p, ok := domain.PlatformFromExternalName(name)
	require.True(t, ok)
	assert.Equal(t, domain.PlatformInstagram, p)
}

func TestRunnerBusinessHoursGating(t *testing.T) {
	for _, hour := range []int{0, 5, 7, 18, 21, 23} {
		r, d := newTestRunner(t, hour)
		c := activeCampaign(domain.PlatformFacebook)

		// Only the listing is expected; any other call fails the mock.
		d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)

		report, err := r.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Skipped[SkipOutsideHours], "hour %d", hour)
	}
}

func TestRunnerHonoursCampaignWindow(t *testing.T) {
	r, d := newTestRunner(t, 20)
	late := activeCampaign(domain.PlatformFacebook)
	late.BusinessHoursStart = ptr(19)
	late.BusinessHoursEnd = ptr(22)
	late.Spent = decimal.NewFromInt(25)
	early := activeCampaign(domain.PlatformInstagram)

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{late, early}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(connectedIntegration("act_9"), nil)
	d.platform.EXPECT().ValidateToken(mock.Anything, "tok").Return(true)

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped[SkipBudgetExhausted])
	assert.Equal(t, 1, report.Skipped[SkipOutsideHours])
}

func TestRunnerValidatesTokenOncePerTenant(t *testing.T) {
	r, d := newTestRunner(t, 10)
	fb := activeCampaign(domain.PlatformFacebook)
	ig := activeCampaign(domain.PlatformInstagram)

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{fb, ig}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(connectedIntegration("act_9"), nil).Once()
	d.platform.EXPECT().ValidateToken(mock.Anything, "tok").Return(false).Once()

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Skipped[SkipInvalidToken])
}

func TestRunnerSkipsDisconnectedIntegration(t *testing.T) {
	r, d := newTestRunner(t, 10)
	c := activeCampaign(domain.PlatformFacebook)
	integ := connectedIntegration("act_9")
	integ.FacebookConnected = false

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(integ, nil)

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped[SkipNoIntegration])
}

func TestRunnerSkipsMissingIntegration(t *testing.T) {
	r, d := newTestRunner(t, 10)
	c := activeCampaign(domain.PlatformFacebook)

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(nil, nil)

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped[SkipNoIntegration])
}

func TestRunnerSkipsPostWithoutChannelID(t *testing.T) {
	r, d := newTestRunner(t, 10)
	c := activeCampaign(domain.PlatformInstagram)

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(connectedIntegration("act_9"), nil)
	d.platform.EXPECT().ValidateToken(mock.Anything, "tok").Return(true)
	d.posts.EXPECT().LatestPublished(mock.Anything, tenantID).Return(publishedPost(), nil)

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped[SkipNoPostID])
}

func TestRunnerSkipsWhenNothingPublished(t *testing.T) {
	r, d := newTestRunner(t, 10)
	c := activeCampaign(domain.PlatformFacebook)

	d.campaigns.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	d.integrations.EXPECT().GetMetaIntegration(mock.Anything, tenantID).Return(connectedIntegration("act_9"), nil)
	d.platform.EXPECT().ValidateToken(mock.Anything, "tok").Return(true)
	d.posts.EXPECT().LatestPublished(mock.Anything, tenantID).Return(nil, nil)

	report, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped[SkipNoPost])
}

func TestRunnerFailsOnlyWhenListingFails(t *testing.T) {
	r, d := newTestRunner(t, 10)
	d.campaigns.EXPECT().ListActive(mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list active campaigns")
}
