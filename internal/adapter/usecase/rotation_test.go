package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

var rotationNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newTestMonitor(t *testing.T) (*RotationMonitor, *mocks.MockCampaignRepository) {
	t.Helper()
	repo := mocks.NewMockCampaignRepository(t)
	cfg := configs.Scheduler{
		RotationPeriod:      7 * 24 * time.Hour,
		MaturityWindow:      72 * time.Hour,
		MinDailyImpressions: 100,
		MinCTR:              0.005,
	}
	return NewRotationMonitor(repo, cfg, func() time.Time { return rotationNow }, discardLogger()), repo
}

func startedAgo(c domain.AdCampaign, d time.Duration) domain.AdCampaign {
	start := rotationNow.Add(-d)
	c.StartDate = &start
	return c
}

func TestRotationSpawnsSuccessorForExpiredCampaign(t *testing.T) {
	m, repo := newTestMonitor(t)
	c := startedAgo(activeCampaign(domain.PlatformFacebook), 8*24*time.Hour)
	end := rotationNow.Add(-time.Hour)
	c.EndDate = &end
	c.DailyBudget = decimal.RequireFromString("30")
	c.TargetingCity = ptr("Memphis")
	c.TargetingRadius = ptr(40)
	c.BusinessHoursStart = ptr(9)
	c.Spent = decimal.RequireFromString("12")
	c.MetaAdID = ptr("ad_old")

	var successor domain.AdCampaign
	repo.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	repo.EXPECT().Rotate(mock.Anything, c.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, s domain.AdCampaign) { successor = s }).
		Return(nil).Once()

	report, err := m.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Rotated)

	assert.NotEqual(t, c.ID, successor.ID)
	assert.Equal(t, domain.StatusActive, successor.Status)
	require.NotNil(t, successor.StartDate)
	require.NotNil(t, successor.EndDate)
	assert.Equal(t, rotationNow, *successor.StartDate)
	assert.Equal(t, rotationNow.Add(7*24*time.Hour), *successor.EndDate)
	require.NotNil(t, successor.PredecessorID)
	assert.Equal(t, c.ID, *successor.PredecessorID)

	assert.Equal(t, c.TenantID, successor.TenantID)
	assert.Equal(t, c.Platform, successor.Platform)
	assert.True(t, c.DailyBudget.Equal(successor.DailyBudget))
	assert.Equal(t, c.Targeting(), successor.Targeting())
	assert.Equal(t, c.BusinessHoursStart, successor.BusinessHoursStart)

	assert.True(t, successor.Spent.IsZero())
	assert.Nil(t, successor.MetaAdID)
	assert.Nil(t, successor.ErrorMessage)
}

func TestRotationSkipsImmatureCampaign(t *testing.T) {
	m, repo := newTestMonitor(t)
	c := startedAgo(activeCampaign(domain.PlatformFacebook), 48*time.Hour)

	repo.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)

	report, err := m.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RotationReport{}, report)
}

func TestRotationFlagsUnderperformer(t *testing.T) {
	m, repo := newTestMonitor(t)
	c := startedAgo(activeCampaign(domain.PlatformInstagram), 4*24*time.Hour)
	c.Impressions = 200 // 50 a day
	c.Clicks = 10

	repo.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	repo.EXPECT().SetPerformanceFlag(mock.Anything, c.ID, mock.MatchedBy(func(f *domain.PerformanceFlag) bool {
		return f != nil && f.AvgDailyImpressions == 50 && f.CTR == 0.05
	})).Return(nil).Once()

	report, err := m.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Flagged)
}

func TestRotationEvaluate(t *testing.T) {
	m, _ := newTestMonitor(t)

	tests := []struct {
		name        string
		age         time.Duration
		impressions int64
		clicks      int64
		wantMature  bool
		wantFlag    bool
	}{
		{name: "healthy", age: 4 * 24 * time.Hour, impressions: 4000, clicks: 40, wantMature: true},
		{name: "low impressions", age: 4 * 24 * time.Hour, impressions: 399, clicks: 40, wantMature: true, wantFlag: true},
		{name: "low ctr", age: 4 * 24 * time.Hour, impressions: 4000, clicks: 19, wantMature: true, wantFlag: true},
		{name: "no delivery", age: 3 * 24 * time.Hour, wantMature: true, wantFlag: true},
		{name: "too young", age: 71 * time.Hour, impressions: 0, wantMature: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := startedAgo(activeCampaign(domain.PlatformFacebook), tt.age)
			c.Impressions, c.Clicks = tt.impressions, tt.clicks
			flag, mature := m.Evaluate(c, rotationNow)
			assert.Equal(t, tt.wantMature, mature)
			assert.Equal(t, tt.wantFlag, flag != nil)
		})
	}

	_, mature := m.Evaluate(activeCampaign(domain.PlatformFacebook), rotationNow)
	assert.False(t, mature, "no start date")
}

func TestRotationClearsRecoveredFlag(t *testing.T) {
	m, repo := newTestMonitor(t)
	c := startedAgo(activeCampaign(domain.PlatformFacebook), 5*24*time.Hour)
	c.Impressions = 5000
	c.Clicks = 100
	c.PerformanceFlag = &domain.PerformanceFlag{AvgDailyImpressions: 20, MinDailyImpressions: 100, MinCTR: 0.005}

	repo.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	repo.EXPECT().SetPerformanceFlag(mock.Anything, c.ID, (*domain.PerformanceFlag)(nil)).Return(nil).Once()

	report, err := m.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Cleared)
}

func TestRotationDoesNotRewriteUnchangedFlag(t *testing.T) {
	m, repo := newTestMonitor(t)
	c := startedAgo(activeCampaign(domain.PlatformFacebook), 4*24*time.Hour)
	c.Impressions = 200
	c.Clicks = 0
	flag, _ := m.Evaluate(c, rotationNow)
	c.PerformanceFlag = flag
	c.ErrorMessage = ptr(flag.Message())

	repo.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)

	report, err := m.Check(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Flagged)
}

func TestRotationRewritesFlagClearedByLaunch(t *testing.T) {
	m, repo := newTestMonitor(t)
	c := startedAgo(activeCampaign(domain.PlatformFacebook), 4*24*time.Hour)
	c.Impressions = 200
	flag, _ := m.Evaluate(c, rotationNow)
	c.PerformanceFlag = flag

	repo.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{c}, nil)
	repo.EXPECT().SetPerformanceFlag(mock.Anything, c.ID, mock.Anything).Return(nil).Once()

	report, err := m.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Flagged)
}

func TestRotationContinuesAfterFailure(t *testing.T) {
	m, repo := newTestMonitor(t)
	end := rotationNow.Add(-time.Minute)
	first := activeCampaign(domain.PlatformFacebook)
	first.EndDate = &end
	second := activeCampaign(domain.PlatformInstagram)
	second.EndDate = &end

	repo.EXPECT().ListActive(mock.Anything).Return([]domain.AdCampaign{first, second}, nil)
	repo.EXPECT().Rotate(mock.Anything, first.ID, mock.Anything).Return(errors.New("serialization failure"))
	repo.EXPECT().Rotate(mock.Anything, second.ID, mock.Anything).Return(nil)

	report, err := m.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Rotated)
}
