package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

func TestFlagEncoding(t *testing.T) {
	raw, err := encodeFlag(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	f, err := decodeFlag(nil)
	require.NoError(t, err)
	assert.Nil(t, f)

	flag := &domain.PerformanceFlag{AvgDailyImpressions: 42, CTR: 0.001, MinDailyImpressions: 100, MinCTR: 0.005}
	raw, err = encodeFlag(flag)
	require.NoError(t, err)
	assert.JSONEq(t, `{"avgDailyImpressions":42,"ctr":0.001,"minDailyImpressions":100,"minCtr":0.005}`, string(raw))

	f, err = decodeFlag(raw)
	require.NoError(t, err)
	assert.Equal(t, flag, f)

	_, err = decodeFlag([]byte(`{"ctr":`))
	assert.Error(t, err)
}
