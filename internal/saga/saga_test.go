package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompensateRunsInReverse(t *testing.T) {
	var order []string
	s := New(nil)
	for _, name := range []string{"campaign", "adset", "ad"} {
		s.Defer(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}
	require.Equal(t, 3, s.Len())

	require.NoError(t, s.Compensate(context.Background()))
	assert.Equal(t, []string{"ad", "adset", "campaign"}, order)
	assert.Zero(t, s.Len())
}

func TestCompensateContinuesAfterFailure(t *testing.T) {
	boom := errors.New("boom")
	var ran []string
	s := New(nil)
	s.Defer("first", func(context.Context) error {
		ran = append(ran, "first")
		return nil
	})
	s.Defer("second", func(context.Context) error {
		ran = append(ran, "second")
		return boom
	})

	err := s.Compensate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "undo second")
	assert.Equal(t, []string{"second", "first"}, ran)
}

func TestCompensateTwiceIsNoop(t *testing.T) {
	calls := 0
	s := New(nil)
	s.Defer("campaign", func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, s.Compensate(context.Background()))
	require.NoError(t, s.Compensate(context.Background()))
	assert.Equal(t, 1, calls)
}
