package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/radar/internal/clock"
	"github.com/theirongolddev/radar/internal/model"
)

var fixedNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func testClock() clock.Clock { return clock.Fixed(fixedNow) }

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s, time.UTC)
	require.NoError(t, err)
	return d
}

func ptr[T any](v T) *T { return &v }
