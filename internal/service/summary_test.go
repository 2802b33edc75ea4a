package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/motus-health/backend/internal/app/appconfig"
	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/util/frameutil"
)

type fakeFrameStore struct {
	frames []*model.ActivityFrame
	err    error
}

func (f *fakeFrameStore) GetFramesByPatientAndTimeRange(_ context.Context, patientID int, start, end time.Time) ([]*model.ActivityFrame, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := []*model.ActivityFrame{}
	for _, frame := range f.frames {
		if frame.PatientID != patientID {
			continue
		}
		if frame.StartedAt.Before(start) || frame.StartedAt.After(end) {
			continue
		}
		matched = append(matched, frame)
	}
	return matched, nil
}

func newTestSummary(store FrameStore) *Summary {
	return &Summary{
		Frames: store,
		Config: &appconfig.Config{
			ConfigSpec: appconfig.ConfigSpec{
				DefaultMotionTargetSeconds: 600,
			},
		},
	}
}

func TestSummaryDailyEmptyDay(t *testing.T) {
	s := newTestSummary(&fakeFrameStore{})

	summary, err := s.Daily(context.Background(), 1, time.Date(2023, time.June, 14, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2023-06-14", summary.Date)
	assert.Zero(t, summary.Motion.DurationSeconds)
	assert.Equal(t, null.IntFrom(600), summary.Motion.TargetSeconds)
	assert.Zero(t, summary.Clapping.DurationSeconds)
	assert.False(t, summary.Clapping.TargetSeconds.Valid)
}

func TestSummaryDailyFromDecodedPayload(t *testing.T) {
	enabledAt := time.Date(2023, time.June, 14, 8, 0, 0, 0, time.UTC)
	frames := frameutil.Decode("1;0;1000;2;2000;5000", enabledAt, 1)
	s := newTestSummary(&fakeFrameStore{frames: frames})

	summary, err := s.Daily(context.Background(), 1, enabledAt)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Clapping.DurationSeconds)
	assert.Equal(t, int64(3), summary.BrushingTeeth.DurationSeconds)
	assert.Equal(t, int64(4), summary.Motion.DurationSeconds)
	assert.Zero(t, summary.RandomMotion.DurationSeconds)
}

func TestSummaryDailyTruncatesPerCategory(t *testing.T) {
	enabledAt := time.Date(2023, time.June, 14, 8, 0, 0, 0, time.UTC)
	// 900ms of clapping and 900ms of random motion both truncate to zero,
	// so the aggregate stays zero rather than rounding up to one
	frames := frameutil.Decode("1;0;900;0;1000;1900", enabledAt, 1)
	s := newTestSummary(&fakeFrameStore{frames: frames})

	summary, err := s.Daily(context.Background(), 1, enabledAt)
	require.NoError(t, err)

	assert.Zero(t, summary.Clapping.DurationSeconds)
	assert.Zero(t, summary.RandomMotion.DurationSeconds)
	assert.Zero(t, summary.Motion.DurationSeconds)
}

func TestSummaryDailyIgnoresOtherPatients(t *testing.T) {
	enabledAt := time.Date(2023, time.June, 14, 8, 0, 0, 0, time.UTC)
	s := newTestSummary(&fakeFrameStore{frames: frameutil.Decode("1;0;5000", enabledAt, 2)})

	summary, err := s.Daily(context.Background(), 1, enabledAt)
	require.NoError(t, err)

	assert.Zero(t, summary.Motion.DurationSeconds)
}

func TestSummaryMonthlyLengths(t *testing.T) {
	s := newTestSummary(&fakeFrameStore{})

	cases := []struct {
		month time.Time
		days  int
	}{
		{time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), 31},
	}

	for _, c := range cases {
		summary, err := s.Monthly(context.Background(), 1, c.month)
		require.NoError(t, err)
		assert.Len(t, summary.Days, c.days)
	}
}

func TestSummaryMonthlyAscendingWithActivity(t *testing.T) {
	day14 := time.Date(2023, time.June, 14, 8, 0, 0, 0, time.UTC)
	s := newTestSummary(&fakeFrameStore{frames: frameutil.Decode("3;0;2000", day14, 1)})

	summary, err := s.Monthly(context.Background(), 1, day14)
	require.NoError(t, err)
	require.Len(t, summary.Days, 30)

	assert.Equal(t, "2023-06-01", summary.Days[0].Date)
	assert.Equal(t, "2023-06-30", summary.Days[29].Date)
	assert.Equal(t, int64(2), summary.Days[13].CleaningHands.DurationSeconds)
	assert.Zero(t, summary.Days[12].CleaningHands.DurationSeconds)
	assert.Equal(t, null.IntFrom(600), summary.Days[0].Motion.TargetSeconds)
}
