package frameutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/util"
)

func frame(category model.ActivityCategory, startedAt time.Time, d time.Duration) *model.ActivityFrame {
	return &model.ActivityFrame{
		PatientID:  1,
		Category:   category,
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(d),
	}
}

func TestDurationsEmpty(t *testing.T) {
	start, end := util.DayBounds(enabledAt)
	totals := Durations(nil, start, end)

	assert.Len(t, totals, len(model.Categories))
	for _, category := range model.Categories {
		assert.Zero(t, totals[category])
	}
}

func TestDurationsSumsPerCategory(t *testing.T) {
	start, end := util.DayBounds(enabledAt)
	frames := []*model.ActivityFrame{
		frame(model.CategoryClapping, enabledAt, time.Second),
		frame(model.CategoryClapping, enabledAt.Add(time.Hour), 2*time.Second),
		frame(model.CategoryBrushingTeeth, enabledAt, 3*time.Second),
	}

	totals := Durations(frames, start, end)

	assert.Equal(t, 3*time.Second, totals[model.CategoryClapping])
	assert.Equal(t, 3*time.Second, totals[model.CategoryBrushingTeeth])
	assert.Zero(t, totals[model.CategoryRandom])
}

func TestDurationsExcludesOtherDays(t *testing.T) {
	start, end := util.DayBounds(enabledAt)
	frames := []*model.ActivityFrame{
		frame(model.CategoryClapping, enabledAt, time.Second),
		frame(model.CategoryClapping, enabledAt.AddDate(0, 0, -1), time.Second),
		frame(model.CategoryClapping, enabledAt.AddDate(0, 0, 1), time.Second),
	}

	totals := Durations(frames, start, end)

	assert.Equal(t, time.Second, totals[model.CategoryClapping])
}

func TestDurationsFrameBelongsToStartDay(t *testing.T) {
	// starts just before midnight, finishes the next day
	lateStart := time.Date(2023, time.June, 14, 23, 59, 59, 0, time.UTC)
	start, end := util.DayBounds(lateStart)

	totals := Durations([]*model.ActivityFrame{
		frame(model.CategoryWashingHands, lateStart, 2*time.Minute),
	}, start, end)

	assert.Equal(t, 2*time.Minute, totals[model.CategoryWashingHands])

	nextStart, nextEnd := util.DayBounds(lateStart.AddDate(0, 0, 1))
	nextTotals := Durations([]*model.ActivityFrame{
		frame(model.CategoryWashingHands, lateStart, 2*time.Minute),
	}, nextStart, nextEnd)

	assert.Zero(t, nextTotals[model.CategoryWashingHands])
}

func TestDurationsIgnoresUnknownCategory(t *testing.T) {
	start, end := util.DayBounds(enabledAt)
	totals := Durations([]*model.ActivityFrame{
		frame(model.ActivityCategory(9), enabledAt, time.Second),
	}, start, end)

	for _, category := range model.Categories {
		assert.Zero(t, totals[category])
	}
}

func TestDurationsIdempotent(t *testing.T) {
	start, end := util.DayBounds(enabledAt)
	frames := []*model.ActivityFrame{
		frame(model.CategoryCombingHair, enabledAt, 1500*time.Millisecond),
	}

	first := Durations(frames, start, end)
	second := Durations(frames, start, end)

	assert.Equal(t, first, second)
}
