package frameutil

import (
	"time"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/util"
)

// Durations sums frame durations per category over the calendar days spanned
// by [windowStart, windowEnd]. A frame belongs to the day it started on,
// even when it finishes past midnight. Frames with a category outside the
// known set are ignored. Every known category is present in the result, with
// zero for days the patient was idle.
func Durations(frames []*model.ActivityFrame, windowStart, windowEnd time.Time) map[model.ActivityCategory]time.Duration {
	totals := make(map[model.ActivityCategory]time.Duration, len(model.Categories))
	for _, category := range model.Categories {
		totals[category] = 0
	}

	firstDay := util.DayFloor(windowStart)
	lastDay := util.DayFloor(windowEnd)

	for _, frame := range frames {
		if !frame.Category.Valid() {
			continue
		}
		day := util.DayFloor(frame.StartedAt)
		if day.Before(firstDay) || day.After(lastDay) {
			continue
		}
		totals[frame.Category] += frame.Duration()
	}
	return totals
}
