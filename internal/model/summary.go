package model

import (
	"gopkg.in/guregu/null.v3"
)

// ActivityDuration pairs a measured duration with its target, if one has
// been assigned. TargetSeconds serializes to null when absent.
type ActivityDuration struct {
	DurationSeconds int64    `json:"activityDurationInSeconds"`
	TargetSeconds   null.Int `json:"activityTargetInSeconds"`
}

// DailySummary reports per-category durations for one calendar day.
// Motion is the aggregate over every known category.
type DailySummary struct {
	Date          string           `json:"date"`
	Motion        ActivityDuration `json:"motion"`
	Clapping      ActivityDuration `json:"clapping"`
	BrushingTeeth ActivityDuration `json:"brushingTeeth"`
	BrushingHair  ActivityDuration `json:"brushingHair"`
	CleaningHands ActivityDuration `json:"cleaningHands"`
	RandomMotion  ActivityDuration `json:"randomMotion"`
}

// MonthlySummary holds one DailySummary per calendar day, ascending.
type MonthlySummary struct {
	Days []*DailySummary `json:"monthlySummaries"`
}
