package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/motus-health/backend/internal/app/appconfig"
	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/repo"
	"github.com/motus-health/backend/internal/util"
	"github.com/motus-health/backend/internal/util/frameutil"
)

// FrameStore reads back persisted frames for aggregation.
type FrameStore interface {
	GetFramesByPatientAndTimeRange(ctx context.Context, patientID int, start, end time.Time) ([]*model.ActivityFrame, error)
}

// Summary recomputes duration summaries from raw frames on every request.
// Summaries are derived data and are never stored.
type Summary struct {
	Frames FrameStore
	Config *appconfig.Config
}

func NewSummary(frameRepo *repo.Frame, conf *appconfig.Config) *Summary {
	return &Summary{
		Frames: frameRepo,
		Config: conf,
	}
}

// Daily aggregates one patient's frames over one UTC calendar day.
func (s *Summary) Daily(ctx context.Context, patientID int, date time.Time) (*model.DailySummary, error) {
	start, end := util.DayBounds(date)
	frames, err := s.Frames.GetFramesByPatientAndTimeRange(ctx, patientID, start, end)
	if err != nil {
		return nil, err
	}
	return s.compose(start, frameutil.Durations(frames, start, end)), nil
}

// Monthly aggregates one patient's frames into one summary per calendar day
// of the month, first day to last, with zeroed entries for idle days. The
// month's frames are fetched in a single query and bucketed per day.
func (s *Summary) Monthly(ctx context.Context, patientID int, month time.Time) (*model.MonthlySummary, error) {
	start, end := util.MonthBounds(month)
	frames, err := s.Frames.GetFramesByPatientAndTimeRange(ctx, patientID, start, end)
	if err != nil {
		return nil, err
	}

	days := make([]*model.DailySummary, 0, util.DaysInMonth(month))
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dayStart, dayEnd := util.DayBounds(day)
		days = append(days, s.compose(dayStart, frameutil.Durations(frames, dayStart, dayEnd)))
	}
	return &model.MonthlySummary{Days: days}, nil
}

// compose renders per-category totals into the summary shape. Each category
// is truncated to whole seconds first, and the overall motion figure is the
// sum of the truncated values so the parts always add up to the whole.
func (s *Summary) compose(date time.Time, totals map[model.ActivityCategory]time.Duration) *model.DailySummary {
	seconds := func(category model.ActivityCategory) int64 {
		return int64(totals[category] / time.Second)
	}
	duration := func(category model.ActivityCategory) model.ActivityDuration {
		return model.ActivityDuration{DurationSeconds: seconds(category)}
	}

	return &model.DailySummary{
		Date: date.Format("2006-01-02"),
		Motion: model.ActivityDuration{
			DurationSeconds: lo.SumBy(model.Categories, seconds),
			TargetSeconds:   null.IntFrom(s.Config.DefaultMotionTargetSeconds),
		},
		Clapping:      duration(model.CategoryClapping),
		BrushingTeeth: duration(model.CategoryBrushingTeeth),
		BrushingHair:  duration(model.CategoryCombingHair),
		CleaningHands: duration(model.CategoryWashingHands),
		RandomMotion:  duration(model.CategoryRandom),
	}
}
