package service

import (
	"context"
	"time"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/pkg/apperr"
	"github.com/motus-health/backend/internal/repo"
	"github.com/motus-health/backend/internal/util"
)

type Frame struct {
	FrameRepo *repo.Frame
}

func NewFrame(frameRepo *repo.Frame) *Frame {
	return &Frame{
		FrameRepo: frameRepo,
	}
}

// CreateFrame persists one frame directly, bypassing the telemetry decoder.
// Unlike decoded payloads, a hand-written frame with an inverted interval is
// rejected instead of silently dropped.
func (s *Frame) CreateFrame(ctx context.Context, req *types.CreateFrameRequest) (*model.ActivityFrame, error) {
	if req.FinishedAt.Before(req.StartedAt) {
		return nil, apperr.ErrInvalidReq.Msg("finishedAt must not precede startedAt")
	}

	frame := &model.ActivityFrame{
		PatientID:  req.PatientID,
		Category:   model.ActivityCategory(req.CategoryID),
		StartedAt:  req.StartedAt,
		FinishedAt: req.FinishedAt,
	}
	if err := s.FrameRepo.CreateFrame(ctx, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

func (s *Frame) GetFrameByID(ctx context.Context, frameID int) (*model.ActivityFrame, error) {
	return s.FrameRepo.GetFrameByID(ctx, frameID)
}

func (s *Frame) ListFrames(ctx context.Context, limit, offset int) ([]*model.ActivityFrame, error) {
	return s.FrameRepo.ListFrames(ctx, limit, offset)
}

// FramesForDate returns a patient's frames that started within the given
// UTC calendar day, oldest first.
func (s *Frame) FramesForDate(ctx context.Context, patientID int, date time.Time) ([]*model.ActivityFrame, error) {
	start, end := util.DayBounds(date)
	return s.FrameRepo.GetFramesByPatientAndTimeRange(ctx, patientID, start, end)
}

func (s *Frame) UpdateFrame(ctx context.Context, frameID int, req *types.UpdateFrameRequest) (*model.ActivityFrame, error) {
	if req.FinishedAt.Before(req.StartedAt) {
		return nil, apperr.ErrInvalidReq.Msg("finishedAt must not precede startedAt")
	}

	frame := &model.ActivityFrame{
		FrameID:    frameID,
		Category:   model.ActivityCategory(req.CategoryID),
		StartedAt:  req.StartedAt,
		FinishedAt: req.FinishedAt,
	}
	if err := s.FrameRepo.UpdateFrame(ctx, frame); err != nil {
		return nil, err
	}
	return s.FrameRepo.GetFrameByID(ctx, frameID)
}

func (s *Frame) DeleteFrame(ctx context.Context, frameID int) error {
	return s.FrameRepo.DeleteFrame(ctx, frameID)
}
