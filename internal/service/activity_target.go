package service

import (
	"context"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/repo"
)

type ActivityTarget struct {
	ActivityTargetRepo *repo.ActivityTarget
}

func NewActivityTarget(activityTargetRepo *repo.ActivityTarget) *ActivityTarget {
	return &ActivityTarget{
		ActivityTargetRepo: activityTargetRepo,
	}
}

func (s *ActivityTarget) CreateActivityTarget(ctx context.Context, req *types.CreateActivityTargetRequest) (*model.ActivityTarget, error) {
	target := &model.ActivityTarget{
		PatientID:      req.PatientID,
		ActivityTypeID: req.ActivityTypeID,
		PersonnelID:    req.PersonnelID,
		Date:           req.Date,
	}
	if err := s.ActivityTargetRepo.CreateActivityTarget(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *ActivityTarget) GetActivityTargetByID(ctx context.Context, targetID int) (*model.ActivityTarget, error) {
	return s.ActivityTargetRepo.GetActivityTargetByID(ctx, targetID)
}

func (s *ActivityTarget) ListActivityTargets(ctx context.Context, limit, offset int) ([]*model.ActivityTarget, error) {
	return s.ActivityTargetRepo.ListActivityTargets(ctx, limit, offset)
}

func (s *ActivityTarget) ListActivityTargetsByPatientID(ctx context.Context, patientID int) ([]*model.ActivityTarget, error) {
	return s.ActivityTargetRepo.ListActivityTargetsByPatientID(ctx, patientID)
}

func (s *ActivityTarget) UpdateActivityTarget(ctx context.Context, targetID int, req *types.UpdateActivityTargetRequest) (*model.ActivityTarget, error) {
	target := &model.ActivityTarget{
		TargetID:       targetID,
		PatientID:      req.PatientID,
		ActivityTypeID: req.ActivityTypeID,
		PersonnelID:    req.PersonnelID,
		Date:           req.Date,
	}
	if err := s.ActivityTargetRepo.UpdateActivityTarget(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *ActivityTarget) DeleteActivityTarget(ctx context.Context, targetID int) error {
	return s.ActivityTargetRepo.DeleteActivityTarget(ctx, targetID)
}
