package service

import (
	"context"
	"time"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/model/cache"
	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/repo"
)

type ActivityType struct {
	ActivityTypeRepo *repo.ActivityType
}

func NewActivityType(activityTypeRepo *repo.ActivityType) *ActivityType {
	return &ActivityType{
		ActivityTypeRepo: activityTypeRepo,
	}
}

func (s *ActivityType) CreateActivityType(ctx context.Context, req *types.CreateActivityTypeRequest) (*model.ActivityType, error) {
	activityType := &model.ActivityType{
		Type: req.Type,
	}
	if err := s.ActivityTypeRepo.CreateActivityType(ctx, activityType); err != nil {
		return nil, err
	}
	if err := cache.ActivityTypes.Delete(); err != nil {
		return nil, err
	}
	return activityType, nil
}

func (s *ActivityType) GetActivityTypeByID(ctx context.Context, activityTypeID int) (*model.ActivityType, error) {
	return s.ActivityTypeRepo.GetActivityTypeByID(ctx, activityTypeID)
}

// Cache: (singular) activityTypes, 1 hr
func (s *ActivityType) ListActivityTypes(ctx context.Context) ([]*model.ActivityType, error) {
	var activityTypes []*model.ActivityType
	err := cache.ActivityTypes.MutexGetSet(&activityTypes, func() ([]*model.ActivityType, error) {
		return s.ActivityTypeRepo.ListActivityTypes(ctx)
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return activityTypes, nil
}

func (s *ActivityType) UpdateActivityType(ctx context.Context, activityTypeID int, req *types.UpdateActivityTypeRequest) (*model.ActivityType, error) {
	activityType := &model.ActivityType{
		ActivityTypeID: activityTypeID,
		Type:           req.Type,
	}
	if err := s.ActivityTypeRepo.UpdateActivityType(ctx, activityType); err != nil {
		return nil, err
	}
	if err := cache.ActivityTypes.Delete(); err != nil {
		return nil, err
	}
	return activityType, nil
}

func (s *ActivityType) DeleteActivityType(ctx context.Context, activityTypeID int) error {
	if err := s.ActivityTypeRepo.DeleteActivityType(ctx, activityTypeID); err != nil {
		return err
	}
	return cache.ActivityTypes.Delete()
}
