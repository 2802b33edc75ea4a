package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/pkg/apperr"
	"github.com/motus-health/backend/internal/repo/selector"
)

type ActivityType struct {
	db  *bun.DB
	sel selector.S[model.ActivityType]
}

func NewActivityType(db *bun.DB) *ActivityType {
	return &ActivityType{
		db:  db,
		sel: selector.New[model.ActivityType](db),
	}
}

func (r *ActivityType) CreateActivityType(ctx context.Context, activityType *model.ActivityType) error {
	_, err := r.db.NewInsert().
		Model(activityType).
		Returning("activity_type_id").
		Exec(ctx)
	return wrapInsertError(err)
}

func (r *ActivityType) GetActivityTypeByID(ctx context.Context, activityTypeID int) (*model.ActivityType, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("activity_type_id = ?", activityTypeID)
	})
}

func (r *ActivityType) GetActivityTypeByName(ctx context.Context, name string) (*model.ActivityType, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("type = ?", name)
	})
}

func (r *ActivityType) ListActivityTypes(ctx context.Context) ([]*model.ActivityType, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("activity_type_id ASC")
	})
}

func (r *ActivityType) UpdateActivityType(ctx context.Context, activityType *model.ActivityType) error {
	result, err := r.db.NewUpdate().
		Model(activityType).
		Column("type").
		WherePK().
		Exec(ctx)
	if err != nil {
		return wrapInsertError(err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *ActivityType) DeleteActivityType(ctx context.Context, activityTypeID int) error {
	result, err := r.db.NewDelete().
		Model((*model.ActivityType)(nil)).
		Where("activity_type_id = ?", activityTypeID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
