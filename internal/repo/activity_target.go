package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/pkg/apperr"
	"github.com/motus-health/backend/internal/repo/selector"
)

type ActivityTarget struct {
	db  *bun.DB
	sel selector.S[model.ActivityTarget]
}

func NewActivityTarget(db *bun.DB) *ActivityTarget {
	return &ActivityTarget{
		db:  db,
		sel: selector.New[model.ActivityTarget](db),
	}
}

func (r *ActivityTarget) CreateActivityTarget(ctx context.Context, target *model.ActivityTarget) error {
	_, err := r.db.NewInsert().
		Model(target).
		Returning("target_id").
		Exec(ctx)
	return wrapInsertError(err)
}

func (r *ActivityTarget) GetActivityTargetByID(ctx context.Context, targetID int) (*model.ActivityTarget, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("target_id = ?", targetID)
	})
}

func (r *ActivityTarget) ListActivityTargets(ctx context.Context, limit, offset int) ([]*model.ActivityTarget, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("target_id ASC").Limit(limit).Offset(offset)
	})
}

func (r *ActivityTarget) ListActivityTargetsByPatientID(ctx context.Context, patientID int) ([]*model.ActivityTarget, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("patient_id = ?", patientID).Order("target_id ASC")
	})
}

func (r *ActivityTarget) UpdateActivityTarget(ctx context.Context, target *model.ActivityTarget) error {
	result, err := r.db.NewUpdate().
		Model(target).
		Column("patient_id", "activity_type_id", "personnel_id", "date").
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

func (r *ActivityTarget) DeleteActivityTarget(ctx context.Context, targetID int) error {
	result, err := r.db.NewDelete().
		Model((*model.ActivityTarget)(nil)).
		Where("target_id = ?", targetID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
