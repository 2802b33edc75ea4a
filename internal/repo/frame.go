package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/pkg/apperr"
	"github.com/motus-health/backend/internal/repo/selector"
)

type Frame struct {
	db  *bun.DB
	sel selector.S[model.ActivityFrame]
}

func NewFrame(db *bun.DB) *Frame {
	return &Frame{
		db:  db,
		sel: selector.New[model.ActivityFrame](db),
	}
}

func (r *Frame) CreateFrame(ctx context.Context, frame *model.ActivityFrame) error {
	_, err := r.db.NewInsert().
		Model(frame).
		Returning("frame_id").
		Exec(ctx)
	return wrapInsertError(err)
}

func (r *Frame) GetFrameByID(ctx context.Context, frameID int) (*model.ActivityFrame, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("frame_id = ?", frameID)
	})
}

func (r *Frame) ListFrames(ctx context.Context, limit, offset int) ([]*model.ActivityFrame, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("frame_id ASC").Limit(limit).Offset(offset)
	})
}

// GetFramesByPatientAndTimeRange returns the patient's frames whose start
// falls within [start, end], oldest first. An empty day yields an empty
// slice, not an error.
func (r *Frame) GetFramesByPatientAndTimeRange(ctx context.Context, patientID int, start, end time.Time) ([]*model.ActivityFrame, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("patient_id = ?", patientID).
			Where("started_at >= ?", start).
			Where("started_at <= ?", end).
			Order("started_at ASC")
	})
}

// UpdateFrame corrects a frame in place. The telemetry path never updates;
// this exists for manual corrections only.
func (r *Frame) UpdateFrame(ctx context.Context, frame *model.ActivityFrame) error {
	result, err := r.db.NewUpdate().
		Model(frame).
		Column("category_id", "started_at", "finished_at").
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

func (r *Frame) DeleteFrame(ctx context.Context, frameID int) error {
	result, err := r.db.NewDelete().
		Model((*model.ActivityFrame)(nil)).
		Where("frame_id = ?", frameID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
