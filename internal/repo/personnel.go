package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/pkg/apperr"
	"github.com/motus-health/backend/internal/repo/selector"
)

type Personnel struct {
	db  *bun.DB
	sel selector.S[model.Personnel]
}

func NewPersonnel(db *bun.DB) *Personnel {
	return &Personnel{
		db:  db,
		sel: selector.New[model.Personnel](db),
	}
}

func (r *Personnel) CreatePersonnel(ctx context.Context, personnel *model.Personnel) error {
	_, err := r.db.NewInsert().
		Model(personnel).
		Returning("personnel_id").
		Exec(ctx)
	return wrapInsertError(err)
}

func (r *Personnel) GetPersonnelByID(ctx context.Context, personnelID int) (*model.Personnel, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("personnel_id = ?", personnelID)
	})
}

func (r *Personnel) GetPersonnelByEmail(ctx context.Context, email string) (*model.Personnel, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("email = ?", email)
	})
}

func (r *Personnel) ListPersonnel(ctx context.Context, limit, offset int) ([]*model.Personnel, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("personnel_id ASC").Limit(limit).Offset(offset)
	})
}

func (r *Personnel) UpdatePersonnel(ctx context.Context, personnel *model.Personnel) error {
	result, err := r.db.NewUpdate().
		Model(personnel).
		Column("first_name", "last_name", "position").
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

func (r *Personnel) DeletePersonnel(ctx context.Context, personnelID int) error {
	result, err := r.db.NewDelete().
		Model((*model.Personnel)(nil)).
		Where("personnel_id = ?", personnelID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
