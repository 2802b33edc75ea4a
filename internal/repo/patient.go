package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/pkg/apperr"
	"github.com/motus-health/backend/internal/repo/selector"
)

type Patient struct {
	db  *bun.DB
	sel selector.S[model.Patient]
}

func NewPatient(db *bun.DB) *Patient {
	return &Patient{
		db:  db,
		sel: selector.New[model.Patient](db),
	}
}

func (r *Patient) CreatePatient(ctx context.Context, patient *model.Patient) error {
	_, err := r.db.NewInsert().
		Model(patient).
		Returning("patient_id").
		Exec(ctx)
	return wrapInsertError(err)
}

func (r *Patient) GetPatientByID(ctx context.Context, patientID int) (*model.Patient, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("patient_id = ?", patientID)
	})
}

func (r *Patient) GetPatientByEmail(ctx context.Context, email string) (*model.Patient, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("email = ?", email)
	})
}

func (r *Patient) ListPatients(ctx context.Context, limit, offset int) ([]*model.Patient, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("patient_id ASC").Limit(limit).Offset(offset)
	})
}

func (r *Patient) ListPatientsByPersonnelID(ctx context.Context, personnelID int) ([]*model.Patient, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("personnel_id = ?", personnelID).Order("patient_id ASC")
	})
}

func (r *Patient) ListAllPatients(ctx context.Context) ([]*model.Patient, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("patient_id ASC")
	})
}

func (r *Patient) UpdatePatient(ctx context.Context, patient *model.Patient) error {
	result, err := r.db.NewUpdate().
		Model(patient).
		Column("first_name", "last_name", "personnel_id").
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

func (r *Patient) DeletePatient(ctx context.Context, patientID int) error {
	result, err := r.db.NewDelete().
		Model((*model.Patient)(nil)).
		Where("patient_id = ?", patientID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
