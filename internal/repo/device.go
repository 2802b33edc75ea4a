package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/pkg/apperr"
	"github.com/motus-health/backend/internal/repo/selector"
)

type Device struct {
	db  *bun.DB
	sel selector.S[model.Device]
}

func NewDevice(db *bun.DB) *Device {
	return &Device{
		db:  db,
		sel: selector.New[model.Device](db),
	}
}

func (r *Device) CreateDevice(ctx context.Context, device *model.Device) error {
	_, err := r.db.NewInsert().
		Model(device).
		Returning("device_id").
		Exec(ctx)
	return wrapInsertError(err)
}

func (r *Device) GetDeviceByID(ctx context.Context, deviceID int) (*model.Device, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("device_id = ?", deviceID)
	})
}

func (r *Device) GetDeviceByMacAddress(ctx context.Context, macAddress string) (*model.Device, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("mac_address = ?", macAddress)
	})
}

func (r *Device) ListDevices(ctx context.Context, limit, offset int) ([]*model.Device, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("device_id ASC").Limit(limit).Offset(offset)
	})
}

// AssignDeviceToPatient repoints an existing device at a patient.
func (r *Device) AssignDeviceToPatient(ctx context.Context, deviceID, patientID int) error {
	result, err := r.db.NewUpdate().
		Model((*model.Device)(nil)).
		Set("patient_id = ?", patientID).
		Where("device_id = ?", deviceID).
		Exec(ctx)
	if err != nil {
		return wrapInsertError(err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *Device) DeleteDevice(ctx context.Context, deviceID int) error {
	result, err := r.db.NewDelete().
		Model((*model.Device)(nil)).
		Where("device_id = ?", deviceID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
