package service

import (
	"context"
	"time"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/model/cache"
	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/repo"
)

type Device struct {
	DeviceRepo *repo.Device
}

func NewDevice(deviceRepo *repo.Device) *Device {
	return &Device{
		DeviceRepo: deviceRepo,
	}
}

func (s *Device) CreateDevice(ctx context.Context, req *types.CreateDeviceRequest) (*model.Device, error) {
	now := time.Now()
	device := &model.Device{
		MacAddress: req.MacAddress,
		PatientID:  req.PatientID,
		CreatedAt:  &now,
	}
	if err := s.DeviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *Device) GetDeviceByID(ctx context.Context, deviceID int) (*model.Device, error) {
	return s.DeviceRepo.GetDeviceByID(ctx, deviceID)
}

// Cache: (set) device#macAddress, 5 min
func (s *Device) GetDeviceByMacAddress(ctx context.Context, macAddress string) (*model.Device, error) {
	var device model.Device
	err := cache.DeviceByMac.MutexGetSet(macAddress, &device, func() (model.Device, error) {
		found, err := s.DeviceRepo.GetDeviceByMacAddress(ctx, macAddress)
		if err != nil {
			return model.Device{}, err
		}
		return *found, nil
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *Device) ListDevices(ctx context.Context, limit, offset int) ([]*model.Device, error) {
	return s.DeviceRepo.ListDevices(ctx, limit, offset)
}

func (s *Device) AssignDeviceToPatient(ctx context.Context, deviceID, patientID int) (*model.Device, error) {
	device, err := s.DeviceRepo.GetDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if err := s.DeviceRepo.AssignDeviceToPatient(ctx, deviceID, patientID); err != nil {
		return nil, err
	}
	if err := cache.DeviceByMac.Delete(device.MacAddress); err != nil {
		return nil, err
	}
	return s.DeviceRepo.GetDeviceByID(ctx, deviceID)
}

func (s *Device) DeleteDevice(ctx context.Context, deviceID int) error {
	device, err := s.DeviceRepo.GetDeviceByID(ctx, deviceID)
	if err != nil {
		return err
	}
	if err := s.DeviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return err
	}
	return cache.DeviceByMac.Delete(device.MacAddress)
}
