package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/server/svr"
	"github.com/motus-health/backend/internal/service"
	"github.com/motus-health/backend/internal/util/rekuest"
)

type Device struct {
	fx.In

	DeviceService *service.Device
}

func RegisterDevice(v1 *svr.V1, c Device) {
	v1.Post("/devices", c.CreateDevice)
	v1.Get("/devices", c.ListDevices)
	v1.Get("/devices/:deviceId", c.GetDeviceByID)
	v1.Get("/devices/mac/:macAddress", c.GetDeviceByMacAddress)
	v1.Put("/devices/:deviceId/patient/:patientId", c.AssignDeviceToPatient)
	v1.Delete("/devices/:deviceId", c.DeleteDevice)
}

func (c *Device) CreateDevice(ctx *fiber.Ctx) error {
	var request types.CreateDeviceRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	device, err := c.DeviceService.CreateDevice(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(device)
}

func (c *Device) ListDevices(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	devices, err := c.DeviceService.ListDevices(ctx.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(devices)
}

func (c *Device) GetDeviceByID(ctx *fiber.Ctx) error {
	deviceID, err := paramInt(ctx, "deviceId")
	if err != nil {
		return err
	}

	device, err := c.DeviceService.GetDeviceByID(ctx.UserContext(), deviceID)
	if err != nil {
		return err
	}
	return ctx.JSON(device)
}

func (c *Device) GetDeviceByMacAddress(ctx *fiber.Ctx) error {
	macAddress := ctx.Params("macAddress")
	if err := rekuest.ValidVar(ctx, macAddress, "required,mac"); err != nil {
		return err
	}

	device, err := c.DeviceService.GetDeviceByMacAddress(ctx.UserContext(), macAddress)
	if err != nil {
		return err
	}
	return ctx.JSON(device)
}

func (c *Device) AssignDeviceToPatient(ctx *fiber.Ctx) error {
	deviceID, err := paramInt(ctx, "deviceId")
	if err != nil {
		return err
	}
	patientID, err := paramInt(ctx, "patientId")
	if err != nil {
		return err
	}

	device, err := c.DeviceService.AssignDeviceToPatient(ctx.UserContext(), deviceID, patientID)
	if err != nil {
		return err
	}
	return ctx.JSON(device)
}

func (c *Device) DeleteDevice(ctx *fiber.Ctx) error {
	deviceID, err := paramInt(ctx, "deviceId")
	if err != nil {
		return err
	}

	if err := c.DeviceService.DeleteDevice(ctx.UserContext(), deviceID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
