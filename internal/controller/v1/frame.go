package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/server/svr"
	"github.com/motus-health/backend/internal/service"
	"github.com/motus-health/backend/internal/util/rekuest"
)

type Frame struct {
	fx.In

	FrameService *service.Frame
}

func RegisterFrame(v1 *svr.V1, c Frame) {
	v1.Post("/frames", c.CreateFrame)
	v1.Get("/frames", c.ListFrames)
	v1.Get("/frames/:frameId", c.GetFrameByID)
	v1.Put("/frames/:frameId", c.UpdateFrame)
	v1.Delete("/frames/:frameId", c.DeleteFrame)
}

func (c *Frame) CreateFrame(ctx *fiber.Ctx) error {
	var request types.CreateFrameRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	frame, err := c.FrameService.CreateFrame(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(frame)
}

func (c *Frame) ListFrames(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	frames, err := c.FrameService.ListFrames(ctx.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(frames)
}

func (c *Frame) GetFrameByID(ctx *fiber.Ctx) error {
	frameID, err := paramInt(ctx, "frameId")
	if err != nil {
		return err
	}

	frame, err := c.FrameService.GetFrameByID(ctx.UserContext(), frameID)
	if err != nil {
		return err
	}
	return ctx.JSON(frame)
}

func (c *Frame) UpdateFrame(ctx *fiber.Ctx) error {
	frameID, err := paramInt(ctx, "frameId")
	if err != nil {
		return err
	}

	var request types.UpdateFrameRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	frame, err := c.FrameService.UpdateFrame(ctx.UserContext(), frameID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(frame)
}

func (c *Frame) DeleteFrame(ctx *fiber.Ctx) error {
	frameID, err := paramInt(ctx, "frameId")
	if err != nil {
		return err
	}

	if err := c.FrameService.DeleteFrame(ctx.UserContext(), frameID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
