package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/server/svr"
	"github.com/motus-health/backend/internal/service"
	"github.com/motus-health/backend/internal/util/rekuest"
)

type ActivityTarget struct {
	fx.In

	ActivityTargetService *service.ActivityTarget
}

func RegisterActivityTarget(v1 *svr.V1, c ActivityTarget) {
	v1.Post("/activity-targets", c.CreateActivityTarget)
	v1.Get("/activity-targets", c.ListActivityTargets)
	v1.Get("/activity-targets/:targetId", c.GetActivityTargetByID)
	v1.Put("/activity-targets/:targetId", c.UpdateActivityTarget)
	v1.Delete("/activity-targets/:targetId", c.DeleteActivityTarget)
}

func (c *ActivityTarget) CreateActivityTarget(ctx *fiber.Ctx) error {
	var request types.CreateActivityTargetRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	target, err := c.ActivityTargetService.CreateActivityTarget(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(target)
}

func (c *ActivityTarget) ListActivityTargets(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	targets, err := c.ActivityTargetService.ListActivityTargets(ctx.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(targets)
}

func (c *ActivityTarget) GetActivityTargetByID(ctx *fiber.Ctx) error {
	targetID, err := paramInt(ctx, "targetId")
	if err != nil {
		return err
	}

	target, err := c.ActivityTargetService.GetActivityTargetByID(ctx.UserContext(), targetID)
	if err != nil {
		return err
	}
	return ctx.JSON(target)
}

func (c *ActivityTarget) UpdateActivityTarget(ctx *fiber.Ctx) error {
	targetID, err := paramInt(ctx, "targetId")
	if err != nil {
		return err
	}

	var request types.UpdateActivityTargetRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	target, err := c.ActivityTargetService.UpdateActivityTarget(ctx.UserContext(), targetID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(target)
}

func (c *ActivityTarget) DeleteActivityTarget(ctx *fiber.Ctx) error {
	targetID, err := paramInt(ctx, "targetId")
	if err != nil {
		return err
	}

	if err := c.ActivityTargetService.DeleteActivityTarget(ctx.UserContext(), targetID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
