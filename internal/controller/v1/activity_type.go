package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/server/svr"
	"github.com/motus-health/backend/internal/service"
	"github.com/motus-health/backend/internal/util/rekuest"
)

type ActivityType struct {
	fx.In

	ActivityTypeService *service.ActivityType
}

func RegisterActivityType(v1 *svr.V1, c ActivityType) {
	v1.Post("/activity-types", c.CreateActivityType)
	v1.Get("/activity-types", c.ListActivityTypes)
	v1.Get("/activity-types/:activityTypeId", c.GetActivityTypeByID)
	v1.Put("/activity-types/:activityTypeId", c.UpdateActivityType)
	v1.Delete("/activity-types/:activityTypeId", c.DeleteActivityType)
}

func (c *ActivityType) CreateActivityType(ctx *fiber.Ctx) error {
	var request types.CreateActivityTypeRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	activityType, err := c.ActivityTypeService.CreateActivityType(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(activityType)
}

func (c *ActivityType) ListActivityTypes(ctx *fiber.Ctx) error {
	activityTypes, err := c.ActivityTypeService.ListActivityTypes(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(activityTypes)
}

func (c *ActivityType) GetActivityTypeByID(ctx *fiber.Ctx) error {
	activityTypeID, err := paramInt(ctx, "activityTypeId")
	if err != nil {
		return err
	}

	activityType, err := c.ActivityTypeService.GetActivityTypeByID(ctx.UserContext(), activityTypeID)
	if err != nil {
		return err
	}
	return ctx.JSON(activityType)
}

func (c *ActivityType) UpdateActivityType(ctx *fiber.Ctx) error {
	activityTypeID, err := paramInt(ctx, "activityTypeId")
	if err != nil {
		return err
	}

	var request types.UpdateActivityTypeRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	activityType, err := c.ActivityTypeService.UpdateActivityType(ctx.UserContext(), activityTypeID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(activityType)
}

func (c *ActivityType) DeleteActivityType(ctx *fiber.Ctx) error {
	activityTypeID, err := paramInt(ctx, "activityTypeId")
	if err != nil {
		return err
	}

	if err := c.ActivityTypeService.DeleteActivityType(ctx.UserContext(), activityTypeID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
