package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/server/svr"
	"github.com/motus-health/backend/internal/service"
	"github.com/motus-health/backend/internal/util/rekuest"
)

type Personnel struct {
	fx.In

	PersonnelService *service.Personnel
	PatientService   *service.Patient
}

func RegisterPersonnel(v1 *svr.V1, c Personnel) {
	v1.Post("/personnel", c.CreatePersonnel)
	v1.Get("/personnel", c.ListPersonnel)
	v1.Get("/personnel/:personnelId", c.GetPersonnelByID)
	v1.Get("/personnel/:personnelId/patients", c.ListPatients)
	v1.Put("/personnel/:personnelId", c.UpdatePersonnel)
	v1.Delete("/personnel/:personnelId", c.DeletePersonnel)
}

func (c *Personnel) CreatePersonnel(ctx *fiber.Ctx) error {
	var request types.CreatePersonnelRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	personnel, err := c.PersonnelService.CreatePersonnel(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(personnel)
}

func (c *Personnel) ListPersonnel(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	personnel, err := c.PersonnelService.ListPersonnel(ctx.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(personnel)
}

func (c *Personnel) GetPersonnelByID(ctx *fiber.Ctx) error {
	personnelID, err := paramInt(ctx, "personnelId")
	if err != nil {
		return err
	}

	personnel, err := c.PersonnelService.GetPersonnelByID(ctx.UserContext(), personnelID)
	if err != nil {
		return err
	}
	return ctx.JSON(personnel)
}

func (c *Personnel) ListPatients(ctx *fiber.Ctx) error {
	personnelID, err := paramInt(ctx, "personnelId")
	if err != nil {
		return err
	}

	patients, err := c.PatientService.ListPatientsByPersonnelID(ctx.UserContext(), personnelID)
	if err != nil {
		return err
	}
	return ctx.JSON(patients)
}

func (c *Personnel) UpdatePersonnel(ctx *fiber.Ctx) error {
	personnelID, err := paramInt(ctx, "personnelId")
	if err != nil {
		return err
	}

	var request types.UpdatePersonnelRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	personnel, err := c.PersonnelService.UpdatePersonnel(ctx.UserContext(), personnelID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(personnel)
}

func (c *Personnel) DeletePersonnel(ctx *fiber.Ctx) error {
	personnelID, err := paramInt(ctx, "personnelId")
	if err != nil {
		return err
	}

	if err := c.PersonnelService.DeletePersonnel(ctx.UserContext(), personnelID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
