package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/pkg/apperr"
	"github.com/motus-health/backend/internal/server/svr"
	"github.com/motus-health/backend/internal/service"
	"github.com/motus-health/backend/internal/util/rekuest"
)

type Patient struct {
	fx.In

	PatientService *service.Patient
	FrameService   *service.Frame
	TargetService  *service.ActivityTarget
}

func RegisterPatient(v1 *svr.V1, c Patient) {
	v1.Post("/patients", c.CreatePatient)
	v1.Get("/patients", c.ListPatients)
	v1.Get("/patients/:patientId", c.GetPatientByID)
	v1.Get("/patients/:patientId/frames", c.ListFramesForDate)
	v1.Get("/patients/:patientId/targets", c.ListTargets)
	v1.Put("/patients/:patientId", c.UpdatePatient)
	v1.Delete("/patients/:patientId", c.DeletePatient)
}

func (c *Patient) CreatePatient(ctx *fiber.Ctx) error {
	var request types.CreatePatientRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	patient, err := c.PatientService.CreatePatient(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(patient)
}

func (c *Patient) ListPatients(ctx *fiber.Ctx) error {
	limit, offset := pagination(ctx)
	patients, err := c.PatientService.ListPatients(ctx.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(patients)
}

func (c *Patient) GetPatientByID(ctx *fiber.Ctx) error {
	patientID, err := paramInt(ctx, "patientId")
	if err != nil {
		return err
	}

	patient, err := c.PatientService.GetPatientByID(ctx.UserContext(), patientID)
	if err != nil {
		return err
	}
	return ctx.JSON(patient)
}

// ListFramesForDate returns the patient's raw frames for one calendar day,
// given as ?date=2006-01-02.
func (c *Patient) ListFramesForDate(ctx *fiber.Ctx) error {
	patientID, err := paramInt(ctx, "patientId")
	if err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid or missing date: expecting format 2006-01-02")
	}

	frames, err := c.FrameService.FramesForDate(ctx.UserContext(), patientID, date)
	if err != nil {
		return err
	}
	return ctx.JSON(frames)
}

func (c *Patient) ListTargets(ctx *fiber.Ctx) error {
	patientID, err := paramInt(ctx, "patientId")
	if err != nil {
		return err
	}

	targets, err := c.TargetService.ListActivityTargetsByPatientID(ctx.UserContext(), patientID)
	if err != nil {
		return err
	}
	return ctx.JSON(targets)
}

func (c *Patient) UpdatePatient(ctx *fiber.Ctx) error {
	patientID, err := paramInt(ctx, "patientId")
	if err != nil {
		return err
	}

	var request types.UpdatePatientRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	patient, err := c.PatientService.UpdatePatient(ctx.UserContext(), patientID, &request)
	if err != nil {
		return err
	}
	return ctx.JSON(patient)
}

func (c *Patient) DeletePatient(ctx *fiber.Ctx) error {
	patientID, err := paramInt(ctx, "patientId")
	if err != nil {
		return err
	}

	if err := c.PatientService.DeletePatient(ctx.UserContext(), patientID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
