package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/pkg/middlewares"
	"github.com/motus-health/backend/internal/server/svr"
	"github.com/motus-health/backend/internal/service"
	"github.com/motus-health/backend/internal/util/rekuest"
)

type Telemetry struct {
	fx.In

	TelemetryService *service.Telemetry
}

func RegisterTelemetry(v1 *svr.V1, c Telemetry) {
	v1.Post("/telemetry", middlewares.AcceptsJSON, c.Ingest)
}

func (c *Telemetry) Ingest(ctx *fiber.Ctx) error {
	var request types.IngestRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	resp, err := c.TelemetryService.Ingest(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	// always 200: payload noise decodes to an empty or partial frame list
	return ctx.JSON(resp)
}
