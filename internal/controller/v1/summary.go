package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/motus-health/backend/internal/pkg/apperr"
	"github.com/motus-health/backend/internal/server/svr"
	"github.com/motus-health/backend/internal/service"
)

type Summary struct {
	fx.In

	SummaryService *service.Summary
}

func RegisterSummary(v1 *svr.V1, c Summary) {
	v1.Get("/patients/:patientId/summaries/daily/:date", c.DailySummary)
	v1.Get("/patients/:patientId/summaries/monthly/:month", c.MonthlySummary)
}

func (c *Summary) DailySummary(ctx *fiber.Ctx) error {
	patientID, err := paramInt(ctx, "patientId")
	if err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", ctx.Params("date"))
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid date: expecting format 2006-01-02")
	}

	summary, err := c.SummaryService.Daily(ctx.UserContext(), patientID, date)
	if err != nil {
		return err
	}
	return ctx.JSON(summary)
}

func (c *Summary) MonthlySummary(ctx *fiber.Ctx) error {
	patientID, err := paramInt(ctx, "patientId")
	if err != nil {
		return err
	}

	month, err := time.Parse("2006-01", ctx.Params("month"))
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid month: expecting format 2006-01")
	}

	summary, err := c.SummaryService.Monthly(ctx.UserContext(), patientID, month)
	if err != nil {
		return err
	}
	return ctx.JSON(summary)
}
