package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/motus-health/backend/internal/constant"
	"github.com/motus-health/backend/internal/pkg/apperr"
)

func paramInt(ctx *fiber.Ctx, name string) (int, error) {
	v, err := ctx.ParamsInt(name)
	if err != nil || v < 1 {
		return 0, apperr.ErrInvalidReq.Msg("invalid or missing %s", name)
	}
	return v, nil
}

func pagination(ctx *fiber.Ctx) (limit, offset int) {
	limit = ctx.QueryInt("limit", constant.DefaultListLimit)
	if limit < 1 {
		limit = constant.DefaultListLimit
	}
	if limit > constant.MaxListLimit {
		limit = constant.MaxListLimit
	}
	offset = ctx.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
