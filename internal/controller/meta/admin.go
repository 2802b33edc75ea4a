package meta

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/motus-health/backend/internal/model/cache"
	"github.com/motus-health/backend/internal/model/types"
	"github.com/motus-health/backend/internal/server/svr"
	"github.com/motus-health/backend/internal/util/rekuest"
)

type Admin struct {
	fx.In
}

func RegisterAdmin(admin *svr.Admin, c Admin) {
	admin.Post("/purge", c.PurgeCache)
}

func (c *Admin) PurgeCache(ctx *fiber.Ctx) error {
	var request types.PurgeCacheRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	return cache.Delete(request.Name, request.Key)
}
