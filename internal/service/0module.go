package service

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewFrame,
		NewHealth,
		NewDevice,
		NewPatient,
		NewSummary,
		NewPersonnel,
		NewTelemetry,
		NewActivityType,
		NewActivityTarget,
	))
}
