package controllers_fx

import (
	"go.uber.org/fx"

	"pinpoint/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewFirmsController),
	fx.Provide(controllers.NewSupportTicketsController),
	fx.Provide(controllers.NewUsersController))
