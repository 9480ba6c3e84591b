package di

import (
	"go.uber.org/fx"

	"github.com/l2drycleaners/cleanpress/internal/app"
	"github.com/l2drycleaners/cleanpress/internal/config"
	"github.com/l2drycleaners/cleanpress/internal/logger"
	"github.com/l2drycleaners/cleanpress/internal/pkg/auth"
	"github.com/l2drycleaners/cleanpress/internal/server/http/router"
	"github.com/l2drycleaners/cleanpress/internal/storage/postgres"
	"github.com/l2drycleaners/cleanpress/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
