//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/internal/eval"
)

func InitializeApp(level log.Level) *App {
	wire.Build(
		ProvideLogger,
		wire.Bind(new(log.Log), new(*log.Logger)),
		eval.New,
		NewApp,
	)
	return nil
}
