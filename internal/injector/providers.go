package injector

import (
	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/internal/eval"
)

// App holds the dependencies of the vec3calc command.
type App struct {
	Logger    *log.Logger
	Evaluator *eval.Evaluator
}

func NewApp(logger *log.Logger, evaluator *eval.Evaluator) *App {
	return &App{Logger: logger, Evaluator: evaluator}
}

func ProvideLogger(level log.Level) *log.Logger {
	return log.New(level)
}
