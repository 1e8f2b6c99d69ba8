package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/vecmath/internal/config"
	"github.com/zeusync/vecmath/internal/core/observability/log"
)

func TestInitializeApp(t *testing.T) {
	app := InitializeApp(log.LevelWarn)
	require.NotNil(t, app)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Evaluator)
	assert.Equal(t, log.LevelWarn, app.Logger.GetLevel())

	res, err := app.Evaluator.Evaluate(config.Scenario{Name: "n", Op: "neg", A: config.Vec(1, 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, config.Vec(-1, -2, -3).V, res.Vector)
}
