package environment

import (
	"testing"

	"github.com/innovcell/ic_events/testutils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func Test_NewEnv__should_load_defined_env_vars(t *testing.T) {
	restore := testutils.SetEnvVars(map[string]string{
		Port:          "8080",
		MongoDatabase: "ic_events",
	})
	defer restore()

	env := NewEnv(zap.NewNop())

	assert.Equal(t, "8080", env.Get(Port))
	assert.Equal(t, "ic_events", env.Get(MongoDatabase))
}

func Test_Get__should_return_empty_string_for_undefined_var(t *testing.T) {
	restore := testutils.UnsetVars(JWTSecret)
	defer restore()

	env := NewEnv(zap.NewNop())

	assert.Equal(t, "", env.Get(JWTSecret))
}
