package bootstrap_test

import (
	"testing"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/bootstrap"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	cases := []struct {
		name  string
		cfg   config.Config
		debug bool
		info  bool
	}{
		{"debug level", config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "debug", Format: "json"}}, true, true},
		{"warn level in production", config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn"}}, false, false},
		{"unknown level falls back to info", config.Config{Log: config.LogConfig{Level: "loud"}}, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := bootstrap.NewLogger(&tc.cfg)
			require.NoError(t, err)

			assert.Equal(t, tc.debug, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tc.info, logger.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
