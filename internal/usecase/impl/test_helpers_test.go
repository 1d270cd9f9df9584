package impl

import (
	"io"
	"log/slog"

	"autopilot/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Clover: &config.CloverConfig{
			AppID:     "test-app-id",
			AppSecret: "test-app-secret",
		},
		Retell: &config.RetellConfig{
			APIKey: "test-retell-key",
		},
		Dashboard: &config.DashboardConfig{
			CallLogLimit:     20,
			MessageLogLimit:  50,
			CustomerPageSize: 50,
		},
	}
}
