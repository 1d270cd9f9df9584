package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"clover": map[string]any{
			"appId":     "",
			"appSecret": "",
			"tokenUrl":  "",
		},
		"retell": map[string]any{
			"apiKey": "",
		},
		"dashboard": map[string]any{
			"callLogLimit": 20,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CLOVER_APPID", want: "clover.appId"},
		{envKey: "CLOVER_APPSECRET", want: "clover.appSecret"},
		{envKey: "CLOVER_TOKENURL", want: "clover.tokenUrl"},
		{envKey: "RETELL_APIKEY", want: "retell.apiKey"},
		{envKey: "DASHBOARD_CALLLOGLIMIT", want: "dashboard.callLogLimit"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
