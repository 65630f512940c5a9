package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		ESR: ESR{
			BaseURL:    "https://apps.fas.usda.gov/OpenData",
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			RetryDelay: time.Second,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "configuração padrão", mutate: func(c *Config) {}},
		{name: "offset 1", mutate: func(c *Config) { c.Pipeline.MonthOffset = 1 }},
		{
			name:    "offset fora do intervalo",
			mutate:  func(c *Config) { c.Pipeline.MonthOffset = 2 },
			wantErr: "PIPELINE_MONTH_OFFSET",
		},
		{
			name:    "retentativas negativas",
			mutate:  func(c *Config) { c.ESR.MaxRetries = -1 },
			wantErr: "ESR_MAX_RETRIES",
		},
		{
			name:    "sem url base",
			mutate:  func(c *Config) { c.ESR.BaseURL = "" },
			wantErr: "ESR_BASE_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
