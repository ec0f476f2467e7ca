package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/config"
)

func TestNewAdvisor_ValidatesMatcherConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.MatcherConfig)
		wantErr string
	}{
		{"defaults", func(*config.MatcherConfig) {}, ""},
		{"negative penalty", func(m *config.MatcherConfig) { m.ConservativePenalty = -500 }, "conservative_penalty must be between 0 and 100"},
		{"zero min risk", func(m *config.MatcherConfig) { m.VeryAggressiveMinRisk = 0 }, "very_aggressive_min_risk must be between 1 and 10"},
		{"inverted thresholds", func(m *config.MatcherConfig) { m.AggressiveMinRisk = 8 }, "very_aggressive_min_risk must be >= aggressive_min_risk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, config.DriverNone, "")
			tt.mutate(&cfg.Matcher)

			// Overrides like these pass the coarse config checks.
			require.NoError(t, cfg.Validate("cli"))

			svc, closeFn, err := newAdvisor(context.Background(), false)
			if tt.wantErr == "" {
				require.NoError(t, err)
				defer closeFn()
				assert.NotNil(t, svc)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, svc)
		})
	}
}
