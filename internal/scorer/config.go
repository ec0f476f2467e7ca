// Package scorer ranks model portfolios by suitability for a risk profile.
package scorer

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/config"
)

// ValidateConfig checks that a MatcherConfig is internally consistent.
func ValidateConfig(c config.MatcherConfig) error {
	var errs []string

	// Thresholds.
	if c.MinScore < 0 || c.MinScore > 100 {
		errs = append(errs, "min_score must be between 0 and 100")
	}
	if c.MaxResults < 1 {
		errs = append(errs, "max_results must be >= 1")
	}
	if c.RiskDiffWeight < 0 {
		errs = append(errs, "risk_diff_weight must be >= 0")
	}

	// Penalties.
	penalties := []struct {
		name string
		v    float64
	}{
		{"conservative_penalty", c.ConservativePenalty},
		{"aggressive_penalty", c.AggressivePenalty},
		{"very_aggressive_penalty", c.VeryAggressivePenalty},
	}
	for _, p := range penalties {
		if p.v < 0 || p.v > 100 {
			errs = append(errs, fmt.Sprintf("%s must be between 0 and 100", p.name))
		}
	}

	// Risk thresholds are portfolio risk levels.
	levels := []struct {
		name string
		v    int
	}{
		{"conservative_max_risk", c.ConservativeMaxRisk},
		{"aggressive_min_risk", c.AggressiveMinRisk},
		{"very_aggressive_min_risk", c.VeryAggressiveMinRisk},
	}
	for _, l := range levels {
		if l.v < 1 || l.v > 10 {
			errs = append(errs, fmt.Sprintf("%s must be between 1 and 10", l.name))
		}
	}
	if c.VeryAggressiveMinRisk < c.AggressiveMinRisk {
		errs = append(errs, "very_aggressive_min_risk must be >= aggressive_min_risk")
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// ConfigHash returns a short stable hash of a config, recorded alongside
// persisted results.
func ConfigHash(cfg any) string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:16]) // 32 hex chars
}
