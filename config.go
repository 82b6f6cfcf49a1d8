package kdtree

import (
	"math"
	"strconv"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Default SAH cost weights. CostTraversal is above the 15.0 of Wald & Havran,
// so small nodes stay leaves.
const (
	CostTraversal    = 100.0
	CostIntersection = 20.0
	EmptyCutBonus    = 0.8
)

// ErrTypeInvalidConfig is the error type attached to config validation
// failures. Match it with errors.Type.
const ErrTypeInvalidConfig = "kdtree-invalid-config"

// Config holds the Surface Area Heuristic weights used during construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// CostTraversal is the estimated cost of stepping through an internal
	// node. Must be finite and > 0. Default: 100.
	CostTraversal float64

	// CostIntersection is the estimated cost of testing one object. It also
	// sets the leaf threshold: a node with n objects becomes a leaf when the
	// best split costs more than CostIntersection*n. Must be finite and > 0.
	// Default: 20.
	CostIntersection float64

	// EmptyCutBonus scales the cost of splits that leave one side empty.
	// Values below 1 favour carving off empty space. Must be in (0, 1].
	// Default: 0.8.
	EmptyCutBonus float64
}

// DefaultConfig returns a Config with the default cost weights.
func DefaultConfig() Config {
	return Config{
		CostTraversal:    CostTraversal,
		CostIntersection: CostIntersection,
		EmptyCutBonus:    EmptyCutBonus,
	}
}

// validateConfig checks that cfg fields are usable and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if !isPositiveFinite(cfg.CostTraversal) {
		return errors.New("CostTraversal must be finite and > 0").
			WithType(ErrTypeInvalidConfig).
			WithTag("cost_traversal", formatFloat(cfg.CostTraversal))
	}
	if !isPositiveFinite(cfg.CostIntersection) {
		return errors.New("CostIntersection must be finite and > 0").
			WithType(ErrTypeInvalidConfig).
			WithTag("cost_intersection", formatFloat(cfg.CostIntersection))
	}
	if !(cfg.EmptyCutBonus > 0 && cfg.EmptyCutBonus <= 1) {
		return errors.New("EmptyCutBonus must be in (0, 1]").
			WithType(ErrTypeInvalidConfig).
			WithTag("empty_cut_bonus", formatFloat(cfg.EmptyCutBonus))
	}
	return nil
}

// formatFloat keeps tag values encodable when they are NaN or infinite.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
