package dataset

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

var (
	ErrNegativeMultiplier = errors.New("segment multiplier must not be negative")
	ErrNoClusters         = errors.New("cluster table is empty")
	ErrPoolSize           = errors.New("audit log pool size must be positive")
	ErrRiskWeights        = errors.New("risk weights must sum to 1")
	ErrScalingMode        = errors.New("unknown at-risk scaling mode")
)

const weightTolerance = 1e-6

// EnvPrefix marks environment variables that override single table keys.
// A double underscore separates nesting levels:
// RG_TABLES_AUDIT_LOG__POOL_SIZE -> audit_log.pool_size
const EnvPrefix = "RG_TABLES_"

// Load builds the base tables. The built-in defaults are loaded first, then
// the YAML file at path (if any), then RG_TABLES_ environment variables.
func Load(path string) (*Tables, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultTables(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default tables: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load tables file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load table overrides from environment: %w", err)
	}

	t := &Tables{}
	if err := k.Unmarshal("", t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tables: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("tables validation failed: %w", err)
	}

	return t, nil
}

func envKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func (t *Tables) Validate() error {
	named := map[string]SegmentMultipliers{
		"kpi":          t.KPI.Multipliers,
		"clusters":     t.Clusters.Multipliers,
		"segmentation": t.Segmentation.Multipliers,
		"at_risk":      t.AtRisk.Multipliers,
		"demographics": t.Demographics.Multipliers,
	}
	for name, m := range named {
		for _, v := range m.values() {
			if v < 0 {
				return fmt.Errorf("%s: %w", name, ErrNegativeMultiplier)
			}
		}
	}

	if len(t.Clusters.Base) == 0 {
		return ErrNoClusters
	}

	if t.AuditLog.PoolSize <= 0 {
		return ErrPoolSize
	}

	w := t.AtRisk.RiskWeights
	if math.Abs(w.High+w.Medium+w.Low-1) > weightTolerance {
		return ErrRiskWeights
	}

	switch t.AtRisk.Scaling {
	case ScaleBoth, ScalePopulation, ScaleMagnitude:
	default:
		return fmt.Errorf("%q: %w", t.AtRisk.Scaling, ErrScalingMode)
	}

	return nil
}
