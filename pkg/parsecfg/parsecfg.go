// Package parsecfg loads grammar-run configuration from YAML or JSON.
// It is narrowed to the one resource bound a grammar run actually needs:
// a recursion depth guard for deeply left-nested bind/choice chains.
package parsecfg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RunConfig governs one optional resource bound a grammar run can be
// given. It never changes Reply semantics — it only bounds how many
// nested Ref calls a Grammar built by combinator.NewGrammarFromConfig
// makes before it panics with a parseerr.ConstructionError, instead of
// exhausting the Go call stack. Many, SepBy and the Chainl/Chainr family
// do not read it; they loop rather than recurse.
type RunConfig struct {
	MaxDepth             int  `json:"maxDepth" yaml:"maxDepth"`
	EnableRecursionGuard bool `json:"enableRecursionGuard" yaml:"enableRecursionGuard"`
	TraceEnabled         bool `json:"traceEnabled" yaml:"traceEnabled"`
}

// Default returns the unguarded configuration: no depth guard, no
// tracing. (pkg/parser.Run itself takes no configuration.)
func Default() RunConfig {
	return RunConfig{MaxDepth: 0, EnableRecursionGuard: false, TraceEnabled: false}
}

// Load reads a YAML or JSON configuration file, chosen by its extension
// ("./grammar.yaml", "./grammar.json"), into a RunConfig.
func Load(path string) (RunConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("parsecfg: reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsecfg: parsing yaml %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsecfg: parsing json %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("parsecfg: unsupported config extension %q", filepath.Ext(path))
	}
	return cfg, nil
}

// Save writes cfg back out as YAML.
func Save(path string, cfg RunConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("parsecfg: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("parsecfg: writing %s: %w", path, err)
	}
	return nil
}
