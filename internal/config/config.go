// Package config loads and stores the operator-tunable pipeline parameters.
//
// Parameter presets are YAML files whose keys match the yaml tags of
// pipeline.Parameters. Keys absent from a preset keep their default value.
// Process settings come from the environment; see Environment.
package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/frame-vision-mcp/internal/pipeline"
)

// Environment variables read by LoadEnvironment.
const (
	EnvLogLevel    = "VISION_MCP_LOG_LEVEL"
	EnvParams      = "VISION_MCP_PARAMS"
	EnvMetricsAddr = "VISION_MCP_METRICS_ADDR"
)

// Environment holds process settings taken from environment variables.
type Environment struct {
	// LogLevel is "debug" to enable verbose logging.
	LogLevel string

	// ParamsPath is a YAML preset loaded at startup. Empty means defaults.
	ParamsPath string

	// MetricsAddr is the listen address for the metrics endpoint, e.g.
	// ":9102". Empty disables it.
	MetricsAddr string
}

// Debug reports whether debug logging is enabled.
func (e Environment) Debug() bool {
	return e.LogLevel == "debug"
}

// LoadEnvironment reads the VISION_MCP_* variables.
func LoadEnvironment() Environment {
	return Environment{
		LogLevel:    os.Getenv(EnvLogLevel),
		ParamsPath:  os.Getenv(EnvParams),
		MetricsAddr: os.Getenv(EnvMetricsAddr),
	}
}

// LoadFile reads a YAML parameter preset. Fields missing from the file take
// their pipeline.DefaultParameters value. The result is validated.
func LoadFile(path string) (pipeline.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Parameters{}, fmt.Errorf("failed to read parameters: %w", err)
	}

	p := pipeline.DefaultParameters()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return pipeline.Parameters{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return pipeline.Parameters{}, fmt.Errorf("invalid parameters in %s: %w", path, err)
	}
	return p, nil
}

// SaveFile writes p to path as YAML, replacing any existing file.
func SaveFile(path string, p pipeline.Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write parameters: %w", err)
	}
	return nil
}

// Store holds the current parameters of a running server.
//
// Callers take a Snapshot per frame, so an update never changes the
// parameters of a frame already in progress. Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	params pipeline.Parameters
}

// NewStore creates a store holding p.
func NewStore(p pipeline.Parameters) *Store {
	return &Store{params: p}
}

// Snapshot returns a copy of the current parameters.
func (s *Store) Snapshot() pipeline.Parameters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// Replace validates p and makes it current.
func (s *Store) Replace(p pipeline.Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.params = p
	s.mu.Unlock()
	return nil
}

// Update applies fn to a copy of the current parameters and stores the
// result if it validates. On error the store is unchanged.
func (s *Store) Update(fn func(*pipeline.Parameters)) (pipeline.Parameters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.params
	fn(&p)
	if err := p.Validate(); err != nil {
		return s.params, err
	}
	s.params = p
	return p, nil
}
