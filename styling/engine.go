package styling

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// StylingConfig represents the styling rules configuration structure
type StylingConfig struct {
	Version      string                `json:"version"`
	Temperatures map[string]BandConfig `json:"temperatures"`
	Occasions    []string              `json:"occasions"`
}

// BandConfig describes one temperature band
type BandConfig struct {
	Label       string   `json:"label"`
	Avoid       []string `json:"avoid"`
	Preferred   []string `json:"preferred"`
	Accessories []string `json:"accessories"`
}

// Engine serves styling rules loaded from a JSON file
type Engine struct {
	config *StylingConfig
}

var (
	engineInstance *Engine
	engineMu       sync.RWMutex
)

// NewEngine loads the styling config and installs it as the shared engine
func NewEngine(configPath string) (*Engine, error) {
	// Resolve config path
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read styling config: %w", err)
	}

	engine, err := Parse(data)
	if err != nil {
		return nil, err
	}

	engineMu.Lock()
	engineInstance = engine
	engineMu.Unlock()

	log.Printf("✅ StylingEngine: Successfully loaded styling config from %s (%d temperature bands)", configPath, len(engine.config.Temperatures))
	return engine, nil
}

// Parse builds an engine from raw JSON without installing it
func Parse(data []byte) (*Engine, error) {
	var config StylingConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid styling config: %w", err)
	}

	normalized := make(map[string]BandConfig, len(config.Temperatures))
	for name, band := range config.Temperatures {
		band.Avoid = normalizeKeywords(band.Avoid)
		normalized[strings.ToLower(strings.TrimSpace(name))] = band
	}
	config.Temperatures = normalized

	return &Engine{config: &config}, nil
}

func validateConfig(config *StylingConfig) error {
	if len(config.Temperatures) == 0 {
		return fmt.Errorf("temperatures are required")
	}
	for name, band := range config.Temperatures {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("temperature band name cannot be empty")
		}
		for _, kw := range band.Avoid {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("temperature band %q has an empty avoid keyword", name)
			}
		}
	}
	return nil
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, strings.ToLower(strings.TrimSpace(kw)))
	}
	return out
}

// GetEngine returns the shared styling engine, or nil if none was loaded
func GetEngine() *Engine {
	engineMu.RLock()
	defer engineMu.RUnlock()
	return engineInstance
}

// TemperatureRules returns avoid keywords per band, ready for outfit.Options
func (e *Engine) TemperatureRules() map[string][]string {
	rules := make(map[string][]string, len(e.config.Temperatures))
	for name, band := range e.config.Temperatures {
		rules[name] = append([]string(nil), band.Avoid...)
	}
	return rules
}

// Bands returns the configured temperature band names in sorted order
func (e *Engine) Bands() []string {
	names := make([]string, 0, len(e.config.Temperatures))
	for name := range e.config.Temperatures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Band returns the configuration of one temperature band
func (e *Engine) Band(name string) (BandConfig, bool) {
	band, ok := e.config.Temperatures[strings.ToLower(strings.TrimSpace(name))]
	return band, ok
}

// IsKnownOccasion reports whether the occasion is listed in the config.
// Any occasion is accepted when the config lists none.
func (e *Engine) IsKnownOccasion(occasion string) bool {
	if len(e.config.Occasions) == 0 {
		return true
	}
	o := strings.ToLower(strings.TrimSpace(occasion))
	for _, known := range e.config.Occasions {
		if strings.ToLower(known) == o {
			return true
		}
	}
	return false
}
