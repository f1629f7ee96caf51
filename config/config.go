package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scidata-tools/inspect/message"
	"github.com/scidata-tools/inspect/registry"
)

// skipKey disables a check entirely instead of re-ranking it.
const skipKey = "skip"

// Config maps an importance level name (or "skip") to the checks it applies
// to. Keys are case-insensitive.
type Config map[string][]string

// Load reads a Config from a YAML file.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a Config from YAML.
func Parse(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the config against a registry before it is applied: every
// key must be a known, non-reserved importance level or "skip", and every
// named check must be registered.
func (c Config) Validate(reg *registry.Registry) error {
	for key, names := range c {
		if _, err := parseKey(key); err != nil {
			return err
		}
		for _, name := range names {
			if _, ok := reg.Get(name); !ok {
				return fmt.Errorf("config %q: unknown check %q", key, name)
			}
		}
	}
	return nil
}

// Apply returns a derived registry: checks named under "skip" are omitted,
// checks named under an importance level are re-registered at that level,
// and everything else carries over unchanged. The derived registry shares
// the source's type schema, and rules keep their registration order.
func (c Config) Apply(reg *registry.Registry) (*registry.Registry, error) {
	if err := c.Validate(reg); err != nil {
		return nil, err
	}
	overrides := make(map[string]message.Importance)
	skipped := make(map[string]struct{})
	for key, names := range c {
		imp, _ := parseKey(key)
		for _, name := range names {
			if imp == "" {
				skipped[name] = struct{}{}
			} else {
				overrides[name] = imp
			}
		}
	}
	derived := registry.New(reg.Schema())
	for _, r := range reg.Rules() {
		if _, ok := skipped[r.Name]; ok {
			continue
		}
		rule := *r
		if imp, ok := overrides[rule.Name]; ok {
			rule.Importance = imp
		}
		if err := derived.Register(rule); err != nil {
			return nil, err
		}
	}
	return derived, nil
}

// parseKey resolves a config key to an importance level, or to the empty
// importance for "skip".
func parseKey(key string) (message.Importance, error) {
	lower := strings.ToLower(key)
	if lower == skipKey {
		return "", nil
	}
	imp, err := message.ParseImportance(lower)
	if err != nil {
		return "", fmt.Errorf("config key %q: not an importance level or %q", key, skipKey)
	}
	if imp.IsReserved() {
		return "", fmt.Errorf("config key %q: importance level is reserved for the engine", key)
	}
	return imp, nil
}
