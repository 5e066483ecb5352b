package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML keys that map to Config sections.
const (
	keyDisplay = "display"
	keyLayout  = "layout"
	keyLogging = "logging"
)

// ShallowMergeYAML loads a YAML file and merges it onto target key by key.
// Fields the overlay sets replace the target's; everything else, including
// fields omitted inside a present section, is left unchanged. Unknown keys are
// ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// decodeSection decodes node onto a copy of the current section, so omitted
// fields keep their values, and assigns it back only on success.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyDisplay:
		v := target.Display
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Display = v
	case keyLayout:
		v := target.Layout
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Layout = v
	case keyLogging:
		v := target.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
