package config

import (
	"context"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// LoadConfig loads a configuration file from the given path. The format is
// resolved through the parser registry by file extension (.json, .yaml/.yml,
// .hcl); a plain .patchrc file may be either YAML or HCL, tried in that
// order.
func LoadConfig(ctx context.Context, path string) (*PatchrcConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg *PatchrcConfig

	if filepath.Ext(path) == ".patchrc" {
		cfg, err = (&YAMLParser{}).Parse(ctx, data)
		if err != nil {
			cfg, err = (&HCLParser{}).Parse(ctx, data)
		}
		if err != nil {
			return nil, errors.Errorf("failed to parse .patchrc as YAML or HCL: %w", err)
		}
	} else {
		p := GetParser(path)
		if p == nil {
			return nil, errors.Errorf("no parser found for file: %s", path)
		}

		cfg, err = p.Parse(ctx, data)
		if err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
	}

	cfg.location = path
	if err := Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
