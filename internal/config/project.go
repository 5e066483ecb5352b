package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rshade/aboutlibs/internal/logging"
)

// EnvProjectDir points at a project directory holding a .aboutlibs overlay.
const EnvProjectDir = "ABOUTLIBS_PROJECT_DIR"

// ResolveProjectDir finds the project-local .aboutlibs directory. It checks,
// in order: flagValue, $ABOUTLIBS_PROJECT_DIR, then a walk up from startDir
// for a directory containing .aboutlibs/config.yaml.
//
// Returns an absolute path, or "" when no project is found.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}
	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, dirName)
		if _, statErr := os.Stat(filepath.Join(candidate, configFileName)); statErr == nil {
			return candidate
		} else if !errors.Is(statErr, os.ErrNotExist) {
			logger := logging.FromContext(ctx)
			logger.Warn().
				Str("component", "config").
				Err(statErr).
				Str("dir", candidate).
				Msg("unexpected error during project config discovery")
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// WithProjectDir returns a copy of base with the project overlay merged on top,
// then re-applies environment overrides. A missing or unreadable overlay
// leaves the copy equal to base.
func WithProjectDir(ctx context.Context, base *Config, projectDir string) *Config {
	merged := *base
	if projectDir == "" {
		return &merged
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return &merged
	}

	candidate := merged
	if err := ShallowMergeYAML(&candidate, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global settings")
		return &merged
	}
	// Environment overrides outrank every file, including the overlay.
	candidate.applyEnv()
	if err := candidate.Validate(); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("project config is invalid, using global settings")
		return &merged
	}

	return &candidate
}

// toAbsProjectDir makes dir absolute and appends ".aboutlibs" unless present.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == dirName {
		return abs
	}
	return filepath.Join(abs, dirName)
}
