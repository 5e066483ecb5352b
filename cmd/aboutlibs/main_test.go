package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/aboutlibs/internal/cli"
	"github.com/rshade/aboutlibs/internal/library"
	"github.com/rshade/aboutlibs/pkg/version"
)

func TestMainComponents(t *testing.T) {
	root := cli.NewRootCmd(version.String())
	assert.Equal(t, "aboutlibs", root.Name())
	assert.NotEmpty(t, root.Version)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"show", "window", "validate", "licenses", "config"})
}

func TestExitCode(t *testing.T) {
	parseErr := &library.ParseError{Stage: library.StageSyntax, Err: errors.New("unexpected end of JSON input")}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "parse error", err: parseErr, want: 2},
		{name: "wrapped parse error", err: fmt.Errorf("descriptor x.json: %w", parseErr), want: 2},
		{name: "other error", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
