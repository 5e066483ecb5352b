package cli_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/rshade/aboutlibs/internal/cli"
	"github.com/rshade/aboutlibs/internal/library"
)

const kotlinDescriptor = `[
  {"name":"kotlinx-coroutines","author":["JetBrains"],"version":"1.7.3","licenses":["Apache-2.0"]},
  {"name":"okio","author":["Square"],"version":"3.6.0","licenses":["Apache-2.0"]}
]`

// setupCLITest isolates config and logging from the developer's machine.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("ABOUTLIBS_HOME", home)
	t.Setenv("ABOUTLIBS_PROJECT_DIR", "")
	t.Setenv("ABOUTLIBS_LOG_LEVEL", "error")
	t.Setenv("ABOUTLIBS_LOG_FORMAT", "")
	return home
}

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aboutlibraries.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShow_PlainTable(t *testing.T) {
	setupCLITest(t)
	path := writeDescriptor(t, kotlinDescriptor)

	out, err := execute(t, "", "show", "--plain", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "LICENSES")
	assert.Contains(t, lines[1], "kotlinx-coroutines")
	assert.Contains(t, lines[1], "JetBrains")
	assert.Contains(t, lines[1], "1.7.3")
	assert.Contains(t, lines[2], "okio")
}

func TestShow_HideFlags(t *testing.T) {
	setupCLITest(t)
	path := writeDescriptor(t, kotlinDescriptor)

	out, err := execute(t, "", "show", "--plain", "--no-version", "--no-badges", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "VERSION")
	assert.NotContains(t, out, "1.7.3")
	assert.NotContains(t, out, "Apache-2.0")
	assert.Contains(t, out, "JetBrains")
}

func TestShow_ConfigHidesAuthor(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("display:\n  show_author: false\n  show_version: true\n  show_license_badges: true\n"), 0o600))
	path := writeDescriptor(t, kotlinDescriptor)

	out, err := execute(t, "", "show", "--plain", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "AUTHOR")
	assert.NotContains(t, out, "JetBrains")
}

func TestShow_Stdin(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, kotlinDescriptor, "show", "--plain", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "okio")
}

func TestShow_CompressedInput(t *testing.T) {
	setupCLITest(t)

	compress := map[string]func(w io.Writer) (io.WriteCloser, error){
		"xz": func(w io.Writer) (io.WriteCloser, error) { return xz.NewWriter(w) },
		"gz": func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil },
	}

	for name, newWriter := range compress {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := newWriter(&buf)
			require.NoError(t, err)
			_, err = io.WriteString(w, kotlinDescriptor)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			path := filepath.Join(t.TempDir(), "aboutlibraries.json."+name)
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

			out, err := execute(t, "", "show", "--plain", path)
			require.NoError(t, err)
			assert.Contains(t, out, "kotlinx-coroutines")

			out, err = execute(t, buf.String(), "show", "--plain", "-")
			require.NoError(t, err)
			assert.Contains(t, out, "okio")
		})
	}
}

func TestShow_EmptyArray(t *testing.T) {
	setupCLITest(t)
	path := writeDescriptor(t, "[]")

	out, err := execute(t, "", "show", "--plain", path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"), "header only")
}

func TestShow_Errors(t *testing.T) {
	setupCLITest(t)

	t.Run("malformed descriptor", func(t *testing.T) {
		path := writeDescriptor(t, `[{"name":"a"`)
		_, err := execute(t, "", "show", "--plain", path)
		require.Error(t, err)
		require.ErrorIs(t, err, library.ErrParse)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "", "show", filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("negative padding", func(t *testing.T) {
		path := writeDescriptor(t, kotlinDescriptor)
		_, err := execute(t, "", "show", "--padding", "-4", path)
		require.Error(t, err)
	})

	t.Run("no argument", func(t *testing.T) {
		_, err := execute(t, "", "show")
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	setupCLITest(t)

	t.Run("clean descriptor", func(t *testing.T) {
		path := writeDescriptor(t, kotlinDescriptor)
		out, err := execute(t, "", "validate", "--strict", path)
		require.NoError(t, err)
		assert.Contains(t, out, "2 libraries loaded")
		assert.NotContains(t, out, "warning")
	})

	t.Run("warnings", func(t *testing.T) {
		path := writeDescriptor(t, `[{"name":"a","version":"latest"},{"name":"A","licenses":["MIT"]}]`)
		out, err := execute(t, "", "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "warning: #0 a:")
		assert.Contains(t, out, "not a semantic version")
		assert.Contains(t, out, "duplicate of #0")
	})

	t.Run("strict fails on warnings", func(t *testing.T) {
		path := writeDescriptor(t, `[{"name":"a"}]`)
		_, err := execute(t, "", "validate", "--strict", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strict")
	})

	t.Run("schema failure", func(t *testing.T) {
		path := writeDescriptor(t, `[{"name":"ok"},{"name":"bad","version":1.0}]`)
		_, err := execute(t, "", "validate", path)
		require.ErrorIs(t, err, library.ErrParse)
	})
}

func TestLicenses(t *testing.T) {
	setupCLITest(t)
	path := writeDescriptor(t, `[
	  {"name":"a","licenses":["MIT"]},
	  {"name":"b","licenses":["Apache-2.0","MIT"]},
	  {"name":"c"}
	]`)

	out, err := execute(t, "", "licenses", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "LICENSE")
	assert.Equal(t, []string{"MIT", "2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Apache-2.0", "1"}, strings.Fields(lines[2]))
}

func TestLicenses_NoneDeclared(t *testing.T) {
	setupCLITest(t)
	path := writeDescriptor(t, `[{"name":"a"}]`)

	out, err := execute(t, "", "licenses", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No licenses declared.")
}
