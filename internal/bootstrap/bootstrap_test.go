package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chmouel/gowc/internal/buildinfo"
	"github.com/chmouel/gowc/internal/config"
	"github.com/chmouel/gowc/internal/count"
	"github.com/chmouel/gowc/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "Hello, world!\nHello, world!\nHello, world!\n"

type result struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), append([]string{appName}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// isolateConfig points the config lookup at an empty directory.
func isolateConfig(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	return base
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunAllFields(t *testing.T) {
	isolateConfig(t)
	path := writeInput(t, t.TempDir(), "test.txt", sampleText)

	res := runCLI(t, "", path)
	require.NoError(t, res.err)

	assert.Equal(t, fmt.Sprintf("%8d%8d%8d %s\n", 3, 6, 42, path), res.stdout)
	assert.Empty(t, res.stderr)
}

func TestRunStdin(t *testing.T) {
	isolateConfig(t)

	t.Run("implicit", func(t *testing.T) {
		res := runCLI(t, sampleText)
		require.NoError(t, res.err)
		assert.Equal(t, "       3       6      42 -\n", res.stdout)
	})

	t.Run("explicit dash", func(t *testing.T) {
		res := runCLI(t, sampleText, "-")
		require.NoError(t, res.err)
		assert.Equal(t, "       3       6      42 -\n", res.stdout)
	})
}

func TestRunSingleFieldFlags(t *testing.T) {
	isolateConfig(t)
	path := writeInput(t, t.TempDir(), "test.txt", sampleText)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "short lines", args: []string{"-l"}, expected: "       3"},
		{name: "long lines", args: []string{"--lines"}, expected: "       3"},
		{name: "short words", args: []string{"-w"}, expected: "       6"},
		{name: "long chars", args: []string{"--chars"}, expected: "      42"},
		{name: "lines and chars", args: []string{"-l", "-c"}, expected: "       3      42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", append(tt.args, path)...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.expected+" "+path+"\n", res.stdout)
		})
	}
}

func TestRunMultipleFilesPrintsTotal(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	first := writeInput(t, dir, "a.txt", "Hello, world!")
	second := writeInput(t, dir, "b.txt", "Hello, world!\nHello, world!")

	res := runCLI(t, "", first, second)
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "       1       2      13 "+first, lines[0])
	assert.Equal(t, "       2       4      27 "+second, lines[1])
	assert.Equal(t, "       3       6      40 total", lines[2])
}

func TestRunMissingFileContinues(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	missing := filepath.Join(dir, "nonexistent.txt")
	valid := writeInput(t, dir, "valid.txt", sampleText)

	res := runCLI(t, "", missing, valid)
	require.NoError(t, res.err)

	assert.Equal(t, "       3       6      42 "+valid+"\n       3       6      42 total\n", res.stdout)
	assert.True(t, strings.HasPrefix(res.stderr, missing+": "), "stderr: %q", res.stderr)
	assert.Equal(t, 1, strings.Count(res.stderr, "\n"))
}

func TestRunHelp(t *testing.T) {
	isolateConfig(t)

	res := runCLI(t, "", "-h")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "USAGE")
	for _, flag := range []string{"--lines", "--words", "--chars", "--version"} {
		assert.Contains(t, res.stdout, flag)
	}
}

func TestRunVersion(t *testing.T) {
	isolateConfig(t)
	buildinfo.Set("v1.2.3", "abc123", "2026-01-01", "ci")
	t.Cleanup(func() { buildinfo.Set("dev", "none", "unknown", "unknown") })

	res := runCLI(t, "", "-V")
	require.NoError(t, res.err)

	assert.Equal(t, "gowc version v1.2.3\ncommit: abc123\nbuilt at: 2026-01-01\nbuilt by: ci\n", res.stdout)
}

func TestRunUnknownFlag(t *testing.T) {
	isolateConfig(t)

	res := runCLI(t, "", "--bytes")
	assert.Error(t, res.err)
}

func TestRunConfigDefaultFields(t *testing.T) {
	base := isolateConfig(t)
	dir := filepath.Join(base, "gowc")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	writeInput(t, dir, "config.yaml", "default_fields: [lines, chars]\nfield_width: 10\n")
	path := writeInput(t, t.TempDir(), "test.txt", sampleText)

	res := runCLI(t, "", path)
	require.NoError(t, res.err)
	assert.Equal(t, "         3        42 "+path+"\n", res.stdout)

	// Explicit flags win over the configured defaults.
	res = runCLI(t, "", "-w", path)
	require.NoError(t, res.err)
	assert.Equal(t, "         6 "+path+"\n", res.stdout)
}

func TestRunConfigOverrides(t *testing.T) {
	isolateConfig(t)
	path := writeInput(t, t.TempDir(), "test.txt", sampleText)

	res := runCLI(t, "", "-C", "wc.default_fields=words", path)
	require.NoError(t, res.err)
	assert.Equal(t, "       6 "+path+"\n", res.stdout)

	res = runCLI(t, "", "-C", "wc.default_fields=lines,chars", path)
	require.NoError(t, res.err)
	assert.Equal(t, "       3      42 "+path+"\n", res.stdout)

	res = runCLI(t, "", "--config", "field_width=3", path)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "error applying config overrides")
}

func TestRunBrokenConfigFallsBack(t *testing.T) {
	base := isolateConfig(t)
	dir := filepath.Join(base, "gowc")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	writeInput(t, dir, "config.yaml", "default_fields: [lines\n")

	res := runCLI(t, "Hello, world!")
	require.NoError(t, res.err)

	assert.Equal(t, "       1       2      13 -\n", res.stdout)
	assert.Contains(t, res.stderr, "Error loading config")
}

func TestRunDebugLog(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	path := writeInput(t, dir, "test.txt", sampleText)
	logPath := filepath.Join(dir, "debug.log")

	res := runCLI(t, "", "--debug-log", logPath, path)
	require.NoError(t, res.err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), fmt.Sprintf("count %q", path))
	assert.Contains(t, string(data), "processed 1 inputs")
}

func TestCountInputsTotalIsElementwiseSum(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeInput(t, dir, "a.txt", "one two\nthree"),
		writeInput(t, dir, "b.txt", "你好, 世界"),
		count.StdinName,
	}

	var out, errOut bytes.Buffer
	total := countInputs(paths, strings.NewReader("x y z\n"), &out, &errOut, report.NewFormatter(report.All(), report.MinFieldWidth))

	var expected count.FileInfo
	for _, p := range paths {
		info, err := count.CountPath(p, strings.NewReader("x y z\n"))
		require.NoError(t, err)
		expected = expected.Add(info)
	}
	assert.Equal(t, expected, total)
	assert.Equal(t, 4, strings.Count(out.String(), "\n"))
	assert.Empty(t, errOut.String())
}

func TestResolveSelection(t *testing.T) {
	var stderr bytes.Buffer
	cfg := config.DefaultConfig()

	assert.Equal(t, report.Selection{Words: true}, resolveSelection(&stderr, report.Selection{Words: true}, cfg))
	assert.Equal(t, report.All(), resolveSelection(&stderr, report.Selection{}, cfg))
	assert.Empty(t, stderr.String())

	cfg.DefaultFields = []string{"bytes"}
	assert.Equal(t, report.All(), resolveSelection(&stderr, report.Selection{}, cfg))
	assert.Contains(t, stderr.String(), "default_fields")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(strings.NewReader("")))

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.False(t, isTerminal(f))
}
