package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestDrawIsReproducible(t *testing.T) {
	path := writeSpec(t, "choose: {low: 0, high: 1000000}")
	opts := sampleOptions{specPath: path, count: 20, seed: 42, size: 30}

	first, err := opts.draw()
	require.NoError(t, err)
	second, err := opts.draw()
	require.NoError(t, err)

	assert.Equal(t, first, second, "equal seeds must reproduce the run")
}

func TestDrawSamplesAreIndependent(t *testing.T) {
	path := writeSpec(t, "choose: {low: 0, high: 1000000}")
	opts := sampleOptions{specPath: path, count: 50, seed: 7, size: 30}

	values, err := opts.draw()
	require.NoError(t, err)

	distinct := make(map[any]struct{})
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	assert.Greater(t, len(distinct), 45, "per-sample sub-streams should not repeat")
}

func TestDrawRejectsBadInputs(t *testing.T) {
	path := writeSpec(t, "const: 1")

	tests := []struct {
		name string
		opts sampleOptions
		want string
	}{
		{"negative count", sampleOptions{specPath: path, count: -1}, "count must be non-negative"},
		{"negative size", sampleOptions{specPath: path, count: 1, size: -1}, "size must be non-negative"},
		{"missing file", sampleOptions{specPath: filepath.Join(t.TempDir(), "nope.yaml"), count: 1}, "failed to read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.draw()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDrawReportsParseErrors(t *testing.T) {
	path := writeSpec(t, "shuffle: [1, 2]")
	opts := sampleOptions{specPath: path, count: 1}

	_, err := opts.draw()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generator kind")
}

func TestSampleCommandOutput(t *testing.T) {
	path := writeSpec(t, "const: hello")

	cmd := newSampleCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Set("file", path))
	require.NoError(t, cmd.Flags().Set("count", "3"))

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Equal(t, "hello\nhello\nhello\n", out.String())
}

func TestHistogramCommandAggregates(t *testing.T) {
	path := writeSpec(t, "elements: [a, b]")

	cmd := newHistogramCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Set("file", path))
	require.NoError(t, cmd.Flags().Set("count", "100"))

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "a")
	assert.Contains(t, out.String(), "b")
	assert.Contains(t, out.String(), "#")
}

func TestHistogramBarWidthFallsBackOffTerminal(t *testing.T) {
	assert.Equal(t, 40, histogramBarWidth(&bytes.Buffer{}),
		"redirected output must use the fixed width, not the process terminal")
}

func TestRenderNestedSlices(t *testing.T) {
	assert.Equal(t, "[1, [a, b], 2]", render([]any{1, []any{"a", "b"}, 2}))
	assert.Equal(t, "x", render("x"))
}
