// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/hetmat/config"
	"github.com/katalvlaran/hetmat/hetnet"
	"github.com/katalvlaran/hetmat/hetnet/hetnettest"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return buf.String(), err
}

// The commands share package-level flag state, so this runs as one
// sequential session.
func TestSession(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph.json.gz")
	require.NoError(t, hetnet.WriteGraphFile(graphPath, hetnettest.DiseaseGeneGraph()))
	store := filepath.Join(dir, "example.hetmat")
	common := []string{"--hetmat", store, "--log-level", "error", "--damping", "0.5"}

	out, err := execute(t, append([]string{"build", graphPath}, common...)...)
	require.NoError(t, err)
	require.Contains(t, out, store)

	out, err = execute(t, append([]string{"categorize", "DaGiGaD", "GaDaGaD", "DaGiGiGiGiGaD"}, common...)...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "DaGiGaD\tABBA\tBAAB\t[DaG, GiG, GaD]", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "GaDaGaD\tABAB\tBABA\t"))
	require.Contains(t, lines[2], "unsupported metapath")

	out, err = execute(t, append([]string{"dwpc", "DaGiGaD"}, common...)...)
	require.NoError(t, err)
	require.Contains(t, out, "Crohn's Disease\tMultiple Sclerosis\t0.4785533")

	out, err = execute(t, append([]string{"permute", "--count", "3", "--seed", "5"}, common...)...)
	require.NoError(t, err)
	require.Contains(t, out, "3 permutations")

	out, err = execute(t, append([]string{"significance", "DaGiGaD"}, common...)...)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "source\ttarget\tsource_degree"))

	_, err = execute(t, append([]string{"dwpc", "DxG"}, common...)...)
	require.Error(t, err)

	_, err = execute(t, "categorize", "DaGiGaD", "--hetmat", store, "--log-level", "loud")
	require.ErrorIs(t, err, config.ErrInvalid)
	require.Nil(t, logger.Check(zap.DebugLevel, "still at error level"))
}
