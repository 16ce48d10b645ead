package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calumari/oasdown"
)

func TestRun(t *testing.T) {
	t.Run("converts source to destination", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "in.json")
		dest := filepath.Join(dir, "out.json")
		require.NoError(t, os.WriteFile(src, []byte(`{"openapi":"3.1.0","x":{"anyOf":[{"type":"string"},{"type":"null"}]}}`), 0o600))

		require.NoError(t, run(src, dest))

		doc, err := oasdown.Load(dest)
		require.NoError(t, err)
		v, _ := doc.Get("openapi")
		require.Equal(t, "3.0.2", v)
		inner, _ := doc.Get("x")
		nullable, ok := inner.(oasdown.D).Get("nullable")
		require.True(t, ok)
		require.Equal(t, true, nullable)
	})

	t.Run("missing source reported, destination untouched", func(t *testing.T) {
		dir := t.TempDir()
		dest := filepath.Join(dir, "out.json")
		err := run(filepath.Join(dir, "nope.json"), dest)
		require.ErrorIs(t, err, oasdown.ErrSourceNotFound)
		_, statErr := os.Stat(dest)
		require.True(t, os.IsNotExist(statErr))
	})

	t.Run("non-object root reported", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "arr.json")
		require.NoError(t, os.WriteFile(src, []byte(`[1,2]`), 0o600))
		err := run(src, filepath.Join(dir, "out.json"))
		require.ErrorIs(t, err, oasdown.ErrNotDocument)
	})

	t.Run("unwritable destination reported", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "in.json")
		require.NoError(t, os.WriteFile(src, []byte(`{"openapi":"3.1.0"}`), 0o600))
		err := run(src, filepath.Join(dir, "missing", "out.json"))
		require.ErrorIs(t, err, oasdown.ErrDestinationWrite)
	})
}
