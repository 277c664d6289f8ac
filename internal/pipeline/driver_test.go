package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/kelbwah/unihuff/internal/pipeline"
)

func writeTexts(t *testing.T, dir string, texts map[string]string) {
	t.Helper()
	for name, content := range texts {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	texts := map[string]string{
		"one.txt":   "aaaabbc",
		"two.txt":   "hola",
		"three.txt": "áéí",
	}
	writeTexts(t, dir, texts)

	log := zerolog.Nop()
	_, err := pipeline.RunEncode(dir, log)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, pipeline.BundleName))
	require.NoError(t, err, "bundle should exist after encode")
	for name := range texts {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "original source %s is not touched by the archive step", name)
	}

	_, err = pipeline.RunDecode(dir, log)
	require.NoError(t, err)

	outDir := filepath.Join(dir, pipeline.DecodedDirName)
	info, err := os.Stat(outDir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o700), info.Mode().Perm())

	for name, want := range texts {
		got, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		require.Equal(t, want, string(got))
	}
}

func TestEncodeDecode_ManyFilesIndependentOfFileCount(t *testing.T) {
	dir := t.TempDir()
	texts := map[string]string{}
	for i := 0; i < 8; i++ {
		name := "file" + string(rune('a'+i)) + ".txt"
		texts[name] = "hello world! hello world!"
	}
	writeTexts(t, dir, texts)

	log := zerolog.Nop()
	_, err := pipeline.RunEncode(dir, log)
	require.NoError(t, err)
	_, err = pipeline.RunDecode(dir, log)
	require.NoError(t, err)

	outDir := filepath.Join(dir, pipeline.DecodedDirName)
	for name, want := range texts {
		got, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		require.Equal(t, want, string(got))
	}
}
