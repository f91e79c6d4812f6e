package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")

	var out, errOut bytes.Buffer
	root := New(&out, &errOut).RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 3), G: uint8(y * 5), B: uint8(x ^ y), A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestRunCommand(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(in, "a.png"), 100, 50)
	require.NoError(t, os.WriteFile(filepath.Join(in, "b.txt"), []byte("hello"), 0o644))

	stdout, _, err := execute(t, "run", "--input", in, "--output", out, "--seed", "7", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Processed")
	assert.Contains(t, stdout, "b.txt")
	assert.Contains(t, stdout, "undecodable")

	_, err = os.Stat(filepath.Join(out, "a.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "b.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunCommandImagingCodec(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(in, "a.png"), 12, 9)

	_, _, err := execute(t, "run", "-i", in, "-o", out, "--codec", "imaging", "--probability", "1")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(out, "a.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 9, cfg.Height)
}

func TestRunCommandRequiresFlags(t *testing.T) {
	_, _, err := execute(t, "run", "--input", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}

func TestRunCommandRejectsBadSettings(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "run", "-i", dir, "-o", dir, "--codec", "magick")
	assert.ErrorContains(t, err, "unknown codec")

	_, _, err = execute(t, "run", "-i", dir, "-o", dir, "--probability", "2")
	assert.ErrorContains(t, err, "probability")

	_, _, err = execute(t, "run", "-i", dir, "-o", dir, "--log-level", "shouty")
	assert.ErrorContains(t, err, "log level")
}

func TestRunCommandMissingOutputDir(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "run", "-i", dir, "-o", filepath.Join(dir, "nope"))
	assert.ErrorContains(t, err, "output directory")
}

func TestConfigFile(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(in, "a.png"), 8, 8)

	cfgPath := filepath.Join(t.TempDir(), "distort.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("codec = \"imaging\"\nseed = 3\n[log]\nformat = \"json\"\nlevel = \"debug\"\n"), 0o644))

	_, stderr, err := execute(t, "--config", cfgPath, "run", "-i", in, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"component":"BatchRunner"`)
	assert.Contains(t, stderr, `"codec":"imaging"`)
}

func TestVersionCommand(t *testing.T) {
	SetVersion("v1.2.3", "abc123")
	t.Cleanup(func() { SetVersion("dev", "none") })

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "image-distorter v1.2.3 (commit abc123)\n", stdout)
}
