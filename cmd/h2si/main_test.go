package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsvensson/h2si"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, "hsi(0.000000, 0.000000, 1.000000)\n"+
		"  -> X1=(1.000000+0.000000i) X2=(0.000000+0.000000i) X3=(0.000000+0.000000i)\n"+
		"  -> hsi(0.000000, 0.000000, 1.000000)\n", out)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "components",
			args: []string{"encode", "0", "0", "1"},
			want: "1.000000 0.000000 0.000000 0.000000 0.000000 0.000000\n",
		},
		{
			name: "precision flag",
			args: []string{"encode", "--precision", "2", "0", "0", "1"},
			want: "1.00 0.00 0.00 0.00 0.00 0.00\n",
		},
		{
			name: "complex",
			args: []string{"encode", "--form", "complex", "0", "0", "1"},
			want: "X1=(1.000000+0.000000i) X2=(0.000000+0.000000i) X3=(0.000000+0.000000i)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEncode_PrecisionFromEnv(t *testing.T) {
	t.Setenv("H2SI_PRECISION", "3")

	out, err := run(t, "encode", "0", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, "1.000 0.000 0.000 0.000 0.000 0.000\n", out)
}

func TestEncode_Errors(t *testing.T) {
	_, err := run(t, "encode", "0", "0", "0")
	assert.ErrorIs(t, err, h2si.ErrDegenerateIntensity)

	_, err = run(t, "encode", "1", "-3", "0.5")
	assert.ErrorIs(t, err, h2si.ErrOutOfRange)

	_, err = run(t, "encode", "--form", "complex", "0", "0", "42")
	assert.ErrorIs(t, err, h2si.ErrOutOfRange)

	_, err = run(t, "encode", "--form", "polar", "0", "0", "1")
	assert.ErrorContains(t, err, `unknown form "polar"`)

	_, err = run(t, "encode", "0", "x", "1")
	assert.ErrorContains(t, err, "argument 2")
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "1", "0", "0", "0", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "hsi(0.000000, 0.000000, 1.000000) #ffffff\n", out)

	_, err = run(t, "decode", "1", "0", "0")
	assert.ErrorIs(t, err, h2si.ErrInvalidArgument)
	assert.ErrorContains(t, err, "want 6 components, got 3")
}

func TestRGB(t *testing.T) {
	out, err := run(t, "rgb", "ff0000")
	require.NoError(t, err)
	assert.Contains(t, out, "hex:  #ff0000\n")
	assert.Contains(t, out, "hsi:  hsi(0.000000, 1.000000, 0.500000)\n")
	assert.Contains(t, out, "h2si: ")

	_, err = run(t, "rgb", "nope")
	assert.ErrorContains(t, err, "invalid hex color")
}

func TestLerp(t *testing.T) {
	out, err := run(t, "lerp", "#ff0000", "#0000ff")
	require.NoError(t, err)
	assert.Equal(t, "#ac0dac\n", out)

	out, err = run(t, "lerp", "--t", "0", "#ff0000", "#0000ff")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000\n", out)
}

func TestDistance(t *testing.T) {
	out, err := run(t, "distance", "#336699", "#336699")
	require.NoError(t, err)
	assert.Equal(t, "0.000000\n", out)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--samples", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "2000 samples")
	assert.Contains(t, out, "components")

	_, err = run(t, "check", "--samples", "2000", "--tolerance", "1e-30")
	assert.ErrorContains(t, err, "exceeds tolerance")

	_, err = run(t, "check", "--samples", "-1")
	assert.ErrorContains(t, err, "samples must be positive")
}

const unformatted = "gradient \"a\" {\nsteps=3\nstop {\nat=0\ncolor=\"#ff0000\"\n}\nstop {\nat=1\ncolor=\"#0000ff\"\n}\n}\n"

func TestFmt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.h2si")
	require.NoError(t, os.WriteFile(path, []byte(unformatted), 0o644))

	out, err := run(t, "fmt", "--check", path)
	assert.ErrorIs(t, err, errNotFormatted)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, unformatted, string(data), "--check must not write")

	_, err = run(t, "fmt", path)
	require.NoError(t, err)

	_, err = run(t, "fmt", "--check", path)
	assert.NoError(t, err)
}

func TestGradient(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.h2si")
	require.NoError(t, os.WriteFile(src, []byte(unformatted), 0o644))

	tmplDir := filepath.Join(dir, "templates")
	require.NoError(t, os.Mkdir(tmplDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmplDir, "txt.tmpl"),
		[]byte("{{ range .Samples }}{{ hex .Color }} {{ end }}\n"), 0o644))

	outDir := filepath.Join(dir, "out")
	out, err := run(t, "gradient", src, "--templates", tmplDir, "--out", outDir)
	require.NoError(t, err)
	assert.Equal(t, "Wrote 1 files to "+outDir+"\n", out)

	data, err := os.ReadFile(filepath.Join(outDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "#ff0000 #ac0dac #0000ff \n", string(data))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
