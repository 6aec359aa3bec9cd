package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, Settings{
		Samples:   100_000,
		Seed:      1,
		Tolerance: 1e-10,
		Precision: 6,
		Templates: "templates",
		Out:       "output",
	}, s)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("H2SI_SAMPLES", "500")
	t.Setenv("H2SI_SEED", "42")

	s, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 500, s.Samples)
	assert.Equal(t, uint64(42), s.Seed)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 250\nprecision: 3\nout: build\n"), 0o644))

	v := New()
	require.NoError(t, ReadFile(v, path))

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 250, s.Samples)
	assert.Equal(t, 3, s.Precision)
	assert.Equal(t, "build", s.Out)
	assert.Equal(t, 1e-10, s.Tolerance)
}

func TestReadFile_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 250\n"), 0o644))
	t.Setenv("H2SI_SAMPLES", "900")

	v := New()
	require.NoError(t, ReadFile(v, path))

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 900, s.Samples)
}

func TestReadFile_MissingExplicitPath(t *testing.T) {
	err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestReadFile_NoDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, ReadFile(New(), ""))
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		key   string
		value any
		want  string
	}{
		{"samples", 0, "samples must be positive"},
		{"tolerance", -1.0, "tolerance must be positive"},
		{"precision", 40, "precision must be within"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := New()
			v.Set(tt.key, tt.value)
			_, err := Load(v)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
