package synchro

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
min_gap: 100
streams:
  - name: imu
  - name: gps
  - name: lidar
`))
	require.NoError(t, err)
	assert.Equal(t, int64(100), cfg.MinGap)
	require.Len(t, cfg.Streams, 3)
	assert.Equal(t, "imu", cfg.Streams[0].Name)
	assert.Equal(t, "lidar", cfg.Streams[2].Name)
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", "streams: ["},
		{"no streams", "min_gap: 10"},
		{"negative gap", "min_gap: -1\nstreams:\n  - name: a"},
		{"unnamed stream", "streams:\n  - name: a\n  - name: \"\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("streams:\n  - name: a\n  - name: b\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.MinGap)
	assert.Len(t, cfg.Streams, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigBuild(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
min_gap: 15
streams:
  - name: left
  - name: right
`))
	require.NoError(t, err)

	sync := cfg.Build().
		TimeFunc(0, intTime).
		TimeFunc(1, intTime)

	stats := sync.Stats()
	require.Len(t, stats.Streams, 2)
	assert.Equal(t, "left", stats.Streams[0].Name)
	assert.Equal(t, "right", stats.Streams[1].Name)

	// the configured gap is enforced between consecutive sets
	var mins []int
	sync.OnMatch(func(set []any) { mins = append(mins, set[0].(int)) })
	for i := 0; i < 8; i++ {
		sync.AddAndSearch(0, 10*i)
		sync.AddAndSearch(1, 10*i+1)
	}
	for i := 1; i < len(mins); i++ {
		assert.GreaterOrEqual(t, mins[i]-mins[i-1], 15)
	}
}
