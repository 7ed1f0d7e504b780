package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMapboxToken = "pk.test-token"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "training_ready_data.csv", cfg.DataPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 15, cfg.HeatRadius)
	assert.Equal(t, 12, cfg.HeatMaxZoom)
	assert.Equal(t, 10, cfg.DisableClusteringAtZoom)
	assert.Equal(t, 500, cfg.TablePreviewRows)
	assert.Equal(t, 37.0902, cfg.MapCenterLat)
	assert.Equal(t, -95.7129, cfg.MapCenterLon)
	assert.Equal(t, 4, cfg.MapZoom)
	assert.Empty(t, cfg.MapboxToken)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, "svi-heatmap-export", cfg.KafkaTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_PATH", "/data/svi.csv")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("HEAT_RADIUS", "25")
	t.Setenv("HEAT_MAX_ZOOM", "14")
	t.Setenv("CLUSTER_DISABLE_AT_ZOOM", "8")
	t.Setenv("MAP_CENTER_LAT", "40.5")
	t.Setenv("MAP_CENTER_LON", "-77.5")
	t.Setenv("MAP_ZOOM", "7")
	t.Setenv("MAPBOX_TOKEN", testMapboxToken)
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-export")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/svi.csv", cfg.DataPath)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 25, cfg.HeatRadius)
	assert.Equal(t, 14, cfg.HeatMaxZoom)
	assert.Equal(t, 8, cfg.DisableClusteringAtZoom)
	assert.Equal(t, 40.5, cfg.MapCenterLat)
	assert.Equal(t, -77.5, cfg.MapCenterLon)
	assert.Equal(t, 7, cfg.MapZoom)
	assert.Equal(t, testMapboxToken, cfg.MapboxToken)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, "custom-export", cfg.KafkaTopic)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("heat_radius: 20\ndata_path: from-file.csv\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATA_PATH", "from-env.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.HeatRadius)
	assert.Equal(t, "from-env.csv", cfg.DataPath, "environment wins over the file")
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_FILE")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		env   string
		value string
	}{
		{"SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"SHUTDOWN_TIMEOUT", "-1s"},
		{"HEAT_RADIUS", "wide"},
		{"HEAT_RADIUS", "0"},
		{"HEAT_MAX_ZOOM", "-2"},
		{"CLUSTER_DISABLE_AT_ZOOM", "never"},
		{"MAP_CENTER_LAT", "91"},
		{"MAP_CENTER_LON", "east"},
	}

	for _, tt := range tests {
		t.Run(tt.env+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.env)
		})
	}
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("heat_max_zoom: 9\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.HeatMaxZoom)
}
