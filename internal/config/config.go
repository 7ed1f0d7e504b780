package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service settings, populated from environment variables
// and, when CONFIG_FILE names one, a YAML file underneath them.
type Config struct {
	DataPath        string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Layer tuning.
	HeatRadius              int
	HeatMaxZoom             int
	DisableClusteringAtZoom int
	TablePreviewRows        int

	// Initial map view.
	MapCenterLat float64
	MapCenterLon float64
	MapZoom      int

	// Basemap tiles come from Mapbox when a token is set, OpenStreetMap otherwise.
	MapboxToken string
	MapboxStyle string

	// Optional Kafka export sink.
	KafkaBrokers []string
	KafkaTopic   string
}

var defaults = map[string]any{
	"DATA_PATH":               "training_ready_data.csv",
	"HTTP_ADDR":               ":8080",
	"LOG_LEVEL":               "info",
	"LOG_FORMAT":              "json",
	"SHUTDOWN_TIMEOUT":        "10s",
	"HEAT_RADIUS":             "15",
	"HEAT_MAX_ZOOM":           "12",
	"CLUSTER_DISABLE_AT_ZOOM": "10",
	"TABLE_PREVIEW_ROWS":      "500",
	"MAP_CENTER_LAT":          "37.0902",
	"MAP_CENTER_LON":          "-95.7129",
	"MAP_ZOOM":                "4",
	"MAPBOX_TOKEN":            "",
	"MAPBOX_STYLE":            "mapbox/light-v11",
	"KAFKA_BROKERS":           "",
	"KAFKA_TOPIC":             "svi-heatmap-export",
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit YAML file underneath the environment.
// An empty path falls back to CONFIG_FILE.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if path == "" {
		path = v.GetString("CONFIG_FILE")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read CONFIG_FILE %s: %w", path, err)
		}
	}

	shutdownTimeout, err := parseDuration(v, "SHUTDOWN_TIMEOUT")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataPath:     v.GetString("DATA_PATH"),
		HTTPAddr:     v.GetString("HTTP_ADDR"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		MapboxToken:  v.GetString("MAPBOX_TOKEN"),
		MapboxStyle:  v.GetString("MAPBOX_STYLE"),
		KafkaBrokers: parseList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   v.GetString("KAFKA_TOPIC"),

		ShutdownTimeout: shutdownTimeout,
	}
	for key, dst := range map[string]*int{
		"HEAT_RADIUS":             &cfg.HeatRadius,
		"HEAT_MAX_ZOOM":           &cfg.HeatMaxZoom,
		"CLUSTER_DISABLE_AT_ZOOM": &cfg.DisableClusteringAtZoom,
		"TABLE_PREVIEW_ROWS":      &cfg.TablePreviewRows,
		"MAP_ZOOM":                &cfg.MapZoom,
	} {
		n, err := parseNonNegativeInt(v, key)
		if err != nil {
			return nil, err
		}
		*dst = n
	}

	if cfg.MapCenterLat, err = parseFloatInRange(v, "MAP_CENTER_LAT", -90, 90); err != nil {
		return nil, err
	}
	if cfg.MapCenterLon, err = parseFloatInRange(v, "MAP_CENTER_LON", -180, 180); err != nil {
		return nil, err
	}

	if cfg.DataPath == "" {
		return nil, errors.New("DATA_PATH is required")
	}
	if cfg.HeatRadius == 0 {
		return nil, errors.New("HEAT_RADIUS must be positive")
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_BROKERS is set but KAFKA_TOPIC is empty")
	}

	return cfg, nil
}

// KafkaEnabled reports whether the Kafka export sink is configured.
func (c *Config) KafkaEnabled() bool { return len(c.KafkaBrokers) > 0 }

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseNonNegativeInt(v *viper.Viper, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func parseFloatInRange(v *viper.Viper, key string, lo, hi float64) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
	if err != nil || f < lo || f > hi {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return f, nil
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
