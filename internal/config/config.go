// Package config loads application settings from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/skyward/msplan/internal/flighttrack"
	"github.com/skyward/msplan/internal/plugins"
)

// Config holds application configuration.
type Config struct {
	Data        DataConfig
	FlightTrack FlightTrackConfig
	Colab       ColabConfig
	Plugins     PluginsConfig
}

// DataConfig holds filesystem locations.
type DataConfig struct {
	// Dir is the application home directory (logs, default save location).
	Dir string
}

// FlightTrackConfig configures how new flight tracks are created.
type FlightTrackConfig struct {
	// TemplateLocations are the waypoints every new track starts with.
	TemplateLocations []string
	// DefaultFlightLevel is assigned to each template waypoint.
	DefaultFlightLevel float64
}

// ColabConfig holds the collaboration seeding locations.
type ColabConfig struct {
	// BaseDir is the deployment data root; colabdata lives beneath it.
	BaseDir string
	// TestBaseDir is the ephemeral root used by --test provisioning.
	TestBaseDir string
	// MigrationsDir holds the SQL migrations applied to the colab database.
	MigrationsDir string
}

// PluginsConfig declares import/export filters to register at startup,
// keyed by display name.
type PluginsConfig struct {
	Import map[string]plugins.Spec
	Export map[string]plugins.Spec
}

// Load reads configuration from file and env. Env var overrides use prefix
// MSPLAN_; MSPLAN_CONFIG points at an explicit config file.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("data.dir", filepath.Join(home, "mss"))
	v.SetDefault("flighttrack.templatelocations", []string{"Nauru", "Kona"})
	v.SetDefault("flighttrack.defaultflightlevel", 0.0)
	v.SetDefault("colab.basedir", filepath.Join(home, "mss"))
	v.SetDefault("colab.testbasedir", filepath.Join(os.TempDir(), "msplan-colab"))
	v.SetDefault("colab.migrationsdir", "internal/colab/database/migrations")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MSPLAN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "msplan"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MSPLAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Template expands the configured template locations into waypoints at the
// default flight level.
func (c FlightTrackConfig) Template() []flighttrack.Waypoint {
	wps := make([]flighttrack.Waypoint, 0, len(c.TemplateLocations))
	for _, loc := range c.TemplateLocations {
		wps = append(wps, flighttrack.Waypoint{Location: loc, FlightLevel: c.DefaultFlightLevel})
	}
	return wps
}
