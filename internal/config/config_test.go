package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skyward/msplan/internal/flighttrack"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MSPLAN_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(os.Getenv("HOME"), "mss"), c.Data.Dir)
	require.Equal(t, []string{"Nauru", "Kona"}, c.FlightTrack.TemplateLocations)
	require.Zero(t, c.FlightTrack.DefaultFlightLevel)
	require.Equal(t, filepath.Join(os.Getenv("HOME"), "mss"), c.Colab.BaseDir)
	require.NotEmpty(t, c.Colab.TestBaseDir)
	require.Empty(t, c.Plugins.Import)
	require.Empty(t, c.Plugins.Export)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[data]
dir = "/srv/msplan"

[flighttrack]
templatelocations = ["EDMO", "Hohn", "EDMO"]
defaultflightlevel = 250

[plugins.import.KML]
extension = "kml"
function = "kml.Load"

[plugins.export.Text]
extension = "txt"
function = "text.Save"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("MSPLAN_CONFIG", path)

	c, err := Load()
	require.NoError(t, err)

	require.Equal(t, "/srv/msplan", c.Data.Dir)
	require.Equal(t, []string{"EDMO", "Hohn", "EDMO"}, c.FlightTrack.TemplateLocations)
	require.Equal(t, 250.0, c.FlightTrack.DefaultFlightLevel)

	require.Len(t, c.Plugins.Import, 1)
	require.Equal(t, "kml", c.Plugins.Import["KML"].Extension)
	require.Equal(t, "kml.Load", c.Plugins.Import["KML"].Function)
	require.Equal(t, "text.Save", c.Plugins.Export["Text"].Function)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MSPLAN_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("MSPLAN_DATA_DIR", "/tmp/envhome")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/envhome", c.Data.Dir)
}

func TestTemplateExpansion(t *testing.T) {
	t.Parallel()
	ft := FlightTrackConfig{
		TemplateLocations:  []string{"Nauru", "Kona"},
		DefaultFlightLevel: 350,
	}
	require.Equal(t, []flighttrack.Waypoint{
		{Location: "Nauru", FlightLevel: 350},
		{Location: "Kona", FlightLevel: 350},
	}, ft.Template())
}
