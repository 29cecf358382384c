package ftml

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skyward/msplan/internal/flighttrack"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	wps := []flighttrack.Waypoint{
		{Location: "Nauru", FlightLevel: 350},
		{Location: "Kona", FlightLevel: 200},
	}
	path := filepath.Join(t.TempDir(), "mission.ftml")
	require.NoError(t, Save(path, "Mission Alpha", wps))

	name, got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Mission Alpha", name)
	require.Equal(t, wps, got)
}

func TestReadKnownDocument(t *testing.T) {
	t.Parallel()
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<FlightTrack>
  <Name>Flight A</Name>
  <ListOfWaypoints>
    <Waypoint location="Nauru" flightlevel="350"></Waypoint>
    <Waypoint location="Kona" flightlevel="200"></Waypoint>
  </ListOfWaypoints>
</FlightTrack>`

	name, wps, err := Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, "Flight A", name)
	require.Len(t, wps, 2)
	require.Equal(t, "Nauru", wps[0].Location)
	require.Equal(t, 350.0, wps[0].FlightLevel)
}

func TestReadMalformed(t *testing.T) {
	t.Parallel()
	_, _, err := Read(strings.NewReader("<FlightTrack><Name>broken"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.ftml"))
	require.Error(t, err)
}
