// Package ftml reads and writes the XML flight-track file format (.ftml).
package ftml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/skyward/msplan/internal/flighttrack"
)

// Extension is the file extension of the format.
const Extension = ".ftml"

type document struct {
	XMLName   xml.Name   `xml:"FlightTrack"`
	Name      string     `xml:"Name"`
	Waypoints []waypoint `xml:"ListOfWaypoints>Waypoint"`
}

type waypoint struct {
	Location    string  `xml:"location,attr"`
	FlightLevel float64 `xml:"flightlevel,attr"`
}

// Read decodes a flight track from r.
func Read(r io.Reader) (string, []flighttrack.Waypoint, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return "", nil, fmt.Errorf("decode ftml: %w", err)
	}
	wps := make([]flighttrack.Waypoint, 0, len(doc.Waypoints))
	for _, wp := range doc.Waypoints {
		wps = append(wps, flighttrack.Waypoint{Location: wp.Location, FlightLevel: wp.FlightLevel})
	}
	return doc.Name, wps, nil
}

// Write encodes the track to w as indented XML.
func Write(w io.Writer, name string, wps []flighttrack.Waypoint) error {
	doc := document{Name: name}
	for _, wp := range wps {
		doc.Waypoints = append(doc.Waypoints, waypoint{Location: wp.Location, FlightLevel: wp.FlightLevel})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode ftml: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Load reads the flight track stored at path.
func Load(path string) (string, []flighttrack.Waypoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	return Read(f)
}

// Save writes the track to path, replacing any existing file.
func Save(path, name string, wps []flighttrack.Waypoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, name, wps); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
