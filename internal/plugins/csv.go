package plugins

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/skyward/msplan/internal/flighttrack"
)

// CSV layout: the first record carries the track name, the second is a
// header, every following record is one waypoint (location, flight level).

// LoadCSV is the built-in CSV import filter.
func LoadCSV(path string) (string, []flighttrack.Waypoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	name := ""
	var wps []flighttrack.Waypoint
	line := 0
	for {
		line++
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("line %d: %w", line, err)
		}
		switch line {
		case 1:
			if len(rec) > 0 {
				name = rec[0]
			}
		case 2:
			// header row
		default:
			if len(rec) < 2 {
				return "", nil, fmt.Errorf("line %d: expected location and flight level", line)
			}
			fl, err := strconv.ParseFloat(rec[1], 64)
			if err != nil {
				return "", nil, fmt.Errorf("line %d flight level: %w", line, err)
			}
			wps = append(wps, flighttrack.Waypoint{Location: rec[0], FlightLevel: fl})
		}
	}
	return name, wps, nil
}

// SaveCSV is the built-in CSV export filter.
func SaveCSV(path, name string, wps []flighttrack.Waypoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	records := [][]string{{name}, {"Location", "Flightlevel"}}
	for _, wp := range wps {
		records = append(records, []string{wp.Location, strconv.FormatFloat(wp.FlightLevel, 'f', -1, 64)})
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
