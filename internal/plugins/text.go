package plugins

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/skyward/msplan/internal/flighttrack"
)

// Plain-text layout: an optional "# name" comment line followed by one
// "location flightlevel" pair per line. Blank lines are ignored.

// LoadText imports the whitespace-separated text format.
func LoadText(path string) (string, []flighttrack.Waypoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	name := ""
	var wps []flighttrack.Waypoint
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			if name == "" {
				name = strings.TrimSpace(strings.TrimPrefix(text, "#"))
			}
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return "", nil, fmt.Errorf("line %d: expected location and flight level", line)
		}
		fl, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return "", nil, fmt.Errorf("line %d flight level: %w", line, err)
		}
		location := strings.Join(fields[:len(fields)-1], " ")
		wps = append(wps, flighttrack.Waypoint{Location: location, FlightLevel: fl})
	}
	if err := sc.Err(); err != nil {
		return "", nil, err
	}
	return name, wps, nil
}

// SaveText exports the whitespace-separated text format.
func SaveText(path, name string, wps []flighttrack.Waypoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# %s\n", name)
	for _, wp := range wps {
		fmt.Fprintf(w, "%s %s\n", wp.Location, strconv.FormatFloat(wp.FlightLevel, 'f', -1, 64))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
