package colab

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/skyward/msplan/internal/flighttrack"
	"github.com/skyward/msplan/internal/ftml"
)

// sampleProjects are the project directories seeded under filedata; they
// correspond to the demo project rows.
var sampleProjects = []string{"one", "two", "three"}

// stubTrack is the sample flight track written into every seeded project.
var stubTrack = []flighttrack.Waypoint{
	{Location: "Nauru", FlightLevel: 350},
	{Location: "Kona", FlightLevel: 350},
}

// createSampleFiles seeds filedata with one directory per demo project,
// each holding a main.ftml committed into a freshly initialized git
// repository.
func (s *Seeder) createSampleFiles(ctx context.Context, filedata string) error {
	for _, name := range sampleProjects {
		dir := filepath.Join(filedata, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		trackFile := filepath.Join(dir, "main.ftml")
		if err := ftml.Save(trackFile, name, stubTrack); err != nil {
			return fmt.Errorf("write %s: %w", trackFile, err)
		}
		if err := initRepository(ctx, dir, "main.ftml"); err != nil {
			return fmt.Errorf("init repository %s: %w", dir, err)
		}
		s.Log.Info("sample project seeded", "project", name)
	}
	return nil
}

// initRepository turns dir into a git repository with files committed, so
// the collaboration backend can version flight-track edits.
func initRepository(ctx context.Context, dir string, files ...string) error {
	steps := [][]string{
		{"init"},
		append([]string{"add"}, files...),
		{"-c", "user.name=mscolab", "-c", "user.email=mscolab@localhost", "commit", "-m", "initial commit"},
	}
	for _, args := range steps {
		cmd := exec.CommandContext(ctx, "git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, out)
		}
	}
	return nil
}
