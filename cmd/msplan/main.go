package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skyward/msplan/internal/config"
	"github.com/skyward/msplan/internal/flighttrack"
	"github.com/skyward/msplan/internal/ftml"
	"github.com/skyward/msplan/internal/log"
	"github.com/skyward/msplan/internal/plugins"
	"github.com/skyward/msplan/internal/ui"
	"github.com/skyward/msplan/internal/views"
)

const version = "1.0.0"

func main() {
	showVersion := flag.Bool("version", false, "show version and exit")
	debug := flag.Bool("debug", false, "show debugging log messages on console")
	logfile := flag.String("logfile", "", "logfile location")
	nolog := flag.Bool("nolog", false, "do not write a debug log file")
	flag.Parse()

	if *showVersion {
		fmt.Printf("msplan %s\n", version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir data dir: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.Data.Dir, *debug, *nolog, *logfile)

	bridge := ui.NewBridge(logger.Logger)
	tracks := flighttrack.NewRegistry(bridge, flighttrack.Codec{Load: ftml.Load, Save: ftml.Save})
	wins := views.NewRegistry()
	tracks.Views = wins

	table := plugins.NewFilterTable()
	if err := table.RegisterImport("CSV", "csv", plugins.LoadCSV); err != nil {
		logger.Error("filter registration", "err", err)
		os.Exit(1)
	}
	if err := table.RegisterExport("CSV", "csv", plugins.SaveCSV); err != nil {
		logger.Error("filter registration", "err", err)
		os.Exit(1)
	}
	// Configured plugins: an unresolvable one is skipped, a duplicate name
	// is a setup error.
	err = plugins.RegisterConfigured(table, cfg.Plugins.Import, cfg.Plugins.Export,
		func(name, problem string) {
			logger.Warn("plugin skipped", "plugin", name, "problem", problem)
		})
	if err != nil {
		logger.Error("plugin configuration", "err", err)
		os.Exit(1)
	}

	host := &plugins.Host{Table: table, Dialog: bridge, Tracks: tracks}

	tracks.New(cfg.FlightTrack.Template(), true)

	app := ui.New(cfg, logger.Logger, bridge, tracks, wins, host)
	p := tea.NewProgram(app, tea.WithAltScreen())
	bridge.Attach(p)

	logger.Info("launching user interface", "version", version)
	if _, err := p.Run(); err != nil {
		logger.Error("ui", "err", err)
		os.Exit(1)
	}
}
