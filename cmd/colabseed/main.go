// colabseed provisions data for the collaboration backend: directories,
// sample flight-track repositories, and the sqlite database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/skyward/msplan/internal/colab"
	"github.com/skyward/msplan/internal/config"
	"github.com/skyward/msplan/internal/log"
)

func main() {
	test := flag.Bool("test", false, "setup test data")
	deploy := flag.Bool("init", false, "setup deployment data")
	debug := flag.Bool("debug", false, "show debugging log messages")
	flag.Parse()

	if !*test && !*deploy {
		fmt.Println("for help, use -h flag")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.Data.Dir, *debug, true, "")

	seeder := &colab.Seeder{
		BaseDir:       cfg.Colab.BaseDir,
		TestBaseDir:   cfg.Colab.TestBaseDir,
		MigrationsDir: cfg.Colab.MigrationsDir,
		Log:           logger.Logger,
	}

	ctx := context.Background()
	if *test {
		err = seeder.ProvisionTest(ctx)
	} else {
		err = seeder.ProvisionDeploy(ctx)
	}
	if err != nil {
		logger.Error("setup failed", "err", err)
		os.Exit(1)
	}
}
