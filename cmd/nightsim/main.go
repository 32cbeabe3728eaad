// cmd/nightsim runs nights without a window: a batch of independent nights
// summarised into a report, or one night streamed to websocket spectators.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"go-wall-defense/internal/app"
	"go-wall-defense/internal/config"
	"go-wall-defense/internal/defs"
	"go-wall-defense/internal/utils"
)

func main() {
	var cfgPath, enemiesPath, weaponsPath, loadoutPath, out, addr string
	var seed int64
	var day, nights, workers, fps int
	var verbose bool
	flag.StringVar(&cfgPath, "config", "", "tunables YAML file (defaults when empty)")
	flag.StringVar(&enemiesPath, "enemies", "", "enemy catalog, JSON or YAML")
	flag.StringVar(&weaponsPath, "weapons", "", "weapon definitions, JSON or YAML")
	flag.StringVar(&loadoutPath, "loadout", "", "weapon placements, JSON or YAML")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = now)")
	flag.IntVar(&day, "day", 1, "night number to simulate")
	flag.IntVar(&nights, "nights", 100, "number of nights in batch mode")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "concurrent nights in batch mode")
	flag.StringVar(&out, "out", "", "write the JSON report here; empty prints it to stdout")
	flag.StringVar(&addr, "serve", "", "stream one night to websocket spectators on this address, e.g. :8080")
	flag.IntVar(&fps, "fps", 30, "snapshots per second in serve mode")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts, err := loadOptions(cfgPath, enemiesPath, weaponsPath, loadoutPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr != "" {
		opts.Rng = utils.NewPRNGService(seed)
		g, err := app.NewGame(opts)
		if err != nil {
			log.Fatal(err)
		}
		if err := serve(ctx, addr, g, day, fps); err != nil {
			log.Fatal(err)
		}
		return
	}

	start := time.Now()
	report, err := runBatch(ctx, opts, day, nights, workers, seed)
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("batch finished", "nights", nights, "workers", workers, "elapsed", time.Since(start).Round(time.Millisecond))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if out == "" {
		os.Stdout.Write(append(data, '\n'))
		return
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		log.Fatal(err)
	}
	if err := report.WriteText(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func loadOptions(cfgPath, enemiesPath, weaponsPath, loadoutPath string) (app.Options, error) {
	opts := app.Options{Tunables: config.Default()}
	var err error
	if cfgPath != "" {
		if opts.Tunables, err = config.Load(cfgPath); err != nil {
			return opts, err
		}
	}
	if enemiesPath != "" {
		if opts.Catalog, err = defs.LoadEnemyCatalog(enemiesPath); err != nil {
			return opts, err
		}
	}
	if weaponsPath != "" {
		if opts.Arsenal, err = defs.LoadArsenal(weaponsPath); err != nil {
			return opts, err
		}
	}
	if loadoutPath != "" {
		if opts.Loadout, err = app.LoadLoadout(loadoutPath); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
