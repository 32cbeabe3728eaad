package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-wall-defense/internal/app"
	"go-wall-defense/internal/component"
	"go-wall-defense/internal/utils"
)

// tickBudget bounds one night in ticks; a night still running after that
// many ticks is reported as unfinished (e.g. a harmless enemy parked at the fence).
const tickBudget = 20

// NightResult is one simulated night.
type NightResult struct {
	Index         int                  `json:"index"`
	Seed          int64                `json:"seed"`
	WallDestroyed bool                 `json:"wall_destroyed"`
	Unfinished    bool                 `json:"unfinished,omitempty"`
	WallHealth    float64              `json:"wall_health"`
	Resources     float64              `json:"resources"`
	Ticks         int                  `json:"ticks"`
	Stats         *component.WaveStats `json:"stats"`
}

// Report aggregates a batch of independent nights of the same day.
type Report struct {
	Day     int                  `json:"day"`
	Seed    int64                `json:"seed"`
	Runs    int                  `json:"runs"`
	Defeats int                  `json:"defeats"`
	Totals  *component.WaveStats `json:"totals"`
	Nights  []NightResult        `json:"nights"`
}

// runNight plays a single night with its own game and generator.
func runNight(ctx context.Context, base app.Options, day, index int, seed int64) (NightResult, error) {
	opts := base
	opts.Rng = utils.NewPRNGService(seed)
	g, err := app.NewGame(opts)
	if err != nil {
		return NightResult{}, err
	}
	if err := g.StartNight(day); err != nil {
		return NightResult{}, err
	}

	dt := g.Tunables.MaxDeltaTime
	limit := int(tickBudget * g.Tunables.NightDuration / dt)
	res := NightResult{Index: index, Seed: seed}
	for !g.NightOver() {
		if res.Ticks >= limit {
			res.Unfinished = true
			break
		}
		if res.Ticks%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		g.Update(dt)
		res.Ticks++
	}

	res.WallDestroyed = g.WallDestroyed()
	res.Resources = g.World.Resources
	if g.World.Wall != nil {
		res.WallHealth = g.World.Wall.Health
	}
	res.Stats = g.LastNight()
	if res.Stats == nil {
		res.Stats = g.World.Stats.Clone()
	}
	return res, nil
}

// runBatch plays nights concurrently. Night i uses seed+i so a batch is
// reproducible regardless of the worker count.
func runBatch(ctx context.Context, base app.Options, day, nights, workers int, seed int64) (*Report, error) {
	if nights < 1 {
		return nil, fmt.Errorf("nights must be positive, got %d", nights)
	}
	results := make([]NightResult, nights)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < nights; i++ {
		g.Go(func() error {
			res, err := runNight(ctx, base, day, i, seed+int64(i))
			if err != nil {
				return fmt.Errorf("night %d: %w", i, err)
			}
			results[i] = res
			slog.Debug("night simulated", "index", i, "killed", res.Stats.Totals().Killed, "wall_destroyed", res.WallDestroyed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Day: day, Seed: seed, Runs: nights, Totals: component.NewWaveStats(day), Nights: results}
	for _, r := range results {
		report.Totals.Merge(r.Stats)
		if r.WallDestroyed {
			report.Defeats++
		}
	}
	return report, nil
}

// WriteText prints a human-readable summary of the report.
func (r *Report) WriteText(w io.Writer) error {
	p := message.NewPrinter(language.English)
	t := r.Totals.Totals()
	if _, err := p.Fprintf(w, "Day %d, %d nights (seed %d)\n", r.Day, r.Runs, r.Seed); err != nil {
		return err
	}
	p.Fprintf(w, "Wall fell in %d of %d nights\n", r.Defeats, r.Runs)
	p.Fprintf(w, "Spawned %d, killed %d\n", t.Spawned, t.Killed)
	p.Fprintf(w, "Resources spent %.0f, earned %.0f\n", r.Totals.ResourcesConsumed, r.Totals.ResourcesProduced)
	for _, name := range r.Totals.Names() {
		a := r.Totals.Get(name)
		_, err := p.Fprintf(w, "  %-12s spawned %6d  killed %6d\n", name, a.Spawned, a.Killed)
		if err != nil {
			return err
		}
	}
	return nil
}
