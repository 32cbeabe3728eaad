package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"go-wall-defense/internal/app"
	"go-wall-defense/internal/event"
	"go-wall-defense/internal/feed"
)

var feedEvents = []event.EventType{
	event.EnemySpawned,
	event.EnemyKilled,
	event.EnemyReachedWall,
	event.StructureDestroyed,
	event.WeaponFault,
	event.NightEnded,
}

func newMux(hub *feed.Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// serve plays one night in real time and streams it to websocket spectators.
// It keeps serving the final state until ctx is cancelled.
func serve(ctx context.Context, addr string, g *app.Game, day int, fps int) error {
	hub := feed.NewHub()
	defer hub.Close()
	for _, t := range feedEvents {
		g.EventDispatcher.Subscribe(t, hub)
	}

	srv := &http.Server{Addr: addr, Handler: newMux(hub), ReadHeaderTimeout: 5 * time.Second}
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		slog.Info("serving night", "addr", addr, "day", day)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	grp.Go(func() error {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	})
	grp.Go(func() error {
		if err := g.StartNight(day); err != nil {
			return err
		}
		return streamNight(ctx, g, hub, fps)
	})
	return grp.Wait()
}

func streamNight(ctx context.Context, g *app.Game, hub *feed.Hub, fps int) error {
	if fps < 1 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			g.Update(now.Sub(last).Seconds())
			last = now
			if err := hub.Broadcast(feed.TypeSnapshot, g.Snapshot()); err != nil {
				return err
			}
			if g.NightOver() {
				if err := hub.Broadcast(feed.TypeSummary, g.LastNight()); err != nil {
					return err
				}
				slog.Info("night over", "wall_destroyed", g.WallDestroyed())
				<-ctx.Done()
				return nil
			}
		}
	}
}
