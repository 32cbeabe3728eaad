// cmd/game/main.go
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"go-wall-defense/internal/app"
	"go-wall-defense/internal/config"
	"go-wall-defense/internal/state"
	"go-wall-defense/internal/utils"
	"go-wall-defense/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func fieldColors() *render.FieldColors {
	return &render.FieldColors{
		Background:  config.BackgroundColor,
		Ground:      config.GroundColor,
		Fog:         config.FogColor,
		Wall:        config.WallColor,
		Fence:       config.FenceColor,
		Weapon:      config.WeaponColor,
		Enemy:       config.EnemyColor,
		Flyer:       config.FlyerColor,
		Projectile:  config.ProjectileColor,
		HealthBar:   config.HealthBarColor,
		Text:        config.TextLightColor,
		StrokeWidth: 2,
	}
}

func main() {
	configPath := flag.String("config", "", "tunables yaml file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "spawn seed")
	day := flag.Int("day", 1, "first night to play")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	tun := config.Default()
	if *configPath != "" {
		var err error
		if tun, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	g, err := app.NewGame(app.Options{Tunables: tun, Rng: utils.NewPRNGService(*seed)})
	if err != nil {
		log.Fatal(err)
	}
	if err := g.StartNight(*day); err != nil {
		log.Fatal(err)
	}
	slog.Info("game started", "seed", *seed, "day", *day)

	area := image.Rect(20, 50, config.ScreenWidth-380, config.ScreenHeight-50)
	renderer := render.NewFieldRenderer(tun.MapWidth, tun.MapHeight, area, config.ScreenWidth-340, basicfont.Face7x13, fieldColors())

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewNightState(sm, g, renderer))
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wall Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
