package state

import (
	"errors"
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"go-wall-defense/internal/app"
	"go-wall-defense/internal/component"
)

type fakeGame struct {
	day       int
	updates   int
	paused    bool
	over      bool
	destroyed bool
	speed     float64
	startErr  error
	stats     *component.WaveStats
}

func (f *fakeGame) Update(float64) { f.updates++ }
func (f *fakeGame) StartNight(day int) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.day, f.over = day, false
	return nil
}
func (f *fakeGame) NightOver() bool { return f.over }
func (f *fakeGame) WallDestroyed() bool { return f.destroyed }
func (f *fakeGame) HandlePauseClick() { f.paused = !f.paused }
func (f *fakeGame) IsPaused() bool { return f.paused }
func (f *fakeGame) SetSpeed(m float64) error {
	f.speed = m
	return nil
}
func (f *fakeGame) Snapshot() app.Snapshot { return app.Snapshot{Day: f.day} }
func (f *fakeGame) LastNight() *component.WaveStats { return f.stats }

// keys presses the given keys on the next poll only.
type keys map[ebiten.Key]bool

func (k keys) pressed(key ebiten.Key) bool {
	down := k[key]
	delete(k, key)
	return down
}

// clicks replays queued clicks, one per poll.
type clicks struct{ queue [][2]float32 }

func (c *clicks) next() (float32, float32, bool) {
	if len(c.queue) == 0 {
		return 0, 0, false
	}
	p := c.queue[0]
	c.queue = c.queue[1:]
	return p[0], p[1], true
}

func newNight(g *fakeGame, k keys) (*StateMachine, *NightState) {
	sm := NewStateMachine()
	n := NewNightState(sm, g, nil)
	n.pressed = k.pressed
	n.click = (&clicks{}).next
	sm.SetState(n)
	return sm, n
}

func TestNightStateTicksTheGame(t *testing.T) {
	g := &fakeGame{day: 1}
	sm, n := newNight(g, keys{})
	sm.Update(0.016)
	sm.Update(0.016)
	if g.updates != 2 {
		t.Errorf("updates = %d, want 2", g.updates)
	}
	if sm.Current() != n {
		t.Error("left the night while it was running")
	}
}

func TestNightStateSpeedKeys(t *testing.T) {
	g := &fakeGame{day: 1}
	k := keys{ebiten.Key3: true}
	sm, n := newNight(g, k)
	sm.Update(0.016)
	if g.speed != 4 {
		t.Errorf("speed = %v, want 4", g.speed)
	}
	if n.speedBtn.CurrentState != 2 {
		t.Errorf("speed button state = %d, want 2", n.speedBtn.CurrentState)
	}
}

func TestButtonsPauseAndChangeSpeed(t *testing.T) {
	g := &fakeGame{day: 1}
	sm, n := newNight(g, keys{})
	c := &clicks{}
	n.click = c.next

	c.queue = append(c.queue, [2]float32{n.speedBtn.X, n.speedBtn.Y})
	sm.Update(0.016)
	if g.speed != 2 || n.speedBtn.CurrentState != 1 {
		t.Errorf("speed = %v, button state = %d after one click", g.speed, n.speedBtn.CurrentState)
	}

	c.queue = append(c.queue, [2]float32{n.pauseBtn.X, n.pauseBtn.Y})
	sm.Update(0.016)
	if _, ok := sm.Current().(*PauseState); !ok || !g.paused || !n.pauseBtn.IsPaused {
		t.Fatalf("state = %T, paused = %v", sm.Current(), g.paused)
	}

	c.queue = append(c.queue, [2]float32{n.pauseBtn.X, n.pauseBtn.Y})
	sm.Update(0.016)
	if sm.Current() != n || g.paused || n.pauseBtn.IsPaused {
		t.Errorf("state = %T, paused = %v after clicking play", sm.Current(), g.paused)
	}
}

func TestPauseAndResume(t *testing.T) {
	g := &fakeGame{day: 1}
	k := keys{ebiten.KeySpace: true}
	sm, n := newNight(g, k)

	sm.Update(0.016)
	if _, ok := sm.Current().(*PauseState); !ok || !g.paused {
		t.Fatalf("state = %T, paused = %v", sm.Current(), g.paused)
	}
	if g.updates != 0 {
		t.Error("the game ticked on the frame it was paused")
	}

	sm.Update(0.016)
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Error("unpaused without a key")
	}

	k[ebiten.KeyEscape] = true
	sm.Update(0.016)
	if sm.Current() != n || g.paused {
		t.Errorf("state = %T, paused = %v after resume", sm.Current(), g.paused)
	}
}

func TestNightOverShowsSummary(t *testing.T) {
	g := &fakeGame{day: 2, stats: component.NewWaveStats(2)}
	k := keys{}
	sm, _ := newNight(g, k)

	g.over = true
	sm.Update(0.016)
	summary, ok := sm.Current().(*SummaryState)
	if !ok {
		t.Fatalf("state = %T, want summary", sm.Current())
	}
	summary.pressed = k.pressed
	if got := summary.Lines()[0]; got != "Night 2 survived" {
		t.Errorf("headline = %q", got)
	}

	sm.Update(0.016)
	if sm.Current() != summary {
		t.Error("next night started without a key")
	}

	k[ebiten.KeyN] = true
	sm.Update(0.016)
	if _, ok := sm.Current().(*NightState); !ok {
		t.Fatalf("state = %T, want the next night", sm.Current())
	}
	if g.day != 3 {
		t.Errorf("started day %d, want 3", g.day)
	}
}

func TestSummaryAfterDefeat(t *testing.T) {
	g := &fakeGame{day: 4, over: true, destroyed: true}
	k := keys{ebiten.KeyN: true}
	sm := NewStateMachine()
	s := NewSummaryState(sm, g, nil)
	s.pressed = k.pressed
	sm.SetState(s)

	sm.Update(0.016)
	if sm.Current() != s {
		t.Error("a new night started after the wall fell")
	}
	lines := s.Lines()
	if lines[0] != "The wall fell on night 4" {
		t.Errorf("headline = %q", lines[0])
	}
	for _, l := range lines {
		if l == "Press N for the next night" {
			t.Error("offered another night after defeat")
		}
	}
}

func TestSummaryKeepsStateWhenStartFails(t *testing.T) {
	g := &fakeGame{day: 1, startErr: errors.New("boom")}
	k := keys{ebiten.KeyN: true}
	sm := NewStateMachine()
	s := NewSummaryState(sm, g, nil)
	s.pressed = k.pressed
	sm.SetState(s)

	sm.Update(0.016)
	if sm.Current() != s {
		t.Errorf("state = %T, want to stay on the summary", sm.Current())
	}
}

type traceState struct {
	name string
	log  *[]string
}

func (s traceState) Enter() { *s.log = append(*s.log, "enter "+s.name) }
func (s traceState) Exit() { *s.log = append(*s.log, "exit "+s.name) }
func (s traceState) Update(float64) { *s.log = append(*s.log, "update "+s.name) }
func (s traceState) Draw(*ebiten.Image) {}

func TestStateMachineSwitchesScreens(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.1) // idle, nothing to run

	sm.SetState(traceState{"night", &log})
	sm.Update(0.1)
	sm.SetState(traceState{"summary", &log})
	sm.SetState(nil)
	sm.Update(0.1)

	want := []string{"enter night", "update night", "exit night", "enter summary", "exit summary"}
	if !slices.Equal(log, want) {
		t.Errorf("calls = %q, want %q", log, want)
	}
	if sm.Current() != nil {
		t.Errorf("Current = %v after SetState(nil)", sm.Current())
	}
}
