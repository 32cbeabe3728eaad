// internal/component/wave.go
package component

import "sort"

// ArchetypeTally counts one archetype over a night.
type ArchetypeTally struct {
	Spawned int `json:"spawned"`
	Killed  int `json:"killed"`
}

// WaveStats aggregates one night. Every counter only grows while the night lasts.
type WaveStats struct {
	Day               int                        `json:"day"`
	PerArchetype      map[string]*ArchetypeTally `json:"per_archetype"`
	ResourcesConsumed float64                    `json:"resources_consumed"`
	ResourcesProduced float64                    `json:"resources_produced"`
}

// NewWaveStats starts an empty record for the given day.
func NewWaveStats(day int) *WaveStats {
	return &WaveStats{Day: day, PerArchetype: make(map[string]*ArchetypeTally)}
}

func (w *WaveStats) tally(name string) *ArchetypeTally {
	t, ok := w.PerArchetype[name]
	if !ok {
		t = &ArchetypeTally{}
		w.PerArchetype[name] = t
	}
	return t
}

func (w *WaveStats) RecordSpawn(name string) { w.tally(name).Spawned++ }
func (w *WaveStats) RecordKill(name string)  { w.tally(name).Killed++ }

// RecordConsumed adds resources spent this night. Negative amounts are ignored.
func (w *WaveStats) RecordConsumed(amount float64) {
	if amount > 0 {
		w.ResourcesConsumed += amount
	}
}

// RecordProduced adds resources earned this night. Negative amounts are ignored.
func (w *WaveStats) RecordProduced(amount float64) {
	if amount > 0 {
		w.ResourcesProduced += amount
	}
}

// Get returns the tally for an archetype; zero if it never appeared.
func (w *WaveStats) Get(name string) ArchetypeTally {
	if t, ok := w.PerArchetype[name]; ok {
		return *t
	}
	return ArchetypeTally{}
}

// Totals sums every archetype.
func (w *WaveStats) Totals() ArchetypeTally {
	var sum ArchetypeTally
	for _, t := range w.PerArchetype {
		sum.Spawned += t.Spawned
		sum.Killed += t.Killed
	}
	return sum
}

// Names returns archetype names seen this night, sorted.
func (w *WaveStats) Names() []string {
	names := make([]string, 0, len(w.PerArchetype))
	for n := range w.PerArchetype {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Merge folds another night into w. Used for batch reports.
func (w *WaveStats) Merge(o *WaveStats) {
	for name, t := range o.PerArchetype {
		mine := w.tally(name)
		mine.Spawned += t.Spawned
		mine.Killed += t.Killed
	}
	w.ResourcesConsumed += o.ResourcesConsumed
	w.ResourcesProduced += o.ResourcesProduced
}

// Clone returns a deep copy, safe to hand to another goroutine.
func (w *WaveStats) Clone() *WaveStats {
	c := NewWaveStats(w.Day)
	c.Merge(w)
	return c
}
