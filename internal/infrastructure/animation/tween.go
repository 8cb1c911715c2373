package animation

import "sync"

// Tween is one recorded engine call.
type Tween struct {
	ID            int                `json:"id"`
	Kind          Kind               `json:"kind"`
	Targets       []string           `json:"targets"`
	Props         map[string]float64 `json:"props,omitempty"`
	Start         map[string]float64 `json:"start,omitempty"`
	Duration      float64            `json:"duration,omitempty"`
	Delay         float64            `json:"delay,omitempty"`
	Stagger       float64            `json:"stagger,omitempty"`
	Ease          string             `json:"ease,omitempty"`
	ScrollTrigger *Trigger           `json:"scrollTrigger,omitempty"`

	onUpdate func(map[string]float64)
	observer func(float64)

	mu       sync.Mutex
	killed   bool
	progress float64
}

// identity is the resting value of a property when nothing pins it.
var identity = map[string]float64{"opacity": 1, "scale": 1}

// Kill implements ports.Handle.
func (t *Tween) Kill() {
	t.mu.Lock()
	t.killed = true
	t.mu.Unlock()
}

// Killed reports whether Kill was called.
func (t *Tween) Killed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.killed
}

// Progress returns the last seek position.
func (t *Tween) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

// Values interpolates the animated properties at progress p. "to" tweens
// move from Start (or the resting value) to Props; "from" tweens move from
// Props back to the resting value.
func (t *Tween) Values(p float64) map[string]float64 {
	p = clamp(p)
	out := make(map[string]float64, len(t.Props))
	for name, target := range t.Props {
		rest, ok := t.Start[name]
		if !ok {
			rest = identity[name]
		}
		from, to := rest, target
		if t.Kind == KindFrom {
			from, to = target, rest
		}
		out[name] = from + (to-from)*p
	}
	return out
}

// Seek moves the tween to progress p and reports the values to OnUpdate.
// Killed tweens ignore seeks.
func (t *Tween) Seek(p float64) {
	t.mu.Lock()
	if t.killed {
		t.mu.Unlock()
		return
	}
	t.progress = clamp(p)
	progress := t.progress
	t.mu.Unlock()

	if t.onUpdate != nil {
		t.onUpdate(t.Values(progress))
	}
}
