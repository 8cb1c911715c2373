package animation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// Kind names the engine call that produced a recorded entry.
type Kind string

const (
	KindFrom   Kind = "from"
	KindTo     Kind = "to"
	KindScroll Kind = "scroll"
)

// Trigger is the serialisable form of ports.ScrollTrigger.
type Trigger struct {
	Trigger       []string `json:"trigger"`
	Start         string   `json:"start,omitempty"`
	End           string   `json:"end,omitempty"`
	ToggleActions string   `json:"toggleActions,omitempty"`
	Scrub         bool     `json:"scrub,omitempty"`
}

// Recorder is an AnimationEngine that records every call instead of
// rendering frames. Seek and Scroll drive the recorded tweens so their
// OnUpdate callbacks observe interpolated values.
type Recorder struct {
	doc ports.Document

	mu     sync.Mutex
	nextID int
	tweens []*Tween
}

// NewRecorder returns a recorder resolving selector targets against doc;
// doc may be nil, in which case selector targets resolve to nothing.
func NewRecorder(doc ports.Document) *Recorder {
	return &Recorder{doc: doc}
}

// From implements ports.AnimationEngine.
func (r *Recorder) From(target ports.Target, tween ports.Tween) ports.Handle {
	return r.record(KindFrom, target, tween, nil)
}

// To implements ports.AnimationEngine.
func (r *Recorder) To(target ports.Target, tween ports.Tween) ports.Handle {
	return r.record(KindTo, target, tween, nil)
}

// ObserveScroll implements ports.AnimationEngine.
func (r *Recorder) ObserveScroll(trigger ports.ScrollTrigger, onUpdate func(progress float64)) ports.Handle {
	t := trigger
	return r.record(KindScroll, trigger.Trigger, ports.Tween{ScrollTrigger: &t}, onUpdate)
}

func (r *Recorder) record(kind Kind, target ports.Target, tween ports.Tween, observer func(float64)) *Tween {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t := &Tween{
		ID:       r.nextID,
		Kind:     kind,
		Targets:  r.describe(target),
		Props:    copyValues(tween.Props),
		Start:    copyValues(tween.Start),
		Duration: tween.Duration,
		Delay:    tween.Delay,
		Stagger:  tween.Stagger,
		Ease:     tween.Ease,
		onUpdate: tween.OnUpdate,
		observer: observer,
	}
	if st := tween.ScrollTrigger; st != nil {
		t.ScrollTrigger = &Trigger{
			Trigger:       r.describe(st.Trigger),
			Start:         st.Start,
			End:           st.End,
			ToggleActions: st.ToggleActions,
			Scrub:         st.Scrub,
		}
	}
	r.tweens = append(r.tweens, t)
	return t
}

// Tweens returns every recorded entry in call order, killed ones included.
func (r *Recorder) Tweens() []*Tween {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Tween(nil), r.tweens...)
}

// Active returns the entries that have not been killed.
func (r *Recorder) Active() []*Tween {
	out := make([]*Tween, 0)
	for _, t := range r.Tweens() {
		if !t.Killed() {
			out = append(out, t)
		}
	}
	return out
}

// Play completes every live tween that is not bound to scroll.
func (r *Recorder) Play() {
	for _, t := range r.Active() {
		if t.ScrollTrigger == nil && t.Kind != KindScroll {
			t.Seek(1)
		}
	}
}

// Scroll moves the simulated scroll position through every trigger.
// Scrubbed tweens follow progress, triggered tweens play once progress is
// positive and reverse at zero when their toggle actions say so, and scroll
// observers receive the raw progress.
func (r *Recorder) Scroll(progress float64) {
	progress = clamp(progress)
	for _, t := range r.Active() {
		switch {
		case t.Kind == KindScroll:
			if t.observer != nil {
				t.observer(progress)
			}
		case t.ScrollTrigger == nil:
		case t.ScrollTrigger.Scrub:
			t.Seek(progress)
		case progress > 0:
			t.Seek(1)
		case reverses(t.ScrollTrigger.ToggleActions):
			t.Seek(0)
		}
	}
}

// WriteJSON serialises the live timeline.
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Tweens []*Tween `json:"tweens"`
	}{Tweens: r.Active()}); err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}
	return nil
}

func (r *Recorder) describe(target ports.Target) []string {
	elements := target.Elements
	if target.Selector != "" {
		if r.doc == nil {
			return []string{target.Selector}
		}
		elements = r.doc.QuerySelectorAll(target.Selector)
	}
	out := make([]string, 0, len(elements))
	for _, el := range elements {
		out = append(out, Describe(el))
	}
	return out
}

// Describe renders an element as tag#id.class for timelines.
func Describe(el ports.Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(el.TagName())
	if id, ok := el.Attribute("id"); ok && id != "" {
		b.WriteString("#" + id)
	}
	if class, ok := el.Attribute("class"); ok {
		for _, c := range strings.Fields(class) {
			b.WriteString("." + c)
		}
	}
	return b.String()
}

func reverses(toggleActions string) bool {
	fields := strings.Fields(toggleActions)
	return len(fields) == 4 && fields[3] == "reverse"
}

func clamp(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

func copyValues(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

var _ ports.AnimationEngine = (*Recorder)(nil)
