package ports

// Target identifies what an animation acts on: either concrete elements or a
// selector resolved by the engine.
type Target struct {
	Selector string
	Elements []Element
}

// Selector targets every element matching a CSS selector.
func Selector(selector string) Target {
	return Target{Selector: selector}
}

// Elements targets the given elements.
func Elements(elements ...Element) Target {
	return Target{Elements: elements}
}

// IsZero reports whether the target names nothing.
func (t Target) IsZero() bool {
	return t.Selector == "" && len(t.Elements) == 0
}

// ScrollTrigger binds an animation to the scroll position of a trigger.
type ScrollTrigger struct {
	Trigger       Target
	Start         string
	End           string
	ToggleActions string
	Scrub         bool
}

// Tween configures a single animation. Props holds the animated numeric
// properties (opacity, x, y, yPercent, scale, rotation, value). For To tweens,
// Start optionally pins the starting values.
type Tween struct {
	Props         map[string]float64
	Start         map[string]float64
	Duration      float64
	Delay         float64
	Stagger       float64
	Ease          string
	ScrollTrigger *ScrollTrigger
	OnUpdate      func(values map[string]float64)
}

// Handle controls a running animation or scroll observer.
type Handle interface {
	Kill()
}

// AnimationEngine is the external animation capability.
type AnimationEngine interface {
	// From animates targets from the given values to their current state.
	From(target Target, tween Tween) Handle
	// To animates targets from their current state to the given values.
	To(target Target, tween Tween) Handle
	// ObserveScroll reports scroll progress (0..1) through trigger.
	ObserveScroll(trigger ScrollTrigger, onUpdate func(progress float64)) Handle
}
