// Package animation translates named motion intents into calls on an
// injected animation engine.
package animation

import (
	"html"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

const (
	defaultStart   = "top 80%"
	toggleReverse  = "play none none reverse"
	toggleOnce     = "play none none none"
	easeOut        = "power2.out"
	easeCount      = "power1.out"
	easeBack       = "back.out(1.7)"
	easeNone       = "none"
	revealSpanOpen = `<span style="display:inline-block">`
)

// Animator builds tweens for the engine. A nil engine, or a media source
// reporting reduced motion, turns every helper into a no-op returning a nil
// handle.
type Animator struct {
	engine ports.AnimationEngine
	media  ports.MediaQueries
}

// NewAnimator returns an Animator. Either argument may be nil.
func NewAnimator(engine ports.AnimationEngine, media ports.MediaQueries) *Animator {
	return &Animator{engine: engine, media: media}
}

// PrefersReducedMotion reports the reduced-motion media feature; false when
// no media source is available.
func (a *Animator) PrefersReducedMotion() bool {
	return a.media != nil && a.media.Matches(ports.MediaReducedMotion)
}

func (a *Animator) enabled() bool {
	return a.engine != nil && !a.PrefersReducedMotion()
}

func scrollTrigger(o options, target ports.Target, toggle string) *ports.ScrollTrigger {
	return &ports.ScrollTrigger{
		Trigger:       orTarget(o.trigger, target),
		Start:         orString(o.start, defaultStart),
		ToggleActions: toggle,
	}
}

// FadeInOnScroll fades target up into place when it scrolls into view.
func (a *Animator) FadeInOnScroll(target ports.Target, opts ...Option) ports.Handle {
	if !a.enabled() {
		return nil
	}
	o := collect(opts)
	tween := ports.Tween{
		Props:         map[string]float64{"opacity": 0, "y": orFloat(o.y, 30)},
		Duration:      orFloat(o.duration, 0.8),
		Delay:         orFloat(o.delay, 0),
		Ease:          easeOut,
		ScrollTrigger: scrollTrigger(o, target, toggleReverse),
	}
	if o.stagger != nil && *o.stagger != 0 {
		tween.Stagger = *o.stagger
	}
	return a.engine.From(target, tween)
}

// SlideInFromLeft slides target in from the left on scroll.
func (a *Animator) SlideInFromLeft(target ports.Target, opts ...Option) ports.Handle {
	return a.slideIn(target, -50, opts)
}

// SlideInFromRight slides target in from the right on scroll.
func (a *Animator) SlideInFromRight(target ports.Target, opts ...Option) ports.Handle {
	return a.slideIn(target, 50, opts)
}

func (a *Animator) slideIn(target ports.Target, x float64, opts []Option) ports.Handle {
	if !a.enabled() {
		return nil
	}
	o := collect(opts)
	return a.engine.From(target, ports.Tween{
		Props:         map[string]float64{"opacity": 0, "x": orFloat(o.x, x)},
		Duration:      orFloat(o.duration, 0.8),
		Ease:          easeOut,
		ScrollTrigger: scrollTrigger(o, target, toggleReverse),
	})
}

// StaggerGrid reveals grid items one after another. Without WithTrigger the
// tween runs immediately instead of on scroll.
func (a *Animator) StaggerGrid(items ports.Target, opts ...Option) ports.Handle {
	if !a.enabled() {
		return nil
	}
	o := collect(opts)
	tween := ports.Tween{
		Props:    map[string]float64{"opacity": 0, "y": orFloat(o.y, 50)},
		Stagger:  orFloat(o.stagger, 0.1),
		Duration: orFloat(o.duration, 0.8),
		Ease:     easeOut,
	}
	if o.trigger != nil && !o.trigger.IsZero() {
		tween.ScrollTrigger = scrollTrigger(o, items, toggleReverse)
	}
	return a.engine.From(items, tween)
}

// ParallaxScroll moves target vertically in step with the scroll position.
func (a *Animator) ParallaxScroll(target ports.Target, opts ...Option) ports.Handle {
	if !a.enabled() {
		return nil
	}
	o := collect(opts)
	props := map[string]float64{"yPercent": orFloat(o.yPercent, 30)}
	if o.scale != nil && *o.scale != 0 {
		props["scale"] = *o.scale
	}
	return a.engine.To(target, ports.Tween{
		Props: props,
		Ease:  easeNone,
		ScrollTrigger: &ports.ScrollTrigger{
			Trigger: orTarget(o.trigger, target),
			Start:   orString(o.start, "top top"),
			End:     orString(o.end, "bottom top"),
			Scrub:   true,
		},
	})
}

// ScaleInOnScroll grows target into place with a slight overshoot.
func (a *Animator) ScaleInOnScroll(target ports.Target, opts ...Option) ports.Handle {
	if !a.enabled() {
		return nil
	}
	o := collect(opts)
	return a.engine.From(target, ports.Tween{
		Props:         map[string]float64{"opacity": 0, "scale": orFloat(o.scale, 0.8)},
		Duration:      orFloat(o.duration, 0.8),
		Ease:          easeBack,
		ScrollTrigger: scrollTrigger(o, target, toggleReverse),
	})
}

// RotateInOnScroll rotates target into place on scroll.
func (a *Animator) RotateInOnScroll(target ports.Target, opts ...Option) ports.Handle {
	if !a.enabled() {
		return nil
	}
	o := collect(opts)
	return a.engine.From(target, ports.Tween{
		Props:         map[string]float64{"opacity": 0, "rotation": orFloat(o.rotation, 15)},
		Duration:      orFloat(o.duration, 0.8),
		Ease:          easeOut,
		ScrollTrigger: scrollTrigger(o, target, toggleReverse),
	})
}

// HoverScale scales el up while the pointer is over it. It reports whether
// listeners were attached.
func (a *Animator) HoverScale(el ports.Element, opts ...Option) bool {
	o := collect(opts)
	return a.hover(el, o,
		map[string]float64{"scale": orFloat(o.scale, 1.05)},
		map[string]float64{"scale": 1},
	)
}

// HoverLift raises and slightly scales el while the pointer is over it.
func (a *Animator) HoverLift(el ports.Element, opts ...Option) bool {
	o := collect(opts)
	return a.hover(el, o,
		map[string]float64{"y": orFloat(o.y, -5), "scale": orFloat(o.scale, 1.02)},
		map[string]float64{"y": 0, "scale": 1},
	)
}

func (a *Animator) hover(el ports.Element, o options, enter, leave map[string]float64) bool {
	if el == nil || !a.enabled() {
		return false
	}
	duration := orFloat(o.duration, 0.3)
	target := ports.Elements(el)
	el.AddEventListener("mouseenter", func() {
		a.engine.To(target, ports.Tween{Props: enter, Duration: duration, Ease: easeOut})
	})
	el.AddEventListener("mouseleave", func() {
		a.engine.To(target, ports.Tween{Props: leave, Duration: duration, Ease: easeOut})
	})
	return true
}

// CountUp counts the text of el from 0 to end once it scrolls into view.
// When animation is unavailable the final value is written directly.
func (a *Animator) CountUp(el ports.Element, end float64, opts ...Option) ports.Handle {
	if el == nil {
		return nil
	}
	o := collect(opts)
	if !a.enabled() {
		el.SetTextContent(o.prefix + strconv.FormatFloat(end, 'f', -1, 64) + o.suffix)
		return nil
	}

	decimals := 0
	if o.decimals != nil && *o.decimals > 0 {
		decimals = *o.decimals
	}
	return a.engine.To(ports.Elements(el), ports.Tween{
		Props:    map[string]float64{"value": end},
		Start:    map[string]float64{"value": 0},
		Duration: orFloat(o.duration, 2),
		Ease:     easeCount,
		ScrollTrigger: &ports.ScrollTrigger{
			Trigger:       ports.Elements(el),
			Start:         defaultStart,
			ToggleActions: toggleOnce,
		},
		OnUpdate: func(values map[string]float64) {
			el.SetTextContent(o.prefix + strconv.FormatFloat(values["value"], 'f', decimals, 64) + o.suffix)
		},
	})
}

// RevealText splits the text of el into one span per character and reveals
// them in sequence.
func (a *Animator) RevealText(el ports.Element, opts ...Option) ports.Handle {
	if el == nil || !a.enabled() {
		return nil
	}
	o := collect(opts)
	if err := el.SetInnerHTML(splitChars(el.TextContent())); err != nil {
		return nil
	}
	chars := ports.Elements(el.QuerySelectorAll("span")...)
	return a.engine.From(chars, ports.Tween{
		Props:         map[string]float64{"opacity": 0, "y": orFloat(o.y, 20)},
		Stagger:       orFloat(o.stagger, 0.03),
		Duration:      orFloat(o.duration, 0.8),
		Ease:          easeOut,
		ScrollTrigger: scrollTrigger(o, ports.Elements(el), toggleReverse),
	})
}

func splitChars(text string) string {
	var b strings.Builder
	for _, r := range text {
		b.WriteString(revealSpanOpen)
		if r == ' ' {
			b.WriteString("&nbsp;")
		} else {
			b.WriteString(html.EscapeString(string(r)))
		}
		b.WriteString("</span>")
	}
	return b.String()
}

// ScrollProgress reports scroll progress through target as a value in
// [0, 1].
func (a *Animator) ScrollProgress(target ports.Target, onProgress func(float64), opts ...Option) ports.Handle {
	if onProgress == nil || !a.enabled() {
		return nil
	}
	o := collect(opts)
	return a.engine.ObserveScroll(ports.ScrollTrigger{
		Trigger: orTarget(o.trigger, target),
		Start:   orString(o.start, "top bottom"),
		End:     orString(o.end, "bottom top"),
	}, onProgress)
}
