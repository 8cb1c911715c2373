package animation

import "github.com/alexisbeaulieu97/folio/internal/ports"

// Option overrides one helper parameter. Unset parameters take the helper's
// own default.
type Option func(*options)

type options struct {
	trigger  *ports.Target
	start    *string
	end      *string
	x        *float64
	y        *float64
	yPercent *float64
	scale    *float64
	rotation *float64
	duration *float64
	delay    *float64
	stagger  *float64
	decimals *int
	prefix   string
	suffix   string
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithTrigger sets the scroll trigger element.
func WithTrigger(target ports.Target) Option {
	return func(o *options) { o.trigger = &target }
}

// WithStart sets the scroll trigger start position, e.g. "top 80%".
func WithStart(start string) Option {
	return func(o *options) { o.start = &start }
}

// WithEnd sets the scroll trigger end position.
func WithEnd(end string) Option {
	return func(o *options) { o.end = &end }
}

// WithX sets the horizontal offset in pixels.
func WithX(x float64) Option { return func(o *options) { o.x = &x } }

// WithY sets the vertical offset in pixels.
func WithY(y float64) Option { return func(o *options) { o.y = &y } }

// WithYPercent sets the vertical offset as a percentage of the target height.
func WithYPercent(p float64) Option { return func(o *options) { o.yPercent = &p } }

// WithScale sets the scale factor.
func WithScale(scale float64) Option { return func(o *options) { o.scale = &scale } }

// WithRotation sets the rotation in degrees.
func WithRotation(degrees float64) Option { return func(o *options) { o.rotation = &degrees } }

// WithDuration sets the tween duration in seconds.
func WithDuration(seconds float64) Option { return func(o *options) { o.duration = &seconds } }

// WithDelay sets the start delay in seconds.
func WithDelay(seconds float64) Option { return func(o *options) { o.delay = &seconds } }

// WithStagger sets the delay between consecutive targets in seconds.
func WithStagger(seconds float64) Option { return func(o *options) { o.stagger = &seconds } }

// WithDecimals sets the number of decimals CountUp renders.
func WithDecimals(decimals int) Option { return func(o *options) { o.decimals = &decimals } }

// WithPrefix sets the text CountUp writes before the number.
func WithPrefix(prefix string) Option { return func(o *options) { o.prefix = prefix } }

// WithSuffix sets the text CountUp writes after the number.
func WithSuffix(suffix string) Option { return func(o *options) { o.suffix = suffix } }

func orFloat(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func orString(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func orTarget(v *ports.Target, def ports.Target) ports.Target {
	if v == nil || v.IsZero() {
		return def
	}
	return *v
}
