package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/folio/internal/animation"
	recorder "github.com/alexisbeaulieu97/folio/internal/infrastructure/animation"
	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// intent applies one motion preset to the elements matched by selector and
// reports how many animations it started.
type intent func(a *animation.Animator, doc ports.Document, selector string, opts []animation.Option, end float64) int

func targetIntent(fn func(*animation.Animator, ports.Target, ...animation.Option) ports.Handle) intent {
	return func(a *animation.Animator, _ ports.Document, selector string, opts []animation.Option, _ float64) int {
		if fn(a, ports.Selector(selector), opts...) == nil {
			return 0
		}
		return 1
	}
}

func elementIntent(fn func(a *animation.Animator, el ports.Element, opts []animation.Option, end float64) bool) intent {
	return func(a *animation.Animator, doc ports.Document, selector string, opts []animation.Option, end float64) int {
		started := 0
		for _, el := range doc.QuerySelectorAll(selector) {
			if fn(a, el, opts, end) {
				started++
			}
		}
		return started
	}
}

var intents = map[string]intent{
	"fade-in":     targetIntent((*animation.Animator).FadeInOnScroll),
	"slide-left":  targetIntent((*animation.Animator).SlideInFromLeft),
	"slide-right": targetIntent((*animation.Animator).SlideInFromRight),
	"stagger":     targetIntent((*animation.Animator).StaggerGrid),
	"parallax":    targetIntent((*animation.Animator).ParallaxScroll),
	"scale-in":    targetIntent((*animation.Animator).ScaleInOnScroll),
	"rotate-in":   targetIntent((*animation.Animator).RotateInOnScroll),
	"hover-scale": elementIntent(func(a *animation.Animator, el ports.Element, opts []animation.Option, _ float64) bool {
		return a.HoverScale(el, opts...)
	}),
	"hover-lift": elementIntent(func(a *animation.Animator, el ports.Element, opts []animation.Option, _ float64) bool {
		return a.HoverLift(el, opts...)
	}),
	"count-up": elementIntent(func(a *animation.Animator, el ports.Element, opts []animation.Option, end float64) bool {
		return a.CountUp(el, end, opts...) != nil
	}),
	"reveal-text": elementIntent(func(a *animation.Animator, el ports.Element, opts []animation.Option, _ float64) bool {
		return a.RevealText(el, opts...) != nil
	}),
	"scroll-progress": func(a *animation.Animator, doc ports.Document, selector string, opts []animation.Option, _ float64) int {
		handle := a.ScrollProgress(ports.Selector(selector), func(p float64) {
			for _, el := range doc.QuerySelectorAll(selector) {
				el.SetAttribute("data-progress", fmt.Sprintf("%.2f", p))
			}
		}, opts...)
		if handle == nil {
			return 0
		}
		return 1
	},
}

func intentNames() []string {
	names := make([]string, 0, len(intents))
	for name := range intents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type animateOptions struct {
	htmlPath string
	out      string
	progress float64
	trigger  string
	start    string
	end      float64
	prefix   string
	suffix   string
}

func newAnimateCmd(app *AppContext) *cobra.Command {
	opts := &animateOptions{}

	cmd := &cobra.Command{
		Use:   "animate <intent> <selector>",
		Short: "Record a motion preset against an HTML document",
		Long: fmt.Sprintf(`Apply a motion preset to the elements matching selector and print the
resulting timeline as JSON. Intents: %s.

Without --progress every non-scroll animation is played to completion; with
--progress scroll-bound animations are driven to that position instead.`, strings.Join(intentNames(), ", ")),
		Args:      cobra.ExactArgs(2),
		ValidArgs: intentNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.animate")
			apply, ok := intents[args[0]]
			if !ok {
				return newCommandError("animate", fmt.Sprintf("choosing intent %q", args[0]), fmt.Errorf("unknown intent"),
					"Use one of: "+strings.Join(intentNames(), ", "))
			}

			doc, err := readDocument(opts.htmlPath)
			if err != nil {
				return err
			}

			rec := recorder.NewRecorder(doc)
			animator := animation.NewAnimator(rec, app.Media())
			if animator.PrefersReducedMotion() {
				logger.Info(ctx, "reduced motion requested, animations disabled")
			}

			started := apply(animator, doc, args[1], motionOptions(cmd.Flags(), opts), opts.end)
			logger.Debug(ctx, "intent applied", "intent", args[0], "selector", args[1], "started", started)

			if cmd.Flags().Changed("progress") {
				rec.Scroll(opts.progress)
			} else {
				rec.Play()
			}

			if err := rec.WriteJSON(cmd.OutOrStdout()); err != nil {
				return err
			}
			if opts.out != "" {
				return writeDocument(cmd, doc, opts.out)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.htmlPath, "html", "", "HTML document to animate")
	flags.StringVarP(&opts.out, "out", "o", "", "Write the animated document here")
	flags.Float64Var(&opts.progress, "progress", 0, "Scroll position to drive scroll-bound animations to (0..1)")
	flags.StringVar(&opts.trigger, "trigger", "", "Selector of the scroll trigger element")
	flags.StringVar(&opts.start, "start", "", "Scroll start position, e.g. \"top 80%\"")
	flags.Float64("duration", 0, "Duration in seconds")
	flags.Float64("delay", 0, "Delay in seconds")
	flags.Float64("stagger", 0, "Stagger between elements in seconds")
	flags.Float64("x", 0, "Horizontal offset in pixels")
	flags.Float64("y", 0, "Vertical offset in pixels")
	flags.Float64("scale", 0, "Scale factor")
	flags.Float64("rotation", 0, "Rotation in degrees")
	flags.Float64("speed", 0, "Parallax travel in percent of the element height")
	flags.Int("decimals", 0, "Decimals shown by count-up")
	flags.Float64Var(&opts.end, "end", 0, "Final value for count-up")
	flags.StringVar(&opts.prefix, "prefix", "", "Text before the count-up value")
	flags.StringVar(&opts.suffix, "suffix", "", "Text after the count-up value")
	_ = cmd.MarkFlagRequired("html")

	return cmd
}

// motionOptions forwards only the flags that were set so each preset keeps
// its own defaults.
func motionOptions(flags *pflag.FlagSet, opts *animateOptions) []animation.Option {
	var out []animation.Option
	float := func(name string, option func(float64) animation.Option) {
		if !flags.Changed(name) {
			return
		}
		if v, err := flags.GetFloat64(name); err == nil {
			out = append(out, option(v))
		}
	}

	float("duration", animation.WithDuration)
	float("delay", animation.WithDelay)
	float("stagger", animation.WithStagger)
	float("x", animation.WithX)
	float("y", animation.WithY)
	float("scale", animation.WithScale)
	float("rotation", animation.WithRotation)
	float("speed", animation.WithYPercent)

	if flags.Changed("decimals") {
		if v, err := flags.GetInt("decimals"); err == nil {
			out = append(out, animation.WithDecimals(v))
		}
	}
	if opts.trigger != "" {
		out = append(out, animation.WithTrigger(ports.Selector(opts.trigger)))
	}
	if opts.start != "" {
		out = append(out, animation.WithStart(opts.start))
	}
	if opts.prefix != "" {
		out = append(out, animation.WithPrefix(opts.prefix))
	}
	if opts.suffix != "" {
		out = append(out, animation.WithSuffix(opts.suffix))
	}
	return out
}
