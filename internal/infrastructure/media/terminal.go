package media

import (
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// Scheme overrides terminal colour-scheme detection.
type Scheme string

const (
	SchemeAuto  Scheme = "auto"
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// TerminalOptions configures NewTerminal.
type TerminalOptions struct {
	// Scheme forces the dark signal when not auto.
	Scheme Scheme
	// ReducedMotion forces the reduced-motion signal on. It is also on when
	// the NO_MOTION environment variable is set.
	ReducedMotion bool
	// Output is queried for its background colour; nil uses stdout.
	Output *termenv.Output
}

// NewTerminal answers media queries from the controlling terminal: the dark
// signal comes from the terminal background colour. Terminals never announce
// scheme changes, so the returned Static only changes through Set.
func NewTerminal(opts TerminalOptions) *Static {
	dark := false
	switch opts.Scheme {
	case SchemeDark:
		dark = true
	case SchemeLight:
		dark = false
	default:
		output := opts.Output
		if output == nil {
			output = termenv.NewOutput(os.Stdout)
		}
		dark = output.HasDarkBackground()
	}

	reduced := opts.ReducedMotion || strings.TrimSpace(os.Getenv("NO_MOTION")) != ""

	return NewStatic(map[string]bool{
		ports.MediaPrefersDark:   dark,
		ports.MediaReducedMotion: reduced,
	})
}
