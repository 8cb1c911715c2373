// Package logging provides the ports.Logger adapters: charmbracelet/log for
// human output, zerolog for JSON lines, a buffer for entries emitted before
// the real logger exists, and a no-op logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures a logger.
type Options struct {
	Writer io.Writer
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Format selects the backend: text (charmbracelet/log) or json (zerolog).
	Format     string
	TimeFormat string
	Layer      string
	Component  string
	Fields     map[string]interface{}
}

// New builds the logger selected by opts.Format.
func New(opts Options) (ports.Logger, error) {
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		return NewText(opts)
	case FormatJSON:
		return NewJSON(opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
}

func (o Options) writer() io.Writer {
	if o.Writer == nil {
		return os.Stderr
	}
	return o.Writer
}

func (o Options) layer() string {
	if o.Layer == "" {
		return "infrastructure"
	}
	return o.Layer
}

func (o Options) baseFields() []interface{} {
	fields := mapToFields(o.Fields)
	if o.Component != "" {
		fields = append(fields, "component", o.Component)
	}
	return fields
}

func mapToFields(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]interface{}, 0, len(input)*2)
	for _, k := range keys {
		res = append(res, k, input[k])
	}
	return res
}

// mergeFields flattens key/value lists, later keys overriding earlier ones
// while keeping first-seen order. Non-string keys are dropped. Empty extras
// are skipped.
func mergeFields(base []interface{}, additions []interface{}, extras map[string]interface{}) []interface{} {
	store := make(map[string]interface{})
	order := make([]string, 0, (len(base)+len(additions))/2+len(extras))

	add := func(key string, value interface{}) {
		if key == "" {
			return
		}
		if _, exists := store[key]; !exists {
			order = append(order, key)
		}
		store[key] = value
	}
	process := func(values []interface{}) {
		for i := 0; i+1 < len(values); i += 2 {
			if key, ok := values[i].(string); ok {
				add(key, values[i+1])
			}
		}
	}

	process(base)
	process(additions)

	extraKeys := make([]string, 0, len(extras))
	for key, value := range extras {
		if s, ok := value.(string); value == nil || (ok && s == "") {
			continue
		}
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		add(key, extras[key])
	}

	result := make([]interface{}, 0, len(order)*2)
	for _, key := range order {
		result = append(result, key, store[key])
	}
	return result
}

func appendFields(base []interface{}, more []interface{}) []interface{} {
	next := make([]interface{}, 0, len(base)+len(more))
	next = append(next, base...)
	return append(next, more...)
}
