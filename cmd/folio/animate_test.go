package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	recorder "github.com/alexisbeaulieu97/folio/internal/infrastructure/animation"
)

const animatePage = `<!DOCTYPE html><html><head></head><body>
<section id="grid"><div class="card">A</div><div class="card">B</div></section>
<p class="lead">Hi you</p>
<span id="stat">0</span>
<div id="bar"></div>
</body></html>`

type timeline struct {
	Tweens []*recorder.Tween `json:"tweens"`
}

func decodeTimeline(t *testing.T, stdout string) timeline {
	t.Helper()
	var tl timeline
	require.NoError(t, json.Unmarshal([]byte(stdout), &tl), stdout)
	return tl
}

func TestAnimateFadeIn(t *testing.T) {
	env := newCLIEnv(t)
	page := env.write(t, "page.html", animatePage)

	stdout, _, err := env.run(t, "animate", "fade-in", ".card", "--html", page, "--duration", "0.5")
	require.NoError(t, err)

	tl := decodeTimeline(t, stdout)
	require.Len(t, tl.Tweens, 1)
	tween := tl.Tweens[0]
	require.Equal(t, recorder.KindFrom, tween.Kind)
	require.Equal(t, []string{"div.card", "div.card"}, tween.Targets)
	require.Equal(t, 0.5, tween.Duration)
	require.NotNil(t, tween.ScrollTrigger)
	require.Equal(t, "top 80%", tween.ScrollTrigger.Start)
}

func TestAnimateStaggerWithTrigger(t *testing.T) {
	env := newCLIEnv(t)
	page := env.write(t, "page.html", animatePage)

	stdout, _, err := env.run(t, "animate", "stagger", ".card", "--html", page, "--trigger", "#grid", "--stagger", "0.2")
	require.NoError(t, err)

	tl := decodeTimeline(t, stdout)
	require.Len(t, tl.Tweens, 1)
	require.Equal(t, 0.2, tl.Tweens[0].Stagger)
	require.Equal(t, []string{"section#grid"}, tl.Tweens[0].ScrollTrigger.Trigger)
}

func TestAnimateCountUpWritesDocument(t *testing.T) {
	env := newCLIEnv(t)
	page := env.write(t, "page.html", animatePage)
	out := env.dir + "/animated.html"

	_, _, err := env.run(t, "animate", "count-up", "#stat", "--html", page,
		"--end", "150", "--prefix", "$", "--suffix", "+", "--progress", "1", "--out", out)
	require.NoError(t, err)
	require.Contains(t, readFile(t, out), `<span id="stat">$150+</span>`)
}

func TestAnimateRevealText(t *testing.T) {
	env := newCLIEnv(t)
	page := env.write(t, "page.html", animatePage)
	out := env.dir + "/animated.html"

	stdout, _, err := env.run(t, "animate", "reveal-text", ".lead", "--html", page, "--out", out)
	require.NoError(t, err)
	require.Len(t, decodeTimeline(t, stdout).Tweens, 1)
	require.Contains(t, readFile(t, out), `<span style="display:inline-block">H</span>`)
}

func TestAnimateScrollProgress(t *testing.T) {
	env := newCLIEnv(t)
	page := env.write(t, "page.html", animatePage)
	out := env.dir + "/animated.html"

	_, _, err := env.run(t, "animate", "scroll-progress", "#bar", "--html", page, "--progress", "0.25", "--out", out)
	require.NoError(t, err)
	require.Contains(t, readFile(t, out), `<div id="bar" data-progress="0.25">`)
}

func TestAnimateReducedMotion(t *testing.T) {
	env := newCLIEnv(t)
	page := env.write(t, "page.html", animatePage)
	out := env.dir + "/animated.html"

	stdout, _, err := env.run(t, "--reduced-motion", "animate", "fade-in", ".card", "--html", page)
	require.NoError(t, err)
	require.Empty(t, decodeTimeline(t, stdout).Tweens)

	_, _, err = env.run(t, "--reduced-motion", "animate", "count-up", "#stat", "--html", page, "--end", "12.5", "--out", out)
	require.NoError(t, err)
	require.Contains(t, readFile(t, out), `<span id="stat">12.5</span>`)
}

func TestAnimateErrors(t *testing.T) {
	env := newCLIEnv(t)
	page := env.write(t, "page.html", animatePage)

	_, _, err := env.run(t, "animate", "wobble", ".card", "--html", page)
	require.ErrorContains(t, err, "fade-in")

	_, _, err = env.run(t, "animate", "fade-in", ".card")
	require.ErrorContains(t, err, "html")
}
