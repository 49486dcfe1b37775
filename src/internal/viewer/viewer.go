// Package viewer prepares everything the embedded 3Dmol.js widget needs:
// the style tables, the per-style scene specs, and the page template. The
// widget itself does all rendering; nothing here touches pixels.
package viewer

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
)

//go:embed templates/index.html
var templates embed.FS

// Style selects how 3Dmol.js draws the molecule.
type Style string

const (
	Stick        Style = "stick"
	Sphere       Style = "sphere"
	BallAndStick Style = "ball_and_stick"
	Line         Style = "line"
)

// StyleOption pairs a style with its display name.
type StyleOption struct {
	ID   Style
	Name string
}

// Styles lists the selectable styles in menu order.
var Styles = []StyleOption{
	{Stick, "Stick"},
	{Sphere, "Sphere"},
	{BallAndStick, "Ball & stick"},
	{Line, "Line"},
}

// Backgrounds lists the selectable viewer background colors.
var Backgrounds = []string{"white", "black", "gray", "lightblue"}

// sceneSpecs are the 3Dmol.js setStyle arguments per style. Radii follow
// the original viewer settings.
var sceneSpecs = map[Style]map[string]any{
	Stick:        {"stick": map[string]any{"radius": 0.15}},
	Sphere:       {"sphere": map[string]any{"radius": 0.5}},
	BallAndStick: {"stick": map[string]any{"radius": 0.1}, "sphere": map[string]any{"radius": 0.3}},
	Line:         {"line": map[string]any{"linewidth": 3}},
}

// Normalize maps user input onto a known style, defaulting to stick.
func Normalize(s string) Style {
	st := Style(s)
	if _, ok := sceneSpecs[st]; ok {
		return st
	}
	return Stick
}

// ValidBackground reports whether b is a selectable background color.
func ValidBackground(b string) bool {
	for _, c := range Backgrounds {
		if c == b {
			return true
		}
	}
	return false
}

// SceneSpec returns the setStyle argument for the style as JSON, ready to
// inline into the page script.
func SceneSpec(s Style) (template.JS, error) {
	spec, ok := sceneSpecs[s]
	if !ok {
		return "", fmt.Errorf("viewer: unknown style %q", s)
	}
	out, err := json.Marshal(spec)
	if err != nil {
		return "", err
	}
	return template.JS(out), nil
}

// Template parses the embedded page template.
func Template() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/index.html"))
}
