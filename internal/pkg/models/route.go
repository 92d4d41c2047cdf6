package models

import (
	"fmt"
	"strings"
)

// RouteStep is a single maneuver of a route leg as returned by the routing provider
type RouteStep struct {
	Type     string  `json:"type"`
	Modifier *string `json:"modifier,omitempty"`
	Name     string  `json:"name"`
}

// Direction returns the modifier when present, otherwise the maneuver type
func (s RouteStep) Direction() string {
	if s.Modifier != nil {
		return *s.Modifier
	}
	return s.Type
}

// Instruction renders the step as a human-readable sentence
func (s RouteStep) Instruction() string {
	return fmt.Sprintf("Go %s onto %s", s.Direction(), s.Name)
}

// Directions is the outcome of one directions lookup
type Directions struct {
	From      string      `json:"from"`
	To        string      `json:"to"`
	FromCoord Coordinate  `json:"from_coord"`
	ToCoord   Coordinate  `json:"to_coord"`
	Steps     []RouteStep `json:"steps"`
}

// Render produces the plain-text body served by /directions
func (d *Directions) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Directions from %s to %s:\n\n", d.From, d.To)
	for _, step := range d.Steps {
		b.WriteString("- ")
		b.WriteString(step.Instruction())
		b.WriteString("\n")
	}
	return b.String()
}
