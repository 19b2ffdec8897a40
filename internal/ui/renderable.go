// Package ui defines the contract shared by everything that renders to a terminal string.
package ui

// Renderable is anything that can produce its terminal representation.
type Renderable interface {
	View() string
}
