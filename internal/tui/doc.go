// Package tui provides terminal user interface components for configuranator.
//
// # Viewer
//
// Viewer is a Bubble Tea model that shows a configuration document in a
// scrollable viewport:
//
//	err := tui.RunViewer("flight.toml", documentText)
//
// Keys: arrows, pgup/pgdown and j/k scroll; q, esc or ctrl+c quit.
//
// # Summary
//
// Summary renders the headline values of a configuration (model, camera,
// aircraft, area sizes, ports and addresses). The show command places it
// above the document in the viewer.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - viewport component
//   - github.com/charmbracelet/lipgloss - Styling
package tui
