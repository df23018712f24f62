// Package ui provides terminal styling for tsp CLI output.
// Uses the Ayu color theme with adaptive light/dark mode support.
package ui

import "github.com/charmbracelet/lipgloss"

// Ayu theme color palette
// Dark: https://terminalcolors.com/themes/ayu/dark/
// Light: https://terminalcolors.com/themes/ayu/light/
var (
	ColorPass = lipgloss.AdaptiveColor{
		Light: "#86b300", // ayu light bright green
		Dark:  "#c2d94c", // ayu dark bright green
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171", // ayu light bright red
		Dark:  "#f07178", // ayu dark bright red
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99", // ayu light muted
		Dark:  "#6c7680", // ayu dark muted
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6", // ayu light bright blue
		Dark:  "#59c2ff", // ayu dark bright blue
	}
)

var (
	PassStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// Status icons
const (
	IconPass = "✓"
	IconFail = "✗"
)

// RenderPass renders text with pass (green) styling
func RenderPass(s string) string { return PassStyle.Render(s) }

// RenderFail renders text with failure (red) styling
func RenderFail(s string) string { return FailStyle.Render(s) }

// RenderMuted renders text with muted (gray) styling
func RenderMuted(s string) string { return MutedStyle.Render(s) }

// RenderAccent renders text with bold accent (blue) styling
func RenderAccent(s string) string { return AccentStyle.Render(s) }
