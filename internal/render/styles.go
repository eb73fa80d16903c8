package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for CLI output.
type Styles struct {
	Path     lipgloss.Style
	Folder   lipgloss.Style
	Bookmark lipgloss.Style
	URL      lipgloss.Style
	Tag      lipgloss.Style
	Empty    lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Grayscale base; folder entries take their color from the record.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}

	return Styles{
		Path: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Folder: lipgloss.NewStyle().
			Bold(true),

		Bookmark: lipgloss.NewStyle().
			Foreground(primary),

		URL: lipgloss.NewStyle().
			Foreground(subtle),

		Tag: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		Empty: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),
	}
}

// FolderColor translates a persisted color token ("0xAARRGGBB") into a
// lipgloss color. Unrecognized tokens fall back to grey.
func FolderColor(token string) lipgloss.Color {
	const fallback = lipgloss.Color("#9E9E9E")

	if !strings.HasPrefix(token, "0x") || len(token) != 10 {
		return fallback
	}
	for _, r := range token[2:] {
		if !isHexDigit(r) {
			return fallback
		}
	}
	// Strip the alpha byte.
	return lipgloss.Color("#" + token[4:])
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
