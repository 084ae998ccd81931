package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner shown before interactive
// playback.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient, indigo to rose.
	s1 := termenv.String(`  _                `).Foreground(p.Color("#818cf8"))
	s2 := termenv.String(` | |    _____  __  `).Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(` | |   / _ \ \/ /  `).Foreground(p.Color("#c084fc"))
	s4 := termenv.String(` | |__|  __/>  <   `).Foreground(p.Color("#e879f9"))
	s5 := termenv.String(` |_____\___/_/\_\  `).Foreground(p.Color("#f472b6"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(termenv.String("  dialogue syntax player "+strings.TrimSpace(version)).Foreground(p.Color("#fb7185")).Faint())
	fmt.Println()
}
