package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for graft.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Teal-to-blue gradient, one color per line
	s1 := termenv.String("   ____ ____      _    _____ _____ ").Foreground(p.Color("#34d399"))
	s2 := termenv.String("  / ___|  _ \\    / \\  |  ___|_   _|").Foreground(p.Color("#2dd4bf"))
	s3 := termenv.String(" | |  _| |_) |  / _ \\ | |_    | |  ").Foreground(p.Color("#22d3ee"))
	s4 := termenv.String(" | |_| |  _ <  / ___ \\|  _|   | |  ").Foreground(p.Color("#38bdf8"))
	s5 := termenv.String("  \\____|_| \\_\\/_/   \\_\\_|     |_|  ").Foreground(p.Color("#60a5fa"))
	v := termenv.String(fmt.Sprintf("  node graphs for generated editors  v%s", version)).Faint()

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(v)
	fmt.Println()
}
