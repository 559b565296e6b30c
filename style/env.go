package style

import (
	"os"
	"strings"
)

// AvailableColorCount guesses how many colors the attached terminal can
// display from TERM: 256 when the terminfo name advertises 256color,
// otherwise the conservative ANSI 8. TERM is the only environment
// variable this library consults.
func AvailableColorCount() int {
	if strings.Contains(os.Getenv("TERM"), "256color") {
		return 256
	}
	return 8
}
