package report

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for the report output.
// NO_COLOR forces plain text.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

func newOutput(w io.Writer, profile termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stdout
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile))
}
