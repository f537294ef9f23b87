package domain

import "strings"

// BuildOptions is the fixed set of switches passed through to the backend.
type BuildOptions uint8

// OptionNone builds a release player.
const OptionNone BuildOptions = 0

const (
	// OptionDevelopment enables debug symbols and assertions.
	OptionDevelopment BuildOptions = 1 << iota
	// OptionHeadless excludes the windowing subsystem.
	OptionHeadless
)

// Has reports whether all bits of o are set.
func (b BuildOptions) Has(o BuildOptions) bool {
	return b&o == o
}

// String renders the set as a comma-separated list, "none" when empty.
func (b BuildOptions) String() string {
	var parts []string
	if b.Has(OptionDevelopment) {
		parts = append(parts, "development")
	}
	if b.Has(OptionHeadless) {
		parts = append(parts, "headless")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// Platform identifies a build target.
type Platform struct {
	ID        string
	Label     string
	Extension string
}

var platforms = map[string]Platform{
	"windows64": {ID: "windows64", Label: "Windows64", Extension: ".exe"},
	"linux64":   {ID: "linux64", Label: "Linux64", Extension: ".x86_64"},
	"macos":     {ID: "macos", Label: "MacOS", Extension: ".app"},
}

// LookupPlatform returns the registered platform with the given id.
func LookupPlatform(id string) (Platform, bool) {
	p, ok := platforms[strings.ToLower(id)]
	return p, ok
}
