package domain

import "strings"

// Subtarget is the environment-wide standalone build subtarget.
type Subtarget string

const (
	// SubtargetPlayer builds a windowed player.
	SubtargetPlayer Subtarget = "player"
	// SubtargetServer builds a dedicated server player.
	SubtargetServer Subtarget = "server"
)

// ParseSubtarget converts a string to a Subtarget, defaulting to player.
func ParseSubtarget(s string) Subtarget {
	if strings.EqualFold(s, string(SubtargetServer)) {
		return SubtargetServer
	}
	return SubtargetPlayer
}

// GlobalBuildState is a snapshot of the ambient build settings a batch must
// leave untouched.
type GlobalBuildState struct {
	Symbols   string
	Subtarget Subtarget
}
