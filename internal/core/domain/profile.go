// Package domain contains the core domain models for build profiles, collections and batches.
package domain

import "strings"

// AssetID is the stable identity of a persisted asset. Names are display-only;
// two profiles may share a name but never an AssetID.
type AssetID string

// String returns the identifier as a plain string.
func (id AssetID) String() string {
	return string(id)
}

// SceneRef references a scene by its project-relative asset path.
type SceneRef string

// ScriptingBackend selects how scripts are compiled for the player.
type ScriptingBackend string

const (
	// BackendMono runs scripts on the interpreted/JIT virtual machine.
	BackendMono ScriptingBackend = "mono"
	// BackendIL2CPP compiles scripts ahead of time to native code.
	BackendIL2CPP ScriptingBackend = "il2cpp"
)

// Label returns the upper-case tag used in default output paths.
func (b ScriptingBackend) Label() string {
	if b == BackendIL2CPP {
		return "IL2CPP"
	}
	return "MONO"
}

// APICompatibility is the scripting API profile exposed to player code.
type APICompatibility string

const (
	// APINetStandard20 targets .NET Standard 2.0.
	APINetStandard20 APICompatibility = "net_standard_2_0"
	// APINetStandard21 targets .NET Standard 2.1.
	APINetStandard21 APICompatibility = "net_standard_2_1"
	// APINetFramework48 targets the full .NET Framework 4.8 surface.
	APINetFramework48 APICompatibility = "net_framework_4_8"
)

// ParseScriptingBackend converts a string to a ScriptingBackend.
// Empty input yields the default backend.
func ParseScriptingBackend(s string) (ScriptingBackend, bool) {
	switch strings.ToLower(s) {
	case "", string(BackendMono):
		return BackendMono, true
	case string(BackendIL2CPP):
		return BackendIL2CPP, true
	default:
		return "", false
	}
}

// ParseAPICompatibility converts a string to an APICompatibility level.
// Empty input yields the default level.
func ParseAPICompatibility(s string) (APICompatibility, bool) {
	switch strings.ToLower(s) {
	case "", string(APINetStandard21):
		return APINetStandard21, true
	case string(APINetStandard20):
		return APINetStandard20, true
	case string(APINetFramework48):
		return APINetFramework48, true
	default:
		return "", false
	}
}

// ModeFlags are independent switches; more than one may be set.
type ModeFlags struct {
	Server      bool
	Client      bool
	Headless    bool
	Development bool
}

// Profile is a named, reusable build configuration.
type Profile struct {
	ID               AssetID
	Name             string
	Exposed          bool
	Active           bool
	Scenes           []SceneRef
	Modes            ModeFlags
	ScriptingBackend ScriptingBackend
	APICompatibility APICompatibility
	DefineSymbols    []string
	OutputTemplate   string
}

// NewProfile returns a profile with the defaults an operator gets on creation.
func NewProfile(id AssetID, name string) *Profile {
	return &Profile{
		ID:               id,
		Name:             name,
		Exposed:          true,
		Active:           true,
		ScriptingBackend: BackendMono,
		APICompatibility: APINetStandard21,
	}
}

// Options derives the backend option set from the mode flags.
func (p *Profile) Options() BuildOptions {
	var opts BuildOptions
	if p.Modes.Development {
		opts |= OptionDevelopment
	}
	if p.Modes.Headless {
		opts |= OptionHeadless
	}
	return opts
}

// Subtarget returns the build subtarget this profile needs.
func (p *Profile) Subtarget() Subtarget {
	if p.Modes.Headless {
		return SubtargetServer
	}
	return SubtargetPlayer
}

// Clone returns a deep copy so callers can edit without aliasing slices.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Scenes = append([]SceneRef(nil), p.Scenes...)
	c.DefineSymbols = append([]string(nil), p.DefineSymbols...)
	return &c
}
