package assets

// File suffixes that identify asset kinds under the assets directory.
const (
	ProfileSuffix    = ".profile.yaml"
	CollectionSuffix = ".collection.yaml"
)

// ProfileFile is the on-disk form of a profile.
type ProfileFile struct {
	ID               string    `yaml:"id" validate:"required,uuid"`
	Name             string    `yaml:"name" validate:"required"`
	Exposed          *bool     `yaml:"exposed,omitempty"`
	Active           *bool     `yaml:"active,omitempty"`
	Scenes           []string  `yaml:"scenes,omitempty" validate:"dive,required"`
	Modes            ModesFile `yaml:"modes,omitempty"`
	ScriptingBackend string    `yaml:"scripting_backend,omitempty"`
	APICompatibility string    `yaml:"api_compatibility,omitempty"`
	DefineSymbols    []string  `yaml:"define_symbols,omitempty"`
	OutputTemplate   string    `yaml:"output_template,omitempty"`
}

// ModesFile holds the independent mode switches of a profile.
type ModesFile struct {
	Server      bool `yaml:"server,omitempty"`
	Client      bool `yaml:"client,omitempty"`
	Headless    bool `yaml:"headless,omitempty"`
	Development bool `yaml:"development,omitempty"`
}

// CollectionFile is the on-disk form of a collection.
type CollectionFile struct {
	ID      string      `yaml:"id" validate:"required,uuid"`
	Name    string      `yaml:"name" validate:"required"`
	Entries []EntryFile `yaml:"entries"`
}

// EntryFile is one collection slot. An empty Profile is a placeholder.
type EntryFile struct {
	Profile string `yaml:"profile"`
	Active  *bool  `yaml:"active,omitempty"`
}
