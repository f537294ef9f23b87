package config

// Settings represents the structure of the kiln.yaml configuration file.
type Settings struct {
	ProductName  string          `mapstructure:"product_name" yaml:"product_name" validate:"required"`
	ProjectRoot  string          `mapstructure:"project_root" yaml:"project_root"`
	Platform     string          `mapstructure:"platform" yaml:"platform" validate:"required,oneof=windows64 linux64 macos"`
	AssetsDir    string          `mapstructure:"assets_dir" yaml:"assets_dir" validate:"required"`
	StateDir     string          `mapstructure:"state_dir" yaml:"state_dir" validate:"required"`
	ActivePolicy string          `mapstructure:"active_policy" yaml:"active_policy" validate:"required,oneof=profile entry"`
	Backend      BackendSettings `mapstructure:"backend" yaml:"backend"`
}

// BackendSettings describes the external build command.
type BackendSettings struct {
	Command    []string `mapstructure:"command" yaml:"command" validate:"omitempty,dive,required"`
	WorkingDir string   `mapstructure:"working_dir" yaml:"working_dir"`
}

// Defaults applied before the config file and environment are read.
var defaults = map[string]any{
	"project_root":        "",
	"platform":            "windows64",
	"assets_dir":          "Assets/Kiln",
	"state_dir":           ".kiln",
	"active_policy":       "profile",
	"backend.command":     []string{},
	"backend.working_dir": "",
}
