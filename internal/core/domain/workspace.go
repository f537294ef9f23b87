package domain

// ConfigFileName is the workspace configuration file searched for from the
// working directory upwards.
const ConfigFileName = "kiln.yaml"

// ConfigEnvVar names an explicit config file, bypassing the search.
const ConfigEnvVar = "KILN_CONFIG"

// StateDirName is the default state directory, relative to the project root.
const StateDirName = ".kiln"

// Workspace holds the resolved project-level settings a batch runs against.
type Workspace struct {
	ProductName  string
	ProjectRoot  string
	Platform     Platform
	AssetsDir    string
	StateDir     string
	ActivePolicy ActivePolicy
	Backend      BackendCommand
}

// BackendCommand describes the external build command run for each profile.
type BackendCommand struct {
	Command    []string
	WorkingDir string
}

const (
	// DirPerm is the permission used for directories kiln creates.
	DirPerm = 0o750
	// FilePerm is the permission used for state files kiln writes.
	FilePerm = 0o644
)
