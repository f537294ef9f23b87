// Package shell provides the build backend adapter that runs an external
// build command once per profile.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Placeholders expanded in every argument of the configured command.
const (
	PlaceholderOutput   = "{output}"
	PlaceholderPlatform = "{platform}"
	PlaceholderProject  = "{project}"
)

// SceneSeparator joins scene paths in KILN_SCENES.
const SceneSeparator = ";"

var _ ports.Backend = (*Backend)(nil)

// Backend implements ports.Backend using os/exec.
//
// The command reads the symbols and subtarget the orchestrator applied from
// the build settings surface, the same way an editor build would.
type Backend struct {
	settings ports.BuildSettings
	logger   ports.Logger
}

// NewBackend creates a new shell Backend.
func NewBackend(settings ports.BuildSettings, logger ports.Logger) *Backend {
	return &Backend{
		settings: settings,
		logger:   logger,
	}
}

// Build runs the workspace's backend command for req. Output goes to the
// vertex in ctx when there is one, otherwise to the logger.
func (b *Backend) Build(ctx context.Context, req domain.BuildRequest) (domain.Artifact, error) {
	ws := req.Workspace
	if ws == nil || len(ws.Backend.Command) == 0 {
		return domain.Artifact{}, domain.ErrBackendNotConfigured
	}

	state, err := b.settings.Capture(ws.StateDir)
	if err != nil {
		return domain.Artifact{}, zerr.Wrap(err, "read applied build settings")
	}

	expand := strings.NewReplacer(
		PlaceholderOutput, req.OutputPath,
		PlaceholderPlatform, req.Platform.Label,
		PlaceholderProject, ws.ProjectRoot,
	)
	argv := make([]string, len(ws.Backend.Command))
	for i, arg := range ws.Backend.Command {
		argv[i] = expand.Replace(arg)
	}

	cmdEnv := resolveEnvironment(os.Environ(), buildEnvironment(ws, req, state))

	name := argv[0]
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // user provided command
	// Keep the name as configured in Args[0].
	cmd.Args[0] = name
	cmd.Dir = ws.ProjectRoot
	if ws.Backend.WorkingDir != "" {
		cmd.Dir = ws.Backend.WorkingDir
	}
	cmd.Env = cmdEnv

	if vertex, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = vertex.Stdout()
		cmd.Stderr = vertex.Stderr()
	} else {
		stdout := &logWriter{logger: b.logger}
		stderr := &logWriter{logger: b.logger, isErr: true}
		defer stdout.Flush()
		defer stderr.Flush()
		cmd.Stdout = stdout
		cmd.Stderr = stderr
	}

	start := time.Now()
	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return domain.Artifact{}, zerr.With(zerr.Wrap(err, "backend command failed"), "exit_code", exitCode)
	}
	elapsed := time.Since(start)

	if _, err := os.Stat(req.OutputPath); err != nil {
		return domain.Artifact{}, zerr.With(
			zerr.Wrap(domain.ErrBackendBuildFailed, "backend produced no player"), "path", req.OutputPath)
	}

	return domain.Artifact{Path: req.OutputPath, Duration: elapsed}, nil
}

// buildEnvironment describes the build to the backend command.
func buildEnvironment(ws *domain.Workspace, req domain.BuildRequest, state domain.GlobalBuildState) map[string]string {
	return map[string]string{
		"KILN_PRODUCT":           ws.ProductName,
		"KILN_PROJECT_ROOT":      ws.ProjectRoot,
		"KILN_STATE_DIR":         ws.StateDir,
		"KILN_OUTPUT":            req.OutputPath,
		"KILN_PLATFORM":          req.Platform.Label,
		"KILN_SCENES":            strings.Join(req.Scenes, SceneSeparator),
		"KILN_OPTIONS":           req.Options.String(),
		"KILN_SCRIPTING_BACKEND": string(req.ScriptingBackend),
		"KILN_API_LEVEL":         string(req.APICompatibility),
		"KILN_DEFINE_SYMBOLS":    state.Symbols,
		"KILN_SUBTARGET":         string(state.Subtarget),
	}
}

// logWriter forwards complete lines to the logger, buffering partial writes.
type logWriter struct {
	logger ports.Logger
	isErr  bool
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := strings.IndexByte(string(w.buf), '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *logWriter) Flush() {
	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimSuffix(line, "\r")
	if w.isErr {
		w.logger.Warn(line, "stream", "stderr")
		return
	}
	w.logger.Info(line)
}

// resolveEnvironment overlays the build variables on the system environment.
func resolveEnvironment(sysEnv []string, buildEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(buildEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range buildEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
