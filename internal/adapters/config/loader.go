// Package config provides the configuration loader for kiln.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix is prepended to every environment override, e.g. KILN_PLATFORM.
const EnvPrefix = "KILN"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using viper.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Loader{Logger: logger, validate: v}
}

// Load finds kiln.yaml from cwd upwards, applies KILN_* overrides and
// returns the resolved workspace. $KILN_CONFIG names the file explicitly.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	settings, err := l.read(configPath)
	if err != nil {
		return nil, err
	}

	if err := l.validateSettings(settings); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return l.toWorkspace(configPath, settings)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	if explicit := os.Getenv(domain.ConfigEnvVar); explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(cwd, explicit)
		}
		if _, err := os.Stat(explicit); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", explicit)
		}
		return filepath.Clean(explicit), nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) read(configPath string) (*Settings, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode config"), "path", configPath)
	}
	settings.Platform = strings.ToLower(strings.TrimSpace(settings.Platform))
	settings.ActivePolicy = strings.ToLower(strings.TrimSpace(settings.ActivePolicy))

	return &settings, nil
}

func (l *Loader) validateSettings(settings *Settings) error {
	err := l.validate.Struct(settings)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return zerr.Wrap(err, domain.ErrInvalidConfig.Error())
	}

	// Report the first offending key; the rest usually follow from it.
	first := verrs[0]
	key := strings.TrimPrefix(first.Namespace(), "Settings.")
	return zerr.With(
		zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "invalid value for "+key), "key", key),
		"rule", first.Tag(),
	)
}

func (l *Loader) toWorkspace(configPath string, settings *Settings) (*domain.Workspace, error) {
	platform, ok := domain.LookupPlatform(settings.Platform)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownPlatform, "platform", settings.Platform)
	}
	policy, ok := domain.ParseActivePolicy(settings.ActivePolicy)
	if !ok {
		return nil, zerr.With(domain.ErrInvalidConfig, "active_policy", settings.ActivePolicy)
	}

	root := resolvePath(filepath.Dir(configPath), settings.ProjectRoot)

	ws := &domain.Workspace{
		ProductName:  settings.ProductName,
		ProjectRoot:  root,
		Platform:     platform,
		AssetsDir:    resolvePath(root, settings.AssetsDir),
		StateDir:     resolvePath(root, settings.StateDir),
		ActivePolicy: policy,
		Backend: domain.BackendCommand{
			Command: settings.Backend.Command,
		},
	}
	if settings.Backend.WorkingDir != "" {
		ws.Backend.WorkingDir = resolvePath(root, settings.Backend.WorkingDir)
	}

	if len(ws.Backend.Command) == 0 && l.Logger != nil {
		l.Logger.Warn("no backend command configured, builds will fail", "path", configPath)
	}

	return ws, nil
}

// resolvePath makes p absolute relative to base. An empty p resolves to base.
func resolvePath(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, filepath.FromSlash(p)))
}
