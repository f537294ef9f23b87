package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestNewProfile_Defaults(t *testing.T) {
	p := domain.NewProfile("p1", "Client")

	assert.True(t, p.Exposed)
	assert.True(t, p.Active)
	assert.Equal(t, domain.BackendMono, p.ScriptingBackend)
	assert.Equal(t, domain.APINetStandard21, p.APICompatibility)
	assert.Equal(t, domain.OptionNone, p.Options())
	assert.Equal(t, domain.SubtargetPlayer, p.Subtarget())
}

func TestProfile_ModesDriveOptionsAndSubtarget(t *testing.T) {
	p := domain.NewProfile("p1", "Server")
	p.Modes = domain.ModeFlags{Headless: true, Development: true, Client: true}

	opts := p.Options()
	assert.True(t, opts.Has(domain.OptionHeadless))
	assert.True(t, opts.Has(domain.OptionDevelopment))
	assert.Equal(t, "development,headless", opts.String())
	assert.Equal(t, domain.SubtargetServer, p.Subtarget())

	p.Modes = domain.ModeFlags{Server: true}
	assert.Equal(t, domain.SubtargetPlayer, p.Subtarget(), "only headless selects the server subtarget")
	assert.Equal(t, "none", p.Options().String())
}

func TestProfile_Clone(t *testing.T) {
	p := domain.NewProfile("p1", "Client")
	p.Scenes = []domain.SceneRef{"Assets/Main.unity"}
	p.DefineSymbols = []string{"FOO"}

	c := p.Clone()
	c.Scenes[0] = "Assets/Other.unity"
	c.DefineSymbols[0] = "BAR"

	assert.Equal(t, domain.SceneRef("Assets/Main.unity"), p.Scenes[0])
	assert.Equal(t, "FOO", p.DefineSymbols[0])
}

func TestParseScriptingBackend(t *testing.T) {
	b, ok := domain.ParseScriptingBackend("IL2CPP")
	assert.True(t, ok)
	assert.Equal(t, domain.BackendIL2CPP, b)
	assert.Equal(t, "IL2CPP", b.Label())

	b, ok = domain.ParseScriptingBackend("")
	assert.True(t, ok)
	assert.Equal(t, "MONO", b.Label())

	_, ok = domain.ParseScriptingBackend("dotnet")
	assert.False(t, ok)
}

func TestParseAPICompatibility(t *testing.T) {
	a, ok := domain.ParseAPICompatibility("NET_FRAMEWORK_4_8")
	assert.True(t, ok)
	assert.Equal(t, domain.APINetFramework48, a)

	_, ok = domain.ParseAPICompatibility("net_core")
	assert.False(t, ok)
}

func TestLookupPlatform(t *testing.T) {
	p, ok := domain.LookupPlatform("Windows64")
	assert.True(t, ok)
	assert.Equal(t, ".exe", p.Extension)

	_, ok = domain.LookupPlatform("ps5")
	assert.False(t, ok)
}

func TestParseSubtarget(t *testing.T) {
	assert.Equal(t, domain.SubtargetServer, domain.ParseSubtarget("Server"))
	assert.Equal(t, domain.SubtargetPlayer, domain.ParseSubtarget(""))
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "INFO", domain.LogLevelInfo.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "ERROR", domain.LogLevelError.String())
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
}
