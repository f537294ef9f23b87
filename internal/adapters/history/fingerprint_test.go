package history_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/history"
	"go.trai.ch/kiln/internal/core/domain"
)

func request() domain.BuildRequest {
	platform, _ := domain.LookupPlatform("windows64")
	return domain.BuildRequest{
		Scenes:           []string{"Assets/Main.unity", "Assets/Level1.unity"},
		OutputPath:       "/proj/Build/Windows64/MONO_RELEASE_CLIENT/Game.exe",
		Platform:         platform,
		Options:          domain.OptionNone,
		ScriptingBackend: domain.BackendMono,
		APICompatibility: domain.APINetStandard21,
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := history.Fingerprint("FOO;GAME_CLIENT;", request())
	b := history.Fingerprint("FOO;GAME_CLIENT;", request())

	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
}

func TestFingerprint_Sensitivity(t *testing.T) {
	base := history.Fingerprint("FOO;", request())

	tests := []struct {
		name    string
		symbols string
		mutate  func(*domain.BuildRequest)
	}{
		{name: "symbols", symbols: "FOO;BAR;", mutate: func(*domain.BuildRequest) {}},
		{name: "scene order", symbols: "FOO;", mutate: func(r *domain.BuildRequest) {
			r.Scenes = []string{"Assets/Level1.unity", "Assets/Main.unity"}
		}},
		{name: "options", symbols: "FOO;", mutate: func(r *domain.BuildRequest) { r.Options = domain.OptionDevelopment }},
		{name: "backend", symbols: "FOO;", mutate: func(r *domain.BuildRequest) { r.ScriptingBackend = domain.BackendIL2CPP }},
		{name: "output", symbols: "FOO;", mutate: func(r *domain.BuildRequest) { r.OutputPath = "/elsewhere/Game.exe" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request()
			tt.mutate(&req)
			assert.NotEqual(t, base, history.Fingerprint(tt.symbols, req))
		})
	}
}

func TestRecords(t *testing.T) {
	outcome := domain.ProfileOutcome{
		ProfileID:   "p1",
		ProfileName: "Client",
		Symbols:     "GAME_CLIENT;",
		Request:     request(),
		Artifact:    domain.Artifact{Path: "/out/Game.exe"},
	}
	rec := history.RecordFor(outcome)
	assert.True(t, rec.Succeeded)
	assert.Equal(t, "p1", rec.ProfileID)
	assert.Equal(t, "/out/Game.exe", rec.OutputPath)
	assert.Equal(t, history.Fingerprint("GAME_CLIENT;", request()), rec.Fingerprint)

	failed := history.FailureRecord(domain.ProfileFailure{
		ProfileID:   "p2",
		ProfileName: "Server",
		Kind:        domain.FailureBackend,
		Err:         errors.New("linker exploded"),
	})
	assert.False(t, failed.Succeeded)
	assert.Equal(t, "linker exploded", failed.Error)
}
