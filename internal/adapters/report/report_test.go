package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/report"
	"go.trai.ch/kiln/internal/core/domain"
)

func newReporter() (*report.Reporter, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return report.NewWithProfile(buf, termenv.Ascii), buf
}

func TestReporter_Batch(t *testing.T) {
	r, buf := newReporter()

	r.Batch(domain.BatchResult{
		Succeeded: []domain.ProfileOutcome{{
			ProfileID:   "p1",
			ProfileName: "Client",
			Artifact:    domain.Artifact{Path: "/proj/Build/Game.exe", Duration: 1500 * time.Millisecond},
		}},
		Failed: []domain.ProfileFailure{{
			ProfileID:   "p2",
			ProfileName: "Server",
			Kind:        domain.FailureBackend,
			Err:         errors.New("disk full"),
		}},
		Skipped: []domain.ProfileSkip{
			{Collection: "Nightly", Index: 2, ProfileID: "p3", ProfileName: "Off", Reason: domain.SkipInactive},
			{Collection: "Nightly", Index: 3, ProfileID: "gone", Reason: domain.SkipDangling},
		},
	}, nil)

	out := buf.String()
	assert.Contains(t, out, "1 succeeded, 1 failed, 2 skipped")
	assert.Contains(t, out, "/proj/Build/Game.exe (1.5s)")
	assert.Contains(t, out, "BackendBuildFailure: disk full")
	assert.Contains(t, out, "Inactive (Nightly #3)")
	assert.Contains(t, out, "<missing gone>")
	assert.NotContains(t, out, "NOT restored")
	assert.NotContains(t, out, "\x1b[", "ascii profile must not emit escape codes")
}

func TestReporter_BatchRestoreFailure(t *testing.T) {
	r, buf := newReporter()

	r.Batch(domain.BatchResult{
		Baseline: domain.GlobalBuildState{Symbols: "FOO;", Subtarget: domain.SubtargetPlayer},
		Aborted:  true,
	}, errors.New("read-only"))

	out := buf.String()
	assert.Contains(t, out, "0 succeeded, 0 failed, 0 skipped")
	assert.Contains(t, out, "batch cancelled")
	assert.Contains(t, out, "global build settings were NOT restored: read-only")
	assert.Contains(t, out, `expected symbols "FOO;", subtarget player`)
}

func TestReporter_Collection(t *testing.T) {
	r, buf := newReporter()

	on := false
	active := domain.NewProfile("p1", "Client")
	inactive := domain.NewProfile("p2", "Server")
	inactive.Active = false

	c := domain.NewCollection("c1", "Nightly")
	c.Add(active)
	c.Entries = append(c.Entries,
		domain.Entry{Ref: domain.Resolved{Profile: inactive}, Override: &on},
		domain.Entry{Ref: domain.Unresolved{ID: "gone"}},
	)
	c.AddPlaceholder()

	r.Collection(c, domain.ActivePolicyProfile)

	out := buf.String()
	assert.Contains(t, out, "Nightly (1 of 4 ready to build)")
	assert.Contains(t, out, "Client p1")
	assert.Contains(t, out, "<missing gone>")
	assert.Contains(t, out, "<empty slot>")
	assert.NotContains(t, out, "override=", "overrides are ignored under the profile policy")

	buf.Reset()
	r.Collection(c, domain.ActivePolicyEntry)
	assert.Contains(t, buf.String(), "override=false")
}

func TestReporter_CollectionWithNilProfile(t *testing.T) {
	r, buf := newReporter()

	c := domain.NewCollection("c1", "Nightly")
	c.Entries = append(c.Entries, domain.Entry{Ref: domain.Resolved{}})

	assert.NotPanics(t, func() { r.Collection(c, domain.ActivePolicyProfile) })
	assert.Contains(t, buf.String(), "Nightly (0 of 1 ready to build)")
	assert.Contains(t, buf.String(), "<empty slot>")
}

func TestReporter_Collections(t *testing.T) {
	r, buf := newReporter()
	r.Collections(nil, domain.ActivePolicyProfile)
	assert.Contains(t, buf.String(), "no collections")

	buf.Reset()
	c := domain.NewCollection("c1", "Nightly")
	c.Add(domain.NewProfile("p1", "Client"))
	c.AddPlaceholder()
	r.Collections([]*domain.Collection{c}, domain.ActivePolicyProfile)
	assert.Contains(t, buf.String(), "Nightly 2 entries, 1 ready c1")
}

func TestReporter_Profiles(t *testing.T) {
	r, buf := newReporter()

	p := domain.NewProfile("p1", "Server")
	p.ScriptingBackend = domain.BackendIL2CPP
	p.Modes.Headless = true
	p.Modes.Development = true
	p.Exposed = false

	r.Profiles([]*domain.Profile{p})
	assert.Contains(t, buf.String(), "Server IL2CPP,development,headless,hidden p1")

	buf.Reset()
	r.Profiles(nil)
	assert.Contains(t, buf.String(), "no profiles")
}

func TestReporter_History(t *testing.T) {
	r, buf := newReporter()

	r.History([]domain.BuildRecord{
		{ProfileName: "Client", Succeeded: true, OutputPath: "/out/Game.exe", Fingerprint: "00ff00ff00ff00ff"},
		{ProfileName: "Server", Error: "disk full"},
	})

	out := buf.String()
	assert.Contains(t, out, "/out/Game.exe 00ff00ff00ff00ff")
	assert.Contains(t, out, "disk full")

	buf.Reset()
	r.History(nil)
	assert.Contains(t, buf.String(), "no builds recorded")
}

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, report.ColorProfile())
}
