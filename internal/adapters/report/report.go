// Package report renders batch results and asset listings for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// Reporter writes styled reports to a terminal output.
type Reporter struct {
	mu  sync.Mutex
	out *termenv.Output
	st  styles
}

var _ ports.Reporter = (*Reporter)(nil)

// New creates a Reporter writing to w with the detected color profile.
func New(w io.Writer) *Reporter {
	return NewWithProfile(w, ColorProfile())
}

// NewWithProfile creates a Reporter with a fixed color profile.
func NewWithProfile(w io.Writer, profile termenv.Profile) *Reporter {
	out := newOutput(w, profile)
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)
	return &Reporter{out: out, st: newStyles(r)}
}

func (r *Reporter) println(parts ...string) {
	_, _ = fmt.Fprintln(r.out, strings.Join(parts, " "))
}

// Batch prints the batch summary.
func (r *Reporter) Batch(result domain.BatchResult, restoreErr error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := result.Counts()
	r.println(r.st.title.Render("Batch finished:"),
		r.st.success.Render(fmt.Sprintf("%d succeeded,", c.Succeeded)),
		r.st.failure.Render(fmt.Sprintf("%d failed,", c.Failed)),
		r.st.skipped.Render(fmt.Sprintf("%d skipped", c.Skipped)),
	)

	for _, o := range result.Succeeded {
		r.println(" ", r.st.success.Render(Check), o.ProfileName,
			r.st.muted.Render(fmt.Sprintf("%s (%s)", o.Artifact.Path, o.Artifact.Duration.Round(time.Millisecond))))
	}
	for _, f := range result.Failed {
		r.println(" ", r.st.failure.Render(Cross), f.ProfileName,
			r.st.failure.Render(fmt.Sprintf("%s: %s", f.Kind, f.Message())))
	}
	for _, s := range result.Skipped {
		name := s.ProfileName
		if name == "" {
			name = missingLabel(s.ProfileID)
		}
		r.println(" ", r.st.skipped.Render(Circle), name,
			r.st.muted.Render(fmt.Sprintf("%s (%s #%d)", s.Reason, s.Collection, s.Index+1)))
	}

	if result.Aborted {
		r.println(r.st.skipped.Render(Warning), "batch cancelled before all profiles ran")
	}
	if restoreErr != nil {
		r.println(r.st.fatal.Render("global build settings were NOT restored: " + restoreErr.Error()))
		r.println(r.st.fatal.Render(fmt.Sprintf("expected symbols %q, subtarget %s",
			result.Baseline.Symbols, result.Baseline.Subtarget)))
	}
}

// Collection prints one collection in entry order.
func (r *Reporter) Collection(c *domain.Collection, policy domain.ActivePolicy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(r.st.title.Render(c.Name),
		r.st.muted.Render(fmt.Sprintf("(%d of %d ready to build)", c.ActiveCount(policy), len(c.Entries))))

	for i, e := range c.Entries {
		pos := fmt.Sprintf("%3d", i+1)
		res, ok := e.Ref.(domain.Resolved)
		if !ok || res.Profile == nil {
			r.println(pos, r.st.skipped.Render(Tilde), r.st.muted.Render(missingLabel(e.Ref.TargetID())))
			continue
		}
		mark := r.st.success.Render(Dot)
		if !e.EffectiveActive(policy) {
			mark = r.st.muted.Render(Circle)
		}
		line := []string{pos, mark, res.Profile.Name, r.st.muted.Render(res.Profile.ID.String())}
		if e.Override != nil && policy == domain.ActivePolicyEntry {
			line = append(line, r.st.muted.Render(fmt.Sprintf("override=%t", *e.Override)))
		}
		r.println(line...)
	}
}

// Collections prints a summary line per collection.
func (r *Reporter) Collections(cs []*domain.Collection, policy domain.ActivePolicy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(cs) == 0 {
		r.println(r.st.muted.Render("no collections"))
		return
	}
	for _, c := range cs {
		r.println(r.st.title.Render(c.Name),
			r.st.muted.Render(fmt.Sprintf("%d entries, %d ready", len(c.Entries), c.ActiveCount(policy))),
			r.st.muted.Render(c.ID.String()))
	}
}

// Profiles prints a profile listing.
func (r *Reporter) Profiles(profiles []*domain.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(profiles) == 0 {
		r.println(r.st.muted.Render("no profiles"))
		return
	}
	for _, p := range profiles {
		mark := r.st.success.Render(Dot)
		if !p.Active {
			mark = r.st.muted.Render(Circle)
		}
		r.println(mark, p.Name, r.st.muted.Render(describeModes(p)), r.st.muted.Render(p.ID.String()))
	}
}

// History prints build records.
func (r *Reporter) History(records []domain.BuildRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(records) == 0 {
		r.println(r.st.muted.Render("no builds recorded"))
		return
	}
	for _, rec := range records {
		when := rec.Timestamp.Local().Format(time.DateTime)
		if rec.Succeeded {
			r.println(r.st.success.Render(Check), rec.ProfileName,
				r.st.muted.Render(when), rec.OutputPath, r.st.muted.Render(rec.Fingerprint))
			continue
		}
		r.println(r.st.failure.Render(Cross), rec.ProfileName,
			r.st.muted.Render(when), r.st.failure.Render(rec.Error))
	}
}

func missingLabel(id domain.AssetID) string {
	if id == "" {
		return "<empty slot>"
	}
	return "<missing " + id.String() + ">"
}

func describeModes(p *domain.Profile) string {
	parts := []string{p.ScriptingBackend.Label()}
	if p.Modes.Development {
		parts = append(parts, "development")
	}
	if p.Modes.Headless {
		parts = append(parts, "headless")
	}
	if p.Modes.Client {
		parts = append(parts, "client")
	}
	if p.Modes.Server {
		parts = append(parts, "server")
	}
	if !p.Exposed {
		parts = append(parts, "hidden")
	}
	return strings.Join(parts, ",")
}
