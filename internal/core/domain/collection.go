package domain

// ProfileRef is a collection's link to a profile. It is either Resolved or
// Unresolved; consumers switch on the concrete type.
type ProfileRef interface {
	// TargetID returns the identifier the reference was stored with.
	TargetID() AssetID
	isProfileRef()
}

// Resolved is a reference whose target profile was found.
type Resolved struct {
	Profile *Profile
}

// TargetID returns the resolved profile's identifier.
func (r Resolved) TargetID() AssetID {
	if r.Profile == nil {
		return ""
	}
	return r.Profile.ID
}

func (Resolved) isProfileRef() {}

// Unresolved is a dangling reference: the stored identifier no longer maps to
// a profile. An empty ID represents a placeholder slot the operator added but
// never filled.
type Unresolved struct {
	ID AssetID
}

// TargetID returns the stored identifier.
func (u Unresolved) TargetID() AssetID { return u.ID }

func (Unresolved) isProfileRef() {}

// ActivePolicy decides which flag gates batch participation.
type ActivePolicy string

const (
	// ActivePolicyProfile uses the profile's own Active flag and ignores entry overrides.
	ActivePolicyProfile ActivePolicy = "profile"
	// ActivePolicyEntry lets a per-entry override win over the profile flag when present.
	ActivePolicyEntry ActivePolicy = "entry"
)

// ParseActivePolicy converts a string to an ActivePolicy.
func ParseActivePolicy(s string) (ActivePolicy, bool) {
	switch s {
	case "", string(ActivePolicyProfile):
		return ActivePolicyProfile, true
	case string(ActivePolicyEntry):
		return ActivePolicyEntry, true
	default:
		return "", false
	}
}

// Entry is one slot in a collection.
type Entry struct {
	Ref      ProfileRef
	Override *bool
}

// EffectiveActive reports whether the entry participates in a batch.
// Unresolved entries are never active.
func (e Entry) EffectiveActive(policy ActivePolicy) bool {
	r, ok := e.Ref.(Resolved)
	if !ok || r.Profile == nil {
		return false
	}
	if policy == ActivePolicyEntry && e.Override != nil {
		return *e.Override
	}
	return r.Profile.Active
}

// Collection is an ordered, named group of profile references. Entry order is
// execution order.
type Collection struct {
	ID      AssetID
	Name    string
	Entries []Entry
}

// NewCollection returns an empty collection.
func NewCollection(id AssetID, name string) *Collection {
	return &Collection{ID: id, Name: name}
}

// Add appends a reference to the profile.
func (c *Collection) Add(p *Profile) {
	c.Entries = append(c.Entries, Entry{Ref: Resolved{Profile: p}})
}

// AddPlaceholder appends an empty slot to be filled later.
func (c *Collection) AddPlaceholder() {
	c.Entries = append(c.Entries, Entry{Ref: Unresolved{}})
}

// Remove deletes the entry at index i.
func (c *Collection) Remove(i int) error {
	if i < 0 || i >= len(c.Entries) {
		return ErrEntryIndexOutOfRange
	}
	c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
	return nil
}

// Prune removes dangling entries and repeated references to the same profile,
// keeping the first occurrence. It returns the number of removed entries.
func (c *Collection) Prune() int {
	seen := make(map[AssetID]bool, len(c.Entries))
	kept := c.Entries[:0]
	for _, e := range c.Entries {
		r, ok := e.Ref.(Resolved)
		if !ok || r.Profile == nil {
			continue
		}
		if seen[r.Profile.ID] {
			continue
		}
		seen[r.Profile.ID] = true
		kept = append(kept, e)
	}
	removed := len(c.Entries) - len(kept)
	clear(c.Entries[len(kept):])
	c.Entries = kept
	return removed
}

// ActiveCount returns how many entries would build under the policy.
func (c *Collection) ActiveCount(policy ActivePolicy) int {
	n := 0
	for _, e := range c.Entries {
		if e.EffectiveActive(policy) {
			n++
		}
	}
	return n
}
