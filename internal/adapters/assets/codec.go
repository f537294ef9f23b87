package assets

import (
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func profileFromFile(f *ProfileFile) (*domain.Profile, error) {
	backend, ok := domain.ParseScriptingBackend(f.ScriptingBackend)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidAsset, "unknown scripting backend"),
			"scripting_backend", f.ScriptingBackend)
	}
	api, ok := domain.ParseAPICompatibility(f.APICompatibility)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidAsset, "unknown api compatibility"),
			"api_compatibility", f.APICompatibility)
	}

	p := domain.NewProfile(domain.AssetID(f.ID), f.Name)
	if f.Exposed != nil {
		p.Exposed = *f.Exposed
	}
	if f.Active != nil {
		p.Active = *f.Active
	}
	for _, s := range f.Scenes {
		p.Scenes = append(p.Scenes, domain.SceneRef(s))
	}
	p.Modes = domain.ModeFlags{
		Server:      f.Modes.Server,
		Client:      f.Modes.Client,
		Headless:    f.Modes.Headless,
		Development: f.Modes.Development,
	}
	p.ScriptingBackend = backend
	p.APICompatibility = api
	p.DefineSymbols = append([]string(nil), f.DefineSymbols...)
	p.OutputTemplate = f.OutputTemplate
	return p, nil
}

func profileToFile(p *domain.Profile) *ProfileFile {
	f := &ProfileFile{
		ID:               p.ID.String(),
		Name:             p.Name,
		Exposed:          &p.Exposed,
		Active:           &p.Active,
		ScriptingBackend: string(p.ScriptingBackend),
		APICompatibility: string(p.APICompatibility),
		DefineSymbols:    append([]string(nil), p.DefineSymbols...),
		OutputTemplate:   p.OutputTemplate,
		Modes: ModesFile{
			Server:      p.Modes.Server,
			Client:      p.Modes.Client,
			Headless:    p.Modes.Headless,
			Development: p.Modes.Development,
		},
	}
	for _, s := range p.Scenes {
		f.Scenes = append(f.Scenes, string(s))
	}
	return f
}

// collectionFromFile resolves entries against profiles. Entries whose target
// is missing stay in the collection as domain.Unresolved.
func collectionFromFile(f *CollectionFile, profiles map[domain.AssetID]*domain.Profile) *domain.Collection {
	c := domain.NewCollection(domain.AssetID(f.ID), f.Name)
	c.Entries = make([]domain.Entry, 0, len(f.Entries))
	for _, e := range f.Entries {
		entry := domain.Entry{Override: e.Active}
		id := domain.AssetID(e.Profile)
		if p, ok := profiles[id]; ok && id != "" {
			entry.Ref = domain.Resolved{Profile: p}
		} else {
			entry.Ref = domain.Unresolved{ID: id}
		}
		c.Entries = append(c.Entries, entry)
	}
	return c
}

func collectionToFile(c *domain.Collection) *CollectionFile {
	f := &CollectionFile{
		ID:      c.ID.String(),
		Name:    c.Name,
		Entries: make([]EntryFile, 0, len(c.Entries)),
	}
	for _, e := range c.Entries {
		var target string
		if e.Ref != nil {
			switch ref := e.Ref.(type) {
			case domain.Resolved:
				if ref.Profile != nil {
					target = ref.Profile.ID.String()
				}
			case domain.Unresolved:
				target = ref.ID.String()
			}
		}
		f.Entries = append(f.Entries, EntryFile{Profile: target, Active: e.Override})
	}
	return f
}
