package ports

import "go.trai.ch/kiln/internal/core/domain"

// Reporter renders results for the operator.
type Reporter interface {
	// Batch prints the summary of a finished batch. restoreErr is reported
	// separately from per-profile failures.
	Batch(result domain.BatchResult, restoreErr error)

	// Collection prints one collection's entries and how many are ready to build.
	Collection(c *domain.Collection, policy domain.ActivePolicy)

	// Collections prints a one-line summary per collection.
	Collections(cs []*domain.Collection, policy domain.ActivePolicy)

	// Profiles prints a profile listing.
	Profiles(profiles []*domain.Profile)

	// History prints the last build of each profile.
	History(records []domain.BuildRecord)
}
