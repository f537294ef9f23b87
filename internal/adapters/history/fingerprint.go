package history

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/domain"
)

// Fingerprint hashes everything that determines a profile's player: the
// applied symbols and the backend request. Two builds with the same
// fingerprint were configured identically.
func Fingerprint(symbols string, req domain.BuildRequest) string {
	hasher := xxhash.New()

	write := func(s string) {
		_, _ = hasher.WriteString(s)
		_, _ = hasher.Write([]byte{0})
	}

	write(symbols)
	for _, scene := range req.Scenes {
		write(scene)
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	write(req.OutputPath)
	write(req.Platform.ID)
	write(req.Options.String())
	write(string(req.ScriptingBackend))
	write(string(req.APICompatibility))

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// RecordFor builds the history record of a finished profile.
func RecordFor(outcome domain.ProfileOutcome) domain.BuildRecord {
	return domain.BuildRecord{
		ProfileID:   outcome.ProfileID.String(),
		ProfileName: outcome.ProfileName,
		Fingerprint: Fingerprint(outcome.Symbols, outcome.Request),
		OutputPath:  outcome.Artifact.Path,
		Succeeded:   true,
	}
}

// FailureRecord builds the history record of a failed profile.
func FailureRecord(f domain.ProfileFailure) domain.BuildRecord {
	return domain.BuildRecord{
		ProfileID:   f.ProfileID.String(),
		ProfileName: f.ProfileName,
		Error:       f.Message(),
	}
}
