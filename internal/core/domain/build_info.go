package domain

import "time"

// BuildRecord is the last known build of a profile.
type BuildRecord struct {
	ProfileID   string    `json:"profile_id,omitzero"`
	ProfileName string    `json:"profile_name,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	OutputPath  string    `json:"output_path,omitzero"`
	Succeeded   bool      `json:"succeeded,omitzero"`
	Error       string    `json:"error,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
