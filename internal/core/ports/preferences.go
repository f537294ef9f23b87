package ports

// PreferenceStore is small key/value storage for operator preferences, kept
// in the workspace state directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=preferences.go -destination=mocks/mock_preferences.go -package=mocks
type PreferenceStore interface {
	// Get returns the value for key and whether it was set.
	Get(dir, key string) (string, bool, error)

	// Set stores value under key.
	Set(dir, key, value string) error
}
