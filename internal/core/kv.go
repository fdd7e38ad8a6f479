package core

// KeyValueStore is a small persisted string map used for player settings
// and high scores. Implementations report read failures as missing keys.
type KeyValueStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
