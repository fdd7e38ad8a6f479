package storage

// Settings is a namespaced view of the settings table with simple get/set
// semantics. Read errors are reported as missing keys.
type Settings struct {
	store     *Store
	namespace string
}

// Settings returns a key-value view whose keys are prefixed with namespace.
func (s *Store) Settings(namespace string) *Settings {
	return &Settings{store: s, namespace: namespace}
}

func (kv *Settings) key(k string) string {
	if kv.namespace == "" {
		return k
	}
	return kv.namespace + "." + k
}

// Get returns the value stored under k.
func (kv *Settings) Get(k string) (string, bool) {
	if kv == nil || kv.store == nil {
		return "", false
	}
	v, ok, err := kv.store.GetSetting(kv.key(k))
	if err != nil {
		return "", false
	}
	return v, ok
}

// Set stores v under k.
func (kv *Settings) Set(k, v string) error {
	if kv == nil || kv.store == nil {
		return nil
	}
	return kv.store.SetSetting(kv.key(k), v)
}
