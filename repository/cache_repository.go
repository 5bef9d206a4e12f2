package repository

// CacheRepository is the key-value cache behind the regulatory policy store.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
