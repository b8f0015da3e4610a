package cache

type Cacher[K comparable, V any] interface {
	Set(key K, val V)
	Get(key K) (val V, found bool)
	Close()
}
