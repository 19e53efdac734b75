package dict

import "github.com/pkg/errors"

var (
	ErrKeyNotFound        = errors.New("key not found")
	ErrIterationExhausted = errors.New("iteration exhausted")
)

// Processor 在遍历时作用于每个键值对，返回 false 时停止遍历
type Processor[K comparable, V any] func(key K, value V) bool

// Entry 是遍历时产生的键值对视图
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type Iterator[K comparable, V any] interface {
	HasNext() bool
	Next() (Entry[K, V], error)
}

// BucketMap 是单个桶中保存的链，只需要一个小型有序字典的能力
type BucketMap[K comparable, V any] interface {
	Size() int
	IsEmpty() bool
	Get(key K) (V, error)
	Put(key K, value V)
	Remove(key K) (V, error)
	ContainsKey(key K) bool
	Iterator() Iterator[K, V]
}

type Dictionary[K comparable, V any] interface {
	BucketMap[K, V]
	ForEach(p Processor[K, V])
	Keys() []K
	Clear()
}
