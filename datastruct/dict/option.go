package dict

import "go.uber.org/zap"

type Option[K comparable, V any] func(d *ChainedDictionary[K, V])

// WithBucketCount 设置初始桶数，小于 2 时按 2 处理，否则平方扩容不会增长
func WithBucketCount[K comparable, V any](n int) Option[K, V] {
	return func(d *ChainedDictionary[K, V]) {
		if n < minBucketCount {
			n = minBucketCount
		}
		if n > maxBucketCount {
			n = maxBucketCount
		}
		d.initialCount = n
	}
}

func WithHasher[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(d *ChainedDictionary[K, V]) {
		if h != nil {
			d.hasher = h
		}
	}
}

// WithLogger 用于记录扩容等事件
func WithLogger[K comparable, V any](l *zap.Logger) Option[K, V] {
	return func(d *ChainedDictionary[K, V]) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithBucketPool 让链从 p 中借出，并在扩容或清空后归还
func WithBucketPool[K comparable, V any](p *BucketPool[K, V]) Option[K, V] {
	return func(d *ChainedDictionary[K, V]) {
		d.pool = p
	}
}
