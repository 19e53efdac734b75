package dict

import (
	"go.uber.org/zap"
)

const (
	DefaultBucketCount = 10
	maxLoadFactor      = 0.5
	minBucketCount     = 2
	maxBucketCount     = 1 << 30
)

// ChainedDictionary 是以分离链接法解决冲突的哈希字典，每个桶是一个 BucketMap。
// 它不是线程安全的，并发访问需要调用方在外部加锁。
//
// 不变量：entryCount 等于所有桶大小之和；每个 key 只出现在 indexFor(key) 对应的桶中，且只出现一次。
type ChainedDictionary[K comparable, V any] struct {
	buckets      []BucketMap[K, V]
	entryCount   int
	bucketCount  int
	initialCount int
	rehashes     int
	hasher       Hasher[K]
	pool         *BucketPool[K, V]
	logger       *zap.Logger
}

// Stats 是对桶数组的一次扫描结果，仅用于诊断
type Stats struct {
	Entries      int
	Buckets      int
	UsedBuckets  int
	LongestChain int
	LoadFactor   float64
	Rehashes     int
}

func NewChainedDictionary[K comparable, V any](opts ...Option[K, V]) *ChainedDictionary[K, V] {
	d := &ChainedDictionary[K, V]{
		initialCount: DefaultBucketCount,
		hasher:       DefaultHasher[K](),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.bucketCount = d.initialCount
	d.buckets = make([]BucketMap[K, V], d.bucketCount)
	return d
}

func (d *ChainedDictionary[K, V]) Size() int {
	return d.entryCount
}

func (d *ChainedDictionary[K, V]) IsEmpty() bool {
	return d.entryCount == 0
}

func (d *ChainedDictionary[K, V]) BucketCount() int {
	return d.bucketCount
}

func (d *ChainedDictionary[K, V]) LoadFactor() float64 {
	return float64(d.entryCount) / float64(d.bucketCount)
}

func (d *ChainedDictionary[K, V]) Get(key K) (value V, err error) {
	bucket := d.buckets[d.bucketIndex(key)]
	if bucket == nil {
		return value, ErrKeyNotFound
	}
	return bucket.Get(key)
}

// Put 先检查是否需要扩容，再定位桶。扩容会改变所有 key 的目标桶，所以顺序不能颠倒
func (d *ChainedDictionary[K, V]) Put(key K, value V) {
	d.ensureCapacity()
	index := d.bucketIndex(key)
	if d.buckets[index] == nil {
		d.buckets[index] = d.newBucket()
	}
	bucket := d.buckets[index]
	if !bucket.ContainsKey(key) {
		d.entryCount++
	}
	bucket.Put(key, value)
}

func (d *ChainedDictionary[K, V]) Remove(key K) (value V, err error) {
	if !d.ContainsKey(key) {
		return value, ErrKeyNotFound
	}
	d.entryCount--
	return d.buckets[d.bucketIndex(key)].Remove(key)
}

func (d *ChainedDictionary[K, V]) ContainsKey(key K) bool {
	bucket := d.buckets[d.bucketIndex(key)]
	if bucket == nil {
		return false
	}
	return bucket.ContainsKey(key)
}

// Iterator 返回的迭代器持有当前的桶数组，迭代期间修改字典的结果是未定义的
func (d *ChainedDictionary[K, V]) Iterator() Iterator[K, V] {
	return &chainedIterator[K, V]{buckets: d.buckets}
}

func (d *ChainedDictionary[K, V]) ForEach(p Processor[K, V]) {
	it := d.Iterator()
	for it.HasNext() {
		entry, err := it.Next()
		if err != nil || !p(entry.Key, entry.Value) {
			return
		}
	}
}

func (d *ChainedDictionary[K, V]) Keys() []K {
	keys := make([]K, 0, d.entryCount)
	d.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Clear 清空字典并把桶数恢复为初始值
func (d *ChainedDictionary[K, V]) Clear() {
	old := d.buckets
	d.buckets = make([]BucketMap[K, V], d.initialCount)
	d.bucketCount = d.initialCount
	d.entryCount = 0
	d.rehashes = 0
	d.releaseBuckets(old)
}

func (d *ChainedDictionary[K, V]) Stats() Stats {
	s := Stats{
		Entries:    d.entryCount,
		Buckets:    d.bucketCount,
		LoadFactor: d.LoadFactor(),
		Rehashes:   d.rehashes,
	}
	for _, bucket := range d.buckets {
		if bucket == nil || bucket.IsEmpty() {
			continue
		}
		s.UsedBuckets++
		if n := bucket.Size(); n > s.LongestChain {
			s.LongestChain = n
		}
	}
	return s
}

func (d *ChainedDictionary[K, V]) bucketIndex(key K) int {
	return indexFor(d.hasher, key, d.bucketCount)
}

// ensureCapacity 在负载因子超过 0.5 时把桶数平方，并把所有键值对重新放入新的桶数组。
// 负载因子按插入前的计数计算；新数组构建完成后才替换旧数组。
func (d *ChainedDictionary[K, V]) ensureCapacity() {
	if d.LoadFactor() <= maxLoadFactor || d.bucketCount >= maxBucketCount {
		return
	}
	count := d.bucketCount * d.bucketCount
	if count > maxBucketCount {
		count = maxBucketCount
	}
	rebuilt := make([]BucketMap[K, V], count)
	d.ForEach(func(key K, value V) bool {
		index := indexFor(d.hasher, key, count)
		if rebuilt[index] == nil {
			rebuilt[index] = d.newBucket()
		}
		rebuilt[index].Put(key, value)
		return true
	})
	old, from := d.buckets, d.bucketCount
	d.buckets, d.bucketCount = rebuilt, count
	d.rehashes++
	d.releaseBuckets(old)
	d.logger.Debug("dict rehashed",
		zap.Int("from", from),
		zap.Int("to", count),
		zap.Int("entries", d.entryCount))
}

func (d *ChainedDictionary[K, V]) newBucket() BucketMap[K, V] {
	if d.pool == nil {
		return NewArrayDictionary[K, V]()
	}
	bucket, err := d.pool.Borrow()
	if err != nil {
		d.logger.Warn("borrow bucket failed, falling back to heap", zap.Error(err))
		return NewArrayDictionary[K, V]()
	}
	return bucket
}

func (d *ChainedDictionary[K, V]) releaseBuckets(buckets []BucketMap[K, V]) {
	if d.pool == nil {
		return
	}
	for _, bucket := range buckets {
		b, ok := bucket.(*ArrayDictionary[K, V])
		if !ok {
			continue
		}
		if err := d.pool.Return(b); err != nil {
			d.logger.Debug("return bucket failed", zap.Error(err))
		}
	}
}
