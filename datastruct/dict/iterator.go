package dict

// chainedIterator 先按桶下标、再按桶内顺序输出键值对。
// index 指向下一个要检查的桶；current 为 nil 表示当前桶的迭代器尚未打开或已用尽。
type chainedIterator[K comparable, V any] struct {
	buckets []BucketMap[K, V]
	index   int
	current Iterator[K, V]
}

// HasNext 可以重复调用而不前进，用尽之后始终返回 false
func (it *chainedIterator[K, V]) HasNext() bool {
	for it.index < len(it.buckets) {
		if it.current == nil {
			bucket := it.buckets[it.index]
			if bucket == nil || bucket.IsEmpty() {
				it.index++
				continue
			}
			it.current = bucket.Iterator()
		}
		if it.current.HasNext() {
			return true
		}
		it.current = nil
		it.index++
	}
	return false
}

func (it *chainedIterator[K, V]) Next() (Entry[K, V], error) {
	if !it.HasNext() {
		return Entry[K, V]{}, ErrIterationExhausted
	}
	return it.current.Next()
}
