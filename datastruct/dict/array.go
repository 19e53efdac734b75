package dict

// ArrayDictionary 按插入顺序把键值对存放在切片中，用作哈希桶中的链
type ArrayDictionary[K comparable, V any] struct {
	pairs []Entry[K, V]
}

func NewArrayDictionary[K comparable, V any]() *ArrayDictionary[K, V] {
	return &ArrayDictionary[K, V]{}
}

func (d *ArrayDictionary[K, V]) Size() int {
	return len(d.pairs)
}

func (d *ArrayDictionary[K, V]) IsEmpty() bool {
	return len(d.pairs) == 0
}

func (d *ArrayDictionary[K, V]) Get(key K) (value V, err error) {
	i := d.indexOf(key)
	if i < 0 {
		return value, ErrKeyNotFound
	}
	return d.pairs[i].Value, nil
}

func (d *ArrayDictionary[K, V]) Put(key K, value V) {
	if i := d.indexOf(key); i >= 0 {
		d.pairs[i].Value = value
		return
	}
	d.pairs = append(d.pairs, Entry[K, V]{Key: key, Value: value})
}

// Remove 删除键并保持其余键值对的相对顺序
func (d *ArrayDictionary[K, V]) Remove(key K) (value V, err error) {
	i := d.indexOf(key)
	if i < 0 {
		return value, ErrKeyNotFound
	}
	value = d.pairs[i].Value
	last := len(d.pairs) - 1
	copy(d.pairs[i:], d.pairs[i+1:])
	d.pairs[last] = Entry[K, V]{}
	d.pairs = d.pairs[:last]
	return value, nil
}

func (d *ArrayDictionary[K, V]) ContainsKey(key K) bool {
	return d.indexOf(key) >= 0
}

func (d *ArrayDictionary[K, V]) Iterator() Iterator[K, V] {
	return &arrayIterator[K, V]{pairs: d.pairs}
}

func (d *ArrayDictionary[K, V]) ForEach(p Processor[K, V]) {
	for _, pair := range d.pairs {
		if !p(pair.Key, pair.Value) {
			break
		}
	}
}

func (d *ArrayDictionary[K, V]) Keys() []K {
	res := make([]K, len(d.pairs))
	for i, pair := range d.pairs {
		res[i] = pair.Key
	}
	return res
}

// Clear 保留底层数组以便复用，但清除其中的引用
func (d *ArrayDictionary[K, V]) Clear() {
	for i := range d.pairs {
		d.pairs[i] = Entry[K, V]{}
	}
	d.pairs = d.pairs[:0]
}

func (d *ArrayDictionary[K, V]) indexOf(key K) int {
	for i := range d.pairs {
		if d.pairs[i].Key == key {
			return i
		}
	}
	return -1
}

type arrayIterator[K comparable, V any] struct {
	pairs []Entry[K, V]
	next  int
}

func (it *arrayIterator[K, V]) HasNext() bool {
	return it.next < len(it.pairs)
}

func (it *arrayIterator[K, V]) Next() (Entry[K, V], error) {
	if !it.HasNext() {
		return Entry[K, V]{}, ErrIterationExhausted
	}
	pair := it.pairs[it.next]
	it.next++
	return pair, nil
}
