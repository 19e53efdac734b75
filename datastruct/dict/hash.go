package dict

import (
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher 返回 key 的哈希值。ok 为 false 表示 key 是空键（nil 指针或 nil 接口），空键总是落在 0 号桶
type Hasher[K comparable] func(key K) (hash int32, ok bool)

// Hashable 可由用户类型实现以自行提供哈希值
type Hashable interface {
	HashCode() int32
}

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntHasher 对 int32 范围内的整数直接以其值作为哈希值，超出范围的部分折叠高低 32 位
func IntHasher[K Integer]() Hasher[K] {
	return func(key K) (int32, bool) {
		return foldInt64(int64(key)), true
	}
}

// StringHasher 使用 xxhash 计算字符串的哈希值
func StringHasher() Hasher[string] {
	return func(key string) (int32, bool) {
		return fold64(xxhash.Sum64String(key)), true
	}
}

// FNV32Hasher 使用 fnv32 计算字符串的哈希值
func FNV32Hasher() Hasher[string] {
	return func(key string) (int32, bool) {
		return int32(fnv32(key)), true
	}
}

// AnyHasher 按动态类型计算哈希值，nil 视为空键
func AnyHasher[K comparable]() Hasher[K] {
	return func(key K) (int32, bool) {
		return hashAny(any(key))
	}
}

// DefaultHasher 根据类型参数挑选哈希函数
func DefaultHasher[K comparable]() Hasher[K] {
	var zero K
	var h any
	switch any(zero).(type) {
	case int:
		h = IntHasher[int]()
	case int8:
		h = IntHasher[int8]()
	case int16:
		h = IntHasher[int16]()
	case int32:
		h = IntHasher[int32]()
	case int64:
		h = IntHasher[int64]()
	case uint:
		h = IntHasher[uint]()
	case uint8:
		h = IntHasher[uint8]()
	case uint16:
		h = IntHasher[uint16]()
	case uint32:
		h = IntHasher[uint32]()
	case uint64:
		h = IntHasher[uint64]()
	case string:
		h = StringHasher()
	default:
		return AnyHasher[K]()
	}
	return h.(Hasher[K])
}

func hashAny(key any) (int32, bool) {
	if key == nil {
		return 0, false
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		// nil 指针也可能实现 Hashable，必须先于 HashCode 判断
		if v.IsNil() {
			return 0, false
		}
	}
	if h, ok := key.(Hashable); ok {
		return h.HashCode(), true
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return foldInt64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return foldInt64(int64(v.Uint())), true
	case reflect.Bool:
		if v.Bool() {
			return 1231, true
		}
		return 1237, true
	}
	return fold64(hashValue(v)), true
}

// hashValue 与 == 保持一致：相等的值必须得到相同的哈希值，因此 +0 与 -0 取相同的位模式，
// 结构体和数组逐个字段（元素）组合哈希值
func hashValue(v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.String:
		return xxhash.Sum64String(v.String())
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.Float32, reflect.Float64:
		return floatBits(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return combine(floatBits(real(c)), floatBits(imag(c)))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return uint64(v.Pointer())
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem())
	case reflect.Struct:
		h := uint64(v.NumField())
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).Name == "_" {
				continue
			}
			h = combine(h, hashValue(v.Field(i)))
		}
		return h
	case reflect.Array:
		h := uint64(v.Len())
		for i := 0; i < v.Len(); i++ {
			h = combine(h, hashValue(v.Index(i)))
		}
		return h
	}
	// 其余类型不可比较，不会作为 key 出现
	return 0
}

func floatBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}

func combine(h, x uint64) uint64 {
	return h ^ (x + 0x9e3779b97f4a7c15 + h<<6 + h>>2)
}

func foldInt64(v int64) int32 {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return int32(v)
	}
	return fold64(uint64(v))
}

func fold64(h uint64) int32 {
	return int32(uint32(h ^ h>>32))
}

// fnv32 是一个哈希函数
func fnv32(key string) uint32 {
	hash := uint32(2166136261)
	// 此处不用 for range 是因为不应考虑字符而是只考虑字节
	for i := 0; i < len(key); i++ {
		hash *= uint32(16777619)
		hash ^= uint32(key[i])
	}
	return hash
}

// indexFor 计算 key 在 n 个桶中的下标，绝对值在 int64 中计算，因此 math.MinInt32 不会溢出
func indexFor[K comparable](h Hasher[K], key K, n int) int {
	hash, ok := h(key)
	if !ok {
		return 0
	}
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(n))
}
