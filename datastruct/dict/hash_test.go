package dict

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ x, y int }

type code int32

func (c code) HashCode() int32 {
	return int32(c) * 31
}

func TestIntHasher(t *testing.T) {
	h := IntHasher[int64]()
	tests := []struct {
		key  int64
		want int32
	}{
		{0, 0},
		{5, 5},
		{-5, -5},
		{math.MinInt32, math.MinInt32},
		{math.MaxInt32, math.MaxInt32},
		{1 << 32, 1},
	}
	for _, tt := range tests {
		got, ok := h(tt.key)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "key %d", tt.key)
	}
}

func TestIndexFor(t *testing.T) {
	h := IntHasher[int32]()
	assert.Equal(t, 5, indexFor(h, 5, 10))
	assert.Equal(t, 5, indexFor(h, -5, 10))
	assert.Equal(t, 8, indexFor(h, math.MinInt32, 10))
	assert.Equal(t, 7, indexFor(h, math.MaxInt32, 10))
	for n := 2; n < 50; n++ {
		i := indexFor(h, math.MinInt32, n)
		assert.True(t, i >= 0 && i < n)
	}
	assert.Equal(t, 0, indexFor(AnyHasher[any](), nil, 10))
}

func TestStringHashers(t *testing.T) {
	for _, h := range []Hasher[string]{StringHasher(), FNV32Hasher(), DefaultHasher[string]()} {
		a, ok := h("godis")
		assert.True(t, ok)
		b, _ := h("godis")
		assert.Equal(t, a, b)
	}
	a, _ := FNV32Hasher()("a")
	assert.Equal(t, int32(fnv32("a")), a)
}

func TestAnyHasher(t *testing.T) {
	h := AnyHasher[any]()
	_, ok := h(nil)
	assert.False(t, ok)

	var p *point
	_, ok = h(p)
	assert.False(t, ok)

	v, ok := h(code(2))
	assert.True(t, ok)
	assert.Equal(t, int32(62), v)

	v, _ = h(42)
	assert.Equal(t, int32(42), v)
	v, _ = h(uint8(42))
	assert.Equal(t, int32(42), v)

	s1, _ := h("x")
	s2, _ := StringHasher()("x")
	assert.Equal(t, s2, s1)

	p1, _ := h(point{1, 2})
	p2, _ := h(point{1, 2})
	assert.Equal(t, p1, p2)
}

func TestDefaultHasherNamedType(t *testing.T) {
	type id int
	v, ok := DefaultHasher[id]()(id(9))
	assert.True(t, ok)
	assert.Equal(t, int32(9), v)

	v, _ = DefaultHasher[code]()(code(3))
	assert.Equal(t, int32(93), v)
}

func TestAnyHasherNilHashable(t *testing.T) {
	var p *code
	_, ok := AnyHasher[any]()(p)
	assert.False(t, ok)
	_, ok = AnyHasher[*code]()(nil)
	assert.False(t, ok)
}

func TestAnyHasherAgreesWithEquality(t *testing.T) {
	negZero := math.Copysign(0, -1)
	h := AnyHasher[any]()
	pos, _ := h(0.0)
	neg, _ := h(negZero)
	assert.Equal(t, pos, neg)
	pos, _ = h(float32(0))
	neg, _ = h(float32(negZero))
	assert.Equal(t, pos, neg)
	pos, _ = h(complex(0, 0))
	neg, _ = h(complex(negZero, negZero))
	assert.Equal(t, pos, neg)

	a, _ := h(point{1, 2})
	b, _ := h(point{1, 2})
	c, _ := h(point{2, 1})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	type padded struct {
		id int
		_  int
		w  float64
	}
	a, _ = h(padded{id: 1, w: 0})
	b, _ = h(padded{id: 1, w: negZero})
	assert.Equal(t, a, b)

	a, _ = h([2]float64{0, 1})
	b, _ = h([2]float64{negZero, 1})
	assert.Equal(t, a, b)
}
