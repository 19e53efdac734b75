package dict

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBucketPoolBorrowReturn(t *testing.T) {
	p := NewBucketPool[string, int](context.Background(), 8)
	defer p.Close()

	b, err := p.Borrow()
	require.NoError(t, err)
	b.Put("a", 1)
	assert.Equal(t, 1, p.Active())

	require.NoError(t, p.Return(b))
	assert.Equal(t, 0, p.Active())
	assert.Equal(t, 1, p.Idle())
	assert.True(t, b.IsEmpty())

	again, err := p.Borrow()
	require.NoError(t, err)
	assert.Same(t, b, again)
	assert.False(t, again.ContainsKey("a"))
}

func TestBucketPoolReturnForeign(t *testing.T) {
	p := NewBucketPool[string, int](context.Background(), 8)
	defer p.Close()
	assert.Error(t, p.Return(NewArrayDictionary[string, int]()))
}

func TestChainedWithBucketPool(t *testing.T) {
	p := NewBucketPool[int, int](context.Background(), 1000)
	defer p.Close()
	core, logs := observer.New(zap.DebugLevel)
	d := NewChainedDictionary(WithBucketPool(p), WithLogger[int, int](zap.New(core)))

	for i := 0; i < 6; i++ {
		d.Put(i, i)
	}
	assert.Equal(t, 6, p.Active())

	// 扩容时新借出 6 条链，旧桶数组中的 6 条链随后被归还，其中一条又被 key 6 借走
	d.Put(6, 6)
	assert.Equal(t, 7, p.Active())
	assert.Equal(t, 5, p.Idle())
	require.Equal(t, 1, logs.FilterMessage("dict rehashed").Len())

	for i := 7; i < 12; i++ {
		d.Put(i, i)
	}
	assert.Equal(t, 12, p.Active())
	assert.Equal(t, 0, p.Idle())
	for i := 0; i < 12; i++ {
		v, err := d.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}

	d.Clear()
	assert.Equal(t, 0, p.Active())
	assert.Equal(t, 12, p.Idle())
}
