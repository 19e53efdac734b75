package dict

import (
	"context"

	pool "github.com/jolestar/go-commons-pool/v2"
	"github.com/pkg/errors"
)

type bucketFactory[K comparable, V any] struct{}

func (f *bucketFactory[K, V]) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	return pool.NewPooledObject(NewArrayDictionary[K, V]()), nil
}

func (f *bucketFactory[K, V]) DestroyObject(_ context.Context, obj *pool.PooledObject) error {
	bucket, ok := obj.Object.(*ArrayDictionary[K, V])
	if !ok {
		return errors.New("type mismatch")
	}
	bucket.Clear()
	return nil
}

func (f *bucketFactory[K, V]) ValidateObject(_ context.Context, _ *pool.PooledObject) bool {
	return true
}

func (f *bucketFactory[K, V]) ActivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

// PassivateObject 在链归还时清空它，闲置的链不再持有任何键值
func (f *bucketFactory[K, V]) PassivateObject(_ context.Context, obj *pool.PooledObject) error {
	bucket, ok := obj.Object.(*ArrayDictionary[K, V])
	if !ok {
		return errors.New("type mismatch")
	}
	bucket.Clear()
	return nil
}

// BucketPool 缓存扩容后被替换下来的链，供之后新建的桶复用。池本身是并发安全的，可由多个字典共享
type BucketPool[K comparable, V any] struct {
	ctx     context.Context
	objects *pool.ObjectPool
}

// NewBucketPool 创建一个不限总数、从不阻塞的池，最多保留 maxIdle 个闲置的链
func NewBucketPool[K comparable, V any](ctx context.Context, maxIdle int) *BucketPool[K, V] {
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1
	config.MaxIdle = maxIdle
	config.BlockWhenExhausted = false
	return &BucketPool[K, V]{
		ctx:     ctx,
		objects: pool.NewObjectPool(ctx, &bucketFactory[K, V]{}, config),
	}
}

func (p *BucketPool[K, V]) Borrow() (*ArrayDictionary[K, V], error) {
	obj, err := p.objects.BorrowObject(p.ctx)
	if err != nil {
		return nil, errors.Wrap(err, "borrow bucket")
	}
	bucket, ok := obj.(*ArrayDictionary[K, V])
	if !ok {
		return nil, errors.New("type mismatch")
	}
	return bucket, nil
}

func (p *BucketPool[K, V]) Return(bucket *ArrayDictionary[K, V]) error {
	return errors.Wrap(p.objects.ReturnObject(p.ctx, bucket), "return bucket")
}

func (p *BucketPool[K, V]) Idle() int {
	return p.objects.GetNumIdle()
}

func (p *BucketPool[K, V]) Active() int {
	return p.objects.GetNumActive()
}

func (p *BucketPool[K, V]) Close() {
	p.objects.Close(p.ctx)
}
