package repository

import (
	"context"
	"sync"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
)

// MemoryRecordRepository keeps JSON-encoded records in a process-local
// go-cache instance. Records never expire.
type MemoryRecordRepository[T entities.PaymentAttempt] struct {
	mu        sync.Mutex
	items     *cache.Cache
	namespace string
}

var (
	_ interfaces.IPixPaymentRepository    = (*MemoryRecordRepository[entities.PixPayment])(nil)
	_ interfaces.ICardPaymentRepository   = (*MemoryRecordRepository[entities.CardPayment])(nil)
	_ interfaces.IBoletoPaymentRepository = (*MemoryRecordRepository[entities.BoletoPayment])(nil)
)

func NewMemoryRecordRepository[T entities.PaymentAttempt]() *MemoryRecordRepository[T] {
	return &MemoryRecordRepository[T]{
		items:     cache.New(cache.NoExpiration, 0),
		namespace: namespaceOf[T](),
	}
}

func (r *MemoryRecordRepository[T]) Save(_ context.Context, p T) error {
	b, err := encodeRecord(p)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items.Set(recordKey(r.namespace, p.AttemptID()), b, cache.NoExpiration)
	return nil
}

func (r *MemoryRecordRepository[T]) GetByID(_ context.Context, id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *MemoryRecordRepository[T]) get(id string) (T, error) {
	var zero T
	v, ok := r.items.Get(recordKey(r.namespace, id))
	if !ok {
		return zero, nil
	}
	return decodeRecord[T](v.([]byte))
}

func (r *MemoryRecordRepository[T]) ListAll(_ context.Context) ([]T, error) {
	r.mu.Lock()
	snapshot := r.items.Items()
	r.mu.Unlock()

	out := make([]T, 0, len(snapshot))
	for _, it := range snapshot {
		p, err := decodeRecord[T](it.Object.([]byte))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryRecordRepository[T]) Update(_ context.Context, id string, mutate func(T) (T, bool)) (T, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.get(id)
	if err != nil || cur.AttemptID() == "" {
		return cur, false, err
	}
	next, changed := mutate(cur)
	if !changed {
		return cur, false, nil
	}
	b, err := encodeRecord(next)
	if err != nil {
		return cur, false, err
	}
	r.items.Set(recordKey(r.namespace, id), b, cache.NoExpiration)
	return next, true, nil
}
