package repository

import (
	"context"
	"errors"
	"fmt"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

var ErrUpdateConflict = errors.New("record changed concurrently, update abandoned")

// RedisRecordRepository stores each record under <namespace>:<id> and keeps a
// sorted set <namespace>:index scored by creation time in unix millis.
type RedisRecordRepository[T entities.PaymentAttempt] struct {
	rdb       redis.UniversalClient
	namespace string
}

var (
	_ interfaces.IPixPaymentRepository    = (*RedisRecordRepository[entities.PixPayment])(nil)
	_ interfaces.ICardPaymentRepository   = (*RedisRecordRepository[entities.CardPayment])(nil)
	_ interfaces.IBoletoPaymentRepository = (*RedisRecordRepository[entities.BoletoPayment])(nil)
)

func NewRedisRecordRepository[T entities.PaymentAttempt](rdb redis.UniversalClient) *RedisRecordRepository[T] {
	return &RedisRecordRepository[T]{rdb: rdb, namespace: namespaceOf[T]()}
}

func (r *RedisRecordRepository[T]) indexKey() string {
	return r.namespace + ":index"
}

func (r *RedisRecordRepository[T]) Save(ctx context.Context, p T) error {
	b, err := encodeRecord(p)
	if err != nil {
		return err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, recordKey(r.namespace, p.AttemptID()), b, 0)
		pipe.ZAdd(ctx, r.indexKey(), redis.Z{
			Score:  float64(p.AttemptCreatedAt().UnixMilli()),
			Member: p.AttemptID(),
		})
		return nil
	})
	return err
}

func (r *RedisRecordRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	b, err := r.rdb.Get(ctx, recordKey(r.namespace, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, nil
	}
	if err != nil {
		return zero, err
	}
	return decodeRecord[T](b)
}

func (r *RedisRecordRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	ids, err := r.rdb.ZRevRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []T{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKey(r.namespace, id)
	}
	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			// index entry without a record
			continue
		}
		p, err := decodeRecord[T]([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		out = append(out, p)
	}
	sortNewestFirst(out)
	return out, nil
}

// Update runs mutate inside a WATCH/MULTI transaction and retries when the
// key changed underneath.
func (r *RedisRecordRepository[T]) Update(ctx context.Context, id string, mutate func(T) (T, bool)) (T, bool, error) {
	key := recordKey(r.namespace, id)

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var (
			result  T
			changed bool
		)
		err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
			b, err := tx.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				return nil
			}
			if err != nil {
				return err
			}
			cur, err := decodeRecord[T](b)
			if err != nil {
				return err
			}
			result = cur

			next, ok := mutate(cur)
			if !ok {
				return nil
			}
			nb, err := encodeRecord(next)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, nb, 0)
				return nil
			})
			if err == nil {
				result, changed = next, true
			}
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			var zero T
			return zero, false, err
		}
		return result, changed, nil
	}

	var zero T
	return zero, false, ErrUpdateConflict
}
