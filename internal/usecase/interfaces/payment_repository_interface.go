package interfaces

import (
	"context"

	"clinica_odonto/internal/domain/entities"
)

// IPaymentRecordRepository is the key-value store of one payment kind.
//
//   - Save upserts by id.
//   - GetByID returns a zero value (empty ID) when the record does not exist.
//   - ListAll is ordered by created_at, newest first.
//   - Update is an atomic read-modify-write of a single record. mutate gets the
//     stored record and reports whether it changed it; unchanged records are not
//     written back. A missing id yields (zero, false, nil) without calling mutate.
type IPaymentRecordRepository[T entities.PaymentAttempt] interface {
	Save(ctx context.Context, p T) error
	GetByID(ctx context.Context, id string) (T, error)
	ListAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id string, mutate func(current T) (T, bool)) (T, bool, error)
}

type IPixPaymentRepository interface {
	IPaymentRecordRepository[entities.PixPayment]
}

type ICardPaymentRepository interface {
	IPaymentRecordRepository[entities.CardPayment]
}

type IBoletoPaymentRepository interface {
	IPaymentRecordRepository[entities.BoletoPayment]
}
