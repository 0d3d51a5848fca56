package repository

import (
	"encoding/json"
	"sort"

	"clinica_odonto/internal/domain/entities"
)

const maxUpdateAttempts = 5

func recordKey(namespace, id string) string {
	return namespace + ":" + id
}

func encodeRecord[T entities.PaymentAttempt](p T) ([]byte, error) {
	return json.Marshal(p)
}

func decodeRecord[T entities.PaymentAttempt](b []byte) (T, error) {
	var p T
	err := json.Unmarshal(b, &p)
	return p, err
}

// sortNewestFirst orders by created_at descending, breaking ties by id.
func sortNewestFirst[T entities.PaymentAttempt](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].AttemptCreatedAt(), items[j].AttemptCreatedAt()
		if a.Equal(b) {
			return items[i].AttemptID() > items[j].AttemptID()
		}
		return a.After(b)
	})
}

func namespaceOf[T entities.PaymentAttempt]() string {
	var zero T
	return zero.AttemptKind().Namespace()
}
