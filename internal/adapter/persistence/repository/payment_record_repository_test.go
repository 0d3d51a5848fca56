package repository

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"clinica_odonto/internal/domain/entities"
	"clinica_odonto/internal/usecase/interfaces"
)

func samplePix(id string, createdAt time.Time) entities.PixPayment {
	return entities.PixPayment{
		ID:            id,
		Amount:        90.1,
		Description:   "Assinatura Profissional",
		Status:        entities.PixStatusPendente,
		PlanReference: "profissional",
		PayoutKey:     "clinica@odonto.com.br",
		PixCode:       "000201...",
		CreatedAt:     createdAt,
		ExpiresAt:     createdAt.Add(entities.PixExpiration),
	}
}

// runPixRepositorySuite checks the record store contract on any backend.
func runPixRepositorySuite(t *testing.T, repo interfaces.IPixPaymentRepository) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("missing id returns zero value", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "PIX_missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero value, got %+v", got)
		}
	})

	t.Run("round trip keeps every field", func(t *testing.T) {
		approved := base.Add(11 * time.Second)
		want := samplePix("PIX_roundtrip", base)
		want.Status = entities.PixStatusAprovado
		want.ApprovedAt = &approved
		want.QRCodeBase64 = "MDAwMjAx"
		want.ProviderPaymentID = "123456"

		if err := repo.Save(ctx, want); err != nil {
			t.Fatalf("unexpected save error: %v", err)
		}
		got, err := repo.GetByID(ctx, want.ID)
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("save upserts by id", func(t *testing.T) {
		p := samplePix("PIX_upsert", base)
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p.Description = "changed"
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := repo.GetByID(ctx, p.ID)
		if got.Description != "changed" {
			t.Fatalf("expected upsert, got %+v", got)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			if err := repo.Save(ctx, samplePix(fmt.Sprintf("PIX_list_%d", i), base.Add(time.Duration(i)*time.Hour))); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		items, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) < 3 || items[0].ID != "PIX_list_3" || items[1].ID != "PIX_list_2" || items[2].ID != "PIX_list_1" {
			t.Fatalf("unexpected order: %+v", items)
		}
		for i := 1; i < len(items); i++ {
			if items[i].CreatedAt.After(items[i-1].CreatedAt) {
				t.Fatalf("items not sorted at %d", i)
			}
		}
	})

	t.Run("update missing id", func(t *testing.T) {
		called := false
		got, changed, err := repo.Update(ctx, "PIX_nope", func(p entities.PixPayment) (entities.PixPayment, bool) {
			called = true
			return p, true
		})
		if err != nil || changed || called || got.ID != "" {
			t.Fatalf("unexpected update result: %+v %v %v called=%v", got, changed, err, called)
		}
	})

	t.Run("update unchanged does not write", func(t *testing.T) {
		p := samplePix("PIX_unchanged", base)
		_ = repo.Save(ctx, p)
		got, changed, err := repo.Update(ctx, p.ID, func(cur entities.PixPayment) (entities.PixPayment, bool) {
			cur.Description = "ignored"
			return cur, false
		})
		if err != nil || changed {
			t.Fatalf("unexpected update result: %v %v", changed, err)
		}
		if got.Description != p.Description {
			t.Fatalf("expected stored record, got %+v", got)
		}
		stored, _ := repo.GetByID(ctx, p.ID)
		if stored.Description != p.Description {
			t.Fatalf("record must not be written, got %+v", stored)
		}
	})

	t.Run("concurrent guarded updates apply once", func(t *testing.T) {
		p := samplePix("PIX_concurrent", base)
		_ = repo.Save(ctx, p)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			applied int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, changed, err := repo.Update(ctx, p.ID, func(cur entities.PixPayment) (entities.PixPayment, bool) {
					if cur.Status != entities.PixStatusPendente {
						return cur, false
					}
					cur.Status = entities.PixStatusAprovado
					return cur, true
				})
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if changed {
					mu.Lock()
					applied++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		if applied != 1 {
			t.Fatalf("expected exactly one applied transition, got %d", applied)
		}
		got, _ := repo.GetByID(ctx, p.ID)
		if got.Status != entities.PixStatusAprovado {
			t.Fatalf("expected aprovado, got %s", got.Status)
		}
	})
}

func TestMemoryRecordRepository(t *testing.T) {
	runPixRepositorySuite(t, NewMemoryRecordRepository[entities.PixPayment]())
}

func TestMemoryRecordRepository_NamespacesAreSeparate(t *testing.T) {
	ctx := context.Background()
	card := NewMemoryRecordRepository[entities.CardPayment]()
	boleto := NewMemoryRecordRepository[entities.BoletoPayment]()

	if err := card.Save(ctx, entities.CardPayment{ID: "same", Status: entities.CardStatusApproved}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := boleto.GetByID(ctx, "same")
	if err != nil || got.ID != "" {
		t.Fatalf("expected no boleto with card id, got %+v %v", got, err)
	}
	if card.namespace != "pagamentos_cartao" || boleto.namespace != "pagamentos_boleto" {
		t.Fatalf("unexpected namespaces %s %s", card.namespace, boleto.namespace)
	}
}
