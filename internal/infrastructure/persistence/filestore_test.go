package persistence_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nawiri/nawiri-bms/internal/application/ledger"
	"github.com/nawiri/nawiri-bms/internal/domain/entity"
	"github.com/nawiri/nawiri-bms/internal/infrastructure/persistence"
)

func sampleSnapshot() ledger.Snapshot {
	at := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	return ledger.Snapshot{
		Customers: []entity.Customer{{
			ID:                 "c1",
			Name:               "Mama Ntilie",
			Phone:              "+255700000001",
			TotalPurchases:     decimal.NewFromInt(500),
			OutstandingBalance: decimal.NewFromInt(300),
			CreatedAt:          at,
			UpdatedAt:          at,
		}},
		Products: []entity.Product{{
			ID:            "p1",
			Name:          "Sembe 5kg",
			Category:      entity.CategoryFlourSembe,
			Weight:        entity.Weight5kg,
			Price:         decimal.NewFromInt(100),
			StockQuantity: 45,
			ReorderLevel:  10,
			CreatedAt:     at,
			UpdatedAt:     at,
		}},
		StockTransactions: []entity.StockTransaction{{
			ID:              "t1",
			ProductID:       "p1",
			TransactionType: entity.TransactionAdjustment,
			Quantity:        -5,
			UnitPrice:       decimal.NewFromInt(0),
			CreatedBy:       "neema",
			CreatedAt:       at,
		}},
		Sales: []entity.Sale{{
			ID:            "s1",
			CustomerID:    "c1",
			TotalAmount:   decimal.NewFromInt(500),
			PaymentStatus: entity.PaymentPartial,
			PaidAmount:    decimal.NewFromInt(200),
			CreatedBy:     "neema",
			CreatedAt:     at,
		}},
		SaleItems: []entity.SaleItem{{
			ID:         "i1",
			SaleID:     "s1",
			ProductID:  "p1",
			Quantity:   5,
			UnitPrice:  decimal.NewFromInt(100),
			TotalPrice: decimal.NewFromInt(500),
		}},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := persistence.NewFileStore(t.TempDir(), "nawiri-bms-storage.json")
	want := sampleSnapshot()

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingBlobReturnsEmptySnapshot(t *testing.T) {
	store := persistence.NewFileStore(t.TempDir(), "nawiri-bms-storage.json")

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Customers)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Sales)
}

func TestLoadCorruptBlobFails(t *testing.T) {
	dir := t.TempDir()
	store := persistence.NewFileStore(dir, "nawiri-bms-storage.json")
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestSaveReplacesBlobAtomically(t *testing.T) {
	dir := t.TempDir()
	store := persistence.NewFileStore(dir, "nawiri-bms-storage.json")

	require.NoError(t, store.Save(ledger.Snapshot{}))
	require.NoError(t, store.Save(sampleSnapshot()))

	// Only the blob remains; no temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(store.Path()), entries[0].Name())
}
