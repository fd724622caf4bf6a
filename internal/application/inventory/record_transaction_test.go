package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/application/inventory"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type txFixture struct {
	itemRepo *memory.InventoryItemRepo
	txRepo   *memory.TransactionRepo
	uc       *inventory.RecordTransactionUseCase
}

// newTxFixture arma el caso de uso con stores en memoria y un item con
// stock 10, precio unitario 100 y tasa ICMS 0.18.
func newTxFixture(t *testing.T) *txFixture {
	t.Helper()
	itemRepo := memory.NewInventoryItemRepository()
	txRepo := memory.NewTransactionRepository()
	now := time.Now()
	require.NoError(t, itemRepo.Create(&entity.InventoryItem{
		ID:        "i1",
		ProductID: "p1",
		CompanyID: "c1",
		Quantity:  10,
		UnitPrice: decimal.NewFromInt(100),
		ICMSRate:  decimal.NewFromFloat(0.18),
		CreatedAt: now,
		UpdatedAt: now,
	}))
	return &txFixture{
		itemRepo: itemRepo,
		txRepo:   txRepo,
		uc:       inventory.NewRecordTransactionUseCase(memory.NewTxRunner(itemRepo, txRepo)),
	}
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas (out)
// ──────────────────────────────────────────────────────────────────────────────

// Venta de 3 unidades a 150 con costo 100: queda stock 7 y la ganancia del
// asiento es (150-100)*3 = 150.
func TestRecord_SalidaDescuentaStockYCalculaGanancia(t *testing.T) {
	f := newTxFixture(t)

	tx, err := f.uc.Record(context.Background(), inventory.TransactionInput{
		UserID:    "u1",
		ItemID:    "i1",
		Type:      entity.TransactionOut,
		Quantity:  3,
		SalePrice: dec(150),
	})
	require.NoError(t, err)
	require.NotNil(t, tx)

	assert.Equal(t, entity.TransactionOut, tx.Type)
	require.NotNil(t, tx.Profit)
	assert.True(t, tx.Profit.Equal(decimal.NewFromInt(150)),
		"ganancia esperada (150-100)*3 = 150, obtenida %s", tx.Profit)
	assert.True(t, tx.UnitPrice.Equal(decimal.NewFromInt(100)),
		"el asiento copia el precio unitario del item")
	assert.Equal(t, "u1", tx.CreatedBy)

	item, err := f.itemRepo.GetByID("i1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), item.Quantity)
}

// Salida mayor al stock: se rechaza sin efecto parcial (ni cantidad ni libro).
func TestRecord_StockInsuficiente_SinEfectoParcial(t *testing.T) {
	f := newTxFixture(t)

	_, err := f.uc.Record(context.Background(), inventory.TransactionInput{
		UserID:    "u1",
		ItemID:    "i1",
		Type:      entity.TransactionOut,
		Quantity:  11,
		SalePrice: dec(150),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, err := f.itemRepo.GetByID("i1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.Quantity, "el stock no debe cambiar")

	ledger, err := f.txRepo.List(0, 0)
	require.NoError(t, err)
	assert.Empty(t, ledger, "no debe quedar asiento del intento rechazado")
}

// Salida por el total exacto del stock es válida y deja cantidad cero.
func TestRecord_SalidaTotalExacta_DejaCero(t *testing.T) {
	f := newTxFixture(t)

	_, err := f.uc.Record(context.Background(), inventory.TransactionInput{
		UserID:    "u1",
		ItemID:    "i1",
		Type:      entity.TransactionOut,
		Quantity:  10,
		SalePrice: dec(100),
	})
	require.NoError(t, err)

	item, err := f.itemRepo.GetByID("i1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), item.Quantity)
}

// Venta bajo costo: la ganancia es negativa, no se rechaza.
func TestRecord_VentaBajoCosto_GananciaNegativa(t *testing.T) {
	f := newTxFixture(t)

	tx, err := f.uc.Record(context.Background(), inventory.TransactionInput{
		UserID:    "u1",
		ItemID:    "i1",
		Type:      entity.TransactionOut,
		Quantity:  2,
		SalePrice: dec(80),
	})
	require.NoError(t, err)
	require.NotNil(t, tx.Profit)
	assert.True(t, tx.Profit.Equal(decimal.NewFromInt(-40)),
		"ganancia esperada (80-100)*2 = -40")
}

func TestRecord_SalidaSinPrecioDeVenta_Invalida(t *testing.T) {
	f := newTxFixture(t)

	_, err := f.uc.Record(context.Background(), inventory.TransactionInput{
		UserID:   "u1",
		ItemID:   "i1",
		Type:     entity.TransactionOut,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas (in)
// ──────────────────────────────────────────────────────────────────────────────

// Una entrada suma stock y el asiento no lleva precio de venta ni ganancia.
func TestRecord_EntradaSumaStockSinGanancia(t *testing.T) {
	f := newTxFixture(t)

	tx, err := f.uc.Record(context.Background(), inventory.TransactionInput{
		UserID:   "u1",
		ItemID:   "i1",
		Type:     entity.TransactionIn,
		Quantity: 5,
	})
	require.NoError(t, err)

	assert.Nil(t, tx.SalePrice)
	assert.Nil(t, tx.Profit)

	item, err := f.itemRepo.GetByID("i1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), item.Quantity)
}

// El SalePrice que venga en una entrada se ignora: el asiento queda sin venta.
func TestRecord_EntradaIgnoraPrecioDeVenta(t *testing.T) {
	f := newTxFixture(t)

	tx, err := f.uc.Record(context.Background(), inventory.TransactionInput{
		UserID:    "u1",
		ItemID:    "i1",
		Type:      entity.TransactionIn,
		Quantity:  1,
		SalePrice: dec(999),
	})
	require.NoError(t, err)
	assert.Nil(t, tx.SalePrice)
	assert.Nil(t, tx.Profit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación e inmutabilidad del libro
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_EntradasInvalidas(t *testing.T) {
	f := newTxFixture(t)
	ctx := context.Background()

	cases := []struct {
		nombre string
		input  inventory.TransactionInput
		esperr error
	}{
		{"tipo desconocido", inventory.TransactionInput{UserID: "u1", ItemID: "i1", Type: "transfer", Quantity: 1}, domain.ErrInvalidInput},
		{"cantidad cero", inventory.TransactionInput{UserID: "u1", ItemID: "i1", Type: entity.TransactionIn, Quantity: 0}, domain.ErrInvalidInput},
		{"cantidad negativa", inventory.TransactionInput{UserID: "u1", ItemID: "i1", Type: entity.TransactionIn, Quantity: -2}, domain.ErrInvalidInput},
		{"item vacío", inventory.TransactionInput{UserID: "u1", Type: entity.TransactionIn, Quantity: 1}, domain.ErrInvalidInput},
		{"item inexistente", inventory.TransactionInput{UserID: "u1", ItemID: "fantasma", Type: entity.TransactionIn, Quantity: 1}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := f.uc.Record(ctx, tc.input)
			assert.ErrorIs(t, err, tc.esperr)
		})
	}
}

// El asiento congela el precio al momento del movimiento: editar el item
// después no reescribe la historia.
func TestRecord_AsientoCongelaPrecioDelMomento(t *testing.T) {
	f := newTxFixture(t)

	tx, err := f.uc.Record(context.Background(), inventory.TransactionInput{
		UserID:    "u1",
		ItemID:    "i1",
		Type:      entity.TransactionOut,
		Quantity:  1,
		SalePrice: dec(150),
	})
	require.NoError(t, err)

	// Editar el precio del item después del movimiento.
	item, err := f.itemRepo.GetByID("i1")
	require.NoError(t, err)
	item.UnitPrice = decimal.NewFromInt(500)
	require.NoError(t, f.itemRepo.Update(item))

	saved, err := f.txRepo.GetByID(tx.ID)
	require.NoError(t, err)
	assert.True(t, saved.UnitPrice.Equal(decimal.NewFromInt(100)),
		"el asiento conserva el precio histórico")
}

func TestRecord_ContextoCancelado(t *testing.T) {
	f := newTxFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.uc.Record(ctx, inventory.TransactionInput{
		UserID:   "u1",
		ItemID:   "i1",
		Type:     entity.TransactionIn,
		Quantity: 1,
	})
	assert.Error(t, err)
}
