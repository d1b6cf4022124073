package putaway_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/putaway-api/internal/domain/entity"
	"github.com/jhoicas/putaway-api/internal/domain/putaway"
)

// ──────────────────────────────────────────────────────────────────────────────
// ReduceSource
// ──────────────────────────────────────────────────────────────────────────────

// Variante disponible: solo QtyOnHand baja, lo comprometido no se toca.
func TestReduceSource_Disponible(t *testing.T) {
	mut := putaway.PolicyAvailableQty.ReduceSource(dec("10"), dec("2"), dec("3"))

	assert.False(t, mut.Delete)
	assert.True(t, mut.QtyOnHand.Equal(dec("7")))
	assert.True(t, mut.QtyCommitSales.Equal(dec("2")),
		"la variante disponible no debe tocar lo comprometido")
}

// Saldo que llega exactamente a cero → el registro origen se elimina.
func TestReduceSource_SaldoCeroElimina(t *testing.T) {
	mut := putaway.PolicyAvailableQty.ReduceSource(dec("5"), dec("0"), dec("5"))
	assert.True(t, mut.Delete, "saldo en cero debe marcar el registro para borrado")
}

// Variante comprometida: QtyOnHand y QtyCommitSales bajan juntos.
func TestReduceSource_Comprometido(t *testing.T) {
	mut := putaway.PolicyCommittedStock.ReduceSource(dec("10"), dec("6"), dec("4"))

	assert.False(t, mut.Delete)
	assert.True(t, mut.QtyOnHand.Equal(dec("6")))
	assert.True(t, mut.QtyCommitSales.Equal(dec("2")))
}

// Comprometido acotado en cero: mover más de lo comprometido nunca lo deja negativo.
func TestReduceSource_ComprometidoAcotadoEnCero(t *testing.T) {
	mut := putaway.PolicyCommittedStock.ReduceSource(dec("10"), dec("3"), dec("5"))

	assert.True(t, mut.QtyCommitSales.Equal(decimal.Zero),
		"max(0, comprometido - trasladado): nunca negativo")
	assert.True(t, mut.QtyOnHand.Equal(dec("5")))
}

// ──────────────────────────────────────────────────────────────────────────────
// MergeDestination — consolidación de lote
// ──────────────────────────────────────────────────────────────────────────────

// Trasladar 8 desde A (saldo 8) hacia B (saldo 3): A se elimina y B queda en 11.
func TestConsolidacion_OrigenEliminadoDestinoSumado(t *testing.T) {
	policy := putaway.PolicyAvailableQty

	mutA := policy.ReduceSource(dec("8"), dec("0"), dec("8"))
	assert.True(t, mutA.Delete, "el bin A debe quedar sin registro")

	onHandB, commitB := policy.MergeDestination(dec("3"), dec("0"), dec("8"))
	assert.True(t, onHandB.Equal(dec("11")), "el bin B debe consolidar 3 + 8 = 11")
	assert.True(t, commitB.Equal(decimal.Zero))
}

// Variante comprometida: lo comprometido también viaja al destino.
func TestMergeDestination_ComprometidoViaja(t *testing.T) {
	onHand, commit := putaway.PolicyCommittedStock.MergeDestination(dec("2"), dec("1"), dec("4"))

	assert.True(t, onHand.Equal(dec("6")))
	assert.True(t, commit.Equal(dec("5")))
}

// ──────────────────────────────────────────────────────────────────────────────
// SeedDestination — siembra de un balance nuevo en el destino
// ──────────────────────────────────────────────────────────────────────────────

func srcBalance() *entity.LotBalance {
	return &entity.LotBalance{
		LotNo:        "L-001",
		ItemKey:      "ITEM-A",
		LocationKey:  "WH1",
		BinNo:        "A-01",
		QtyOnHand:    dec("10"),
		QtyReceived:  dec("10"),
		DateReceived: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		DateExpiry:   time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
		VendorKey:    "V-77",
		VendorLotNo:  "VL-123",
		LotStatus:    "P",
	}
}

// Los campos descriptivos del origen sobreviven en el destino aunque el origen
// se borre (traslado total).
func TestSeedDestination_ConservaCamposDelOrigen(t *testing.T) {
	actor, err := entity.NewActorRef("operario1")
	require.NoError(t, err)
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	dest := putaway.PolicyAvailableQty.SeedDestination(srcBalance(), "B-02", dec("10"), "BT-00000042", actor, now)

	assert.Equal(t, "L-001", dest.LotNo)
	assert.Equal(t, "B-02", dest.BinNo, "el destino debe llevar el bin destino, no el origen")
	assert.True(t, dest.QtyOnHand.Equal(dec("10")))
	assert.Equal(t, srcBalance().DateReceived, dest.DateReceived)
	assert.Equal(t, srcBalance().DateExpiry, dest.DateExpiry)
	assert.Equal(t, "V-77", dest.VendorKey)
	assert.Equal(t, "VL-123", dest.VendorLotNo)
	assert.Equal(t, "P", dest.LotStatus)
	assert.Equal(t, "BT-00000042", dest.DocumentNo)
	assert.Equal(t, entity.TxTypeReceipt, dest.TransactionType)
	assert.Equal(t, int16(1), dest.DocumentLineNo)
	assert.Equal(t, actor.String(), dest.RecUserID)
}

// Variante disponible: recibido = cantidad trasladada, comprometido en cero.
func TestSeedDestination_Disponible(t *testing.T) {
	actor, _ := entity.NewActorRef("op")
	dest := putaway.PolicyAvailableQty.SeedDestination(srcBalance(), "B-02", dec("4"), "BT-00000001", actor, time.Now())

	assert.True(t, dest.QtyReceived.Equal(dec("4")))
	assert.True(t, dest.QtyCommitSales.Equal(decimal.Zero))
}

// Variante comprometida: recibido copia el histórico del origen y lo
// comprometido llega con el traslado.
func TestSeedDestination_Comprometido(t *testing.T) {
	actor, _ := entity.NewActorRef("op")
	dest := putaway.PolicyCommittedStock.SeedDestination(srcBalance(), "B-02", dec("4"), "BT-00000001", actor, time.Now())

	assert.True(t, dest.QtyReceived.Equal(dec("10")),
		"la variante comprometida conserva el recibido histórico del origen")
	assert.True(t, dest.QtyCommitSales.Equal(dec("4")))
}

// ──────────────────────────────────────────────────────────────────────────────
// ProcessedFlag
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessedFlag(t *testing.T) {
	assert.Equal(t, entity.ProcessedApplied, putaway.PolicyAvailableQty.ProcessedFlag())
	assert.Equal(t, entity.ProcessedOpen, putaway.PolicyCommittedStock.ProcessedFlag(),
		"los asientos de la variante comprometida nacen abiertos")
}
