package putaway_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/putaway"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// PlanTransfer — validación de cantidad
// ──────────────────────────────────────────────────────────────────────────────

// Cantidad cero o negativa → ValidationError.
func TestPlanTransfer_CantidadCeroRechazada(t *testing.T) {
	_, err := putaway.PlanTransfer(dec("10"), dec("0"), decimal.Zero)
	require.Error(t, err)

	var valErr *domain.ValidationError
	assert.ErrorAs(t, err, &valErr, "cantidad cero debe producir ValidationError")
}

func TestPlanTransfer_CantidadNegativaRechazada(t *testing.T) {
	_, err := putaway.PlanTransfer(dec("10"), dec("0"), dec("-1"))
	require.Error(t, err)

	var valErr *domain.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

// Solicitado claramente mayor que disponible + tolerancia → insuficiencia.
func TestPlanTransfer_CantidadInsuficiente(t *testing.T) {
	// disponible = 5.0, solicitado = 5.002 > 5.0 + 0.001
	_, err := putaway.PlanTransfer(dec("5.0"), dec("0"), dec("5.002"))
	require.Error(t, err)

	var qtyErr *domain.InsufficientQuantityError
	require.ErrorAs(t, err, &qtyErr)
	assert.True(t, qtyErr.Requested.Equal(dec("5.002")))
	assert.True(t, qtyErr.Available.Equal(dec("5.0")))
}

// La cantidad comprometida reduce lo disponible.
func TestPlanTransfer_ComprometidoReduceDisponible(t *testing.T) {
	// en mano 10, comprometido 6 → disponible 4; pedir 5 es insuficiente
	_, err := putaway.PlanTransfer(dec("10"), dec("6"), dec("5"))
	var qtyErr *domain.InsufficientQuantityError
	require.ErrorAs(t, err, &qtyErr)
	assert.True(t, qtyErr.Available.Equal(dec("4")))
}

// ──────────────────────────────────────────────────────────────────────────────
// PlanTransfer — tolerancia y traslado total
// ──────────────────────────────────────────────────────────────────────────────

// Solicitado 10.0005 con disponible 10.0: dentro de tolerancia, se reclasifica
// como traslado total con exactamente la cantidad disponible.
func TestPlanTransfer_DentroDeToleranciaEsTrasladoTotal(t *testing.T) {
	plan, err := putaway.PlanTransfer(dec("10.0"), dec("0"), dec("10.0005"))
	require.NoError(t, err)

	assert.True(t, plan.FullTransfer, "10.0005 sobre 10.0 debe ser traslado total")
	assert.True(t, plan.ActualQty.Equal(dec("10.0")),
		"la cantidad real debe ser exactamente la disponible, no la solicitada")
}

// Solicitado 5.0 con disponible 5.0009: la diferencia (0.0009) cae dentro de la
// tolerancia, también es traslado total.
func TestPlanTransfer_ResiduoMicroscopicoEsTrasladoTotal(t *testing.T) {
	plan, err := putaway.PlanTransfer(dec("5.0009"), dec("0"), dec("5.0"))
	require.NoError(t, err)

	assert.True(t, plan.FullTransfer,
		"dejar un residuo de 0.0009 debe reclasificarse como traslado total")
	assert.True(t, plan.ActualQty.Equal(dec("5.0009")))
}

// Solicitado exactamente igual al disponible → traslado total.
func TestPlanTransfer_CantidadExactaEsTrasladoTotal(t *testing.T) {
	plan, err := putaway.PlanTransfer(dec("7.5"), dec("0"), dec("7.5"))
	require.NoError(t, err)

	assert.True(t, plan.FullTransfer)
	assert.True(t, plan.ActualQty.Equal(dec("7.5")))
}

// Traslado parcial normal: la cantidad real es exactamente la solicitada.
func TestPlanTransfer_TrasladoParcial(t *testing.T) {
	plan, err := putaway.PlanTransfer(dec("10.0"), dec("0"), dec("4.0"))
	require.NoError(t, err)

	assert.False(t, plan.FullTransfer)
	assert.True(t, plan.ActualQty.Equal(dec("4.0")))
}

// ──────────────────────────────────────────────────────────────────────────────
// FormatDocumentNo
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatDocumentNo_RellenoConCeros(t *testing.T) {
	assert.Equal(t, "BT-00001234", putaway.FormatDocumentNo(1234))
	assert.Equal(t, "BT-00000001", putaway.FormatDocumentNo(1))
	assert.Equal(t, "BT-99999999", putaway.FormatDocumentNo(99999999))
	// Más de 8 dígitos: el número no se trunca
	assert.Equal(t, "BT-100000000", putaway.FormatDocumentNo(100000000))
}

// ──────────────────────────────────────────────────────────────────────────────
// MapItemClassToAccount
// ──────────────────────────────────────────────────────────────────────────────

func TestMapItemClassToAccount(t *testing.T) {
	assert.Equal(t, "1140", putaway.MapItemClassToAccount("1000"))
	assert.Equal(t, "1130", putaway.MapItemClassToAccount("2000"))
	assert.Equal(t, "1135", putaway.MapItemClassToAccount("3000"))
	assert.Equal(t, "1130", putaway.MapItemClassToAccount("desconocida"),
		"clases sin mapeo deben caer en la cuenta por defecto")
}
