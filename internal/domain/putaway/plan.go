package putaway

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/putaway-api/internal/domain"
)

// QuantityTolerance absorbe el ruido de coma flotante que llega del frontend
// (0.001 = 1 gramo cuando la unidad de stock es el kilogramo). Se usa tanto
// para decidir insuficiencia como para reclasificar solicitudes casi exactas
// como traslado total.
var QuantityTolerance = decimal.NewFromFloat(0.001)

// TransferPlan plan aprobado por la capa de validación: cantidad real a mover y
// si el traslado vacía el bin origen.
type TransferPlan struct {
	ActualQty    decimal.Decimal
	FullTransfer bool
}

// PlanTransfer decide la cantidad real a trasladar dada la cantidad en mano y la
// comprometida del bin origen. Paso puro de lectura y decisión, sin efectos.
//
// Reglas:
//   - requested <= 0 -> ValidationError.
//   - requested > disponible + tolerancia -> InsufficientQuantityError.
//   - requested + tolerancia >= disponible -> traslado total: se usa exactamente
//     la cantidad disponible (evita dejar un residuo microscópico que nunca
//     dispararía el borrado del registro origen).
//   - en otro caso la cantidad real es exactamente la solicitada.
func PlanTransfer(qtyOnHand, qtyCommitSales, requested decimal.Decimal) (*TransferPlan, error) {
	if requested.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("la cantidad a trasladar debe ser mayor que 0")
	}

	available := qtyOnHand.Sub(qtyCommitSales)
	if requested.GreaterThan(available.Add(QuantityTolerance)) {
		return nil, &domain.InsufficientQuantityError{Requested: requested, Available: available}
	}

	if requested.Add(QuantityTolerance).GreaterThanOrEqual(available) {
		return &TransferPlan{ActualQty: available, FullTransfer: true}, nil
	}
	return &TransferPlan{ActualQty: requested, FullTransfer: false}, nil
}
