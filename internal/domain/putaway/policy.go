package putaway

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
)

// MovementPolicy decide qué campos del balance se mueven en un traslado. Los dos
// protocolos comparten la orquestación completa y difieren solo aquí.
type MovementPolicy int

const (
	// PolicyAvailableQty mueve cantidad disponible: solo QtyOnHand cambia.
	PolicyAvailableQty MovementPolicy = iota
	// PolicyCommittedStock mueve stock comprometido: QtyOnHand y QtyCommitSales
	// viajan juntos, porque la reserva de venta debe seguir a la unidad física.
	PolicyCommittedStock
)

// ProcessedFlag estado con el que se crean los asientos del ledger. La variante
// comprometida los deja abiertos ('N'): representan compromisos vivos.
func (p MovementPolicy) ProcessedFlag() string {
	if p == PolicyCommittedStock {
		return entity.ProcessedOpen
	}
	return entity.ProcessedApplied
}

// SourceMutation resultado de aplicar la política al balance origen.
type SourceMutation struct {
	Delete         bool // QtyOnHand quedó en cero o menos: el registro se elimina
	QtyOnHand      decimal.Decimal
	QtyCommitSales decimal.Decimal
}

// ReduceSource recalcula el balance origen tras restar la cantidad trasladada.
// La variante comprometida además reduce lo comprometido, acotado en cero (nunca
// negativo).
func (p MovementPolicy) ReduceSource(onHand, commitSales, qty decimal.Decimal) SourceMutation {
	newOnHand := onHand.Sub(qty)
	newCommit := commitSales
	if p == PolicyCommittedStock {
		newCommit = commitSales.Sub(qty)
		if newCommit.IsNegative() {
			newCommit = decimal.Zero
		}
	}
	return SourceMutation{
		Delete:         newOnHand.LessThanOrEqual(decimal.Zero),
		QtyOnHand:      newOnHand,
		QtyCommitSales: newCommit,
	}
}

// MergeDestination suma la cantidad trasladada a un balance ya existente en el
// bin destino (consolidación de lote: dos bins pueden recibir el mismo lote en
// momentos distintos y deben terminar en un único registro por bin).
func (p MovementPolicy) MergeDestination(onHand, commitSales, qty decimal.Decimal) (newOnHand, newCommit decimal.Decimal) {
	newOnHand = onHand.Add(qty)
	newCommit = commitSales
	if p == PolicyCommittedStock {
		newCommit = commitSales.Add(qty)
	}
	return newOnHand, newCommit
}

// SeedDestination construye el balance nuevo del bin destino cuando el lote no
// existía allí, sembrado con los campos descriptivos del origen capturados antes
// de cualquier mutación (un traslado total borra el registro origen y esos
// campos deben sobrevivir).
func (p MovementPolicy) SeedDestination(src *entity.LotBalance, binTo string, qty decimal.Decimal, docNo string, actor entity.ActorRef, at time.Time) *entity.LotBalance {
	dest := &entity.LotBalance{
		LotNo:           src.LotNo,
		ItemKey:         src.ItemKey,
		LocationKey:     src.LocationKey,
		BinNo:           binTo,
		QtyOnHand:       qty,
		QtyReceived:     qty,
		QtyIssued:       decimal.Zero,
		QtyCommitSales:  decimal.Zero,
		QtyOnOrder:      decimal.Zero,
		DateReceived:    src.DateReceived,
		DateExpiry:      src.DateExpiry,
		VendorKey:       src.VendorKey,
		VendorLotNo:     src.VendorLotNo,
		DocumentNo:      docNo,
		DocumentLineNo:  1,
		TransactionType: entity.TxTypeReceipt,
		LotStatus:       src.LotStatus,
		RecUserID:       actor.String(),
		RecDate:         at,
	}
	if p == PolicyCommittedStock {
		dest.QtyReceived = src.QtyReceived
		dest.QtyCommitSales = qty
	}
	return dest
}
