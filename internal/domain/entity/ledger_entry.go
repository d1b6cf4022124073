package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de procesamiento de un asiento del ledger.
const (
	ProcessedApplied = "Y" // movimiento ya aplicado al saldo
	ProcessedOpen    = "N" // pendiente: representa un compromiso vivo
)

// LedgerEntry asiento inmutable de auditoría de un lado del movimiento (salida o
// entrada). Por cada traslado se crean dos: uno tipo 9 en el bin origen y uno
// tipo 8 en el bin destino, ambos referenciando el mismo número de documento.
// Nunca se actualiza después de creado, salvo la corrección de bin usada por la
// variante de stock comprometido.
type LedgerEntry struct {
	LotTranNo       int64
	LotNo           string
	ItemKey         string
	LocationKey     string
	BinNo           string
	TransactionType int16
	IssueDocNo      string
	IssueDocLineNo  int16
	IssueDate       time.Time
	QtyIssued       decimal.Decimal
	ReceiptDocNo    string
	ReceiptDocLineNo int16
	QtyReceived     decimal.Decimal
	DateReceived    time.Time
	DateExpiry      time.Time
	VendorKey       string
	VendorLotNo     string
	CustomerKey     string
	Processed       string
	RecUserID       string
	RecDate         time.Time
}

// LedgerView proyección de lectura de asientos abiertos para un lote/bin, con el
// nombre legible del tipo de transacción (para la UI de selección).
type LedgerView struct {
	LotTranNo       int64
	LotNo           string
	BinNo           string
	DocNo           string
	DocLineNo       int16
	Qty             decimal.Decimal
	TransactionType int16
	TranTypeName    string
	RecDate         time.Time
	Processed       string
}
