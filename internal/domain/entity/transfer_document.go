package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferDocument resumen de un traslado de bin, identificado por el número de
// documento asignado por el secuenciador (prefijo fijo + secuencia con ceros).
// Se escribe una sola vez por traslado orquestado.
type TransferDocument struct {
	ID          string // uuid
	DocumentNo  string
	ItemKey     string
	LocationKey string
	LotNo       string
	BinFrom     string
	BinTo       string
	LotTranNo   int64           // referencia cruzada al asiento de salida
	QtyOnHand   decimal.Decimal // saldo del bin origen antes del traslado
	TransferQty decimal.Decimal
	RecUserID   string
	RecDate     time.Time
	Remarks     string
	Reference   string
}

// GLEntry registro contable/de costo del movimiento (rastro para el GL). Uno por
// traslado, creado antes de los asientos del ledger.
type GLEntry struct {
	ID          string // uuid
	ItemKey     string
	LocationKey string
	DocNo       string
	DocDate     time.Time
	TrnDesc     string
	NLAcct      string
	INAcct      string
	StdCost     decimal.Decimal
	RecUserID   string
	RecDate     time.Time
}
