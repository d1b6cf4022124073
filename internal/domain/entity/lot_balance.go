package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario estampados en balances y en el ledger.
const (
	TxTypeReceipt int16 = 8 // entrada al bin destino
	TxTypeIssue   int16 = 9 // salida del bin origen
)

// LotKey clave única de un balance: un lote de un ítem, en una ubicación, en un bin.
type LotKey struct {
	LotNo       string
	ItemKey     string
	LocationKey string
	BinNo       string
}

// LotBalance saldo de un lote en un bin concreto. Existe exactamente un registro
// por (lote, ítem, ubicación, bin); un saldo que llega a cero se elimina, nunca
// se persiste en cero.
type LotBalance struct {
	LotNo           string
	ItemKey         string
	LocationKey     string
	BinNo           string
	QtyOnHand       decimal.Decimal
	QtyReceived     decimal.Decimal
	QtyIssued       decimal.Decimal
	QtyCommitSales  decimal.Decimal // reservado contra pedidos de venta
	QtyOnOrder      decimal.Decimal
	DateReceived    time.Time
	DateExpiry      time.Time
	VendorKey       string
	VendorLotNo     string
	DocumentNo      string
	DocumentLineNo  int16
	TransactionType int16
	LotStatus       string
	RecUserID       string
	RecDate         time.Time
}

// Key devuelve la clave del balance.
func (b *LotBalance) Key() LotKey {
	return LotKey{LotNo: b.LotNo, ItemKey: b.ItemKey, LocationKey: b.LocationKey, BinNo: b.BinNo}
}

// Available cantidad disponible para trasladar: en mano menos comprometida a ventas.
func (b *LotBalance) Available() decimal.Decimal {
	return b.QtyOnHand.Sub(b.QtyCommitSales)
}
