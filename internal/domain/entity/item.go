package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item datos maestros de un ítem (solo lectura para este core).
type Item struct {
	ItemKey     string
	Desc1       string
	Desc2       string
	StockUOM    string
	PurchaseUOM string
	SalesUOM    string
}

// ItemLocation parametrización de un ítem en una ubicación: clase de inventario
// (para el mapeo de cuenta GL) y costo estándar.
type ItemLocation struct {
	ItemKey    string
	Location   string
	InClassKey string
	RevAcct    string
	CogsAcct   string
	StdCost    decimal.Decimal
}

// Remark observación predefinida para el dropdown de traslados en la UI.
type Remark struct {
	ID     int
	Name   string
	Active bool
}

// LotSummary resultado de búsqueda paginada de lotes con saldo positivo.
type LotSummary struct {
	LotNo           string
	ItemKey         string
	ItemDescription string
	Location        string
	BinNo           string
	QtyOnHand       decimal.Decimal
	QtyCommitSales  decimal.Decimal
	QtyAvailable    decimal.Decimal
	DateReceived    *time.Time
	DateExpiry      *time.Time
	UOM             string
	LotStatus       string
}
