package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest entrada para ejecutar un traslado de bin.
type TransferRequest struct {
	LotNo       string          `json:"lot_no" validate:"required"`
	ItemKey     string          `json:"item_key" validate:"required"`
	Location    string          `json:"location" validate:"required"`
	BinFrom     string          `json:"bin_from" validate:"required"`
	BinTo       string          `json:"bin_to" validate:"required"`
	TransferQty decimal.Decimal `json:"transfer_qty" validate:"required"`
	Remarks     string          `json:"remarks"`
	Reference   string          `json:"reference"`
}

// TransferResponse resultado de un traslado aplicado.
type TransferResponse struct {
	DocumentNo   string          `json:"document_no"`
	LotNo        string          `json:"lot_no"`
	ItemKey      string          `json:"item_key"`
	BinFrom      string          `json:"bin_from"`
	BinTo        string          `json:"bin_to"`
	TransferQty  decimal.Decimal `json:"transfer_qty"`
	FullTransfer bool            `json:"full_transfer"`
	// Estados de lote leídos después de aplicar el traslado; vacíos si la
	// lectura de enriquecimiento falla (el traslado ya está confirmado).
	SourceLotStatus string    `json:"source_lot_status,omitempty"`
	DestLotStatus   string    `json:"dest_lot_status,omitempty"`
	TransferredAt   time.Time `json:"transferred_at"`
}

// ValidateTransferRequest entrada para la validación previa (sin efectos).
type ValidateTransferRequest struct {
	LotNo       string          `json:"lot_no" validate:"required"`
	ItemKey     string          `json:"item_key" validate:"required"`
	Location    string          `json:"location" validate:"required"`
	BinFrom     string          `json:"bin_from" validate:"required"`
	BinTo       string          `json:"bin_to" validate:"required"`
	TransferQty decimal.Decimal `json:"transfer_qty" validate:"required"`
}

// ValidateTransferResponse veredicto de la validación previa.
type ValidateTransferResponse struct {
	Valid        bool            `json:"valid"`
	ActualQty    decimal.Decimal `json:"actual_qty"`
	FullTransfer bool            `json:"full_transfer"`
	QtyOnHand    decimal.Decimal `json:"qty_on_hand"`
	QtyAvailable decimal.Decimal `json:"qty_available"`
	Message      string          `json:"message,omitempty"`
}

// LotResponse posición de un lote con sus datos maestros (lookup por número).
type LotResponse struct {
	LotNo           string          `json:"lot_no"`
	ItemKey         string          `json:"item_key"`
	ItemDescription string          `json:"item_description"`
	Location        string          `json:"location"`
	BinNo           string          `json:"bin_no"`
	QtyOnHand       decimal.Decimal `json:"qty_on_hand"`
	QtyCommitSales  decimal.Decimal `json:"qty_commit_sales"`
	QtyAvailable    decimal.Decimal `json:"qty_available"`
	DateReceived    *time.Time      `json:"date_received,omitempty"`
	DateExpiry      *time.Time      `json:"date_expiry,omitempty"`
	VendorLotNo     string          `json:"vendor_lot_no,omitempty"`
	UOM             string          `json:"uom"`
	LotStatus       string          `json:"lot_status"`
}

// LotSearchItem fila de búsqueda paginada de lotes.
type LotSearchItem struct {
	LotNo           string          `json:"lot_no"`
	ItemKey         string          `json:"item_key"`
	ItemDescription string          `json:"item_description"`
	Location        string          `json:"location"`
	BinNo           string          `json:"bin_no"`
	QtyOnHand       decimal.Decimal `json:"qty_on_hand"`
	QtyAvailable    decimal.Decimal `json:"qty_available"`
	DateReceived    *time.Time      `json:"date_received,omitempty"`
	DateExpiry      *time.Time      `json:"date_expiry,omitempty"`
	UOM             string          `json:"uom"`
	LotStatus       string          `json:"lot_status"`
}

// LotSearchResponse página de resultados de lotes.
type LotSearchResponse struct {
	Items []LotSearchItem `json:"items"`
	Page  PageResponse    `json:"page"`
}

// BinSearchItem fila de búsqueda de bins. LotStatus solo viene cuando la
// búsqueda lleva contexto de lote.
type BinSearchItem struct {
	BinNo       string  `json:"bin_no"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Aisle       string  `json:"aisle,omitempty"`
	Row         string  `json:"row,omitempty"`
	Rack        string  `json:"rack,omitempty"`
	LotStatus   *string `json:"lot_status,omitempty"`
}

// BinSearchResponse página de resultados de bins.
type BinSearchResponse struct {
	Items []BinSearchItem `json:"items"`
	Page  PageResponse    `json:"page"`
}

// BinValidateResponse veredicto de existencia de un bin en una ubicación.
type BinValidateResponse struct {
	Valid    bool   `json:"valid"`
	BinNo    string `json:"bin_no"`
	Location string `json:"location"`
}

// LedgerEntryResponse asiento abierto de un lote en un bin.
type LedgerEntryResponse struct {
	LotTranNo       int64           `json:"lot_tran_no"`
	LotNo           string          `json:"lot_no"`
	BinNo           string          `json:"bin_no"`
	DocNo           string          `json:"doc_no"`
	DocLineNo       int16           `json:"doc_line_no"`
	Qty             decimal.Decimal `json:"qty"`
	TransactionType int16           `json:"transaction_type"`
	TranTypeName    string          `json:"tran_type_name"`
	RecDate         time.Time       `json:"rec_date"`
}

// RemarkResponse observación predefinida para la UI.
type RemarkResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// HealthResponse estado del servicio y su conexión al store.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version,omitempty"`
}
