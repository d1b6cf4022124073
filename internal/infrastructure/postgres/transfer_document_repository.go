package postgres

import (
	"context"

	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

var _ repository.TransferDocumentRepository = (*TransferDocumentRepo)(nil)

// TransferDocumentRepo implementación de TransferDocumentRepository sobre
// PostgreSQL (usable con pool o tx). Los documentos son write-once.
type TransferDocumentRepo struct {
	q Querier
}

// NewTransferDocumentRepository construye el adaptador de documentos. Pasar pool o tx (Querier).
func NewTransferDocumentRepository(q Querier) *TransferDocumentRepo {
	return &TransferDocumentRepo{q: q}
}

// Create persiste el documento de traslado.
func (r *TransferDocumentRepo) Create(d *entity.TransferDocument) error {
	query := `
		INSERT INTO bin_transfers (
			id, document_no, item_key, location_key, lot_no,
			bin_from, bin_to, lot_tran_no, qty_on_hand, transfer_qty,
			rec_user_id, rec_date, remarks, reference
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.DocumentNo, d.ItemKey, d.LocationKey, d.LotNo,
		d.BinFrom, d.BinTo, d.LotTranNo, d.QtyOnHand, d.TransferQty,
		d.RecUserID, d.RecDate, d.Remarks, d.Reference,
	)
	if err != nil {
		return domain.NewTransactionError("create transfer document", err)
	}
	return nil
}
