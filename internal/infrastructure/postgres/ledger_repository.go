package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con
// pool o tx). Los asientos son append-only: la única mutación permitida es la
// corrección de bin de ReassignOpenIssues.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// CreateIssue persiste el asiento de salida (tipo 9) en el bin origen y
// devuelve el lot_tran_no generado por la secuencia de la tabla.
func (r *LedgerRepo) CreateIssue(e *entity.LedgerEntry) (int64, error) {
	query := `
		INSERT INTO lot_transactions (
			lot_no, item_key, location_key, bin_no, transaction_type,
			issue_doc_no, issue_doc_line_no, issue_date, qty_issued,
			date_received, date_expiry, vendor_key, vendor_lot_no, customer_key,
			processed, rec_user_id, rec_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING lot_tran_no`
	var lotTranNo int64
	err := r.q.QueryRow(context.Background(), query,
		e.LotNo, e.ItemKey, e.LocationKey, e.BinNo, e.TransactionType,
		e.IssueDocNo, e.IssueDocLineNo, e.IssueDate, e.QtyIssued,
		e.DateReceived, e.DateExpiry, e.VendorKey, e.VendorLotNo, e.CustomerKey,
		e.Processed, e.RecUserID, e.RecDate,
	).Scan(&lotTranNo)
	if err != nil {
		return 0, domain.NewTransactionError("create issue entry", err)
	}
	return lotTranNo, nil
}

// CreateReceipt persiste el asiento de entrada (tipo 8) en el bin destino.
func (r *LedgerRepo) CreateReceipt(e *entity.LedgerEntry) error {
	query := `
		INSERT INTO lot_transactions (
			lot_no, item_key, location_key, bin_no, transaction_type,
			receipt_doc_no, receipt_doc_line_no, qty_received,
			date_received, date_expiry, vendor_key, vendor_lot_no, customer_key,
			processed, rec_user_id, rec_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		e.LotNo, e.ItemKey, e.LocationKey, e.BinNo, e.TransactionType,
		e.ReceiptDocNo, e.ReceiptDocLineNo, e.QtyReceived,
		e.DateReceived, e.DateExpiry, e.VendorKey, e.VendorLotNo, e.CustomerKey,
		e.Processed, e.RecUserID, e.RecDate,
	)
	if err != nil {
		return domain.NewTransactionError("create receipt entry", err)
	}
	return nil
}

// ReassignOpenIssues corrige el bin de los asientos de salida abiertos
// (processed = 'N') de un lote, moviéndolos del bin origen al destino. Solo la
// variante de stock comprometido la usa: el compromiso vivo debe seguir a la
// unidad física. La suma acumulada por lot_tran_no acota la reasignación a los
// asientos preexistentes cubiertos por la cantidad movida; el resto permanece
// en el origen respaldando el compromiso residual. El asiento de salida del
// propio traslado (excludeTranNo) nunca se reasigna.
func (r *LedgerRepo) ReassignOpenIssues(lotNo, binFrom, binTo string, maxQty decimal.Decimal, excludeTranNo int64) error {
	query := `
		UPDATE lot_transactions
		SET bin_no = $3
		WHERE lot_tran_no IN (
			SELECT lot_tran_no FROM (
				SELECT lot_tran_no,
				       SUM(qty_issued) OVER (ORDER BY lot_tran_no ASC) AS qty_acumulada
				FROM lot_transactions
				WHERE lot_no = $1 AND bin_no = $2
				  AND transaction_type = $4 AND processed = $5
				  AND lot_tran_no <> $6
			) abiertos
			WHERE abiertos.qty_acumulada <= $7
		)`
	_, err := r.q.Exec(context.Background(), query,
		lotNo, binFrom, binTo, entity.TxTypeIssue, entity.ProcessedOpen,
		excludeTranNo, maxQty)
	if err != nil {
		return domain.NewTransactionError("reassign open issues", err)
	}
	return nil
}

// ListOpenByLotAndBin lista los asientos abiertos de un lote en un bin, con el
// nombre legible del tipo de transacción.
func (r *LedgerRepo) ListOpenByLotAndBin(lotNo, binNo string) ([]*entity.LedgerView, error) {
	query := `
		SELECT lot_tran_no, lot_no, bin_no,
		       COALESCE(NULLIF(issue_doc_no, ''), receipt_doc_no),
		       CASE WHEN issue_doc_no <> '' THEN issue_doc_line_no ELSE receipt_doc_line_no END,
		       CASE WHEN transaction_type = $3 THEN qty_issued ELSE qty_received END,
		       transaction_type,
		       CASE transaction_type
		           WHEN $3 THEN 'Issue'
		           WHEN $4 THEN 'Receipt'
		           ELSE 'Other'
		       END,
		       rec_date, processed
		FROM lot_transactions
		WHERE lot_no = $1 AND bin_no = $2 AND processed = $5
		ORDER BY lot_tran_no ASC`
	rows, err := r.q.Query(context.Background(), query,
		lotNo, binNo, entity.TxTypeIssue, entity.TxTypeReceipt, entity.ProcessedOpen)
	if err != nil {
		return nil, domain.NewDatabaseError("list open ledger entries", err)
	}
	defer rows.Close()

	var list []*entity.LedgerView
	for rows.Next() {
		var v entity.LedgerView
		if err := rows.Scan(
			&v.LotTranNo, &v.LotNo, &v.BinNo, &v.DocNo, &v.DocLineNo,
			&v.Qty, &v.TransactionType, &v.TranTypeName, &v.RecDate, &v.Processed,
		); err != nil {
			return nil, domain.NewDatabaseError("scan ledger view", err)
		}
		list = append(list, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewDatabaseError("list open ledger entries", err)
	}
	return list, nil
}
