package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

var _ repository.LotBalanceRepository = (*LotBalanceRepo)(nil)

// Columnas del balance en el orden de escaneo de scanBalance.
const lotBalanceColumns = `
	lot_no, item_key, location_key, bin_no,
	qty_on_hand, qty_received, qty_issued, qty_commit_sales, qty_on_order,
	date_received, date_expiry, vendor_key, vendor_lot_no,
	document_no, document_line_no, transaction_type, lot_status,
	rec_user_id, rec_date`

// LotBalanceRepo implementación de LotBalanceRepository sobre PostgreSQL
// (usable con pool o tx).
type LotBalanceRepo struct {
	q Querier
}

// NewLotBalanceRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewLotBalanceRepository(q Querier) *LotBalanceRepo {
	return &LotBalanceRepo{q: q}
}

// Get devuelve el balance de la clave, o nil si no existe.
func (r *LotBalanceRepo) Get(key entity.LotKey) (*entity.LotBalance, error) {
	query := `
		SELECT ` + lotBalanceColumns + `
		FROM lot_balances
		WHERE lot_no = $1 AND item_key = $2 AND location_key = $3 AND bin_no = $4`
	b, err := scanBalance(r.q.QueryRow(context.Background(), query,
		key.LotNo, key.ItemKey, key.LocationKey, key.BinNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewDatabaseError("get lot balance", err)
	}
	return b, nil
}

// FindByLotNo busca la primera posición con saldo positivo de un lote y
// devuelve el balance junto con los datos maestros del ítem.
func (r *LotBalanceRepo) FindByLotNo(lotNo string) (*entity.LotBalance, *entity.Item, error) {
	query := `
		SELECT b.lot_no, b.item_key, b.location_key, b.bin_no,
		       b.qty_on_hand, b.qty_received, b.qty_issued, b.qty_commit_sales, b.qty_on_order,
		       b.date_received, b.date_expiry, b.vendor_key, b.vendor_lot_no,
		       b.document_no, b.document_line_no, b.transaction_type, b.lot_status,
		       b.rec_user_id, b.rec_date,
		       i.item_key, i.desc1, i.desc2, i.stock_uom, i.purchase_uom, i.sales_uom
		FROM lot_balances b
		JOIN items i ON i.item_key = b.item_key
		WHERE b.lot_no = $1 AND b.qty_on_hand > 0
		ORDER BY b.bin_no ASC
		LIMIT 1`
	var b entity.LotBalance
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, lotNo).Scan(
		&b.LotNo, &b.ItemKey, &b.LocationKey, &b.BinNo,
		&b.QtyOnHand, &b.QtyReceived, &b.QtyIssued, &b.QtyCommitSales, &b.QtyOnOrder,
		&b.DateReceived, &b.DateExpiry, &b.VendorKey, &b.VendorLotNo,
		&b.DocumentNo, &b.DocumentLineNo, &b.TransactionType, &b.LotStatus,
		&b.RecUserID, &b.RecDate,
		&it.ItemKey, &it.Desc1, &it.Desc2, &it.StockUOM, &it.PurchaseUOM, &it.SalesUOM,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, domain.NewDatabaseError("find lot by number", err)
	}
	return &b, &it, nil
}

// LockPair bloquea con FOR UPDATE los balances del lote en los bins origen y
// destino, en una sola sentencia y en orden ascendente de bin. El orden global
// fijo de adquisición es lo que previene deadlocks entre traslados cruzados
// concurrentes (A->B y B->A).
func (r *LotBalanceRepo) LockPair(key entity.LotKey, binTo string) ([]*entity.LotBalance, error) {
	query := `
		SELECT ` + lotBalanceColumns + `
		FROM lot_balances
		WHERE lot_no = $1 AND item_key = $2 AND location_key = $3 AND bin_no IN ($4, $5)
		ORDER BY bin_no ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query,
		key.LotNo, key.ItemKey, key.LocationKey, key.BinNo, binTo)
	if err != nil {
		return nil, domain.NewDatabaseError("lock lot balances", err)
	}
	defer rows.Close()

	var out []*entity.LotBalance
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, domain.NewDatabaseError("scan locked balance", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewDatabaseError("lock lot balances", err)
	}
	return out, nil
}

// Insert crea un balance nuevo (primer ingreso del lote a un bin).
func (r *LotBalanceRepo) Insert(b *entity.LotBalance) error {
	query := `
		INSERT INTO lot_balances (` + lotBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		b.LotNo, b.ItemKey, b.LocationKey, b.BinNo,
		b.QtyOnHand, b.QtyReceived, b.QtyIssued, b.QtyCommitSales, b.QtyOnOrder,
		b.DateReceived, b.DateExpiry, b.VendorKey, b.VendorLotNo,
		b.DocumentNo, b.DocumentLineNo, b.TransactionType, b.LotStatus,
		b.RecUserID, b.RecDate,
	)
	if err != nil {
		return domain.NewTransactionError("insert lot balance", err)
	}
	return nil
}

// UpdateQuantities fija las cantidades del balance y lo estampa con el
// documento y tipo de transacción del traslado.
func (r *LotBalanceRepo) UpdateQuantities(key entity.LotKey, qtyOnHand, qtyCommitSales decimal.Decimal, docNo string, txType int16, actor entity.ActorRef, at time.Time) error {
	query := `
		UPDATE lot_balances
		SET qty_on_hand = $5, qty_commit_sales = $6,
		    document_no = $7, transaction_type = $8,
		    rec_user_id = $9, rec_date = $10
		WHERE lot_no = $1 AND item_key = $2 AND location_key = $3 AND bin_no = $4`
	tag, err := r.q.Exec(context.Background(), query,
		key.LotNo, key.ItemKey, key.LocationKey, key.BinNo,
		qtyOnHand, qtyCommitSales, docNo, txType, actor.String(), at,
	)
	if err != nil {
		return domain.NewTransactionError("update lot balance", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewTransactionError("update lot balance", errors.New("balance inexistente"))
	}
	return nil
}

// Delete elimina el balance (saldo llegó a cero).
func (r *LotBalanceRepo) Delete(key entity.LotKey) error {
	query := `
		DELETE FROM lot_balances
		WHERE lot_no = $1 AND item_key = $2 AND location_key = $3 AND bin_no = $4`
	_, err := r.q.Exec(context.Background(), query,
		key.LotNo, key.ItemKey, key.LocationKey, key.BinNo)
	if err != nil {
		return domain.NewTransactionError("delete lot balance", err)
	}
	return nil
}

// GetStatus devuelve el estado del lote en un bin, o nil si el registro no existe.
func (r *LotBalanceRepo) GetStatus(key entity.LotKey) (*string, error) {
	query := `
		SELECT lot_status FROM lot_balances
		WHERE lot_no = $1 AND item_key = $2 AND location_key = $3 AND bin_no = $4`
	var status string
	err := r.q.QueryRow(context.Background(), query,
		key.LotNo, key.ItemKey, key.LocationKey, key.BinNo).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewDatabaseError("get lot status", err)
	}
	return &status, nil
}

// Search lista lotes con saldo positivo, con filtro de texto libre opcional
// (lote, ítem o descripción) y paginación. Devuelve la página y el total.
func (r *LotBalanceRepo) Search(query string, limit, offset int) ([]*entity.LotSummary, int, error) {
	pattern := "%" + query + "%"
	countSQL := `
		SELECT COUNT(*)
		FROM lot_balances b
		JOIN items i ON i.item_key = b.item_key
		WHERE b.qty_on_hand > 0
		  AND ($1 = '%%' OR b.lot_no ILIKE $1 OR b.item_key ILIKE $1 OR i.desc1 ILIKE $1)`
	var total int
	if err := r.q.QueryRow(context.Background(), countSQL, pattern).Scan(&total); err != nil {
		return nil, 0, domain.NewDatabaseError("count lots", err)
	}

	listSQL := `
		SELECT b.lot_no, b.item_key, i.desc1, b.location_key, b.bin_no,
		       b.qty_on_hand, b.qty_commit_sales, b.qty_on_hand - b.qty_commit_sales,
		       b.date_received, b.date_expiry, i.stock_uom, b.lot_status
		FROM lot_balances b
		JOIN items i ON i.item_key = b.item_key
		WHERE b.qty_on_hand > 0
		  AND ($1 = '%%' OR b.lot_no ILIKE $1 OR b.item_key ILIKE $1 OR i.desc1 ILIKE $1)
		ORDER BY b.lot_no ASC, b.bin_no ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), listSQL, pattern, limit, offset)
	if err != nil {
		return nil, 0, domain.NewDatabaseError("search lots", err)
	}
	defer rows.Close()

	var list []*entity.LotSummary
	for rows.Next() {
		var s entity.LotSummary
		if err := rows.Scan(
			&s.LotNo, &s.ItemKey, &s.ItemDescription, &s.Location, &s.BinNo,
			&s.QtyOnHand, &s.QtyCommitSales, &s.QtyAvailable,
			&s.DateReceived, &s.DateExpiry, &s.UOM, &s.LotStatus,
		); err != nil {
			return nil, 0, domain.NewDatabaseError("scan lot summary", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.NewDatabaseError("search lots", err)
	}
	return list, total, nil
}

// scanBalance escanea una fila con las columnas de lotBalanceColumns.
func scanBalance(row pgx.Row) (*entity.LotBalance, error) {
	var b entity.LotBalance
	err := row.Scan(
		&b.LotNo, &b.ItemKey, &b.LocationKey, &b.BinNo,
		&b.QtyOnHand, &b.QtyReceived, &b.QtyIssued, &b.QtyCommitSales, &b.QtyOnOrder,
		&b.DateReceived, &b.DateExpiry, &b.VendorKey, &b.VendorLotNo,
		&b.DocumentNo, &b.DocumentLineNo, &b.TransactionType, &b.LotStatus,
		&b.RecUserID, &b.RecDate,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
