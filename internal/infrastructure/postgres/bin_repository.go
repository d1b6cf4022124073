package postgres

import (
	"context"

	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

var _ repository.BinRepository = (*BinRepo)(nil)

// BinRepo implementación de BinRepository sobre PostgreSQL (solo lectura).
type BinRepo struct {
	q Querier
}

// NewBinRepository construye el adaptador de bins. Pasar pool o tx (Querier).
func NewBinRepository(q Querier) *BinRepo {
	return &BinRepo{q: q}
}

// Exists verifica que el bin exista para la ubicación.
func (r *BinRepo) Exists(location, binNo string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bins WHERE location = $1 AND bin_no = $2)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, location, binNo).Scan(&exists)
	if err != nil {
		return false, domain.NewDatabaseError("bin exists", err)
	}
	return exists, nil
}

// Search lista bins con filtro de texto libre opcional y paginación. Con
// contexto de lote, cada bin trae el estado del lote si ya lo contiene (LEFT
// JOIN contra los saldos). El conteo aplica los mismos filtros que el listado
// de su rama, incluido el de ubicación.
func (r *BinRepo) Search(query string, lotCtx *repository.BinLotContext, limit, offset int) ([]*entity.BinSummary, int, error) {
	pattern := "%" + query + "%"

	var list []*entity.BinSummary
	if lotCtx != nil {
		countSQL := `
			SELECT COUNT(*) FROM bins
			WHERE ($1 = '%%' OR bin_no ILIKE $1 OR description ILIKE $1)
			  AND location = $2`
		var total int
		if err := r.q.QueryRow(context.Background(), countSQL, pattern, lotCtx.Location).Scan(&total); err != nil {
			return nil, 0, domain.NewDatabaseError("count bins", err)
		}
		listSQL := `
			SELECT b.bin_no, b.location, b.description, b.aisle, b.row, b.rack, lb.lot_status
			FROM bins b
			LEFT JOIN lot_balances lb
			  ON lb.bin_no = b.bin_no AND lb.location_key = b.location
			 AND lb.lot_no = $4 AND lb.item_key = $5
			WHERE ($1 = '%%' OR b.bin_no ILIKE $1 OR b.description ILIKE $1)
			  AND b.location = $6
			ORDER BY b.bin_no ASC
			LIMIT $2 OFFSET $3`
		rows, err := r.q.Query(context.Background(), listSQL,
			pattern, limit, offset, lotCtx.LotNo, lotCtx.ItemKey, lotCtx.Location)
		if err != nil {
			return nil, 0, domain.NewDatabaseError("search bins", err)
		}
		defer rows.Close()
		for rows.Next() {
			var s entity.BinSummary
			if err := rows.Scan(&s.BinNo, &s.Location, &s.Description, &s.Aisle, &s.Row, &s.Rack, &s.LotStatus); err != nil {
				return nil, 0, domain.NewDatabaseError("scan bin summary", err)
			}
			list = append(list, &s)
		}
		if err := rows.Err(); err != nil {
			return nil, 0, domain.NewDatabaseError("search bins", err)
		}
		return list, total, nil
	}

	countSQL := `
		SELECT COUNT(*) FROM bins
		WHERE ($1 = '%%' OR bin_no ILIKE $1 OR description ILIKE $1)`
	var total int
	if err := r.q.QueryRow(context.Background(), countSQL, pattern).Scan(&total); err != nil {
		return nil, 0, domain.NewDatabaseError("count bins", err)
	}

	listSQL := `
		SELECT bin_no, location, description, aisle, row, rack
		FROM bins
		WHERE ($1 = '%%' OR bin_no ILIKE $1 OR description ILIKE $1)
		ORDER BY bin_no ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), listSQL, pattern, limit, offset)
	if err != nil {
		return nil, 0, domain.NewDatabaseError("search bins", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s entity.BinSummary
		if err := rows.Scan(&s.BinNo, &s.Location, &s.Description, &s.Aisle, &s.Row, &s.Rack); err != nil {
			return nil, 0, domain.NewDatabaseError("scan bin summary", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.NewDatabaseError("search bins", err)
	}
	return list, total, nil
}
