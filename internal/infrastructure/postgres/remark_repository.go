package postgres

import (
	"context"

	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

var _ repository.RemarkRepository = (*RemarkRepo)(nil)

// RemarkRepo implementación de RemarkRepository sobre PostgreSQL.
type RemarkRepo struct {
	q Querier
}

// NewRemarkRepository construye el adaptador de observaciones. Pasar pool o tx (Querier).
func NewRemarkRepository(q Querier) *RemarkRepo {
	return &RemarkRepo{q: q}
}

// ListActive lista las observaciones activas ordenadas por nombre.
func (r *RemarkRepo) ListActive() ([]*entity.Remark, error) {
	query := `SELECT id, name, active FROM remarks WHERE active ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, domain.NewDatabaseError("list remarks", err)
	}
	defer rows.Close()

	var list []*entity.Remark
	for rows.Next() {
		var rem entity.Remark
		if err := rows.Scan(&rem.ID, &rem.Name, &rem.Active); err != nil {
			return nil, domain.NewDatabaseError("scan remark", err)
		}
		list = append(list, &rem)
	}
	return list, rows.Err()
}
