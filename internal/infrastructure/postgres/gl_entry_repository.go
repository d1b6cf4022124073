package postgres

import (
	"context"

	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

var _ repository.GLEntryRepository = (*GLEntryRepo)(nil)

// GLEntryRepo implementación de GLEntryRepository sobre PostgreSQL (usable con
// pool o tx).
type GLEntryRepo struct {
	q Querier
}

// NewGLEntryRepository construye el adaptador del rastro contable. Pasar pool o tx (Querier).
func NewGLEntryRepository(q Querier) *GLEntryRepo {
	return &GLEntryRepo{q: q}
}

// Create persiste el registro contable del movimiento.
func (r *GLEntryRepo) Create(e *entity.GLEntry) error {
	query := `
		INSERT INTO gl_entries (
			id, item_key, location_key, doc_no, doc_date, trn_desc,
			nl_acct, in_acct, std_cost, rec_user_id, rec_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ItemKey, e.LocationKey, e.DocNo, e.DocDate, e.TrnDesc,
		e.NLAcct, e.INAcct, e.StdCost, e.RecUserID, e.RecDate,
	)
	if err != nil {
		return domain.NewTransactionError("create gl entry", err)
	}
	return nil
}
