package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo implementación de SequenceRepository sobre PostgreSQL (usable
// con pool o tx).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador de secuencias. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa el contador y devuelve el nuevo valor en la misma sentencia
// (UPDATE ... RETURNING). El lock de fila del UPDATE garantiza que dos llamadas
// concurrentes nunca reciban el mismo número. Un contador inexistente es un
// problema de integridad de datos, no contención transitoria.
func (r *SequenceRepo) Next(name string) (int64, error) {
	query := `
		UPDATE sequences
		SET last_value = last_value + 1
		WHERE name = $1
		RETURNING last_value`
	var next int64
	err := r.q.QueryRow(context.Background(), query, name).Scan(&next)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.NewDatabaseError("next sequence", fmt.Errorf("secuencia '%s' no existe", name))
		}
		return 0, domain.NewDatabaseError("next sequence", err)
	}
	return next, nil
}
