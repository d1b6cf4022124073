package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/putaway-api/internal/domain"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
	"github.com/jhoicas/putaway-api/internal/domain/repository"
)

var _ repository.ItemLocationRepository = (*ItemLocationRepo)(nil)

// ItemLocationRepo implementación de ItemLocationRepository sobre PostgreSQL.
type ItemLocationRepo struct {
	q Querier
}

// NewItemLocationRepository construye el adaptador de parametrización
// ítem-ubicación. Pasar pool o tx (Querier).
func NewItemLocationRepository(q Querier) *ItemLocationRepo {
	return &ItemLocationRepo{q: q}
}

// Get devuelve el registro del ítem en la ubicación. Su ausencia es un
// problema de integridad de los datos maestros, no un caso de negocio.
func (r *ItemLocationRepo) Get(itemKey, location string) (*entity.ItemLocation, error) {
	query := `
		SELECT item_key, location, in_class_key, rev_acct, cogs_acct, std_cost
		FROM item_locations
		WHERE item_key = $1 AND location = $2`
	var il entity.ItemLocation
	err := r.q.QueryRow(context.Background(), query, itemKey, location).Scan(
		&il.ItemKey, &il.Location, &il.InClassKey, &il.RevAcct, &il.CogsAcct, &il.StdCost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewDatabaseError("get item location",
				fmt.Errorf("ítem '%s' sin parametrización en ubicación '%s'", itemKey, location))
		}
		return nil, domain.NewDatabaseError("get item location", err)
	}
	return &il, nil
}
