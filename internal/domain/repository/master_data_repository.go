package repository

import "github.com/jhoicas/putaway-api/internal/domain/entity"

// BinLotContext contexto opcional de lote para la búsqueda de bins: cuando está
// presente, cada bin del resultado expone el estado del lote si ya lo contiene.
type BinLotContext struct {
	LotNo    string
	ItemKey  string
	Location string
}

// BinRepository puerto de datos maestros de bins (solo lectura para este core).
type BinRepository interface {
	// Exists verifica que el bin exista para la ubicación.
	Exists(location, binNo string) (bool, error)

	// Search lista bins con filtro de texto libre opcional y paginación.
	Search(query string, lotCtx *BinLotContext, limit, offset int) ([]*entity.BinSummary, int, error)
}

// ItemLocationRepository puerto de parametrización ítem-ubicación (cuenta GL y
// costo estándar).
type ItemLocationRepository interface {
	// Get devuelve el registro para el ítem en la ubicación. Su ausencia es un
	// problema de integridad de los datos maestros (DatabaseError).
	Get(itemKey, location string) (*entity.ItemLocation, error)
}

// RemarkRepository puerto de observaciones predefinidas.
type RemarkRepository interface {
	ListActive() ([]*entity.Remark, error)
}

// UserRepository puerto de usuarios (autenticación).
type UserRepository interface {
	FindByUsername(username string) (*entity.User, error)
	Create(u *entity.User) error
}
