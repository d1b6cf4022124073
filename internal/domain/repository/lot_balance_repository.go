package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/putaway-api/internal/domain/entity"
)

// LotBalanceRepository puerto de persistencia de saldos de lote por bin.
type LotBalanceRepository interface {
	// Get devuelve el balance de la clave, o nil si no existe.
	Get(key entity.LotKey) (*entity.LotBalance, error)

	// FindByLotNo busca la primera posición con saldo positivo de un lote y
	// devuelve el balance junto con los datos maestros del ítem.
	FindByLotNo(lotNo string) (*entity.LotBalance, *entity.Item, error)

	// LockPair bloquea con lock exclusivo de fila los balances del lote en los
	// bins origen y destino, en una sola sentencia y en orden ascendente de bin.
	// Ese orden global fijo es lo único que previene deadlocks entre traslados
	// concurrentes; no debe reimplementarse como dos bloqueos secuenciales.
	LockPair(key entity.LotKey, binTo string) ([]*entity.LotBalance, error)

	// Insert crea un balance nuevo (primer ingreso del lote a un bin).
	Insert(b *entity.LotBalance) error

	// UpdateQuantities fija las cantidades del balance y lo estampa con el
	// documento y tipo de transacción del traslado.
	UpdateQuantities(key entity.LotKey, qtyOnHand, qtyCommitSales decimal.Decimal, docNo string, txType int16, actor entity.ActorRef, at time.Time) error

	// Delete elimina el balance (saldo llegó a cero).
	Delete(key entity.LotKey) error

	// GetStatus devuelve el estado del lote en un bin, o nil si el registro no
	// existe (lectura de enriquecimiento post-commit).
	GetStatus(key entity.LotKey) (*string, error)

	// Search lista lotes con saldo positivo, con filtro de texto libre opcional
	// y paginación. Devuelve la página y el total.
	Search(query string, limit, offset int) ([]*entity.LotSummary, int, error)
}
