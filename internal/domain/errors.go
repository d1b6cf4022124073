package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// ValidationError entrada corregible por el caller: cantidad inválida, bins
// iguales, registro de balance inexistente, etc. El mensaje es apto para
// mostrarse directamente al usuario.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError construye un ValidationError con formato.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidBinError el bin destino no existe para la ubicación.
type InvalidBinError struct {
	BinNo    string
	Location string
}

func (e *InvalidBinError) Error() string {
	return fmt.Sprintf("el bin '%s' no es válido en la ubicación '%s'", e.BinNo, e.Location)
}

// InsufficientQuantityError regla de negocio: la cantidad solicitada supera la
// disponible (QtyOnHand - QtyCommitSales) más la tolerancia. No es un bug.
type InsufficientQuantityError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("cantidad insuficiente: solicitado %s, disponible %s", e.Requested, e.Available)
}

// DatabaseError fallo de transporte o del store, sin significado de negocio.
// El mensaje crudo del store nunca se expone al usuario final.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string { return fmt.Sprintf("database: %s: %v", e.Op, e.Err) }
func (e *DatabaseError) Unwrap() error { return e.Err }

// NewDatabaseError envuelve un error del store con la operación que falló.
func NewDatabaseError(op string, err error) *DatabaseError {
	return &DatabaseError{Op: op, Err: err}
}

// TransactionError fallo en un paso mutador dentro de una transacción abierta.
// Siempre provoca rollback de todo lo hecho en el traslado.
type TransactionError struct {
	Step string
	Err  error
}

func (e *TransactionError) Error() string { return fmt.Sprintf("transaction: %s: %v", e.Step, e.Err) }
func (e *TransactionError) Unwrap() error { return e.Err }

// NewTransactionError envuelve un error de un paso mutador.
func NewTransactionError(step string, err error) *TransactionError {
	return &TransactionError{Step: step, Err: err}
}
