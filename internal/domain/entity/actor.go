package entity

import "errors"

// ActorRefMaxLen ancho del campo de usuario en el esquema destino. Los campos
// RecUserID de las tablas de inventario admiten como máximo 8 caracteres.
const ActorRefMaxLen = 8

// ActorRef referencia validada al operador que ejecuta un traslado, ajustada al
// ancho del esquema. Reemplaza el truncado inline disperso por un valor tipado.
type ActorRef string

// NewActorRef valida el identificador del operador y lo trunca al ancho del
// campo si es necesario.
func NewActorRef(userID string) (ActorRef, error) {
	if userID == "" {
		return "", errors.New("identificador de operador vacío")
	}
	if len(userID) > ActorRefMaxLen {
		userID = userID[:ActorRefMaxLen]
	}
	return ActorRef(userID), nil
}

func (a ActorRef) String() string { return string(a) }
