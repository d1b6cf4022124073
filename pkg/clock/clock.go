package clock

import "time"

// Zona horaria de la bodega (Indochina Time, UTC+7). Todos los timestamps
// persistidos por el motor de traslados se generan en esta zona.
var WarehouseTZ = time.FixedZone("ICT", 7*3600)

// Clock fuente de tiempo inyectable. Permite fijar el reloj en tests.
type Clock interface {
	Now() time.Time
}

// WarehouseClock reloj real localizado en la zona de la bodega.
type WarehouseClock struct{}

// New construye el reloj por defecto.
func New() *WarehouseClock {
	return &WarehouseClock{}
}

// Now devuelve la hora actual en la zona de la bodega.
func (WarehouseClock) Now() time.Time {
	return time.Now().In(WarehouseTZ)
}

// Fixed reloj congelado, útil en tests.
type Fixed struct {
	T time.Time
}

// Now devuelve siempre el instante fijado.
func (f Fixed) Now() time.Time { return f.T }
