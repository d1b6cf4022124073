package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/putaway-api/pkg/clock"
)

// El reloj de bodega entrega la hora en UTC+7.
func TestWarehouseClock_OffsetICT(t *testing.T) {
	now := clock.New().Now()

	_, offset := now.Zone()
	assert.Equal(t, 7*3600, offset, "la zona de la bodega es UTC+7")
	assert.WithinDuration(t, time.Now(), now, 2*time.Second,
		"el instante es el mismo, solo cambia la zona")
}

func TestFixed_DevuelveSiempreElMismoInstante(t *testing.T) {
	ts := time.Date(2026, 8, 31, 9, 30, 0, 0, clock.WarehouseTZ)
	f := clock.Fixed{T: ts}

	assert.Equal(t, ts, f.Now())
	assert.Equal(t, ts, f.Now())
}
