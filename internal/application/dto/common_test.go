package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/putaway-api/internal/application/dto"
)

func TestPageRequest_Normalize(t *testing.T) {
	// Sin parámetros: valores por defecto
	p := dto.PageRequest{}
	p.Normalize()
	assert.Equal(t, dto.DefaultSearchLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	// Límite excesivo se recorta al máximo
	p = dto.PageRequest{Limit: 5000, Offset: -3}
	p.Normalize()
	assert.Equal(t, dto.MaxSearchLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	// Valores válidos pasan intactos
	p = dto.PageRequest{Limit: 40, Offset: 80}
	p.Normalize()
	assert.Equal(t, 40, p.Limit)
	assert.Equal(t, 80, p.Offset)
}
