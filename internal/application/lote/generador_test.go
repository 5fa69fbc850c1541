package lote_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemaarroz/ingenio-api/internal/application/lote"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// existeLoteStub solo implementa ExisteLote; el resto del puerto no se usa.
type existeLoteStub struct {
	repository.InventarioRepository
	ocupados map[string]bool
	llamadas []string
}

func (s *existeLoteStub) ExisteLote(lote, _ string) (bool, error) {
	s.llamadas = append(s.llamadas, lote)
	return s.ocupados[lote], nil
}

func TestGenerarUnico_SinColision(t *testing.T) {
	stub := &existeLoteStub{ocupados: map[string]bool{}}

	codigo, err := lote.GenerarUnico(stub, "ing-1")
	require.NoError(t, err)
	assert.Regexp(t, `^LOTE-\d{6}-\d{6}$`, codigo)
	assert.Len(t, stub.llamadas, 1, "sin colisión basta una consulta")
}

func TestGenerarUnico_ConColisionesAgregaSufijo(t *testing.T) {
	// Simular dos compras ya registradas en el mismo segundo: el código base
	// y el sufijo -1 están ocupados, sea cual sea el instante del test.
	stub := &colisionStub{}

	codigo, err := lote.GenerarUnico(stub, "ing-1")
	require.NoError(t, err)
	assert.Regexp(t, `^LOTE-\d{6}-\d{6}-2$`, codigo, "debe saltar los sufijos ocupados")
}

// colisionStub reporta ocupados el código base y el sufijo -1 de cualquier segundo.
type colisionStub struct {
	repository.InventarioRepository
}

func (s *colisionStub) ExisteLote(lote, _ string) (bool, error) {
	base := regexp.MustCompile(`^LOTE-\d{6}-\d{6}$`)
	return base.MatchString(lote) || strings.HasSuffix(lote, "-1"), nil
}

// Verificación de compilación: el stub sigue siendo un InventarioRepository
// válido aunque solo sobreescriba ExisteLote.
var _ repository.InventarioRepository = &existeLoteStub{}
