package unidad_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/unidad"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestAKilogramos_Quintales(t *testing.T) {
	// 10 quintales × 46 kg = 460 kg, con ambas grafías de la unidad.
	kg := unidad.AKilogramos(dec("10"), entity.UnidadQuintal)
	assert.True(t, kg.Equal(dec("460")), "10 quintales deben ser 460 kg, fue %s", kg)

	kg = unidad.AKilogramos(dec("10"), entity.UnidadQuintales)
	assert.True(t, kg.Equal(dec("460")), "la grafía plural debe convertir igual")
}

func TestAKilogramos_Fanegas(t *testing.T) {
	kg := unidad.AKilogramos(dec("3"), entity.UnidadFanega)
	assert.True(t, kg.Equal(dec("600")), "3 fanegas deben ser 600 kg, fue %s", kg)
}

func TestAKilogramos_UnidadDesconocida_PasaSinConvertir(t *testing.T) {
	// Comportamiento heredado: una unidad no reconocida ya viene en kg.
	kg := unidad.AKilogramos(dec("123.45"), "kg")
	assert.True(t, kg.Equal(dec("123.45")))
}

func TestAFanegas(t *testing.T) {
	// 200 kg por fanega, 46 kg por quintal: 100 quintales = 23 fanegas.
	f, err := unidad.AFanegas(dec("100"), entity.UnidadQuintal)
	require.NoError(t, err)
	assert.True(t, f.Equal(dec("23")), "100 quintales deben ser 23 fanegas, fue %s", f)

	f, err = unidad.AFanegas(dec("7"), entity.UnidadFanega)
	require.NoError(t, err)
	assert.True(t, f.Equal(dec("7")))

	_, err = unidad.AFanegas(dec("1"), "litros")
	assert.Error(t, err, "una unidad desconocida no puede liquidarse por fanega")
}

func TestDeQuintales(t *testing.T) {
	q, err := unidad.DeQuintales(dec("5"), entity.UnidadQuintales)
	require.NoError(t, err)
	assert.True(t, q.Equal(dec("5")))

	f, err := unidad.DeQuintales(dec("100"), entity.UnidadFanega)
	require.NoError(t, err)
	assert.True(t, f.Equal(dec("23")), "100 quintales de merma son 23 fanegas")

	_, err = unidad.DeQuintales(dec("1"), "sacos")
	assert.Error(t, err)
}

func TestMostrarEnUnidades(t *testing.T) {
	quintales, fanegas, ok := unidad.MostrarEnUnidades(dec("460"))
	require.True(t, ok)
	assert.True(t, quintales.Equal(dec("10")))
	assert.True(t, fanegas.Equal(dec("2.3")))

	_, _, ok = unidad.MostrarEnUnidades(dec("-1"))
	assert.False(t, ok, "un kg negativo no debe convertirse para presentación")
}
