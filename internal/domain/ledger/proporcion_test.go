package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sistemaarroz/ingenio-api/internal/domain/ledger"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestKgProporcional(t *testing.T) {
	// Lote de 10 quintales / 460 kg: 5 quintales llevan 230 kg.
	kg := ledger.KgProporcional(dec("10"), dec("460"), dec("5"))
	assert.True(t, kg.Equal(dec("230")), "5 de 10 quintales deben llevar 230 de 460 kg, fue %s", kg)
}

func TestKgProporcional_LoteAgotado(t *testing.T) {
	kg := ledger.KgProporcional(decimal.Zero, dec("460"), dec("5"))
	assert.True(t, kg.IsZero(), "con cantidad cero no hay nada que prorratear")
}

func TestMermar_ConservaProporcion(t *testing.T) {
	// Retirar 4 de 10 quintales deja 6 quintales y 276 kg (razón 46 kg/quintal).
	cantidad, kg := ledger.Mermar(dec("10"), dec("460"), dec("4"))
	assert.True(t, cantidad.Equal(dec("6")))
	assert.True(t, kg.Equal(dec("276")))
}

func TestMermar_RetiroTotal(t *testing.T) {
	cantidad, kg := ledger.Mermar(dec("10"), dec("460"), dec("10"))
	assert.True(t, cantidad.IsZero())
	assert.True(t, kg.IsZero())
}

func TestMovimiento_Signos(t *testing.T) {
	abono := ledger.NuevoAbono(dec("3"), dec("138"))
	assert.True(t, abono.CantidadFirmada().Equal(dec("3")))
	assert.True(t, abono.CantidadKgFirmada().Equal(dec("138")))

	consumo := ledger.NuevoConsumo(dec("3"), dec("138"))
	assert.True(t, consumo.CantidadFirmada().Equal(dec("-3")))
	assert.True(t, consumo.CantidadKgFirmada().Equal(dec("-138")))
}

func TestMovimiento_NormalizaNegativos(t *testing.T) {
	// El constructor toma valor absoluto: el signo lo aporta el tipo.
	consumo := ledger.NuevoConsumo(dec("-3"), dec("-138"))
	assert.True(t, consumo.CantidadFirmada().Equal(dec("-3")))
	assert.True(t, consumo.CantidadKgFirmada().Equal(dec("-138")))
}
