package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemaarroz/ingenio-api/internal/application/billing"
	"github.com/sistemaarroz/ingenio-api/internal/domain"
	"github.com/sistemaarroz/ingenio-api/internal/domain/entity"
	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// facturaUUIDStub implementa solo la parte del puerto que usa
// ObtenerUUIDFactura; el resto queda sin implementar.
type facturaUUIDStub struct {
	repository.TransaccionRepository
	uuid      *string
	found     bool
	asignado  string
	asignadoA string
}

func (s *facturaUUIDStub) GetFacturaUUID(id, ingenioID string) (*string, bool, error) {
	return s.uuid, s.found, nil
}

func (s *facturaUUIDStub) SetFacturaUUID(id, ingenioID, facturaUUID string) error {
	s.asignado = facturaUUID
	s.asignadoA = id
	return nil
}

func TestObtenerUUIDFactura_Existente(t *testing.T) {
	existente := "11111111-1111-1111-1111-111111111111"
	stub := &facturaUUIDStub{uuid: &existente, found: true}
	uc := billing.NewBillingUseCase(stub, nil, nil)

	got, err := uc.ObtenerUUIDFactura("tx-1", "ing-1")
	require.NoError(t, err)
	assert.Equal(t, existente, got)
	assert.Empty(t, stub.asignado, "un UUID existente no se reescribe")
}

func TestObtenerUUIDFactura_FaltanteSeGeneraYPersiste(t *testing.T) {
	// Transacción anterior a los UUIDs: found pero sin valor.
	stub := &facturaUUIDStub{found: true}
	uc := billing.NewBillingUseCase(stub, nil, nil)

	got, err := uc.ObtenerUUIDFactura("tx-1", "ing-1")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, got, stub.asignado, "el UUID generado debe persistirse")
	assert.Equal(t, "tx-1", stub.asignadoA)
}

func TestObtenerUUIDFactura_NoFacturableEs404(t *testing.T) {
	stub := &facturaUUIDStub{found: false}
	uc := billing.NewBillingUseCase(stub, nil, nil)

	_, err := uc.ObtenerUUIDFactura("tx-1", "ing-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalcularTotales_VentaGravaIVA(t *testing.T) {
	venta := &entity.Transaccion{Tipo: entity.TipoVenta, Total: dec("200")}

	subtotal, iva, total := billing.CalcularTotales(venta)
	assert.True(t, subtotal.Equal(dec("200")))
	assert.True(t, iva.Equal(dec("24")), "12%% de 200, fue %s", iva)
	assert.True(t, total.Equal(dec("224")))
}

func TestCalcularTotales_IVARedondeaADosDecimales(t *testing.T) {
	venta := &entity.Transaccion{Tipo: entity.TipoVenta, Total: dec("33.33")}

	_, iva, total := billing.CalcularTotales(venta)
	assert.True(t, iva.Equal(dec("4")), "33.33 × 0.12 = 3.9996 redondea a 4.00, fue %s", iva)
	assert.True(t, total.Equal(dec("37.33")))
}

func TestCalcularTotales_ServiciosConIVACero(t *testing.T) {
	for _, tipo := range []string{entity.TipoServicioSecado, entity.TipoServicioPelado} {
		servicio := &entity.Transaccion{Tipo: tipo, Total: dec("184")}

		subtotal, iva, total := billing.CalcularTotales(servicio)
		assert.True(t, subtotal.Equal(dec("184")))
		assert.True(t, iva.IsZero(), "los servicios no gravan IVA")
		assert.True(t, total.Equal(dec("184")))
	}
}
