// asignar-uuids asigna un UUID de factura a toda venta o servicio registrado
// antes de que existieran las facturas públicas.
//
// Uso: go run ./cmd/asignar-uuids
// Lee la misma configuración de entorno que el servidor (DATABASE_URL, etc.).
package main

import (
	"context"

	"github.com/sistemaarroz/ingenio-api/internal/application/billing"
	"github.com/sistemaarroz/ingenio-api/internal/infrastructure/postgres"
	"github.com/sistemaarroz/ingenio-api/pkg/config"
	"github.com/sistemaarroz/ingenio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    "info",
		Servicio: "asignar-uuids",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	transaccionRepo := postgres.NewTransaccionRepository(pool)
	detalleRepo := postgres.NewDetalleRepository(pool)
	billingUC := billing.NewBillingUseCase(transaccionRepo, detalleRepo, nil)

	asignadas, err := billingUC.AsignarUUIDsFaltantes()
	if err != nil {
		log.Fatal().Err(err).Int("asignadas", asignadas).Msg("asignación de UUIDs interrumpida")
	}
	log.Info().Int("asignadas", asignadas).Msg("UUIDs de factura asignados")
}
