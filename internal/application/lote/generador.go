// Package lote genera códigos de lote únicos por ingenio.
package lote

import (
	"fmt"
	"time"

	"github.com/sistemaarroz/ingenio-api/internal/domain/repository"
)

// GenerarUnico produce un código LOTE-YYMMDD-HHMMSS a partir del instante
// actual. Si ya existe un lote con ese código en el ingenio (dos compras en el
// mismo segundo) se le agrega un sufijo -1, -2, ... hasta encontrar uno libre.
func GenerarUnico(invRepo repository.InventarioRepository, ingenioID string) (string, error) {
	base := fmt.Sprintf("LOTE-%s", time.Now().Format("060102-150405"))
	existe, err := invRepo.ExisteLote(base, ingenioID)
	if err != nil {
		return "", err
	}
	if !existe {
		return base, nil
	}
	for i := 1; ; i++ {
		candidato := fmt.Sprintf("%s-%d", base, i)
		existe, err := invRepo.ExisteLote(candidato, ingenioID)
		if err != nil {
			return "", err
		}
		if !existe {
			return candidato, nil
		}
	}
}
