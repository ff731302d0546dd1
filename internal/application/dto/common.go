package dto

import (
	"fmt"

	"github.com/tu-usuario/bodega-wms/internal/domain"
)

// PageRequest paginación para listados. Índice de página desde 1.
type PageRequest struct {
	PageIndex int `query:"page_index" json:"page_index"`
	PageSize  int `query:"page_size" json:"page_size"`
}

// Validate exige índice y tamaño de página >= 1; valores inválidos son un
// error de validación, no se corrigen en silencio.
func (p PageRequest) Validate() error {
	if p.PageIndex < 1 || p.PageSize < 1 {
		return fmt.Errorf("parámetros de paginación inválidos: %w", domain.ErrInvalidInput)
	}
	return nil
}

// LimitOffset traduce la página a LIMIT/OFFSET de SQL.
func (p PageRequest) LimitOffset() (limit, offset int) {
	return p.PageSize, (p.PageIndex - 1) * p.PageSize
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	PageIndex int   `json:"page_index"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
