package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
	"github.com/tu-usuario/bodega-wms/pkg/logger"
)

// UseCase registro de auditoría de operaciones sensibles. El registro es
// best-effort: una falla al auditar nunca hace fallar la operación auditada,
// solo se deja traza en el log.
type UseCase struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.AuditLogRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// Entry datos de una entrada de auditoría. Payload se serializa a JSON.
type Entry struct {
	Action          string
	ActorOperatorID *string
	TargetType      *string
	TargetID        *string
	Payload         any
	Err             error // nil cuando la operación auditada tuvo éxito
}

// Record persiste la entrada. No devuelve error.
func (uc *UseCase) Record(e Entry) {
	rec := &entity.AuditLog{
		ID:              uuid.New().String(),
		Action:          e.Action,
		ActorOperatorID: e.ActorOperatorID,
		TargetType:      e.TargetType,
		TargetID:        e.TargetID,
		Success:         e.Err == nil,
		CreatedAt:       time.Now().UTC(),
	}
	if e.Err != nil {
		code := domain.ErrorCode(e.Err)
		rec.ErrorCode = &code
	}
	if e.Payload != nil {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			uc.log.Warn().Err(err).Str("action", e.Action).Msg("no se pudo serializar el payload de auditoría")
		} else {
			rec.Payload = b
		}
	}

	if err := uc.repo.Create(rec); err != nil {
		uc.log.Error().Err(err).Str("action", e.Action).Msg("no se pudo guardar la entrada de auditoría")
	}
}

// List devuelve entradas de auditoría paginadas, opcionalmente por acción.
func (uc *UseCase) List(action string, limit, offset int) ([]*entity.AuditLog, error) {
	if limit < 1 || offset < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.List(action, limit, offset)
}
