package repository

import "github.com/tu-usuario/bodega-wms/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia de auditoría.
// Solo inserción y lectura: los registros de auditoría son inmutables.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(action string, limit, offset int) ([]*entity.AuditLog, error)
}
