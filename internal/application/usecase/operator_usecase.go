package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// OperatorUseCase administración de operadores. Las altas y cambios de estado
// son de solo-admin; el handler aplica el RBAC.
type OperatorUseCase struct {
	repo repository.OperatorRepository
}

// NewOperatorUseCase construye el caso de uso con el puerto de persistencia.
func NewOperatorUseCase(repo repository.OperatorRepository) *OperatorUseCase {
	return &OperatorUseCase{repo: repo}
}

// Create crea un operador: hashea el password con bcrypt y persiste.
// Devuelve ErrDuplicate si el username ya existe.
func (uc *OperatorUseCase) Create(in dto.CreateOperatorRequest) (*dto.OperatorResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleKeeper && in.Role != entity.RoleMember {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.DisplayName
	if name == "" {
		name = in.Username
	}
	now := time.Now()
	op := &entity.Operator{
		ID:           uuid.New().String(),
		Username:     in.Username,
		DisplayName:  name,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(op); err != nil {
		return nil, err
	}
	return toOperatorResponse(op), nil
}

// GetByID obtiene un operador por ID.
func (uc *OperatorUseCase) GetByID(id string) (*dto.OperatorResponse, error) {
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	return toOperatorResponse(op), nil
}

// List lista operadores con paginación.
func (uc *OperatorUseCase) List(page dto.PageRequest) ([]dto.OperatorResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	limit, offset := page.LimitOffset()
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperatorResponse, 0, len(list))
	for _, op := range list {
		items = append(items, *toOperatorResponse(op))
	}
	return items, nil
}

// SetStatus activa o desactiva un operador. Un operador inactivo no puede
// autenticarse ni registrar movimientos; su historial queda intacto.
func (uc *OperatorUseCase) SetStatus(id string, in dto.OperatorStatusRequest) error {
	if in.Status != entity.StatusActive && in.Status != entity.StatusInactive {
		return domain.ErrInvalidInput
	}
	op, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if op == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetStatus(id, in.Status, time.Now())
}

func toOperatorResponse(o *entity.Operator) *dto.OperatorResponse {
	if o == nil {
		return nil
	}
	return &dto.OperatorResponse{
		ID:          o.ID,
		Username:    o.Username,
		DisplayName: o.DisplayName,
		Role:        o.Role,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}
