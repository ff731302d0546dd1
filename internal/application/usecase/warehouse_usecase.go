package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// WarehouseUseCase CRUD de bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una bodega. Devuelve ErrDuplicate si el código ya existe.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	wh := &entity.Warehouse{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(wh); err != nil {
		return nil, err
	}
	return toWarehouseResponse(wh), nil
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(page dto.PageRequest) ([]dto.WarehouseResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	limit, offset := page.LimitOffset()
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, wh := range list {
		items = append(items, *toWarehouseResponse(wh))
	}
	return items, nil
}

// SetStatus activa o desactiva una bodega.
func (uc *WarehouseUseCase) SetStatus(id string, in dto.StatusRequest) error {
	if in.Status != entity.StatusActive && in.Status != entity.StatusInactive {
		return domain.ErrInvalidInput
	}
	wh, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetStatus(id, in.Status, time.Now())
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Code:      w.Code,
		Name:      w.Name,
		Address:   w.Address,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
	}
}
