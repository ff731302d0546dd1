package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// RackUseCase CRUD de estanterías.
type RackUseCase struct {
	repo          repository.RackRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRackUseCase construye el caso de uso.
func NewRackUseCase(repo repository.RackRepository, warehouseRepo repository.WarehouseRepository) *RackUseCase {
	return &RackUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create crea una estantería. Si viene warehouse_id, la bodega debe existir.
func (uc *RackUseCase) Create(in dto.CreateRackRequest) (*dto.RackResponse, error) {
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
	if in.WarehouseID != nil {
		wh, err := uc.warehouseRepo.GetByID(*in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	rack := &entity.Rack{
		ID:          uuid.New().String(),
		WarehouseID: in.WarehouseID,
		Code:        in.Code,
		Name:        in.Name,
		Status:      entity.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(rack); err != nil {
		return nil, err
	}
	return toRackResponse(rack), nil
}

// List lista estanterías, opcionalmente por bodega, con paginación.
func (uc *RackUseCase) List(warehouseID string, page dto.PageRequest) ([]dto.RackResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	limit, offset := page.LimitOffset()
	list, err := uc.repo.List(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RackResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRackResponse(r))
	}
	return items, nil
}

// SetStatus activa o desactiva una estantería.
func (uc *RackUseCase) SetStatus(id string, in dto.StatusRequest) error {
	if in.Status != entity.StatusActive && in.Status != entity.StatusInactive {
		return domain.ErrInvalidInput
	}
	rack, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rack == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetStatus(id, in.Status, time.Now())
}

func toRackResponse(r *entity.Rack) *dto.RackResponse {
	if r == nil {
		return nil
	}
	return &dto.RackResponse{
		ID:          r.ID,
		WarehouseID: r.WarehouseID,
		Code:        r.Code,
		Name:        r.Name,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}
