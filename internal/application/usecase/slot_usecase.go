package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// SlotUseCase CRUD de ubicaciones. Una ubicación pertenece siempre a una
// estantería existente; su código es único en todo el sistema.
type SlotUseCase struct {
	repo     repository.SlotRepository
	rackRepo repository.RackRepository
}

// NewSlotUseCase construye el caso de uso.
func NewSlotUseCase(repo repository.SlotRepository, rackRepo repository.RackRepository) *SlotUseCase {
	return &SlotUseCase{repo: repo, rackRepo: rackRepo}
}

// Create crea una ubicación dentro de una estantería.
func (uc *SlotUseCase) Create(in dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	if in.Code == "" || in.RackID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	rack, err := uc.rackRepo.GetByID(in.RackID)
	if err != nil {
		return nil, err
	}
	if rack == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	slot := &entity.Slot{
		ID:        uuid.New().String(),
		RackID:    in.RackID,
		Code:      in.Code,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(slot); err != nil {
		return nil, err
	}
	return toSlotResponse(slot), nil
}

// ListByRack lista las ubicaciones de una estantería con paginación.
func (uc *SlotUseCase) ListByRack(rackID string, page dto.PageRequest) ([]dto.SlotResponse, error) {
	if rackID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	limit, offset := page.LimitOffset()
	list, err := uc.repo.ListByRack(rackID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SlotResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSlotResponse(s))
	}
	return items, nil
}

// SetStatus activa o desactiva una ubicación. Desactivar no exige stock en
// cero; solo bloquea nuevos movimientos que la referencien.
func (uc *SlotUseCase) SetStatus(id string, in dto.StatusRequest) error {
	if in.Status != entity.StatusActive && in.Status != entity.StatusInactive {
		return domain.ErrInvalidInput
	}
	slot, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if slot == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetStatus(id, in.Status, time.Now())
}

func toSlotResponse(s *entity.Slot) *dto.SlotResponse {
	if s == nil {
		return nil
	}
	return &dto.SlotResponse{
		ID:        s.ID,
		RackID:    s.RackID,
		Code:      s.Code,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}
