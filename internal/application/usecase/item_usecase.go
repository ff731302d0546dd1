package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// ItemUseCase CRUD de artículos. Los artículos nunca se borran: se
// desactivan, para que el libro de movimientos los siga pudiendo resolver.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo. Devuelve ErrDuplicate si el código ya existe.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.ItemCode == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.ItemCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		ItemCode:  in.ItemCode,
		Name:      in.Name,
		Spec:      in.Spec,
		Unit:      in.Unit,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista artículos con búsqueda por código/nombre y paginación.
func (uc *ItemUseCase) List(keyword string, page dto.PageRequest) ([]dto.ItemResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	limit, offset := page.LimitOffset()
	list, err := uc.repo.List(keyword, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return items, nil
}

// SetStatus activa o desactiva un artículo. Desactivar no toca el stock
// existente, solo impide nuevos movimientos sobre el artículo.
func (uc *ItemUseCase) SetStatus(id string, in dto.StatusRequest) error {
	if in.Status != entity.StatusActive && in.Status != entity.StatusInactive {
		return domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetStatus(id, in.Status, time.Now())
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:        i.ID,
		ItemCode:  i.ItemCode,
		Name:      i.Name,
		Spec:      i.Spec,
		Unit:      i.Unit,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
	}
}
