package query_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/application/query"
	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

type fakeMovementQueryRepo struct {
	rows       []repository.MovementListRow
	total      int64
	lastFilter repository.MovementFilter
	lastLimit  int
	lastOffset int
}

func (f *fakeMovementQueryRepo) List(_ context.Context, filter repository.MovementFilter, limit, offset int) ([]repository.MovementListRow, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	f.lastOffset = offset
	return f.rows, nil
}

func (f *fakeMovementQueryRepo) Count(_ context.Context, filter repository.MovementFilter) (int64, error) {
	return f.total, nil
}

type fakeStockQueryRepo struct {
	rows     []repository.StockListRow
	total    int64
	lastMode string
}

func (f *fakeStockQueryRepo) ListBySlot(_ context.Context, _ repository.StockFilter, _, _ int) ([]repository.StockListRow, error) {
	f.lastMode = "slot"
	return f.rows, nil
}

func (f *fakeStockQueryRepo) ListByItem(_ context.Context, _ repository.StockFilter, _, _ int) ([]repository.StockListRow, error) {
	f.lastMode = "item"
	return f.rows, nil
}

func (f *fakeStockQueryRepo) Count(_ context.Context, _ repository.StockFilter) (int64, error) {
	return f.total, nil
}

func TestMovementList_PaginacionInvalida(t *testing.T) {
	uc := query.NewMovementQueryUseCase(&fakeMovementQueryRepo{})

	for _, req := range []dto.MovementListRequest{
		{PageRequest: dto.PageRequest{PageIndex: 0, PageSize: 20}},
		{PageRequest: dto.PageRequest{PageIndex: 1, PageSize: 0}},
		{PageRequest: dto.PageRequest{PageIndex: -1, PageSize: -1}},
	} {
		_, err := uc.List(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestMovementList_FiltrosYPagina(t *testing.T) {
	start := int64(1700000000)
	repo := &fakeMovementQueryRepo{
		rows: []repository.MovementListRow{
			{ID: "m1", MovementNo: "Tabc", Kind: entity.KindInbound, Qty: 5, ItemCode: "A-001", OperatorName: "Ana"},
		},
		total: 41,
	}
	uc := query.NewMovementQueryUseCase(repo)

	out, err := uc.List(context.Background(), dto.MovementListRequest{
		Kind:        string(entity.KindInbound),
		Keyword:     "A-001",
		StartAt:     &start,
		PageRequest: dto.PageRequest{PageIndex: 3, PageSize: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.KindInbound, repo.lastFilter.Kind)
	assert.Equal(t, "A-001", repo.lastFilter.Keyword)
	require.NotNil(t, repo.lastFilter.OccurredFrom)
	assert.True(t, repo.lastFilter.OccurredFrom.Equal(time.Unix(start, 0)))
	assert.Nil(t, repo.lastFilter.OccurredTo)
	assert.Equal(t, 10, repo.lastLimit)
	assert.Equal(t, 20, repo.lastOffset)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Tabc", out.Items[0].MovementNo)
	assert.Equal(t, "Ana", out.Items[0].OperatorName)
	assert.Equal(t, int64(41), out.Page.Total)
	assert.Equal(t, 3, out.Page.PageIndex)
}

func TestStockList_AgrupaPorUbicacionOPorArticulo(t *testing.T) {
	repo := &fakeStockQueryRepo{
		rows:  []repository.StockListRow{{SlotCode: "A-01-01", ItemCode: "A-001", ItemName: "Tornillo", Qty: 7, RackCode: "A-01", RackName: "Estantería A1"}},
		total: 1,
	}
	uc := query.NewStockQueryUseCase(repo)
	page := dto.StockListRequest{PageRequest: dto.PageRequest{PageIndex: 1, PageSize: 20}}

	out, err := uc.List(context.Background(), page, query.GroupBySlot)
	require.NoError(t, err)
	assert.Equal(t, "slot", repo.lastMode)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(7), out.Items[0].Qty)

	_, err = uc.List(context.Background(), page, query.GroupByItem)
	require.NoError(t, err)
	assert.Equal(t, "item", repo.lastMode)
}
