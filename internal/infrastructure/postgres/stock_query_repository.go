package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

var _ repository.StockQueryRepository = (*StockQueryRepo)(nil)

// StockQueryRepo listados del stock materializado con la jerarquía
// bodega -> estantería -> ubicación resuelta. goqu arma el SQL; pgx ejecuta.
type StockQueryRepo struct {
	q Querier
}

// NewStockQueryRepository construye el adaptador de lectura.
func NewStockQueryRepository(q Querier) *StockQueryRepo {
	return &StockQueryRepo{q: q}
}

func stockBase() *goqu.SelectDataset {
	return dialect.From(goqu.T("stock_levels").As("sl")).
		InnerJoin(goqu.T("slots").As("s"), goqu.On(goqu.Ex{"sl.slot_id": goqu.I("s.id")})).
		InnerJoin(goqu.T("racks").As("r"), goqu.On(goqu.Ex{"s.rack_id": goqu.I("r.id")})).
		InnerJoin(goqu.T("items").As("i"), goqu.On(goqu.Ex{"sl.item_id": goqu.I("i.id")})).
		LeftJoin(goqu.T("warehouses").As("w"), goqu.On(goqu.Ex{"r.warehouse_id": goqu.I("w.id")}))
}

func stockConditions(f repository.StockFilter) []exp.Expression {
	var conds []exp.Expression
	if f.WarehouseID != "" {
		conds = append(conds, goqu.Ex{"r.warehouse_id": f.WarehouseID})
	}
	if f.RackID != "" {
		conds = append(conds, goqu.Ex{"s.rack_id": f.RackID})
	}
	if f.SlotID != "" {
		conds = append(conds, goqu.Ex{"sl.slot_id": f.SlotID})
	}
	if f.ItemID != "" {
		conds = append(conds, goqu.Ex{"sl.item_id": f.ItemID})
	}
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		conds = append(conds, goqu.Or(
			goqu.I("i.item_code").ILike(kw),
			goqu.I("i.name").ILike(kw),
			goqu.I("s.code").ILike(kw),
		))
	}
	return conds
}

// ListBySlot lista stock ordenado por estantería y ubicación (recorrido físico).
func (r *StockQueryRepo) ListBySlot(ctx context.Context, filter repository.StockFilter, limit, offset int) ([]repository.StockListRow, error) {
	return r.list(ctx, filter, limit, offset,
		goqu.I("r.code").Asc(), goqu.I("s.code").Asc(), goqu.I("i.item_code").Asc())
}

// ListByItem lista stock ordenado por artículo y ubicación (dónde está cada referencia).
func (r *StockQueryRepo) ListByItem(ctx context.Context, filter repository.StockFilter, limit, offset int) ([]repository.StockListRow, error) {
	return r.list(ctx, filter, limit, offset,
		goqu.I("i.item_code").Asc(), goqu.I("r.code").Asc(), goqu.I("s.code").Asc())
}

func (r *StockQueryRepo) list(ctx context.Context, filter repository.StockFilter, limit, offset int, order ...exp.OrderedExpression) ([]repository.StockListRow, error) {
	ds := stockBase().
		Select(
			goqu.I("r.warehouse_id"), goqu.I("w.code"), goqu.I("w.name"),
			goqu.I("s.rack_id"), goqu.I("r.code"), goqu.I("r.name"),
			goqu.I("sl.slot_id"), goqu.I("s.code"),
			goqu.I("sl.item_id"), goqu.I("i.item_code"), goqu.I("i.name"),
			goqu.I("sl.qty"),
		).
		Where(stockConditions(filter)...).
		Order(order...).
		Limit(uint(limit)).
		Offset(uint(offset))

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build stock list query: %w", err)
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []repository.StockListRow
	for rows.Next() {
		var row repository.StockListRow
		if err := rows.Scan(
			&row.WarehouseID, &row.WarehouseCode, &row.WarehouseName,
			&row.RackID, &row.RackCode, &row.RackName,
			&row.SlotID, &row.SlotCode,
			&row.ItemID, &row.ItemCode, &row.ItemName,
			&row.Qty,
		); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Count cuenta las filas de stock que cumplen el filtro.
func (r *StockQueryRepo) Count(ctx context.Context, filter repository.StockFilter) (int64, error) {
	ds := stockBase().
		Select(goqu.COUNT(goqu.Star())).
		Where(stockConditions(filter)...)

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build stock count query: %w", err)
	}
	var total int64
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count stock: %w", err)
	}
	return total, nil
}
