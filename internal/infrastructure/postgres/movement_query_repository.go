package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

var dialect = goqu.Dialect("postgres")

var _ repository.MovementQueryRepository = (*MovementQueryRepo)(nil)

// MovementQueryRepo listados del libro de movimientos con joins de nombres.
// goqu arma el SQL (los filtros son combinables); pgx lo ejecuta.
type MovementQueryRepo struct {
	q Querier
}

// NewMovementQueryRepository construye el adaptador de lectura.
func NewMovementQueryRepository(q Querier) *MovementQueryRepo {
	return &MovementQueryRepo{q: q}
}

// movementBase dataset con todos los joins que resuelven nombres visibles:
// operador, artículo, ubicaciones (y sus estanterías, para filtrar por
// bodega/estantería) y el movimiento referenciado.
func movementBase() *goqu.SelectDataset {
	return dialect.From(goqu.T("movements").As("m")).
		InnerJoin(goqu.T("operators").As("o"), goqu.On(goqu.Ex{"m.operator_id": goqu.I("o.id")})).
		InnerJoin(goqu.T("items").As("i"), goqu.On(goqu.Ex{"m.item_id": goqu.I("i.id")})).
		LeftJoin(goqu.T("slots").As("fs"), goqu.On(goqu.Ex{"m.from_slot_id": goqu.I("fs.id")})).
		LeftJoin(goqu.T("slots").As("ts"), goqu.On(goqu.Ex{"m.to_slot_id": goqu.I("ts.id")})).
		LeftJoin(goqu.T("racks").As("fr"), goqu.On(goqu.Ex{"fs.rack_id": goqu.I("fr.id")})).
		LeftJoin(goqu.T("racks").As("tr"), goqu.On(goqu.Ex{"ts.rack_id": goqu.I("tr.id")})).
		LeftJoin(goqu.T("movements").As("rm"), goqu.On(goqu.Ex{"m.ref_movement_id": goqu.I("rm.id")}))
}

func movementConditions(f repository.MovementFilter) []exp.Expression {
	var conds []exp.Expression
	if f.Kind != "" {
		conds = append(conds, goqu.Ex{"m.kind": string(f.Kind)})
	}
	if f.ItemID != "" {
		conds = append(conds, goqu.Ex{"m.item_id": f.ItemID})
	}
	if f.OperatorID != "" {
		conds = append(conds, goqu.Ex{"m.operator_id": f.OperatorID})
	}
	if f.SlotID != "" {
		conds = append(conds, goqu.Or(
			goqu.Ex{"m.from_slot_id": f.SlotID},
			goqu.Ex{"m.to_slot_id": f.SlotID},
		))
	}
	if f.RackID != "" {
		conds = append(conds, goqu.Or(
			goqu.Ex{"fs.rack_id": f.RackID},
			goqu.Ex{"ts.rack_id": f.RackID},
		))
	}
	if f.WarehouseID != "" {
		conds = append(conds, goqu.Or(
			goqu.Ex{"fr.warehouse_id": f.WarehouseID},
			goqu.Ex{"tr.warehouse_id": f.WarehouseID},
		))
	}
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		conds = append(conds, goqu.Or(
			goqu.I("m.movement_no").ILike(kw),
			goqu.I("i.item_code").ILike(kw),
			goqu.I("i.name").ILike(kw),
			goqu.I("o.display_name").ILike(kw),
			goqu.I("fs.code").ILike(kw),
			goqu.I("ts.code").ILike(kw),
		))
	}
	if f.OccurredFrom != nil {
		conds = append(conds, goqu.I("m.occurred_at").Gte(*f.OccurredFrom))
	}
	if f.OccurredTo != nil {
		conds = append(conds, goqu.I("m.occurred_at").Lte(*f.OccurredTo))
	}
	return conds
}

// List devuelve una página de movimientos, más reciente primero (recorded_at
// como desempate: bajo la puerta de escritura es monótono).
func (r *MovementQueryRepo) List(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]repository.MovementListRow, error) {
	ds := movementBase().
		Select(
			goqu.I("m.id"), goqu.I("m.movement_no"), goqu.I("m.kind"),
			goqu.I("m.occurred_at"), goqu.I("m.recorded_at"),
			goqu.I("m.operator_id"), goqu.I("o.display_name"),
			goqu.I("m.item_id"), goqu.I("i.item_code"), goqu.I("i.name"),
			goqu.I("m.from_slot_id"), goqu.I("fs.code"),
			goqu.I("m.to_slot_id"), goqu.I("ts.code"),
			goqu.I("m.qty"), goqu.I("m.actual_qty"),
			goqu.I("m.ref_movement_id"), goqu.I("rm.movement_no"), goqu.I("rm.kind"),
			goqu.L("EXISTS (SELECT 1 FROM movements rev WHERE rev.kind = 'REVERSAL' AND rev.ref_movement_id = m.id)").As("has_reversal"),
			goqu.I("m.note"),
		).
		Where(movementConditions(filter)...).
		Order(goqu.I("m.occurred_at").Desc(), goqu.I("m.recorded_at").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset))

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build movement list query: %w", err)
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []repository.MovementListRow
	for rows.Next() {
		var row repository.MovementListRow
		var kind string
		var refKind *string
		if err := rows.Scan(
			&row.ID, &row.MovementNo, &kind,
			&row.OccurredAt, &row.RecordedAt,
			&row.OperatorID, &row.OperatorName,
			&row.ItemID, &row.ItemCode, &row.ItemName,
			&row.FromSlotID, &row.FromSlotCode,
			&row.ToSlotID, &row.ToSlotCode,
			&row.Qty, &row.ActualQty,
			&row.RefMovementID, &row.RefMovementNo, &refKind,
			&row.HasReversal,
			&row.Note,
		); err != nil {
			return nil, fmt.Errorf("scan movement row: %w", err)
		}
		row.Kind = entity.MovementKind(kind)
		row.RefKind = refKind
		list = append(list, row)
	}
	return list, rows.Err()
}

// Count cuenta los movimientos que cumplen el filtro.
func (r *MovementQueryRepo) Count(ctx context.Context, filter repository.MovementFilter) (int64, error) {
	ds := movementBase().
		Select(goqu.COUNT(goqu.I("m.id"))).
		Where(movementConditions(filter)...)

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build movement count query: %w", err)
	}
	var total int64
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}
