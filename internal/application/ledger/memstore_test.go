package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/entity"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake transaccional en memoria
//
// Implementa el mismo contrato que el TxRunner de postgres: los repos que
// recibe el callback trabajan sobre una copia del estado, y solo si el
// callback retorna nil la copia se convierte en el estado visible (commit).
// Un error descarta la copia completa (rollback).
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct {
	itemID string
	slotID string
}

type memState struct {
	movements []*entity.Movement
	stock     map[stockKey]*entity.StockLevel
}

func newMemState() *memState {
	return &memState{stock: make(map[stockKey]*entity.StockLevel)}
}

func (s *memState) clone() *memState {
	cp := newMemState()
	cp.movements = make([]*entity.Movement, len(s.movements))
	for i, m := range s.movements {
		mc := *m
		cp.movements[i] = &mc
	}
	for k, lv := range s.stock {
		lc := *lv
		cp.stock[k] = &lc
	}
	return cp
}

// memStore fake de almacenamiento con semántica de transacción.
type memStore struct {
	mu    sync.Mutex
	state *memState

	// failOnCreate hace fallar el create número n (1-based) de la próxima
	// transacción, para simular un fallo de almacenamiento a mitad de efecto.
	failOnCreate int
}

func newMemStore() *memStore {
	return &memStore{state: newMemState()}
}

func (s *memStore) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	mov := &memMovementRepo{st: staged, failOn: s.failOnCreate}
	stock := &memStockRepo{st: staged}
	if err := fn(mov, stock); err != nil {
		return err
	}
	s.state = staged
	s.failOnCreate = 0
	return nil
}

// qty lectura directa para asserts (fuera de transacción).
func (s *memStore) qty(itemID, slotID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	lv, ok := s.state.stock[stockKey{itemID, slotID}]
	if !ok {
		return 0
	}
	return lv.Qty
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.movements)
}

func (s *memStore) movementByNo(no string) *entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.state.movements {
		if m.MovementNo == no {
			mc := *m
			return &mc
		}
	}
	return nil
}

func (s *memStore) lastMovements(n int) []*entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > len(s.state.movements) {
		n = len(s.state.movements)
	}
	out := make([]*entity.Movement, 0, n)
	for _, m := range s.state.movements[len(s.state.movements)-n:] {
		mc := *m
		out = append(out, &mc)
	}
	return out
}

type memMovementRepo struct {
	st      *memState
	created int
	failOn  int
}

var errStorageFailure = errors.New("fallo de almacenamiento simulado")

func (r *memMovementRepo) Create(m *entity.Movement) error {
	r.created++
	if r.failOn > 0 && r.created == r.failOn {
		return errStorageFailure
	}
	for _, existing := range r.st.movements {
		if existing.MovementNo == m.MovementNo || existing.ID == m.ID {
			return fmt.Errorf("movimiento duplicado: %w", domain.ErrDuplicate)
		}
	}
	mc := *m
	r.st.movements = append(r.st.movements, &mc)
	return nil
}

func (r *memMovementRepo) GetByNo(movementNo string) (*entity.Movement, error) {
	for _, m := range r.st.movements {
		if m.MovementNo == movementNo {
			mc := *m
			return &mc, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.st.movements {
		if m.ID == id {
			mc := *m
			return &mc, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) HasReversal(refMovementID string) (bool, error) {
	for _, m := range r.st.movements {
		if m.Kind == entity.KindReversal && m.RefMovementID != nil && *m.RefMovementID == refMovementID {
			return true, nil
		}
	}
	return false, nil
}

type memStockRepo struct {
	st *memState
}

func (r *memStockRepo) Get(itemID, slotID string) (*entity.StockLevel, error) {
	if lv, ok := r.st.stock[stockKey{itemID, slotID}]; ok {
		lc := *lv
		return &lc, nil
	}
	return &entity.StockLevel{ItemID: itemID, SlotID: slotID, Qty: 0}, nil
}

func (r *memStockRepo) GetForUpdate(itemID, slotID string) (*entity.StockLevel, error) {
	// La transacción del fake ya es exclusiva; equivale a Get.
	return r.Get(itemID, slotID)
}

func (r *memStockRepo) Upsert(level *entity.StockLevel) error {
	// Misma guardia de última línea que la implementación de postgres.
	if level.Qty < 0 {
		return fmt.Errorf("el stock no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	lc := *level
	r.st.stock[stockKey{level.ItemID, level.SlotID}] = &lc
	return nil
}

// La guardia de no-negatividad vive también en el repo de stock, por debajo
// de las precondiciones del motor: un bug de capa superior no puede dejar
// stock negativo en silencio.
func TestStockRepo_GuardiaNoNegativa(t *testing.T) {
	store := newMemStore()
	err := store.Run(context.Background(), func(
		_ repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		return stockRepo.Upsert(&entity.StockLevel{ItemID: "x", SlotID: "y", Qty: -1})
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.EqualValues(t, 0, store.qty("x", "y"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fake de operadores
// ──────────────────────────────────────────────────────────────────────────────

type memOperatorRepo struct {
	mu  sync.Mutex
	ops map[string]*entity.Operator
}

func newMemOperatorRepo(ops ...*entity.Operator) *memOperatorRepo {
	r := &memOperatorRepo{ops: make(map[string]*entity.Operator)}
	for _, op := range ops {
		r.ops[op.ID] = op
	}
	return r
}

func (r *memOperatorRepo) Create(op *entity.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oc := *op
	r.ops[op.ID] = &oc
	return nil
}

func (r *memOperatorRepo) GetByID(id string) (*entity.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if op, ok := r.ops[id]; ok {
		oc := *op
		return &oc, nil
	}
	return nil, nil
}

func (r *memOperatorRepo) GetByUsername(username string) (*entity.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, op := range r.ops {
		if op.Username == username {
			oc := *op
			return &oc, nil
		}
	}
	return nil, nil
}

func (r *memOperatorRepo) List(limit, offset int) ([]*entity.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Operator, 0, len(r.ops))
	for _, op := range r.ops {
		oc := *op
		out = append(out, &oc)
	}
	return out, nil
}

func (r *memOperatorRepo) SetStatus(id, status string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if op, ok := r.ops[id]; ok {
		op.Status = status
		op.UpdatedAt = updatedAt
	}
	return nil
}
