package movement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/movement"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeParentRepo struct {
	items map[string]*entity.ParentItem
	// staleOnUpdate simula una escritura concurrente que dejó obsoleta la
	// versión leída: UpdateLocation no afecta filas.
	staleOnUpdate bool
}

func newFakeParentRepo() *fakeParentRepo {
	return &fakeParentRepo{items: map[string]*entity.ParentItem{}}
}

func (r *fakeParentRepo) Create(item *entity.ParentItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeParentRepo) GetByID(id string) (*entity.ParentItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeParentRepo) GetBySKU(sku string) (*entity.ParentItem, error) {
	for _, item := range r.items {
		if item.SKU == sku {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeParentRepo) GetForUpdate(id string) (*entity.ParentItem, error) {
	return r.GetByID(id)
}

func (r *fakeParentRepo) UpdateLocation(id string, locationID string, version int, updatedAt time.Time) (int64, error) {
	item, ok := r.items[id]
	if !ok {
		return 0, nil
	}
	if r.staleOnUpdate || item.Version != version {
		return 0, nil
	}
	item.CurrentLocationID = &locationID
	item.Version++
	item.UpdatedAt = updatedAt
	return 1, nil
}

func (r *fakeParentRepo) Update(item *entity.ParentItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeParentRepo) List(itemTypeID, locationID string, limit, offset int) ([]*entity.ParentItem, error) {
	return nil, nil
}

func (r *fakeParentRepo) CountByLocation(locationID string) (int, error) { return 0, nil }
func (r *fakeParentRepo) CountByItemType(itemTypeID string) (int, error) { return 0, nil }
func (r *fakeParentRepo) Delete(id string) error                         { delete(r.items, id); return nil }

func (r *fakeParentRepo) snapshot() map[string]*entity.ParentItem {
	snap := make(map[string]*entity.ParentItem, len(r.items))
	for k, v := range r.items {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

type fakeChildRepo struct {
	items map[string]*entity.ChildItem
}

func newFakeChildRepo() *fakeChildRepo {
	return &fakeChildRepo{items: map[string]*entity.ChildItem{}}
}

func (r *fakeChildRepo) Create(item *entity.ChildItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeChildRepo) GetByID(id string) (*entity.ChildItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakeChildRepo) GetBySKU(sku string) (*entity.ChildItem, error)    { return nil, nil }
func (r *fakeChildRepo) GetForUpdate(id string) (*entity.ChildItem, error) { return r.GetByID(id) }

func (r *fakeChildRepo) UpdateParent(id string, parentItemID *string, updatedAt time.Time) error {
	item, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.ParentItemID = parentItemID
	item.UpdatedAt = updatedAt
	return nil
}

func (r *fakeChildRepo) Update(item *entity.ChildItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeChildRepo) List(itemTypeID string, limit, offset int) ([]*entity.ChildItem, error) {
	return nil, nil
}

func (r *fakeChildRepo) ListByParent(parentItemID string) ([]*entity.ChildItem, error) {
	var out []*entity.ChildItem
	for _, item := range r.items {
		if item.ParentItemID != nil && *item.ParentItemID == parentItemID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeChildRepo) CountByItemType(itemTypeID string) (int, error) { return 0, nil }
func (r *fakeChildRepo) Delete(id string) error                         { delete(r.items, id); return nil }

type fakeMoveRepo struct {
	rows      []*entity.MoveHistory
	createErr error
}

func (r *fakeMoveRepo) Create(move *entity.MoveHistory) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *move
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeMoveRepo) List(filter repository.MoveHistoryFilter) ([]*entity.MoveHistory, error) {
	return r.rows, nil
}

func (r *fakeMoveRepo) LastForParentAt(parentItemID string, at time.Time) (*entity.MoveHistory, error) {
	var last *entity.MoveHistory
	for _, m := range r.rows {
		if m.ParentItemID == parentItemID && !m.MovedAt.After(at) {
			last = m
		}
	}
	return last, nil
}

type fakeLocationRepo struct {
	items map[string]*entity.Location
}

func (r *fakeLocationRepo) Create(l *entity.Location) error { r.items[l.ID] = l; return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return l, nil
}
func (r *fakeLocationRepo) Update(l *entity.Location) error                   { return nil }
func (r *fakeLocationRepo) List(limit, offset int) ([]*entity.Location, error) { return nil, nil }
func (r *fakeLocationRepo) ListByLocationType(id string) ([]*entity.Location, error) {
	return nil, nil
}
func (r *fakeLocationRepo) Delete(id string) error { return nil }

// fakeTxRunner imita la semántica transaccional: toma un snapshot del estado
// mutable antes de ejecutar fn y lo restaura si fn devuelve error (rollback).
type fakeTxRunner struct {
	parent *fakeParentRepo
	child  *fakeChildRepo
	move   *fakeMoveRepo
}

func (t *fakeTxRunner) RunMove(ctx context.Context, fn func(
	parentRepo repository.ParentItemRepository,
	childRepo repository.ChildItemRepository,
	moveRepo repository.MoveHistoryRepository,
) error) error {
	parentSnap := t.parent.snapshot()
	moveSnap := len(t.move.rows)
	if err := fn(t.parent, t.child, t.move); err != nil {
		t.parent.items = parentSnap
		t.move.rows = t.move.rows[:moveSnap]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	actorID  = "00000000-0000-0000-0000-0000000000aa"
	parentID = "00000000-0000-0000-0000-000000000001"
	locA     = "00000000-0000-0000-0000-00000000000a"
	locB     = "00000000-0000-0000-0000-00000000000b"
)

type moveFixture struct {
	uc        *movement.MoveParentItemUseCase
	parents   *fakeParentRepo
	children  *fakeChildRepo
	moves     *fakeMoveRepo
	locations *fakeLocationRepo
}

func newMoveFixture(t *testing.T) *moveFixture {
	t.Helper()
	parents := newFakeParentRepo()
	children := newFakeChildRepo()
	moves := &fakeMoveRepo{}
	locations := &fakeLocationRepo{items: map[string]*entity.Location{
		locA: {ID: locA, Name: "Bodega A"},
		locB: {ID: locB, Name: "Bodega B"},
	}}
	runner := &fakeTxRunner{parent: parents, child: children, move: moves}
	uc := movement.NewMoveParentItemUseCase(runner, parents, locations)
	return &moveFixture{uc: uc, parents: parents, children: children, moves: moves, locations: locations}
}

func (f *moveFixture) seedParent(t *testing.T) {
	t.Helper()
	require.NoError(t, f.parents.Create(&entity.ParentItem{
		ID: parentID, SKU: "RACK-01", Version: 1, CreatedBy: actorID,
	}))
}

func strptr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// La primera colocación deja from_location_id nil y una sola fila de historial.
func TestMove_PrimeraColocacion(t *testing.T) {
	f := newMoveFixture(t)
	f.seedParent(t)

	out, err := f.uc.Move(context.Background(), movement.MoveInputDTO{
		ParentItemID: parentID, ToLocationID: locA, ActorID: actorID, Notes: "alta inicial",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Nil(t, out.FromLocationID, "primera colocación: origen debe ser nil")
	assert.Equal(t, locA, out.ToLocationID)
	assert.Equal(t, actorID, out.MovedBy)

	updated, _ := f.parents.GetByID(parentID)
	require.NotNil(t, updated.CurrentLocationID)
	assert.Equal(t, locA, *updated.CurrentLocationID)
	assert.Equal(t, 2, updated.Version, "la versión debe avanzar con el movimiento")

	require.Len(t, f.moves.rows, 1, "exactamente una fila de historial por movimiento")
	assert.Nil(t, f.moves.rows[0].FromLocationID)
	assert.Equal(t, locA, f.moves.rows[0].ToLocationID)
	assert.Equal(t, "alta inicial", f.moves.rows[0].Notes)
}

// El movimiento posterior registra origen y destino reales.
func TestMove_RegistraOrigenYDestino(t *testing.T) {
	f := newMoveFixture(t)
	f.seedParent(t)

	_, err := f.uc.Move(context.Background(), movement.MoveInputDTO{
		ParentItemID: parentID, ToLocationID: locA, ActorID: actorID,
	})
	require.NoError(t, err)

	out, err := f.uc.Move(context.Background(), movement.MoveInputDTO{
		ParentItemID: parentID, ToLocationID: locB, ActorID: actorID,
	})
	require.NoError(t, err)

	require.NotNil(t, out.FromLocationID)
	assert.Equal(t, locA, *out.FromLocationID)
	assert.Equal(t, locB, out.ToLocationID)
	require.Len(t, f.moves.rows, 2)
}

// Los hijos asignados viajan por derivación: aparecen en el conjunto de
// cascada y NO generan filas de historial propias.
func TestMove_CascadaPorDerivacion(t *testing.T) {
	f := newMoveFixture(t)
	f.seedParent(t)
	require.NoError(t, f.children.Create(&entity.ChildItem{ID: "c1", SKU: "CAM-01", ParentItemID: strptr(parentID)}))
	require.NoError(t, f.children.Create(&entity.ChildItem{ID: "c2", SKU: "CAM-02", ParentItemID: strptr(parentID)}))
	require.NoError(t, f.children.Create(&entity.ChildItem{ID: "c3", SKU: "CAM-03"})) // sin asignar

	out, err := f.uc.Move(context.Background(), movement.MoveInputDTO{
		ParentItemID: parentID, ToLocationID: locA, ActorID: actorID,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"c1", "c2"}, out.CascadedChildIDs,
		"solo los hijos asignados forman el conjunto de cascada")
	assert.Len(t, f.moves.rows, 1,
		"mover un padre con N hijos escribe una sola fila de historial, no N+1")
}

// Un movimiento a la ubicación actual se registra igual (intención explícita).
func TestMove_MismaUbicacionSeRegistra(t *testing.T) {
	f := newMoveFixture(t)
	f.seedParent(t)

	_, err := f.uc.Move(context.Background(), movement.MoveInputDTO{
		ParentItemID: parentID, ToLocationID: locA, ActorID: actorID,
	})
	require.NoError(t, err)

	out, err := f.uc.Move(context.Background(), movement.MoveInputDTO{
		ParentItemID: parentID, ToLocationID: locA, ActorID: actorID,
	})
	require.NoError(t, err)

	require.NotNil(t, out.FromLocationID)
	assert.Equal(t, locA, *out.FromLocationID)
	assert.Equal(t, locA, out.ToLocationID)
	assert.Len(t, f.moves.rows, 2)
}

func TestMove_PadreInexistente_RetornaNotFound(t *testing.T) {
	f := newMoveFixture(t)

	_, err := f.uc.Move(context.Background(), movement.MoveInputDTO{
		ParentItemID: "no-existe", ToLocationID: locA, ActorID: actorID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMove_DestinoInexistente_RetornaInvalidDestination(t *testing.T) {
	f := newMoveFixture(t)
	f.seedParent(t)

	_, err := f.uc.Move(context.Background(), movement.MoveInputDTO{
		ParentItemID: parentID, ToLocationID: "no-existe", ActorID: actorID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDestination)

	assert.Empty(t, f.moves.rows, "un movimiento rechazado no deja historial")
	unchanged, _ := f.parents.GetByID(parentID)
	assert.Nil(t, unchanged.CurrentLocationID, "un movimiento rechazado no cambia la ubicación")
}

func TestMove_EntradaVacia_RetornaInvalidInput(t *testing.T) {
	f := newMoveFixture(t)

	_, err := f.uc.Move(context.Background(), movement.MoveInputDTO{ToLocationID: locA, ActorID: actorID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Move(context.Background(), movement.MoveInputDTO{ParentItemID: parentID, ActorID: actorID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Move(context.Background(), movement.MoveInputDTO{ParentItemID: parentID, ToLocationID: locA})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Versión obsoleta (escritura concurrente ganó) → ErrConflict y rollback total.
func TestMove_ConflictoConcurrente_RetornaConflict(t *testing.T) {
	f := newMoveFixture(t)
	f.seedParent(t)
	f.parents.staleOnUpdate = true

	_, err := f.uc.Move(context.Background(), movement.MoveInputDTO{
		ParentItemID: parentID, ToLocationID: locA, ActorID: actorID,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	unchanged, _ := f.parents.GetByID(parentID)
	assert.Nil(t, unchanged.CurrentLocationID, "el conflicto debe dejar el estado intacto")
	assert.Empty(t, f.moves.rows, "el conflicto no debe dejar historial")
}

// Si la escritura del historial falla, la actualización de ubicación también
// se descarta: nunca hay movimiento sin su fila de auditoría.
func TestMove_FalloEnHistorial_RevierteTodo(t *testing.T) {
	f := newMoveFixture(t)
	f.seedParent(t)
	f.moves.createErr = errors.New("disco lleno")

	_, err := f.uc.Move(context.Background(), movement.MoveInputDTO{
		ParentItemID: parentID, ToLocationID: locA, ActorID: actorID,
	})
	require.Error(t, err)

	unchanged, _ := f.parents.GetByID(parentID)
	assert.Nil(t, unchanged.CurrentLocationID)
	assert.Equal(t, 1, unchanged.Version, "el rollback debe restaurar la versión")
	assert.Empty(t, f.moves.rows)
}
