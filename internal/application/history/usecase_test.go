package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/history"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMoveRepo struct {
	rows       []*entity.MoveHistory
	lastFilter repository.MoveHistoryFilter
}

func (r *fakeMoveRepo) Create(m *entity.MoveHistory) error { r.rows = append(r.rows, m); return nil }

func (r *fakeMoveRepo) List(filter repository.MoveHistoryFilter) ([]*entity.MoveHistory, error) {
	r.lastFilter = filter
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

type fakeAssignRepo struct {
	rows []*entity.AssignmentHistory
}

func (r *fakeAssignRepo) Create(a *entity.AssignmentHistory) error {
	r.rows = append(r.rows, a)
	return nil
}

func (r *fakeAssignRepo) List(filter repository.AssignmentHistoryFilter) ([]*entity.AssignmentHistory, error) {
	return r.rows, nil
}

func (r *fakeAssignRepo) LastForChildAt(childItemID string, at time.Time) (*entity.AssignmentHistory, error) {
	var last *entity.AssignmentHistory
	for _, a := range r.rows {
		if a.ChildItemID == childItemID && !a.ChangedAt.After(at) {
			last = a
		}
	}
	return last, nil
}

type fakeChildRepo struct {
	items map[string]*entity.ChildItem
}

func (r *fakeChildRepo) Create(item *entity.ChildItem) error { r.items[item.ID] = item; return nil }
func (r *fakeChildRepo) GetByID(id string) (*entity.ChildItem, error) {
	return r.items[id], nil
}
func (r *fakeChildRepo) GetBySKU(string) (*entity.ChildItem, error)        { return nil, nil }
func (r *fakeChildRepo) GetForUpdate(id string) (*entity.ChildItem, error) { return r.items[id], nil }
func (r *fakeChildRepo) UpdateParent(string, *string, time.Time) error     { return nil }
func (r *fakeChildRepo) Update(*entity.ChildItem) error                    { return nil }
func (r *fakeChildRepo) List(string, int, int) ([]*entity.ChildItem, error) {
	return nil, nil
}
func (r *fakeChildRepo) ListByParent(string) ([]*entity.ChildItem, error) { return nil, nil }
func (r *fakeChildRepo) CountByItemType(string) (int, error)              { return 0, nil }
func (r *fakeChildRepo) Delete(string) error                              { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: línea de tiempo de auditoría
//
//	t1: hijo C se asigna a P1
//	t2: P1 se mueve a L1
//	t3: C se reasigna a P2 (P2 está en L2 desde t0)
// ──────────────────────────────────────────────────────────────────────────────

const (
	childID = "c-01"
	p1      = "p-01"
	p2      = "p-02"
	l1      = "l-01"
	l2      = "l-02"
	actorID = "u-01"
)

var (
	t0 = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	t1 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t3 = time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
)

func strptr(s string) *string { return &s }

func newFixture() (*history.HistoryQueryUseCase, *fakeMoveRepo) {
	moves := &fakeMoveRepo{rows: []*entity.MoveHistory{
		{ID: "m0", ParentItemID: p2, ToLocationID: l2, MovedAt: t0, MovedBy: actorID},
		{ID: "m1", ParentItemID: p1, ToLocationID: l1, MovedAt: t2, MovedBy: actorID},
	}}
	assigns := &fakeAssignRepo{rows: []*entity.AssignmentHistory{
		{ID: "a1", ChildItemID: childID, PreviousParentID: nil, NewParentID: strptr(p1), ChangedAt: t1, ChangedBy: actorID},
		{ID: "a2", ChildItemID: childID, PreviousParentID: strptr(p1), NewParentID: strptr(p2), ChangedAt: t3, ChangedBy: actorID},
	}}
	childs := &fakeChildRepo{items: map[string]*entity.ChildItem{
		childID: {ID: childID, SKU: "CAM-01", ParentItemID: strptr(p2)},
	}}
	return history.NewHistoryQueryUseCase(moves, assigns, childs), moves
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ResolveChildLocation: "¿dónde estaba C en T?" se responde siempre por
// la unión asignación→movimiento del padre, nunca con filas propias del hijo.
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveChildLocation_AntesDePrimeraAsignacion(t *testing.T) {
	uc, _ := newFixture()

	at := t1.Add(-time.Minute)
	out, err := uc.ResolveChildLocation(childID, &at)
	require.NoError(t, err)

	assert.Nil(t, out.ParentItemID, "antes de t1 el hijo no tenía padre")
	assert.Nil(t, out.LocationID, "sin padre no hay ubicación efectiva")
}

func TestResolveChildLocation_PadreAunSinUbicar(t *testing.T) {
	uc, _ := newFixture()

	// Entre t1 y t2: asignado a P1, pero P1 aún no se había movido.
	at := t1.Add(time.Minute)
	out, err := uc.ResolveChildLocation(childID, &at)
	require.NoError(t, err)

	require.NotNil(t, out.ParentItemID)
	assert.Equal(t, p1, *out.ParentItemID)
	assert.Nil(t, out.LocationID, "el padre no tenía movimientos hasta ese instante")
}

func TestResolveChildLocation_DerivaDelMovimientoDelPadre(t *testing.T) {
	uc, _ := newFixture()

	// Entre t2 y t3: asignado a P1, que ya está en L1.
	at := t2.Add(time.Minute)
	out, err := uc.ResolveChildLocation(childID, &at)
	require.NoError(t, err)

	assert.Equal(t, p1, *out.ParentItemID)
	require.NotNil(t, out.LocationID)
	assert.Equal(t, l1, *out.LocationID)
}

func TestResolveChildLocation_TrasReasignacion(t *testing.T) {
	uc, _ := newFixture()

	// Después de t3: asignado a P2, que está en L2 desde t0.
	at := t3.Add(time.Minute)
	out, err := uc.ResolveChildLocation(childID, &at)
	require.NoError(t, err)

	assert.Equal(t, p2, *out.ParentItemID)
	require.NotNil(t, out.LocationID)
	assert.Equal(t, l2, *out.LocationID)
}

func TestResolveChildLocation_InstanteExacto_EsInclusivo(t *testing.T) {
	uc, _ := newFixture()

	// En t2 exacto el movimiento de P1 ya cuenta (<=).
	out, err := uc.ResolveChildLocation(childID, &t2)
	require.NoError(t, err)

	require.NotNil(t, out.LocationID)
	assert.Equal(t, l1, *out.LocationID)
}

func TestResolveChildLocation_SinInstante_UsaEstadoActual(t *testing.T) {
	uc, _ := newFixture()

	out, err := uc.ResolveChildLocation(childID, nil)
	require.NoError(t, err)

	assert.Equal(t, p2, *out.ParentItemID, "sin at, el padre sale del estado actual del hijo")
	assert.Equal(t, l2, *out.LocationID)
}

func TestResolveChildLocation_HijoInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.ResolveChildLocation("no-existe", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestGetMoveHistory_NormalizaPaginacion(t *testing.T) {
	uc, moves := newFixture()

	_, err := uc.GetMoveHistory(dto.MoveHistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 50, moves.lastFilter.Limit, "límite por defecto")
	assert.Equal(t, 0, moves.lastFilter.Offset)

	_, err = uc.GetMoveHistory(dto.MoveHistoryQuery{Limit: 10000, Offset: -5})
	require.NoError(t, err)
	assert.Equal(t, 500, moves.lastFilter.Limit, "límite acotado")
	assert.Equal(t, 0, moves.lastFilter.Offset, "offset negativo se normaliza")
}

func TestGetMoveHistory_PropagaFiltros(t *testing.T) {
	uc, moves := newFixture()

	from := t1
	to := t3
	_, err := uc.GetMoveHistory(dto.MoveHistoryQuery{
		ParentItemID: p1,
		LocationID:   l1,
		ItemTypeID:   "it-rack",
		From:         &from,
		To:           &to,
		Descending:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, p1, moves.lastFilter.ParentItemID)
	assert.Equal(t, l1, moves.lastFilter.LocationID)
	assert.Equal(t, "it-rack", moves.lastFilter.ItemTypeID)
	assert.Equal(t, &from, moves.lastFilter.From)
	assert.Equal(t, &to, moves.lastFilter.To)
	assert.True(t, moves.lastFilter.Descending)
}
