package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/validation"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo lo que el validador consulta)
// ──────────────────────────────────────────────────────────────────────────────

type fakeParentRepo struct {
	byLocation map[string]int
	byItemType map[string]int
}

func (r *fakeParentRepo) Create(*entity.ParentItem) error                  { return nil }
func (r *fakeParentRepo) GetByID(string) (*entity.ParentItem, error)       { return nil, nil }
func (r *fakeParentRepo) GetBySKU(string) (*entity.ParentItem, error)      { return nil, nil }
func (r *fakeParentRepo) GetForUpdate(string) (*entity.ParentItem, error)  { return nil, nil }
func (r *fakeParentRepo) UpdateLocation(string, string, int, time.Time) (int64, error) {
	return 0, nil
}
func (r *fakeParentRepo) Update(*entity.ParentItem) error { return nil }
func (r *fakeParentRepo) List(string, string, int, int) ([]*entity.ParentItem, error) {
	return nil, nil
}
func (r *fakeParentRepo) CountByLocation(id string) (int, error) { return r.byLocation[id], nil }
func (r *fakeParentRepo) CountByItemType(id string) (int, error) { return r.byItemType[id], nil }
func (r *fakeParentRepo) Delete(string) error                    { return nil }

type fakeChildRepo struct {
	byItemType map[string]int
}

func (r *fakeChildRepo) Create(*entity.ChildItem) error                 { return nil }
func (r *fakeChildRepo) GetByID(string) (*entity.ChildItem, error)      { return nil, nil }
func (r *fakeChildRepo) GetBySKU(string) (*entity.ChildItem, error)     { return nil, nil }
func (r *fakeChildRepo) GetForUpdate(string) (*entity.ChildItem, error) { return nil, nil }
func (r *fakeChildRepo) UpdateParent(string, *string, time.Time) error  { return nil }
func (r *fakeChildRepo) Update(*entity.ChildItem) error                 { return nil }
func (r *fakeChildRepo) List(string, int, int) ([]*entity.ChildItem, error) {
	return nil, nil
}
func (r *fakeChildRepo) ListByParent(string) ([]*entity.ChildItem, error) { return nil, nil }
func (r *fakeChildRepo) CountByItemType(id string) (int, error)           { return r.byItemType[id], nil }
func (r *fakeChildRepo) Delete(string) error                              { return nil }

type fakeLocationRepo struct {
	items  map[string]*entity.Location
	byType map[string][]*entity.Location
}

func (r *fakeLocationRepo) Create(*entity.Location) error { return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.items[id], nil
}
func (r *fakeLocationRepo) Update(*entity.Location) error                 { return nil }
func (r *fakeLocationRepo) List(int, int) ([]*entity.Location, error)     { return nil, nil }
func (r *fakeLocationRepo) ListByLocationType(id string) ([]*entity.Location, error) {
	return r.byType[id], nil
}
func (r *fakeLocationRepo) Delete(string) error { return nil }

type fakeLocationTypeRepo struct {
	items map[string]*entity.LocationType
}

func (r *fakeLocationTypeRepo) Create(*entity.LocationType) error { return nil }
func (r *fakeLocationTypeRepo) GetByID(id string) (*entity.LocationType, error) {
	return r.items[id], nil
}
func (r *fakeLocationTypeRepo) Update(*entity.LocationType) error             { return nil }
func (r *fakeLocationTypeRepo) List(int, int) ([]*entity.LocationType, error) { return nil, nil }
func (r *fakeLocationTypeRepo) Delete(string) error                           { return nil }

type fakeItemTypeRepo struct {
	items map[string]*entity.ItemType
}

func (r *fakeItemTypeRepo) Create(*entity.ItemType) error { return nil }
func (r *fakeItemTypeRepo) GetByID(id string) (*entity.ItemType, error) {
	return r.items[id], nil
}
func (r *fakeItemTypeRepo) Update(*entity.ItemType) error                     { return nil }
func (r *fakeItemTypeRepo) List(string, int, int) ([]*entity.ItemType, error) { return nil, nil }
func (r *fakeItemTypeRepo) Delete(string) error                               { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	validator *validation.ConstraintValidator
	parents   *fakeParentRepo
	childs    *fakeChildRepo
	locations *fakeLocationRepo
}

func newFixture() *fixture {
	parents := &fakeParentRepo{byLocation: map[string]int{}, byItemType: map[string]int{}}
	childs := &fakeChildRepo{byItemType: map[string]int{}}
	locations := &fakeLocationRepo{
		items: map[string]*entity.Location{
			"loc-libre":   {ID: "loc-libre", Name: "Bodega libre"},
			"loc-ocupada": {ID: "loc-ocupada", Name: "Bodega ocupada"},
		},
		byType: map[string][]*entity.Location{},
	}
	locationTypes := &fakeLocationTypeRepo{items: map[string]*entity.LocationType{
		"lt-libre": {ID: "lt-libre", Name: "Bodega"},
		"lt-usado": {ID: "lt-usado", Name: "Vehículo"},
	}}
	itemTypes := &fakeItemTypeRepo{items: map[string]*entity.ItemType{
		"it-parent": {ID: "it-parent", Name: "Rack", Category: entity.ItemCategoryParent},
		"it-child":  {ID: "it-child", Name: "Cámara", Category: entity.ItemCategoryChild},
	}}
	return &fixture{
		validator: validation.NewConstraintValidator(parents, childs, locations, locationTypes, itemTypes),
		parents:   parents,
		childs:    childs,
		locations: locations,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCanDeleteLocation_SinDependientes(t *testing.T) {
	f := newFixture()

	check, err := f.validator.CanDeleteLocation("loc-libre")
	require.NoError(t, err)
	assert.True(t, check.CanDelete)
	assert.Zero(t, check.Count)
}

func TestCanDeleteLocation_BloqueadaPorActivos(t *testing.T) {
	f := newFixture()
	f.parents.byLocation["loc-ocupada"] = 3

	check, err := f.validator.CanDeleteLocation("loc-ocupada")
	require.NoError(t, err)
	assert.False(t, check.CanDelete)
	assert.Equal(t, 3, check.Count)
	assert.NotEmpty(t, check.Reason)
}

func TestCanDeleteLocation_Inexistente_RetornaNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.validator.CanDeleteLocation("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCanDeleteLocationType_NombraBloqueantes(t *testing.T) {
	f := newFixture()
	f.locations.byType["lt-usado"] = []*entity.Location{
		{ID: "l1", Name: "Camión 1"},
		{ID: "l2", Name: "Camión 2"},
	}

	check, err := f.validator.CanDeleteLocationType("lt-usado")
	require.NoError(t, err)
	assert.False(t, check.CanDelete)
	assert.Equal(t, []string{"Camión 1", "Camión 2"}, check.Blockers,
		"los bloqueantes deben nombrarse para un mensaje accionable")

	check, err = f.validator.CanDeleteLocationType("lt-libre")
	require.NoError(t, err)
	assert.True(t, check.CanDelete)
}

func TestCanDeleteItemType_CuentaPorCategoria(t *testing.T) {
	f := newFixture()
	f.parents.byItemType["it-parent"] = 2
	f.childs.byItemType["it-child"] = 5

	check, err := f.validator.CanDeleteItemType("it-parent")
	require.NoError(t, err)
	assert.False(t, check.CanDelete)
	assert.Equal(t, 2, check.Count, "un tipo parent se bloquea por activos padre")

	check, err = f.validator.CanDeleteItemType("it-child")
	require.NoError(t, err)
	assert.False(t, check.CanDelete)
	assert.Equal(t, 5, check.Count, "un tipo child se bloquea por activos hijo")
}

func TestEnsureDeletable_RetornaDependencyError(t *testing.T) {
	f := newFixture()
	f.parents.byLocation["loc-ocupada"] = 1

	err := f.validator.EnsureLocationDeletable("loc-ocupada")
	require.Error(t, err)

	dep, ok := domain.AsDependencyError(err)
	require.True(t, ok, "el error debe ser *domain.DependencyError")
	assert.Equal(t, "location", dep.Resource)
	assert.Equal(t, 1, dep.Count)

	assert.NoError(t, f.validator.EnsureLocationDeletable("loc-libre"))
}
