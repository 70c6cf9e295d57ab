package catalog

import (
	"testing"

	"carta-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGroup(t *testing.T, store *ComplementTypeStore, workspaceID uint, name string) uint {
	t.Helper()

	group, err := store.Create(workspaceID, CreateComplementTypeParams{
		Name:          name,
		Required:      false,
		MaxSelectable: 3,
	})
	require.NoError(t, err)
	return group.ID
}

func TestComplementStoreCreateDerivesIncrement(t *testing.T) {
	db := newTestDB(t)
	types := NewComplementTypeStore(db)
	store := NewComplementStore(db)

	ws := createWorkspace(t, db, "Plaza Victoria")
	groupID := seedGroup(t, types, ws.ID, "Vegetales")

	free, err := store.Create(groupID, CreateComplementParams{Name: "Lechuga", Price: 0})
	require.NoError(t, err)
	assert.False(t, free.Increment)

	paid, err := store.Create(groupID, CreateComplementParams{Name: "Tocino", Price: 500})
	require.NoError(t, err)
	assert.True(t, paid.Increment)
}

func TestComplementStoreUpdatePriceRecomputesIncrement(t *testing.T) {
	db := newTestDB(t)
	types := NewComplementTypeStore(db)
	store := NewComplementStore(db)

	ws := createWorkspace(t, db, "Plaza Victoria")
	groupID := seedGroup(t, types, ws.ID, "Vegetales")

	created, err := store.Create(groupID, CreateComplementParams{Name: "Maíz", Price: 0})
	require.NoError(t, err)
	require.False(t, created.Increment)

	newPrice := int64(400)
	updated, err := store.Update(groupID, created.ID, UpdateComplementParams{Price: &newPrice})
	require.NoError(t, err)

	assert.True(t, updated.Increment)
	assert.Equal(t, int64(400), updated.Price)
	// Fields not in the patch stay put.
	assert.Equal(t, "Maíz", updated.Name)
	assert.False(t, updated.IsDisabled)
}

func TestComplementStoreUpdateWithoutPriceKeepsIncrement(t *testing.T) {
	db := newTestDB(t)
	types := NewComplementTypeStore(db)
	store := NewComplementStore(db)

	ws := createWorkspace(t, db, "Plaza Victoria")
	groupID := seedGroup(t, types, ws.ID, "Embutidos")

	created, err := store.Create(groupID, CreateComplementParams{Name: "Jamón", Price: 300})
	require.NoError(t, err)
	require.True(t, created.Increment)

	name := "Jamón serrano"
	updated, err := store.Update(groupID, created.ID, UpdateComplementParams{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Jamón serrano", updated.Name)
	assert.True(t, updated.Increment)
	assert.Equal(t, int64(300), updated.Price)
}

func TestComplementStoreFetchMissing(t *testing.T) {
	db := newTestDB(t)
	store := NewComplementStore(db)

	_, err := store.Fetch(123)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Update(1, 123, UpdateComplementParams{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComplementStoreUpdateScopedToGroup(t *testing.T) {
	db := newTestDB(t)
	types := NewComplementTypeStore(db)
	store := NewComplementStore(db)

	w1 := createWorkspace(t, db, "Plaza Victoria")
	w2 := createWorkspace(t, db, "Plaza Norte")

	ownGroup := seedGroup(t, types, w1.ID, "Salsas")
	foreignGroup := seedGroup(t, types, w2.ID, "Vegetales")

	foreign, err := store.Create(foreignGroup, CreateComplementParams{Name: "Ketchup", Price: 0})
	require.NoError(t, err)

	// Patching a complement through a group it does not belong to must
	// miss, even when both ids exist.
	name := "Robado"
	_, err = store.Update(ownGroup, foreign.ID, UpdateComplementParams{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	var row models.ProductComplement
	require.NoError(t, db.First(&row, "id = ?", foreign.ID).Error)
	assert.Equal(t, "Ketchup", row.Name)
}

func TestComplementStoreIndexKeepsInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	types := NewComplementTypeStore(db)
	store := NewComplementStore(db)

	ws := createWorkspace(t, db, "Plaza Victoria")
	groupID := seedGroup(t, types, ws.ID, "Salsas")

	for _, name := range []string{"Ketchup", "Mostaza", "Mayonesa"} {
		_, err := store.Create(groupID, CreateComplementParams{Name: name, Price: 0})
		require.NoError(t, err)
	}

	list, err := store.Index(groupID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ketchup", list[0].Name)
	assert.Equal(t, "Mostaza", list[1].Name)
	assert.Equal(t, "Mayonesa", list[2].Name)

	var rows []models.ProductComplement
	require.NoError(t, db.Find(&rows).Error)
	assert.Len(t, rows, 3)
}
