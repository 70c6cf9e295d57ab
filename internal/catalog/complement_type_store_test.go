package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplementTypeStoreFetchIsWorkspaceScoped(t *testing.T) {
	db := newTestDB(t)
	store := NewComplementTypeStore(db)

	w1 := createWorkspace(t, db, "Plaza Victoria")
	w2 := createWorkspace(t, db, "Plaza Norte")

	group, err := store.Create(w1.ID, CreateComplementTypeParams{
		Name:          "Carnes",
		Required:      true,
		MaxSelectable: 1,
	})
	require.NoError(t, err)

	_, err = store.Fetch(w2.ID, group.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := store.Fetch(w1.ID, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carnes", got.Name)
	assert.True(t, got.Required)
	assert.Equal(t, 1, got.MaxSelectable)
	assert.Empty(t, got.ProductComplements)
}

func TestComplementTypeStoreUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	store := NewComplementTypeStore(db)

	ws := createWorkspace(t, db, "Plaza Victoria")

	group, err := store.Create(ws.ID, CreateComplementTypeParams{
		Name:          "Vegetales",
		Required:      true,
		MaxSelectable: 3,
	})
	require.NoError(t, err)

	max := 5
	updated, err := store.Update(ws.ID, group.ID, UpdateComplementTypeParams{MaxSelectable: &max})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.MaxSelectable)
	assert.Equal(t, "Vegetales", updated.Name)
	assert.True(t, updated.Required)

	_, err = store.Update(ws.ID, 9999, UpdateComplementTypeParams{MaxSelectable: &max})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComplementTypeStoreIndexSharedGroup(t *testing.T) {
	db := newTestDB(t)
	products := NewProductStore(db)
	types := NewComplementTypeStore(db)
	complements := NewComplementStore(db)

	ws := createWorkspace(t, db, "Plaza Victoria")

	first, err := products.Create(ws.ID, CreateProductParams{
		Name:        "Hamburguesa",
		Description: "Simple",
		Price:       1000,
	})
	require.NoError(t, err)

	second, err := products.Create(ws.ID, CreateProductParams{
		Name:        "Completo",
		Description: "Italiano",
		Price:       1800,
	})
	require.NoError(t, err)

	tree, err := products.AddComplementType(ws.ID, first.ID, CreateComplementTypeParams{
		Name:          "Salsas",
		MaxSelectable: 3,
	})
	require.NoError(t, err)
	groupID := tree.ProductComplementTypes[0].ID

	_, err = complements.Create(groupID, CreateComplementParams{Name: "Ketchup", Price: 0})
	require.NoError(t, err)

	// The same group is reusable across products via a second link.
	require.NoError(t, db.Exec(
		"INSERT INTO product_complement_type_links (product_id, product_complement_type_id, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)",
		second.ID, groupID,
	).Error)

	for _, productID := range []uint{first.ID, second.ID} {
		groups, err := types.Index(productID)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, groupID, groups[0].ID)
		require.Len(t, groups[0].ProductComplements, 1)
		assert.Equal(t, "Ketchup", groups[0].ProductComplements[0].Name)
	}
}
