package service

import (
	"testing"

	"github.com/rshzvr/recipe-app-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTagsCreatesMissing(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d, "creator")

	tags, err := ResolveTags(d, user.ID, []string{"Breakfast", "Dinner"})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	for _, tag := range tags {
		assert.NotZero(t, tag.ID)
		assert.Equal(t, user.ID, tag.UserID)
	}

	var n int64
	require.NoError(t, d.Model(model.Tag{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestResolveTagsReusesExisting(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d, "reuser")

	existing := model.Tag{UserID: user.ID, Name: "Indian"}
	require.NoError(t, d.Create(&existing).Error)

	tags, err := ResolveTags(d, user.ID, []string{"Indian", "Breakfast"})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	assert.Equal(t, existing.ID, tags[0].ID)

	var n int64
	require.NoError(t, d.Model(model.Tag{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestResolveTagsCollapsesDuplicates(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d, "dedup")

	// Trimming happens before deduplication, so all three are one name
	tags, err := ResolveTags(d, user.ID, []string{"Lunch", "Lunch", " Lunch "})
	require.NoError(t, err)
	require.Len(t, tags, 1)

	assert.Equal(t, "Lunch", tags[0].Name)
}

func TestResolveTagsRejectsBlankNames(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d, "blank")

	_, err := ResolveTags(d, user.ID, []string{"Dinner", ""})
	assert.ErrorIs(t, err, ErrBlankName)

	_, err = ResolveTags(d, user.ID, []string{"   "})
	assert.ErrorIs(t, err, ErrBlankName)
}

func TestResolveTagsNamespacedPerUser(t *testing.T) {
	d := newTestDB(t)
	alice := seedUser(t, d, "alice")
	bob := seedUser(t, d, "bob")

	aliceTags, err := ResolveTags(d, alice.ID, []string{"Vegan"})
	require.NoError(t, err)

	// The same name for another user is a separate record
	bobTags, err := ResolveTags(d, bob.ID, []string{"Vegan"})
	require.NoError(t, err)

	assert.NotEqual(t, aliceTags[0].ID, bobTags[0].ID)

	var n int64
	require.NoError(t, d.Model(model.Tag{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestResolveIngredients(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d, "pantry")

	existing := model.Ingredient{UserID: user.ID, Name: "Salt"}
	require.NoError(t, d.Create(&existing).Error)

	ingredients, err := ResolveIngredients(d, user.ID, []string{"Salt", "Pepper", "Salt"})
	require.NoError(t, err)
	require.Len(t, ingredients, 2)

	assert.Equal(t, existing.ID, ingredients[0].ID)
	assert.Equal(t, "Pepper", ingredients[1].Name)

	_, err = ResolveIngredients(d, user.ID, []string{""})
	assert.ErrorIs(t, err, ErrBlankName)
}
