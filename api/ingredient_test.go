package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listIngredients(t *testing.T, a *API, token, query string) []namedItem {
	t.Helper()

	w := doJSON(t, a, http.MethodGet, "/recipe/ingredients"+query, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out []namedItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

func TestIngredientList(t *testing.T) {
	a := newTestAPI(t)

	token := registerUser(t, a, "pantry@example.com", "Pantry")

	createRecipe(t, a, token, gin.H{
		"title":       "Smoothie",
		"ingredients": []gin.H{{"name": "Kale"}, {"name": "Vanilla"}},
	})

	ingredients := listIngredients(t, a, token, "")

	// Sorted by name, descending
	assert.Equal(t, []string{"Vanilla", "Kale"}, itemNames(ingredients))
}

func TestIngredientListScoped(t *testing.T) {
	a := newTestAPI(t)

	alice := registerUser(t, a, "ingalice@example.com", "Alice")
	bob := registerUser(t, a, "ingbob@example.com", "Bob")

	createRecipe(t, a, alice, gin.H{
		"title":       "Hers",
		"ingredients": []gin.H{{"name": "Saffron"}},
	})
	createRecipe(t, a, bob, gin.H{
		"title":       "His",
		"ingredients": []gin.H{{"name": "Paprika"}},
	})

	assert.Equal(t, []string{"Saffron"}, itemNames(listIngredients(t, a, alice, "")))
	assert.Equal(t, []string{"Paprika"}, itemNames(listIngredients(t, a, bob, "")))
}

func TestIngredientListAssignedOnly(t *testing.T) {
	a := newTestAPI(t)

	token := registerUser(t, a, "ingassigned@example.com", "Assigned")

	createRecipe(t, a, token, gin.H{
		"title":       "Eggs on toast",
		"ingredients": []gin.H{{"name": "Eggs"}},
	})
	createRecipe(t, a, token, gin.H{
		"title":       "Omelette",
		"ingredients": []gin.H{{"name": "Eggs"}},
	})

	orphan := createRecipe(t, a, token, gin.H{
		"title":       "Forgotten",
		"ingredients": []gin.H{{"name": "Truffle"}},
	})
	w := doJSON(t, a, http.MethodPatch, fmt.Sprintf("/recipe/recipes/%d", orphan.ID), token, gin.H{
		"ingredients": []gin.H{},
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{"Eggs"}, itemNames(listIngredients(t, a, token, "?assigned_only=1")))
	assert.ElementsMatch(t, []string{"Eggs", "Truffle"}, itemNames(listIngredients(t, a, token, "")))
}

func TestIngredientEdit(t *testing.T) {
	a := newTestAPI(t)

	token := registerUser(t, a, "ingedit@example.com", "Ing Edit")

	created := createRecipe(t, a, token, gin.H{
		"title":       "Fixable",
		"ingredients": []gin.H{{"name": "Suggar"}},
	})
	ingredientID := created.Ingredients[0].ID

	w := doJSON(t, a, http.MethodPatch, fmt.Sprintf("/recipe/ingredients/%d", ingredientID), token, gin.H{
		"name": "Sugar",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got namedItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, ingredientID, got.ID)
	assert.Equal(t, "Sugar", got.Name)
}

func TestIngredientEditCrossUser(t *testing.T) {
	a := newTestAPI(t)

	alice := registerUser(t, a, "ingowner@example.com", "Ing Owner")
	bob := registerUser(t, a, "ingthief@example.com", "Ing Thief")

	created := createRecipe(t, a, alice, gin.H{
		"title":       "Protected",
		"ingredients": []gin.H{{"name": "Secret sauce"}},
	})

	w := doJSON(t, a, http.MethodPatch, fmt.Sprintf("/recipe/ingredients/%d", created.Ingredients[0].ID), bob, gin.H{
		"name": "Stolen sauce",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, []string{"Secret sauce"}, itemNames(listIngredients(t, a, alice, "")))
}

func TestIngredientDelete(t *testing.T) {
	a := newTestAPI(t)

	token := registerUser(t, a, "ingdelete@example.com", "Ing Delete")

	created := createRecipe(t, a, token, gin.H{
		"title":       "Trimmed",
		"ingredients": []gin.H{{"name": "Cilantro"}},
	})

	w := doJSON(t, a, http.MethodDelete, fmt.Sprintf("/recipe/ingredients/%d", created.Ingredients[0].ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Empty(t, listIngredients(t, a, token, ""))

	detail := fetchRecipe(t, a, token, created.ID)
	assert.Empty(t, detail.Ingredients)
}

func TestIngredientDeleteNotFound(t *testing.T) {
	a := newTestAPI(t)

	token := registerUser(t, a, "ingmissing@example.com", "Ing Missing")

	w := doJSON(t, a, http.MethodDelete, "/recipe/ingredients/999999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIngredientCreateNotAllowed(t *testing.T) {
	a := newTestAPI(t)

	token := registerUser(t, a, "ingpost@example.com", "Ing Post")

	w := doJSON(t, a, http.MethodPost, "/recipe/ingredients", token, gin.H{"name": "Direct"})
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
