package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const testPassword = "testpass123"

// newTestAPI builds a router against a fresh in-memory database. Config
// is injected straight into viper so no config file is needed
func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)

	viper.Set("app.log_level", "error")
	viper.Set("host.cors_origins", []string{"http://localhost:5173"})
	viper.Set("database.driver", "sqlite")
	viper.Set("database.dsn", ":memory:")
	viper.Set("auth.token_ttl", "720h")
	viper.Set("auth.cleanup_interval", "1h")
	viper.Set("auth.rate_rps", 1000)
	viper.Set("auth.rate_burst", 100000)
	viper.Set("storage.type", "local")
	viper.Set("storage.local_path", t.TempDir())
	viper.Set("upload.max_size", int64(10<<20))
	viper.Set("upload.allowed_types", []string{"image/jpeg", "image/png", "image/webp"})

	a, err := NewRouter()
	require.NoError(t, err)

	return a
}

// doJSON fires a JSON request through the full middleware chain. An empty
// token leaves the Authorization header off
func doJSON(t *testing.T, a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func registerUser(t *testing.T, a *API, email, name string) string {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/user/create", "", gin.H{
		"email":    email,
		"password": testPassword,
		"name":     name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return obtainToken(t, a, email, testPassword)
}

func obtainToken(t *testing.T, a *API, email, password string) string {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/user/token", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	return body.Token
}

// Response shapes shared by the recipe, tag and ingredient suites
type namedItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type recipeResp struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	ImageURL    string          `json:"image_url"`
	Tags        []namedItem     `json:"tags"`
	Ingredients []namedItem     `json:"ingredients"`
}

// createRecipe posts a recipe built from sane defaults merged with
// overrides and returns the detail payload
func createRecipe(t *testing.T, a *API, token string, overrides gin.H) recipeResp {
	t.Helper()

	payload := gin.H{
		"title":        "Sample recipe",
		"time_minutes": 10,
		"price":        "5.00",
	}
	for k, v := range overrides {
		payload[k] = v
	}

	w := doJSON(t, a, http.MethodPost, "/recipe/recipes", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out recipeResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

func fetchRecipe(t *testing.T, a *API, token string, id uint) recipeResp {
	t.Helper()

	w := doJSON(t, a, http.MethodGet, fmt.Sprintf("/recipe/recipes/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out recipeResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

// uploadImage builds the multipart body by hand so the file part carries
// a real Content-Type header, the way browsers send it
func uploadImage(t *testing.T, a *API, token string, recipeID uint, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/recipe/recipes/%d/image", recipeID), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Token "+token)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

// pngBytes returns a tiny valid PNG, enough for content sniffing
func pngBytes() []byte {
	return []byte{
		0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
		0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
		0x89, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e,
		0x44, 0xae, 0x42, 0x60, 0x82,
	}
}
