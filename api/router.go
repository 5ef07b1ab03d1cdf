// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"github.com/rshzvr/recipe-app-api/db"
	"github.com/rshzvr/recipe-app-api/internal/service"
	"github.com/rshzvr/recipe-app-api/middleware"
	"github.com/rshzvr/recipe-app-api/pkg/security"
	"github.com/rshzvr/recipe-app-api/storage"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Argon   *security.ArgonHash
	Storage storage.Storage
}

func NewRouter() (*API, error) {
	a := &API{}

	db, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = db

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors_origins"),
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	a.Router.MaxMultipartMemory = 5 << 20

	auth := middleware.NewAuthMiddleware(db)
	authLimiter := middleware.NewRateLimiter(
		viper.GetFloat64("auth.rate_rps"),
		viper.GetInt("auth.rate_burst"),
	).Handler()
	maxUploadSize := viper.GetInt64("upload.max_size")

	// HEAD /heartbeat		-> Used to check if the server is alive
	router.HEAD("/heartbeat", a.Heartbeat)

	// HEAD /validate		-> Checks that the presented token is still good
	router.HEAD("/validate", auth, a.Validate)

	user := router.Group("/user", middleware.BodySizeLimiter(1<<20))
	{
		// POST /user/create	-> Registers a new user
		user.POST("/create", authLimiter, a.UserRegister)

		// POST /user/token	-> Exchanges credentials for an API token
		user.POST("/token", authLimiter, a.UserToken)

		// GET /user/me	 	-> Returns the authenticated user's profile
		user.GET("/me", auth, a.UserFetch)

		// PATCH /user/me	-> Updates name and/or password
		user.PATCH("/me", auth, a.UserEdit)
	}

	recipe := router.Group("/recipe", auth)
	{
		// GET /recipe/recipes		-> Lists recipes, filterable by tag/ingredient IDs
		recipe.GET("/recipes", a.RecipeFetchBulk)

		// POST /recipe/recipes		-> Creates a recipe, reconciling nested tags/ingredients
		recipe.POST("/recipes", middleware.BodySizeLimiter(1<<20), a.RecipeCreate)

		// GET /recipe/recipes/:id	-> Returns a single recipe with all details
		recipe.GET("/recipes/:id", a.RecipeFetch)

		// PATCH /recipe/recipes/:id	-> Partially updates a recipe
		recipe.PATCH("/recipes/:id", middleware.BodySizeLimiter(1<<20), a.RecipeEdit)

		// DELETE /recipe/recipes/:id	-> Deletes a recipe and its associations
		recipe.DELETE("/recipes/:id", a.RecipeDelete)

		// POST /recipe/recipes/:id/image -> Uploads or replaces the recipe image.
		// The limiter gets some headroom over the image cap so oversized
		// files reach the validator and its clearer error
		recipe.POST("/recipes/:id/image", middleware.BodySizeLimiter(maxUploadSize+1<<20), a.RecipeImageUpload)

		// GET /recipe/tags		-> Lists the user's tags
		recipe.GET("/tags", a.TagFetchBulk)

		// PATCH /recipe/tags/:id	-> Renames a tag
		recipe.PATCH("/tags/:id", middleware.BodySizeLimiter(1<<20), a.TagEdit)

		// DELETE /recipe/tags/:id	-> Deletes a tag
		recipe.DELETE("/tags/:id", a.TagDelete)

		// GET /recipe/ingredients	-> Lists the user's ingredients
		recipe.GET("/ingredients", a.IngredientFetchBulk)

		// PATCH /recipe/ingredients/:id -> Renames an ingredient
		recipe.PATCH("/ingredients/:id", middleware.BodySizeLimiter(1<<20), a.IngredientEdit)

		// DELETE /recipe/ingredients/:id -> Deletes an ingredient
		recipe.DELETE("/ingredients/:id", a.IngredientDelete)
	}

	a.Argon = security.New()

	s, err := storage.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage, %w", err)
	}
	a.Storage = s

	// The local backend serves images straight from disk
	if l, ok := s.(*storage.LocalStorage); ok {
		router.Static("/static/images", l.Dir())
	}

	service.TokenCleanup(viper.GetDuration("auth.cleanup_interval"), db)

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
