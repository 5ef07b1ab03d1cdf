package main

import (
	"fmt"
	"strings"

	"github.com/rshzvr/recipe-app-api/api"
	"github.com/rshzvr/recipe-app-api/config"
	"github.com/rshzvr/recipe-app-api/db"
	"github.com/rshzvr/recipe-app-api/internal/service"
	"github.com/rshzvr/recipe-app-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	// One-shot provisioning path, doesn't start the server
	if creds := config.SuperuserFlag(); creds != "" {
		email, password, ok := strings.Cut(creds, ":")
		if !ok {
			panic("--create-superuser expects email:password")
		}

		d, err := db.New()
		if err != nil {
			panic(err)
		}

		user, err := service.CreateSuperuser(d, security.New(), email, password)
		if err != nil {
			panic(err)
		}

		fmt.Printf("Superuser %s created\n", user.Email)
		return
	}

	a, err := api.NewRouter()
	if err != nil {
		panic(err)
	}

	zap.L().Info("Server starting", zap.Int("port", viper.GetInt("host.port")))

	err = a.Router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
