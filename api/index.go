package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/diyahomestylist/poppyandteal/app"
	"github.com/diyahomestylist/poppyandteal/config"
	"github.com/diyahomestylist/poppyandteal/logger"
	"github.com/diyahomestylist/poppyandteal/storage"
)

var (
	router  http.Handler
	initErr error
	once    sync.Once
)

// initApp builds the app once per serverless instance. Carts default to memory here
// unless CART_STORAGE points at a shared store.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.Load()
		if cfg.CartStorage == storage.DriverBolt {
			cfg.CartStorage = storage.DriverMemory
		}
		lg, err := logger.New(logger.Options{Mode: "production", Level: cfg.LogLevel})
		if err != nil {
			initErr = err
			return
		}

		a, err := app.New(context.Background(), cfg, lg)
		if err != nil {
			initErr = err
			return
		}
		router = a.Router
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, initErr.Error(), http.StatusInternalServerError)
		return
	}
	router.ServeHTTP(w, r)
}
