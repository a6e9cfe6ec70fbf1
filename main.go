package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jxsus-1/api-supermarket/auth"
	"github.com/jxsus-1/api-supermarket/config"
	"github.com/jxsus-1/api-supermarket/middleware"
	"github.com/jxsus-1/api-supermarket/routes"
	"github.com/jxsus-1/api-supermarket/storage"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("configuration error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := storage.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer store.Close(context.Background())

	accounts, err := auth.NewFirebaseProvider(ctx, []byte(cfg.FirebaseCredentialsJSON), cfg.FirebaseProjectID)
	if err != nil {
		log.Fatal("firebase initialization failed", zap.Error(err))
	}

	verifier := auth.NewVerifier(cfg.FirebaseAPIKey)
	if cfg.IdentityToolkitURL != "" {
		verifier.Endpoint = cfg.IdentityToolkitURL
	}
	issuer := auth.NewIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Categories: store,
		Products:   store,
		Users:      store,
		Accounts:   accounts,
		Verifier:   verifier,
		Issuer:     issuer,
		Policy:     routes.Policy{CatalogWrite: middleware.ParseRole(cfg.CatalogWriteRole)},
		Log:        log,
	})

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
