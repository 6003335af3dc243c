package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"queryhub_back_end/internal/config"
	"queryhub_back_end/internal/database"
	"queryhub_back_end/internal/handlers"
	"queryhub_back_end/internal/routes"
	"queryhub_back_end/internal/store"
)

func main() {
	config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Le client Mongo vit aussi longtemps que le process
	db, err := database.Connect(ctx)
	if err != nil {
		log.Fatalf("❌ Échec connexion MongoDB: %v", err)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	auth := handlers.NewAuthHandler(config.JWTSecret(), config.IsProduction())
	queryStore := store.NewQueryStore(db)
	queries := handlers.NewQueryHandler(queryStore)
	recos := handlers.NewRecommendationHandler(store.NewRecommendationStore(db, queryStore))

	routes.RegisterRoutes(r, auth, queries, recos, config.JWTSecret())

	log.Println("🚀 Serveur queryhub lancé sur le port", config.Port())
	r.Run(":" + config.Port())
}
