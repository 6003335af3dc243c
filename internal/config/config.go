package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Port retourne le port d'écoute (5000 par défaut, comme l'ancien serveur Express)
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return port
}

func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return secret
}

// IsProduction pilote les attributs Secure/SameSite du cookie de session
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

// AllowedOrigins liste les origines CORS autorisées (CORS_ORIGINS, séparées par des virgules)
func AllowedOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:5173"}
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// MongoURI construit l'URI Atlas à partir de DB_USER/DB_PASS,
// sauf si MONGO_URI est fourni directement
func MongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@cluster0.xy3cn.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
		os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
	)
}
