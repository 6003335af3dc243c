package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"queryhub_back_end/internal/config"
)

// Mongo regroupe le client et les deux collections du serveur.
// Le handle est construit une seule fois au démarrage puis injecté
// dans les handlers — pas de singleton au niveau du package.
type Mongo struct {
	Client          *mongo.Client
	Queries         *mongo.Collection
	Recommendations *mongo.Collection
}

func Connect(ctx context.Context) (*Mongo, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(config.MongoURI()).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	db := client.Database("queryDB")
	log.Println("✅ MongoDB connecté (base queryDB)")

	return &Mongo{
		Client:          client,
		Queries:         db.Collection("queries"),
		Recommendations: db.Collection("recommendation"),
	}, nil
}

// Close n'est pas appelé sur le chemin normal (le client vit aussi
// longtemps que le process) mais reste disponible pour les tests
// et un éventuel arrêt propre.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
