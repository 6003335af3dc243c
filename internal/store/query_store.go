package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"queryhub_back_end/internal/database"
	"queryhub_back_end/internal/models"
)

// QueryStore porte toutes les opérations sur la collection queries.
type QueryStore struct {
	coll *mongo.Collection
}

func NewQueryStore(db *database.Mongo) *QueryStore {
	return &QueryStore{coll: db.Queries}
}

func (s *QueryStore) Create(ctx context.Context, q models.Query) (*mongo.InsertOneResult, error) {
	return s.coll.InsertOne(ctx, q)
}

// ListByOwner renvoie les queries d'un propriétaire, les plus récentes
// d'abord. Sans email on renvoie tout (variante non authentifiée).
func (s *QueryStore) ListByOwner(ctx context.Context, email string) ([]models.Query, error) {
	filter := bson.M{}
	if email != "" {
		filter = bson.M{"email": email}
	}
	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "time", Value: -1}}))
}

// ListByNameFilter filtre product_name par sous-chaîne, insensible à la
// casse. Filtre vide → tout.
func (s *QueryStore) ListByNameFilter(ctx context.Context, name string) ([]models.Query, error) {
	filter := bson.M{}
	if name != "" {
		filter = bson.M{"product_name": bson.M{"$regex": name, "$options": "i"}}
	}
	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "time", Value: -1}}))
}

func (s *QueryStore) ListRecent(ctx context.Context, limit int64) ([]models.Query, error) {
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: -1}}).SetLimit(limit)
	return s.find(ctx, bson.M{}, opts)
}

func (s *QueryStore) ListOldestFirst(ctx context.Context) ([]models.Query, error) {
	return s.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "time", Value: 1}}))
}

func (s *QueryStore) ListByNameAscending(ctx context.Context) ([]models.Query, error) {
	return s.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "product_name", Value: 1}}))
}

// GetByID renvoie (nil, nil) quand le document n'existe pas : le client
// reçoit null, exactement comme l'ancien serveur.
func (s *QueryStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Query, error) {
	var q models.Query
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Update écrase exactement six champs. upsert=true : un id inconnu crée
// un document partiel contenant ces seuls champs.
func (s *QueryStore) Update(ctx context.Context, id primitive.ObjectID, u models.QueryUpdate) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": queryUpdateFields(u)}
	return s.coll.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
}

func queryUpdateFields(u models.QueryUpdate) bson.M {
	return bson.M{
		"product_name":  u.ProductName,
		"product_brand": u.ProductBrand,
		"product_image": u.ProductImage,
		"query_title":   u.QueryTitle,
		"reason":        u.Reason,
		"lastUpdatedAt": u.CurrentTime,
	}
}

// Delete est un no-op silencieux si l'id n'existe pas
func (s *QueryStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.coll.DeleteOne(ctx, bson.M{"_id": id})
}

// IncrementCount ajoute delta (+1/-1) au compteur. Jamais d'upsert :
// un id inconnu ne crée rien.
func (s *QueryStore) IncrementCount(ctx context.Context, id primitive.ObjectID, delta int) (*mongo.UpdateResult, error) {
	return s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"count": delta}})
}

func (s *QueryStore) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Query, error) {
	cursor, err := s.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	var queries []models.Query
	if err := cursor.All(ctx, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}
