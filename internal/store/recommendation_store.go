package store

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"queryhub_back_end/internal/database"
	"queryhub_back_end/internal/models"
)

// RecommendationStore porte les opérations sur la collection
// recommendation, y compris la synchronisation du compteur count sur
// la query référencée. Les écritures de compteur passent toutes par
// QueryStore.IncrementCount ; les deux écritures (recommendation +
// compteur) passent dans une transaction quand le déploiement le permet.
type RecommendationStore struct {
	client  *mongo.Client
	coll    *mongo.Collection
	queries *QueryStore
}

func NewRecommendationStore(db *database.Mongo, queries *QueryStore) *RecommendationStore {
	return &RecommendationStore{
		client:  db.Client,
		coll:    db.Recommendations,
		queries: queries,
	}
}

// RecommendationFilter : les trois filtres sont exclusifs, dans l'ordre
// de vérification recommenderEmail → queryId → userEmail. Le dernier
// vérifié gagne — comportement historique conservé tel quel.
type RecommendationFilter struct {
	RecommenderEmail string
	QueryID          string
	UserEmail        string
}

func buildRecommendationFilter(f RecommendationFilter) bson.M {
	filter := bson.M{}
	if f.RecommenderEmail != "" {
		filter = bson.M{"recommenderEmail": f.RecommenderEmail}
	}
	if f.QueryID != "" {
		filter = bson.M{"queryId": f.QueryID}
	}
	if f.UserEmail != "" {
		filter = bson.M{"userEmail": f.UserEmail}
	}
	return filter
}

// Create insère la recommendation puis incrémente count sur la query
// référencée. Dans une transaction un queryId invalide annule aussi
// l'insertion ; en mode séquentiel (serveur standalone) l'insertion
// reste acquise même si l'incrément échoue, comme l'ancien serveur.
func (s *RecommendationStore) Create(ctx context.Context, rec models.Recommendation) (*mongo.InsertOneResult, error) {
	res, err := s.runTxn(ctx, func(ctx context.Context) (interface{}, error) {
		result, err := s.coll.InsertOne(ctx, rec)
		if err != nil {
			return nil, err
		}

		queryID, err := primitive.ObjectIDFromHex(rec.QueryID)
		if err != nil {
			return result, err
		}

		// no-op si la query n'existe plus — jamais de création
		_, err = s.queries.IncrementCount(ctx, queryID, 1)
		return result, err
	})
	if res == nil {
		return nil, err
	}
	return res.(*mongo.InsertOneResult), err
}

func (s *RecommendationStore) ListFiltered(ctx context.Context, f RecommendationFilter) ([]models.Recommendation, error) {
	cursor, err := s.coll.Find(ctx, buildRecommendationFilter(f))
	if err != nil {
		return nil, err
	}

	var recommendations []models.Recommendation
	if err := cursor.All(ctx, &recommendations); err != nil {
		return nil, err
	}
	return recommendations, nil
}

// GetByID renvoie (nil, nil) pour un document absent, comme QueryStore
func (s *RecommendationStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Recommendation, error) {
	var rec models.Recommendation
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteWithDecrement décrémente d'abord le compteur de la query
// référencée, puis supprime la recommendation.
func (s *RecommendationStore) DeleteWithDecrement(ctx context.Context, queryID, recID primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := s.runTxn(ctx, func(ctx context.Context) (interface{}, error) {
		if _, err := s.queries.IncrementCount(ctx, queryID, -1); err != nil {
			return nil, err
		}
		return s.coll.DeleteOne(ctx, bson.M{"_id": recID})
	})
	if res == nil {
		return nil, err
	}
	return res.(*mongo.DeleteResult), err
}

// runTxn exécute fn dans une transaction quand le serveur le supporte
// (replica set / Atlas). Sur un standalone le driver refuse : on
// retombe alors sur les écritures séquentielles d'origine.
func (s *RecommendationStore) runTxn(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	session, err := s.client.StartSession()
	if err != nil {
		return fn(ctx)
	}
	defer session.EndSession(ctx)

	res, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return fn(sc)
	})
	if err != nil && isTxnUnsupported(err) {
		return fn(ctx)
	}
	return res, err
}

func isTxnUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// IllegalOperation : transactions indisponibles sur ce déploiement
		return cmdErr.Code == 20
	}
	return strings.Contains(err.Error(), "Transaction numbers")
}
