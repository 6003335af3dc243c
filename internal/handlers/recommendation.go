package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"queryhub_back_end/internal/models"
	"queryhub_back_end/internal/store"
)

// RecommendationStore est la surface de la collection recommendation
// vue des handlers, compteur compris
type RecommendationStore interface {
	Create(ctx context.Context, rec models.Recommendation) (*mongo.InsertOneResult, error)
	ListFiltered(ctx context.Context, f store.RecommendationFilter) ([]models.Recommendation, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Recommendation, error)
	DeleteWithDecrement(ctx context.Context, queryID, recID primitive.ObjectID) (*mongo.DeleteResult, error)
}

type RecommendationHandler struct {
	store RecommendationStore
}

func NewRecommendationHandler(s RecommendationStore) *RecommendationHandler {
	return &RecommendationHandler{store: s}
}

// Create insère la recommendation puis incrémente count sur la query
// référencée. Une seule réponse pour les deux écritures : un échec de
// l'incrément remonte en 500 mais l'insertion, elle, n'est pas défaite
// hors transaction.
func (h *RecommendationHandler) Create(c *gin.Context) {
	var rec models.Recommendation
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.store.Create(ctx, rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// List applique au plus un des trois filtres, dans l'ordre de
// vérification historique recommenderEmail → queryId → userEmail
// (le dernier présent gagne)
func (h *RecommendationHandler) List(c *gin.Context) {
	filter := store.RecommendationFilter{
		RecommenderEmail: c.Query("recommenderEmail"),
		QueryID:          c.Query("queryId"),
		UserEmail:        c.Query("userEmail"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	recommendations, err := h.store.ListFiltered(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recommendations)
}

func (h *RecommendationHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	rec, err := h.store.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteAndDecrement : POST et non DELETE car la route a besoin du
// query_id dans le body en plus de l'id en path. Décrémente d'abord le
// compteur, supprime ensuite la recommendation.
func (h *RecommendationHandler) DeleteAndDecrement(c *gin.Context) {
	recID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	var body struct {
		QueryID string `json:"query_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	queryID, err := primitive.ObjectIDFromHex(body.QueryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query_id invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.store.DeleteWithDecrement(ctx, queryID, recID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
