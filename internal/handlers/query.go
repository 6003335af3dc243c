package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"queryhub_back_end/internal/models"
)

const requestTimeout = 10 * time.Second

// QueryStore est la surface de la collection queries vue des handlers
type QueryStore interface {
	Create(ctx context.Context, q models.Query) (*mongo.InsertOneResult, error)
	ListByOwner(ctx context.Context, email string) ([]models.Query, error)
	ListByNameFilter(ctx context.Context, name string) ([]models.Query, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Query, error)
	ListOldestFirst(ctx context.Context) ([]models.Query, error)
	ListByNameAscending(ctx context.Context) ([]models.Query, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Query, error)
	Update(ctx context.Context, id primitive.ObjectID, u models.QueryUpdate) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type QueryHandler struct {
	store QueryStore
}

func NewQueryHandler(s QueryStore) *QueryHandler {
	return &QueryHandler{store: s}
}

// Create insère la query telle quelle — aucune validation de champs
func (h *QueryHandler) Create(c *gin.Context) {
	var q models.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.store.Create(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListMine renvoie les queries de l'appelant, les plus récentes d'abord.
// L'email vient du token ; à défaut du paramètre ?email= (ancienne
// route) ; sans email du tout on renvoie tout.
func (h *QueryHandler) ListMine(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		email = c.Query("email")
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	queries, err := h.store.ListByOwner(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, queries)
}

// ListByName : filtre insensible à la casse sur product_name (?name=)
func (h *QueryHandler) ListByName(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	queries, err := h.store.ListByNameFilter(ctx, c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, queries)
}

// ListLatestSix : les 6 queries les plus récentes, pour la page d'accueil
func (h *QueryHandler) ListLatestSix(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	queries, err := h.store.ListRecent(ctx, 6)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, queries)
}

func (h *QueryHandler) ListOldestFirst(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	queries, err := h.store.ListOldestFirst(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, queries)
}

func (h *QueryHandler) ListByNameAscending(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	queries, err := h.store.ListByNameAscending(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, queries)
}

// GetByID renvoie null (pas une erreur) si la query n'existe pas :
// c'est au client de traiter le résultat vide.
func (h *QueryHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	query, err := h.store.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, query)
}

// Update écrase les six champs éditables ; un id inexistant crée un
// document partiel (upsert), comme l'ancien serveur
func (h *QueryHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	var u models.QueryUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.store.Update(ctx, id, u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *QueryHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.store.Delete(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
