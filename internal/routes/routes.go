package routes

import (
	"github.com/gin-gonic/gin"

	"queryhub_back_end/internal/handlers"
	"queryhub_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, auth *handlers.AuthHandler, queries *handlers.QueryHandler, recos *handlers.RecommendationHandler, jwtSecret string) {
	protected := middleware.AuthRequired(jwtSecret)

	r.GET("/", handlers.Liveness)

	// Session
	r.POST("/jwt", auth.IssueToken)
	r.POST("/logout", auth.Logout)

	// Queries
	r.POST("/queries", protected, queries.Create)
	r.GET("/queries", protected, queries.ListMine)
	r.GET("/queries-only", queries.ListByName)
	r.GET("/queries-six", queries.ListLatestSix)
	r.GET("/queries-sort", queries.ListOldestFirst)
	r.GET("/queries-sort-name", queries.ListByNameAscending)
	r.GET("/queries/:id", queries.GetByID)
	r.PUT("/queries/:id", queries.Update)
	r.DELETE("/queries/:id", queries.Delete)

	// Recommendations
	r.GET("/recommendations", protected, recos.List)
	r.GET("/recommendations/:id", recos.GetByID)
	r.POST("/recommendations", recos.Create)
	r.POST("/recommendations/:id", recos.DeleteAndDecrement)
}
