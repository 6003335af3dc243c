package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// Ordre d'écrasement historique : recommenderEmail → queryId →
// userEmail, le dernier présent gagne et un seul champ est appliqué
func TestBuildRecommendationFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter RecommendationFilter
		want   bson.M
	}{
		{
			name:   "aucun filtre",
			filter: RecommendationFilter{},
			want:   bson.M{},
		},
		{
			name:   "recommenderEmail seul",
			filter: RecommendationFilter{RecommenderEmail: "bob@example.com"},
			want:   bson.M{"recommenderEmail": "bob@example.com"},
		},
		{
			name:   "queryId seul",
			filter: RecommendationFilter{QueryID: "abc"},
			want:   bson.M{"queryId": "abc"},
		},
		{
			name:   "userEmail seul",
			filter: RecommendationFilter{UserEmail: "alice@example.com"},
			want:   bson.M{"userEmail": "alice@example.com"},
		},
		{
			name:   "queryId écrase recommenderEmail",
			filter: RecommendationFilter{RecommenderEmail: "bob@example.com", QueryID: "abc"},
			want:   bson.M{"queryId": "abc"},
		},
		{
			name: "userEmail écrase tout",
			filter: RecommendationFilter{
				RecommenderEmail: "bob@example.com",
				QueryID:          "abc",
				UserEmail:        "alice@example.com",
			},
			want: bson.M{"userEmail": "alice@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildRecommendationFilter(tt.filter))
		})
	}
}
