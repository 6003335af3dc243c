package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation est la réponse d'un membre de la communauté à une
// Query. QueryID référence la query par son identifiant en clair
// (chaîne hexadécimale) — la conversion en ObjectID se fait au moment
// de toucher le compteur.
type Recommendation struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	QueryID          string             `bson:"queryId,omitempty" json:"queryId,omitempty"`
	QueryTitle       string             `bson:"query_title,omitempty" json:"query_title,omitempty"`
	ProductName      string             `bson:"product_name,omitempty" json:"product_name,omitempty"`
	Title            string             `bson:"title,omitempty" json:"title,omitempty"`
	RecoProductName  string             `bson:"reco_product_name,omitempty" json:"reco_product_name,omitempty"`
	RecoProductImage string             `bson:"reco_product_image,omitempty" json:"reco_product_image,omitempty"`
	RecoReason       string             `bson:"reco_reason,omitempty" json:"reco_reason,omitempty"`
	RecommenderEmail string             `bson:"recommenderEmail,omitempty" json:"recommenderEmail,omitempty"`
	RecommenderName  string             `bson:"recommenderName,omitempty" json:"recommenderName,omitempty"`
	UserEmail        string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	UserName         string             `bson:"userName,omitempty" json:"userName,omitempty"`
	Time             string             `bson:"time,omitempty" json:"time,omitempty"`
}
