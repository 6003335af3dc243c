package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Query représente un produit pour lequel un utilisateur demande
// des recommandations. Count est le compteur dénormalisé du nombre
// de recommandations vivantes qui pointent vers cette query — il
// n'est modifié que par les écritures $inc du store.
type Query struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	ProfileImage  string             `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	ProductName   string             `bson:"product_name,omitempty" json:"product_name,omitempty"`
	ProductBrand  string             `bson:"product_brand,omitempty" json:"product_brand,omitempty"`
	ProductImage  string             `bson:"product_image,omitempty" json:"product_image,omitempty"`
	QueryTitle    string             `bson:"query_title,omitempty" json:"query_title,omitempty"`
	Reason        string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Time          string             `bson:"time,omitempty" json:"time,omitempty"`
	LastUpdatedAt string             `bson:"lastUpdatedAt,omitempty" json:"lastUpdatedAt,omitempty"`
	Count         int                `bson:"count" json:"count"`
}

// QueryUpdate porte les six champs (et seulement eux) que le PUT
// /queries/:id écrase. current_time côté client devient lastUpdatedAt
// côté document.
type QueryUpdate struct {
	ProductName  string `json:"product_name"`
	ProductBrand string `json:"product_brand"`
	ProductImage string `json:"product_image"`
	QueryTitle   string `json:"query_title"`
	Reason       string `json:"reason"`
	CurrentTime  string `json:"current_time"`
}
