package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CategoryFares holds the precomputed display price for each vehicle class.
type CategoryFares struct {
	Sedan        float64 `bson:"sedan" json:"sedan"`
	PremiumSedan float64 `bson:"premiumSedan" json:"premiumSedan"`
	SUV          float64 `bson:"suv" json:"suv"`
	PremiumSUV   float64 `bson:"premiumSuv" json:"premiumSuv"`
}

// UniformFares returns a fare table with the same price in every category
// slot. Route writes carry a single price which is applied uniformly.
func UniformFares(price float64) CategoryFares {
	return CategoryFares{
		Sedan:        price,
		PremiumSedan: price,
		SUV:          price,
		PremiumSUV:   price,
	}
}

// Route is a stored origin/destination pair in the "routes" collection.
// DistanceKm is a cached, informational distance; fare calculation always
// resolves the distance live.
type Route struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FromLocation     string             `bson:"fromLocation" json:"fromLocation"`
	ToLocation       string             `bson:"toLocation" json:"toLocation"`
	DistanceKm       float64            `bson:"distanceKm" json:"distanceKm"`
	FaresPerCategory CategoryFares      `bson:"faresPerCategory" json:"faresPerCategory"`
	EstimatedTime    string             `bson:"estimatedTime" json:"estimatedTime"`
}
