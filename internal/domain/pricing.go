package domain

import (
	"strings"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category represents a vehicle class used as the pricing key.
type Category string

const (
	CategorySedan        Category = "sedan"
	CategoryPremiumSedan Category = "premiumSedan"
	CategorySUV          Category = "suv"
	CategoryPremiumSUV   Category = "premiumSuv"
)

// Categories lists every supported vehicle class.
var Categories = []Category{
	CategorySedan,
	CategoryPremiumSedan,
	CategorySUV,
	CategoryPremiumSUV,
}

// IsValidCategory reports whether c is one of the supported vehicle classes.
func IsValidCategory(c Category) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// TripType represents the direction of a trip.
type TripType string

const (
	TripOneWay    TripType = "oneWay"
	TripRoundTrip TripType = "roundTrip"
)

// IsValidTripType reports whether t is a supported trip type.
func IsValidTripType(t TripType) bool {
	return t == TripOneWay || t == TripRoundTrip
}

// Rate holds the per-kilometer pricing for one trip direction.
type Rate struct {
	RatePerKm          float64 `bson:"ratePerKm" json:"ratePerKm"`
	DiscountPercentage float64 `bson:"discountPercentage,omitempty" json:"discountPercentage,omitempty"`
}

// Pricing is the per-category rate record stored in the "pricings" collection.
// There is exactly one record per category; the category is the identity key.
type Pricing struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Category  string             `bson:"category" json:"category"`
	OneWay    Rate               `bson:"oneWay" json:"oneWay"`
	RoundTrip Rate               `bson:"roundTrip" json:"roundTrip"`
	BaseFare  float64            `bson:"baseFare" json:"baseFare"`
}

// DisplayLabel derives the client-facing label from an internal category key:
// the first rune is upper-cased and a space is inserted before every remaining
// upper-case rune. "premiumSedan" becomes "Premium Sedan".
func DisplayLabel(category string) string {
	if category == "" {
		return ""
	}

	runes := []rune(category)
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(runes[0]))
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DeriveCategory derives the internal category key from a display label by
// lower-casing it and stripping all whitespace. "Premium Sedan" becomes
// "premiumsedan". The derivation is lossy: labels that differ only in internal
// capitalization collide on the same key.
func DeriveCategory(label string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, label)
}
