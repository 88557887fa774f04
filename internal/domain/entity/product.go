package entity

import "github.com/google/uuid"

// Product is a catalog item. Its sustainability score is derived once, at creation.
type Product struct {
	ID                  uuid.UUID
	Name                string
	Cost                float64
	CarbonEmission      float64
	SustainabilityScore float64
}
