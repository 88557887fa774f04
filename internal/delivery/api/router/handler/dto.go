package handler

import (
	"time"

	"greenscore/internal/domain/entity"
	"greenscore/internal/usecase"
)

// UserResponse is the JSON form of a user
type UserResponse struct {
	ID          string  `json:"id"`
	PhoneNumber string  `json:"phone_number"`
	Name        string  `json:"name"`
	GreenScore  float64 `json:"green_score"`
}

// GreenScoreResponse is the JSON form of a user's current score
type GreenScoreResponse struct {
	UserID     string  `json:"user_id"`
	GreenScore float64 `json:"green_score"`
}

// ProductResponse is the JSON form of a catalog product
type ProductResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Cost                float64 `json:"cost"`
	CarbonEmission      float64 `json:"carbon_emission"`
	SustainabilityScore float64 `json:"sustainability_score"`
}

// PurchaseResponse is the JSON form of a recorded purchase
type PurchaseResponse struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"user_id"`
	ProductID          string    `json:"product_id"`
	Timestamp          time.Time `json:"timestamp"`
	ImpactOnGreenScore float64   `json:"impact_on_green_score"`
}

// PurchaseDetailResponse is one entry of a user's purchase history
type PurchaseDetailResponse struct {
	ID                 int64     `json:"id"`
	ProductID          string    `json:"product_id"`
	ProductName        string    `json:"product_name"`
	Timestamp          time.Time `json:"timestamp"`
	ImpactOnGreenScore float64   `json:"impact_on_green_score"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID.String(),
		PhoneNumber: user.PhoneNumber,
		Name:        user.Name,
		GreenScore:  user.GreenScore,
	}
}

func toGreenScoreResponse(output *usecase.GreenScoreOutput) *GreenScoreResponse {
	return &GreenScoreResponse{
		UserID:     output.UserID.String(),
		GreenScore: output.GreenScore,
	}
}

func toProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:                  product.ID.String(),
		Name:                product.Name,
		Cost:                product.Cost,
		CarbonEmission:      product.CarbonEmission,
		SustainabilityScore: product.SustainabilityScore,
	}
}

func toPurchaseResponse(purchase *entity.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		ID:                 purchase.ID,
		UserID:             purchase.UserID.String(),
		ProductID:          purchase.ProductID.String(),
		Timestamp:          purchase.Timestamp.UTC(),
		ImpactOnGreenScore: purchase.Impact,
	}
}

func toPurchaseDetailResponses(details []*entity.PurchaseDetail) []*PurchaseDetailResponse {
	// Never null: an empty history is an empty JSON array.
	out := make([]*PurchaseDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, &PurchaseDetailResponse{
			ID:                 d.ID,
			ProductID:          d.ProductID.String(),
			ProductName:        d.ProductName,
			Timestamp:          d.Timestamp.UTC(),
			ImpactOnGreenScore: d.Impact,
		})
	}

	return out
}
