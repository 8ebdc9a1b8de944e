package web

import (
	"shopcatalog/catalog"
	"shopcatalog/source"
	"shopcatalog/vertical"
)

type verticalResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Categories  []catalog.Category `json:"categories"`
	PrimaryURL  string             `json:"primaryUrl"`
	FallbackURL string             `json:"fallbackUrl"`
}

type catalogResponse struct {
	Source source.Origin `json:"source"`
	catalog.View
}

type productResponse struct {
	Source  source.Origin       `json:"source"`
	Product catalog.ProductView `json:"product"`
}

type inquiryRequest struct {
	ProductID string `json:"productId"`
	Language  string `json:"language"`
}

type inquiryResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	SKU       string `json:"sku"`
	Language  string `json:"language"`
	Delivered int    `json:"delivered"`
}

type refreshResponse struct {
	Vertical    string `json:"vertical"`
	Invalidated int    `json:"invalidated"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func buildVerticalResponse(v vertical.Config, lang string) verticalResponse {
	primary, fallback := v.PrimaryURL(lang), v.FallbackURL(lang)
	return verticalResponse{
		ID:          v.ID,
		Name:        v.Name.In(lang),
		Categories:  v.Meta().Categories,
		PrimaryURL:  primary,
		FallbackURL: fallback,
	}
}
