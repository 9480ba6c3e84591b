package model

import "github.com/shopspring/decimal"

// Service describes one entry of the cleaning service catalog. The
// catalog is static marketing data, not a priced SKU table: order items
// carry their own price at creation time.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Unit        string          `json:"unit"`
}

// ServiceCatalog lists the services offered for scheduling.
var ServiceCatalog = []Service{
	{ID: "dry-cleaning", Name: "Dry Cleaning", Description: "For delicate fabrics and formal wear", BasePrice: decimal.NewFromInt(200), Unit: "pair"},
	{ID: "wash-fold", Name: "Wash & Fold", Description: "Regular laundry service", BasePrice: decimal.NewFromInt(150), Unit: "kg"},
	{ID: "ironing", Name: "Ironing", Description: "Professional pressing service", BasePrice: decimal.NewFromInt(50), Unit: "item"},
	{ID: "stain-removal", Name: "Stain Removal", Description: "Specialized treatment for tough stains", BasePrice: decimal.NewFromInt(100), Unit: "item"},
	{ID: "alterations", Name: "Alterations", Description: "Basic repairs and alterations", BasePrice: decimal.NewFromInt(150), Unit: "item"},
	{ID: "express", Name: "Express Service", Description: "Same day or next day service", BasePrice: decimal.NewFromInt(300), Unit: "pair"},
}
