package quote

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelier-mobila/configurator/internal/domain"
	"github.com/atelier-mobila/configurator/internal/pricing"
)

// TaxRatePercent is the VAT rate applied to every quote.
const TaxRatePercent = 19.0

// ValidityDays is how long a generated quote stays open for acceptance.
const ValidityDays = 30

// Quote status identifiers.
const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Breakdown is the client-facing decomposition of a project price.
type Breakdown struct {
	Materials       float64 `json:"materials"`
	Accessories     float64 `json:"accessories"`
	Processing      float64 `json:"processing"`
	Labor           float64 `json:"labor"`
	Subtotal        float64 `json:"subtotal"`
	DiscountPercent float64 `json:"discountPercent"`
	Discount        float64 `json:"discount"`
	TaxRate         float64 `json:"taxRate"`
	TaxAmount       float64 `json:"taxAmount"`
	TotalPrice      float64 `json:"totalPrice"`
}

// Quote is the persisted, client-facing record wrapping a breakdown.
type Quote struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	Breakdown   Breakdown `json:"breakdown"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// CalculateBreakdown prices every module in the project, sums the category
// totals, and applies discount and tax. Pure aggregation over the pricing
// engine; no I/O, no rounding.
func CalculateBreakdown(project domain.Project, materials map[string]domain.Material, accessories map[string]domain.AccessoryItem, discountPercent float64) Breakdown {
	breakdown := Breakdown{
		DiscountPercent: discountPercent,
		TaxRate:         TaxRatePercent,
	}

	for i := range project.Modules {
		result := pricing.ModulePrice(project.Modules[i], materials, accessories)
		breakdown.Materials += result.Breakdown.Materials
		breakdown.Accessories += result.Breakdown.Accessories
		breakdown.Processing += result.Breakdown.Processing
		breakdown.Labor += result.Breakdown.Labor
		breakdown.Subtotal += result.Total
	}

	breakdown.Discount = breakdown.Subtotal * discountPercent / 100
	breakdown.TaxAmount = (breakdown.Subtotal - breakdown.Discount) * TaxRatePercent / 100
	breakdown.TotalPrice = breakdown.Subtotal - breakdown.Discount + breakdown.TaxAmount

	return breakdown
}

// Generate builds a draft quote for the project: breakdown plus client
// identity, a fresh id, and creation/expiry timestamps.
func Generate(project domain.Project, materials map[string]domain.Material, accessories map[string]domain.AccessoryItem, discountPercent float64, clientName, clientEmail string) Quote {
	now := time.Now().UTC()
	return Quote{
		ID:          uuid.NewString(),
		ProjectID:   project.ID,
		ClientName:  clientName,
		ClientEmail: clientEmail,
		Breakdown:   CalculateBreakdown(project, materials, accessories, discountPercent),
		Status:      StatusDraft,
		CreatedAt:   now,
		ExpiresAt:   now.AddDate(0, 0, ValidityDays),
	}
}
