package domain

// Project status identifiers.
const (
	ProjectDraft     = "draft"
	ProjectConfirmed = "confirmed"
	ProjectArchived  = "archived"
)

// Project groups the furniture modules configured for one room. It exclusively
// owns its modules; a module is never shared across projects.
type Project struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Modules      []FurnitureModule `json:"modules"`
	RoomWidthMM  float64           `json:"roomWidth"`
	RoomLengthMM float64           `json:"roomLength"`
	RoomHeightMM float64           `json:"roomHeight"`
	Status       string            `json:"status"`
}

// TotalCachedPrice sums the cached module prices. It reports false when any
// module's cached price is stale, in which case the caller must reprice.
func (p Project) TotalCachedPrice() (float64, bool) {
	total := 0.0
	for i := range p.Modules {
		price, ok := p.Modules[i].CachedPrice()
		if !ok {
			return 0, false
		}
		total += price
	}
	return total, true
}
