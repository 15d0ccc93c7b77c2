// Package model defines the core domain types shared across the application.
package model

// Product represents a single affiliate offer from any source.
type Product struct {
	ID             string
	Name           string
	Description    string // May be empty; length feeds conversion scoring
	Category       string
	Niche          string
	Platform       string
	Price          float64
	CommissionRate float64 // Percentage, nominally 0-100
	Rating         float64 // Nominally 0-5
	Reviews        int
}

// CommissionAmount returns the commission earned per sale in dollars.
func (p *Product) CommissionAmount() float64 {
	return p.Price * (p.CommissionRate / 100)
}
