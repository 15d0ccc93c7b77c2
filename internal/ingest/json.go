// Package ingest reads product records from external files. The engine is
// agnostic to record origin; this package handles the JSON shape the
// upstream platform exports.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/offerscope/offerscope/internal/model"
)

// productRecord mirrors the upstream export schema. Numeric fields are
// lenient: a missing or malformed value coerces to zero rather than failing
// the record, so one bad field never blocks scoring.
type productRecord struct {
	ID             flexString `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Niche          string     `json:"niche"`
	Platform       string     `json:"platform"`
	Price          flexFloat  `json:"price"`
	CommissionRate flexFloat  `json:"commission_rate"`
	Rating         flexFloat  `json:"rating"`
	Reviews        flexInt    `json:"reviews"`
}

// ReadProducts loads product records from a JSON file containing an array
// of objects.
func ReadProducts(path string) ([]model.Product, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	return ParseProducts(data)
}

// ParseProducts decodes a JSON array of product records.
func ParseProducts(data []byte) ([]model.Product, error) {
	var records []productRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse products: %w", err)
	}

	products := make([]model.Product, 0, len(records))
	for i, r := range records {
		id := string(r.ID)
		if id == "" {
			id = fmt.Sprintf("product-%d", i+1)
		}
		products = append(products, model.Product{
			ID:             id,
			Name:           r.Name,
			Description:    r.Description,
			Category:       r.Category,
			Niche:          r.Niche,
			Platform:       r.Platform,
			Price:          float64(r.Price),
			CommissionRate: float64(r.CommissionRate),
			Rating:         float64(r.Rating),
			Reviews:        int(r.Reviews),
		})
	}

	return products, nil
}

// flexString accepts JSON strings and numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}

	*f = ""
	return nil
}

// flexFloat accepts JSON numbers, numeric strings, and null; anything else
// coerces to zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = flexFloat(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, parseErr := strconv.ParseFloat(s, 64); parseErr == nil {
			*f = flexFloat(parsed)
			return nil
		}
	}

	*f = 0
	return nil
}

// flexInt accepts JSON integers, floats, numeric strings, and null;
// anything else coerces to zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = flexInt(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, parseErr := strconv.ParseFloat(s, 64); parseErr == nil {
			*f = flexInt(parsed)
			return nil
		}
	}

	*f = 0
	return nil
}
