// Package costs manages a business's recurring fixed costs.
package costs

import (
	"errors"
	"strings"
	"time"
)

// Frequency enumerates how often a fixed cost recurs.
type Frequency string

const (
	// FrequencyMonthly recurs every month.
	FrequencyMonthly Frequency = "monthly"
	// FrequencySemiannual recurs every six months.
	FrequencySemiannual Frequency = "semiannual"
	// FrequencyAnnual recurs once a year.
	FrequencyAnnual Frequency = "annual"
)

// Valid reports whether the frequency is one of the supported values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencySemiannual, FrequencyAnnual:
		return true
	}
	return false
}

// Item is a single recurring fixed cost entry.
type Item struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Frequency  Frequency `json:"frequency"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MonthlyAmount normalizes the cost to its monthly equivalent. All
// downstream aggregation works on monthly figures.
func (i Item) MonthlyAmount() float64 {
	switch i.Frequency {
	case FrequencySemiannual:
		return i.Amount / 6
	case FrequencyAnnual:
		return i.Amount / 12
	default:
		return i.Amount
	}
}

// MonthlyTotal sums the monthly-equivalent amounts of all items.
func MonthlyTotal(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.MonthlyAmount()
	}
	return total
}

// CreateItemInput captures fixed cost creation input.
type CreateItemInput struct {
	Name      string    `json:"name" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
	Frequency Frequency `json:"frequency" validate:"required"`
	Category  string    `json:"category" validate:"required"`
}

// Validate ensures correctness.
func (in CreateItemInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("costs: name required")
	}
	if in.Amount <= 0 {
		return errors.New("costs: amount must be positive")
	}
	if !in.Frequency.Valid() {
		return errors.New("costs: unknown frequency")
	}
	if strings.TrimSpace(in.Category) == "" {
		return errors.New("costs: category required")
	}
	return nil
}
