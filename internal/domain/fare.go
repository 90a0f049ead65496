package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fare is free-text fare information for a mode.
type Fare struct {
	ID          int64  `json:"id" db:"id"`
	ModeID      int64  `json:"mode_id" db:"mode_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`

	Mode Mode `json:"mode" db:"mode"`
}

type Ticket struct {
	ID          int64     `json:"id" db:"id"`
	UUID        uuid.UUID `json:"uuid" db:"uuid"`
	OperatorID  int64     `json:"operator_id" db:"operator_id"`
	Name        string    `json:"name" db:"name"`
	Price       Money     `json:"price" db:"price"`
	Duration    string    `json:"duration" db:"duration"`
	Description string    `json:"description,omitempty" db:"description"`
}

// Money is a price with two fractional digits.
type Money struct {
	decimal.Decimal
}

// MaxTicketPrice is the exclusive upper bound of NUMERIC(6,2).
var MaxTicketPrice = decimal.NewFromInt(10000)

func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

func (m Money) String() string {
	return m.StringFixed(2)
}

// MarshalJSON renders prices as fixed two-digit strings, e.g. "4.50".
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// Valid reports whether m is non-negative, fits NUMERIC(6,2) and has at most
// two fractional digits.
func (m Money) Valid() bool {
	if m.IsNegative() || m.GreaterThanOrEqual(MaxTicketPrice) {
		return false
	}
	return m.Equal(m.Round(2))
}
