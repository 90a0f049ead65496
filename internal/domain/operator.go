package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultOperatorTemplate is the generic operator page template.
const DefaultOperatorTemplate = "siteui/operator_detail.html"

type Operator struct {
	ID             int64     `json:"id" db:"id"`
	UUID           uuid.UUID `json:"uuid" db:"uuid"`
	Name           string    `json:"name" db:"operator_name"`
	BustimesSlug   string    `json:"slug" db:"bustimes_slug"`
	Website        string    `json:"website,omitempty" db:"website"`
	Telephone      string    `json:"telephone,omitempty" db:"telephone"`
	Email          string    `json:"email,omitempty" db:"email"`
	LogoCircular   string    `json:"logo_circular,omitempty" db:"logo_circular"`
	LogoBanner     string    `json:"logo_banner,omitempty" db:"logo_banner"`
	PrimaryHex     string    `json:"primary_hex" db:"primary_hex"`
	SecondaryHex   string    `json:"secondary_hex,omitempty" db:"secondary_hex"`
	HasCustomPage  bool      `json:"has_custom_page" db:"has_custom_page"`
	CustomTemplate string    `json:"custom_template,omitempty" db:"custom_template"`
	IsFeatured     bool      `json:"is_featured" db:"is_featured"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	VehiclesOperated []VehicleType `json:"vehicles_operated" db:"-"`
}

// OperatorRef is the slice of an Operator carried on joined rows.
type OperatorRef struct {
	ID           int64     `json:"id" db:"id"`
	UUID         uuid.UUID `json:"uuid" db:"uuid"`
	Name         string    `json:"name" db:"operator_name"`
	BustimesSlug string    `json:"slug" db:"bustimes_slug"`
	PrimaryHex   string    `json:"primary_hex" db:"primary_hex"`
}

func (o *Operator) Ref() OperatorRef {
	return OperatorRef{
		ID:           o.ID,
		UUID:         o.UUID,
		Name:         o.Name,
		BustimesSlug: o.BustimesSlug,
		PrimaryHex:   o.PrimaryHex,
	}
}

// SelectTemplate picks the custom template only when the page is enabled and a
// template is actually set.
func SelectTemplate(hasCustomPage bool, customTemplate, fallback string) string {
	if hasCustomPage && customTemplate != "" {
		return customTemplate
	}
	return fallback
}

// Template returns the operator page template, falling back to fallback.
func (o *Operator) Template(fallback string) string {
	return SelectTemplate(o.HasCustomPage, o.CustomTemplate, fallback)
}
