package dto

import (
	"time"

	"github.com/transit-site/internal/domain"
)

// ModeRequest - create/update a transport mode
type ModeRequest struct {
	Name string `json:"name" validate:"required,max=20"`
	Slug string `json:"slug" validate:"required,max=50,slug"`
}

func (r *ModeRequest) Apply(m *domain.Mode) error {
	m.Name = r.Name
	m.Slug = r.Slug
	return nil
}

// VehicleTypeRequest - create/update a vehicle type
type VehicleTypeRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

func (r *VehicleTypeRequest) Apply(vt *domain.VehicleType) error {
	vt.Name = r.Name
	return nil
}

// OperatorRequest - create/update an operator
type OperatorRequest struct {
	Name           string  `json:"name" validate:"required,max=50"`
	Slug           string  `json:"slug" validate:"required,max=50,slug"`
	Website        string  `json:"website" validate:"omitempty,url,max=200"`
	Telephone      string  `json:"telephone" validate:"omitempty,phone"`
	Email          string  `json:"email" validate:"omitempty,email,max=254"`
	LogoCircular   string  `json:"logo_circular" validate:"max=255"`
	LogoBanner     string  `json:"logo_banner" validate:"max=255"`
	PrimaryHex     string  `json:"primary_hex" validate:"required,hex7"`
	SecondaryHex   string  `json:"secondary_hex" validate:"omitempty,hex7"`
	HasCustomPage  bool    `json:"has_custom_page"`
	CustomTemplate string  `json:"custom_template" validate:"max=100"`
	IsFeatured     bool    `json:"is_featured"`
	VehicleTypeIDs []int64 `json:"vehicle_type_ids" validate:"omitempty,dive,min=1"`
}

func (r *OperatorRequest) Apply(op *domain.Operator) error {
	op.Name = r.Name
	op.BustimesSlug = r.Slug
	op.Website = r.Website
	op.Telephone = r.Telephone
	op.Email = r.Email
	op.LogoCircular = r.LogoCircular
	op.LogoBanner = r.LogoBanner
	op.PrimaryHex = r.PrimaryHex
	op.SecondaryHex = r.SecondaryHex
	op.HasCustomPage = r.HasCustomPage
	op.CustomTemplate = r.CustomTemplate
	op.IsFeatured = r.IsFeatured
	op.VehiclesOperated = vehicleTypes(r.VehicleTypeIDs)
	return nil
}

// RouteRequest - create/update a route. DisplayOrder defaults to 1000.
type RouteRequest struct {
	Service        string  `json:"service" validate:"required,max=10"`
	ModeID         int64   `json:"mode_id" validate:"required,min=1"`
	OperatorID     int64   `json:"operator_id" validate:"required,min=1"`
	Origin         string  `json:"origin" validate:"required,max=100"`
	Destination    string  `json:"destination" validate:"required,max=100"`
	Via            string  `json:"via" validate:"max=200"`
	RouteGroup     string  `json:"route_group" validate:"max=50"`
	RouteHex       string  `json:"route_hex" validate:"omitempty,hex7"`
	BustimesID     int64   `json:"bustimes_id" validate:"required"`
	DisplayOrder   *int    `json:"display_order" validate:"omitempty,min=0"`
	VehicleTypeIDs []int64 `json:"vehicle_type_ids" validate:"omitempty,dive,min=1"`
}

func (r *RouteRequest) Apply(route *domain.Route) error {
	route.Service = r.Service
	route.ModeID = r.ModeID
	route.OperatorID = r.OperatorID
	route.Origin = r.Origin
	route.Destination = r.Destination
	route.Via = r.Via
	route.RouteGroup = r.RouteGroup
	route.RouteHex = r.RouteHex
	route.BustimesID = r.BustimesID
	switch {
	case r.DisplayOrder != nil:
		route.DisplayOrder = *r.DisplayOrder
	case route.ID == 0:
		route.DisplayOrder = domain.DefaultDisplayOrder
	}
	route.VehiclesUsed = vehicleTypes(r.VehicleTypeIDs)
	return nil
}

// DisplayOrderRequest - inline edit of a route's display order
type DisplayOrderRequest struct {
	DisplayOrder *int `json:"display_order" validate:"required,min=0"`
}

// FareRequest - create/update fare content
type FareRequest struct {
	ModeID      int64  `json:"mode_id" validate:"required,min=1"`
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description"`
}

func (r *FareRequest) Apply(f *domain.Fare) error {
	f.ModeID = r.ModeID
	f.Name = r.Name
	f.Description = r.Description
	return nil
}

// TicketRequest - create/update a ticket. Price is a decimal string, e.g. "4.50".
type TicketRequest struct {
	OperatorID  int64  `json:"operator_id" validate:"required,min=1"`
	Name        string `json:"name" validate:"required,max=50"`
	Price       string `json:"price" validate:"required,numeric"`
	Duration    string `json:"duration" validate:"required,max=50"`
	Description string `json:"description"`
}

func (r *TicketRequest) Apply(t *domain.Ticket) error {
	price, err := domain.NewMoney(r.Price)
	if err != nil || !price.Valid() {
		return invalidField("Price", "money")
	}
	t.OperatorID = r.OperatorID
	t.Name = r.Name
	t.Price = price
	t.Duration = r.Duration
	t.Description = r.Description
	return nil
}

// StatusTypeRequest - create/update a service status type
type StatusTypeRequest struct {
	Name        string `json:"name" validate:"required,max=30"`
	Description string `json:"description"`
	ColourHex   string `json:"colour_hex" validate:"required,hex7"`
	Severity    int    `json:"severity" validate:"min=0,max=32767"`
}

func (r *StatusTypeRequest) Apply(st *domain.ServiceStatusType) error {
	st.Name = r.Name
	st.Description = r.Description
	st.ColourHex = r.ColourHex
	st.Severity = r.Severity
	return nil
}

// RouteStatusRequest - create/update a route status. IsActive defaults to true.
type RouteStatusRequest struct {
	RouteID         int64      `json:"route_id" validate:"required,min=1"`
	StatusTypeID    int64      `json:"status_type_id" validate:"required,min=1"`
	Summary         string     `json:"summary" validate:"required,max=200"`
	Detail          string     `json:"detail"`
	AffectedSection string     `json:"affected_section" validate:"max=200"`
	IsPlanned       bool       `json:"is_planned"`
	IsActive        *bool      `json:"is_active"`
	ValidFrom       time.Time  `json:"valid_from" validate:"required"`
	ValidTo         *time.Time `json:"valid_to" validate:"omitempty,gtefield=ValidFrom"`
}

func (r *RouteStatusRequest) Apply(s *domain.RouteStatus) error {
	s.RouteID = r.RouteID
	s.StatusTypeID = r.StatusTypeID
	s.Summary = r.Summary
	s.Detail = r.Detail
	s.AffectedSection = r.AffectedSection
	s.IsPlanned = r.IsPlanned
	s.IsActive = boolOr(r.IsActive, s.ID == 0 || s.IsActive)
	s.ValidFrom = r.ValidFrom
	s.ValidTo = r.ValidTo
	return nil
}

// MapRequest - create/update a map
type MapRequest struct {
	Title        string `json:"title" validate:"required,max=100"`
	Description  string `json:"description"`
	Path         string `json:"path" validate:"required,max=255"`
	PreviewImage string `json:"preview_image" validate:"max=255"`
	HexColour    string `json:"hex_colour" validate:"required,hex7"`
	Slug         string `json:"slug" validate:"required,max=50,slug"`
}

func (r *MapRequest) Apply(m *domain.Map) error {
	m.Title = r.Title
	m.Description = r.Description
	m.Path = r.Path
	m.PreviewImage = r.PreviewImage
	m.HexColour = r.HexColour
	m.Slug = r.Slug
	return nil
}

// IncidentRequest - create/update a network incident. No ModeIDs means the
// whole network is affected.
type IncidentRequest struct {
	Title           string     `json:"title" validate:"required,max=100"`
	Description     string     `json:"description" validate:"required"`
	StatusTypeID    int64      `json:"status_type_id" validate:"required,min=1"`
	StartTime       time.Time  `json:"start_time" validate:"required"`
	ExpectedEndTime *time.Time `json:"expected_end_time" validate:"omitempty,gtefield=StartTime"`
	Active          *bool      `json:"active"`
	ModeIDs         []int64    `json:"mode_ids" validate:"omitempty,dive,min=1"`
}

func (r *IncidentRequest) Apply(n *domain.NetworkIncident) error {
	n.Title = r.Title
	n.Description = r.Description
	n.StatusTypeID = r.StatusTypeID
	n.StartTime = r.StartTime
	n.ExpectedEndTime = r.ExpectedEndTime
	n.Active = boolOr(r.Active, n.ID == 0 || n.Active)
	n.AffectsModes = make([]domain.Mode, 0, len(r.ModeIDs))
	for _, id := range r.ModeIDs {
		n.AffectsModes = append(n.AffectsModes, domain.Mode{ID: id})
	}
	return nil
}

// ImportRequest - enqueue a bustimes route import
type ImportRequest struct {
	OperatorCode string `json:"operator_code" validate:"required,max=20"`
	OperatorSlug string `json:"operator_slug" validate:"required,max=50,slug"`
}

func vehicleTypes(ids []int64) []domain.VehicleType {
	out := make([]domain.VehicleType, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.VehicleType{ID: id})
	}
	return out
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
