package dto

import "github.com/transit-site/internal/domain"

// HomeResponse - featured operators and the sitewide banner
type HomeResponse struct {
	FeaturedOperators []domain.Operator       `json:"featured_operators"`
	Incident          *domain.NetworkIncident `json:"incident"`
}

// OperatorDetailResponse - operator page
type OperatorDetailResponse struct {
	Operator domain.Operator `json:"operator"`
	Routes   []RouteItem     `json:"routes"`
	Tickets  []domain.Ticket `json:"tickets"`
	Template string          `json:"template"`
}

// RouteItem - route with its resolved display colour
type RouteItem struct {
	domain.Route
	DisplayHex string `json:"display_hex"`
}

func NewRouteItems(routes []domain.Route) []RouteItem {
	items := make([]RouteItem, len(routes))
	for i := range routes {
		items[i] = RouteItem{Route: routes[i], DisplayHex: routes[i].DisplayHex()}
	}
	return items
}

// RouteListResponse - all routes plus the modes to filter them by
type RouteListResponse struct {
	Routes []RouteItem   `json:"routes"`
	Modes  []domain.Mode `json:"modes"`
}

// RouteDetailResponse - route page. CurrentStatus is null for normal service.
type RouteDetailResponse struct {
	Route         RouteItem           `json:"route"`
	CurrentStatus *domain.RouteStatus `json:"current_status"`
	Maps          []domain.Map        `json:"maps"`
	Tickets       []domain.Ticket     `json:"tickets"`
}

// OperatorFares - an operator with its tickets, price ascending
type OperatorFares struct {
	Operator domain.OperatorRef `json:"operator"`
	Tickets  []domain.Ticket    `json:"tickets"`
}

// ModeFares - fare content for one mode
type ModeFares struct {
	Mode  domain.Mode   `json:"mode"`
	Fares []domain.Fare `json:"fares"`
}

// FaresResponse - fares page
type FaresResponse struct {
	Operators []OperatorFares `json:"operators"`
	Modes     []ModeFares     `json:"modes"`
}

// ImportQueuedResponse - accepted import request
type ImportQueuedResponse struct {
	RequestID string `json:"request_id"`
	MessageID string `json:"message_id"`
}
