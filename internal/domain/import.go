package domain

import "strings"

// DescriptionSeparator splits a bustimes service description into stops.
const DescriptionSeparator = " - "

// BustimesService is one entry of the bustimes.org services API "results" list.
type BustimesService struct {
	ID          int64  `json:"id"`
	LineName    string `json:"line_name"`
	Description string `json:"description"`
	Slug        string `json:"slug,omitempty"`
	Mode        string `json:"mode,omitempty"`
}

// ServiceEndpoints is the origin/via/destination parsed from a description.
type ServiceEndpoints struct {
	Origin      string
	Destination string
	Via         string
}

// SplitDescription parses "Origin - Via 1 - Via 2 - Destination". The first
// segment is the origin, the last the destination, and any middle segments
// are re-joined with the separator as via.
func SplitDescription(description string) ServiceEndpoints {
	parts := strings.Split(description, DescriptionSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	ep := ServiceEndpoints{
		Origin:      parts[0],
		Destination: parts[len(parts)-1],
	}
	if len(parts) > 2 {
		ep.Via = strings.Join(parts[1:len(parts)-1], DescriptionSeparator)
	}
	return ep
}

// RouteImport is the set of columns the importer writes, keyed by BustimesID.
type RouteImport struct {
	BustimesID  int64
	Service     string
	Origin      string
	Destination string
	Via         string
	OperatorID  int64
	ModeID      int64
}

// NewRouteImport maps an external service onto local route columns.
func NewRouteImport(svc BustimesService, operatorID, modeID int64) RouteImport {
	ep := SplitDescription(svc.Description)
	return RouteImport{
		BustimesID:  svc.ID,
		Service:     svc.LineName,
		Origin:      ep.Origin,
		Destination: ep.Destination,
		Via:         ep.Via,
		OperatorID:  operatorID,
		ModeID:      modeID,
	}
}

// ImportResult summarises one importer run.
type ImportResult struct {
	OperatorSlug string `json:"operator_slug"`
	OperatorName string `json:"operator_name"`
	Fetched      int    `json:"fetched"`
	Created      int    `json:"created"`
	Updated      int    `json:"updated"`
}

// Empty reports whether the external API returned no services.
func (r *ImportResult) Empty() bool {
	return r.Fetched == 0
}
