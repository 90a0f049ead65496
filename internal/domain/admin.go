package domain

// Fieldset is one titled group of fields on an admin edit form.
type Fieldset struct {
	Name        string   `json:"name"`
	Fields      []string `json:"fields"`
	Description string   `json:"description,omitempty"`
}

// AdminEntity describes how the admin surface presents one entity. It is
// static configuration for whatever renders the admin UI.
type AdminEntity struct {
	Key               string              `json:"key"`
	Path              string              `json:"path"`
	VerboseName       string              `json:"verbose_name"`
	VerboseNamePlural string              `json:"verbose_name_plural"`
	ListDisplay       []string            `json:"list_display"`
	ListEditable      []string            `json:"list_editable,omitempty"`
	ListFilter        []string            `json:"list_filter,omitempty"`
	SearchFields      []string            `json:"search_fields,omitempty"`
	ReadonlyFields    []string            `json:"readonly_fields,omitempty"`
	Prepopulated      map[string][]string `json:"prepopulated_fields,omitempty"`
	Ordering          []string            `json:"ordering,omitempty"`
	Fieldsets         []Fieldset          `json:"fieldsets,omitempty"`
}

// AdminSchema returns the admin presentation config for every entity.
func AdminSchema() []AdminEntity {
	return []AdminEntity{
		{
			Key:               "mode",
			Path:              "modes",
			VerboseName:       "Mode of transport",
			VerboseNamePlural: "Modes of transport",
			ListDisplay:       []string{"name", "slug"},
			SearchFields:      []string{"name"},
			Prepopulated:      map[string][]string{"slug": {"name"}},
			Ordering:          []string{"name"},
		},
		{
			Key:               "vehicle_type",
			Path:              "vehicle-types",
			VerboseName:       "Vehicle type",
			VerboseNamePlural: "Vehicle types",
			ListDisplay:       []string{"name"},
			SearchFields:      []string{"name"},
			Ordering:          []string{"name"},
		},
		{
			Key:               "operator",
			Path:              "operators",
			VerboseName:       "Operator",
			VerboseNamePlural: "Operators",
			ListDisplay:       []string{"operator_name", "bustimes_slug", "website", "telephone", "has_custom_page"},
			SearchFields:      []string{"operator_name", "bustimes_slug"},
			ReadonlyFields:    []string{"uuid"},
			Ordering:          []string{"operator_name"},
			Fieldsets: []Fieldset{
				{Name: "Identity", Fields: []string{"uuid", "operator_name", "bustimes_slug"}},
				{Name: "Contact", Fields: []string{"website", "telephone", "email"}},
				{Name: "Branding", Fields: []string{"logo_circular", "logo_banner", "primary_hex", "secondary_hex"}},
				{Name: "Operations", Fields: []string{"vehicles_operated", "is_featured"}},
				{
					Name:        "Custom page",
					Fields:      []string{"has_custom_page", "custom_template"},
					Description: "Enable a custom operator page template. If enabled, the template path must exist.",
				},
			},
		},
		{
			Key:               "route",
			Path:              "routes",
			VerboseName:       "Route",
			VerboseNamePlural: "Routes",
			ListDisplay:       []string{"service", "mode", "operator", "origin", "destination", "display_order"},
			ListEditable:      []string{"display_order"},
			ListFilter:        []string{"mode", "operator", "route_group"},
			SearchFields:      []string{"service", "origin", "destination"},
			ReadonlyFields:    []string{"uuid"},
			Ordering:          []string{"display_order", "service"},
			Fieldsets: []Fieldset{
				{Name: "Core", Fields: []string{"uuid", "service", "mode", "operator", "display_order", "bustimes_id"}},
				{Name: "Route detail", Fields: []string{"origin", "destination", "via", "route_group"}},
				{Name: "Branding", Fields: []string{"route_hex"}},
				{Name: "Operations", Fields: []string{"vehicles_used"}},
			},
		},
		{
			Key:               "fare",
			Path:              "fares",
			VerboseName:       "Fare",
			VerboseNamePlural: "Fares",
			ListDisplay:       []string{"name", "mode"},
			ListFilter:        []string{"mode"},
			SearchFields:      []string{"name"},
			Ordering:          []string{"name"},
		},
		{
			Key:               "ticket",
			Path:              "tickets",
			VerboseName:       "Ticket",
			VerboseNamePlural: "Tickets",
			ListDisplay:       []string{"name", "operator", "price", "duration"},
			ListFilter:        []string{"operator"},
			SearchFields:      []string{"name", "operator__operator_name"},
			ReadonlyFields:    []string{"uuid"},
			Ordering:          []string{"operator", "price"},
			Fieldsets: []Fieldset{
				{Name: "Ticket", Fields: []string{"uuid", "name", "operator"}},
				{Name: "Pricing", Fields: []string{"price", "duration"}},
				{Name: "Description", Fields: []string{"description"}},
			},
		},
		{
			Key:               "service_status_type",
			Path:              "status-types",
			VerboseName:       "Service status type",
			VerboseNamePlural: "Service status types",
			ListDisplay:       []string{"name", "severity", "colour_hex"},
			SearchFields:      []string{"name"},
			Ordering:          []string{"severity", "name"},
		},
		{
			Key:               "route_status",
			Path:              "route-statuses",
			VerboseName:       "Route status",
			VerboseNamePlural: "Route statuses",
			ListDisplay:       []string{"route", "status_type", "is_planned", "is_active", "valid_from"},
			ListFilter:        []string{"status_type", "is_planned", "is_active", "route__mode"},
			SearchFields:      []string{"route__service", "summary", "affected_section"},
			ReadonlyFields:    []string{"last_updated"},
			Ordering:          []string{"-valid_from"},
			Fieldsets: []Fieldset{
				{Name: "Status", Fields: []string{"route", "status_type", "summary", "detail"}},
				{Name: "Scope", Fields: []string{"affected_section", "is_planned"}},
				{Name: "Validity", Fields: []string{"is_active", "valid_from", "valid_to"}},
			},
		},
		{
			Key:               "map",
			Path:              "maps",
			VerboseName:       "Map",
			VerboseNamePlural: "Maps",
			ListDisplay:       []string{"title", "slug", "path", "hex_colour"},
			SearchFields:      []string{"title", "description"},
			Prepopulated:      map[string][]string{"slug": {"title"}},
			Ordering:          []string{"title"},
			Fieldsets: []Fieldset{
				{Name: "Map", Fields: []string{"title", "description", "slug"}},
				{Name: "Preview", Fields: []string{"preview_image"}},
				{Name: "Link", Fields: []string{"path"}},
				{Name: "Branding", Fields: []string{"hex_colour"}},
			},
		},
		{
			Key:               "network_incident",
			Path:              "incidents",
			VerboseName:       "Network incident",
			VerboseNamePlural: "Network incidents",
			ListDisplay:       []string{"title", "status_type", "active", "start_time", "expected_end_time"},
			ListEditable:      []string{"active"},
			ListFilter:        []string{"status_type", "active", "affects_modes"},
			SearchFields:      []string{"title", "description"},
			ReadonlyFields:    []string{"created_at"},
			Ordering:          []string{"-start_time"},
			Fieldsets: []Fieldset{
				{Name: "Incident", Fields: []string{"title", "description", "status_type"}},
				{
					Name:        "Scope",
					Fields:      []string{"affects_modes"},
					Description: "Leave empty to mark the whole network as affected.",
				},
				{Name: "Timing", Fields: []string{"active", "start_time", "expected_end_time", "created_at"}},
			},
		},
	}
}

// AdminEntityByPath finds the schema entry served under path, e.g. "routes".
func AdminEntityByPath(path string) (AdminEntity, bool) {
	for _, e := range AdminSchema() {
		if e.Path == path {
			return e, true
		}
	}
	return AdminEntity{}, false
}
