package domain

// Status colours
const (
	ColourGoodService = "#00A000"
	ColourMinor       = "#FFD200"
	ColourSevere      = "#DC241F"
	ColourNoService   = "#000000"
	ColourPlanned     = "#003688"
)

// StatusVocabulary is the TfL-style status vocabulary seeded on first deploy.
func StatusVocabulary() []ServiceStatusType {
	return []ServiceStatusType{
		{Name: "Good Service", Description: "Service operating normally", ColourHex: ColourGoodService, Severity: 0},

		{Name: "Minor Delays", Description: "Minor delays on some services", ColourHex: ColourMinor, Severity: 1},
		{Name: "Reduced Service", Description: "Reduced service operating", ColourHex: ColourMinor, Severity: 1},
		{Name: "Bus Service Changed", Description: "Bus service operating with changes", ColourHex: ColourMinor, Severity: 1},

		{Name: "Severe Delays", Description: "Severe delays on the service", ColourHex: ColourSevere, Severity: 2},
		{Name: "Part Closure", Description: "Service partly closed", ColourHex: ColourSevere, Severity: 2},
		{Name: "Part Suspended", Description: "Service partly suspended", ColourHex: ColourSevere, Severity: 2},

		{Name: "Suspended", Description: "Service suspended", ColourHex: ColourNoService, Severity: 3},
		{Name: "No Service", Description: "No service operating", ColourHex: ColourNoService, Severity: 3},
		{Name: "Service Closed", Description: "Service closed", ColourHex: ColourNoService, Severity: 3},
		{Name: "Not Running", Description: "Service not running", ColourHex: ColourNoService, Severity: 3},

		{Name: "Planned Closure", Description: "Planned closure", ColourHex: ColourPlanned, Severity: 4},
		{Name: "Planned Work", Description: "Planned work", ColourHex: ColourPlanned, Severity: 4},
		{Name: "Planned Engineering Work", Description: "Planned engineering work", ColourHex: ColourPlanned, Severity: 4},
		{Name: "Special Service", Description: "Special service", ColourHex: ColourPlanned, Severity: 4},
		{Name: "Information", Description: "Service information", ColourHex: ColourPlanned, Severity: 4},
	}
}
