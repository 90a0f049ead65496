package domain

// DisruptedRoute is a route with its active, non-good statuses (newest first).
type DisruptedRoute struct {
	Route
	Colour   string        `json:"display_hex"`
	Statuses []RouteStatus `json:"statuses"`
}

type OperatorDisruptions struct {
	Operator OperatorRef      `json:"operator"`
	Routes   []DisruptedRoute `json:"routes"`
}

type ModeDisruptions struct {
	Mode      Mode                  `json:"mode"`
	Operators []OperatorDisruptions `json:"operators"`
}

// DisruptionBoard is the network status overview grouped Mode -> Operator -> Route.
type DisruptionBoard struct {
	Modes       []ModeDisruptions `json:"modes"`
	RouteCount  int               `json:"route_count"`
	StatusCount int               `json:"status_count"`
}

// BuildDisruptionBoard includes a route iff it has at least one active status
// whose type is not good service. Statuses for routes missing from routes are
// dropped. Groups and routes keep the order of routes, which the store returns
// sorted by mode name, operator name, display order and service under the
// database collation. A mode or operator seen again later joins its first group.
func BuildDisruptionBoard(routes []Route, statuses []RouteStatus) DisruptionBoard {
	byRoute := make(map[int64][]RouteStatus)
	for _, s := range statuses {
		byRoute[s.RouteID] = append(byRoute[s.RouteID], s)
	}

	board := DisruptionBoard{Modes: make([]ModeDisruptions, 0)}
	modeIdx := make(map[int64]int)
	opIdx := make(map[[2]int64]int)

	for _, r := range routes {
		active := ActiveDisruptions(byRoute[r.ID])
		if len(active) == 0 {
			continue
		}
		board.RouteCount++
		board.StatusCount += len(active)

		mi, ok := modeIdx[r.Mode.ID]
		if !ok {
			mi = len(board.Modes)
			modeIdx[r.Mode.ID] = mi
			board.Modes = append(board.Modes, ModeDisruptions{Mode: r.Mode})
		}
		mode := &board.Modes[mi]

		key := [2]int64{r.Mode.ID, r.Operator.ID}
		oi, ok := opIdx[key]
		if !ok {
			oi = len(mode.Operators)
			opIdx[key] = oi
			mode.Operators = append(mode.Operators, OperatorDisruptions{Operator: r.Operator})
		}
		op := &mode.Operators[oi]
		op.Routes = append(op.Routes, DisruptedRoute{
			Route:    r,
			Colour:   r.DisplayHex(),
			Statuses: active,
		})
	}

	return board
}
