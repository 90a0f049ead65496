package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/transit-site/internal/domain"
)

// joinTable describes an owner <-> vehicle_types many-to-many table.
type joinTable struct {
	table    string
	ownerCol string
	otherCol string
}

var (
	operatorVehicles = joinTable{table: "operator_vehicle_types", ownerCol: "operator_id", otherCol: "vehicle_type_id"}
	routeVehicles    = joinTable{table: "route_vehicle_types", ownerCol: "route_id", otherCol: "vehicle_type_id"}
	incidentModes    = joinTable{table: "network_incident_modes", ownerCol: "incident_id", otherCol: "mode_id"}
)

// replace swaps the owner's linked ids for ids inside tx.
func (j joinTable) replace(ctx context.Context, tx *sqlx.Tx, ownerID int64, ids []int64) error {
	del := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, j.table, j.ownerCol)
	if _, err := tx.ExecContext(ctx, del, ownerID); err != nil {
		return err
	}
	ins := fmt.Sprintf(
		`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		j.table, j.ownerCol, j.otherCol,
	)
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, ins, ownerID, id); err != nil {
			return err
		}
	}
	return nil
}

// selectIn runs a query with a single "IN (?)" slice argument.
func selectIn(ctx context.Context, q sqlx.QueryerContext, dest interface{}, query string, ids []int64) error {
	query, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return sqlx.SelectContext(ctx, q, dest, sqlx.Rebind(sqlx.DOLLAR, query), args...)
}

type vehicleLink struct {
	OwnerID int64  `db:"owner_id"`
	ID      int64  `db:"id"`
	Name    string `db:"name"`
}

// loadVehicleTypes returns owner id -> vehicle types, alphabetical.
func loadVehicleTypes(ctx context.Context, q sqlx.QueryerContext, j joinTable, ownerIDs []int64) (map[int64][]domain.VehicleType, error) {
	out := make(map[int64][]domain.VehicleType, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}
	query := fmt.Sprintf(`
		SELECT j.%s AS owner_id, vt.id, vt.name
		FROM %s j
		JOIN vehicle_types vt ON vt.id = j.%s
		WHERE j.%s IN (?)
		ORDER BY vt.name
	`, j.ownerCol, j.table, j.otherCol, j.ownerCol)

	var links []vehicleLink
	if err := selectIn(ctx, q, &links, query, ownerIDs); err != nil {
		return nil, err
	}
	for _, l := range links {
		out[l.OwnerID] = append(out[l.OwnerID], domain.VehicleType{ID: l.ID, Name: l.Name})
	}
	return out, nil
}

type modeLink struct {
	OwnerID int64  `db:"owner_id"`
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Slug    string `db:"slug"`
}

func loadIncidentModes(ctx context.Context, q sqlx.QueryerContext, incidentIDs []int64) (map[int64][]domain.Mode, error) {
	out := make(map[int64][]domain.Mode, len(incidentIDs))
	if len(incidentIDs) == 0 {
		return out, nil
	}
	var links []modeLink
	err := selectIn(ctx, q, &links, `
		SELECT nim.incident_id AS owner_id, m.id, m.name, m.slug
		FROM network_incident_modes nim
		JOIN modes m ON m.id = nim.mode_id
		WHERE nim.incident_id IN (?)
		ORDER BY m.name
	`, incidentIDs)
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		out[l.OwnerID] = append(out[l.OwnerID], domain.Mode{ID: l.ID, Name: l.Name, Slug: l.Slug})
	}
	return out, nil
}

func vehicleTypeIDs(vts []domain.VehicleType) []int64 {
	ids := make([]int64, 0, len(vts))
	for _, vt := range vts {
		ids = append(ids, vt.ID)
	}
	return ids
}

func modeIDs(modes []domain.Mode) []int64 {
	ids := make([]int64, 0, len(modes))
	for _, m := range modes {
		ids = append(ids, m.ID)
	}
	return ids
}

// emptyIfNil keeps JSON output as [] rather than null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// checkAffected turns a zero-row UPDATE/DELETE into notFound.
func checkAffected(res interface{ RowsAffected() (int64, error) }, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
