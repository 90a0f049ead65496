package postgres

import (
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/transit-site/internal/pkg/errors"
)

// SQLSTATE codes
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeStringTooLong       = "22001"
	codeNumericOutOfRange   = "22003"
)

// constraintFields names the user-facing field behind each constraint.
var constraintFields = map[string]string{
	"modes_name_key":                        "name",
	"modes_slug_key":                        "slug",
	"vehicle_types_name_key":                "name",
	"operators_bustimes_slug_key":           "bustimes_slug",
	"operators_primary_hex_check":           "primary_hex",
	"operators_secondary_hex_check":         "secondary_hex",
	"routes_bustimes_id_key":                "bustimes_id",
	"routes_service_operator_mode_key":      "service",
	"routes_route_hex_check":                "route_hex",
	"routes_display_order_check":            "display_order",
	"routes_mode_id_fkey":                   "mode",
	"routes_operator_id_fkey":               "operator",
	"tickets_name_operator_key":             "name",
	"tickets_price_check":                   "price",
	"tickets_operator_id_fkey":              "operator",
	"service_status_types_name_key":         "name",
	"service_status_types_colour_hex_check": "colour_hex",
	"route_statuses_route_id_fkey":          "route",
	"route_statuses_status_type_id_fkey":    "status_type",
	"network_incidents_status_type_id_fkey": "status_type",
	"maps_slug_key":                         "slug",
	"maps_hex_colour_check":                 "hex_colour",
}

type pgFailure struct {
	code       string
	constraint string
	table      string
	column     string
	message    string
	detail     string
}

func sqlState(err error) (pgFailure, bool) {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgFailure{
			code:       pgErr.Code,
			constraint: pgErr.ConstraintName,
			table:      pgErr.TableName,
			column:     pgErr.ColumnName,
			message:    pgErr.Message,
			detail:     pgErr.Detail,
		}, true
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pgFailure{
			code:       string(pqErr.Code),
			constraint: pqErr.Constraint,
			table:      pqErr.Table,
			column:     pqErr.Column,
			message:    pqErr.Message,
			detail:     pqErr.Detail,
		}, true
	}
	return pgFailure{}, false
}

// classify maps a driver error onto the AppError taxonomy. sql.ErrNoRows
// becomes notFound.
func classify(err error, notFound *errors.AppError) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	if _, ok := errors.As(err); ok {
		return err
	}

	f, ok := sqlState(err)
	if !ok {
		return errors.ErrDatabaseError
	}

	details := map[string]interface{}{}
	if f.table != "" {
		details["table"] = f.table
	}
	if f.constraint != "" {
		details["constraint"] = f.constraint
	}
	if field, ok := constraintFields[f.constraint]; ok {
		details["field"] = field
	} else if f.column != "" {
		details["field"] = f.column
	}

	switch f.code {
	case codeUniqueViolation:
		return errors.ErrDuplicate.WithDetails(details)
	case codeForeignKeyViolation:
		// Inserts and updates pointing at a missing parent are bad input;
		// only a delete blocked by children is a referential conflict.
		if strings.Contains(f.detail, "is not present in table") {
			details["reason"] = f.detail
			return errors.ErrValidation.WithDetails(details)
		}
		return errors.ErrReferenced.WithDetails(details)
	case codeCheckViolation, codeNotNullViolation, codeStringTooLong, codeNumericOutOfRange:
		details["reason"] = f.message
		return errors.ErrValidation.WithDetails(details)
	}
	return errors.ErrDatabaseError
}
