package errors

import "net/http"

// Not found
var (
	ErrRecordNotFound = New(
		"RECORD_NOT_FOUND",
		"Record not found",
		http.StatusNotFound,
	)

	ErrOperatorNotFound = New(
		"OPERATOR_NOT_FOUND",
		"Operator not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrMapNotFound = New(
		"MAP_NOT_FOUND",
		"Map not found",
		http.StatusNotFound,
	)
)

// Write path
var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Validation failed",
		http.StatusBadRequest,
	)

	ErrDuplicate = New(
		"DUPLICATE_RECORD",
		"A record with the same unique key already exists",
		http.StatusConflict,
	)

	ErrReferenced = New(
		"REFERENTIAL_INTEGRITY",
		"Record is referenced by other records",
		http.StatusConflict,
	)
)

// Infrastructure
var (
	ErrExternalService = New(
		"EXTERNAL_SERVICE_ERROR",
		"External service request failed",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrQueueError = New(
		"QUEUE_ERROR",
		"Queue operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
