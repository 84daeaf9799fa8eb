package errors

import "net/http"

var (
	ErrReportNotFound = New(
		"REPORT_NOT_FOUND",
		"Report not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Saved route not found",
		http.StatusNotFound,
	)

	ErrDuplicateVote = New(
		"DUPLICATE_VOTE",
		"You have already voted on this report",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidVote = New(
		"INVALID_VOTE",
		"Vote must be either confirm or deny",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidHazardType = New(
		"INVALID_HAZARD_TYPE",
		"Unknown hazard type",
		http.StatusBadRequest,
	)

	ErrInvalidSeverity = New(
		"INVALID_SEVERITY",
		"Severity must be low, medium or high",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrStorageUnavailable = New(
		"STORAGE_UNAVAILABLE",
		"Storage operation failed",
		http.StatusInternalServerError,
	)

	// ErrRoutingUnavailable never reaches API clients: route planning
	// degrades to fallback geometry instead. It exists so the directions
	// client failure is distinguishable in logs and tests.
	ErrRoutingUnavailable = New(
		"ROUTING_UNAVAILABLE",
		"Directions provider unavailable",
		http.StatusBadGateway,
	)

	// ErrEmptyGeometry indicates a bug in geometry construction; callers
	// are expected to substitute a fallback point rather than surface it.
	ErrEmptyGeometry = New(
		"EMPTY_GEOMETRY",
		"Route geometry has no points",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
