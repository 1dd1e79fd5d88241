package repositories

import "errors"

var (
	// ErrNotFound is returned when no flight exists with the requested id.
	ErrNotFound = errors.New("flight not found")

	// ErrInvalidColumn is returned when a filter, sort or projection parameter
	// names a column outside the flights allow-list.
	ErrInvalidColumn = errors.New("invalid column")

	// ErrInvalidPagination is returned for a non-positive page or page size.
	ErrInvalidPagination = errors.New("invalid pagination")

	// ErrInvalidSortOrder is returned for a sort direction other than asc or desc.
	ErrInvalidSortOrder = errors.New("invalid sort order")
)
