package picopg

import "errors"

var (
	// ErrNoGateway is returned when a Model executes a statement without a
	// Gateway set.
	ErrNoGateway = errors.New("no gateway")

	// ErrMustBePointer is returned when a record or query target that will
	// receive scanned values is not a pointer.
	ErrMustBePointer = errors.New("must be pointer")

	// ErrMustBeStruct is returned when a Model is created from something
	// other than a struct.
	ErrMustBeStruct = errors.New("must be struct")

	// ErrTypeMismatch is returned when a record passed to a Model operation
	// is not an instance of the Model's struct type.
	ErrTypeMismatch = errors.New("record type mismatch")

	// ErrNoPrimaryKey is returned at Model creation when the primary key
	// column is not among the declared columns.
	ErrNoPrimaryKey = errors.New("primary key not among declared columns")

	// ErrMissingPrimaryKey is returned by Update and Delete when the
	// record's primary key value is unset.
	ErrMissingPrimaryKey = errors.New("primary key value required")

	// ErrInvalidPage is returned by Paginate when page or page size is not
	// a positive integer.
	ErrInvalidPage = errors.New("page and page size must be positive")

	// ErrUnknownField is returned when a filter names a field the Model
	// does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrNoRowReturned is returned when a statement that must return
	// exactly one row (INSERT ... RETURNING *) returns none.
	ErrNoRowReturned = errors.New("no row returned")

	// ErrMissingColumn is returned when a result row lacks a column the
	// Model declares.
	ErrMissingColumn = errors.New("row missing expected column")
)
