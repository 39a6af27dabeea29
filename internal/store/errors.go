package store

import "errors"

// Sentinel errors returned by credential store implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found in credential store")

	// ErrSealing is returned when a value cannot be sealed before writing
	// or opened after reading.
	ErrSealing = errors.New("credential store value sealing failed")
)

// Reference backend storage errors.
var (
	ErrNoUserWasFound     = errors.New("no user was found")
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrTokenNotFound      = errors.New("token not found")
	ErrDictionaryNotFound = errors.New("dictionary not found")
	ErrWordNotFound       = errors.New("word not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan credential row")
)
