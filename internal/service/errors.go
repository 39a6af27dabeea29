package service

import "errors"

var (
	// ErrInvalidSession is returned by Login for an empty token or a zero
	// user id.
	ErrInvalidSession = errors.New("invalid session")
	// ErrNotSignedIn is returned by user-bound calls made without a session.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrInvalidCredentials means the server rejected username/password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrServerUnavailable covers every other login failure.
	ErrServerUnavailable = errors.New("server unavailable")
)

// Reference backend errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrInvalidToken        = errors.New("invalid token")
	// ErrUnauthorizedAccessToDifferentUserData is returned when a request
	// names another user's data.
	ErrUnauthorizedAccessToDifferentUserData = errors.New("access to data of a different user")
)
