// Package http is the REST transport of the reference backend.
//
// It exposes the token-auth endpoint and the dictionary, word and user
// resources the terminal client talks to. Authentication, request tracing
// and access logging are middleware; handlers only decode input, call the
// service layer and encode the result.
package http
