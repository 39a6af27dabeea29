// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path that exists but does not serve the method answers 405 with an
// Allow header listing the methods it does serve; chi only reaches this
// handler for matched paths.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		allowed := make([]string, 0, len(allMethods))
		for _, method := range allMethods {
			rctx.Reset()
			if router.Match(rctx, method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
			return
		}

		for _, method := range allowed {
			w.Header().Add("Allow", method)
		}
		utils.WriteDetail(w, "Method \""+r.Method+"\" not allowed.", http.StatusMethodNotAllowed)
	}
}

var allMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
}
