package controller

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
)

// PprofMux returns a router exposing the net/http/pprof handlers at its
// root. It is meant to be mounted under a debug path of the main server.
func PprofMux() http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/", pprof.Index)
	r.HandleFunc("/cmdline", pprof.Cmdline)
	r.HandleFunc("/profile", pprof.Profile)
	r.HandleFunc("/symbol", pprof.Symbol)
	r.HandleFunc("/trace", pprof.Trace)
	r.Handle("/{profile}", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		pprof.Handler(chi.URLParam(req, "profile")).ServeHTTP(w, req)
	}))

	return r
}
