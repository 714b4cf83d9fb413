// Package v1handler implements the /v1 JSON API.
package v1handler

import (
	"net/http"
	"tally/internal/catalog"
	"tally/internal/exporter"
	"tally/internal/jury"
	"tally/internal/results"
	"tally/internal/voting"
	"tally/pkg/controller"

	"github.com/go-chi/chi/v5"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Tracker  voting.Tracker
	Catalog  catalog.Catalog
	Jury     jury.Service
	Results  results.Results
	Exporter exporter.Exporter
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 router. Paths are relative to the mount point.
// Voter identities are salted with identitySalt and derived from the
// connection peer unless it is one of proxies.
func (h *Handler) Routes(sec *SecHandler, identitySalt string, proxies controller.TrustedProxies) http.Handler {
	r := chi.NewRouter()

	// community
	voter := controller.WithVoterIdentity(identitySalt, proxies)
	r.With(voter).Post("/projects/{projectID}/votes", h.CastVote)
	r.With(voter).Get("/votes/me", h.MyVotes)

	// catalog
	r.Get("/projects", h.ListProjects)
	r.Get("/projects/{projectID}", h.GetProject)
	r.Get("/criteria", h.ListCriteria)
	r.Get("/criteria/weights", h.GetWeightReport)
	r.Group(func(r chi.Router) {
		r.Use(sec.RequireAdmin)
		r.Post("/projects", h.CreateProject)
		r.Post("/criteria", h.CreateCriterion)
		r.Put("/criteria/{criterionID}", h.UpdateCriterion)
		r.Delete("/criteria/{criterionID}", h.DeleteCriterion)
		r.Get("/judges", h.ListJudges)
		r.Post("/judges", h.CreateJudge)
		r.Post("/exports", h.CreateExport)
		r.Get("/exports/{exportID}", h.GetExport)
		r.Get("/exports/{exportID}/content", h.DownloadExport)
	})

	// jury
	r.Group(func(r chi.Router) {
		r.Use(sec.RequireJudge)
		r.Put("/projects/{projectID}/scores", h.SubmitScores)
		r.Get("/projects/{projectID}/scores", h.ListScores)
	})

	// results
	r.Get("/results/jury", h.JuryResults)
	r.Get("/results/community", h.CommunityResults)
	r.Get("/results/jury.csv", h.JuryCSV)
	r.Get("/results/community.csv", h.CommunityCSV)

	return r
}
