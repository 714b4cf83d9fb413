package v1handler_test

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tally/internal/api/handler/v1handler"
	mockcatalog "tally/internal/catalog/mock"
	mockexporter "tally/internal/exporter/mock"
	"tally/internal/jury"
	mockjury "tally/internal/jury/mock"
	mockresults "tally/internal/results/mock"
	mockvoting "tally/internal/voting/mock"
	"tally/pkg/controller"
	"tally/pkg/domain"
	"tally/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const salt = "test-salt"

type api struct {
	server   *httptest.Server
	priv     *rsa.PrivateKey
	tracker  *mockvoting.MockTracker
	catalog  *mockcatalog.MockCatalog
	jury     *mockjury.MockService
	results  *mockresults.MockResults
	exporter *mockexporter.MockExporter
}

func newAPI(t *testing.T, trustedProxies ...string) *api {
	t.Helper()

	proxies, err := controller.ParseTrustedProxies(trustedProxies)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	priv, pubPEM := genRSAKeys(t)
	a := &api{
		priv:     priv,
		tracker:  mockvoting.NewMockTracker(ctrl),
		catalog:  mockcatalog.NewMockCatalog(ctrl),
		jury:     mockjury.NewMockService(ctrl),
		results:  mockresults.NewMockResults(ctrl),
		exporter: mockexporter.NewMockExporter(ctrl),
	}

	h := v1handler.New(v1handler.Deps{
		Tracker:  a.tracker,
		Catalog:  a.catalog,
		Jury:     a.jury,
		Results:  a.results,
		Exporter: a.exporter,
	})
	a.server = httptest.NewServer(h.Routes(newSecHandlerForTest(t, pubPEM), salt, proxies))
	t.Cleanup(a.server.Close)

	return a
}

func (a *api) do(t *testing.T, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()

	return a.doFrom(t, "", method, path, token, body)
}

// doFrom sends the request with forwardedFor as its X-Forwarded-For header.
func (a *api) doFrom(t *testing.T, forwardedFor, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), method, a.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, b
}

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))

	return out
}

func TestCastVote(t *testing.T) {
	a := newAPI(t)
	projectID := domain.ProjectID(uuid.New())
	identity := controller.VoterIdentity(salt, "127.0.0.1")

	a.tracker.EXPECT().ReserveVote(gomock.Any(), identity, projectID).Return(nil)
	a.tracker.EXPECT().Stats(gomock.Any(), identity).Return(domain.VoteStats{
		Identity:        identity,
		TotalVotes:      1,
		Remaining:       2,
		VotedProjectIDs: []domain.ProjectID{projectID},
	}, nil)

	res, body := a.do(t, http.MethodPost, "/projects/"+projectID.String()+"/votes", "", "")
	require.Equal(t, http.StatusCreated, res.StatusCode)
	got := decode(t, body)
	require.InDelta(t, 1, got["totalVotes"], 0)
	require.InDelta(t, 2, got["remaining"], 0)
	require.Equal(t, []any{projectID.String()}, got["votedProjectIds"])
	require.NotContains(t, string(body), "127.0.0.1")
}

func TestCastVote_ForwardedForCannotMintIdentities(t *testing.T) {
	a := newAPI(t)
	projectID := domain.ProjectID(uuid.New())
	identity := controller.VoterIdentity(salt, "127.0.0.1")

	a.tracker.EXPECT().ReserveVote(gomock.Any(), identity, projectID).Return(nil)
	a.tracker.EXPECT().Stats(gomock.Any(), identity).Return(domain.VoteStats{Identity: identity, TotalVotes: 1, Remaining: 2}, nil)
	a.tracker.EXPECT().ReserveVote(gomock.Any(), identity, projectID).
		Return(serrors.With(serrors.ErrDuplicateVote, "already voted for this project"))

	res, _ := a.doFrom(t, "1.1.1.1", http.MethodPost, "/projects/"+projectID.String()+"/votes", "", "")
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := a.doFrom(t, "2.2.2.2", http.MethodPost, "/projects/"+projectID.String()+"/votes", "", "")
	require.Equal(t, http.StatusConflict, res.StatusCode)
	require.Equal(t, "DUPLICATE_VOTE", decode(t, body)["code"])
}

func TestCastVote_BehindTrustedProxy(t *testing.T) {
	a := newAPI(t, "127.0.0.1")
	projectID := domain.ProjectID(uuid.New())
	identity := controller.VoterIdentity(salt, "203.0.113.7")

	a.tracker.EXPECT().ReserveVote(gomock.Any(), identity, projectID).Return(nil)
	a.tracker.EXPECT().Stats(gomock.Any(), identity).Return(domain.VoteStats{Identity: identity, TotalVotes: 1, Remaining: 2}, nil)

	res, _ := a.doFrom(t, "203.0.113.7", http.MethodPost, "/projects/"+projectID.String()+"/votes", "", "")
	require.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestCastVote_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"quota", serrors.With(serrors.ErrQuotaExceeded, "all 3 votes have already been used"), 403, "QUOTA_EXCEEDED"},
		{"duplicate", serrors.With(serrors.ErrDuplicateVote, "already voted for this project"), 409, "DUPLICATE_VOTE"},
		{"unknown project", serrors.With(serrors.ErrNotFound, "project not found"), 404, "NOT_FOUND"},
		{"transient", serrors.Wrap(serrors.ErrTransientConflict, errors.New("lock"), "please retry"), 503, "TRANSIENT_CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAPI(t)
			a.tracker.EXPECT().ReserveVote(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.err)

			res, body := a.do(t, http.MethodPost, "/projects/"+uuid.NewString()+"/votes", "", "")
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, decode(t, body)["code"])
			if tt.status == http.StatusServiceUnavailable {
				require.Equal(t, "1", res.Header.Get("Retry-After"))
			}
		})
	}
}

func TestCastVote_InvalidProjectID(t *testing.T) {
	a := newAPI(t)

	res, body := a.do(t, http.MethodPost, "/projects/nope/votes", "", "")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "BAD_REQUEST", decode(t, body)["code"])
}

func TestCreateProject_RequiresAdmin(t *testing.T) {
	a := newAPI(t)
	now := time.Now()

	res, _ := a.do(t, http.MethodPost, "/projects", "", `{"name":"Alpha"}`)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	judgeToken := signJWTRS256(t, a.priv, uuid.NewString(), "", now, now.Add(time.Hour))
	res, _ = a.do(t, http.MethodPost, "/projects", judgeToken, `{"name":"Alpha"}`)
	require.Equal(t, http.StatusForbidden, res.StatusCode)

	a.catalog.EXPECT().CreateProject(gomock.Any(), domain.Project{
		Name:        "Alpha",
		Description: "A project",
		TeamMembers: []string{"Ada", "Grace"},
	}).DoAndReturn(func(_ context.Context, p domain.Project) (*domain.Project, error) {
		p.ID = domain.ProjectID(uuid.New())

		return &p, nil
	})

	adminToken := signJWTRS256(t, a.priv, "ops", v1handler.RoleAdmin, now, now.Add(time.Hour))
	res, body := a.do(t, http.MethodPost, "/projects", adminToken,
		`{"name":"Alpha","description":"A project","teamMembers":["Ada","Grace"],"ignored":true}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "Alpha", decode(t, body)["name"])
}

func TestSubmitScores(t *testing.T) {
	a := newAPI(t)
	now := time.Now()
	judgeID := domain.JudgeID(uuid.New())
	projectID := domain.ProjectID(uuid.New())
	criterionID := domain.CriterionID(uuid.New())

	a.jury.EXPECT().SubmitScores(gomock.Any(), judgeID, projectID, []jury.ScoreInput{
		{CriterionID: criterionID, Value: 7, Comment: "good"},
	}).Return([]domain.Score{{
		JudgeID:     judgeID,
		ProjectID:   projectID,
		CriterionID: criterionID,
		Value:       7,
		Comment:     "good",
	}}, nil)

	token := signJWTRS256(t, a.priv, uuid.UUID(judgeID).String(), "", now, now.Add(time.Hour))
	res, body := a.do(t, http.MethodPut, "/projects/"+projectID.String()+"/scores", token,
		`{"scores":[{"criterionId":"`+criterionID.String()+`","value":7,"comment":"good"}]}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	items, ok := decode(t, body)["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestSubmitScores_MalformedBody(t *testing.T) {
	a := newAPI(t)
	now := time.Now()

	token := signJWTRS256(t, a.priv, uuid.NewString(), "", now, now.Add(time.Hour))
	res, body := a.do(t, http.MethodPut, "/projects/"+uuid.NewString()+"/scores", token, `{"scores":[{"value":"x"}]}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "BAD_REQUEST", decode(t, body)["code"])
}

func TestJuryResults(t *testing.T) {
	a := newAPI(t)
	projectID := domain.ProjectID(uuid.New())

	a.results.EXPECT().JuryResults(gomock.Any()).Return([]domain.AggregateResult{{
		ProjectID:           projectID,
		WeightedScore:       80,
		PerCriterionAverage: map[string]float64{"Innovation": 8, "Clarity": 4},
		Rank:                1,
	}}, nil)

	res, body := a.do(t, http.MethodGet, "/results/jury", "", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"items":[{"rank":1,"projectId":"`+projectID.String()+
		`","weightedScore":80,"perCriterionAverage":{"Clarity":4,"Innovation":8}}]}`, string(body))
}

func TestCommunityCSV(t *testing.T) {
	a := newAPI(t)

	a.results.EXPECT().WriteCSV(gomock.Any(), domain.ExportKindCommunity, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ExportKind, w io.Writer) error {
			_, err := io.WriteString(w, "Rank,Project,Votes\n1,Alpha,3\n")

			return err
		})

	res, body := a.do(t, http.MethodGet, "/results/community.csv", "", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "text/csv; charset=utf-8", res.Header.Get("Content-Type"))
	require.Contains(t, res.Header.Get("Content-Disposition"), "community-results.csv")
	require.Equal(t, "Rank,Project,Votes\n1,Alpha,3\n", string(body))
}

func TestExports(t *testing.T) {
	a := newAPI(t)
	now := time.Now()
	token := signJWTRS256(t, a.priv, "ops", v1handler.RoleAdmin, now, now.Add(time.Hour))
	export := &domain.Export{
		ID:     domain.ExportID(uuid.New()),
		Kind:   domain.ExportKindJury,
		Status: domain.ExportStatusPending,
	}

	a.exporter.EXPECT().Enqueue(gomock.Any(), domain.ExportKindJury).Return(export, nil)
	res, body := a.do(t, http.MethodPost, "/exports", token, `{"kind":"jury"}`)
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	require.Equal(t, "PENDING", decode(t, body)["status"])

	a.exporter.EXPECT().Export(gomock.Any(), export.ID).Return(export, nil)
	res, body = a.do(t, http.MethodGet, "/exports/"+export.ID.String()+"/content", token, "")
	require.Equal(t, http.StatusConflict, res.StatusCode)
	require.Equal(t, "CONFLICT", decode(t, body)["code"])

	completed := *export
	completed.Status = domain.ExportStatusCompleted
	completed.Content = []byte("Rank,Project\n")
	a.exporter.EXPECT().Export(gomock.Any(), export.ID).Return(&completed, nil)
	res, body = a.do(t, http.MethodGet, "/exports/"+export.ID.String()+"/content", token, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.True(t, bytes.Equal(completed.Content, body))
}
