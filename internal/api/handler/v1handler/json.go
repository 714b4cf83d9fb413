package v1handler

import (
	"io"
	"maps"
	"net/http"
	"slices"
	"tally/pkg/domain"
	"tally/pkg/serrors"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}

// decodeBody walks the JSON object in the request body, calling field for
// every key.
func decodeBody(r *http.Request, field func(d *jx.Decoder, key string) error) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		return errors.Wrap(err, "read body")
	}

	if err := jx.DecodeBytes(body).Obj(field); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	out := []string{}
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return err
		}
		out = append(out, s)

		return nil
	})

	return out, err
}

func encodeTime(e *jx.Encoder, name string, t time.Time) {
	if t.IsZero() {
		return
	}
	e.Field(name, func(e *jx.Encoder) { e.Str(t.UTC().Format(time.RFC3339Nano)) })
}

func encodeProject(e *jx.Encoder, p domain.Project) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(p.ID.String()) })
		e.Field("name", func(e *jx.Encoder) { e.Str(p.Name) })
		e.Field("description", func(e *jx.Encoder) { e.Str(p.Description) })
		e.Field("teamMembers", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, m := range p.TeamMembers {
					e.Str(m)
				}
			})
		})
		encodeTime(e, "createdAt", p.CreatedAt)
	})
}

func encodeJudge(e *jx.Encoder, j domain.Judge) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(j.ID.String()) })
		e.Field("name", func(e *jx.Encoder) { e.Str(j.Name) })
		e.Field("email", func(e *jx.Encoder) { e.Str(j.Email) })
		encodeTime(e, "createdAt", j.CreatedAt)
	})
}

func encodeCriterion(e *jx.Encoder, c domain.Criterion) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(c.ID.String()) })
		e.Field("name", func(e *jx.Encoder) { e.Str(c.Name) })
		e.Field("description", func(e *jx.Encoder) { e.Str(c.Description) })
		e.Field("weight", func(e *jx.Encoder) { e.Int(c.Weight) })
		e.Field("maxScore", func(e *jx.Encoder) { e.Int(c.MaxScore) })
		encodeTime(e, "createdAt", c.CreatedAt)
	})
}

func encodeScore(e *jx.Encoder, s domain.Score) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("judgeId", func(e *jx.Encoder) { e.Str(s.JudgeID.String()) })
		e.Field("projectId", func(e *jx.Encoder) { e.Str(s.ProjectID.String()) })
		e.Field("criterionId", func(e *jx.Encoder) { e.Str(s.CriterionID.String()) })
		e.Field("value", func(e *jx.Encoder) { e.Int(s.Value) })
		if s.Comment != "" {
			e.Field("comment", func(e *jx.Encoder) { e.Str(s.Comment) })
		}
		encodeTime(e, "updatedAt", s.UpdatedAt)
	})
}

func encodeVoteStats(e *jx.Encoder, s domain.VoteStats) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("totalVotes", func(e *jx.Encoder) { e.Int(s.TotalVotes) })
		e.Field("remaining", func(e *jx.Encoder) { e.Int(s.Remaining) })
		e.Field("votedProjectIds", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, id := range s.VotedProjectIDs {
					e.Str(id.String())
				}
			})
		})
	})
}

func encodeWeightReport(e *jx.Encoder, r domain.WeightReport) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("total", func(e *jx.Encoder) { e.Int(r.Total) })
		e.Field("balanced", func(e *jx.Encoder) { e.Bool(r.Balanced) })
	})
}

func encodeAggregateResult(e *jx.Encoder, r domain.AggregateResult) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("rank", func(e *jx.Encoder) { e.Int(r.Rank) })
		e.Field("projectId", func(e *jx.Encoder) { e.Str(r.ProjectID.String()) })
		e.Field("weightedScore", func(e *jx.Encoder) { e.Float64(r.WeightedScore) })
		e.Field("perCriterionAverage", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for _, name := range slices.Sorted(maps.Keys(r.PerCriterionAverage)) {
					e.Field(name, func(e *jx.Encoder) { e.Float64(r.PerCriterionAverage[name]) })
				}
			})
		})
	})
}

func encodeCommunityResult(e *jx.Encoder, r domain.CommunityResult) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("rank", func(e *jx.Encoder) { e.Int(r.Rank) })
		e.Field("projectId", func(e *jx.Encoder) { e.Str(r.ProjectID.String()) })
		e.Field("voteCount", func(e *jx.Encoder) { e.Int(r.VoteCount) })
	})
}

func encodeExport(e *jx.Encoder, x domain.Export) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(x.ID.String()) })
		e.Field("kind", func(e *jx.Encoder) { e.Str(string(x.Kind)) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(x.Status)) })
		e.Field("attempts", func(e *jx.Encoder) { e.UInt(x.Attempts) })
		if x.LastError != "" {
			e.Field("lastError", func(e *jx.Encoder) { e.Str(x.LastError) })
		}
		encodeTime(e, "createdAt", x.CreatedAt)
		encodeTime(e, "updatedAt", x.UpdatedAt)
	})
}

func encodeList[T any](items []T, encode func(e *jx.Encoder, item T)) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, item := range items {
						encode(e, item)
					}
				})
			})
		})
	}
}
