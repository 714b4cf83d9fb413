package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"tally/pkg/domain"
)

// TeamSeparator joins team member names in exported tables.
const TeamSeparator = "; "

// WriteJuryCSV writes ranked jury results with one column per criterion, in
// the order of criteria. Criteria a project was not scored on print 0.00.
func WriteJuryCSV(w io.Writer,
	results []domain.AggregateResult,
	criteria []domain.Criterion,
	projects []domain.Project) error {
	byID := domain.ProjectsByID(projects)
	cw := csv.NewWriter(w)

	header := []string{"Rank", "Project", "Team", "WeightedScore"}
	for _, c := range criteria {
		header = append(header, c.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	for _, res := range results {
		p := byID[res.ProjectID]
		row := []string{
			strconv.Itoa(res.Rank),
			p.Name,
			strings.Join(p.TeamMembers, TeamSeparator),
			fmt.Sprintf("%.2f%%", res.WeightedScore),
		}
		for _, c := range criteria {
			row = append(row, fmt.Sprintf("%.2f", res.PerCriterionAverage[c.Name]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not flush csv: %w", err)
	}

	return nil
}

// WriteCommunityCSV writes ranked community results.
func WriteCommunityCSV(w io.Writer, results []domain.CommunityResult, projects []domain.Project) error {
	byID := domain.ProjectsByID(projects)
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Rank", "Project", "Votes"}); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for _, res := range results {
		if err := cw.Write([]string{
			strconv.Itoa(res.Rank),
			byID[res.ProjectID].Name,
			strconv.Itoa(res.VoteCount),
		}); err != nil {
			return fmt.Errorf("could not write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not flush csv: %w", err)
	}

	return nil
}
