package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"progress-tracker/internal/domain"
	"progress-tracker/internal/service"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

type recordOutput struct {
	Name       string `json:"name" yaml:"name"`
	Email      string `json:"email" yaml:"email"`
	ProfileURL string `json:"profile_url" yaml:"profile_url"`
	Completed  bool   `json:"completed" yaml:"completed"`
	Badges     *int   `json:"badges" yaml:"badges"`
	Games      *int   `json:"games" yaml:"games"`
}

type statsOutput struct {
	Total     int `json:"total" yaml:"total"`
	Completed int `json:"completed" yaml:"completed"`
	Pending   int `json:"pending" yaml:"pending"`
}

type viewOutput struct {
	Search  string         `json:"search" yaml:"search"`
	Status  string         `json:"status" yaml:"status"`
	Sort    string         `json:"sort" yaml:"sort"`
	Shown   int            `json:"shown" yaml:"shown"`
	Total   int            `json:"total" yaml:"total"`
	Stats   statsOutput    `json:"stats" yaml:"stats"`
	Records []recordOutput `json:"records" yaml:"records"`
}

func countPtr(c domain.Count) *int {
	if !c.Present() {
		return nil
	}
	n := c.Int()
	return &n
}

func toStatsOutput(s domain.Stats) statsOutput {
	return statsOutput{Total: s.Total, Completed: s.Completed, Pending: s.Pending}
}

func toViewOutput(v service.View) viewOutput {
	out := viewOutput{
		Search:  v.Query.Search,
		Status:  string(v.Query.Status),
		Sort:    string(v.Query.Sort),
		Shown:   v.Shown,
		Total:   v.Total,
		Stats:   toStatsOutput(v.Stats),
		Records: make([]recordOutput, 0, len(v.Records)),
	}
	for _, r := range v.Records {
		out.Records = append(out.Records, recordOutput{
			Name:       r.Name,
			Email:      r.Email,
			ProfileURL: r.ProfileURL,
			Completed:  r.Completed(),
			Badges:     countPtr(r.BadgeCount),
			Games:      countPtr(r.GameCount),
		})
	}
	return out
}

func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

type palette struct {
	label     lipgloss.Style
	completed lipgloss.Style
	pending   lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		label:     r.NewStyle().Bold(true),
		completed: r.NewStyle().Foreground(lipgloss.Color("#16a34a")),
		pending:   r.NewStyle().Foreground(lipgloss.Color("#ca8a04")),
	}
}

func (p palette) summary(s domain.Stats) string {
	return fmt.Sprintf("%s  %s  %s",
		p.label.Render("Total Students: "+strconv.Itoa(s.Total)),
		p.completed.Render("Completed: "+strconv.Itoa(s.Completed)),
		p.pending.Render("In Progress: "+strconv.Itoa(s.Pending)),
	)
}

func writeStats(w io.Writer, format string, s domain.Stats) error {
	if format != "text" {
		return writeStructured(w, format, toStatsOutput(s))
	}
	_, err := fmt.Fprintln(w, newPalette(w).summary(s))
	return err
}

func writeView(w io.Writer, format string, v service.View) error {
	if format != "text" {
		return writeStructured(w, format, toViewOutput(v))
	}

	p := newPalette(w)
	if _, err := fmt.Fprintln(w, p.summary(v.Stats)); err != nil {
		return err
	}

	if len(v.Records) == 0 {
		_, err := fmt.Fprintln(w, "No students found matching your criteria")
		if err != nil {
			return err
		}
	} else {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("NAME", "EMAIL", "BADGES", "GAMES", "STATUS", "PROFILE")
		for _, r := range v.Records {
			status := "In Progress"
			if r.Completed() {
				status = "Completed"
			}
			t.Row(r.Name, r.Email, r.BadgeCount.String(), r.GameCount.String(), status, r.ProfileURL)
		}
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Showing %d of %d students\n", v.Shown, v.Total)
	return err
}
