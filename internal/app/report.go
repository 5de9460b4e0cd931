package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/engine/flags"
	"go.trai.ch/wasmtc/internal/ui/output"
	"go.trai.ch/wasmtc/internal/ui/style"
)

// Report is the outcome of a plan.
type Report struct {
	Job              string                  `json:"job"`
	Configuration    string                  `json:"configuration"`
	Optimization     string                  `json:"optimization"`
	SDK              domain.SDKInfo          `json:"sdk"`
	Options          domain.ToolchainOptions `json:"options"`
	LibraryDir       string                  `json:"libraryDir"`
	Actions          []ActionReport          `json:"actions"`
	Products         []domain.BuildProduct   `json:"products"`
	ResponseFiles    []ResponseFileReport    `json:"responseFiles"`
	Timings          []domain.SpanTiming     `json:"timings,omitempty"`
	ResponsesWritten bool                    `json:"-"`
}

// ActionReport is one planned action with its incremental state.
type ActionReport struct {
	Target string              `json:"target"`
	Key    string              `json:"key"`
	Status domain.ActionStatus `json:"status"`
	*domain.Action
}

// ResponseFileReport is one response file of the plan.
type ResponseFileReport struct {
	Path    string `json:"path"`
	Lines   int    `json:"lines"`
	Written bool   `json:"written"`
}

func newReport(s *session, p *planned, states []actionState, written map[string]bool, write bool) *Report {
	tc := s.toolchain
	r := &Report{
		Job:              s.job.Path,
		Configuration:    s.build.Configuration.String(),
		Optimization:     flags.DescribeOptimization(s.build),
		SDK:              tc.SDK(),
		Options:          tc.Options(),
		LibraryDir:       tc.Options().LibraryDir(tc.SDK().Version),
		Products:         p.products.Items(),
		ResponsesWritten: write,
	}

	for _, st := range states {
		r.Actions = append(r.Actions, ActionReport{
			Target: p.targetOf[st.action],
			Key:    st.key,
			Status: st.status,
			Action: st.action,
		})
	}

	for _, rf := range p.responseFiles {
		r.ResponseFiles = append(r.ResponseFiles, ResponseFileReport{
			Path:    rf.Path,
			Lines:   len(rf.Lines),
			Written: written[rf.Path],
		})
	}

	return r
}

// Stale returns the number of actions that need to run.
func (r *Report) Stale() int {
	n := 0
	for _, a := range r.Actions {
		if a.Status.NeedsRun() {
			n++
		}
	}
	return n
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes the human-readable report.
func (r *Report) WriteText(w io.Writer) error {
	re := output.NewRenderer(w)
	title := re.NewStyle().Bold(true).Foreground(style.Iris)
	muted := re.NewStyle().Foreground(style.Slate)
	stale := re.NewStyle().Foreground(style.Yellow)
	fresh := re.NewStyle().Foreground(style.Green)
	failed := re.NewStyle().Foreground(style.Red)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", title.Render("plan"), r.Job)
	fmt.Fprintf(&b, "  %s %s (%s)\n", muted.Render(pad("config", 9)), r.Configuration, r.Optimization)
	fmt.Fprintf(&b, "  %s %s %s\n", muted.Render(pad("sdk", 9)), r.SDK.Version, r.SDK.Root)
	fmt.Fprintf(&b, "  %s multithreading=%t offscreen_canvas=%t tracing=%t profiler=%s\n",
		muted.Render(pad("options", 9)),
		r.Options.Multithreading, r.Options.OffscreenCanvas, r.Options.Tracing, r.Options.Profiler)
	fmt.Fprintf(&b, "  %s %s\n", muted.Render(pad("libraries", 9)), r.LibraryDir)

	b.WriteString("\n")
	width := 0
	for _, a := range r.Actions {
		width = max(width, len(actionLabel(a)))
	}
	for _, a := range r.Actions {
		icon, st := style.Check, fresh
		if a.Status.NeedsRun() {
			icon, st = style.Dot, stale
		}
		fmt.Fprintf(&b, "%s %s %s\n", st.Render(icon), pad(actionLabel(a), width), st.Render(string(a.Status)))
	}
	fmt.Fprintf(&b, "%s\n", muted.Render(fmt.Sprintf("%d actions, %d stale", len(r.Actions), r.Stale())))

	if len(r.Products) > 0 {
		fmt.Fprintf(&b, "\n%s\n", title.Render("products"))
		for _, p := range r.Products {
			fmt.Fprintf(&b, "  %s %s\n", p.Path, muted.Render(p.Type.String()))
		}
	}

	if len(r.ResponseFiles) > 0 {
		fmt.Fprintf(&b, "\n%s\n", title.Render("response files"))
		for _, rf := range r.ResponseFiles {
			state := "not written"
			switch {
			case r.ResponsesWritten && rf.Written:
				state = "written"
			case r.ResponsesWritten:
				state = "unchanged"
			}
			fmt.Fprintf(&b, "  %s %s\n", rf.Path, muted.Render(state))
		}
	}

	if len(r.Timings) > 0 {
		fmt.Fprintf(&b, "\n%s\n", title.Render("timings"))
		for _, t := range r.Timings {
			name := strings.Repeat("  ", t.Depth) + t.Name
			line := fmt.Sprintf("  %s %s", pad(name, 24), t.Duration.Round(time.Microsecond))
			if t.Err != "" {
				line += " " + failed.Render(style.Cross+" "+t.Err)
			}
			b.WriteString(line + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func actionLabel(a ActionReport) string {
	return fmt.Sprintf("%s %s/%s", a.Kind, a.Target, a.Description)
}

func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
