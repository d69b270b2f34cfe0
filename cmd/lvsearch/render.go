package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/solver"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"gopkg.in/yaml.v3"
)

// palette holds the colours used by text output.
type palette struct {
	ok       *color.Color
	fail     *color.Color
	label    *color.Color
	wall     *color.Color
	path     *color.Color
	explored *color.Color
	endpoint *color.Color
}

// newPalette returns the text colours. When enabled is false every colour
// prints plain text; otherwise fatih/color decides based on the terminal.
func newPalette(enabled bool) palette {
	p := palette{
		ok:       color.New(color.FgGreen, color.Bold),
		fail:     color.New(color.FgRed, color.Bold),
		label:    color.New(color.FgCyan),
		wall:     color.New(color.FgHiBlack),
		path:     color.New(color.FgYellow, color.Bold),
		explored: color.New(color.FgBlue),
		endpoint: color.New(color.FgMagenta, color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{p.ok, p.fail, p.label, p.wall, p.path, p.explored, p.endpoint} {
			c.DisableColor()
		}
	}

	return p
}

// printer writes reports in the configured output format.
type printer struct {
	w      io.Writer
	out    config.OutputConfig
	colors palette
}

func newPrinter(w io.Writer, out config.OutputConfig) *printer {
	return &printer{w: w, out: out, colors: newPalette(out.Color)}
}

// encode writes v as JSON or YAML. It reports false for text output.
func (p *printer) encode(v any) (bool, error) {
	switch p.out.Format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}

	return false, nil
}

// report prints a single run.
func (p *printer) report(m *maze.Maze, rep *solver.Report) error {
	if done, err := p.encode(rep); done {
		return err
	}

	var b strings.Builder
	alg := string(rep.Algorithm)
	if rep.Heuristic != "" {
		alg += " (heuristic: " + rep.Heuristic + ")"
	}
	p.line(&b, "Algorithm", alg)
	if !rep.Found {
		b.WriteString(p.colors.fail.Sprint("No solution found.") + "\n")
		p.line(&b, "Expanded", fmt.Sprintf("%d nodes", rep.Expanded))
		p.line(&b, "Time", rep.Elapsed.String())
		_, err := io.WriteString(p.w, b.String())
		return err
	}

	b.WriteString(p.colors.ok.Sprint("Solution found") + "\n")
	p.line(&b, "Path", formatActions(rep.Actions))
	p.line(&b, "Path length", strconv.Itoa(rep.Steps))
	p.line(&b, "Cost", formatCost(rep.Cost))
	if rep.Verified {
		p.line(&b, "Verified", "yes")
	}
	p.line(&b, "Expanded", fmt.Sprintf("%d nodes", rep.Expanded))
	p.line(&b, "Time", rep.Elapsed.String())

	if p.out.ShowPath || p.out.ShowExplored {
		var path []maze.Cell
		if p.out.ShowPath {
			path = rep.Path
		}
		b.WriteString("\n")
		for _, row := range m.Render(path, rep.Explored) {
			b.WriteString(p.paint(row) + "\n")
		}
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

// comparison prints one row per report.
func (p *printer) comparison(reports []*solver.Report) error {
	if done, err := p.encode(reports); done {
		return err
	}

	headers := []string{"algorithm", "found", "steps", "cost", "expanded", "pushed", "max frontier", "time", "error"}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	upper := make([]string, len(headers))
	sep := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
		sep[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(upper, "\t"))
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, r := range reports {
		steps, cost, errText := "-", "-", "-"
		if r.Found {
			steps, cost = strconv.Itoa(r.Steps), formatCost(r.Cost)
		}
		if r.Err != nil {
			errText = p.colors.fail.Sprint(r.Error)
		}
		row := []string{
			string(r.Algorithm),
			strconv.FormatBool(r.Found),
			steps,
			cost,
			strconv.Itoa(r.Expanded),
			strconv.Itoa(r.Pushed),
			strconv.Itoa(r.MaxFrontier),
			r.Elapsed.String(),
			errText,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// algorithms prints the registry listing.
func (p *printer) algorithms(infos []algorithmInfo, heuristics []string) error {
	listing := struct {
		Algorithms []algorithmInfo `json:"algorithms" yaml:"algorithms"`
		Heuristics []string        `json:"heuristics" yaml:"heuristics"`
	}{infos, heuristics}
	if done, err := p.encode(listing); done {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tALIASES\tFRONTIER\tOPTIMAL")
	for _, info := range infos {
		aliases := strings.Join(info.Aliases, ",")
		if aliases == "" {
			aliases = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, aliases, info.Frontier, info.Optimal)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "\nHeuristics: %s\n", strings.Join(heuristics, ", "))

	return err
}

func (p *printer) line(b *strings.Builder, label, value string) {
	b.WriteString(p.colors.label.Sprint(label+":") + " " + value + "\n")
}

// paint colours one rendered maze row.
func (p *printer) paint(row string) string {
	var b strings.Builder
	for i := 0; i < len(row); i++ {
		s := row[i : i+1]
		switch row[i] {
		case maze.WallChar:
			s = p.colors.wall.Sprint(s)
		case maze.PathChar:
			s = p.colors.path.Sprint(s)
		case maze.ExploredChar:
			s = p.colors.explored.Sprint(s)
		case maze.StartChar, maze.GoalChar:
			s = p.colors.endpoint.Sprint(s)
		}
		b.WriteString(s)
	}

	return b.String()
}

// formatActions joins actions with arrows.
func formatActions(actions []problem.Action) string {
	if len(actions) == 0 {
		return "(empty, start is the goal)"
	}
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = string(a)
	}

	return strings.Join(parts, " -> ")
}

// formatCost prints c with at most four decimals.
func formatCost(c float64) string {
	return strconv.FormatFloat(math.Round(c*1e4)/1e4, 'f', -1, 64)
}
