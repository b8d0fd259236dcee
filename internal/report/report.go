package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/montanaflynn/stats"

	"snplot/domain/posterior"
	"snplot/internal/render"
)

// Report assembles a fit summary in markdown and renders it to HTML next to
// the figures it references.
type Report struct {
	Title   string
	Figures []string // figure paths, linked relative to the report location
}

// Build produces the markdown body: a parameter table combining the supplied
// summaries with sample percentiles, followed by the figure links.
func (r *Report) Build(set *posterior.SampleSet, summaries []posterior.Summary) (string, error) {
	if err := set.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	b.WriteString("## Parameters\n\n")
	b.WriteString("| parameter | value | median | 16% | 84% |\n")
	b.WriteString("|---|---|---|---|---|\n")

	for j, s := range summaries {
		formatted, err := render.FormatValueErr(s.Average, s.Error)
		if err != nil {
			return "", fmt.Errorf("parameter %s: %w", s.Name, err)
		}

		col := set.Column(j)
		median, err := stats.Median(col)
		if err != nil {
			return "", fmt.Errorf("parameter %s: %w", s.Name, err)
		}
		p16, err := stats.Percentile(col, 16)
		if err != nil {
			return "", fmt.Errorf("parameter %s: %w", s.Name, err)
		}
		p84, err := stats.Percentile(col, 84)
		if err != nil {
			return "", fmt.Errorf("parameter %s: %w", s.Name, err)
		}

		fmt.Fprintf(&b, "| %s | %s | %.4g | %.4g | %.4g |\n",
			s.Name, formatted, median, p16, p84)
	}

	b.WriteString("\n## Figures\n\n")
	for _, fig := range r.Figures {
		name := filepath.Base(fig)
		fmt.Fprintf(&b, "![%s](%s)\n\n", name, name)
	}

	return b.String(), nil
}

// WriteHTML converts the markdown body to HTML and writes it to path.
func (r *Report) WriteHTML(path string, set *posterior.SampleSet, summaries []posterior.Summary) error {
	md, err := r.Build(set, summaries)
	if err != nil {
		return err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	out := markdown.ToHTML([]byte(md), p, renderer)

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
