// Package brochure renders the page without interaction, for pipes and the
// print command.
package brochure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/wanderwise/internal/catalog"
	"github.com/ensigniasec/wanderwise/internal/counter"
)

const reportWidth = 72

// Section names accepted by PrintSection.
const (
	SectionDestinations = "destinations"
	SectionTestimonials = "testimonials"
	SectionStats        = "stats"
)

// ErrUnknownSection is returned for a section name PrintSection does not know.
var ErrUnknownSection = errors.New("unknown section")

// Months labels the satisfaction series.
var Months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"} //nolint:gochecknoglobals

// StatLine is one statistic at its final frame.
type StatLine struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// StatsReport is the JSON shape of the statistics section.
type StatsReport struct {
	Stats        []StatLine `json:"stats"`
	Satisfaction []int      `json:"satisfaction"`
}

// NewStatsReport collects every stat at its target value.
func NewStatsReport(c *catalog.Catalog) StatsReport {
	r := StatsReport{Stats: []StatLine{}, Satisfaction: append([]int{}, c.Satisfaction...)}
	for _, s := range c.Stats {
		r.Stats = append(r.Stats, StatLine{Label: s.Label, Value: s.Value, Display: StatDisplay(s, s.Value)})
	}
	return r
}

// StatDisplay formats v the way the statistics panel shows it.
func StatDisplay(s catalog.Stat, v float64) string {
	return counter.Format(v, s.Decimal) + s.Suffix
}

// Stars renders a rating out of five.
func Stars(rating float64) string {
	full := int(math.Round(rating))
	full = max(0, min(full, 5))
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

// Chart draws the monthly satisfaction series as vertical bars, height rows
// tall, followed by a row of month initials.
func Chart(values []int, height int) string {
	if height < 1 {
		height = 1
	}
	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i, v := range values {
			if i > 0 {
				b.WriteString(" ")
			}
			if v*height >= row*100 {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	for i := range values {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(Months[i%len(Months)][:1] + " ")
	}
	return b.String()
}

// Print writes the whole page.
func Print(w io.Writer, c *catalog.Catalog) {
	r := lipgloss.NewRenderer(w)
	p := printer{w: w, r: r}

	p.banner(c)
	p.hero(c)
	p.features(c)
	p.destinations(c)
	p.stats(c)
	p.testimonials(c)
	p.footer(c)
}

// PrintSection writes a single section, as text or JSON.
func PrintSection(w io.Writer, c *catalog.Catalog, section string, jsonOutput bool) error {
	if jsonOutput {
		var v any
		switch section {
		case SectionDestinations:
			v = c.Destinations
		case SectionTestimonials:
			v = c.Testimonials
		case SectionStats:
			v = NewStatsReport(c)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownSection, section)
		}
		output, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	}

	p := printer{w: w, r: lipgloss.NewRenderer(w)}
	switch section {
	case SectionDestinations:
		p.destinations(c)
	case SectionTestimonials:
		p.testimonials(c)
	case SectionStats:
		p.stats(c)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	return nil
}

type printer struct {
	w io.Writer
	r *lipgloss.Renderer
}

func (p printer) title(s string) {
	fmt.Fprintln(p.w, strings.Repeat("=", reportWidth))
	fmt.Fprintln(p.w, p.r.NewStyle().Bold(true).Render(strings.ToUpper(s)))
	fmt.Fprintln(p.w, strings.Repeat("=", reportWidth))
}

func (p printer) wrap(s string, indent int) string {
	return p.r.NewStyle().Width(reportWidth - indent).PaddingLeft(indent).Render(s)
}

func (p printer) banner(c *catalog.Catalog) {
	name := p.r.NewStyle().Bold(true).Foreground(lipgloss.Color("69")).Render("🌐 " + c.Brand.Name)
	fmt.Fprintln(p.w, name)
	fmt.Fprintln(p.w, p.r.NewStyle().Foreground(lipgloss.Color("241")).Render(strings.Join(c.Nav, " • ")))
	fmt.Fprintln(p.w)
}

func (p printer) hero(c *catalog.Catalog) {
	fmt.Fprintf(p.w, "%s %s %s\n", c.Hero.Headline, strings.Join(c.Hero.Words, " / "), c.Hero.Closing)
	if c.Hero.Blurb != "" {
		fmt.Fprintln(p.w, p.wrap(c.Hero.Blurb, 0))
	}
	fmt.Fprintln(p.w)
}

func (p printer) features(c *catalog.Catalog) {
	if len(c.Features) == 0 {
		return
	}
	p.title("Why choose " + c.Brand.Name)
	for _, f := range c.Features {
		fmt.Fprintf(p.w, "  %s %s\n", f.Icon, p.r.NewStyle().Bold(true).Render(f.Title))
		fmt.Fprintln(p.w, p.wrap(f.Description, 5))
	}
	fmt.Fprintln(p.w)
}

func (p printer) destinations(c *catalog.Catalog) {
	p.title("Popular destinations")
	if len(c.Destinations) == 0 {
		fmt.Fprintln(p.w, "  No destinations.")
		return
	}
	for i, d := range c.Destinations {
		fmt.Fprintf(p.w, "  %d. %s  %s %.1f  from %s\n", i+1, d.Name, Stars(d.Rating), d.Rating, d.Price)
		fmt.Fprintln(p.w, p.wrap(d.Description, 5))
		if len(d.Features) > 0 {
			fmt.Fprintf(p.w, "     %s\n", strings.Join(d.Features, " • "))
		}
	}
	fmt.Fprintln(p.w)
}

func (p printer) stats(c *catalog.Catalog) {
	p.title("By the numbers")
	for _, line := range NewStatsReport(c).Stats {
		fmt.Fprintf(p.w, "  %-18s %s\n", line.Label, p.r.NewStyle().Bold(true).Render(line.Display))
	}
	if len(c.Satisfaction) > 0 {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, "  Customer satisfaction by month")
		for _, line := range strings.Split(Chart(c.Satisfaction, 5), "\n") {
			fmt.Fprintln(p.w, "  "+line)
		}
	}
	fmt.Fprintln(p.w)
}

func (p printer) testimonials(c *catalog.Catalog) {
	p.title("What travelers say")
	if len(c.Testimonials) == 0 {
		fmt.Fprintln(p.w, "  No testimonials.")
		return
	}
	for _, t := range c.Testimonials {
		fmt.Fprintf(p.w, "  %s  %s, %s\n", Stars(float64(t.Rating)), t.Name, t.Location)
		fmt.Fprintln(p.w, p.wrap("“"+t.Text+"”", 5))
		if t.Trip != "" {
			fmt.Fprintf(p.w, "     %s · %s\n", t.Trip, t.Date)
		}
	}
	fmt.Fprintln(p.w)
}

func (p printer) footer(c *catalog.Catalog) {
	fmt.Fprintln(p.w, strings.Repeat("-", reportWidth))
	fmt.Fprintln(p.w, p.r.NewStyle().Foreground(lipgloss.Color("241")).Render("© "+c.Brand.Name+". All rights reserved."))
}
