package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/wanderwise/internal/brochure"
)

var (
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")) //nolint:gochecknoglobals
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)           //nolint:gochecknoglobals
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))  //nolint:gochecknoglobals
	sectionStyle = lipgloss.NewStyle().PaddingLeft(sectionIndent).MarginBottom(1) //nolint:gochecknoglobals
)

func (m Model) View() string {
	if m.quitting {
		return "Safe travels!\n"
	}
	if m.splashing {
		return m.splashView()
	}
	if !m.ready {
		return "\n  Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView())
}

func (m Model) splashView() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.spinner.View()+" "+accentStyle.Bold(true).Render(m.cat.Brand.Name),
		dimStyle.Render(m.cat.Brand.Tagline),
		"",
		dimStyle.Render("press any key to skip"),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// headerView is the sticky navigation bar. Its height never changes, only its
// colors once the page is scrolled.
func (m Model) headerView() string {
	scrolled := m.ready && m.viewport.YOffset >= m.cfg.ScrolledAfterLines

	style := lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("238"))
	brand := accentStyle.Bold(true).Render("🌐 " + m.cat.Brand.Name)
	if scrolled {
		style = style.BorderForeground(lipgloss.Color("69"))
		brand = lipgloss.NewStyle().Bold(true).Reverse(true).Render(" " + m.cat.Brand.Name + " ")
	}
	nav := dimStyle.Render(strings.Join(m.cat.Nav, " · "))

	w := max(m.width-2, 1)
	pad := max(w-lipgloss.Width(brand)-lipgloss.Width(nav), 1)
	return style.Render(brand + strings.Repeat(" ", pad) + nav)
}

func (m Model) footerView() string {
	if m.searching {
		return m.help.View(searchKeys{m.keys})
	}
	return m.help.View(m.keys)
}

func (m Model) heroView() string {
	var b strings.Builder
	word := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Render(m.hero.Current())
	headline := lipgloss.NewStyle().Bold(true).Render(m.cat.Hero.Headline)
	b.WriteString(headline + " " + word + " " + lipgloss.NewStyle().Bold(true).Render(m.cat.Hero.Closing))
	b.WriteString("\n")
	if m.cat.Hero.Blurb != "" {
		b.WriteString(dimStyle.Width(m.contentWidth() - 4).Render(m.cat.Hero.Blurb))
		b.WriteString("\n")
	}

	boxColor := lipgloss.Color("238")
	if m.searching {
		boxColor = lipgloss.Color("69")
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(boxColor).Padding(0, 1)
	b.WriteString(box.Render(m.search.View()))
	if len(m.cat.Hero.Guests) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Travelers: " + strings.Join(m.cat.Hero.Guests, " · ")))
	}
	if m.searching && len(m.matches.Items()) > 0 {
		b.WriteString("\n")
		b.WriteString(m.matches.View())
	}
	return sectionStyle.Render(b.String())
}

func (m Model) featuresView() string {
	if len(m.cat.Features) == 0 {
		return ""
	}
	shown := m.stagger.Shown()
	cw := max((m.contentWidth()-4)/featureColumns, 12)

	cards := make([]string, 0, len(m.cat.Features))
	for i, f := range m.cat.Features {
		style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(cw - 2)
		body := f.Icon + " " + lipgloss.NewStyle().Bold(true).Render(f.Title) + "\n" + f.Description
		if i < shown {
			style = style.BorderForeground(lipgloss.Color(f.Color))
		} else {
			style = style.BorderForeground(lipgloss.Color("235")).Foreground(lipgloss.Color("235"))
		}
		cards = append(cards, style.Render(body))
	}

	rows := []string{titleStyle.Render("Why Choose " + m.cat.Brand.Name)}
	for i := 0; i < len(cards); i += featureColumns {
		end := min(i+featureColumns, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) destinationsView() string {
	title := "Popular Destinations"
	if m.focus == focusDestinations {
		title = accentStyle.Render("◆ ") + title
	}
	if !m.destinations.Enabled() {
		return sectionStyle.Render(titleStyle.Render(title) + "\n" + dimStyle.Render("No destinations."))
	}

	d := m.destinations.Current()
	var card strings.Builder
	card.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Render(d.Name))
	card.WriteString("\n")
	card.WriteString(fmt.Sprintf("%s %.1f   from %s", brochure.Stars(d.Rating), d.Rating, lipgloss.NewStyle().Bold(true).Render(d.Price)))
	card.WriteString("\n")
	card.WriteString(d.Description)
	card.WriteString("\n")
	card.WriteString(accentStyle.Render(strings.Join(d.Features, " • ")))
	card.WriteString("\n")
	card.WriteString(dimStyle.Render(d.ImageURL))

	border := lipgloss.Color("238")
	if m.hovering {
		border = lipgloss.Color("69")
	}
	cardView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(m.contentWidth() - 6).
		Render(card.String())

	thumbs := make([]string, 0, m.destinations.Len())
	for i, it := range m.destinations.Items() {
		name, _, _ := strings.Cut(it.Name, ",")
		style := lipgloss.NewStyle().Padding(0, 1)
		if i == m.destinations.Index() {
			style = style.Reverse(true)
		}
		thumbs = append(thumbs, style.Render(name))
	}

	status := "▶ auto"
	if m.destinations.Paused() {
		status = "⏸ paused"
	}
	controls := dots(m.destinations.Index(), m.destinations.Len()) + "  " + dimStyle.Render(status)

	return sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		cardView,
		lipgloss.JoinHorizontal(lipgloss.Top, thumbs...),
		controls,
	))
}

func (m Model) statsView() string {
	rows := []string{titleStyle.Render("Trusted by Travelers Worldwide")}
	for i, s := range m.cat.Stats {
		value := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.Color)).Width(10).
			Render(brochure.StatDisplay(s, m.panel.Value(i)))
		label := lipgloss.NewStyle().Width(18).Render(s.Label)
		rows = append(rows, label+value+m.bar.ViewAs(m.panel.Progress(i)))
	}
	if len(m.cat.Satisfaction) > 0 {
		rows = append(rows, "", dimStyle.Render("Customer satisfaction by month"))
		rows = append(rows, lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(brochure.Chart(m.cat.Satisfaction, chartHeight)))
	}
	return sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) testimonialsView() string {
	title := "What Our Travelers Say"
	if m.focus == focusTestimonials {
		title = accentStyle.Render("◆ ") + title
	}
	if !m.testimonials.Enabled() {
		return sectionStyle.Render(titleStyle.Render(title) + "\n" + dimStyle.Render("No testimonials."))
	}

	t := m.testimonials.Current()
	frame := m.contentWidth() - 4
	cw := min(cardMaxWidth, frame*2/3)
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render(brochure.Stars(float64(t.Rating))),
		"“"+t.Text+"”",
		"",
		lipgloss.NewStyle().Bold(true).Render(t.Name)+dimStyle.Render("  "+t.Location),
		dimStyle.Render(t.Trip+" · "+t.Date),
	)
	card := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(cw).Render(body)

	pos := m.slidePos
	if m.drag.Active() {
		pos = m.dragFraction()
	}
	placed := lipgloss.PlaceHorizontal(frame, lipgloss.Position(0.5+pos*0.5), card)

	counter := dimStyle.Render(fmt.Sprintf("%d / %d", m.testimonials.Index()+1, m.testimonials.Len()))
	rows := []string{
		titleStyle.Render(title),
		placed,
		dots(m.testimonials.Index(), m.testimonials.Len()) + "  " + counter,
	}
	if previews := m.previewsView(frame); previews != "" {
		rows = append(rows, previews)
	}
	return sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// previewsView is the strip of traveler name cards under the slide. Clicking
// a card jumps to its testimonial; see previewAt.
func (m Model) previewsView(frame int) string {
	items := m.testimonials.Items()
	pw, ok := previewWidth(frame, len(items))
	if !ok {
		return ""
	}
	cur := m.testimonials.Index()
	cells := make([]string, 0, 2*len(items))
	for i, t := range items {
		name, place := dimStyle, dimStyle
		if i == cur {
			name = accentStyle.Bold(true)
			place = accentStyle
		}
		if i > 0 {
			cells = append(cells, strings.Repeat(" ", previewGap))
		}
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Left,
			name.Width(pw).MaxHeight(1).Render(t.Name),
			place.Width(pw).MaxHeight(1).Render(t.Location),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// previewWidth is the width of one preview card when n of them share frame
// columns. It reports false when the cards would be too narrow to show.
func previewWidth(frame, n int) (int, bool) {
	if n == 0 {
		return 0, false
	}
	pw := min(previewMaxWidth, (frame-(n-1)*previewGap)/n)
	return pw, pw >= previewMinWidth
}

func (m Model) pageFooterView() string {
	return sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		accentStyle.Bold(true).Render("🌐 "+m.cat.Brand.Name),
		dimStyle.Render("© "+m.cat.Brand.Name+". All rights reserved."),
	))
}

func dots(current, n int) string {
	on := accentStyle.Render("●")
	off := dimStyle.Render("○")
	parts := make([]string, n)
	for i := range parts {
		parts[i] = off
		if i == current {
			parts[i] = on
		}
	}
	return strings.Join(parts, " ")
}

var _ help.KeyMap = keyMap{}
