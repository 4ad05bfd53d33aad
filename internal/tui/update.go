package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn,cyclop
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(x.Width, x.Height)
		return m, nil

	case tea.KeyMsg:
		if m.splashing {
			if x.String() == "ctrl+c" {
				return m.quit()
			}
			m.endSplash()
			return m, nil
		}
		return m.handleKey(x)

	case tea.MouseMsg:
		if m.splashing {
			return m, nil
		}
		return m.handleMouse(x)

	case spinner.TickMsg:
		if !m.splashing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(x)
		return m, cmd

	case splashDoneMsg:
		if m.splashing {
			m.endSplash()
		}
		return m, m.listenForEvents()

	case rotatorMsg, statMsg, featureMsg:
		m.refresh()
		return m, m.listenForEvents()

	case slideFrameMsg:
		return m, m.stepSlide()
	}

	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	return m, tea.Quit
}

func (m *Model) endSplash() {
	if m.splashTimer != nil {
		m.splashTimer.Stop()
		m.splashTimer = nil
	}
	m.startPage()
	m.refresh()
}

// resize lays the viewport out under the header and above the help line.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	vh := h - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
	if vh < 1 {
		vh = 1
	}
	if !m.ready {
		m.viewport = viewport.New(w, vh)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = vh
	}
	m.help.Width = w
	m.bar.Width = min(barMaxWidth, max(10, m.contentWidth()/2))
	m.matches.SetSize(min(cardMaxWidth, m.contentWidth()), searchListHeight)
	m.search.Width = min(cardMaxWidth, m.contentWidth()) - lipgloss.Width(m.search.Prompt) - 1
	m.refresh()
}

// refresh re-renders the scrolled content, records where each section sits
// and feeds the visibility gates.
func (m *Model) refresh() {
	if !m.ready || m.splashing {
		return
	}
	parts := []struct {
		id   sectionID
		body string
	}{
		{sectionHero, m.heroView()},
		{sectionFeatures, m.featuresView()},
		{sectionDestinations, m.destinationsView()},
		{sectionStats, m.statsView()},
		{sectionTestimonials, m.testimonialsView()},
		{sectionFooter, m.pageFooterView()},
	}
	sections := make([]sectionSpan, 0, len(parts))
	bodies := make([]string, 0, len(parts))
	top := 0
	for _, p := range parts {
		h := lipgloss.Height(p.body)
		sections = append(sections, sectionSpan{ID: p.id, Top: top, Height: h})
		bodies = append(bodies, p.body)
		top += h
	}
	m.sections = sections
	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, bodies...))
	m.observe()
}

// observe reports the visible fraction of the gated sections.
func (m *Model) observe() {
	for _, s := range m.sections {
		ratio := m.visibleRatio(s)
		switch s.ID {
		case sectionFeatures:
			m.featureGate.Observe(ratio)
		case sectionStats:
			m.statsGate.Observe(ratio)
		case sectionHero, sectionDestinations, sectionTestimonials, sectionFooter:
		}
	}
}

// startSlide kicks the testimonial spring from the side the new slide
// enters on.
func (m *Model) startSlide(direction int) tea.Cmd {
	return m.settleSlide(float64(direction))
}

// settleSlide springs the slide from position from back to rest.
func (m *Model) settleSlide(from float64) tea.Cmd {
	m.slidePos = from
	m.slideVel = 0
	if m.animating || from == 0 {
		return nil
	}
	m.animating = true
	return tickSlide()
}

func (m *Model) stepSlide() tea.Cmd {
	if m.drag.Active() {
		m.animating = false
		return nil
	}
	m.slidePos, m.slideVel = m.spring.Update(m.slidePos, m.slideVel, 0)
	if math.Abs(m.slidePos) < springRestEpsilon && math.Abs(m.slideVel) < springRestEpsilon {
		m.slidePos, m.slideVel = 0, 0
		m.animating = false
		m.refresh()
		return nil
	}
	m.refresh()
	return tickSlide()
}

func tickSlide() tea.Cmd {
	return tea.Tick(slideFrameInterval, func(_ time.Time) tea.Msg { return slideFrameMsg{} })
}
