package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/wanderwise/internal/reveal"
)

// navigator is the part of a rotator the navigation keys drive.
type navigator interface {
	Next()
	Prev()
	GoTo(i int) error
	Index() int
	Direction() int
}

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) { // nolint:ireturn,cyclop
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.focus = (m.focus + 1) % focusTargetsCount
		m.refresh()
		m.scrollTo(m.focusedSection())
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		m.refresh()
		m.scrollTo(sectionHero)
		return m, cmd

	case key.Matches(msg, m.keys.Pause):
		m.userPaused = !m.userPaused
		m.syncPause()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m.navigate(func(n navigator) { n.Next() })

	case key.Matches(msg, m.keys.Prev):
		return m.navigate(func(n navigator) { n.Prev() })

	case key.Matches(msg, m.keys.Jump):
		i := int(msg.Runes[0] - '1')
		return m.navigate(func(n navigator) {
			if err := n.GoTo(i); err != nil {
				m.log.WithField("index", i).Debugf("jump ignored: %v", err)
			}
		})

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.observe()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.observe()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.observe()
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) { // nolint:ireturn
	switch {
	case msg.String() == "ctrl+c":
		return m.quit()

	case key.Matches(msg, m.keys.Cancel):
		m.closeSearch()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Pick):
		idx, ok := selectedMatch(m.matches)
		if !ok {
			idx, ok = m.cat.Destinations.Best(m.search.Value())
		}
		if !ok {
			return m, nil
		}
		if err := m.destinations.GoTo(idx); err != nil {
			m.log.WithField("index", idx).Debugf("search jump ignored: %v", err)
		}
		m.focus = focusDestinations
		m.closeSearch()
		m.refresh()
		m.scrollTo(sectionDestinations)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.matches.CursorUp()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.matches.CursorDown()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	setMatches(&m.matches, m.cat.Destinations, m.search.Value())
	m.refresh()
	return m, cmd
}

func (m *Model) closeSearch() {
	m.searching = false
	m.search.Blur()
	m.search.Reset()
	m.matches.SetItems(nil)
}

// handleMouse drives hover-pause over the carousel, wheel scrolling and drag
// swipes on the testimonials.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) { // nolint:ireturn
	ev := tea.MouseEvent(msg)
	line, inView := m.contentLine(ev.Y)

	if over := inView && m.within(sectionDestinations, line); over != m.hovering {
		m.hovering = over
		m.syncPause()
		m.refresh()
	}

	if ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft && inView {
		if i, ok := m.previewAt(ev.X, line); ok {
			return m.jumpTestimonial(i)
		}
	}

	now := m.clock.Now()
	switch {
	case ev.IsWheel():
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.observe()
		return m, cmd

	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft &&
		inView && m.within(sectionTestimonials, line):
		m.focus = focusTestimonials
		m.drag.Press(ev.X, now)
		m.refresh()
		return m, nil

	case ev.Action == tea.MouseActionMotion && m.drag.Active():
		m.drag.Move(ev.X, now)
		m.refresh()
		return m, nil

	case ev.Action == tea.MouseActionRelease && m.drag.Active():
		from := m.dragFraction()
		offset, velocity := m.drag.Release(ev.X, now)
		var cmd tea.Cmd
		if m.testimonials.Swipe(offset, velocity, m.cfg.SwipeThreshold) {
			cmd = m.startSlide(m.testimonials.Direction())
		} else {
			cmd = m.settleSlide(from)
		}
		m.refresh()
		return m, cmd
	}

	return m, nil
}

// jumpTestimonial focuses the slider and slides to testimonial i.
func (m Model) jumpTestimonial(i int) (Model, tea.Cmd) { // nolint:ireturn
	m.focus = focusTestimonials
	before := m.testimonials.Index()
	if err := m.testimonials.GoTo(i); err != nil {
		m.log.WithError(err).Debug("testimonial jump rejected")
	}
	var cmd tea.Cmd
	if m.testimonials.Index() != before {
		cmd = m.startSlide(m.testimonials.Direction())
	}
	m.refresh()
	return m, cmd
}

// navigate applies move to the focused rotator.
func (m Model) navigate(move func(navigator)) (Model, tea.Cmd) { // nolint:ireturn
	nav := m.focusedNavigator()
	before := nav.Index()
	move(nav)
	var cmd tea.Cmd
	if m.focus == focusTestimonials && nav.Index() != before {
		cmd = m.startSlide(nav.Direction())
	}
	m.refresh()
	return m, cmd
}

func (m *Model) focusedNavigator() navigator {
	if m.focus == focusTestimonials {
		return m.testimonials
	}
	return m.destinations
}

func (m *Model) focusedSection() sectionID {
	if m.focus == focusTestimonials {
		return sectionTestimonials
	}
	return sectionDestinations
}

// syncPause pauses the carousel while it is hovered or paused by the user.
func (m *Model) syncPause() {
	if m.hovering || m.userPaused {
		m.destinations.Pause()
		return
	}
	m.destinations.Resume()
}

func (m *Model) scrollTo(id sectionID) {
	for _, s := range m.sections {
		if s.ID == id {
			m.viewport.SetYOffset(s.Top)
			break
		}
	}
	m.observe()
}

// contentLine maps a screen row to a line of the scrolled content.
func (m *Model) contentLine(y int) (int, bool) {
	top := lipgloss.Height(m.headerView())
	if y < top || y >= top+m.viewport.Height {
		return 0, false
	}
	return y - top + m.viewport.YOffset, true
}

func (m *Model) within(id sectionID, line int) bool {
	for _, s := range m.sections {
		if s.ID == id {
			return line >= s.Top && line < s.Top+s.Height
		}
	}
	return false
}

// previewAt maps a content position onto the testimonial preview card under
// it. The strip is the last block of the testimonials section.
func (m *Model) previewAt(x, line int) (int, bool) {
	n := m.testimonials.Len()
	pw, ok := previewWidth(m.contentWidth()-4, n)
	if !ok {
		return 0, false
	}
	for _, s := range m.sections {
		if s.ID != sectionTestimonials {
			continue
		}
		// one trailing margin line closes the section
		top := s.Top + s.Height - 1 - previewHeight
		if line < top || line >= top+previewHeight {
			return 0, false
		}
		col := x - sectionIndent
		if col < 0 || col%(pw+previewGap) >= pw {
			return 0, false
		}
		if i := col / (pw + previewGap); i < n {
			return i, true
		}
	}
	return 0, false
}

func (m *Model) visibleRatio(s sectionSpan) float64 {
	return reveal.Ratio(s.Top, s.Height, m.viewport.YOffset, m.viewport.Height)
}

// dragFraction is the live drag offset as a fraction of half the slide
// frame, clamped to [-1, 1].
func (m *Model) dragFraction() float64 {
	half := float64(m.contentWidth()) / 2
	cells := m.drag.Offset() / m.cfg.PixelsPerCell
	return max(-1, min(1, cells/half))
}

func (m *Model) contentWidth() int {
	w := m.width
	if w <= 0 || w > pageMaxWidth {
		w = pageMaxWidth
	}
	return max(w, 20)
}
