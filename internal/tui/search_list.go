package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/wanderwise/internal/catalog"
)

const searchListHeight = 5

// matchItem is one destination suggestion under the search box.
type matchItem struct {
	catalog.Match
	Price string
}

func (it matchItem) Title() string       { return it.Name }
func (it matchItem) Description() string { return it.Price }
func (it matchItem) FilterValue() string { return it.Name }

// matchDelegate renders a suggestion with the matched runes highlighted and
// the price right-justified.
type matchDelegate struct{}

func (d matchDelegate) Height() int                             { return 1 }
func (d matchDelegate) Spacing() int                            { return 0 }
func (d matchDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d matchDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(matchItem)
	if !ok {
		return
	}
	selected := index == m.Index()
	prefix := "  "
	lineStyle := lipgloss.NewStyle()
	if selected {
		prefix = "> "
		lineStyle = lineStyle.Foreground(lipgloss.Color("69")).Bold(true)
	}

	left := prefix + highlight(it.Name, it.Matched)
	right := it.Price
	padding := m.Width() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	_, _ = fmt.Fprint(w, lineStyle.Render(left+strings.Repeat(" ", padding)+right))
}

func highlight(s string, matched []int) string {
	if len(matched) == 0 {
		return s
	}
	hit := make(map[int]struct{}, len(matched))
	for _, i := range matched {
		hit[i] = struct{}{}
	}
	on := lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("214"))
	var b strings.Builder
	for i, r := range s {
		if _, ok := hit[i]; ok {
			b.WriteString(on.Render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newMatchList() list.Model {
	lst := list.New([]list.Item{}, matchDelegate{}, 0, searchListHeight)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowPagination(false)
	return lst
}

// setMatches replaces the suggestions for query and selects the best one.
func setMatches(lst *list.Model, dests catalog.Destinations, query string) {
	hits := dests.Search(query)
	items := make([]list.Item, 0, len(hits))
	for _, h := range hits {
		items = append(items, matchItem{Match: h, Price: dests[h.Index].Price})
	}
	lst.SetItems(items)
	lst.Select(0)
}

// selectedMatch returns the destination index under the cursor.
func selectedMatch(lst list.Model) (int, bool) {
	it, ok := lst.SelectedItem().(matchItem)
	if !ok {
		return 0, false
	}
	return it.Index, true
}
