package brochure

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/wanderwise/internal/catalog"
)

func TestPrint_AllSections(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, catalog.MustLoad())
	out := buf.String()

	for _, want := range []string{
		"WanderWise",
		"WHY CHOOSE WANDERWISE",
		"POPULAR DESTINATIONS",
		"1. Santorini, Greece",
		"5. Patagonia, Chile",
		"BY THE NUMBERS",
		"50,000+",
		"4.9/5",
		"WHAT TRAVELERS SAY",
		"Sarah Johnson",
		"All rights reserved.",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPrintSection_JSON(t *testing.T) {
	c := catalog.MustLoad()

	var buf bytes.Buffer
	require.NoError(t, PrintSection(&buf, c, SectionStats, true))
	var report StatsReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.Len(t, report.Stats, 4)
	assert.Equal(t, "50,000+", report.Stats[0].Display)
	assert.Equal(t, "4.9/5", report.Stats[2].Display)
	assert.Len(t, report.Satisfaction, 12)

	buf.Reset()
	require.NoError(t, PrintSection(&buf, c, SectionDestinations, true))
	var dests []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &dests))
	require.Len(t, dests, 5)
	assert.Equal(t, "Kyoto, Japan", dests[1]["name"])
}

func TestPrintSection_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSection(&buf, catalog.MustLoad(), SectionTestimonials, false))
	assert.Contains(t, buf.String(), "Anna Kowalski")
	assert.NotContains(t, buf.String(), "POPULAR DESTINATIONS")
}

func TestPrintSection_Unknown(t *testing.T) {
	err := PrintSection(&bytes.Buffer{}, catalog.MustLoad(), "hotels", false)
	assert.True(t, errors.Is(err, ErrUnknownSection))
	err = PrintSection(&bytes.Buffer{}, catalog.MustLoad(), "hotels", true)
	assert.True(t, errors.Is(err, ErrUnknownSection))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★★", Stars(4.9))
	assert.Equal(t, "★★★★☆", Stars(4.4))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
	assert.Equal(t, "★★★★★", Stars(9))
}

func TestChart(t *testing.T) {
	assert.Equal(t, "██   \n██   \nJ  F ", Chart([]int{100, 0}, 2))
	assert.Equal(t, "  \n  \nJ ", Chart([]int{40}, 2))
	assert.Equal(t, "██\nJ ", Chart([]int{100}, 0))
}
