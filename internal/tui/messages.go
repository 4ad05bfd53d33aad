package tui

import (
	"github.com/ensigniasec/wanderwise/internal/carousel"
	"github.com/ensigniasec/wanderwise/internal/counter"
)

// splashDoneMsg ends the loading screen.
type splashDoneMsg struct{}

// rotatorMsg reports a move of one of the page rotators.
type rotatorMsg struct {
	Section sectionID
	Change  carousel.Change
}

// statMsg reports one counter frame.
type statMsg struct {
	Index  int
	Update counter.Update
}

// featureMsg reports how many feature cards are revealed.
type featureMsg struct {
	Shown int
}

// slideFrameMsg advances the testimonial spring by one frame.
type slideFrameMsg struct{}
