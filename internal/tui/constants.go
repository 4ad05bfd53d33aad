package tui

import "time"

const (
	channelBufferSize = 256

	// Layout.
	pageMaxWidth   = 100
	featureColumns = 3
	chartHeight    = 5
	cardMaxWidth   = 64
	barMaxWidth    = 40
	sectionIndent  = 2

	// Testimonial preview strip under the slide.
	previewGap      = 2
	previewHeight   = 2
	previewMinWidth = 8
	previewMaxWidth = 22

	// Testimonial slide spring: stiffness 300, damping 30, unit mass.
	springAngularFrequency = 17.3205
	springDampingRatio     = 0.866
	springFPS              = 60
	springRestEpsilon      = 0.01
)

const slideFrameInterval = time.Second / springFPS

// sectionID names a vertical block of the page.
type sectionID int

const (
	sectionHero sectionID = iota
	sectionFeatures
	sectionDestinations
	sectionStats
	sectionTestimonials
	sectionFooter
)

// focusTarget is the control that receives navigation keys.
type focusTarget int

const (
	focusDestinations focusTarget = iota
	focusTestimonials
	focusTargetsCount
)
