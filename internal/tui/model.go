package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/wanderwise/internal/carousel"
	"github.com/ensigniasec/wanderwise/internal/catalog"
	"github.com/ensigniasec/wanderwise/internal/clock"
	"github.com/ensigniasec/wanderwise/internal/config"
	"github.com/ensigniasec/wanderwise/internal/counter"
	"github.com/ensigniasec/wanderwise/internal/reveal"
)

// Options configures the page.
type Options struct {
	Config   config.Config
	Catalog  *catalog.Catalog
	Clock    clock.Clock
	Logger   logrus.FieldLogger
	NoSplash bool
}

// sectionSpan is where a section sits in the scrolled content.
type sectionSpan struct {
	ID     sectionID
	Top    int
	Height int
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg   config.Config
	cat   *catalog.Catalog
	clock clock.Clock
	log   logrus.FieldLogger

	// timer callbacks are bridged into the program through events
	events    chan tea.Msg
	done      chan struct{}
	closeOnce *sync.Once

	hero         *carousel.Rotator[string]
	destinations *carousel.Rotator[catalog.Destination]
	testimonials *carousel.Rotator[catalog.Testimonial]
	panel        *counter.Panel
	featureGate  *reveal.Gate
	statsGate    *reveal.Gate
	stagger      *reveal.Stagger
	splashTimer  clock.Timer

	splashing bool
	spinner   spinner.Model

	searching bool
	search    textinput.Model
	matches   list.Model

	viewport viewport.Model
	sections []sectionSpan
	bar      progress.Model
	help     help.Model
	keys     keyMap

	focus      focusTarget
	hovering   bool
	userPaused bool

	drag      *carousel.DragTracker
	spring    harmonica.Spring
	slidePos  float64
	slideVel  float64
	animating bool

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel builds the page and its controllers. The splash timer is armed
// immediately unless opts.NoSplash is set, in which case auto-advance starts
// right away.
func NewModel(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.MustLoad()
	}
	cfg := opts.Config
	cat := opts.Catalog

	m := Model{
		cfg:       cfg,
		cat:       cat,
		clock:     opts.Clock,
		log:       opts.Logger,
		events:    make(chan tea.Msg, channelBufferSize),
		done:      make(chan struct{}),
		closeOnce: &sync.Once{},
		keys:      newKeyMap(),
		help:      help.New(),
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		matches:   newMatchList(),
		drag:      carousel.NewDragTracker(cfg.PixelsPerCell),
		spring:    harmonica.NewSpring(harmonica.FPS(springFPS), springAngularFrequency, springDampingRatio),
	}

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Globe))

	m.search = textinput.New()
	m.search.Placeholder = "Where do you want to go?"
	m.search.Prompt = "🔍 "
	m.search.CharLimit = 64

	m.hero = carousel.New(cat.Hero.Words,
		carousel.WithClock(m.clock),
		carousel.WithInterval(cfg.HeroInterval()),
		carousel.WithLogger(m.log.WithField("component", "hero")),
		carousel.WithOnChange(func(ch carousel.Change) { m.send(rotatorMsg{Section: sectionHero, Change: ch}) }),
	)
	m.destinations = carousel.New([]catalog.Destination(cat.Destinations),
		carousel.WithClock(m.clock),
		carousel.WithInterval(cfg.CarouselInterval()),
		carousel.WithLogger(m.log.WithField("component", "destinations")),
		carousel.WithOnChange(func(ch carousel.Change) { m.send(rotatorMsg{Section: sectionDestinations, Change: ch}) }),
	)
	m.testimonials = carousel.New(cat.Testimonials,
		carousel.WithClock(m.clock),
		carousel.WithInterval(cfg.SliderInterval()),
		carousel.WithLogger(m.log.WithField("component", "testimonials")),
		carousel.WithOnChange(func(ch carousel.Change) { m.send(rotatorMsg{Section: sectionTestimonials, Change: ch}) }),
	)

	specs := make([]counter.Spec, 0, len(cat.Stats))
	for _, s := range cat.Stats {
		specs = append(specs, counter.Spec{
			Target:   s.Value,
			Duration: cfg.CounterDuration(),
			Steps:    cfg.CounterSteps,
			Decimal:  s.Decimal,
		})
	}
	m.panel = counter.NewPanel(m.clock, specs, func(i int, u counter.Update) { m.send(statMsg{Index: i, Update: u}) })
	m.statsGate = reveal.New(cfg.StatsThreshold)
	m.statsGate.OnReveal(func() {
		if m.panel.Start() {
			m.log.WithField("component", "stats").Debug("counters started")
		}
	})

	m.featureGate = reveal.New(cfg.FeaturesThreshold)
	m.stagger = reveal.NewStagger(m.clock, len(cat.Features), cfg.Stagger(), func(shown int) { m.send(featureMsg{Shown: shown}) })
	m.stagger.Attach(m.featureGate)

	if opts.NoSplash || cfg.Splash() <= 0 {
		m.startPage()
	} else {
		m.splashing = true
		m.splashTimer = m.clock.AfterFunc(cfg.Splash(), func() { m.send(splashDoneMsg{}) })
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listenForEvents()}
	if m.splashing {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// listenForEvents returns a Tea command that waits for the next controller
// event. It yields nil once the model is closed.
func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case <-m.done:
			return nil
		}
	}
}

// send delivers a controller event without blocking the timer goroutine.
// Events only trigger a redraw, so a dropped one is repaired by the next.
func (m Model) send(msg tea.Msg) {
	select {
	case <-m.done:
	case m.events <- msg:
	default:
		m.log.Debugf("event queue full, dropping %T", msg)
	}
}

// startPage leaves the splash and starts auto-advance.
func (m *Model) startPage() {
	m.splashing = false
	m.hero.Start()
	m.destinations.Start()
	m.testimonials.Start()
}

// Close stops every timer owned by the page. It is safe to call more than
// once and from a copy of the model.
func (m Model) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		if m.splashTimer != nil {
			m.splashTimer.Stop()
		}
		m.hero.Close()
		m.destinations.Close()
		m.testimonials.Close()
		m.panel.Stop()
		m.stagger.Stop()
	})
}
