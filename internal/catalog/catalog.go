// Package catalog holds the static page content shipped with the binary.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/wanderwise/internal/validate"
)

//go:embed catalog.yaml
var defaultDocument []byte

// ErrInvalidCatalog wraps every parse or validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Brand is the site identity shown in the header and splash.
type Brand struct {
	Name    string `yaml:"name" json:"name" validate:"required"`
	Tagline string `yaml:"tagline" json:"tagline"`
}

// Hero is the banner copy.
type Hero struct {
	Words    []string `yaml:"words" json:"words" validate:"required,min=1,dive,required"`
	Headline string   `yaml:"headline" json:"headline" validate:"required"`
	Closing  string   `yaml:"closing" json:"closing"`
	Blurb    string   `yaml:"blurb" json:"blurb"`
	Guests   []string `yaml:"guests" json:"guests"`
}

// Feature is one card of the feature grid.
type Feature struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
	Icon        string `yaml:"icon" json:"icon"`
	Color       string `yaml:"color" json:"color" validate:"omitempty,hexcolor"`
}

// Destination is one carousel slide.
type Destination struct {
	ID          int      `yaml:"id" json:"id" validate:"required,gt=0"`
	Name        string   `yaml:"name" json:"name" validate:"required"`
	ImageURL    string   `yaml:"image_url" json:"image_url" validate:"required,url"`
	Rating      float64  `yaml:"rating" json:"rating" validate:"gte=0,lte=5"`
	Price       string   `yaml:"price" json:"price" validate:"required,price"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Features    []string `yaml:"features" json:"features" validate:"dive,required"`
}

// Testimonial is one slide of the testimonial slider.
type Testimonial struct {
	ID        int    `yaml:"id" json:"id" validate:"required,gt=0"`
	Name      string `yaml:"name" json:"name" validate:"required"`
	Location  string `yaml:"location" json:"location"`
	AvatarURL string `yaml:"avatar_url" json:"avatar_url" validate:"omitempty,url"`
	Rating    int    `yaml:"rating" json:"rating" validate:"gte=1,lte=5"`
	Text      string `yaml:"text" json:"text" validate:"required"`
	Trip      string `yaml:"trip" json:"trip"`
	Date      string `yaml:"date" json:"date" validate:"omitempty,year"`
}

// Stat is one animated counter of the statistics panel.
type Stat struct {
	Label   string  `yaml:"label" json:"label" validate:"required"`
	Value   float64 `yaml:"value" json:"value" validate:"gte=0"`
	Suffix  string  `yaml:"suffix" json:"suffix"`
	Decimal bool    `yaml:"decimal" json:"decimal"`
	Color   string  `yaml:"color" json:"color" validate:"omitempty,hexcolor"`
}

// Catalog is the whole page content.
type Catalog struct {
	Brand        Brand         `yaml:"brand" json:"brand"`
	Nav          []string      `yaml:"nav" json:"nav"`
	Hero         Hero          `yaml:"hero" json:"hero"`
	Features     []Feature     `yaml:"features" json:"features" validate:"dive"`
	Destinations Destinations  `yaml:"destinations" json:"destinations" validate:"dive"`
	Stats        []Stat        `yaml:"stats" json:"stats" validate:"dive"`
	Satisfaction []int         `yaml:"satisfaction" json:"satisfaction" validate:"omitempty,len=12,dive,gte=0,lte=100"`
	Testimonials []Testimonial `yaml:"testimonials" json:"testimonials" validate:"dive"`
}

// Load returns the catalog embedded in the binary.
func Load() (*Catalog, error) {
	return Parse(defaultDocument)
}

// MustLoad is Load for callers that treat a broken embedded document as a
// build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a catalog document. Unknown keys are rejected.
func Parse(doc []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(doc))
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return &c, nil
}
