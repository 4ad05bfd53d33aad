package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVar_Price(t *testing.T) {
	for _, ok := range []string{"$899", "$1,299", "$12,345,678"} {
		assert.NoError(t, Var(ok, "price"), ok)
	}
	for _, bad := range []string{"", "899", "$1299", "$1,29", "€899", "$ 899"} {
		assert.Error(t, Var(bad, "price"), bad)
	}
}

func TestVar_Year(t *testing.T) {
	assert.NoError(t, Var("2024", "year"))
	assert.Error(t, Var("24", "year"))
	assert.Error(t, Var("20x4", "year"))
}

func TestStruct(t *testing.T) {
	type sample struct {
		Name  string  `validate:"required"`
		Ratio float64 `validate:"gte=0,lte=1"`
	}
	assert.NoError(t, Struct(sample{Name: "x", Ratio: 0.5}))
	assert.Error(t, Struct(sample{Ratio: 0.5}))
	assert.Error(t, Struct(sample{Name: "x", Ratio: 1.5}))
}
