package validate_test

import (
	"testing"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/attribut_ive_go/attrs/validate"
)

func TestRange(t *testing.T) {
	pred := validate.Range(0, 100)

	assert.NoError(t, pred(0))
	assert.NoError(t, pred(100))
	assert.NoError(t, pred(95))
	assert.Error(t, pred(-1))
	assert.Error(t, pred(150))
}

func TestMinMax(t *testing.T) {
	assert.NoError(t, validate.Min(1.5)(1.5))
	assert.Error(t, validate.Min(1.5)(1.0))
	assert.NoError(t, validate.Max("m")("a"))
	assert.Error(t, validate.Max("m")("z"))
}

func TestOneOf(t *testing.T) {
	pred := validate.OneOf("red", "green", "blue")

	assert.NoError(t, pred("green"))
	assert.Error(t, pred("yellow"))
}

func TestNonEmpty(t *testing.T) {
	assert.NoError(t, validate.NonEmpty()("x"))
	assert.Error(t, validate.NonEmpty()(""))
}

func TestAll(t *testing.T) {
	pred := validate.All(
		validate.Min(0),
		validate.Max(10),
	)

	assert.NoError(t, pred(5))
	assert.Error(t, pred(-1))
	assert.Error(t, pred(11))
}

func TestWithin(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	pred := validate.Within(timespan.BetweenTimes(start, end))

	assert.NoError(t, pred(start.Add(time.Hour)))
	assert.Error(t, pred(end.Add(time.Hour)))
	assert.Error(t, pred(start.Add(-time.Hour)))
}
