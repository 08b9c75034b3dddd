package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldsStrings(t *testing.T) {
	f := Fields{"name": "  Lithium ", "blank": "   ", "nothing": nil}

	name, ok := f.NonEmptyString("name")
	assert.True(t, ok)
	assert.Equal(t, "Lithium", name)

	_, ok = f.NonEmptyString("blank")
	assert.False(t, ok)
	_, ok = f.NonEmptyString("missing")
	assert.False(t, ok)

	assert.Equal(t, "Lithium", *f.OptionalString("name"))
	assert.Nil(t, f.OptionalString("blank"))
	assert.Nil(t, f.OptionalString("nothing"))
	assert.Nil(t, f.OptionalString("missing"))

	assert.True(t, f.Present("blank"))
	assert.False(t, f.Present("nothing"))
}

func TestFieldsNumbers(t *testing.T) {
	f := Fields{"zero": 0.0, "negative": -5.0, "positive": 1900.0, "word": "lots"}

	v, ok := f.Number("negative")
	assert.True(t, ok)
	assert.Equal(t, -5.0, v)
	_, ok = f.Number("word")
	assert.False(t, ok)
	_, ok = f.Number("missing")
	assert.False(t, ok)

	_, ok = f.NonNegative("zero")
	assert.True(t, ok)
	_, ok = f.NonNegative("negative")
	assert.False(t, ok)

	_, ok = f.Positive("zero")
	assert.False(t, ok)
	v, ok = f.Positive("positive")
	assert.True(t, ok)
	assert.Equal(t, 1900.0, v)
}
