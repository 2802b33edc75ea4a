package frameutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/motus-health/backend/internal/model"
)

var enabledAt = time.Date(2023, time.June, 14, 8, 0, 0, 0, time.UTC)

func TestCleanTokens(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    []string
	}{
		{"plain", "1;100;200", []string{"1", "100", "200"}},
		{"garbage token dropped", "ab;1;100;200", []string{"1", "100", "200"}},
		{"mixed alnum dropped", "1a;100;200", []string{"100", "200"}},
		{"empty tokens dropped", ";;1;;200;", []string{"1", "200"}},
		{"all garbage", "x;y;z", []string{}},
		{"empty payload", "", []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CleanTokens(c.payload))
		})
	}
}

func TestDecodeSingleFrame(t *testing.T) {
	frames := Decode("1;100;200", enabledAt, 42)

	assert.Len(t, frames, 1)
	assert.Equal(t, 42, frames[0].PatientID)
	assert.Equal(t, model.CategoryClapping, frames[0].Category)
	assert.Equal(t, enabledAt.Add(100*time.Millisecond), frames[0].StartedAt)
	assert.Equal(t, enabledAt.Add(200*time.Millisecond), frames[0].FinishedAt)
}

func TestDecodeDropsInvertedInterval(t *testing.T) {
	assert.Empty(t, Decode("1;200;100", enabledAt, 42))
}

func TestDecodeSurvivesGarbage(t *testing.T) {
	// cleaning removes the garbage token first, then triples regroup
	frames := Decode("ab;1;100;200", enabledAt, 42)

	assert.Len(t, frames, 1)
	assert.Equal(t, model.CategoryClapping, frames[0].Category)
}

func TestDecodeMultipleFrames(t *testing.T) {
	frames := Decode("0;0;1000;2;2000;5000", enabledAt, 7)

	assert.Len(t, frames, 2)
	assert.Equal(t, model.CategoryRandom, frames[0].Category)
	assert.Equal(t, model.CategoryBrushingTeeth, frames[1].Category)
	assert.Equal(t, 3*time.Second, frames[1].Duration())
}

func TestDecodeIgnoresTrailingPartialTriple(t *testing.T) {
	frames := Decode("1;100;200;3;4", enabledAt, 1)

	assert.Len(t, frames, 1)
}

func TestDecodeSkipsMultiDigitCategory(t *testing.T) {
	// 12 cannot be a category; the triple is discarded as a whole
	frames := Decode("12;100;200;1;300;400", enabledAt, 1)

	assert.Len(t, frames, 1)
	assert.Equal(t, model.CategoryClapping, frames[0].Category)
}

func TestDecodeNeverErrors(t *testing.T) {
	for _, payload := range []string{"", ";", ";;;", "garbage", "1", "1;2"} {
		assert.NotPanics(t, func() {
			assert.Empty(t, Decode(payload, enabledAt, 1))
		})
	}
}
