package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCount(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want int
	}{
		{"zero", 0, 0},
		{"positive", 7, 7},
		{"fraction floors", 3.9, 3},
		{"negative", -4, 0},
		{"negative fraction", -0.5, 0},
		{"nan", math.NaN(), 0},
		{"plus inf", math.Inf(1), 0},
		{"minus inf", math.Inf(-1), 0},
		{"huge saturates", 1e300, math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeCount(tc.in))
		})
	}
}

func TestNormalizeNewCount(t *testing.T) {
	assert.Equal(t, 1, NormalizeNewCount(-5))
	assert.Equal(t, 1, NormalizeNewCount(0))
	assert.Equal(t, 1, NormalizeNewCount(math.NaN()))
	assert.Equal(t, 1, NormalizeNewCount(1.8))
	assert.Equal(t, 12, NormalizeNewCount(12))
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 12.0, ParseCount("12"))
	assert.Equal(t, 12.0, ParseCount("  12abc"))
	assert.Equal(t, 3.0, ParseCount("3.7"))
	assert.Equal(t, -5.0, ParseCount("-5"))
	assert.Equal(t, 4.0, ParseCount("+4"))
	assert.True(t, math.IsNaN(ParseCount("")))
	assert.True(t, math.IsNaN(ParseCount("abc")))
	assert.True(t, math.IsNaN(ParseCount("-")))

	// the parsed value still goes through the clamps
	assert.Equal(t, 0, NormalizeCount(ParseCount("-5")))
	assert.Equal(t, 1, NormalizeNewCount(ParseCount("x")))
}

func TestStarter(t *testing.T) {
	lists := Starter()
	require.Len(t, lists, 3)
	assert.Equal(t, "Badezimmer", lists[0].Name)
	assert.Equal(t, "Küche", lists[1].Name)
	assert.Equal(t, "Wohnzimmer", lists[2].Name)
	for _, l := range lists {
		assert.Len(t, l.Items, 3, l.Name)
	}
	assert.Equal(t, 11, TotalPieces(lists[0]))
	assert.Equal(t, 12, TotalPieces(lists[1]))
	assert.Equal(t, 13, TotalPieces(lists[2]))

	// every call hands out an independent copy
	lists[0].Items[0].Count = 99
	assert.Equal(t, 2, Starter()[0].Items[0].Count)
}

func TestCloneDoesNotShareItems(t *testing.T) {
	orig := Starter()
	cp := Clone(orig)
	cp[1].Items[0].Count = 0
	cp[1].Items = append(cp[1].Items, Item{ID: "x", Name: "X", Count: 1})

	assert.Equal(t, 4, orig[1].Items[0].Count)
	assert.Len(t, orig[1].Items, 3)
	assert.Nil(t, Clone(nil))
	assert.NotNil(t, CloneList(List{ID: "a"}).Items)
}

func TestFind(t *testing.T) {
	lists := Starter()
	assert.Equal(t, 1, lists.Find("kitchen"))
	assert.Equal(t, -1, lists.Find("garage"))
	assert.Equal(t, 2, lists[2].FindItem("cables"))
	assert.Equal(t, -1, lists[2].FindItem("pasta"))
}
