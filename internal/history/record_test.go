package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserHistoryAccessors(t *testing.T) {
	t.Parallel()

	t.Run("empty history", func(t *testing.T) {
		t.Parallel()
		var h UserHistory

		assert.Equal(t, 0, h.Len())
		_, ok := h.Latest()
		assert.False(t, ok)
		_, ok = h.Previous()
		assert.False(t, ok)
		_, ok = h.FootprintDelta()
		assert.False(t, ok)
		_, ok = h.TreesDelta()
		assert.False(t, ok)
	})

	t.Run("single record has no delta", func(t *testing.T) {
		t.Parallel()
		h := UserHistory{History: []Record{
			{Date: "2026-08-01", CarbonFootprint: 2400, TreesOwed: 6},
		}}

		latest, ok := h.Latest()
		assert.True(t, ok)
		assert.Equal(t, 2400, latest.CarbonFootprint)

		_, ok = h.Previous()
		assert.False(t, ok)
		_, ok = h.FootprintDelta()
		assert.False(t, ok)
	})

	t.Run("deltas compare the two latest records", func(t *testing.T) {
		t.Parallel()
		h := UserHistory{History: []Record{
			{Date: "2026-06-01", CarbonFootprint: 3100, TreesOwed: 8},
			{Date: "2026-07-01", CarbonFootprint: 2800, TreesOwed: 7},
			{Date: "2026-08-01", CarbonFootprint: 2400, TreesOwed: 6},
		}}

		latest, ok := h.Latest()
		assert.True(t, ok)
		assert.Equal(t, "2026-08-01", latest.Date)

		previous, ok := h.Previous()
		assert.True(t, ok)
		assert.Equal(t, "2026-07-01", previous.Date)

		footprintDelta, ok := h.FootprintDelta()
		assert.True(t, ok)
		assert.Equal(t, -400, footprintDelta)

		treesDelta, ok := h.TreesDelta()
		assert.True(t, ok)
		assert.Equal(t, -1, treesDelta)
	})
}
