package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestLog(t *testing.T) {
	start := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns activities after a given time", func(t *testing.T) {
		now := start
		log := NewLog(func() time.Time {
			now = now.Add(time.Second)
			return now
		})

		first := log.AddActivity("Game has started")
		log.AddActivity("No one ruled out")

		all := log.ActivitiesAfter(time.Time{})
		assert.Len(t, all, 2)
		assert.Equal(t, "Game has started", all[0].Text)

		later := log.ActivitiesAfter(first)
		assert.Len(t, later, 1)
		assert.Equal(t, "No one ruled out", later[0].Text)
	})

	t.Run("empty log returns an empty slice", func(t *testing.T) {
		log := NewLog(nil)
		assert.NotNil(t, log.ActivitiesAfter(time.Time{}))
		assert.Empty(t, log.ActivitiesAfter(time.Time{}))
	})
}

func TestMonotonic(t *testing.T) {
	start := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := Monotonic(fixedClock(start))

	a := clock()
	b := clock()
	c := clock()

	assert.Equal(t, start, a)
	assert.True(t, b.After(a))
	assert.True(t, c.After(b))

	t.Run("shared between logs keeps entries distinct", func(t *testing.T) {
		shared := Monotonic(fixedClock(start))
		gameLog, playerLog := NewLog(shared), NewLog(shared)

		t1 := gameLog.AddActivity("one")
		t2 := playerLog.AddActivity("two")

		assert.True(t, t2.After(t1))
		assert.Len(t, playerLog.ActivitiesAfter(t1), 1)
	})
}
