package routing

import (
	"iter"

	"github.com/avdivo/nearest-bus/internal/models"
)

// Window treats marks (sorted ascending) as a ring: after the last mark the
// next one occurs the following day. Starting from the first mark not before
// start — or the first mark overall, meaning the next departure wraps to
// tomorrow — it walks the ring, accumulating the elapsed minutes between
// consecutive marks, and yields each mark until the walk exceeds duration
// minutes. A mark equal to the cursor counts as a full day away: a departure
// at exactly "now" has already left.
//
// The sequence is lazy, finite and single-pass; for duration under a full
// day it yields each mark at most once.
func Window(marks []models.TimeOfDay, start models.TimeOfDay, duration int) iter.Seq[models.TimeOfDay] {
	return func(yield func(models.TimeOfDay) bool) {
		if len(marks) == 0 {
			return
		}

		index := 0
		for i, mark := range marks {
			if mark >= start {
				index = i
				break
			}
		}

		elapsed := 0
		cursor := start
		for {
			mark := marks[index]
			if mark > cursor {
				elapsed += int(mark - cursor)
			} else {
				// Midnight was crossed (or the mark coincides with the
				// cursor): count the walk through 00:00.
				elapsed += models.MinutesPerDay - int(cursor) + int(mark)
			}
			cursor = mark
			index = (index + 1) % len(marks)

			if elapsed > duration {
				return
			}
			if !yield(cursor) {
				return
			}
		}
	}
}
