package easymeasure

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

var memoryUnits = []string{"B", "Kb", "Mb", "Gb", "Tb", "PB"}

// FormatBytes formats a memory delta with base-1024 units, keeping the sign.
// The magnitude is rounded to 2 decimals, e.g. 1536 => "1.5 Kb", -2048 => "-2 Kb".
func FormatBytes(n int64) string {
	if n == 0 {
		return "0 " + memoryUnits[0]
	}

	var sign float64 = 1
	abs := uint64(n)
	if n < 0 {
		sign = -1
		abs = uint64(-(n + 1)) + 1
	}

	// floor(log1024(abs)), clamped to the last unit
	i := 0
	for u := abs; u >= 1024 && i < len(memoryUnits)-1; u /= 1024 {
		i++
	}

	v := round2(float64(abs)/math.Pow(1024, float64(i))) * sign
	return humanize.FtoaWithDigits(v, 2) + " " + memoryUnits[i]
}

// FormatSeconds formats a duration in seconds rounded to 2 decimals.
func FormatSeconds(d time.Duration) string {
	v := round2(d.Seconds())
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return humanize.FtoaWithDigits(v, 2) + " Sec"
}
