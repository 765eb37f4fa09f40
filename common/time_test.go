package common

import (
	"math"
	"testing"
)

func TestFormatTime(t *testing.T) {
	cases := map[float64]string{
		0:        "00:00.0",
		999:      "00:00.9",
		61234:    "01:01.2",
		-5:       "00:00.0",
		600000.0: "10:00.0",
	}
	for ms, want := range cases {
		if got := FormatTime(ms); got != want {
			t.Fatalf("FormatTime(%v) = %q, want %q", ms, got, want)
		}
	}
	if got := FormatTime(math.NaN()); got != "00:00.0" {
		t.Fatalf("FormatTime(NaN) = %q", got)
	}
}
