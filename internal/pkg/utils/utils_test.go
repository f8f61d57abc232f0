//go:build unit

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertMinutesToDuration(t *testing.T) {
	convert := func(minutes int64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, ConvertMinutesToDuration(minutes))
		}
	}

	t.Run("hours and minutes", convert(125, "2h 5m"))
	t.Run("whole hours", convert(120, "2h"))
	t.Run("minutes only", convert(45, "45m"))
}

func TestParseISODuration(t *testing.T) {
	parse := func(iso string, want int, wantOK bool) func(t *testing.T) {
		return func(t *testing.T) {
			got, ok := ParseISODuration(iso)
			assert.Equal(t, wantOK, ok)
			assert.Equal(t, want, got)
		}
	}

	t.Run("hours and minutes", parse("PT5H30M", 330, true))
	t.Run("days", parse("P1DT2H", 1560, true))
	t.Run("seconds truncated", parse("PT1H0M45S", 60, true))
	t.Run("lowercase", parse("pt45m", 45, true))
	t.Run("empty", parse("", 0, false))
	t.Run("bare designator", parse("PT", 0, false))
	t.Run("garbage", parse("5 hours", 0, false))
}

func TestMinutesBetween(t *testing.T) {
	between := func(start, end string, want int, wantOK bool) func(t *testing.T) {
		return func(t *testing.T) {
			got, ok := MinutesBetween(start, end)
			assert.Equal(t, wantOK, ok)
			assert.Equal(t, want, got)
		}
	}

	t.Run("local times", between("2025-06-01T10:00:00", "2025-06-01T11:35:00", 95, true))
	t.Run("with offsets", between("2025-06-01T10:00:00+02:00", "2025-06-01T10:00:00Z", 120, true))
	t.Run("no seconds", between("2025-06-01T10:00", "2025-06-01T10:30", 30, true))
	t.Run("end before start", between("2025-06-01T11:00:00", "2025-06-01T10:00:00", 0, false))
	t.Run("unparseable", between("soon", "2025-06-01T10:00:00", 0, false))
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2025-12-31", 1)
	assert.NoError(t, err)
	assert.Equal(t, "2026-01-01", got)

	_, err = AddDays("31/12/2025", 1)
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "20250131", CompactDate("2025-01-31"))
	assert.Equal(t, "Los%20Angeles%20%26%20Co", EncodeComponent("Los Angeles & Co"))
	assert.Equal(t, "1234.5", FormatAmount(1234.50))
	assert.Equal(t, "700", FormatAmount(700))
	assert.Equal(t, 10.13, RoundCents(10.125001))
	assert.Equal(t, 123.45, ParseAmount(" 123.45 "))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount("NaN"))
}
