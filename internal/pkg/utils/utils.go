package utils

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// localDateTimeLayouts are tried in order when a provider timestamp has no offset.
var localDateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// ParseISODuration convert ISO-8601 duration to minutes
// Example: "PT5H30M" -> 330, "P1DT2H" -> 1560
// seconds are truncated. ok is false when the value is empty or malformed.
func ParseISODuration(iso string) (int, bool) {
	iso = strings.ToUpper(strings.TrimSpace(iso))
	if iso == "" || iso == "P" || iso == "PT" {
		return 0, false
	}

	match := isoDurationPattern.FindStringSubmatch(iso)
	if match == nil {
		return 0, false
	}

	days := atoiOrZero(match[1])
	hours := atoiOrZero(match[2])
	minutes := atoiOrZero(match[3])

	return days*24*60 + hours*60 + minutes, true
}

// ParseProviderTime parses a provider timestamp, with or without offset.
func ParseProviderTime(value string) (time.Time, error) {
	for _, layout := range localDateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}

// MinutesBetween returns whole minutes from start to end, ok is false if either
// value cannot be parsed or end is before start.
func MinutesBetween(start, end string) (int, bool) {
	startTime, err := ParseProviderTime(start)
	if err != nil {
		return 0, false
	}

	endTime, err := ParseProviderTime(end)
	if err != nil {
		return 0, false
	}

	diff := endTime.Sub(startTime)
	if diff < 0 {
		return 0, false
	}

	return int(diff.Minutes()), true
}

// AddDays shifts a YYYY-MM-DD date by n days.
func AddDays(date string, n int) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}

	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

// CompactDate turns 2025-01-31 into 20250131.
func CompactDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

// EncodeComponent percent-encodes a single URL component, spaces become %20.
func EncodeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// FormatAmount renders an amount the same way it is sent in links: no trailing zeros.
// Example: 1234.50 -> "1234.5"
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// RoundCents rounds to 2 decimals.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ParseAmount parses provider decimal strings like "123.45", invalid values are 0.
func ParseAmount(value string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}

	return amount
}

func atoiOrZero(value string) int {
	if value == "" {
		return 0
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return n
}
