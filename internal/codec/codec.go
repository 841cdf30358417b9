// Package codec converts product prices and dates between their display
// form (console prompts, CSV cells) and their stored form (whole cents,
// time.Time).
package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the display form for dates: month/day/year without zero
// padding. time.Parse accepts zero-padded input against it as well.
const DateLayout = "1/2/2006"

// pricePattern admits an optional leading dollar sign and at most one
// decimal point. At least one digit is required on top of this.
var pricePattern = regexp.MustCompile(`^\$?\d*(\.\d*)?$`)

// ParsePrice converts a display price to whole cents. When the input has a
// decimal point its digits are read as cents directly, so "$12.50" is 1250
// and "$12.5" is 125. Input without a point is read as whole dollars and
// multiplied out to cents.
func ParsePrice(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !pricePattern.MatchString(s) || !strings.ContainsAny(s, "0123456789") {
		return 0, fmt.Errorf("invalid price %q", s)
	}

	digits := strings.NewReplacer("$", "", ".", "").Replace(s)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}

	if strings.Contains(s, ".") {
		return n, nil
	}
	return n * 100, nil
}

// FormatPrice renders whole cents as $D.DD, splitting the last two digits
// off as the fractional part.
func FormatPrice(cents int) string {
	s := strconv.Itoa(cents)
	switch len(s) {
	case 1:
		return "$0.0" + s
	case 2:
		return "$0." + s
	default:
		return "$" + s[:len(s)-2] + "." + s[len(s)-2:]
	}
}

// ParseDate parses an M/D/YYYY display date. Blank input yields the
// current moment.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now(), nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a timestamp as M/D/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
