package financebrain

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zouantchaw/financebrain/date"
)

// amountCleaner strips the currency symbol and thousands separators that
// records written by hand (or by older encoders) routinely carry.
var amountCleaner = strings.NewReplacer("$", "", ",", "")

// ParseAmount leniently parses a monetary amount from a property value.
// Currency symbols and thousands separators are stripped before parsing.
// An absent or unparseable value yields zero, never an error.
func ParseAmount(value string) decimal.Decimal {
	cleaned := strings.TrimSpace(amountCleaner.Replace(value))
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParsePercent leniently parses a percentage from a property value,
// accepting an optional trailing '%'. An absent or unparseable value
// yields zero.
func ParsePercent(value string) Percent {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, "%", ""))
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return Percent(f)
}

// ParseDate leniently parses a date from a property value. An absent or
// unparseable value yields today, never an error.
func ParseDate(value string) date.Date {
	d, err := date.Parse(strings.TrimSpace(value))
	if err != nil {
		return date.Today()
	}
	return d
}

// FormatAmount renders a monetary amount in its canonical storage form:
// a fixed two-decimal string, never locale-formatted.
func FormatAmount(d decimal.Decimal) string { return d.StringFixed(2) }

// FormatPercent renders a percentage in its canonical storage form, one
// fixed decimal and no '%' suffix.
func FormatPercent(p Percent) string {
	return strconv.FormatFloat(float64(p), 'f', 1, 64)
}

// CleanReference strips the [[...]] wrapper from a page reference,
// returning the plain page name.
func CleanReference(ref string) string {
	ref = strings.TrimPrefix(ref, "[[")
	return strings.TrimSuffix(ref, "]]")
}

// WrapReference wraps a page name in the bracketed-reference form used
// to link records to pages.
func WrapReference(name string) string { return "[[" + name + "]]" }

var (
	spaceRun    = regexp.MustCompile(`\s+`)
	nameSpecial = regexp.MustCompile(`[^\w\s\-&.']`)
)

// CleanName normalizes a merchant or institution name: whitespace runs
// collapse to a single space and uncommon special characters are dropped.
func CleanName(name string) string {
	name = spaceRun.ReplaceAllString(strings.TrimSpace(name), " ")
	return nameSpecial.ReplaceAllString(name, "")
}

// PercentageChange returns the relative change from previous to current.
// A zero previous value yields 100% when current is positive, 0% otherwise.
func PercentageChange(current, previous decimal.Decimal) Percent {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	change, _ := current.Sub(previous).Div(previous).Float64()
	return Percent(change * 100)
}
