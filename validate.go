// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

const (
	// ellipsis is appended to truncated text.
	ellipsis = "..."
	// calendarDateLayout is used for instants at exactly midnight.
	calendarDateLayout = "2006-01-02"
	// timestampLayout is ISO 8601 with numeric zone offset.
	timestampLayout = "2006-01-02T15:04:05-0700"
	// maxDateYear is the last year with a four digit ISO 8601 form.
	maxDateYear = 9999
)

// dateLayouts lists accepted textual date formats in probe order.
var dateLayouts = []string{
	calendarDateLayout,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	timestampLayout,
	"02.01.2006",
	"02.01.2006 15:04",
	"02.01.2006 15:04:05",
}

// clockTimePattern matches H:M with one or two digits per part.
var clockTimePattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)

// fieldValidator checks e-mail and URL syntax.
var fieldValidator = validator.New()

// textReplacer normalizes quotes and line endings.
var textReplacer = strings.NewReplacer(`"`, "'", "\r\n", "\n", "\r", "\n")

// ValidText replaces double quotes with single quotes and normalizes CRLF/CR to LF.
func ValidText(s string) string {
	return textReplacer.Replace(s)
}

// ValidCoordinate returns canonical decimal form of a numeric coordinate.
// Accepts Go numeric kinds and numeric strings; anything else yields empty string.
func ValidCoordinate(v any) string {
	var value float64
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return ""
		}

		value = parsed
	default:
		rv := reflect.ValueOf(v)
		switch {
		case rv.CanFloat():
			value = rv.Float()
		case rv.CanInt():
			value = float64(rv.Int())
		case rv.CanUint():
			value = float64(rv.Uint())
		default:
			return ""
		}
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ""
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

// validLatitude returns coordinate only when it lies within [-90, 90].
func validLatitude(v any) string {
	return boundedCoordinate(ValidCoordinate(v), 90)
}

// validLongitude returns coordinate only when it lies within [-180, 180].
func validLongitude(v any) string {
	return boundedCoordinate(ValidCoordinate(v), 180)
}

func boundedCoordinate(value string, limit float64) string {
	if value == "" {
		return ""
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.Abs(parsed) > limit {
		return ""
	}

	return value
}

// ValidDate formats a date in the local time zone; see ValidDateIn.
func ValidDate(v any) string {
	return ValidDateIn(v, time.Local)
}

// ValidDateIn resolves v to an instant and formats it in loc.
//
// Accepted inputs are time.Time, *time.Time, integer Unix timestamps, numeric
// strings (Unix timestamps) and date strings in one of the supported layouts.
// Instants at exactly midnight render as YYYY-MM-DD, others as
// YYYY-MM-DDTHH:mm:ss±HHMM. Unresolvable, non-positive or past-9999 instants yield empty string.
func ValidDateIn(v any, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	unix, ok := resolveUnix(v, loc)
	if !ok || unix <= 0 {
		return ""
	}

	instant := time.Unix(unix, 0).In(loc)
	if instant.Year() > maxDateYear {
		return ""
	}

	if instant.Hour() == 0 && instant.Minute() == 0 && instant.Second() == 0 {
		return instant.Format(calendarDateLayout)
	}

	return instant.Format(timestampLayout)
}

// resolveUnix converts supported date inputs into Unix seconds.
func resolveUnix(v any, loc *time.Location) (int64, bool) {
	switch typed := v.(type) {
	case nil:
		return 0, false
	case time.Time:
		if typed.IsZero() {
			return 0, false
		}

		return typed.Unix(), true
	case *time.Time:
		if typed == nil || typed.IsZero() {
			return 0, false
		}

		return typed.Unix(), true
	case string:
		return parseDateString(typed, loc)
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return rv.Int(), true
	case rv.CanUint():
		return int64(rv.Uint()), true
	default:
		return 0, false
	}
}

// parseDateString parses numeric timestamps and supported layouts.
func parseDateString(value string, loc *time.Location) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if unix, err := strconv.ParseInt(value, 10, 64); err == nil {
		return unix, true
	}

	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return parsed.Unix(), true
		}
	}

	return 0, false
}

// ValidClockTime normalizes H:M into HH:MM; any other shape yields empty string.
func ValidClockTime(s string) string {
	match := clockTimePattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return ""
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	if hour > 23 || minute > 59 {
		return ""
	}

	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ValidURL returns s when it is an absolute URL with scheme and host.
func ValidURL(s string) string {
	if s == "" || fieldValidator.Var(s, "url") != nil {
		return ""
	}

	parsed, err := url.Parse(s)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}

	return s
}

// ValidEmail returns s when it is a syntactically valid e-mail address.
func ValidEmail(s string) string {
	if s == "" || fieldValidator.Var(s, "email") != nil {
		return ""
	}

	return s
}

// ValidLanguageTag returns canonical BCP 47 form of tag or empty string.
func ValidLanguageTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return ""
	}

	return parsed.String()
}

// TruncateEllipsis shortens text longer than maxLen-3 characters and appends "...".
//
// Soft break (hardBreak false) cuts back to the last whitespace in the kept
// prefix; hard break keeps exactly maxLen-3 characters. Lengths count runes and
// no truncation happens for maxLen <= 4.
func TruncateEllipsis(text string, maxLen int, hardBreak bool) string {
	runes := []rune(text)
	if maxLen <= 4 || len(runes) <= maxLen-len(ellipsis) {
		return text
	}

	runes = runes[:maxLen-len(ellipsis)]
	if !hardBreak {
		for i := len(runes) - 1; i >= 0; i-- {
			if unicode.IsSpace(runes[i]) {
				runes = runes[:i]
				break
			}
		}
	}

	return string(runes) + ellipsis
}
