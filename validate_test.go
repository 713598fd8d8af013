// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"math"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestValidText(t *testing.T) {
	t.Parallel()

	got := ValidText("say \"hi\"\r\nline2\rline3")
	want := "say 'hi'\nline2\nline3"
	if got != want {
		t.Fatalf("ValidText = %q, want %q", got, want)
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"s.kientzler@online.de": "s.kientzler@online.de",
		"s.kientzler@online":    "",
		"a@b@c":                 "",
		"":                      "",
		"no-at-sign.de":         "",
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			if got := ValidEmail(input); got != want {
				t.Fatalf("ValidEmail(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestValidURL(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"https://www.mydomain.de":       "https://www.mydomain.de",
		"http://localhost/path?query=1": "http://localhost/path?query=1",
		"www.mydomain.de":               "",
		"file:///var/www/image.png":     "",
		"not a url":                     "",
		"":                              "",
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			if got := ValidURL(input); got != want {
				t.Fatalf("ValidURL(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestValidClockTime(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"9:00":    "09:00",
		"23:59":   "23:59",
		"7:5":     "07:05",
		"9:00:00": "",
		"9 Uhr":   "",
		"24:00":   "",
		"12:60":   "",
		"":        "",
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			if got := ValidClockTime(input); got != want {
				t.Fatalf("ValidClockTime(%q) = %q, want %q", input, got, want)
			}
		})
	}
}

func TestValidDateIn(t *testing.T) {
	t.Parallel()

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	midnight := time.Date(2021, 9, 10, 0, 0, 0, 0, berlin)
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{name: "unix timestamp", input: 1631277724, want: "2021-09-10T14:42:04+0200"},
		{name: "int64 timestamp", input: int64(1631277724), want: "2021-09-10T14:42:04+0200"},
		{name: "numeric string", input: "1631277724", want: "2021-09-10T14:42:04+0200"},
		{name: "midnight timestamp", input: midnight.Unix(), want: "2021-09-10"},
		{name: "time value", input: midnight, want: "2021-09-10"},
		{name: "time pointer", input: &midnight, want: "2021-09-10"},
		{name: "calendar string", input: "2021-09-10", want: "2021-09-10"},
		{name: "datetime string", input: "2021-09-10 14:42:04", want: "2021-09-10T14:42:04+0200"},
		{name: "german string", input: "10.09.2021 14:42", want: "2021-09-10T14:42:00+0200"},
		{name: "rfc3339 other zone", input: "2021-09-10T12:42:04Z", want: "2021-09-10T14:42:04+0200"},
		{name: "garbage", input: "next full moon", want: ""},
		{name: "zero", input: 0, want: ""},
		{name: "negative", input: -5, want: ""},
		{name: "nil", input: nil, want: ""},
		{name: "zero time", input: time.Time{}, want: ""},
		{name: "unsupported kind", input: 3.5, want: ""},
		{name: "last four digit year", input: "9999-12-31", want: "9999-12-31"},
		{name: "beyond year 9999", input: int64(math.MaxInt64), want: ""},
		{name: "first five digit year", input: time.Date(10000, 1, 1, 0, 0, 0, 0, berlin).Unix(), want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := ValidDateIn(tc.input, berlin); got != tc.want {
				t.Fatalf("ValidDateIn(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidCoordinate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input any
		want  string
	}{
		{input: 48.3365629, want: "48.3365629"},
		{input: float32(7.5), want: "7.5"},
		{input: 7, want: "7"},
		{input: uint8(12), want: "12"},
		{input: " 48.3365629 ", want: "48.3365629"},
		{input: "-0.5", want: "-0.5"},
		{input: "north", want: ""},
		{input: true, want: ""},
		{input: nil, want: ""},
	}

	for _, tc := range cases {
		if got := ValidCoordinate(tc.input); got != tc.want {
			t.Fatalf("ValidCoordinate(%#v) = %q, want %q", tc.input, got, tc.want)
		}
	}

	if got := validLatitude(91); got != "" {
		t.Fatalf("latitude 91 accepted: %q", got)
	}

	if got := validLongitude(-180); got != "-180" {
		t.Fatalf("longitude -180 = %q", got)
	}
}

func TestTruncateEllipsis(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		text      string
		maxLen    int
		hardBreak bool
		want      string
	}{
		{name: "soft", text: "text to be truncated here", maxLen: 24, want: "text to be truncated..."},
		{name: "hard", text: "text to be truncated hard", maxLen: 26, hardBreak: true, want: "text to be truncated ha..."},
		{name: "within budget", text: "short", maxLen: 24, want: "short"},
		{name: "tiny limit", text: "text to be truncated", maxLen: 4, want: "text to be truncated"},
		{name: "no whitespace", text: "abcdefghijklmnop", maxLen: 10, want: "abcdefg..."},
		{name: "multibyte", text: "äöüäöüäöüäöü", maxLen: 8, hardBreak: true, want: "äöüäö..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := TruncateEllipsis(tc.text, tc.maxLen, tc.hardBreak); got != tc.want {
				t.Fatalf("TruncateEllipsis = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidLanguageTag(t *testing.T) {
	t.Parallel()

	if got := ValidLanguageTag("de"); got != "de" {
		t.Fatalf("ValidLanguageTag(de) = %q", got)
	}

	if got := ValidLanguageTag("en-us"); got != "en-US" {
		t.Fatalf("ValidLanguageTag(en-us) = %q", got)
	}

	if got := ValidLanguageTag("not a tag!"); got != "" {
		t.Fatalf("ValidLanguageTag accepted invalid tag: %q", got)
	}
}

func TestValidDateUsesLocalZone(t *testing.T) {
	t.Parallel()

	localMidnight := time.Date(2021, 9, 10, 0, 0, 0, 0, time.Local)
	if got := ValidDate(localMidnight.Unix()); got != "2021-09-10" {
		t.Fatalf("ValidDate(local midnight) = %q, want 2021-09-10", got)
	}

	inputs := []any{1631277724, "2021-09-10 14:42:04", "10.09.2021", localMidnight, "garbage", nil}
	for _, input := range inputs {
		if got, want := ValidDate(input), ValidDateIn(input, time.Local); got != want {
			t.Fatalf("ValidDate(%v) = %q, ValidDateIn local = %q", input, got, want)
		}
	}
}
