// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const (
	// testImageURL is served by testProbe with the size of the package logo fixture.
	testImageURL = "http://localhost/packages/JsonLD/elephpant.png"
	testImageW   = 133
	testImageH   = 117
)

// testProbe resolves testImageURL only.
var testProbe = StaticProbe{testImageURL: {Width: testImageW, Height: testImageH}}

// testOptions returns deterministic options for document tests.
func testOptions() []Option {
	return []Option{
		WithImageProbe(testProbe),
		WithTimeLocation(time.UTC),
		WithIdentity(RequestIdentity{Host: "www.example.com", Path: "/news/42"}),
	}
}

// writePNG stores a blank PNG of the given size in a temp dir.
func writePNG(t *testing.T, width, height int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "image.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := png.Encode(file, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	return path
}

// mustObject returns nested object under key or fails.
func mustObject(t *testing.T, object *Object, key string) *Object {
	t.Helper()

	value, ok := object.Get(key)
	if !ok {
		t.Fatalf("missing property %q in %v", key, object.Keys())
	}

	switch typed := value.(type) {
	case *Object:
		return typed
	case *Cell:
		if typed.IsMany() {
			t.Fatalf("property %q is a list of %d objects", key, typed.Len())
		}

		return typed.Single()
	default:
		t.Fatalf("property %q is %T, not an object", key, value)
		return nil
	}
}

// mustCell returns cell under key or fails.
func mustCell(t *testing.T, object *Object, key string) *Cell {
	t.Helper()

	cell, ok := object.values[key].(*Cell)
	if !ok {
		t.Fatalf("property %q is %T, not a cell", key, object.values[key])
	}

	return cell
}

// mustObjects returns object list under key or fails.
func mustObjects(t *testing.T, object *Object, key string) []*Object {
	t.Helper()

	list, ok := object.values[key].([]*Object)
	if !ok {
		t.Fatalf("property %q is %T, not an object list", key, object.values[key])
	}

	return list
}

func assertText(t *testing.T, object *Object, key, want string) {
	t.Helper()

	if got := object.Text(key); got != want {
		t.Fatalf("%s = %q, want %q", key, got, want)
	}
}

func assertMissing(t *testing.T, object *Object, key string) {
	t.Helper()

	if object.Has(key) {
		t.Fatalf("unexpected property %q = %#v", key, object.values[key])
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
