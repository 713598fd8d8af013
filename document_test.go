// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestNewSeedsContextAndType(t *testing.T) {
	t.Parallel()

	doc := New(KindEvent, "Event", false, testOptions()...)
	if got := strings.Join(doc.Object().Keys(), ","); got != "@context,@type" {
		t.Fatalf("keys = %q", got)
	}

	assertText(t, doc.Object(), "@context", SchemaContext)
	if doc.Kind() != KindEvent || doc.IsChild() {
		t.Fatalf("kind = %v child = %v", doc.Kind(), doc.IsChild())
	}

	if KindLocalBusiness.String() != "business" || DocumentKind(9).String() != "DocumentKind(9)" {
		t.Fatalf("unexpected kind names")
	}
}

func TestSetDescriptionSanitizes(t *testing.T) {
	t.Parallel()

	doc := New(KindArticle, "Article", false, testOptions()...)
	doc.SetDescription("")
	assertMissing(t, doc.Object(), "description")

	doc.SetDescription("say \"hi\"\r\nagain")
	assertText(t, doc.Object(), "description", "say 'hi'\nagain")
}

func TestSetPropertyValidation(t *testing.T) {
	t.Parallel()

	doc := New(KindLocalBusiness, "Organization", false, testOptions()...)
	doc.SetProperty("email", "nope", ValidateEmail)
	doc.SetProperty("url", "www.example.com", ValidateURL)
	doc.SetProperty("opens", "25:00", ValidateTime)
	doc.SetProperty("foundingDate", "someday", ValidateDate)

	for _, key := range []string{"email", "url", "opens", "foundingDate"} {
		assertMissing(t, doc.Object(), key)
	}

	doc.SetProperty("email", "info@example.com", ValidateEmail)
	doc.SetProperty("url", "https://www.example.com", ValidateURL)
	doc.SetProperty("opens", "8:30", ValidateTime)
	doc.SetProperty("foundingDate", "2001-05-17", ValidateDate)
	doc.SetProperty("slogan", "\"best\"", ValidateText)

	assertText(t, doc.Object(), "email", "info@example.com")
	assertText(t, doc.Object(), "url", "https://www.example.com")
	assertText(t, doc.Object(), "opens", "08:30")
	assertText(t, doc.Object(), "foundingDate", "2001-05-17")
	assertText(t, doc.Object(), "slogan", "'best'")
}

func TestAddImagePromotesToList(t *testing.T) {
	t.Parallel()

	const coverURL = "http://localhost/cover.png"
	probe := StaticProbe{
		coverURL:     {Width: 64, Height: 48},
		testImageURL: {Width: testImageW, Height: testImageH},
	}

	doc := New(KindArticle, "Article", false, append(testOptions(), WithImageProbe(probe))...)
	doc.AddImage("http://localhost/unknown.png")
	assertMissing(t, doc.Object(), "image")

	doc.AddImage(coverURL)
	img := mustObject(t, doc.Object(), "image")
	if img.values["width"] != 64 || img.values["height"] != 48 {
		t.Fatalf("image size = %v x %v", img.values["width"], img.values["height"])
	}

	doc.AddImage(testImageURL)
	cell := mustCell(t, doc.Object(), "image")
	if !cell.IsMany() || cell.Len() != 2 {
		t.Fatalf("image cell many=%v len=%d", cell.IsMany(), cell.Len())
	}

	items := cell.Items()
	assertText(t, items[0], "url", coverURL)
	assertText(t, items[1], "url", testImageURL)
	if items[1].values["width"] != 133 || items[1].values["height"] != 117 {
		t.Fatalf("second image size = %v x %v", items[1].values["width"], items[1].values["height"])
	}

	assertContains(t, doc.JSON(false),
		`"image":[{"@type":"ImageObject","url":"http://localhost/cover.png","width":64,"height":48},`+
			`{"@type":"ImageObject","url":"http://localhost/packages/JsonLD/elephpant.png","width":133,"height":117}]`)
}

func TestAddImageTwiceFromFile(t *testing.T) {
	t.Parallel()

	path := writePNG(t, testImageW, testImageH)
	doc := New(KindArticle, "Article", false, WithIdentity(RequestIdentity{Host: "h"}))
	doc.AddImage(path)
	doc.AddImage(path)

	items := mustCell(t, doc.Object(), "image").Items()
	if len(items) != 2 {
		t.Fatalf("images = %d", len(items))
	}

	for i, item := range items {
		if item.values["width"] != testImageW || item.values["height"] != testImageH {
			t.Fatalf("image %d size = %v x %v", i, item.values["width"], item.values["height"])
		}
	}
}

func TestAddImageFromLocalFile(t *testing.T) {
	t.Parallel()

	path := writePNG(t, testImageW, testImageH)
	doc := New(KindArticle, "Article", false, WithIdentity(RequestIdentity{Host: "h"}))
	doc.AddImage(path)

	img := mustObject(t, doc.Object(), "image")
	assertText(t, img, "url", path)
	if img.values["width"] != testImageW || img.values["height"] != testImageH {
		t.Fatalf("image size = %v x %v", img.values["width"], img.values["height"])
	}
}

func TestSetLocationMerges(t *testing.T) {
	t.Parallel()

	doc := New(KindEvent, "Event", false, testOptions()...)
	doc.SetLocation("Nowhere", nil, nil, "")
	assertMissing(t, doc.Object(), "location")

	doc.SetLocation("Center", 48.3365629, 7.8447896, "")
	doc.SetLocation("Renamed", nil, nil, "https://maps.example.com/center")

	place := mustObject(t, doc.Object(), "location")
	assertText(t, place, "name", "Renamed")
	assertText(t, place, "hasMap", "https://maps.example.com/center")
	if !place.Has("geo") {
		t.Fatalf("merge dropped geo")
	}
}

func TestHTMLHeadTag(t *testing.T) {
	t.Parallel()

	doc := New(KindEvent, "Event", false, testOptions()...)
	want := "<script type=\"application/ld+json\">\n" +
		`{"@context":"https://schema.org","@type":"Event"}` +
		"\n</script>\n"
	if got := doc.HTMLHeadTag(false); got != want {
		t.Fatalf("HTMLHeadTag = %q, want %q", got, want)
	}

	child := New(KindLocalBusiness, "Organization", true, testOptions()...)
	if got := child.HTMLHeadTag(true); got != "" {
		t.Fatalf("child HTMLHeadTag = %q", got)
	}
}

func TestJSONPretty(t *testing.T) {
	t.Parallel()

	doc := New(KindEvent, "Event", false, testOptions()...)
	doc.SetDescription("pretty")

	pretty := doc.JSON(true)
	assertContains(t, pretty, "{\n    \"@context\": \"https://schema.org\",")
	assertContains(t, pretty, "\n    \"description\": \"pretty\"\n}")

	compact := doc.JSON(false)
	assertNotContains(t, compact, "\n")
}

func TestJSONMatchesObjectEncoding(t *testing.T) {
	t.Parallel()

	business := NewLocalBusiness("Restaurant", false, testOptions()...)
	business.SetInfo("Café <Zur Post>", "info@example.com", "+49 1")
	business.SetAddress("Hauptstraße 1", "79100", "Freiburg", "BW", "DE")
	business.AddImage(testImageURL)
	business.AddImage(testImageURL)

	data, err := json.Marshal(business.Object())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if got := business.JSON(false); got != string(data) {
		t.Fatalf("JSON mismatch:\n%s\n%s", got, data)
	}
}

func TestJSONInvalidUTF8(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	doc := New(KindArticle, "Article", false, append(testOptions(), WithLogger(logger))...)
	doc.SetDescription("broken \xc3\x28 text")

	if got := doc.JSON(false); got != "" {
		t.Fatalf("JSON = %q, want empty", got)
	}

	if _, err := doc.EncodeJSON(true); !errors.Is(err, ErrEncodeJSON) {
		t.Fatalf("EncodeJSON error = %v, want ErrEncodeJSON", err)
	}

	assertContains(t, logs.String(), "json encoding failed")
	assertContains(t, doc.HTMLHeadTag(false), "<script type=\"application/ld+json\">\n\n</script>")
}

func TestRejectedPropertyIsLogged(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	doc := New(KindLocalBusiness, "Organization", false, append(testOptions(), WithLogger(logger))...)
	doc.SetProperty("email", "broken", ValidateEmail)

	assertContains(t, logs.String(), "property rejected")
	assertContains(t, logs.String(), "property=email")
}

func TestAddImageCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := writePNG(t, testImageW, testImageH)
	doc := New(KindArticle, "Article", false, WithContext(ctx))
	doc.AddImage(path)
	assertMissing(t, doc.Object(), "image")
}
