// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

const (
	// SchemaContext is the @context value of every root document.
	SchemaContext = "https://schema.org"
	// schemaBaseURI prefixes enumeration members.
	schemaBaseURI = "https://schema.org/"
	// prettyIndent is indentation used by pretty JSON output.
	prettyIndent = "    "
)

// DocumentKind identifies the document family a Document was built for.
type DocumentKind int

const (
	// KindLocalBusiness is LocalBusiness, Organization or one of their subtypes.
	KindLocalBusiness DocumentKind = iota
	// KindArticle is Article, NewsArticle or BlogPosting.
	KindArticle
	// KindEvent is Event.
	KindEvent
)

// String returns kind name used by manifests.
func (k DocumentKind) String() string {
	switch k {
	case KindLocalBusiness:
		return "business"
	case KindArticle:
		return "article"
	case KindEvent:
		return "event"
	default:
		return fmt.Sprintf("DocumentKind(%d)", int(k))
	}
}

// Validation selects how SetProperty validates a value.
type Validation int

const (
	// ValidateText applies ValidText.
	ValidateText Validation = iota
	// ValidateDate applies ValidDateIn with the document time zone.
	ValidateDate
	// ValidateTime applies ValidClockTime.
	ValidateTime
	// ValidateEmail applies ValidEmail.
	ValidateEmail
	// ValidateURL applies ValidURL.
	ValidateURL
)

// Document is a JSON-LD structured-data object.
//
// A Document is mutated only through its setters. Each setter validates its
// input and silently skips the affected property when validation fails, so a
// property is never set to an empty value. Documents are not safe for
// concurrent use.
type Document struct {
	data    *Object
	cfg     config
	kind    DocumentKind
	isChild bool
}

// New returns a document seeded with @context and @type.
// Child documents are embedded into a parent and render no script tag.
func New(kind DocumentKind, schemaType string, isChild bool, opts ...Option) *Document {
	data := NewObject()
	data.Set("@context", SchemaContext)
	data.Set("@type", schemaType)

	return &Document{
		data:    data,
		cfg:     newConfig(opts),
		kind:    kind,
		isChild: isChild,
	}
}

// Kind returns document family.
func (d *Document) Kind() DocumentKind {
	return d.kind
}

// IsChild reports whether the document is nested into a parent.
func (d *Document) IsChild() bool {
	return d.isChild
}

// Object returns the live property map.
func (d *Document) Object() *Object {
	return d.data
}

// SetDescription sets description text.
func (d *Document) SetDescription(description string) {
	d.SetProperty("description", description, ValidateText)
}

// SetLocation sets or merges a Place built from name, coordinates and map URL.
// An existing location object is merged key by key with new values winning;
// for a location list the last (physical) entry is merged.
func (d *Document) SetLocation(name string, latitude, longitude any, mapURL string) {
	place := buildLocation(name, latitude, longitude, mapURL)
	if place == nil {
		d.reject("location", "neither coordinates nor map url resolved")
		return
	}

	if cell, ok := d.locationCell(); ok {
		cell.Last().merge(place)
		return
	}

	d.data.Set("location", SingleCell(place))
}

// AddImage adds an ImageObject; a second image promotes the property to a list.
func (d *Document) AddImage(ref string) {
	img := buildImage(d.cfg.ctx, d.cfg.probe, ref)
	if img == nil {
		d.reject("image", "image not resolvable")
		return
	}

	d.data.appendPromoting("image", img)
}

// SetProperty validates value according to v and sets it when the result is not empty.
func (d *Document) SetProperty(name, value string, v Validation) {
	var valid string
	switch v {
	case ValidateDate:
		valid = d.validDate(value)
	case ValidateTime:
		valid = ValidClockTime(value)
	case ValidateEmail:
		valid = ValidEmail(value)
	case ValidateURL:
		valid = ValidURL(value)
	default:
		valid = ValidText(value)
	}

	if valid == "" {
		d.reject(name, "empty or invalid value")
		return
	}

	d.data.Set(name, valid)
}

// HTMLHeadTag returns the document wrapped into a ld+json script tag.
// Child documents return empty string.
func (d *Document) HTMLHeadTag(pretty bool) string {
	if d.isChild {
		return ""
	}

	var tag strings.Builder
	tag.WriteString(`<script type="application/ld+json">`)
	tag.WriteByte('\n')
	tag.WriteString(d.JSON(pretty))
	tag.WriteByte('\n')
	tag.WriteString("</script>\n")
	return tag.String()
}

// JSON returns the document as JSON text or empty string when encoding fails.
func (d *Document) JSON(pretty bool) string {
	data, err := d.EncodeJSON(pretty)
	if err != nil {
		d.cfg.logger.Debug("json encoding failed", "type", d.data.Text("@type"), "error", err)
		return ""
	}

	return string(data)
}

// EncodeJSON returns the document as JSON bytes.
func (d *Document) EncodeJSON(pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(d.data, "", prettyIndent)
	} else {
		data, err = json.Marshal(d.data)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeJSON, err)
	}

	return data, nil
}

// locationCell returns the stored location cell.
func (d *Document) locationCell() (*Cell, bool) {
	cell, ok := d.data.values["location"].(*Cell)
	if !ok || cell.Len() == 0 {
		return nil, false
	}

	return cell, true
}

// place returns the physical location entry, creating {"@type": "Place"} when absent.
func (d *Document) place() *Object {
	if cell, ok := d.locationCell(); ok {
		return cell.Last()
	}

	place := newTypedObject("Place")
	d.data.Set("location", SingleCell(place))
	return place
}

// validDate formats v in the document time zone.
func (d *Document) validDate(v any) string {
	return ValidDateIn(v, d.cfg.location)
}

// setDate sets a date property when v resolves.
func (d *Document) setDate(name string, v any) {
	if v == nil {
		return
	}

	if date := d.validDate(v); date != "" {
		d.data.Set(name, date)
		return
	}

	d.reject(name, "unresolvable date")
}

// reject records a silently skipped mutation.
func (d *Document) reject(property, reason string) {
	d.cfg.logger.Debug("property rejected",
		"type", d.data.Text("@type"),
		"property", property,
		"reason", reason,
	)
}
