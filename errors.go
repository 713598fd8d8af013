// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import "errors"

var (
	// ErrInvalidUTF8 is returned when a property key or string value is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 in property")
	// ErrEncodeJSON is returned when document JSON encoding fails.
	ErrEncodeJSON = errors.New("encode document json")
	// ErrReadManifestFile is returned when manifest file loading fails.
	ErrReadManifestFile = errors.New("read manifest file")
	// ErrDecodeManifest is returned when manifest YAML/JSON decoding fails.
	ErrDecodeManifest = errors.New("decode manifest")
	// ErrUnknownDocumentKind is returned when manifest kind is not article, event or business.
	ErrUnknownDocumentKind = errors.New("unknown document kind")
	// ErrInvalidManifestValue is returned when a manifest enumeration token is not recognized.
	ErrInvalidManifestValue = errors.New("invalid manifest value")
	// ErrUnknownPageTemplate is returned when requested built-in page template name is not registered.
	ErrUnknownPageTemplate = errors.New("unknown built-in page template")
	// ErrReadPageTemplate is returned when built-in page template file loading fails.
	ErrReadPageTemplate = errors.New("read built-in page template")
	// ErrParsePageTemplate is returned when page template parsing fails.
	ErrParsePageTemplate = errors.New("parse page template")
	// ErrExecutePageTemplate is returned when page template execution fails.
	ErrExecutePageTemplate = errors.New("execute page template")
)
