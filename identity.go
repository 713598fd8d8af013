// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"net/http"
	"strings"
)

const (
	// UnknownHost is used when no serving host is known.
	UnknownHost = "UNKNOWN_HOST"
	// UnknownRequestURI is used when no request path is known.
	UnknownRequestURI = "_UNKNOWN_REQUEST_URI"
)

// RequestIdentity is the serving host and request path of the page that embeds
// a document. It seeds default @id, url and mainEntityOfPage values.
type RequestIdentity struct {
	Host string
	Path string
}

// IdentityFromRequest extracts host and request URI from r.
func IdentityFromRequest(r *http.Request) RequestIdentity {
	if r == nil {
		return RequestIdentity{}
	}

	identity := RequestIdentity{Host: r.Host}
	if r.URL != nil {
		identity.Path = r.URL.RequestURI()
	}

	return identity
}

// HostOrDefault returns host or UnknownHost.
func (id RequestIdentity) HostOrDefault() string {
	if host := strings.TrimSpace(id.Host); host != "" {
		return host
	}

	return UnknownHost
}

// PathOrDefault returns request path or UnknownRequestURI.
func (id RequestIdentity) PathOrDefault() string {
	if path := strings.TrimSpace(id.Path); path != "" {
		return path
	}

	return UnknownRequestURI
}
