// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"net/http/httptest"
	"testing"
)

func TestIdentityFromRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "https://shop.example.com/news/42?page=2", nil)
	identity := IdentityFromRequest(req)
	if identity.Host != "shop.example.com" || identity.Path != "/news/42?page=2" {
		t.Fatalf("identity = %+v", identity)
	}

	if empty := IdentityFromRequest(nil); empty != (RequestIdentity{}) {
		t.Fatalf("nil request identity = %+v", empty)
	}
}

func TestIdentityDefaults(t *testing.T) {
	t.Parallel()

	var identity RequestIdentity
	if identity.HostOrDefault() != UnknownHost || identity.PathOrDefault() != UnknownRequestURI {
		t.Fatalf("defaults = %q %q", identity.HostOrDefault(), identity.PathOrDefault())
	}

	identity = RequestIdentity{Host: " example.com ", Path: "/a"}
	if identity.HostOrDefault() != "example.com" || identity.PathOrDefault() != "/a" {
		t.Fatalf("values = %q %q", identity.HostOrDefault(), identity.PathOrDefault())
	}
}
