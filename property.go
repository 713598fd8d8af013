// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import "context"

// buildImage returns an ImageObject for a resolvable image or nil.
func buildImage(ctx context.Context, probe ImageProbe, ref string) *Object {
	if probe == nil || ref == "" {
		return nil
	}

	size, ok := probe.Probe(ctx, ref)
	if !ok {
		return nil
	}

	img := newTypedObject("ImageObject")
	img.Set("url", ref)
	img.Set("width", size.Width)
	img.Set("height", size.Height)
	return img
}

// buildAddress returns a PostalAddress with every non-empty field.
// addressRegion is gated on country presence, not on region itself.
func buildAddress(street, postcode, city, region, country string) *Object {
	address := newTypedObject("PostalAddress")
	setNonEmpty(address, "streetAddress", ValidText(street))
	setNonEmpty(address, "postalCode", ValidText(postcode))
	setNonEmpty(address, "addressLocality", ValidText(city))
	if country != "" {
		setNonEmpty(address, "addressCountry", ValidText(country))
		setNonEmpty(address, "addressRegion", ValidText(region))
	}

	return address
}

// buildLocation returns a Place when a coordinate pair or a map URL resolves, otherwise nil.
func buildLocation(name string, latitude, longitude any, mapURL string) *Object {
	lat := validLatitude(latitude)
	lon := validLongitude(longitude)
	mapURL = ValidURL(mapURL)

	hasGeo := lat != "" && lon != ""
	if !hasGeo && mapURL == "" {
		return nil
	}

	place := newTypedObject("Place")
	setNonEmpty(place, "name", ValidText(name))
	if hasGeo {
		geo := newTypedObject("GeoCoordinates")
		geo.Set("latitude", lat)
		geo.Set("longitude", lon)
		place.Set("geo", geo)
	}

	setNonEmpty(place, "hasMap", mapURL)
	return place
}

// buildContactPoint returns a ContactPoint or nil when contact type is empty.
func buildContactPoint(contactType, email, phone string) *Object {
	contactType = ValidText(contactType)
	if contactType == "" {
		return nil
	}

	contact := newTypedObject("ContactPoint")
	contact.Set("contactType", contactType)
	setNonEmpty(contact, "email", ValidText(email))
	setNonEmpty(contact, "telephone", ValidText(phone))
	return contact
}

// setNonEmpty assigns value only when it is not empty.
func setNonEmpty(object *Object, key, value string) {
	if value != "" {
		object.Set(key, value)
	}
}
