// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

// defaultBusinessType is used when caller does not provide business type.
const defaultBusinessType = "Organization"

// weekdayNames is dayOfWeek order of opening hours flags.
var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// LocalBusiness is a LocalBusiness or Organization document.
type LocalBusiness struct {
	*Document
}

// NewLocalBusiness returns a business document with @id (root documents only)
// and url seeded from the serving host.
func NewLocalBusiness(schemaType string, isChild bool, opts ...Option) *LocalBusiness {
	if schemaType == "" {
		schemaType = defaultBusinessType
	}

	business := &LocalBusiness{Document: New(KindLocalBusiness, schemaType, isChild, opts...)}
	host := business.cfg.identity.HostOrDefault()
	if !isChild {
		business.data.Set("@id", host)
	}

	business.data.Set("url", host)
	return business
}

// SetURL sets url and @id. @id defaults to url; child documents change @id only
// when an explicit id is given.
func (b *LocalBusiness) SetURL(rawURL, id string) {
	rawURL = ValidURL(rawURL)
	id = ValidText(id)
	if rawURL == "" {
		b.reject("url", "invalid url")
		return
	}

	switch {
	case id != "":
		b.data.Set("@id", id)
	case !b.isChild:
		b.data.Set("@id", rawURL)
	}

	b.data.Set("url", rawURL)
}

// SetInfo sets name, e-mail and phone; an empty name makes the call a no-op.
func (b *LocalBusiness) SetInfo(name, email, phone string) {
	name = ValidText(name)
	if name == "" {
		b.reject("name", "empty name")
		return
	}

	b.data.Set("name", name)
	setNonEmpty(b.data, "email", ValidEmail(email))
	setNonEmpty(b.data, "telephone", ValidText(phone))
}

// SetAddress sets postal address.
func (b *LocalBusiness) SetAddress(street, postcode, city, region, country string) {
	b.data.Set("address", buildAddress(street, postcode, city, region, country))
}

// SetLogo sets logo image.
func (b *LocalBusiness) SetLogo(ref string) {
	logo := buildImage(b.cfg.ctx, b.cfg.probe, ref)
	if logo == nil {
		b.reject("logo", "image not resolvable")
		return
	}

	b.data.Set("logo", logo)
}

// SetPriceRange sets price range text such as "€€€".
func (b *LocalBusiness) SetPriceRange(priceRange string) {
	b.SetProperty("priceRange", priceRange, ValidateText)
}

// SetServesCuisine sets cuisine text.
func (b *LocalBusiness) SetServesCuisine(cuisine string) {
	b.SetProperty("servesCuisine", cuisine, ValidateText)
}

// SetOpeningHours sets short opening hours text such as "Mo 09:00-12:00 We 12:00-17:00".
// Do not combine with AddOpeningHours.
func (b *LocalBusiness) SetOpeningHours(openingHours string) {
	b.SetProperty("openingHours", openingHours, ValidateText)
}

// AddLanguage appends tag to knowsLanguage. The tag is not validated.
func (b *LocalBusiness) AddLanguage(tag string) {
	b.data.appendString("knowsLanguage", tag)
}

// AddContact appends a contact point and returns its index, or -1 when rejected.
func (b *LocalBusiness) AddContact(contactType, email, phone string) int {
	contact := buildContactPoint(contactType, email, phone)
	if contact == nil {
		b.reject("contactPoint", "empty contact type")
		return -1
	}

	return b.data.appendObject("contactPoint", contact)
}

// AddContactLanguage appends tag to availableLanguage of contact at index.
func (b *LocalBusiness) AddContactLanguage(index int, tag string) {
	contacts, _ := b.data.values["contactPoint"].([]*Object)
	if index < 0 || index >= len(contacts) {
		b.reject("contactPoint.availableLanguage", "contact index out of range")
		return
	}

	contacts[index].appendString("availableLanguage", tag)
}

// AddSameAs appends a profile URL to sameAs.
func (b *LocalBusiness) AddSameAs(rawURL string) {
	rawURL = ValidURL(rawURL)
	if rawURL == "" {
		b.reject("sameAs", "invalid url")
		return
	}

	b.data.appendString("sameAs", rawURL)
}

// AddOpeningHours appends an opening hours specification to location and
// returns its index, or -1 when weekdays is not 7 flags long or a time does
// not parse. Flags map to Monday..Sunday. Do not combine with SetOpeningHours.
func (b *LocalBusiness) AddOpeningHours(weekdays []bool, opens, closes string) int {
	opens = ValidClockTime(opens)
	closes = ValidClockTime(closes)
	if len(weekdays) != len(weekdayNames) || opens == "" || closes == "" {
		b.reject("openingHoursSpecification", "need 7 weekday flags and valid times")
		return -1
	}

	days := make([]string, 0, len(weekdayNames))
	for i, open := range weekdays {
		if open {
			days = append(days, weekdayNames[i])
		}
	}

	spec := newTypedObject("OpeningHoursSpecification")
	spec.Set("dayOfWeek", days)
	spec.Set("opens", opens)
	spec.Set("closes", closes)
	return b.place().appendObject("openingHoursSpecification", spec)
}

// AddDepartment appends a copy of department's properties to department.
//
// The department should be a child document with its own @id set through
// SetURL; this is not checked.
func (b *LocalBusiness) AddDepartment(department *LocalBusiness) {
	if department == nil || department.Document == nil {
		return
	}

	b.data.appendObject("department", department.Object().Clone())
}
