// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"fmt"
	"math"
	"strings"
)

// EventStatus is schema.org EventStatusType.
type EventStatus int

const (
	// StatusScheduled is the default status.
	StatusScheduled EventStatus = iota
	// StatusCancelled marks a cancelled event.
	StatusCancelled
	// StatusMovedOnline marks an event moved online.
	StatusMovedOnline
	// StatusPostponed marks an event postponed to an unknown date.
	StatusPostponed
	// StatusRescheduled marks an event moved to a new date.
	StatusRescheduled
)

var eventStatusTokens = [...]string{
	StatusScheduled:   "EventScheduled",
	StatusCancelled:   "EventCancelled",
	StatusMovedOnline: "EventMovedOnline",
	StatusPostponed:   "EventPostponed",
	StatusRescheduled: "EventRescheduled",
}

// Valid reports whether s is a known status.
func (s EventStatus) Valid() bool {
	return s >= 0 && int(s) < len(eventStatusTokens)
}

// String returns schema.org member name.
func (s EventStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("EventStatus(%d)", int(s))
	}

	return eventStatusTokens[s]
}

// URI returns schema.org member URI.
func (s EventStatus) URI() string {
	return schemaBaseURI + s.String()
}

// ParseEventStatus accepts member names with or without "Event" prefix, case-insensitive.
func ParseEventStatus(token string) (EventStatus, bool) {
	idx, ok := lookupToken(eventStatusTokens[:], token, "Event")
	return EventStatus(idx), ok
}

// AttendanceMode is schema.org EventAttendanceModeEnumeration.
type AttendanceMode int

const (
	// AttendanceOffline is the default mode for physical events.
	AttendanceOffline AttendanceMode = iota
	// AttendanceOnline is set for virtual-only events.
	AttendanceOnline
	// AttendanceMixed is set for events with physical and virtual locations.
	AttendanceMixed
)

var attendanceModeTokens = [...]string{
	AttendanceOffline: "OfflineEventAttendanceMode",
	AttendanceOnline:  "OnlineEventAttendanceMode",
	AttendanceMixed:   "MixedEventAttendanceMode",
}

// String returns schema.org member name.
func (m AttendanceMode) String() string {
	if m < 0 || int(m) >= len(attendanceModeTokens) {
		return fmt.Sprintf("AttendanceMode(%d)", int(m))
	}

	return attendanceModeTokens[m]
}

// URI returns schema.org member URI.
func (m AttendanceMode) URI() string {
	return schemaBaseURI + m.String()
}

// Availability is schema.org ItemAvailability for ticket offers.
type Availability int

const (
	// AvailabilityInStock means tickets are available.
	AvailabilityInStock Availability = iota
	// AvailabilitySoldOut means no tickets left.
	AvailabilitySoldOut
	// AvailabilityPreOrder means tickets can be pre-ordered.
	AvailabilityPreOrder
)

var availabilityTokens = [...]string{
	AvailabilityInStock:  "InStock",
	AvailabilitySoldOut:  "SoldOut",
	AvailabilityPreOrder: "PreOrder",
}

// Valid reports whether a is a known availability.
func (a Availability) Valid() bool {
	return a >= 0 && int(a) < len(availabilityTokens)
}

// String returns schema.org member name.
func (a Availability) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Availability(%d)", int(a))
	}

	return availabilityTokens[a]
}

// URI returns schema.org member URI.
func (a Availability) URI() string {
	return schemaBaseURI + a.String()
}

// ParseAvailability accepts member names case-insensitively.
func ParseAvailability(token string) (Availability, bool) {
	idx, ok := lookupToken(availabilityTokens[:], token, "")
	return Availability(idx), ok
}

// ActorType is the @type of organizers and performers.
type ActorType int

const (
	// ActorPerformingGroup is a band, ensemble or troupe.
	ActorPerformingGroup ActorType = iota
	// ActorPerson is a single person.
	ActorPerson
	// ActorOrganization is an organization.
	ActorOrganization
)

var actorTypeTokens = [...]string{
	ActorPerformingGroup: "PerformingGroup",
	ActorPerson:          "Person",
	ActorOrganization:    "Organization",
}

// Valid reports whether t is a known actor type.
func (t ActorType) Valid() bool {
	return t >= 0 && int(t) < len(actorTypeTokens)
}

// String returns schema.org type name.
func (t ActorType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ActorType(%d)", int(t))
	}

	return actorTypeTokens[t]
}

// ParseActorType accepts type names case-insensitively.
func ParseActorType(token string) (ActorType, bool) {
	idx, ok := lookupToken(actorTypeTokens[:], token, "")
	return ActorType(idx), ok
}

// lookupToken finds token in names ignoring case and an optional name prefix.
func lookupToken(names []string, token, prefix string) (int, bool) {
	token = strings.TrimSpace(token)
	for i, name := range names {
		if strings.EqualFold(name, token) {
			return i, true
		}

		if prefix != "" && strings.EqualFold(strings.TrimPrefix(name, prefix), token) {
			return i, true
		}
	}

	return -1, false
}

// Offer is a ticket offer for an event.
type Offer struct {
	// ValidFrom accepts the inputs of ValidDateIn; nil skips it.
	ValidFrom    any
	Name         string
	Currency     string
	URL          string
	Price        float64
	Availability Availability
}

// Event is a schema.org Event document.
type Event struct {
	*Document
}

// NewEvent returns an offline, scheduled event document.
func NewEvent(opts ...Option) *Event {
	event := &Event{Document: New(KindEvent, "Event", false, opts...)}
	event.data.Set("eventAttendanceMode", AttendanceOffline.URI())
	event.data.Set("eventStatus", StatusScheduled.URI())
	return event
}

// SetInfo sets name, start and optional end; an empty name makes the call a no-op.
func (e *Event) SetInfo(name string, start, end any) {
	name = ValidText(name)
	if name == "" {
		e.reject("name", "empty name")
		return
	}

	e.data.Set("name", name)
	e.setDate("startDate", start)
	e.setDate("endDate", end)
}

// SetAddress nests a postal address under location.address.
func (e *Event) SetAddress(street, postcode, city, region, country string) {
	e.place().Set("address", buildAddress(street, postcode, city, region, country))
}

// SetVirtualLocation sets the online location of the event.
//
// Without a physical location the event becomes online-only. With a physical
// location already set, location becomes [virtual, physical] and the mode mixed.
// The physical location must be set first; a later SetLocation/SetAddress does
// not produce the mixed form.
func (e *Event) SetVirtualLocation(rawURL string) {
	rawURL = ValidURL(rawURL)
	if rawURL == "" {
		e.reject("location", "invalid virtual location url")
		return
	}

	virtual := newTypedObject("VirtualLocation")
	virtual.Set("url", rawURL)

	if cell, ok := e.locationCell(); ok {
		e.data.Set("location", ManyCell(virtual, cell.Last()))
		e.data.Set("eventAttendanceMode", AttendanceMixed.URI())
		return
	}

	e.data.Set("location", SingleCell(virtual))
	e.data.Set("eventAttendanceMode", AttendanceOnline.URI())
}

// SetStatus sets event status. previousStart is recorded only for StatusRescheduled.
func (e *Event) SetStatus(status EventStatus, previousStart any) {
	if !status.Valid() {
		e.reject("eventStatus", "unknown status")
		return
	}

	e.data.Set("eventStatus", status.URI())
	if status == StatusRescheduled {
		e.setDate("previousStartDate", previousStart)
	}
}

// AddOffer appends a ticket offer; offers with unknown availability are dropped.
func (e *Event) AddOffer(offer Offer) {
	if !offer.Availability.Valid() {
		e.reject("offers", "unknown availability")
		return
	}

	item := newTypedObject("Offer")
	setNonEmpty(item, "name", ValidText(offer.Name))
	if offer.Price > 0 && !math.IsInf(offer.Price, 0) {
		item.Set("price", offer.Price)
	}

	setNonEmpty(item, "priceCurrency", strings.ToUpper(ValidText(offer.Currency)))
	if offer.ValidFrom != nil {
		setNonEmpty(item, "validFrom", e.validDate(offer.ValidFrom))
	}

	item.Set("availability", offer.Availability.URI())
	setNonEmpty(item, "url", ValidURL(offer.URL))
	e.data.appendObject("offers", item)
}

// SetOrganizer sets the organizer; repeated calls update the existing object.
func (e *Event) SetOrganizer(name, rawURL string, actor ActorType) {
	name = ValidText(name)
	if name == "" || !actor.Valid() {
		e.reject("organizer", "empty name or unknown type")
		return
	}

	organizer := e.data.childObject("organizer", actor.String())
	organizer.Set("name", name)
	setNonEmpty(organizer, "url", ValidURL(rawURL))
}

// AddPerformer appends a performer.
func (e *Event) AddPerformer(name, rawURL string, actor ActorType) {
	name = ValidText(name)
	if name == "" || !actor.Valid() {
		e.reject("performer", "empty name or unknown type")
		return
	}

	performer := newTypedObject(actor.String())
	performer.Set("name", name)
	setNonEmpty(performer, "url", ValidURL(rawURL))
	e.data.appendObject("performer", performer)
}
