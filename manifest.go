// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is a declarative YAML/JSON description of one document.
type Manifest struct {
	Location    *LocationManifest `yaml:"location,omitempty"`
	Article     *ArticleManifest  `yaml:"article,omitempty"`
	Event       *EventManifest    `yaml:"event,omitempty"`
	Business    *BusinessManifest `yaml:"business,omitempty"`
	Kind        string            `yaml:"kind"`
	Type        string            `yaml:"type,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Images      []string          `yaml:"images,omitempty"`
	Properties  []PropertyEntry   `yaml:"properties,omitempty"`
}

// LocationManifest describes a Place.
type LocationManifest struct {
	Latitude  any    `yaml:"latitude,omitempty"`
	Longitude any    `yaml:"longitude,omitempty"`
	Name      string `yaml:"name,omitempty"`
	Map       string `yaml:"map,omitempty"`
}

// AddressManifest describes a PostalAddress.
type AddressManifest struct {
	Street   string `yaml:"street,omitempty"`
	Postcode string `yaml:"postcode,omitempty"`
	City     string `yaml:"city,omitempty"`
	Region   string `yaml:"region,omitempty"`
	Country  string `yaml:"country,omitempty"`
}

// PropertyEntry sets one generic property with validation "text", "date", "time", "email" or "url".
type PropertyEntry struct {
	Name       string `yaml:"name"`
	Value      string `yaml:"value"`
	Validation string `yaml:"validation,omitempty"`
}

// ArticleManifest holds article specific fields.
type ArticleManifest struct {
	Publisher   *PartyManifest `yaml:"publisher,omitempty"`
	Headline    string         `yaml:"headline"`
	Description string         `yaml:"description,omitempty"`
	Published   string         `yaml:"published,omitempty"`
	Modified    string         `yaml:"modified,omitempty"`
	Author      string         `yaml:"author,omitempty"`
	Logo        string         `yaml:"logo,omitempty"`
}

// PartyManifest is a name with optional contact data.
type PartyManifest struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
	Phone string `yaml:"phone,omitempty"`
}

// EventManifest holds event specific fields.
type EventManifest struct {
	Address         *AddressManifest `yaml:"address,omitempty"`
	Organizer       *ActorManifest   `yaml:"organizer,omitempty"`
	Name            string           `yaml:"name"`
	Start           string           `yaml:"start,omitempty"`
	End             string           `yaml:"end,omitempty"`
	VirtualLocation string           `yaml:"virtualLocation,omitempty"`
	Status          string           `yaml:"status,omitempty"`
	PreviousStart   string           `yaml:"previousStart,omitempty"`
	Offers          []OfferManifest  `yaml:"offers,omitempty"`
	Performers      []ActorManifest  `yaml:"performers,omitempty"`
}

// OfferManifest describes a ticket offer.
type OfferManifest struct {
	Name         string  `yaml:"name,omitempty"`
	Currency     string  `yaml:"currency,omitempty"`
	Availability string  `yaml:"availability,omitempty"`
	ValidFrom    string  `yaml:"validFrom,omitempty"`
	URL          string  `yaml:"url,omitempty"`
	Price        float64 `yaml:"price,omitempty"`
}

// ActorManifest describes an organizer or performer.
type ActorManifest struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url,omitempty"`
	Type string `yaml:"type,omitempty"`
}

// BusinessManifest holds local business specific fields.
type BusinessManifest struct {
	Info         *PartyManifest         `yaml:"info,omitempty"`
	Address      *AddressManifest       `yaml:"address,omitempty"`
	URL          string                 `yaml:"url,omitempty"`
	ID           string                 `yaml:"id,omitempty"`
	Logo         string                 `yaml:"logo,omitempty"`
	PriceRange   string                 `yaml:"priceRange,omitempty"`
	Cuisine      string                 `yaml:"servesCuisine,omitempty"`
	OpeningHours string                 `yaml:"openingHours,omitempty"`
	Languages    []string               `yaml:"languages,omitempty"`
	SameAs       []string               `yaml:"sameAs,omitempty"`
	Contacts     []ContactManifest      `yaml:"contacts,omitempty"`
	Hours        []OpeningHoursManifest `yaml:"openingHoursSpecification,omitempty"`
	Departments  []Manifest             `yaml:"departments,omitempty"`
}

// ContactManifest describes a contact point.
type ContactManifest struct {
	Type      string   `yaml:"type"`
	Email     string   `yaml:"email,omitempty"`
	Phone     string   `yaml:"phone,omitempty"`
	Languages []string `yaml:"languages,omitempty"`
}

// OpeningHoursManifest describes one opening hours specification.
type OpeningHoursManifest struct {
	Opens  string `yaml:"opens"`
	Closes string `yaml:"closes"`
	Days   []bool `yaml:"days"`
}

// LoadManifestFile reads and decodes a manifest file.
func LoadManifestFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %w", ErrReadManifestFile, err)
	}

	return ParseManifest(data)
}

// ParseManifest decodes YAML or JSON manifest bytes. Unknown fields are rejected.
func ParseManifest(data []byte) (Manifest, error) {
	var manifest Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil {
		return Manifest{}, fmt.Errorf("%w: %w", ErrDecodeManifest, err)
	}

	return manifest, nil
}

// Build constructs the described document.
func (m Manifest) Build(opts ...Option) (*Document, error) {
	switch normalizeKind(m.Kind) {
	case KindArticle.String():
		article, err := m.buildArticle(opts)
		if err != nil {
			return nil, err
		}

		return article.Document, nil
	case KindEvent.String():
		event, err := m.buildEvent(opts)
		if err != nil {
			return nil, err
		}

		return event.Document, nil
	case KindLocalBusiness.String():
		business, err := m.buildBusiness(false, opts)
		if err != nil {
			return nil, err
		}

		return business.Document, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownDocumentKind, m.Kind)
	}
}

// LanguageTags returns every language tag the manifest declares, departments included.
func (m Manifest) LanguageTags() []string {
	if m.Business == nil {
		return nil
	}

	tags := append([]string(nil), m.Business.Languages...)
	for _, contact := range m.Business.Contacts {
		tags = append(tags, contact.Languages...)
	}

	for _, department := range m.Business.Departments {
		tags = append(tags, department.LanguageTags()...)
	}

	return tags
}

// normalizeKind maps manifest kind aliases to DocumentKind names.
func normalizeKind(kind string) string {
	switch kind = strings.ToLower(strings.TrimSpace(kind)); kind {
	case "localbusiness", "organization":
		return KindLocalBusiness.String()
	default:
		return kind
	}
}

// applyCommon sets base properties. Physical location goes before any
// kind-specific virtual location.
func (m Manifest) applyCommon(d *Document) error {
	setNonEmptyDescription(d, m.Description)
	for _, ref := range m.Images {
		d.AddImage(ref)
	}

	if m.Location != nil {
		d.SetLocation(m.Location.Name, m.Location.Latitude, m.Location.Longitude, m.Location.Map)
	}

	for _, property := range m.Properties {
		validation, err := parseValidation(property.Validation)
		if err != nil {
			return err
		}

		d.SetProperty(property.Name, property.Value, validation)
	}

	return nil
}

func setNonEmptyDescription(d *Document, description string) {
	if description != "" {
		d.SetDescription(description)
	}
}

func (m Manifest) buildArticle(opts []Option) (*Article, error) {
	article := NewArticle(m.Type, opts...)
	if err := m.applyCommon(article.Document); err != nil {
		return nil, err
	}

	spec := m.Article
	if spec == nil {
		return article, nil
	}

	article.SetInfo(spec.Headline, spec.Description, optionalDate(spec.Published), optionalDate(spec.Modified))
	if spec.Publisher != nil {
		article.SetPublisher(spec.Publisher.Name, spec.Publisher.Email, spec.Publisher.Phone)
	}

	if spec.Logo != "" {
		article.SetLogo(spec.Logo)
	}

	if spec.Author != "" {
		article.SetAuthor(spec.Author)
	}

	return article, nil
}

func (m Manifest) buildEvent(opts []Option) (*Event, error) {
	event := NewEvent(opts...)
	if err := m.applyCommon(event.Document); err != nil {
		return nil, err
	}

	spec := m.Event
	if spec == nil {
		return event, nil
	}

	event.SetInfo(spec.Name, optionalDate(spec.Start), optionalDate(spec.End))
	if spec.Address != nil {
		a := spec.Address
		event.SetAddress(a.Street, a.Postcode, a.City, a.Region, a.Country)
	}

	if spec.VirtualLocation != "" {
		event.SetVirtualLocation(spec.VirtualLocation)
	}

	if spec.Status != "" {
		status, ok := ParseEventStatus(spec.Status)
		if !ok {
			return nil, fmt.Errorf("%w: event status %q", ErrInvalidManifestValue, spec.Status)
		}

		event.SetStatus(status, optionalDate(spec.PreviousStart))
	}

	for _, offer := range spec.Offers {
		availability := AvailabilityInStock
		if offer.Availability != "" {
			parsed, ok := ParseAvailability(offer.Availability)
			if !ok {
				return nil, fmt.Errorf("%w: offer availability %q", ErrInvalidManifestValue, offer.Availability)
			}

			availability = parsed
		}

		event.AddOffer(Offer{
			Name:         offer.Name,
			Price:        offer.Price,
			Currency:     offer.Currency,
			Availability: availability,
			ValidFrom:    optionalDate(offer.ValidFrom),
			URL:          offer.URL,
		})
	}

	if spec.Organizer != nil {
		actor, err := parseActor(spec.Organizer.Type, ActorOrganization)
		if err != nil {
			return nil, err
		}

		event.SetOrganizer(spec.Organizer.Name, spec.Organizer.URL, actor)
	}

	for _, performer := range spec.Performers {
		actor, err := parseActor(performer.Type, ActorPerformingGroup)
		if err != nil {
			return nil, err
		}

		event.AddPerformer(performer.Name, performer.URL, actor)
	}

	return event, nil
}

func (m Manifest) buildBusiness(isChild bool, opts []Option) (*LocalBusiness, error) {
	business := NewLocalBusiness(m.Type, isChild, opts...)
	spec := m.Business
	if spec != nil && spec.URL != "" {
		business.SetURL(spec.URL, spec.ID)
	}

	if spec != nil && spec.Info != nil {
		business.SetInfo(spec.Info.Name, spec.Info.Email, spec.Info.Phone)
	}

	if err := m.applyCommon(business.Document); err != nil {
		return nil, err
	}

	if spec == nil {
		return business, nil
	}

	if spec.Address != nil {
		a := spec.Address
		business.SetAddress(a.Street, a.Postcode, a.City, a.Region, a.Country)
	}

	if spec.Logo != "" {
		business.SetLogo(spec.Logo)
	}

	if spec.PriceRange != "" {
		business.SetPriceRange(spec.PriceRange)
	}

	if spec.Cuisine != "" {
		business.SetServesCuisine(spec.Cuisine)
	}

	if spec.OpeningHours != "" {
		business.SetOpeningHours(spec.OpeningHours)
	}

	for _, tag := range spec.Languages {
		business.AddLanguage(tag)
	}

	for _, contact := range spec.Contacts {
		index := business.AddContact(contact.Type, contact.Email, contact.Phone)
		for _, tag := range contact.Languages {
			business.AddContactLanguage(index, tag)
		}
	}

	for _, rawURL := range spec.SameAs {
		business.AddSameAs(rawURL)
	}

	for _, hours := range spec.Hours {
		business.AddOpeningHours(hours.Days, hours.Opens, hours.Closes)
	}

	for i, department := range spec.Departments {
		child, err := department.buildBusiness(true, opts)
		if err != nil {
			return nil, fmt.Errorf("department %d: %w", i, err)
		}

		business.AddDepartment(child)
	}

	return business, nil
}

// parseValidation maps manifest validation names to Validation.
func parseValidation(name string) (Validation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "string":
		return ValidateText, nil
	case "date":
		return ValidateDate, nil
	case "time":
		return ValidateTime, nil
	case "email":
		return ValidateEmail, nil
	case "url":
		return ValidateURL, nil
	default:
		return ValidateText, fmt.Errorf("%w: validation %q", ErrInvalidManifestValue, name)
	}
}

// parseActor maps an actor token, using fallback when empty.
func parseActor(token string, fallback ActorType) (ActorType, error) {
	if strings.TrimSpace(token) == "" {
		return fallback, nil
	}

	actor, ok := ParseActorType(token)
	if !ok {
		return fallback, fmt.Errorf("%w: actor type %q", ErrInvalidManifestValue, token)
	}

	return actor, nil
}

// optionalDate turns an empty manifest date into nil.
func optionalDate(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	return value
}
