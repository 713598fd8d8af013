// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"
)

const (
	// defaultPageTitle is used when caller does not provide page title.
	defaultPageTitle = "JSON-LD preview"
	// defaultPageTemplateName is used when caller does not provide template name.
	defaultPageTemplateName = pageTemplatePreviewName
)

const (
	pageTemplatePreviewName = "preview"
	pageTemplateMinimalName = "minimal"
)

// templateFS stores built-in page templates embedded into the package.
//
//go:embed templates/*.html.gotmpl
var templateFS embed.FS

// builtInPageTemplateFiles maps template aliases to embedded file paths.
var builtInPageTemplateFiles = map[string]string{
	pageTemplatePreviewName: "templates/preview.html.gotmpl",
	pageTemplateMinimalName: "templates/minimal.html.gotmpl",
}

// PageOptions configures RenderPage.
type PageOptions struct {
	// Title is the page title.
	Title string
	// TemplateName selects a built-in template ("preview" or "minimal").
	TemplateName string
	// TemplateText overrides built-in templates with custom html/template text.
	TemplateText string
}

// pageView is the root view model passed to page templates.
type pageView struct {
	Title     string
	Documents []pageDocumentView
}

// pageDocumentView represents one embedded document.
type pageDocumentView struct {
	Type    string
	JSON    string
	HeadTag template.HTML
	Rows    int
}

// RenderPage renders an HTML page with each root document's script tag in the head.
func RenderPage(docs []*Document, opt PageOptions) (string, error) {
	pageTemplate, err := resolvePageTemplate(opt)
	if err != nil {
		return "", err
	}

	view := pageView{Title: strings.TrimSpace(opt.Title)}
	if view.Title == "" {
		view.Title = defaultPageTitle
	}

	for _, doc := range docs {
		if doc == nil {
			continue
		}

		pretty := doc.JSON(true)
		view.Documents = append(view.Documents, pageDocumentView{
			Type: doc.Object().Text("@type"),
			JSON: pretty,
			//nolint:gosec // head tag is produced by the JSON encoder with HTML escaping enabled.
			HeadTag: template.HTML(doc.HTMLHeadTag(false)),
			Rows:    strings.Count(pretty, "\n") + 2,
		})
	}

	var out strings.Builder
	if err := pageTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutePageTemplate, err)
	}

	return out.String(), nil
}

// BuiltinPageTemplateNames returns all available built-in page template names.
func BuiltinPageTemplateNames() []string {
	names := make([]string, 0, len(builtInPageTemplateFiles))
	for name := range builtInPageTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinPageTemplate returns one built-in page template by name.
func BuiltinPageTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInPageTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownPageTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadPageTemplate, err)
	}

	return string(data), nil
}

// resolvePageTemplate resolves either custom or built-in template text into a parsed template.
func resolvePageTemplate(opt PageOptions) (*template.Template, error) {
	templateText := strings.TrimSpace(opt.TemplateText)
	templateName := "custom"
	if templateText == "" {
		templateName = normalizeTemplateName(opt.TemplateName)
		if templateName == "" {
			templateName = defaultPageTemplateName
		}

		text, err := BuiltinPageTemplate(templateName)
		if err != nil {
			return nil, err
		}

		templateText = text
	}

	parsed, err := template.New(templateName).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParsePageTemplate, templateName, err)
	}

	return parsed, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
