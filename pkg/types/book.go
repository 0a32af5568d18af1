// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// WorkRef is an opaque handle to a work in the library domain model. The
// search core constructs it from catalog payloads and never mutates it.
type WorkRef struct {
	title    string
	authors  []string
	language string
	year     int
	tags     []string
}

// NewWork builds a work handle from catalog metadata.
func NewWork(title string, authorNames []string, language string, year int, tags []string) WorkRef {
	return WorkRef{
		title:    title,
		authors:  append([]string(nil), authorNames...),
		language: language,
		year:     year,
		tags:     append([]string(nil), tags...),
	}
}

// Title returns the work's display title.
func (w WorkRef) Title() string { return w.title }

// AuthorNames returns the author display names in catalog order.
func (w WorkRef) AuthorNames() []string { return w.authors }

// Language returns the catalog language code (e.g. "en").
func (w WorkRef) Language() string { return w.language }

// Year returns the first publication year, or 0 when unknown.
func (w WorkRef) Year() int { return w.year }

// Tags returns the catalog category labels.
func (w WorkRef) Tags() []string { return w.tags }

// EditionRef is an opaque handle to a concrete edition of a work.
type EditionRef struct {
	isbn      string
	publisher string
	date      string
	pageCount int
	format    string
	coverURL  string
}

// NewEdition builds an edition handle from catalog metadata.
func NewEdition(isbn, publisher, date string, pageCount int, format, coverURL string) EditionRef {
	return EditionRef{
		isbn:      isbn,
		publisher: publisher,
		date:      date,
		pageCount: pageCount,
		format:    format,
		coverURL:  coverURL,
	}
}

// ISBN returns the edition's ISBN-13 or ISBN-10, whichever the catalog supplied.
func (e EditionRef) ISBN() string { return e.isbn }

// Publisher returns the publisher name.
func (e EditionRef) Publisher() string { return e.publisher }

// PublishDate returns the publication date string as the catalog gave it.
func (e EditionRef) PublishDate() string { return e.date }

// PageCount returns the page count, or 0 when unknown.
func (e EditionRef) PageCount() int { return e.pageCount }

// Format returns the edition format label (e.g. "paperback").
func (e EditionRef) Format() string { return e.format }

// CoverURL returns the cover image URL.
func (e EditionRef) CoverURL() string { return e.coverURL }

// AuthorRef is an opaque handle to an author in the library domain model.
type AuthorRef struct {
	name string
}

// NewAuthor builds an author handle from a display name.
func NewAuthor(name string) AuthorRef { return AuthorRef{name: name} }

// Name returns the author's display name.
func (a AuthorRef) Name() string { return a.name }

// SearchResultItem is one catalog search hit in provider-agnostic form.
// Both the legacy and the enhanced catalog schemas decode into this shape.
type SearchResultItem struct {
	// Work is the opaque work handle built from the payload.
	Work WorkRef

	// Editions lists the edition handles the payload described.
	Editions []EditionRef

	// Authors lists the author handles in catalog order.
	Authors []AuthorRef

	// RelevanceScore is a value between 0.0 and 1.0 derived from result position.
	RelevanceScore float64

	// Provider identifies which upstream catalog served the result.
	Provider string
}

// AuthorDisplay returns the joined author names, used by scope filtering
// and table rendering.
func (r SearchResultItem) AuthorDisplay() string {
	names := make([]string, 0, len(r.Authors))
	for _, a := range r.Authors {
		names = append(names, a.Name())
	}
	return strings.Join(names, ", ")
}
