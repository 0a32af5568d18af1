// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"strconv"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// formatEnhanced marks the envelope shape that carries explicit work/edition
// cross-references. Anything else, including an absent format, decodes as
// the legacy flat schema.
const formatEnhanced = "enhanced_work_edition_v1"

// envelope is the catalog response wrapper. Items are kept raw so the item
// schema can be selected after reading the format field.
type envelope struct {
	Items      []json.RawMessage `json:"items"`
	Format     string            `json:"format"`
	TotalItems int               `json:"totalItems"`
	Provider   string            `json:"provider"`
	Cached     bool              `json:"cached"`
}

// catalogItem covers both payload shapes. Legacy items populate only
// VolumeInfo; enhanced items additionally carry Work and Edition.
type catalogItem struct {
	ID         string       `json:"id"`
	VolumeInfo volumeInfo   `json:"volumeInfo"`
	Work       *workXref    `json:"work,omitempty"`
	Edition    *editionInfo `json:"edition,omitempty"`
}

type volumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	PublishedDate       string               `json:"publishedDate"`
	Publisher           string               `json:"publisher"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
	PageCount           int                  `json:"pageCount"`
	Categories          []string             `json:"categories"`
	ImageLinks          imageLinks           `json:"imageLinks"`
	Language            string               `json:"language"`
}

type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type imageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}

type workXref struct {
	WorkID     string   `json:"workId"`
	EditionIDs []string `json:"editionIds"`
	AuthorIDs  []string `json:"authorIds"`
}

type editionInfo struct {
	ISBN13      string `json:"isbn13"`
	ISBN10      string `json:"isbn10"`
	Publisher   string `json:"publisher"`
	PublishDate string `json:"publishDate"`
	PageCount   int    `json:"pageCount"`
	Format      string `json:"format"`
	CoverURL    string `json:"coverUrl"`
}

// decodeItems converts raw envelope items into provider-agnostic results.
// Position-based relevance: the catalog returns items sorted by relevance,
// so the first item scores 1.0 and the last 0.1.
func decodeItems(env envelope, provider string) ([]types.SearchResultItem, error) {
	total := len(env.Items)
	results := make([]types.SearchResultItem, 0, total)
	for i, raw := range env.Items {
		var item catalogItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, newError(KindDecoding, err)
		}

		var r types.SearchResultItem
		if env.Format == formatEnhanced {
			r = convertEnhanced(item)
		} else {
			r = convertLegacy(item)
		}

		if total > 1 {
			r.RelevanceScore = 1.0 - float64(i)/float64(total-1)*0.9
		} else {
			r.RelevanceScore = 1.0
		}
		r.Provider = provider
		results = append(results, r)
	}
	return results, nil
}

// convertLegacy maps the flat volumeInfo schema. The single edition is
// synthesized from the volume-level identifier and physical metadata.
func convertLegacy(item catalogItem) types.SearchResultItem {
	vi := item.VolumeInfo
	r := types.SearchResultItem{
		Work: types.NewWork(vi.Title, vi.Authors, vi.Language, yearOf(vi.PublishedDate), vi.Categories),
	}
	for _, name := range vi.Authors {
		r.Authors = append(r.Authors, types.NewAuthor(name))
	}

	isbn := pickISBN(vi.IndustryIdentifiers)
	if isbn != "" || vi.Publisher != "" || vi.PageCount > 0 {
		r.Editions = append(r.Editions, types.NewEdition(
			isbn, vi.Publisher, vi.PublishedDate, vi.PageCount, "", vi.ImageLinks.Thumbnail))
	}
	return r
}

// convertEnhanced maps the enhanced schema. The explicit edition object is
// authoritative; volumeInfo still supplies the work-level metadata. The
// cross-reference identifiers are validated by decoding but carry no
// metadata of their own, so they do not survive into the unified shape.
func convertEnhanced(item catalogItem) types.SearchResultItem {
	r := convertLegacy(item)
	if item.Edition == nil {
		return r
	}

	ed := item.Edition
	isbn := ed.ISBN13
	if isbn == "" {
		isbn = ed.ISBN10
	}
	r.Editions = []types.EditionRef{types.NewEdition(
		isbn, ed.Publisher, ed.PublishDate, ed.PageCount, ed.Format, ed.CoverURL)}
	return r
}

// pickISBN prefers ISBN-13 over ISBN-10 among the volume identifiers.
func pickISBN(ids []industryIdentifier) string {
	var isbn10 string
	for _, id := range ids {
		switch id.Type {
		case "ISBN_13":
			return id.Identifier
		case "ISBN_10":
			isbn10 = id.Identifier
		}
	}
	return isbn10
}

// yearOf extracts the year from a catalog date string ("2015", "2015-02",
// "2015-02-10"). Returns 0 when the prefix is not a year.
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
