// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decode

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/danielhkuo/railapi/models"
)

// Selectors and glyphs of the station-live page
const (
	liveNameSelector  = ".name"
	liveRouteSelector = "div"
	liveCellSelector  = "td"
	liveArrow         = "→"

	// train number and time prefixes are both five characters wide
	livePrefixLen = 5
)

// ScrapeLiveStationHTML parses page and scrapes it. A page that cannot be
// parsed is a failure; a page without train rows is an empty success.
func ScrapeLiveStationHTML(page io.Reader) (env models.Envelope) {
	defer recoverInto("station live", &env)
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return models.Failure(fmt.Sprintf("an error occurred during HTML parsing: %v", err))
	}
	return ScrapeLiveStation(doc)
}

// ScrapeLiveStation wraps ParseLiveStation in an envelope
func ScrapeLiveStation(doc *goquery.Document) (env models.Envelope) {
	defer recoverInto("station live", &env)
	entries, err := ParseLiveStation(doc)
	return models.Result(entries, err)
}

// ParseLiveStation extracts one entry per ".name" node, in document order.
// Missing sibling or ancestor cells leave the matching fields empty.
func ParseLiveStation(doc *goquery.Document) ([]models.LiveStationEntry, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}

	entries := []models.LiveStationEntry{}
	doc.Find(liveNameSelector).Each(func(_ int, name *goquery.Selection) {
		var entry models.LiveStationEntry
		entry.TrainNo, entry.TrainName = splitRunes(strings.TrimSpace(name.Text()), livePrefixLen)

		if route := name.NextAllFiltered(liveRouteSelector).First(); route.Length() > 0 {
			// only the first two legs count; later arrows are ignored
			parts := strings.Split(route.Text(), liveArrow)
			entry.SourceStnName = strings.TrimSpace(parts[0])
			if len(parts) > 1 {
				entry.DstnStnName = strings.TrimSpace(parts[1])
			}
		}

		if cell := name.ParentsFiltered(liveCellSelector).First(); cell.Length() > 0 {
			if status := cell.NextAllFiltered(liveCellSelector).First(); status.Length() > 0 {
				entry.TimeAt, entry.Detail = splitRunes(strings.TrimSpace(status.Text()), livePrefixLen)
			}
		}

		entries = append(entries, entry)
	})

	return entries, nil
}
