// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package decode

import (
	"encoding/json"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/danielhkuo/railapi/models"
)

// embeddedData matches `data = {...};` lazily, so the body ends at the first
// "};". A literal "};" inside a JSON string cuts the body short.
var embeddedData = regexp.MustCompile(`(?s)data\s*=\s*(\{.*?\});`)

// ExtractEmbeddedJSON wraps ParseEmbeddedJSON in an envelope
func ExtractEmbeddedJSON(html string) (env models.Envelope) {
	defer recoverInto("embedded json", &env)
	data, err := ParseEmbeddedJSON(html)
	return models.Result(data, err)
}

// ParseEmbeddedJSON finds the `data = {...};` assignment in a page script and
// returns its value untouched. Numbers are kept as json.Number so they
// re-encode exactly as the page wrote them.
func ParseEmbeddedJSON(html string) (models.PnrRecord, error) {
	m := embeddedData.FindStringSubmatch(html)
	if m == nil {
		return nil, ErrEmbeddedNotFound
	}

	dec := json.NewDecoder(strings.NewReader(m[1]))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		slog.Warn("embedded data is not valid JSON", "error", err)
		return nil, ErrEmbeddedInvalid
	}
	if _, err := dec.Token(); err != io.EOF {
		slog.Warn("embedded data has trailing content")
		return nil, ErrEmbeddedInvalid
	}
	return data, nil
}
