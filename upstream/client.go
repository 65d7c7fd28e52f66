// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/url"

	"github.com/dustin/go-humanize"
	resty "gopkg.in/resty.v1"

	"github.com/danielhkuo/railapi/cliparse"
)

// Paths on the erail site
const (
	trainsPath      = "/rail/getTrains.aspx"
	routePath       = "/data.aspx"
	stationLivePath = "/station-live/"
	pnrStatusPath   = "/pnr-status/"
)

// userAgents is rotated when no fixed User-Agent is configured
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.0.0",
}

// erailQuery is sent with every erail request
var erailQuery = map[string]string{
	"DataSource": "0",
	"Language":   "0",
	"Cache":      "true",
}

// Client fetches raw pages from erail and the PNR status site.
// It returns bodies untouched; decoding is up to the caller.
type Client struct {
	erail     *resty.Client
	pnr       *resty.Client
	userAgent string
}

func NewClient(cfg cliparse.Config) *Client {
	return &Client{
		erail:     resty.New().SetHostURL(cfg.ErailBaseURL).SetTimeout(cfg.UpstreamTimeout),
		pnr:       resty.New().SetHostURL(cfg.PNRBaseURL).SetTimeout(cfg.PNRTimeout),
		userAgent: cfg.UserAgent,
	}
}

// TrainsBetween fetches the listing of trains between two station codes
func (c *Client) TrainsBetween(ctx context.Context, from, to string) (string, error) {
	return c.get(ctx, c.erail, trainsPath, withErail(map[string]string{
		"Station_From": from,
		"Station_To":   to,
	}))
}

// Train fetches the single-train lookup for a train number
func (c *Client) Train(ctx context.Context, trainNo string) (string, error) {
	return c.get(ctx, c.erail, trainsPath, withErail(map[string]string{
		"TrainNo": trainNo,
	}))
}

// Route fetches the stop list for a train_id taken from a Train lookup
func (c *Client) Route(ctx context.Context, trainID string) (string, error) {
	return c.get(ctx, c.erail, routePath, map[string]string{
		"Action":   "TRAINROUTE",
		"Password": "2012",
		"Data1":    trainID,
		"Data2":    "0",
		"Cache":    "true",
	})
}

// StationLive fetches the live departures page of a station
func (c *Client) StationLive(ctx context.Context, code string) (string, error) {
	return c.get(ctx, c.erail, stationLivePath+url.PathEscape(code), withErail(nil))
}

// PNRStatus fetches the PNR status page, which embeds its data in a script
func (c *Client) PNRStatus(ctx context.Context, pnr string) (string, error) {
	return c.get(ctx, c.pnr, pnrStatusPath+url.PathEscape(pnr), nil)
}

func (c *Client) get(ctx context.Context, rc *resty.Client, path string, query map[string]string) (string, error) {
	resp, err := rc.R().
		SetContext(ctx).
		SetHeader("User-Agent", c.pickUserAgent()).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	if !resp.IsSuccess() {
		return "", &StatusError{Code: resp.StatusCode(), Path: path}
	}

	slog.Debug("upstream response",
		"path", path,
		"status", resp.StatusCode(),
		"size", humanize.Bytes(uint64(len(resp.Body()))),
		"elapsed_ms", resp.Time().Milliseconds(),
	)
	return string(resp.Body()), nil
}

func (c *Client) pickUserAgent() string {
	if c.userAgent != "" {
		return c.userAgent
	}
	return userAgents[rand.Intn(len(userAgents))]
}

func withErail(query map[string]string) map[string]string {
	out := make(map[string]string, len(query)+len(erailQuery))
	for k, v := range erailQuery {
		out[k] = v
	}
	for k, v := range query {
		out[k] = v
	}
	return out
}
