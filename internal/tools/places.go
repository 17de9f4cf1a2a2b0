package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/tidwall/gjson"
)

var placesSpec = Spec{
	Name: "get_google_places",
	Description: "Searches for and retrieves detailed information about businesses, restaurants, shops, services, and points of interest in a specific city or location " +
		"using Google Places data via Apify. Returns comprehensive details including names, ratings, review counts, addresses, phone numbers, websites, and Google Maps links. " +
		"Use this when the user wants to find places to eat, shop, visit, or get services in a particular area. " +
		"Examples: finding restaurants, coffee shops, hotels, gyms, museums, parks, stores, etc.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type": "string",
				"description": "The city, area, or location to search in. Be specific and include state/country if needed for clarity. " +
					"Examples: 'Edmonton, Canada', 'San Francisco, CA', 'Tokyo, Japan', 'London, UK', 'New York City', 'Paris, France'. " +
					"Can also be neighborhoods or specific areas like 'Downtown Seattle'.",
			},
			"query": map[string]any{
				"type": "string",
				"description": "The type of place, business category, or specific search term. Be descriptive and specific. " +
					"Examples: 'pizza restaurants', 'italian food', 'coffee shops', 'vegan restaurants', '5-star hotels', 'yoga studios', 'bookstores', 'sushi', 'breweries', 'fast food'. " +
					"Use keywords that match what the user is looking for.",
			},
			"language": map[string]any{
				"type":        "string",
				"description": "Language code for the results and interface. Use ISO 639-1 codes: 'en' (English, default), 'es' (Spanish), 'fr' (French), 'de' (German), etc.",
			},
			"maxResults": map[string]any{
				"type": "integer",
				"description": "Maximum number of places to return. Range: 1-200. Default is 50. Use lower numbers (5-20) for quick results or top recommendations. " +
					"Use higher numbers (50-200) for comprehensive searches. Note: higher values increase processing time.",
			},
		},
		"required":             []any{"city", "query"},
		"additionalProperties": false,
	},
}

// PlacesClient drives the Apify google-places crawler: start an actor run,
// poll it until a terminal status, then fetch the run's dataset. This is
// the only tool that may legitimately take longer than a few seconds.
type PlacesClient struct {
	BaseURL      string
	Token        string
	Actor        string
	PollInterval time.Duration
	MaxWait      time.Duration
	HTTP         *http.Client
}

var terminalRunStatuses = map[string]bool{
	"SUCCEEDED": true,
	"FAILED":    true,
	"ABORTED":   true,
	"TIMED-OUT": true,
}

var errRunPending = errors.New("apify run still in progress")

// Handle implements the get_google_places tool.
func (c *PlacesClient) Handle(ctx context.Context, args map[string]any) (any, error) {
	city, _ := args["city"].(string)
	query, _ := args["query"].(string)
	if city == "" || query == "" {
		return nil, errors.New("city and query are required")
	}
	language := stringArg(args, "language", "en")
	maxResults := intArg(args, "maxResults", 50)
	// Clamp rather than reject: the schema states 1-200 but the tool keeps
	// the original clamping behavior.
	if maxResults < 1 {
		maxResults = 1
	}
	if maxResults > 200 {
		maxResults = 200
	}

	if c.Token == "" {
		return nil, errors.New("APIFY_TOKEN is not set in environment")
	}

	runID, err := c.startRun(ctx, city, query, language, maxResults)
	if err != nil {
		return nil, err
	}

	run, err := c.waitForRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if status := run.Get("status").String(); status != "SUCCEEDED" {
		return nil, fmt.Errorf("apify run ended with status: %s", status)
	}

	datasetID := run.Get("defaultDatasetId").String()
	if datasetID == "" {
		return nil, errors.New("no datasetId on apify run result")
	}
	return c.fetchItems(ctx, datasetID)
}

func (c *PlacesClient) startRun(ctx context.Context, city, query, language string, maxResults int) (string, error) {
	input := map[string]any{
		"includeWebResults":              false,
		"language":                       language,
		"locationQuery":                  city,
		"maxCrawledPlacesPerSearch":      maxResults,
		"maxImages":                      0,
		"maximumLeadsEnrichmentRecords":  0,
		"scrapeContacts":                 false,
		"scrapeDirectories":              false,
		"scrapeImageAuthors":             false,
		"scrapePlaceDetailPage":          false,
		"scrapeReviewsPersonalData":      true,
		"scrapeTableReservationProvider": false,
		"searchStringsArray":             []string{query},
		"skipClosedPlaces":               false,
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encoding apify run input: %w", err)
	}

	startURL := fmt.Sprintf("%s/v2/acts/%s/runs?token=%s", c.BaseURL, c.Actor, c.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, startURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building apify run request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("starting apify run: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading apify run response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("failed to start apify run: %d %s", resp.StatusCode, body)
	}

	runID := gjson.GetBytes(body, "data.id").String()
	if runID == "" {
		return "", errors.New("apify run did not return a run ID")
	}
	return runID, nil
}

// waitForRun polls the run status at a fixed interval until it reaches a
// terminal state or the wall-clock ceiling is hit. Cancellation of ctx
// (the surrounding HTTP request) aborts the loop immediately.
func (c *PlacesClient) waitForRun(ctx context.Context, runID string) (gjson.Result, error) {
	statusURL := fmt.Sprintf("%s/v2/actor-runs/%s", c.BaseURL, runID)

	poll := func() (gjson.Result, error) {
		body, err := c.get(ctx, statusURL)
		if err != nil {
			return gjson.Result{}, backoff.Permanent(fmt.Errorf("failed to check apify run: %w", err))
		}
		run := gjson.GetBytes(body, "data")
		status := run.Get("status").String()
		if status == "" {
			return gjson.Result{}, backoff.Permanent(errors.New("apify run status missing"))
		}
		if !terminalRunStatuses[status] {
			return gjson.Result{}, errRunPending
		}
		return run, nil
	}

	run, err := backoff.Retry(ctx, poll,
		backoff.WithBackOff(backoff.NewConstantBackOff(c.PollInterval)),
		backoff.WithMaxElapsedTime(c.MaxWait),
	)
	if err != nil {
		if errors.Is(err, errRunPending) {
			return gjson.Result{}, fmt.Errorf("apify run timed out after %s", c.MaxWait)
		}
		return gjson.Result{}, err
	}
	return run, nil
}

func (c *PlacesClient) fetchItems(ctx context.Context, datasetID string) (any, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/v2/datasets/%s/items?clean=true", c.BaseURL, datasetID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch apify dataset items: %w", err)
	}

	items := gjson.ParseBytes(body).Array()
	mapped := make([]any, 0, len(items))
	for _, p := range items {
		place := map[string]any{
			"name":         firstOf(p, "title", "name"),
			"rating":       firstOf(p, "rating", "userRating"),
			"reviewsCount": firstOf(p, "reviewsCount", "reviewCount"),
			"address":      firstOf(p, "address", "formattedAddress"),
			"phone":        firstOf(p, "phone", "phoneNumber"),
			"website":      firstOf(p, "website", "url"),
			"categories":   firstOf(p, "category", "types"),
			"sourceUrl":    firstOf(p, "googleMapsUrl", "url"),
			"raw":          p.Value(),
		}
		if loc := p.Get("location"); loc.Exists() {
			place["coordinates"] = loc.Value()
		} else if coords := p.Get("coords"); coords.Exists() {
			place["coordinates"] = map[string]any{
				"lat": coords.Get("lat").Value(),
				"lng": coords.Get("lng").Value(),
			}
		} else {
			place["coordinates"] = nil
		}
		mapped = append(mapped, place)
	}
	return mapped, nil
}

func (c *PlacesClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}

// firstOf returns the first key present on the item, mirroring the loose
// key pairs the crawler emits across result versions.
func firstOf(p gjson.Result, keys ...string) any {
	for _, k := range keys {
		if r := p.Get(k); r.Exists() {
			return r.Value()
		}
	}
	return nil
}
