package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

var newsSpec = Spec{
	Name: "get_latest_news",
	Description: "Fetches the most recent news articles and headlines about a specific topic from NewsAPI. " +
		"Returns up to 5 latest articles with titles, sources, URLs, and publication dates. " +
		"Use this when the user asks about current events, recent news, latest developments, or wants to know what's happening with a particular subject. " +
		"Topics can be anything newsworthy: technology, politics, sports, science, entertainment, companies, people, or events.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type": "string",
				"description": "The subject or keyword to search for news about. Can be a single word like 'bitcoin', a phrase like 'climate change', " +
					"a company name like 'Tesla', a person like 'Elon Musk', or any newsworthy subject. Be specific for better results.",
			},
			"language": map[string]any{
				"type": "string",
				"description": "Two-letter ISO 639-1 language code to filter news articles. Examples: 'en' for English (default), 'es' for Spanish, " +
					"'fr' for French, 'de' for German, 'ja' for Japanese. Use this to get news in the user's preferred language.",
			},
		},
		"required":             []any{"topic"},
		"additionalProperties": false,
	},
}

// NewsClient fetches headlines from NewsAPI's /v2/everything endpoint.
type NewsClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// Handle implements the get_latest_news tool. Invalid input and an empty
// article list come back as {"error": ...} values rather than Go errors, so
// the model can react to them directly.
func (c *NewsClient) Handle(ctx context.Context, args map[string]any) (any, error) {
	topic, _ := args["topic"].(string)
	if topic == "" {
		return map[string]any{"error": "topic is required"}, nil
	}
	language := stringArg(args, "language", "en")

	q := url.Values{}
	q.Set("q", topic)
	q.Set("language", language)
	q.Set("pageSize", "5")
	q.Set("sortBy", "publishedAt")
	q.Set("apiKey", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v2/everything?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building news request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching news: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading news response: %w", err)
	}

	articles := gjson.GetBytes(body, "articles").Array()
	if len(articles) == 0 {
		return map[string]any{"error": "No articles found or invalid response."}, nil
	}

	out := make([]any, 0, len(articles))
	for _, a := range articles {
		out = append(out, map[string]any{
			"title":       a.Get("title").Value(),
			"source":      a.Get("source.name").Value(),
			"url":         a.Get("url").Value(),
			"publishedAt": a.Get("publishedAt").Value(),
		})
	}
	return out, nil
}
