package tools

import (
	"context"
	"time"
)

var timeSpec = Spec{
	Name: "get_time",
	Description: "Returns the current date and time from the server in standardized ISO 8601 format with UTC timezone. " +
		"Use this when the user asks 'what time is it', 'what's the current time', 'what's the date today', or needs to know the current timestamp. " +
		"The time is always in UTC (Coordinated Universal Time), which is the global time standard. " +
		"Useful for time-sensitive queries, scheduling, logging, or when users need to know the exact current moment.",
	Parameters: map[string]any{
		"type":                 "object",
		"properties":           map[string]any{},
		"additionalProperties": false,
	},
}

// CurrentTime implements the get_time tool: UTC wall clock with microsecond
// precision and a Z suffix.
func CurrentTime(_ context.Context, _ map[string]any) (any, error) {
	return map[string]any{
		"now": time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "Z",
	}, nil
}
