package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveEditionID accepts a full edition ID or a unique prefix of one, the
// way IDs are shown truncated in listings.
func resolveEditionID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("edition ID is required")
	}

	editions, err := app.Editions.List(ctx)
	if err != nil {
		return "", err
	}

	for _, e := range editions {
		if e.ID == input {
			return e.ID, nil
		}
	}

	var matches []string
	for _, e := range editions {
		if strings.HasPrefix(e.ID, strings.ToLower(input)) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("edition not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("edition ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
