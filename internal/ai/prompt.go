package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/v0xg/devhub-listing/internal/pages"
	"github.com/v0xg/devhub-listing/internal/plan"
)

const systemPrompt = `You convert requests to change a marketplace app listing into edit steps.

You will receive:
1. The listing as it is displayed now (JSON)
2. A user request describing what to change

Output a JSON array of steps. Each step has:
- "action": one of
    "edit_basic_info"     open the basic information form
    "type_name", "type_summary", "type_url_end", "type_manifest_url"
                          replace a basic information field (needs "text")
    "select_device_type", "select_category"
                          set a checkbox in the basic information form (needs "name" and "state")
    "edit_support_info"   open the support information form
    "type_support_email", "type_support_url"
                          replace a support field (needs "text")
    "save"                save the open form
- "text": the full new value of the field
- "name": the checkbox label exactly as displayed
- "state": true to check, false to uncheck

Rules:
- Only one form can be open at a time. Open it, make its changes, then "save" before opening the other.
- Only include fields the user asked to change.
- Every plan ends with the last form saved.
- If nothing needs to change, return [].

Example:
[
  {"action": "edit_basic_info"},
  {"action": "type_summary", "text": "A tiny falling-blocks game."},
  {"action": "select_device_type", "name": "Mobile", "state": true},
  {"action": "save"}
]

Respond ONLY with the JSON array, no explanation or markdown.`

func buildUserPrompt(listing pages.Snapshot, request string) (string, error) {
	listingJSON, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal listing: %w", err)
	}
	return "Listing:\n" + string(listingJSON) + "\n\nUser request: " + request, nil
}

// parseSteps extracts and validates a JSON array of steps from a response
// that may wrap it in prose or a code fence.
func parseSteps(response string) ([]plan.Step, error) {
	var steps []plan.Step
	if err := json.Unmarshal([]byte(response), &steps); err != nil {
		raw, ok := extractArray(response)
		if !ok {
			return nil, errors.New("no JSON array found in response")
		}
		if err := json.Unmarshal([]byte(raw), &steps); err != nil {
			return nil, fmt.Errorf("failed to parse extracted JSON: %w", err)
		}
	}

	if err := plan.Validate(steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// extractArray returns the first balanced [...] in s, skipping brackets
// inside JSON strings.
func extractArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
