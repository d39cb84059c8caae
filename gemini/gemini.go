// Package gemini implements the LLM-backed capabilities (page
// categorization and query ranking) using Google Gemini.
//
// Both capabilities fail closed: callers treat any error as a signal to
// fall back to their deterministic path, so errors here are reported as
// EUNAVAILABLE rather than surfaced as hard failures.
package gemini

import (
	"context"

	"github.com/Vikramardham/mcplibrary"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// generate issues a single text-in, text-out call to the model.
func generate(ctx context.Context, client *genai.Client, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if client == nil {
		return "", mcplibrary.Errorf(mcplibrary.EUNAVAILABLE, "gemini client not configured")
	}

	result, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", mcplibrary.Errorf(mcplibrary.EUNAVAILABLE, "gemini request failed: %v", err)
	}
	if result == nil {
		return "", mcplibrary.Errorf(mcplibrary.EUNAVAILABLE, "gemini returned nil result")
	}

	return result.Text(), nil
}
