package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Vikramardham/mcplibrary"
	"google.golang.org/genai"
)

var _ mcplibrary.Categorizer = (*Categorizer)(nil)

// Categorizer groups crawled pages into a semantic hierarchy using Gemini.
type Categorizer struct {
	client *genai.Client
}

// NewCategorizer creates a new Categorizer.
func NewCategorizer(client *genai.Client) *Categorizer {
	return &Categorizer{client: client}
}

// Categorize asks the model to group the given pages into named
// categories with up to one level of subcategories. Errors carry
// EUNAVAILABLE so the tree builder can fall back to path-based grouping.
func (c *Categorizer) Categorize(ctx context.Context, baseURL string, items []mcplibrary.LinkItem) ([]mcplibrary.CategoryGroup, error) {
	if len(items) == 0 {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "no items to categorize")
	}

	prompt, err := BuildCategorizePrompt(baseURL, items)
	if err != nil {
		return nil, err
	}

	text, err := generate(ctx, c.client, prompt, categorizeConfig())
	if err != nil {
		return nil, err
	}

	groups, err := ParseCategories(text)
	if err != nil {
		return nil, err
	}

	return groups, nil
}

func categorizeConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You organize documentation pages into a logical category tree. Output ONLY valid JSON, no explanations or markdown.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildCategorizePrompt builds the categorization prompt for the given
// site and page summaries.
func BuildCategorizePrompt(baseURL string, items []mcplibrary.LinkItem) (string, error) {
	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", mcplibrary.Errorf(mcplibrary.EINTERNAL, "marshaling link items: %v", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze and categorize these documentation pages from %s into a logical tree structure.\n\n", baseURL)
	fmt.Fprintf(&sb, "Pages to categorize:\n%s\n\n", payload)
	sb.WriteString(`Return a JSON object with this structure:
{
  "categories": [
    {
      "name": "Category Name",
      "description": "Short description",
      "urls": ["full_url_here"],
      "subcategories": [
        {
          "name": "Subcategory Name",
          "description": "Short description",
          "urls": ["full_url_here"]
        }
      ]
    }
  ]
}

Guidelines:
1. Group similar pages together under meaningful category names.
2. Include ALL page URLs exactly as given.
3. Use at most one level of subcategories.
4. Output ONLY valid JSON, no explanations or markdown.`)

	return sb.String(), nil
}

// ParseCategories decodes the model's categorization response.
func ParseCategories(text string) ([]mcplibrary.CategoryGroup, error) {
	var payload struct {
		Categories []mcplibrary.CategoryGroup `json:"categories"`
	}
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &payload); err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EUNAVAILABLE, "unparseable categorization response: %v", err)
	}
	if len(payload.Categories) == 0 {
		return nil, mcplibrary.Errorf(mcplibrary.EUNAVAILABLE, "categorization response contains no categories")
	}
	return payload.Categories, nil
}
