package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Vikramardham/mcplibrary"
	"google.golang.org/genai"
)

var _ mcplibrary.Ranker = (*Ranker)(nil)

// Ranker scores candidate pages against a query using Gemini.
type Ranker struct {
	client *genai.Client
}

// NewRanker creates a new Ranker.
func NewRanker(client *genai.Client) *Ranker {
	return &Ranker{client: client}
}

// Rank returns relevance scores in [0, 1] for the candidates. Errors
// carry EUNAVAILABLE so retrieval can fall back to lexical scoring.
func (r *Ranker) Rank(ctx context.Context, query string, candidates []mcplibrary.LinkItem) ([]mcplibrary.ScoredLink, error) {
	if query == "" {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "query required")
	}
	if len(candidates) == 0 {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "no candidates to rank")
	}

	prompt, err := BuildRankPrompt(query, candidates)
	if err != nil {
		return nil, err
	}

	text, err := generate(ctx, r.client, prompt, rankConfig())
	if err != nil {
		return nil, err
	}

	scored, err := ParseScores(text)
	if err != nil {
		return nil, err
	}

	return scored, nil
}

func rankConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You rank documentation pages by relevance to a query. Output ONLY a valid JSON array, no explanations or markdown.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildRankPrompt builds the ranking prompt for the given query and
// candidate pages.
func BuildRankPrompt(query string, candidates []mcplibrary.LinkItem) (string, error) {
	payload, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "", mcplibrary.Errorf(mcplibrary.EINTERNAL, "marshaling candidates: %v", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Given the following pages, identify the ones most relevant for answering this query: %q\n\n", query)
	fmt.Fprintf(&sb, "Pages:\n%s\n\n", payload)
	sb.WriteString("Respond with ONLY a JSON array of objects containing 'url' and 'relevance_score' (0-100), sorted by relevance_score in descending order.")

	return sb.String(), nil
}

// ParseScores decodes the model's ranking response, mapping the 0-100
// relevance_score scale to [0, 1] and clamping out-of-range values.
func ParseScores(text string) ([]mcplibrary.ScoredLink, error) {
	var payload []struct {
		URL            string  `json:"url"`
		RelevanceScore float64 `json:"relevance_score"`
	}
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &payload); err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EUNAVAILABLE, "unparseable ranking response: %v", err)
	}

	scored := make([]mcplibrary.ScoredLink, 0, len(payload))
	for _, item := range payload {
		if item.URL == "" {
			continue
		}
		score := item.RelevanceScore / 100
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		scored = append(scored, mcplibrary.ScoredLink{URL: item.URL, Score: score})
	}

	return scored, nil
}
