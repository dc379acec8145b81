package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"panditseva/catalog"
	"panditseva/models"
)

// TextModel produces a completion for a prompt. Satisfied by GeminiClient and
// by test doubles.
type TextModel interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GeminiClient wraps the Gemini generative model.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-flash")
	return &GeminiClient{model: model}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// llmPayload is the loose JSON shape the model is asked to produce. Every
// field is re-validated before it reaches a PujaRequest.
type llmPayload struct {
	PujaType         *string            `json:"puja_type"`
	WhenDate         *string            `json:"when_date"`
	TimeWindow       *string            `json:"time_window"`
	TimeSpecificMins *int               `json:"time_specific_mins"`
	City             *string            `json:"city"`
	BudgetINR        *int               `json:"budget_inr"`
	LanguagePref     []string           `json:"language_pref"`
	Notes            string             `json:"notes"`
	Conf             map[string]float64 `json:"conf"`
}

// GeminiExtractor delegates extraction to a text-understanding model and
// repairs the result with the rule engine. Any failure is returned as an
// error so the fallback combinator can take over.
type GeminiExtractor struct {
	Model   TextModel
	Rules   *RuleExtractor
	Timeout time.Duration
}

func NewGeminiExtractor(model TextModel, rules *RuleExtractor, timeout time.Duration) *GeminiExtractor {
	return &GeminiExtractor{Model: model, Rules: rules, Timeout: timeout}
}

func (g *GeminiExtractor) Extract(ctx context.Context, text string) (models.PujaRequest, models.Confidence, error) {
	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	raw, err := g.Model.GenerateContent(ctx, buildPrompt(text))
	if err != nil {
		return models.PujaRequest{}, nil, fmt.Errorf("text-understanding call failed: %w", err)
	}

	var payload llmPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return models.PujaRequest{}, nil, fmt.Errorf("malformed extraction response: %w", err)
	}

	req, conf := g.coerce(payload, text)
	return req, conf, nil
}

// coerce validates the loose payload field by field, nulling out anything
// that violates its domain, and applies the rule-engine repairs.
func (g *GeminiExtractor) coerce(p llmPayload, rawText string) (models.PujaRequest, models.Confidence) {
	conf := models.Confidence{}
	for k, v := range p.Conf {
		if v >= 0 && v <= 1 {
			conf[k] = v
		}
	}

	req := models.PujaRequest{Notes: p.Notes}

	if p.WhenDate != nil {
		if d, err := time.ParseInLocation("2006-01-02", *p.WhenDate, g.Rules.Loc); err == nil {
			req.WhenDate = &d
		}
	}
	if p.TimeWindow != nil && models.IsWindowLabel(*p.TimeWindow) {
		req.TimeWindow = p.TimeWindow
	}
	if p.TimeSpecificMins != nil && *p.TimeSpecificMins >= 0 && *p.TimeSpecificMins < 24*60 {
		req.TimeSpecificMins = p.TimeSpecificMins
	}
	if p.BudgetINR != nil && *p.BudgetINR > 0 {
		req.BudgetINR = p.BudgetINR
	}
	for _, l := range p.LanguagePref {
		for _, known := range knownLanguages {
			if strings.EqualFold(l, known) {
				req.LanguagePref = append(req.LanguagePref, known)
			}
		}
	}

	if p.PujaType != nil {
		if catalog.IsKnownPuja(*p.PujaType) {
			req.PujaType = p.PujaType
		} else {
			// Repair off-catalog names with the fuzzy matcher; keep the
			// higher of the two confidences.
			best, score := g.Rules.MatchPuja(*p.PujaType)
			req.PujaType = &best
			if score > conf["puja_type"] {
				conf["puja_type"] = score
			}
		}
	}

	if p.City != nil {
		req.City = g.Rules.NormalizeCity(*p.City)
	}
	if req.City == nil {
		req.City = g.Rules.NormalizeCity(rawText)
	}

	return req, conf
}

func buildPrompt(text string) string {
	return fmt.Sprintf(`Extract structured booking info from Hinglish text. Use only these puja types: %s.
Return STRICT JSON only, no prose, with fields:
puja_type, when_date (YYYY-MM-DD or null),
time_window (morning/afternoon/evening/night or null),
time_specific_mins (int minutes from midnight or null),
city, budget_inr, language_pref (subset of ["Sanskrit","Hindi","English","Bengali"]), notes, conf (0..1 map per field).
If a specific time like "5:30 pm" is given, compute minutes from midnight accordingly.
User: %s`, strings.Join(catalog.PujaCatalog, ", "), text)
}

// stripCodeFence removes a ```json ... ``` wrapper if the model added one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
