// Package assist turns free-text entry lines into transaction records
// using a Gemini model.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/zouantchaw/financebrain"
	"github.com/zouantchaw/financebrain/date"
)

// DefaultModel is the Gemini model used to parse entry lines.
const DefaultModel = "gemini-2.0-flash"

const promptTemplate = `You are a strict JSON parser for a single-user personal finance tracker.
The user writes an informal one-line description of an expense, an income,
or an investment contribution.

You MUST respond with ONLY raw JSON. No explanation. No markdown.

Use this JSON format:

{
  "type": "expense" | "income" | "investment",
  "date": "YYYY-MM-DD",
  "amount": "number as a string",
  "merchant": "merchant or source name",
  "category": "short lowercase category",
  "account": "account name or empty string",
  "description": "string or empty string"
}

When the line gives no date, use today. When a field is unknown, use an
empty string. NEVER guess an amount.

Today's date is: %s

Entry line:
%s`

// entry is the wire shape the model replies with. All fields are
// strings; the lenient codec does the numeric and date interpretation.
type entry struct {
	Type        string `json:"type"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Merchant    string `json:"merchant"`
	Category    string `json:"category"`
	Account     string `json:"account"`
	Description string `json:"description"`
}

// Parse asks the model to interpret a free-text entry line and returns
// the resulting transaction. The model's answer flows through the same
// lenient property codec as any stored record, so a sloppy amount or
// date degrades to 0 or today instead of failing.
func Parse(ctx context.Context, client *genai.Client, model, line string) (financebrain.Transaction, error) {
	if model == "" {
		model = DefaultModel
	}
	prompt := fmt.Sprintf(promptTemplate, date.Today(), line)

	config := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return financebrain.Transaction{}, fmt.Errorf("entry parsing failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return financebrain.Transaction{}, fmt.Errorf("no response from model %q", model)
	}

	raw := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return financebrain.Transaction{}, fmt.Errorf("model did not return valid JSON: %w", err)
	}

	props := map[string]string{
		"type":        e.Type,
		"date":        e.Date,
		"amount":      e.Amount,
		"merchant":    e.Merchant,
		"category":    e.Category,
		"account":     e.Account,
		"description": e.Description,
	}
	tx := financebrain.DecodeTransaction(props)
	if tx == nil {
		return financebrain.Transaction{}, fmt.Errorf("could not interpret %q as a transaction (got type %q)", line, e.Type)
	}
	return *tx, nil
}
