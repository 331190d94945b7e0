// Package agent wraps a Gemini chat that explains a generated action plan in
// plain language. It never computes anything itself: the plan is produced by
// the rebalance package and handed over as markdown.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const advisorModel = "gemini-2.5-flash"

const advisorInstruction = `You are a careful financial explainer.
You receive a portfolio action plan: risk-parity target weights, a tax-aware
placement of assets across accounts, and possibly a trade list. Explain what
the plan does and why, in plain language, for a retail investor. Point out
the reasoning behind the account placement (tax shelter priority) and the
rebalance band (transaction costs vs. volatility harvesting). Do not invent
numbers that are not in the plan, and do not give personalized financial
advice beyond explaining the plan itself.`

// Advisor holds one chat session with the explainer model.
type Advisor struct {
	chat *genai.Chat
}

// NewAdvisor creates the chat session on the client.
func NewAdvisor(ctx context.Context, client *genai.Client) (*Advisor, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: advisorInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, advisorModel, config, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create advisor chat: %w", err)
	}
	return &Advisor{chat: chat}, nil
}

// Explain sends the rendered plan and an optional question, and returns the
// model's explanation as markdown.
func (a *Advisor) Explain(ctx context.Context, planMarkdown, question string) (string, error) {
	if question == "" {
		question = "Explain this action plan."
	}
	prompt := fmt.Sprintf("%s\n\n---\n\n%s", planMarkdown, question)

	resp, err := a.chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
