// Package message synthesizes personalized B2B outreach emails for
// enriched leads.
package message

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// promptTemplate instructs the generator persona. The signature is added
// by post-processing, never by the model.
const promptTemplate = `You are a founder of a hardware computer store specializing in custom PCs and servers. Write a concise, professional B2B outreach email (2-3 sentences) to the team at %s. Reference their specific business insights: %s. Highlight how our hardware solutions (e.g., high-performance computers for development teams) can address their needs, and end with a call-to-action to schedule a quick call. Do NOT include a closing signature (e.g., 'Best regards' or name); I will add it.`

// closingBlock is appended when the generator output lacks a closing.
const closingBlock = "\n\nBest regards,\n[Your Name]\nFounder, Custom Hardware Solutions"

// closingPhrases are the endings recognized as an existing closing; when
// one is present the fixed block is not appended.
var closingPhrases = []string{"Best regards", "Sincerely", "Thanks"}

// fallbackTemplate is the deterministic message used when the generator
// call fails.
const fallbackTemplate = "Hi [Contact], As a hardware store founder, I noticed %s could benefit from our custom computers tailored to your software needs. Let's schedule a call to discuss."

// Synthesizer builds outreach messages from a lead's name and insights.
type Synthesizer struct {
	gen         Generator
	maxTokens   int
	temperature float64
}

// NewSynthesizer creates a Synthesizer over the given generator.
func NewSynthesizer(gen Generator, maxTokens int, temperature float64) *Synthesizer {
	return &Synthesizer{gen: gen, maxTokens: maxTokens, temperature: temperature}
}

// Synthesize produces an outreach message for the lead. The result
// always ends with a closing block: either the generator's own closing
// phrase, or the fixed block appended exactly once. Generator failures
// degrade to a fixed fallback message; this never returns an error.
func (s *Synthesizer) Synthesize(ctx context.Context, leadName string, insights []string) string {
	prompt := fmt.Sprintf(promptTemplate, leadName, strings.Join(insights, ", "))

	raw, err := s.gen.Generate(ctx, prompt, s.maxTokens, s.temperature)
	if err != nil {
		zap.L().Warn("message: generator failed, using fallback",
			zap.String("lead", leadName),
			zap.Error(err),
		)
		return fmt.Sprintf(fallbackTemplate, leadName) + closingBlock
	}

	msg := strings.TrimSpace(raw)
	if !endsWithClosing(msg) {
		msg += closingBlock
	}
	return msg
}

// endsWithClosing reports whether the message already ends with one of
// the recognized closing phrases.
func endsWithClosing(msg string) bool {
	for _, phrase := range closingPhrases {
		if strings.HasSuffix(msg, phrase) {
			return true
		}
	}
	return false
}
