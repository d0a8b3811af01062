package textgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Fallback texts returned instead of errors.
const (
	FallbackAnalysisEmpty = "Could not generate analysis."
	FallbackAnalysisError = "Error connecting to AI service."
	FallbackSummaryEmpty  = "No summary available."
	FallbackSummaryError  = "Failed to generate summary."
)

// Assistant formats the review prompts and hides generator failures behind
// fixed fallback strings.
type Assistant struct {
	generator Generator
	logger    *slog.Logger
}

func NewAssistant(generator Generator, logger *slog.Logger) *Assistant {
	return &Assistant{
		generator: generator,
		logger:    logger,
	}
}

// AnalyzeDraft critiques a review draft against the Describe-Evaluate-Suggest guidelines.
func (a *Assistant) AnalyzeDraft(ctx context.Context, draft string, targetType string) string {
	prompt := fmt.Sprintf(`
You are an expert editor for "Archool", a school review platform.
A student has written a draft review for a %s.

Review Guidelines: "Describe-Evaluate-Suggest".
1. Describe the experience concretely.
2. Evaluate the quality (fairness, difficulty, support).
3. Suggest improvements or advice for future students.

Draft: "%s"

Task: Provide a short, actionable critique of this draft.
If it is good, say "Great draft!".
If it's too vague, suggest what specific details to add.
Keep the response under 50 words.
`, targetType, draft)

	text, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.ErrorContext(ctx, "draft analysis failed", "error", err)
		return FallbackAnalysisError
	}
	if text == "" {
		return FallbackAnalysisEmpty
	}
	return text
}

// TrendSummary condenses review comments into a three-bullet executive summary.
func (a *Assistant) TrendSummary(ctx context.Context, comments []string, entityName string) string {
	encoded, err := json.Marshal(comments)
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to encode reviews", "error", err)
		return FallbackSummaryError
	}

	prompt := fmt.Sprintf(`
Summarize the following reviews for %s into a 3-bullet point executive summary highlighting key strengths and weaknesses.

Reviews:
%s
`, entityName, encoded)

	text, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.ErrorContext(ctx, "trend summary failed", "entity", entityName, "error", err)
		return FallbackSummaryError
	}
	if text == "" {
		return FallbackSummaryEmpty
	}
	return text
}
