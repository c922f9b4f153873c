package llm

import "context"

// Purpose labels for the three request kinds the tutor makes. The logging
// decorator records them so usage can be broken down per concern.
const (
	PurposeQuestionGen = "question-gen"
	PurposeGrading     = "grading"
	PurposeSuggestion  = "suggestion"
)

type purposeKey struct{}

// WithPurpose tags the context with what the request is for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose tag, or "unknown" for untagged requests.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}
