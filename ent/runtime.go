// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/praxislearn/praxis/ent/attempt"
	"github.com/praxislearn/praxis/ent/concept"
	"github.com/praxislearn/praxis/ent/conceptedge"
	"github.com/praxislearn/praxis/ent/gapdetection"
	"github.com/praxislearn/praxis/ent/graphmembership"
	"github.com/praxislearn/praxis/ent/llmrequestevent"
	"github.com/praxislearn/praxis/ent/practicesession"
	"github.com/praxislearn/praxis/ent/question"
	"github.com/praxislearn/praxis/ent/schema"
	"github.com/praxislearn/praxis/ent/unitgraph"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[3].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescScore is the schema descriptor for score field.
	attemptDescScore := attemptFields[7].Descriptor()
	// attempt.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	attempt.ScoreValidator = func() func(float64) error {
		validators := attemptDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[9].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	// attemptDescID is the schema descriptor for id field.
	attemptDescID := attemptFields[0].Descriptor()
	// attempt.DefaultID holds the default value on creation for the id field.
	attempt.DefaultID = attemptDescID.Default.(func() uuid.UUID)
	conceptFields := schema.Concept{}.Fields()
	_ = conceptFields
	// conceptDescUserID is the schema descriptor for user_id field.
	conceptDescUserID := conceptFields[1].Descriptor()
	// concept.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	concept.UserIDValidator = conceptDescUserID.Validators[0].(func(string) error)
	// conceptDescName is the schema descriptor for name field.
	conceptDescName := conceptFields[2].Descriptor()
	// concept.NameValidator is a validator for the "name" field. It is called by the builders before save.
	concept.NameValidator = conceptDescName.Validators[0].(func(string) error)
	// conceptDescNormalizedName is the schema descriptor for normalized_name field.
	conceptDescNormalizedName := conceptFields[3].Descriptor()
	// concept.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	concept.NormalizedNameValidator = conceptDescNormalizedName.Validators[0].(func(string) error)
	// conceptDescDescription is the schema descriptor for description field.
	conceptDescDescription := conceptFields[4].Descriptor()
	// concept.DefaultDescription holds the default value on creation for the description field.
	concept.DefaultDescription = conceptDescDescription.Default.(string)
	// conceptDescProficiency is the schema descriptor for proficiency field.
	conceptDescProficiency := conceptFields[6].Descriptor()
	// concept.DefaultProficiency holds the default value on creation for the proficiency field.
	concept.DefaultProficiency = conceptDescProficiency.Default.(float64)
	// conceptDescConfidence is the schema descriptor for confidence field.
	conceptDescConfidence := conceptFields[7].Descriptor()
	// concept.DefaultConfidence holds the default value on creation for the confidence field.
	concept.DefaultConfidence = conceptDescConfidence.Default.(float64)
	// conceptDescEaseFactor is the schema descriptor for ease_factor field.
	conceptDescEaseFactor := conceptFields[8].Descriptor()
	// concept.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	concept.DefaultEaseFactor = conceptDescEaseFactor.Default.(float64)
	// conceptDescIntervalDays is the schema descriptor for interval_days field.
	conceptDescIntervalDays := conceptFields[9].Descriptor()
	// concept.DefaultIntervalDays holds the default value on creation for the interval_days field.
	concept.DefaultIntervalDays = conceptDescIntervalDays.Default.(int)
	// conceptDescRepetitionCount is the schema descriptor for repetition_count field.
	conceptDescRepetitionCount := conceptFields[10].Descriptor()
	// concept.DefaultRepetitionCount holds the default value on creation for the repetition_count field.
	concept.DefaultRepetitionCount = conceptDescRepetitionCount.Default.(int)
	// conceptDescAttemptCount is the schema descriptor for attempt_count field.
	conceptDescAttemptCount := conceptFields[13].Descriptor()
	// concept.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	concept.DefaultAttemptCount = conceptDescAttemptCount.Default.(int)
	// conceptDescDeprecated is the schema descriptor for deprecated field.
	conceptDescDeprecated := conceptFields[14].Descriptor()
	// concept.DefaultDeprecated holds the default value on creation for the deprecated field.
	concept.DefaultDeprecated = conceptDescDeprecated.Default.(bool)
	// conceptDescManuallyAdjusted is the schema descriptor for manually_adjusted field.
	conceptDescManuallyAdjusted := conceptFields[15].Descriptor()
	// concept.DefaultManuallyAdjusted holds the default value on creation for the manually_adjusted field.
	concept.DefaultManuallyAdjusted = conceptDescManuallyAdjusted.Default.(bool)
	// conceptDescCreatedAt is the schema descriptor for created_at field.
	conceptDescCreatedAt := conceptFields[17].Descriptor()
	// concept.DefaultCreatedAt holds the default value on creation for the created_at field.
	concept.DefaultCreatedAt = conceptDescCreatedAt.Default.(func() time.Time)
	// conceptDescUpdatedAt is the schema descriptor for updated_at field.
	conceptDescUpdatedAt := conceptFields[18].Descriptor()
	// concept.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	concept.DefaultUpdatedAt = conceptDescUpdatedAt.Default.(func() time.Time)
	// concept.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	concept.UpdateDefaultUpdatedAt = conceptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// conceptDescID is the schema descriptor for id field.
	conceptDescID := conceptFields[0].Descriptor()
	// concept.DefaultID holds the default value on creation for the id field.
	concept.DefaultID = conceptDescID.Default.(func() uuid.UUID)
	conceptedgeFields := schema.ConceptEdge{}.Fields()
	_ = conceptedgeFields
	// conceptedgeDescCreatedAt is the schema descriptor for created_at field.
	conceptedgeDescCreatedAt := conceptedgeFields[5].Descriptor()
	// conceptedge.DefaultCreatedAt holds the default value on creation for the created_at field.
	conceptedge.DefaultCreatedAt = conceptedgeDescCreatedAt.Default.(func() time.Time)
	// conceptedgeDescID is the schema descriptor for id field.
	conceptedgeDescID := conceptedgeFields[0].Descriptor()
	// conceptedge.DefaultID holds the default value on creation for the id field.
	conceptedge.DefaultID = conceptedgeDescID.Default.(func() uuid.UUID)
	gapdetectionFields := schema.GapDetection{}.Fields()
	_ = gapdetectionFields
	// gapdetectionDescUserID is the schema descriptor for user_id field.
	gapdetectionDescUserID := gapdetectionFields[1].Descriptor()
	// gapdetection.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	gapdetection.UserIDValidator = gapdetectionDescUserID.Validators[0].(func(string) error)
	// gapdetectionDescMissingConceptName is the schema descriptor for missing_concept_name field.
	gapdetectionDescMissingConceptName := gapdetectionFields[3].Descriptor()
	// gapdetection.MissingConceptNameValidator is a validator for the "missing_concept_name" field. It is called by the builders before save.
	gapdetection.MissingConceptNameValidator = gapdetectionDescMissingConceptName.Validators[0].(func(string) error)
	// gapdetectionDescExplanation is the schema descriptor for explanation field.
	gapdetectionDescExplanation := gapdetectionFields[6].Descriptor()
	// gapdetection.DefaultExplanation holds the default value on creation for the explanation field.
	gapdetection.DefaultExplanation = gapdetectionDescExplanation.Default.(string)
	// gapdetectionDescCreatedAt is the schema descriptor for created_at field.
	gapdetectionDescCreatedAt := gapdetectionFields[7].Descriptor()
	// gapdetection.DefaultCreatedAt holds the default value on creation for the created_at field.
	gapdetection.DefaultCreatedAt = gapdetectionDescCreatedAt.Default.(func() time.Time)
	// gapdetectionDescID is the schema descriptor for id field.
	gapdetectionDescID := gapdetectionFields[0].Descriptor()
	// gapdetection.DefaultID holds the default value on creation for the id field.
	gapdetection.DefaultID = gapdetectionDescID.Default.(func() uuid.UUID)
	graphmembershipFields := schema.GraphMembership{}.Fields()
	_ = graphmembershipFields
	// graphmembershipDescPosX is the schema descriptor for pos_x field.
	graphmembershipDescPosX := graphmembershipFields[3].Descriptor()
	// graphmembership.DefaultPosX holds the default value on creation for the pos_x field.
	graphmembership.DefaultPosX = graphmembershipDescPosX.Default.(float64)
	// graphmembershipDescPosY is the schema descriptor for pos_y field.
	graphmembershipDescPosY := graphmembershipFields[4].Descriptor()
	// graphmembership.DefaultPosY holds the default value on creation for the pos_y field.
	graphmembership.DefaultPosY = graphmembershipDescPosY.Default.(float64)
	// graphmembershipDescDepthTier is the schema descriptor for depth_tier field.
	graphmembershipDescDepthTier := graphmembershipFields[5].Descriptor()
	// graphmembership.DefaultDepthTier holds the default value on creation for the depth_tier field.
	graphmembership.DefaultDepthTier = graphmembershipDescDepthTier.Default.(int)
	// graphmembership.DepthTierValidator is a validator for the "depth_tier" field. It is called by the builders before save.
	graphmembership.DepthTierValidator = graphmembershipDescDepthTier.Validators[0].(func(int) error)
	// graphmembershipDescID is the schema descriptor for id field.
	graphmembershipDescID := graphmembershipFields[0].Descriptor()
	// graphmembership.DefaultID holds the default value on creation for the id field.
	graphmembership.DefaultID = graphmembershipDescID.Default.(func() uuid.UUID)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescUserID is the schema descriptor for user_id field.
	practicesessionDescUserID := practicesessionFields[1].Descriptor()
	// practicesession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	practicesession.UserIDValidator = practicesessionDescUserID.Validators[0].(func(string) error)
	// practicesessionDescQuestionCount is the schema descriptor for question_count field.
	practicesessionDescQuestionCount := practicesessionFields[3].Descriptor()
	// practicesession.DefaultQuestionCount holds the default value on creation for the question_count field.
	practicesession.DefaultQuestionCount = practicesessionDescQuestionCount.Default.(int)
	// practicesessionDescCorrectCount is the schema descriptor for correct_count field.
	practicesessionDescCorrectCount := practicesessionFields[4].Descriptor()
	// practicesession.DefaultCorrectCount holds the default value on creation for the correct_count field.
	practicesession.DefaultCorrectCount = practicesessionDescCorrectCount.Default.(int)
	// practicesessionDescStartedAt is the schema descriptor for started_at field.
	practicesessionDescStartedAt := practicesessionFields[6].Descriptor()
	// practicesession.DefaultStartedAt holds the default value on creation for the started_at field.
	practicesession.DefaultStartedAt = practicesessionDescStartedAt.Default.(func() time.Time)
	// practicesessionDescID is the schema descriptor for id field.
	practicesessionDescID := practicesessionFields[0].Descriptor()
	// practicesession.DefaultID holds the default value on creation for the id field.
	practicesession.DefaultID = practicesessionDescID.Default.(func() uuid.UUID)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[3].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[4].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[6].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[7].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = func() func(float64) error {
		validators := questionDescDifficulty.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(difficulty float64) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[9].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	unitgraphFields := schema.UnitGraph{}.Fields()
	_ = unitgraphFields
	// unitgraphDescUserID is the schema descriptor for user_id field.
	unitgraphDescUserID := unitgraphFields[1].Descriptor()
	// unitgraph.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	unitgraph.UserIDValidator = unitgraphDescUserID.Validators[0].(func(string) error)
	// unitgraphDescName is the schema descriptor for name field.
	unitgraphDescName := unitgraphFields[2].Descriptor()
	// unitgraph.NameValidator is a validator for the "name" field. It is called by the builders before save.
	unitgraph.NameValidator = unitgraphDescName.Validators[0].(func(string) error)
	// unitgraphDescCreatedAt is the schema descriptor for created_at field.
	unitgraphDescCreatedAt := unitgraphFields[3].Descriptor()
	// unitgraph.DefaultCreatedAt holds the default value on creation for the created_at field.
	unitgraph.DefaultCreatedAt = unitgraphDescCreatedAt.Default.(func() time.Time)
	// unitgraphDescID is the schema descriptor for id field.
	unitgraphDescID := unitgraphFields[0].Descriptor()
	// unitgraph.DefaultID holds the default value on creation for the id field.
	unitgraph.DefaultID = unitgraphDescID.Default.(func() uuid.UUID)
}
