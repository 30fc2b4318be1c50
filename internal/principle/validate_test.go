package principle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecordJSON = `{
	"category": "WARFARE",
	"corePrinciple": "Do not confuse patience with cowardice.",
	"sourceReference": "Ecclesiastes 3:8",
	"actionPlan": [
		"Audit the threat.",
		"Sever the supply line.",
		"Build the counter-position.",
		"Recruit allies.",
		"Execute the plan.",
		"Review the outcome.",
		"Fortify the gains."
	],
	"relatedQuestions": [
		{"question": "When do I act?", "answer": "When preparation meets opportunity."}
	],
	"additionalScriptures": [
		{"verse": "Proverbs 21:31", "text": "The horse is made ready for the day of battle."}
	]
}`

func TestDecodeRecord_Valid(t *testing.T) {
	rec, err := DecodeRecord([]byte(validRecordJSON))
	require.NoError(t, err)

	assert.Empty(t, rec.ID, "decode must not invent an id")
	assert.Equal(t, "WARFARE", rec.Category)
	assert.Len(t, rec.ActionPlan, ActionPlanSteps)
	assert.Len(t, rec.RelatedQuestions, 1)
	assert.Len(t, rec.AdditionalScriptures, 1)
}

func TestDecodeRecord_OptionalListsDefaultEmpty(t *testing.T) {
	rec, err := DecodeRecord([]byte(`{
		"category": "TIMING",
		"corePrinciple": "Haste buries more kings than famine.",
		"sourceReference": "Proverbs 19:2",
		"actionPlan": ["Wait.","Watch.","Weigh.","Decide.","Act.","Hold.","Review."]
	}`))
	require.NoError(t, err)
	assert.Empty(t, rec.RelatedQuestions)
	assert.Empty(t, rec.AdditionalScriptures)
}

func TestDecodeRecord_NotJSON(t *testing.T) {
	_, err := DecodeRecord([]byte("I am sorry, I cannot produce JSON."))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrNotJSON, verr.Code)
}

func TestDecodeRecord_MissingField(t *testing.T) {
	_, err := DecodeRecord([]byte(`{
		"category": "WARFARE",
		"actionPlan": ["a","b","c","d","e","f","g"]
	}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrSchemaViolation, verr.Code)
}

func TestDecodeRecord_EmptyCoreField(t *testing.T) {
	_, err := DecodeRecord([]byte(`{
		"category": "",
		"corePrinciple": "x",
		"sourceReference": "y",
		"actionPlan": ["a","b","c","d","e","f","g"]
	}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrSchemaViolation, verr.Code)
}

func TestDecodeRecord_WrongTypeRejected(t *testing.T) {
	_, err := DecodeRecord([]byte(`{
		"category": "WARFARE",
		"corePrinciple": "x",
		"sourceReference": "y",
		"actionPlan": "not a list"
	}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrSchemaViolation, verr.Code)
}

func TestDecodeRecord_ShortActionPlan(t *testing.T) {
	_, err := DecodeRecord([]byte(`{
		"category": "WARFARE",
		"corePrinciple": "x",
		"sourceReference": "y",
		"actionPlan": ["only","six","steps","here","not","seven"]
	}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrActionPlanLength, verr.Code)
}

func TestDecodeBlueprint_Valid(t *testing.T) {
	bp, err := DecodeBlueprint([]byte(`{
		"purposeStatement": "You are called to use design to restore fathers for your city.",
		"executionSteps": ["Document the burden.", "Build the first asset.", "Serve one family."]
	}`))
	require.NoError(t, err)
	assert.Len(t, bp.ExecutionSteps, 3)
	assert.NotEmpty(t, bp.PurposeStatement)
}

func TestDecodeBlueprint_NoSteps(t *testing.T) {
	_, err := DecodeBlueprint([]byte(`{
		"purposeStatement": "A statement.",
		"executionSteps": []
	}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrNoExecutionSteps, verr.Code)
}

func TestDecodeBlueprint_MissingStatement(t *testing.T) {
	_, err := DecodeBlueprint([]byte(`{"executionSteps": ["a"]}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrSchemaViolation, verr.Code)
}
