package principle

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

// Validation error codes (V100-V199).
const (
	ErrNotJSON          = "V100" // payload is not parseable JSON
	ErrSchemaViolation  = "V101" // payload does not satisfy the schema
	ErrDecodeFailed     = "V102" // schema passed but Go decode failed
	ErrActionPlanLength = "V103" // action plan is not exactly 7 steps
	ErrNoExecutionSteps = "V104" // blueprint has no execution steps
)

// ValidationError reports why an upstream payload was rejected.
// The resolver maps any ValidationError to an upstream failure; a
// document that fails validation never becomes a partially-filled
// Record or Blueprint.
type ValidationError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// recordSchema constrains generated principle output. Structs are open:
// extra upstream fields are tolerated, missing or mistyped ones are not.
// The Q&A and scripture lists default to empty rather than being
// required, matching the upstream schema where only the core fields are
// always produced.
const recordSchema = `{
	category:        string & !=""
	corePrinciple:   string & !=""
	sourceReference: string & !=""
	actionPlan: [...string]
	relatedQuestions: *[] | [...{question: string & !="", answer: string & !=""}]
	additionalScriptures: *[] | [...{verse: string & !="", text: string & !=""}]
}`

// blueprintSchema constrains generated blueprint output.
const blueprintSchema = `{
	purposeStatement: string & !=""
	executionSteps: [...string & !=""]
}`

// DecodeRecord performs a schema-checked decode of upstream generative
// output into a Record. The returned record has no ID; the resolver
// attaches one after a successful decode.
//
// The decode is strict per the validation design: unparseable JSON,
// missing fields, wrong types, and an action plan that is not exactly
// ActionPlanSteps long are all rejected with a *ValidationError.
func DecodeRecord(raw []byte) (Record, error) {
	var rec Record
	if err := decodeAgainst(recordSchema, raw, &rec); err != nil {
		return Record{}, err
	}
	if len(rec.ActionPlan) != ActionPlanSteps {
		return Record{}, &ValidationError{
			Code:    ErrActionPlanLength,
			Field:   "actionPlan",
			Message: fmt.Sprintf("expected %d steps, got %d", ActionPlanSteps, len(rec.ActionPlan)),
		}
	}
	return rec, nil
}

// DecodeBlueprint performs a schema-checked decode of upstream
// generative output into a Blueprint.
func DecodeBlueprint(raw []byte) (Blueprint, error) {
	var bp Blueprint
	if err := decodeAgainst(blueprintSchema, raw, &bp); err != nil {
		return Blueprint{}, err
	}
	if len(bp.ExecutionSteps) == 0 {
		return Blueprint{}, &ValidationError{
			Code:    ErrNoExecutionSteps,
			Field:   "executionSteps",
			Message: "at least one execution step is required",
		}
	}
	return bp, nil
}

// decodeAgainst unifies raw JSON with a CUE schema and decodes the
// result into out. Unification rejects missing required fields and
// wrong types in one pass before anything touches domain structs.
func decodeAgainst(schemaSrc string, raw []byte, out any) error {
	cctx := cuecontext.New()

	schema := cctx.CompileString(schemaSrc)
	if err := schema.Err(); err != nil {
		// Schemas are compile-time constants; this is a programming error.
		return &ValidationError{Code: ErrSchemaViolation, Message: fmt.Sprintf("invalid schema: %v", err)}
	}

	expr, err := cuejson.Extract("upstream.json", raw)
	if err != nil {
		return &ValidationError{Code: ErrNotJSON, Message: fmt.Sprintf("payload is not valid JSON: %v", err)}
	}

	data := cctx.BuildExpr(expr)
	if err := data.Err(); err != nil {
		return &ValidationError{Code: ErrNotJSON, Message: fmt.Sprintf("payload could not be built: %v", err)}
	}

	unified := schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Code: ErrSchemaViolation, Message: err.Error()}
	}

	if err := unified.Decode(out); err != nil {
		return &ValidationError{Code: ErrDecodeFailed, Message: err.Error()}
	}
	return nil
}
