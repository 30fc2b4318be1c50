// Package gemini implements the generative backend boundary over the
// Gemini generateContent REST API.
//
// The interface it serves is deliberately narrow: given a prompt and a
// required response schema, return text that parses as JSON matching
// that schema, or fail. Anything that speaks this contract can be
// substituted for it; the engine depends only on the Generator
// interface it defines for itself.
//
// The client enforces structured output via
// generationConfig.responseMimeType + responseSchema, retries
// rate-limit and transport errors with exponential backoff, and applies
// a timeout when the caller's context carries no deadline.
package gemini
