// Package principle defines the domain types of the Principle Engine:
// the structured answer returned for a query (a Record), the reduced
// projections persisted locally (VaultItem, UserProfile, Stats), and
// the blueprint produced by the purpose synthesizer.
//
// The package also owns the built-in table ("the brain") of curated
// query -> record mappings, and the strict schema-checked decoders that
// gate upstream generative output before it is allowed to become a
// Record or Blueprint. Decoding is all-or-nothing: a document that does
// not satisfy the schema is rejected wholesale, never partially filled.
package principle
