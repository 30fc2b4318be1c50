// Package engine implements the lookup-and-generate resolver and the
// blueprint synthesizer.
//
// ARCHITECTURE:
//
// Resolution is a two-tier pipeline:
//  1. The normalized query (trimmed, lowercased) is matched exactly
//     against the built-in table. A hit returns the curated record
//     verbatim after a fixed scan delay, with no network call. This
//     path never fails short of context cancellation.
//  2. A miss delegates to the generative backend with the raw query
//     embedded in a fixed instructional prompt plus a strict response
//     schema. The upstream text is schema-check decoded; a fresh
//     unique id is attached only after the decode succeeds.
//
// There is no retry, no backoff, and no caching at this layer: two
// identical free-text queries both reach the backend again. Only
// exact-match built-in queries are "cached" by construction.
//
// CRITICAL PATTERNS:
//
// Stale-response discard: submissions obtain a monotonic token from a
// Session; a completion is applied only while its token is still the
// latest issued. A slow response can therefore never overwrite the
// result of a newer submission.
//
// Error taxonomy: NO_MATCH (upstream produced no content) and
// UPSTREAM_FAILURE (transport, parse, or schema violation) are kept
// distinct internally even though the interaction layer renders both
// as the same retryable "could not retrieve" state.
package engine
