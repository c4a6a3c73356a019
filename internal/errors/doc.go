// Package errors provides structured errors for the battle API.
//
// Every error carries a Code that classifies it (bad input, missing data,
// caller-protocol violation, ...) plus an optional cause and metadata.
// Components construct errors with the code helpers (NotFound,
// FailedPrecondition, ...) and callers branch on them with the Is*
// predicates instead of string matching.
//
// Conventions:
//   - Wrap external errors at package boundaries so the code survives.
//   - FailedPrecondition marks caller-protocol bugs (e.g. asking for a
//     weighted target before any attack was recorded). These are not
//     user-facing conditions and should surface loudly.
//   - NotFound is reserved for lookups of stored data (monster templates,
//     transcripts, battle sessions).
package errors
