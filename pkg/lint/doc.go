// Package lint defines the diagnostics produced by content validation.
//
// # Taxonomy
//
// Every diagnostic belongs to one of the categories below. The category
// fixes how a finding is interpreted by CI:
//
//   - parse: the file could not be decoded (always error)
//   - schema: a required field is missing or has the wrong type/enum (always error)
//   - reference: an ID does not resolve (error, except cross-batch prerequisites)
//   - uniqueness: an ID is declared twice within its scope (always error)
//   - pedagogical: flow, difficulty, duration and ordering heuristics (always warning)
//   - discovery: a content directory yielded no files (warning)
//
// # Rules
//
// Each diagnostic carries a stable rule ID from the catalogue in rules.go:
//
//   - CL: content loading
//   - ID: global identifier namespace
//   - LS: lessons
//   - CR: courses
//   - IV: interview question banks
//
// Query the catalogue:
//
//	rules := lint.AllRules()
//	rule, ok := lint.GetRule("CR05")
package lint
