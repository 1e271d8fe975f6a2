// Package assistant implements the natural-language task resolver: it
// classifies free text into an intent, extracts task content and due dates,
// fuzzily matches referenced tasks, and executes the resulting operation
// against the task store.
//
// The pipeline is deliberately keyword-driven. Classification is an ordered
// list of substring checks evaluated top-down, so reordering the keyword
// groups changes observable behavior and must be treated as a breaking change.
package assistant
