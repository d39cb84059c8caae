// Package mcplibrary crawls documentation websites and builds navigable
// representations of them: a flat page map, a path-based tree, and an
// LLM-categorized tree, plus a query layer that ranks pages against a
// natural language question.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package mcplibrary
