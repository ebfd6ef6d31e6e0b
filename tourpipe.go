// Package tourpipe turns tour-agency listing URLs into clean, structured
// tour records. It fetches listing and detail pages (escalating from plain
// HTTP to browser rendering when needed), discovers PDF brochures, extracts
// text from them with an OCR fallback, and repairs near-JSON model output
// into validated records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, gemini/, sqlite/).
package tourpipe
