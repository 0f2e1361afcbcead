// Package models defines the domain types of the tip calculator.
//
// # Models
//
//   - State: the three primary inputs (bill text, tip selection, party size)
//   - TipSelection: tagged union of Preset(value) and Custom(text)
//   - Breakdown: tip amount, total and per-person share derived from State
//   - Display: currency-formatted strings ready for rendering
//
// All values are transient. Nothing here is persisted; a State lives only as
// long as the screen or request that owns it.
//
// # Design Principles
//
//  1. Store only primary inputs; derive everything else on demand
//  2. Keep the tip variant explicit instead of juggling a flag and two fields
//  3. Round only when formatting, never in stored values
package models
