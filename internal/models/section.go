// Package models defines the data model shared by the statement
// classification engine: section states, monetary records, and the
// structured analysis result handed to callers.
package models

// SectionState tracks which statement section the line scanner is currently
// inside. It mutates only via header-line detection and resets to
// SectionUnknown at the start of each statement.
type SectionState int

const (
	SectionUnknown SectionState = iota
	SectionDeposit
	SectionWithdrawal
)

// String returns a human-readable name for the section state.
func (s SectionState) String() string {
	switch s {
	case SectionDeposit:
		return "deposit"
	case SectionWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// Direction is the inferred money-flow direction of a linked account.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionIn
	DirectionOut
)

// String returns the display form used in reports ("In", "Out", "Unknown").
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "In"
	case DirectionOut:
		return "Out"
	default:
		return "Unknown"
	}
}
