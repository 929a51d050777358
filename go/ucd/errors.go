package ucd

import "fmt"

// InvalidMappingError reports a range mapping whose ranges are unsorted,
// malformed or overlap a previous range. The mapping is produced by the
// ingestion layer; the builder only detects violations opportunistically
// while scanning, so a nil error is not a validation pass.
type InvalidMappingError struct {
	Property string
	Range    CodepointRange
	Prev     CodepointRange
}

func (e *InvalidMappingError) Error() string {
	return fmt.Sprintf("%s: range %v is malformed, unsorted or overlaps previous range %v",
		e.Property, e.Range, e.Prev)
}

// DomainOverflowError reports a range lying outside [0, U+10FFFF].
type DomainOverflowError struct {
	Property string
	Range    CodepointRange
}

func (e *DomainOverflowError) Error() string {
	return fmt.Sprintf("%s: range %v exceeds the code point domain", e.Property, e.Range)
}

// MissingAliasError reports a property value with no resolvable alias.
// Emitting a table with a placeholder token would be silently wrong, so
// alias resolution failures abort the property's run.
type MissingAliasError struct {
	Property string
	Value    string
}

func (e *MissingAliasError) Error() string {
	return fmt.Sprintf("%s: no alias for value %q", e.Property, e.Value)
}
