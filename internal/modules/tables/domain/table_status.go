package domain

import "strings"

// TableStatus is the current occupancy of a table.
type TableStatus string

const (
	TableStatusUnknown   TableStatus = ""
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
	TableStatusCleaning  TableStatus = "cleaning"
)

var allowedTableStatuses = map[string]TableStatus{
	string(TableStatusAvailable): TableStatusAvailable,
	string(TableStatusOccupied):  TableStatusOccupied,
	string(TableStatusReserved):  TableStatusReserved,
	string(TableStatusCleaning):  TableStatusCleaning,
}

// NormalizeTableStatus returns the canonical TableStatus for the given input.
// Unknown values are lowercased and returned as-is so the backend gets the final word.
func NormalizeTableStatus(value string) TableStatus {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return TableStatusUnknown
	}
	if status, ok := allowedTableStatuses[trimmed]; ok {
		return status
	}
	return TableStatus(trimmed)
}

// Valid reports whether s is one of the known statuses.
func (s TableStatus) Valid() bool {
	_, ok := allowedTableStatuses[string(s)]
	return ok
}
