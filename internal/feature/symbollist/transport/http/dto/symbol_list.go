// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

// SymbolItem represents a symbol in the list response.
// It contains only the public-facing fields needed by clients.
type SymbolItem struct {
	Code           string   `json:"code"`
	DaysFilter     []string `json:"days_filter"`
	FirstDeparture string   `json:"first_departure"`
	Occurrences    int      `json:"occurrences"`
}

// MarkingItem is one decoded legend marking.
type MarkingItem struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// SymbolDetail is the response of GET /symbols/:code.
type SymbolDetail struct {
	Code           string        `json:"code"`
	DayCodes       string        `json:"day_codes"`
	Marks          string        `json:"marks"`
	DaysFilter     []string      `json:"days_filter"`
	FirstDeparture string        `json:"first_departure"`
	Occurrences    int           `json:"occurrences"`
	Markings       []MarkingItem `json:"markings"`
}

// IngestResponse is the response of POST /admin/ingest.
type IngestResponse struct {
	Matches     int   `json:"matches"`
	Symbols     int   `json:"symbols"`
	Deactivated int64 `json:"deactivated"`
}
