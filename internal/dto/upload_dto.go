package dto

// MovementRow is the typed schema for one bulk-upload row.
// Both columns are required; anything unparsable is a per-row error, never a
// request-level failure.
type MovementRow struct {
	ItemID   uint
	Quantity int
}

// UploadResponse summarizes a bulk CSV upload. Row-level failures are
// collected into Errors keyed by row position; the batch as a whole succeeds.
type UploadResponse struct {
	Status    string   `json:"status"`
	Processed int      `json:"processed"`
	Errors    []string `json:"errors"`
}
