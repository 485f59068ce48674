package domain

// UpsertResult mirrors the write acknowledgement returned to clients on
// profile syncs.
type UpsertResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}
