package repositories

// ListFilter selects a page of records. Offset and Limit are expected to be
// normalized by the caller (see utils.NormalizePage).
type ListFilter struct {
	Offset          int
	Limit           int
	IncludeInactive bool
}
