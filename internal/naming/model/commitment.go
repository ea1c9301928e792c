package model

// Commitment is the stored half of a commit-reveal registration. It never
// contains label bytes.
type Commitment struct {
	CreatedAt uint64
	LabelLen  uint32
}
