package model

// EventKind names a published state change.
type EventKind string

var (
	EventTransfer        EventKind = "transfer"
	EventResolverChanged EventKind = "resolver_changed"
	EventRenew           EventKind = "renew"
	EventCommitMade      EventKind = "commit_made"
	EventNameRegistered  EventKind = "name_registered"
	EventNameRenewed     EventKind = "name_renewed"
	EventAddressChanged  EventKind = "address_changed"
	EventTextChanged     EventKind = "text_changed"
)

// Event is a state change emitted by a contract during an invocation. Fields
// not relevant to Kind are left zero.
type Event struct {
	Contract   Address   `json:"contract"`
	Kind       EventKind `json:"kind"`
	Sequence   uint64    `json:"sequence"`
	Timestamp  uint64    `json:"timestamp"`
	Namehash   Hash      `json:"namehash"`
	Commitment Hash      `json:"commitment"`
	From       Address   `json:"from,omitempty"`
	To         Address   `json:"to,omitempty"`
	Owner      Address   `json:"owner,omitempty"`
	Resolver   Address   `json:"resolver,omitempty"`
	Addr       Address   `json:"addr,omitempty"`
	Key        string    `json:"key,omitempty"`
	ExpiresAt  uint64    `json:"expires_at,omitempty"`
}

// IsGenesis reports whether a transfer event records a first assignment
// rather than a change of hands.
func (e Event) IsGenesis() bool {
	return e.Kind == EventTransfer && e.From == e.To
}
