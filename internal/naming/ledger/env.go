package ledger

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

// Env is the call frame a contract executes in. Frames of one invocation
// share its store overlay, timestamp, signer set and event buffer.
type Env struct {
	ctx      context.Context
	store    Store
	now      uint64
	signers  map[model.Address]struct{}
	events   *[]model.Event
	readOnly bool

	contract model.Address
	invoker  model.Address
}

// NewEnv builds a root frame over store. Hosts use it for each invocation;
// tests may use it directly.
func NewEnv(ctx context.Context, store Store, now uint64, signers ...model.Address) *Env {
	set := make(map[model.Address]struct{}, len(signers))
	for _, s := range signers {
		set[s] = struct{}{}
	}
	var events []model.Event
	return &Env{
		ctx:     ctx,
		store:   store,
		now:     now,
		signers: set,
		events:  &events,
	}
}

// Enter returns the frame for a nested call into contract. The calling
// contract becomes the invoker of the new frame.
func (e *Env) Enter(contract model.Address) *Env {
	child := *e
	child.invoker = e.contract
	child.contract = contract
	return &child
}

// Context returns the invocation context.
func (e *Env) Context() context.Context {
	return e.ctx
}

// Store returns the invocation's key-value view.
func (e *Env) Store() Store {
	return e.store
}

// Now returns the ledger timestamp fixed at the start of the invocation.
func (e *Env) Now() uint64 {
	return e.now
}

// Contract returns the contract executing in this frame.
func (e *Env) Contract() model.Address {
	return e.contract
}

// Authorized reports whether addr signed the invocation or is the contract
// that directly invoked this frame.
func (e *Env) Authorized(addr model.Address) bool {
	if addr.IsZero() {
		return false
	}
	if _, ok := e.signers[addr]; ok {
		return true
	}
	return !e.invoker.IsZero() && e.invoker == addr
}

// RequireAuth fails unless addr authorized the current frame.
func (e *Env) RequireAuth(addr model.Address) error {
	if !e.Authorized(addr) {
		return fmt.Errorf("%w: %s", model.ErrUnauthorized, addr)
	}
	return nil
}

// Emit buffers an event attributed to the executing contract.
func (e *Env) Emit(ev model.Event) {
	if e.readOnly {
		return
	}
	ev.Contract = e.contract
	ev.Timestamp = e.now
	*e.events = append(*e.events, ev)
}

// Events returns the events buffered so far.
func (e *Env) Events() []model.Event {
	out := make([]model.Event, len(*e.events))
	copy(out, *e.events)
	return out
}
