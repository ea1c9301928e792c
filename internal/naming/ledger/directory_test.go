package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

type versioned interface{ Version() uint32 }

type fakeContract struct{}

func (fakeContract) Version() uint32 { return 7 }

func TestDirectory_Lookup(t *testing.T) {
	d := NewDirectory()
	addr := model.ContractAddress("fake")
	d.Register(addr, fakeContract{})

	got, err := Lookup[versioned](d, addr)
	require.NoError(t, err)
	require.Equal(t, uint32(7), got.Version())

	_, err = Lookup[versioned](d, model.ContractAddress("missing"))
	require.ErrorIs(t, err, model.ErrUnknownContract)

	d.Register(addr, "not a contract")
	_, err = Lookup[versioned](d, addr)
	require.ErrorIs(t, err, model.ErrUnknownContract)
}
