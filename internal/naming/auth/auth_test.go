package auth

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

func TestSigner_AddressFormat(t *testing.T) {
	tests := []struct {
		network model.Network
		prefix  []string
	}{
		{network: model.Mainnet, prefix: []string{"1"}},
		{network: model.Testnet, prefix: []string{"m", "n"}},
		{network: model.Regtest, prefix: []string{"m", "n"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.network), func(t *testing.T) {
			s, err := GenerateSigner(tt.network)
			require.NoError(t, err)

			addr := string(s.Address())
			ok := false
			for _, p := range tt.prefix {
				ok = ok || strings.HasPrefix(addr, p)
			}
			require.True(t, ok, "address %s", addr)
		})
	}
}

func TestSigner_Deterministic(t *testing.T) {
	key, _ := btcec.PrivKeyFromBytes([]byte(strings.Repeat("\x01", 32)))
	a, err := NewSigner(key, model.Mainnet)
	require.NoError(t, err)
	b, err := NewSigner(key, model.Mainnet)
	require.NoError(t, err)
	require.Equal(t, a.Address(), b.Address())
}

func TestChainParams_Unknown(t *testing.T) {
	_, err := ChainParams("signet")
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestVerifier_Verify(t *testing.T) {
	alice, err := GenerateSigner(model.Testnet)
	require.NoError(t, err)
	bob, err := GenerateSigner(model.Testnet)
	require.NoError(t, err)
	v, err := NewVerifier(model.Testnet)
	require.NoError(t, err)

	payload := []byte(`{"label":"alice"}`)

	t.Run("signers in order", func(t *testing.T) {
		got, err := v.Verify(payload, []Signature{alice.Sign(payload), bob.Sign(payload), alice.Sign(payload)})
		require.NoError(t, err)
		require.Equal(t, []model.Address{alice.Address(), bob.Address()}, got)
	})

	t.Run("no signatures", func(t *testing.T) {
		got, err := v.Verify(payload, nil)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("tampered payload", func(t *testing.T) {
		sig := alice.Sign(payload)
		_, err := v.Verify([]byte(`{"label":"mallory"}`), []Signature{sig})
		require.ErrorIs(t, err, model.ErrInvalidSignature)
	})

	t.Run("swapped public key", func(t *testing.T) {
		sig := alice.Sign(payload)
		sig.PubKey = bob.Sign(payload).PubKey
		_, err := v.Verify(payload, []Signature{sig})
		require.ErrorIs(t, err, model.ErrInvalidSignature)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify(payload, []Signature{{PubKey: []byte{1, 2}, Sig: []byte{3}}})
		require.ErrorIs(t, err, model.ErrInvalidSignature)

		sig := alice.Sign(payload)
		sig.Sig = []byte{0x30, 0x00}
		_, err = v.Verify(payload, []Signature{sig})
		require.ErrorIs(t, err, model.ErrInvalidSignature)
	})

	t.Run("network mismatch changes address", func(t *testing.T) {
		mainnet, err := NewVerifier(model.Mainnet)
		require.NoError(t, err)
		got, err := mainnet.Verify(payload, []Signature{alice.Sign(payload)})
		require.NoError(t, err)
		require.NotEqual(t, alice.Address(), got[0])
	})
}

func TestParseAddress(t *testing.T) {
	main, err := GenerateSigner(model.Mainnet)
	require.NoError(t, err)

	got, err := ParseAddress(string(main.Address()), model.Mainnet)
	require.NoError(t, err)
	require.Equal(t, main.Address(), got)

	_, err = ParseAddress(string(main.Address()), model.Regtest)
	require.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = ParseAddress("not-an-address", model.Mainnet)
	require.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = ParseAddress(string(main.Address()), "signet")
	require.ErrorIs(t, err, model.ErrInvalidInput)
}
