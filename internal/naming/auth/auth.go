// Package auth derives account addresses from secp256k1 keys and verifies
// the signatures that authorize an invocation.
package auth

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

// Signature is a DER encoded ECDSA signature together with the compressed
// public key that produced it.
type Signature struct {
	PubKey []byte `json:"pub_key"`
	Sig    []byte `json:"sig"`
}

// ChainParams returns the address encoding parameters for network.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch network {
	case model.Mainnet:
		return &chaincfg.MainNetParams, nil
	case model.Testnet:
		return &chaincfg.TestNet3Params, nil
	case model.Regtest:
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("%w: unsupported network %q", model.ErrInvalidInput, network)
	}
}

// AddressFromPubKey returns the P2PKH address of pub.
func AddressFromPubKey(pub *btcec.PublicKey, params *chaincfg.Params) (model.Address, error) {
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), params)
	if err != nil {
		return "", fmt.Errorf("derive address: %w", err)
	}
	return model.Address(addr.EncodeAddress()), nil
}

// ParseAddress validates s as an account address on network.
func ParseAddress(s string, network model.Network) (model.Address, error) {
	params, err := ChainParams(network)
	if err != nil {
		return "", err
	}
	addr, err := btcutil.DecodeAddress(s, params)
	if err != nil {
		return "", fmt.Errorf("%w: address %q: %v", model.ErrInvalidInput, s, err)
	}
	if !addr.IsForNet(params) {
		return "", fmt.Errorf("%w: address %q is not for %s", model.ErrInvalidInput, s, network)
	}
	return model.Address(addr.EncodeAddress()), nil
}

// Digest is the message hash signed for payload.
func Digest(payload []byte) []byte {
	return chainhash.HashB(payload)
}

// Signer signs invocation payloads with a single key.
type Signer struct {
	key     *btcec.PrivateKey
	address model.Address
}

// NewSigner wraps key for network.
func NewSigner(key *btcec.PrivateKey, network model.Network) (*Signer, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	addr, err := AddressFromPubKey(key.PubKey(), params)
	if err != nil {
		return nil, err
	}
	return &Signer{key: key, address: addr}, nil
}

// GenerateSigner creates a signer with a fresh random key.
func GenerateSigner(network model.Network) (*Signer, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return NewSigner(key, network)
}

// Address returns the signer's account address.
func (s *Signer) Address() model.Address {
	return s.address
}

// Sign signs payload.
func (s *Signer) Sign(payload []byte) Signature {
	sig := ecdsa.Sign(s.key, Digest(payload))
	return Signature{
		PubKey: s.key.PubKey().SerializeCompressed(),
		Sig:    sig.Serialize(),
	}
}

// Verifier checks invocation signatures for one network.
type Verifier struct {
	params *chaincfg.Params
}

// NewVerifier creates a Verifier for network.
func NewVerifier(network model.Network) (*Verifier, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &Verifier{params: params}, nil
}

// Verify checks every signature over payload and returns the distinct
// signer addresses in input order. A single bad signature rejects the whole
// set.
func (v *Verifier) Verify(payload []byte, sigs []Signature) ([]model.Address, error) {
	digest := Digest(payload)
	seen := make(map[model.Address]struct{}, len(sigs))
	signers := make([]model.Address, 0, len(sigs))
	for i, s := range sigs {
		pub, err := btcec.ParsePubKey(s.PubKey)
		if err != nil {
			return nil, fmt.Errorf("%w: signature %d: parse public key: %v", model.ErrInvalidSignature, i, err)
		}
		sig, err := ecdsa.ParseDERSignature(s.Sig)
		if err != nil {
			return nil, fmt.Errorf("%w: signature %d: parse: %v", model.ErrInvalidSignature, i, err)
		}
		if !sig.Verify(digest, pub) {
			return nil, fmt.Errorf("%w: signature %d does not match payload", model.ErrInvalidSignature, i)
		}
		addr, err := AddressFromPubKey(pub, v.params)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		signers = append(signers, addr)
	}
	return signers, nil
}
