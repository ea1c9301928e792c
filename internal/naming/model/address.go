package model

// Address identifies an account or a contract.
type Address string

// Network selects address encoding parameters.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

// Bytes returns the canonical serialization used in commitments.
func (a Address) Bytes() []byte {
	return []byte(a)
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool {
	return a == ""
}

// ContractAddress returns the address of a named contract.
func ContractAddress(name string) Address {
	return Address("contract:" + name)
}
