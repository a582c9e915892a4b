// Package keyring manages the keypairs of the parties to a will: the
// testator who seals it, the executor who files it for probate, and the
// beneficiaries who open it. Identities are secp256k1 keypairs; the
// package covers their generation (random or BIP39/BIP32 derived),
// password-protected storage, and the ECDH key agreement that gives the
// testator and a beneficiary a shared estate key.
package keyring

import (
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"

	"github.com/june-in-exile/will-sub000/keccak"
)

// Role labels an identity's part in the will workflow.
type Role string

const (
	RoleTestator    Role = "testator"
	RoleExecutor    Role = "executor"
	RoleBeneficiary Role = "beneficiary"
)

// ScalarLen is the length of a serialized private key scalar in bytes.
const ScalarLen = 32

// Identity is a secp256k1 keypair bound to a role.
type Identity struct {
	Role       Role
	PrivateKey *ec.PrivateKey `json:"-"`
	PublicKey  *ec.PublicKey
}

// NewIdentity generates a fresh random identity for role.
func NewIdentity(role Role) (*Identity, error) {
	priv, err := ec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("keyring: key generation failed: %w", err)
	}

	return &Identity{
		Role:       role,
		PrivateKey: priv,
		PublicKey:  priv.PubKey(),
	}, nil
}

// IdentityFromBytes builds an identity from a raw 32-byte scalar.
func IdentityFromBytes(role Role, privBytes []byte) (*Identity, error) {
	if len(privBytes) != ScalarLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPrivateKey, len(privBytes), ScalarLen)
	}
	zero := true
	for _, b := range privBytes {
		if b != 0 {
			zero = false
			break
		}
	}
	if zero {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidPrivateKey)
	}

	priv, pub := ec.PrivateKeyFromBytes(privBytes)
	return &Identity{Role: role, PrivateKey: priv, PublicKey: pub}, nil
}

// PublicKeyHex returns the compressed public key as hex.
func (id *Identity) PublicKeyHex() string {
	return hex.EncodeToString(id.PublicKey.Compressed())
}

// Address is a 20-byte Ethereum-style account address.
type Address [20]byte

// Hex returns the 0x-prefixed hex form.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ParseAddress decodes a 0x-prefixed 40-character hex string.
func ParseAddress(s string) (Address, error) {
	var addr Address
	if len(s) != 2+2*len(addr) || (s[:2] != "0x" && s[:2] != "0X") {
		return addr, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return addr, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	copy(addr[:], raw)
	return addr, nil
}

// Address returns the account address of the identity: the last 20 bytes
// of keccak256(X || Y) over the uncompressed point coordinates.
func (id *Identity) Address() Address {
	var point [64]byte
	id.PublicKey.X.FillBytes(point[:32])
	id.PublicKey.Y.FillBytes(point[32:])
	digest := keccak.Sum256(point[:])

	var addr Address
	copy(addr[:], digest[12:])
	return addr
}
