package permit

import (
	"fmt"
	"math/big"

	"github.com/june-in-exile/will-sub000/keccak"
)

// Type strings fixed by the deployed Permit2 contract. The transfer type
// embeds the permissions type per EIP-712 nested-struct encoding.
const (
	tokenPermissionsType   = "TokenPermissions(address token,uint256 amount)"
	permitTransferFromType = "PermitTransferFrom(TokenPermissions permitted,address spender,uint256 nonce,uint256 deadline)" +
		tokenPermissionsType
)

var (
	tokenPermissionsTypeHash   = keccak.Sum256([]byte(tokenPermissionsType))
	permitTransferFromTypeHash = keccak.Sum256([]byte(permitTransferFromType))
)

// PermitTransferFrom authorizes one Permit2 token transfer: the escrow
// contract (spender) may move Amount of Token once, before Deadline, under
// an unordered Nonce.
type PermitTransferFrom struct {
	Token    [20]byte
	Amount   *big.Int
	Spender  [20]byte
	Nonce    *big.Int
	Deadline *big.Int
}

// StructHash returns the EIP-712 struct hash of the permit.
func (p PermitTransferFrom) StructHash() ([WordLen]byte, error) {
	amount, err := wordBigInt(p.Amount)
	if err != nil {
		return [WordLen]byte{}, fmt.Errorf("permit: amount: %w", err)
	}
	permitted := hashWords(tokenPermissionsTypeHash, wordAddress(p.Token), amount)

	nonce, err := wordBigInt(p.Nonce)
	if err != nil {
		return [WordLen]byte{}, fmt.Errorf("permit: nonce: %w", err)
	}
	deadline, err := wordBigInt(p.Deadline)
	if err != nil {
		return [WordLen]byte{}, fmt.Errorf("permit: deadline: %w", err)
	}

	return hashWords(
		permitTransferFromTypeHash,
		permitted,
		wordAddress(p.Spender),
		nonce,
		deadline,
	), nil
}

// Digest returns the signing digest for the permit under domain:
// keccak256(0x19 0x01 || separator || structHash).
func (p PermitTransferFrom) Digest(domain Domain) ([WordLen]byte, error) {
	structHash, err := p.StructHash()
	if err != nil {
		return [WordLen]byte{}, err
	}

	separator := domain.Separator()

	var h keccak.Hasher
	_, _ = h.Write([]byte{0x19, 0x01})
	_, _ = h.Write(separator[:])
	_, _ = h.Write(structHash[:])
	return h.Sum256(), nil
}

// NotarizationDigest computes the payload a notary signs when anchoring a
// sealed will: keccak256 over the testator's address, the will CID, and
// the anchoring timestamp, each in its own ABI slot.
func NotarizationDigest(testator [20]byte, cid [32]byte, timestamp uint64) [WordLen]byte {
	return hashWords(wordAddress(testator), cid, wordUint64(timestamp))
}
