package permit

import "github.com/june-in-exile/will-sub000/keccak"

// domainTypeHash commits to the EIP-712 domain layout.
var domainTypeHash = keccak.Sum256([]byte(
	"EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"))

// Domain identifies the verifying contract for EIP-712 signatures. A
// signature bound to one domain never verifies under another, which keeps
// testnet rehearsals from replaying against mainnet.
type Domain struct {
	Name              string
	Version           string
	ChainID           uint64
	VerifyingContract [20]byte
}

// Separator returns the EIP-712 domain separator hash.
func (d Domain) Separator() [WordLen]byte {
	return hashWords(
		domainTypeHash,
		keccak.Sum256([]byte(d.Name)),
		keccak.Sum256([]byte(d.Version)),
		wordUint64(d.ChainID),
		wordAddress(d.VerifyingContract),
	)
}
