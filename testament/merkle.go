package testament

import (
	"encoding/json"
	"fmt"

	"github.com/june-in-exile/will-sub000/keccak"
)

// Domain prefixes keep leaf and interior hashes in separate spaces, so an
// interior node can never be presented as a leaf.
const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// leafHash hashes one canonical asset encoding as a tree leaf.
func leafHash(assetJSON []byte) [32]byte {
	buf := make([]byte, 0, len(assetJSON)+1)
	buf = append(buf, leafPrefix)
	buf = append(buf, assetJSON...)
	return keccak.Sum256(buf)
}

// nodeHash combines two child hashes into their parent.
func nodeHash(left, right [32]byte) [32]byte {
	var buf [65]byte
	buf[0] = nodePrefix
	copy(buf[1:33], left[:])
	copy(buf[33:], right[:])
	return keccak.Sum256(buf[:])
}

// assetLeaves hashes each asset's canonical JSON into a leaf.
func assetLeaves(assets []Asset) ([][32]byte, error) {
	if len(assets) == 0 {
		return nil, ErrEmptyInventory
	}
	leaves := make([][32]byte, len(assets))
	for i := range assets {
		data, err := json.Marshal(&assets[i])
		if err != nil {
			return nil, fmt.Errorf("testament: marshal asset %d: %w", i, err)
		}
		leaves[i] = leafHash(data)
	}
	return leaves, nil
}

// collapseLevel pairs adjacent nodes into parents, promoting an odd tail
// to the next level unchanged.
func collapseLevel(level [][32]byte) [][32]byte {
	next := make([][32]byte, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 == len(level) {
			next = append(next, level[i])
			continue
		}
		next = append(next, nodeHash(level[i], level[i+1]))
	}
	return next
}

// BuildRoot computes the inventory commitment over the asset list.
//
// Leaves are keccak256(0x00 || asset JSON), interior nodes are
// keccak256(0x01 || left || right), and a node without a sibling is
// promoted unchanged.
func BuildRoot(assets []Asset) ([32]byte, error) {
	leaves, err := assetLeaves(assets)
	if err != nil {
		return [32]byte{}, err
	}

	level := leaves
	for len(level) > 1 {
		level = collapseLevel(level)
	}
	return level[0], nil
}

// ProofStep is one sibling on the path from a leaf to the root.
type ProofStep struct {
	Hash [32]byte `json:"hash"`
	Left bool     `json:"left"` // sibling sits to the left of the running hash
}

// InventoryProof shows that one asset belongs to a committed inventory
// without revealing the others. Index records the asset's position in the
// full inventory.
type InventoryProof struct {
	Index int         `json:"index"`
	Steps []ProofStep `json:"steps"`
}

// Prove builds the inclusion proof for the asset at index.
func Prove(assets []Asset, index int) (*InventoryProof, error) {
	leaves, err := assetLeaves(assets)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(leaves) {
		return nil, fmt.Errorf("%w: index %d of %d assets", ErrIndexOutOfRange, index, len(leaves))
	}

	proof := &InventoryProof{Index: index}
	level := leaves
	idx := index
	for len(level) > 1 {
		// A promoted tail node has no sibling at this level.
		if sib := idx ^ 1; sib < len(level) {
			proof.Steps = append(proof.Steps, ProofStep{Hash: level[sib], Left: idx%2 == 1})
		}
		level = collapseLevel(level)
		idx /= 2
	}
	return proof, nil
}

// VerifyProof checks that asset is committed under root. It recomputes the
// leaf from the asset's canonical JSON and walks the proof path.
func VerifyProof(asset Asset, proof *InventoryProof, root [32]byte) (bool, error) {
	if proof == nil {
		return false, fmt.Errorf("%w: proof", ErrNilParam)
	}

	data, err := json.Marshal(&asset)
	if err != nil {
		return false, fmt.Errorf("testament: marshal asset: %w", err)
	}

	h := leafHash(data)
	for _, step := range proof.Steps {
		if step.Left {
			h = nodeHash(step.Hash, h)
		} else {
			h = nodeHash(h, step.Hash)
		}
	}
	return h == root, nil
}
