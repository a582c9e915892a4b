package keyring

import (
	"fmt"

	bip32 "github.com/bsv-blockchain/go-sdk/compat/bip32"
	"github.com/bsv-blockchain/go-sdk/compat/bip39"
	chaincfg "github.com/bsv-blockchain/go-sdk/transaction/chaincfg"
)

const (
	// Mnemonic entropy sizes.
	Mnemonic12Words = 128 // 12-word mnemonic
	Mnemonic24Words = 256 // 24-word mnemonic

	// BIP44 path constants. All party keys live under m/44'/60'.
	PurposeBIP44  = 44
	CoinTypeEther = 60
	ExternalChain = 0

	// Hardened is the BIP32 hardened derivation offset.
	Hardened = 0x80000000
)

// GenerateMnemonic creates a new BIP39 mnemonic with the specified entropy
// bits. Use Mnemonic12Words (128) for 12 words or Mnemonic24Words (256)
// for 24 words.
func GenerateMnemonic(entropyBits int) (string, error) {
	if entropyBits != Mnemonic12Words && entropyBits != Mnemonic24Words {
		return "", ErrInvalidEntropy
	}

	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", fmt.Errorf("keyring: failed to generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("keyring: failed to generate mnemonic: %w", err)
	}

	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic string is valid BIP39.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// SeedFromMnemonic derives a 64-byte BIP39 seed from mnemonic + optional
// passphrase. The passphrase may be empty; it still participates in the
// derivation.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !ValidateMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("keyring: failed to derive seed: %w", err)
	}

	return seed, nil
}

// roleAccount maps a role to its hardened account index under m/44'/60'.
func roleAccount(role Role) (uint32, error) {
	switch role {
	case RoleTestator:
		return 0, nil
	case RoleExecutor:
		return 1, nil
	case RoleBeneficiary:
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// DeriveIdentity derives the identity for role at index from a BIP39 seed.
// One mnemonic therefore backs every party key a testator manages.
//
//	Path: m/44'/60'/{role account}'/0/{index}
func DeriveIdentity(seed []byte, role Role, index uint32) (*Identity, error) {
	if len(seed) == 0 {
		return nil, ErrInvalidSeed
	}

	account, err := roleAccount(role)
	if err != nil {
		return nil, err
	}

	key, err := bip32.NewMaster(seed, &chaincfg.MainNet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}

	for _, step := range []uint32{
		PurposeBIP44 + Hardened,
		CoinTypeEther + Hardened,
		account + Hardened,
		ExternalChain,
		index,
	} {
		key, err = key.Child(step)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to extract EC private key: %w", ErrDerivationFailed, err)
	}

	return &Identity{
		Role:       role,
		PrivateKey: priv,
		PublicKey:  priv.PubKey(),
	}, nil
}
