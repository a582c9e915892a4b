package testament

import (
	"fmt"

	"github.com/june-in-exile/will-sub000/keyring"
)

// Payout is one beneficiary's cut of a distributed amount.
type Payout struct {
	Address keyring.Address
	Amount  uint64
}

// DistributeAmount splits amount across the beneficiaries in proportion
// to their basis-point shares. Integer division truncates, so the last
// beneficiary takes the remainder; the payouts always sum to exactly
// amount. The shares must sum to ShareScale, otherwise the remainder
// would silently absorb the missing proportion.
func DistributeAmount(amount uint64, beneficiaries []Beneficiary) ([]Payout, error) {
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	if len(beneficiaries) == 0 {
		return nil, ErrNoBeneficiaries
	}

	var total uint64
	for _, b := range beneficiaries {
		total += uint64(b.Share)
	}
	if total != ShareScale {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidShares, total)
	}

	payouts := make([]Payout, len(beneficiaries))
	var distributed uint64

	for i, b := range beneficiaries {
		addr, err := keyring.ParseAddress(b.Address)
		if err != nil {
			return nil, fmt.Errorf("%w: beneficiary %d: %w", ErrInvalidEstate, i, err)
		}
		payouts[i].Address = addr

		if i == len(beneficiaries)-1 {
			// Last beneficiary gets the remainder.
			payouts[i].Amount = amount - distributed
		} else {
			payouts[i].Amount = proportion(amount, uint64(b.Share))
			distributed += payouts[i].Amount
		}
	}

	return payouts, nil
}

// proportion computes floor(amount*share/ShareScale) without letting the
// product overflow: q*share stays below amount, and the residue product
// is bounded by ShareScale squared.
func proportion(amount, share uint64) uint64 {
	q, r := amount/ShareScale, amount%ShareScale
	return q*share + r*share/ShareScale
}

// VerifyDistribution checks that payouts match what DistributeAmount
// would produce for the given amount and beneficiaries.
func VerifyDistribution(payouts []Payout, amount uint64, beneficiaries []Beneficiary) error {
	if len(payouts) != len(beneficiaries) {
		return fmt.Errorf("testament: payout count %d != beneficiary count %d",
			len(payouts), len(beneficiaries))
	}

	expected, err := DistributeAmount(amount, beneficiaries)
	if err != nil {
		return err
	}

	for i := range payouts {
		if payouts[i].Address != expected[i].Address {
			return fmt.Errorf("testament: payout %d: address mismatch", i)
		}
		if payouts[i].Amount != expected[i].Amount {
			return fmt.Errorf("testament: payout %d: amount %d != expected %d",
				i, payouts[i].Amount, expected[i].Amount)
		}
	}
	return nil
}

// Distribute splits amount across the estate's beneficiaries.
func (e *Estate) Distribute(amount uint64) ([]Payout, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil estate", ErrInvalidEstate)
	}
	return DistributeAmount(amount, e.Beneficiaries)
}
