package testament

import "errors"

var (
	// ErrInvalidEstate indicates a malformed estate document.
	ErrInvalidEstate = errors.New("testament: invalid estate document")

	// ErrInvalidShares indicates beneficiary shares that do not sum to ShareScale.
	ErrInvalidShares = errors.New("testament: beneficiary shares must sum to 10000")

	// ErrEmptyInventory indicates an empty asset list where a commitment is required.
	ErrEmptyInventory = errors.New("testament: empty asset inventory")

	// ErrIndexOutOfRange indicates an asset index outside the inventory.
	ErrIndexOutOfRange = errors.New("testament: asset index out of range")

	// ErrContentMismatch indicates fetched bytes that do not hash to their CID.
	ErrContentMismatch = errors.New("testament: content does not match cid")

	// ErrNotNotarized indicates a CID with no notarization record.
	ErrNotNotarized = errors.New("testament: cid not notarized")

	// ErrNilParam indicates a required parameter was nil.
	ErrNilParam = errors.New("testament: nil parameter")

	// ErrZeroAmount indicates there is nothing to distribute.
	ErrZeroAmount = errors.New("testament: zero distribution amount")

	// ErrNoBeneficiaries indicates a distribution with no recipients.
	ErrNoBeneficiaries = errors.New("testament: no beneficiaries")
)
