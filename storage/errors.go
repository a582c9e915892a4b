package storage

import "errors"

var (
	// ErrNotFound indicates no content exists for the given CID.
	ErrNotFound = errors.New("storage: content not found")

	// ErrInvalidCID indicates a malformed content identifier.
	ErrInvalidCID = errors.New("storage: invalid content id")

	// ErrCIDMismatch indicates content whose digest does not match its CID.
	ErrCIDMismatch = errors.New("storage: content does not match id")

	// ErrEmptyContent indicates an attempt to store empty content.
	ErrEmptyContent = errors.New("storage: content is empty")

	// ErrInvalidBaseDir indicates the base directory path is invalid.
	ErrInvalidBaseDir = errors.New("storage: invalid base directory")

	// ErrIOFailure indicates a file read/write error.
	ErrIOFailure = errors.New("storage: I/O failure")

	// ErrDecompressedTooLarge indicates decompressed data exceeds the safety limit.
	ErrDecompressedTooLarge = errors.New("storage: decompressed data exceeds maximum size")

	// ErrNilParam indicates a required parameter was nil or empty.
	ErrNilParam = errors.New("storage: nil parameter")

	// ErrPinNotFound indicates no pin record exists for the given CID.
	ErrPinNotFound = errors.New("storage: pin not found")

	// ErrLabelNotFound indicates no label with the given name exists.
	ErrLabelNotFound = errors.New("storage: label not found")

	// ErrDNSLookupFailed indicates a DNS query failed or returned no records.
	ErrDNSLookupFailed = errors.New("storage: DNS lookup failed")

	// ErrDNSSECValidationFailed indicates the DNS response lacked the AD flag.
	ErrDNSSECValidationFailed = errors.New("storage: DNSSEC validation failed")

	// ErrNoDNSLink indicates no dnslink TXT record was found for the domain.
	ErrNoDNSLink = errors.New("storage: no dnslink record")
)
