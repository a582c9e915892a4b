// Copyright (c) 2025 The will developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

import (
	"fmt"
	"net"
	"net/url"
)

// validNetworks lists the accepted chain environment names.
var validNetworks = map[string]bool{
	"mainnet": true,
	"sepolia": true,
	"local":   true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if !validNetworks[cfg.Network] {
		return ErrInvalidNetwork
	}

	if cfg.ChainID == 0 {
		return ErrInvalidChainID
	}

	if err := validateAddr(cfg.DNSUpstream); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDNSUpstream, err)
	}

	if cfg.Gateway != "" {
		if err := validateGateway(cfg.Gateway); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidGateway, err)
		}
	}

	return nil
}

// validateAddr checks that addr is a valid host:port address.
func validateAddr(addr string) error {
	_, _, err := net.SplitHostPort(addr)
	return err
}

// validateGateway checks that raw is an absolute http or https URL.
func validateGateway(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
