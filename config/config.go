// Copyright (c) 2025 The will developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config loads and stores the will tooling configuration: where
// sealed envelopes and key files live, which chain the notary targets,
// and how published will pointers are resolved. The on-disk format is a
// plain key=value file with # comments.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the tooling configuration.
type Config struct {
	// DataDir is the base directory for the envelope store, the pin
	// index, and encrypted key files.
	DataDir string

	// ChainID is the EVM chain id notarizations are bound to.
	ChainID uint64

	// Network names the chain environment: "mainnet", "sepolia", or
	// "local".
	Network string

	// DNSUpstream is the recursive resolver used for DNSSEC-validated
	// will pointer lookups, as host:port.
	DNSUpstream string

	// Gateway is the base URL of an envelope gateway consulted when
	// content is not held locally. Empty disables remote fetching.
	Gateway string
}

// DefaultDataDir returns the default data directory, ~/.will. If the
// home directory cannot be determined it falls back to .will in the
// working directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".will"
	}
	return filepath.Join(home, ".will")
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		DataDir:     DefaultDataDir(),
		ChainID:     1,
		Network:     "mainnet",
		DNSUpstream: "8.8.8.8:53",
		Gateway:     "",
	}
}

// ConfigPath returns the path of the config file inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config")
}

// LoadConfig reads the configuration file at path. Missing keys keep
// their defaults, unknown keys are ignored so older binaries can read
// newer files, and a line that is not a key=value pair (and not blank or
// a # comment) is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, err := parseKeyValue(line)
		if err != nil {
			return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, lineNo, line)
		}

		switch key {
		case "datadir":
			cfg.DataDir = value
		case "chainid":
			id, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return cfg, fmt.Errorf("%w: line %d: chainid %q", ErrInvalidConfigLine, lineNo, value)
			}
			cfg.ChainID = id
		case "network":
			cfg.Network = value
		case "dnsupstream":
			cfg.DNSUpstream = value
		case "gateway":
			cfg.Gateway = value
		default:
			// Unknown keys are ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	return cfg, nil
}

// parseKeyValue splits a "key = value" line on the first '=', trimming
// whitespace around both parts. The value may itself contain '='.
func parseKeyValue(line string) (key, value string, err error) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", fmt.Errorf("no '=' separator")
	}
	key = strings.ToLower(strings.TrimSpace(line[:idx]))
	value = strings.TrimSpace(line[idx+1:])
	if key == "" {
		return "", "", fmt.Errorf("empty key")
	}
	return key, value, nil
}

// SaveConfig writes cfg to path in the key=value format, creating parent
// directories as needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Will Configuration\n")
	b.WriteString("# Generated file; edit values as needed.\n\n")
	fmt.Fprintf(&b, "datadir = %s\n", cfg.DataDir)
	fmt.Fprintf(&b, "chainid = %d\n", cfg.ChainID)
	fmt.Fprintf(&b, "network = %s\n", cfg.Network)
	fmt.Fprintf(&b, "dnsupstream = %s\n", cfg.DNSUpstream)
	fmt.Fprintf(&b, "gateway = %s\n", cfg.Gateway)

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
