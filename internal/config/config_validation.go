// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if err := validateAddress(cfg.Adapter.HTTPAddress); err != nil || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: address %q, timeout %s", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress, cfg.Adapter.RequestTimeout)
	}

	if cfg.Session.KeyTTL <= 0 || cfg.Session.KDFIterations < MinKDFIterations {
		return fmt.Errorf("%w: ttl %s, iterations %d (minimum %d)",
			ErrInvalidSessionConfigs, cfg.Session.KeyTTL, cfg.Session.KDFIterations, MinKDFIterations)
	}

	if cfg.Workers.ReauthInterval <= 0 || cfg.Workers.ReauthTimeout < 0 || cfg.Workers.MaxReauthAttempts < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateAddress(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("address must include host")
	}
	return nil
}
