// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Every secret and connection setting is mandatory: the
// process must refuse to start rather than run with a missing signing key
// or an unreachable store.
//
// Returns nil if the configuration is valid, or a sentinel error naming the
// incomplete configuration group otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Blob.Endpoint == "" || cfg.Blob.AccessKeyID == "" || cfg.Blob.SecretAccessKey == "" ||
		cfg.Blob.Bucket == "" || cfg.Blob.CDNBaseURL == "" {
		return ErrInvalidBlobConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
