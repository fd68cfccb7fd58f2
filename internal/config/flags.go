package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h")
//	-environment deployment environment ("development", "production")
//	-blob-endpoint blob store endpoint URL
//	-blob-access-key-id blob store access key id
//	-blob-secret-access-key blob store secret access key
//	-blob-bucket blob store bucket name
//	-blob-region blob store region
//	-cdn-base-url public CDN base URL for uploaded images
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var environment string
	var blobEndpoint string
	var blobAccessKeyID string
	var blobSecretAccessKey string
	var blobBucket string
	var blobRegion string
	var cdnBaseURL string
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	flag.StringVar(&environment, "environment", "", "Deployment environment (development, production)")
	flag.StringVar(&blobEndpoint, "blob-endpoint", "", "Blob store endpoint URL")
	flag.StringVar(&blobAccessKeyID, "blob-access-key-id", "", "Blob store access key id")
	flag.StringVar(&blobSecretAccessKey, "blob-secret-access-key", "", "Blob store secret access key")
	flag.StringVar(&blobBucket, "blob-bucket", "", "Blob store bucket name")
	flag.StringVar(&blobRegion, "blob-region", "", "Blob store region")
	flag.StringVar(&cdnBaseURL, "cdn-base-url", "", "Public CDN base URL for uploaded images")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			Environment:   environment,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Blob: Blob{
			Endpoint:        blobEndpoint,
			AccessKeyID:     blobAccessKeyID,
			SecretAccessKey: blobSecretAccessKey,
			Bucket:          blobBucket,
			Region:          blobRegion,
			CDNBaseURL:      cdnBaseURL,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
