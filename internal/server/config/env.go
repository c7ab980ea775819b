package config

import (
	"os"
	"time"
)

// parseEnv overlays Config values from environment variables. Environment
// wins over flags so that deployment platforms can override everything.
//
// Recognized variables:
//
//	ADDRESS                  HTTP bind address
//	DATABASE_DSN             PostgreSQL DSN
//	JWT_SECRET               access-token HMAC secret
//	JWT_REFRESH_SECRET       refresh-token HMAC secret
//	ACCESS_TOKEN_VALIDITY    access token lifetime (Go duration, e.g. "1m")
//	REFRESH_TOKEN_VALIDITY   refresh token lifetime (Go duration, e.g. "24h")
//	AWS_ACCESS_KEY           S3 access key
//	AWS_SECRET_ACCESS_KEY    S3 secret key
//	AWS_BUCKET_NAME          S3 bucket
//	AWS_REGION               S3 region
//	S3_BASE_ENDPOINT         custom S3 endpoint (MinIO etc.)
//	UPLOAD_URL_VALIDITY      presigned PUT URL lifetime (Go duration)
//	SMTP_ADDR                SMTP host:port for the contact mailer
//	SMTP_USER                SMTP username
//	SMTP_PASSWORD            SMTP password
//	CONTACT_RECIPIENT        destination address for contact-form mail
func parseEnv(config *Config) {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setDuration := func(dst *time.Duration, key string) {
		if v, ok := os.LookupEnv(key); ok {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	setString(&config.EndpointAddr, "ADDRESS")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.JWTSecret, "JWT_SECRET")
	setString(&config.JWTRefreshSecret, "JWT_REFRESH_SECRET")
	setDuration(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_VALIDITY")
	setDuration(&config.RefreshTokenValidityDuration, "REFRESH_TOKEN_VALIDITY")
	setString(&config.S3AccessKey, "AWS_ACCESS_KEY")
	setString(&config.S3SecretKey, "AWS_SECRET_ACCESS_KEY")
	setString(&config.S3Bucket, "AWS_BUCKET_NAME")
	setString(&config.S3Region, "AWS_REGION")
	setString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	setDuration(&config.UploadURLValidityDuration, "UPLOAD_URL_VALIDITY")
	setString(&config.SMTPAddr, "SMTP_ADDR")
	setString(&config.SMTPUser, "SMTP_USER")
	setString(&config.SMTPPassword, "SMTP_PASSWORD")
	setString(&config.ContactRecipient, "CONTACT_RECIPIENT")
}
