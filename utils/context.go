package utils

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

type awsConfigKey struct{}

// WithAwsConfig returns a context carrying an explicit AWS client
// configuration. When set it takes precedence over any s3.* properties
// at the time a bucket is opened.
func WithAwsConfig(ctx context.Context, cfg *aws.Config) context.Context {
	return context.WithValue(ctx, awsConfigKey{}, cfg)
}

// GetAwsConfig returns the AWS configuration carried by ctx, or nil
// when none was attached.
func GetAwsConfig(ctx context.Context) *aws.Config {
	if cfg, ok := ctx.Value(awsConfigKey{}).(*aws.Config); ok {
		return cfg
	}

	return nil
}
