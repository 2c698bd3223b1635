package source

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/golang/snappy"
)

// S3Source reads model files from an S3 bucket. Simulation ensembles are
// commonly staged in object storage after an HPC run.
type S3Source struct {
	client *s3.Client
	bucket string
	prefix string
}

// S3Params configures an S3Source. Endpoint and the static credentials are
// optional; when AccessKey is empty the default AWS credential chain is used.
type S3Params struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3SourceWithClient creates a source using an existing, preconfigured
// S3 client.
func NewS3SourceWithClient(client *s3.Client, bucket, prefix string) *S3Source {
	return &S3Source{client: client, bucket: bucket, prefix: prefix}
}

// NewS3Source creates a source for the given bucket and key prefix.
func NewS3Source(ctx context.Context, params S3Params) (*S3Source, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(params.Region),
	}
	if params.Endpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(params.Endpoint))
	}
	if params.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(params.AccessKey, params.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &S3Source{
		client: s3.NewFromConfig(cfg),
		bucket: params.Bucket,
		prefix: params.Prefix,
	}, nil
}

// Open fetches the named object, falling back to the snappy-compressed
// variant when the plain key does not exist.
func (s *S3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	body, err := s.get(ctx, path.Join(s.prefix, name))
	if err == nil {
		return body, nil
	}
	if !isNoSuchKey(err) {
		return nil, err
	}

	body, cerr := s.get(ctx, path.Join(s.prefix, name+CompressedSuffix))
	if cerr != nil {
		if isNoSuchKey(cerr) {
			return nil, ErrNotFound
		}
		return nil, cerr
	}
	return &readCloser{Reader: snappy.NewReader(body), closer: body}, nil
}

func (s *S3Source) get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

func isNoSuchKey(err error) bool {
	var nsk *types.NoSuchKey
	return errors.As(err, &nsk)
}
