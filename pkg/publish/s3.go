package publish

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ipfs/go-cid"

	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/config"
)

// S3Publisher pushes artifacts to an S3-compatible pinning gateway.
// Objects are keyed by their CID string.
type S3Publisher struct {
	client *s3.Client
	cfg    config.S3Config
}

// NewS3Publisher connects to the gateway and checks the bucket is reachable.
//
// Errors:
//
// 	- blessnet-error-publish -- configuration failed or the bucket is not reachable
func NewS3Publisher(ctx context.Context, cfg config.S3Config) (*S3Publisher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL:               cfg.Endpoint,
					HostnameImmutable: true,
					SigningRegion:     cfg.Region,
				}, nil
			})),
	)
	if err != nil {
		return nil, blsapi.ErrorPublish("loading gateway configuration", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(cfg.Bucket),
	})
	if err != nil {
		return nil, blsapi.ErrorPublish("could not access bucket "+cfg.Bucket, err)
	}

	return &S3Publisher{
		client: client,
		cfg:    cfg,
	}, nil
}

func (pub *S3Publisher) Has(ctx context.Context, id cid.Cid) (bool, error) {
	_, err := pub.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(pub.cfg.Bucket),
		Key:    aws.String(id.String()),
	})
	if err == nil {
		return true, nil
	}
	var responseError *awshttp.ResponseError
	if errors.As(err, &responseError) && responseError.ResponseError.HTTPStatusCode() == http.StatusNotFound {
		return false, nil
	}
	return false, blsapi.ErrorPublish("checking for "+id.String(), err)
}

func (pub *S3Publisher) Publish(ctx context.Context, id cid.Cid, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return blsapi.ErrorIo("unable to open artifact", localPath, err)
	}
	defer file.Close()

	uploader := manager.NewUploader(pub.client)
	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(pub.cfg.Bucket),
		Key:         aws.String(id.String()),
		Body:        file,
		ContentType: aws.String("application/wasm"),
	})
	if err != nil {
		return blsapi.ErrorPublish("uploading "+id.String(), err)
	}
	return nil
}
