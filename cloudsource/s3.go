// Package cloudsource fetches Archive II volume files from the public NOAA
// NEXRAD Level II S3 buckets, the external collaborator boundary for
// cmd/nexrad-inspect's serve subcommand. Grounded on the S3 session/client
// wiring in cmd/l2serv's loadArchive2Realtime.
package cloudsource

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"
)

// Fetcher retrieves objects from S3 anonymously, the way the public NEXRAD
// archive buckets expect (no credentials required for reads).
type Fetcher struct {
	svc *s3.S3
}

// NewFetcher builds a Fetcher bound to the given AWS region.
func NewFetcher(region string) (*Fetcher, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.AnonymousCredentials,
		Region:      aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("cloudsource: creating session: %w", err)
	}
	return &Fetcher{svc: s3.New(sess)}, nil
}

// FetchObject downloads bucket/key in full and returns its bytes.
func (f *Fetcher) FetchObject(ctx context.Context, bucket, key string) ([]byte, error) {
	logrus.Debugf("cloudsource: fetching s3://%s/%s", bucket, key)

	out, err := f.svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("cloudsource: get object s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, out.Body); err != nil {
		return nil, fmt.Errorf("cloudsource: reading s3://%s/%s: %w", bucket, key, err)
	}
	return buf.Bytes(), nil
}

// ListObjects returns the keys of every object under the given bucket/prefix,
// in the order S3 returns them. Used to enumerate a realtime volume's chunk
// sequence (header object first, then each incremental LDM chunk).
func (f *Fetcher) ListObjects(ctx context.Context, bucket, prefix string) ([]string, error) {
	var keys []string
	err := f.svc.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, aws.StringValue(obj.Key))
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("cloudsource: list s3://%s/%s: %w", bucket, prefix, err)
	}
	return keys, nil
}
