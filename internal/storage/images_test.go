package storage

import (
	"context"
	"regexp"
	"testing"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPresigner struct {
	calls   int
	buckets []string
	keys    []string
}

func (p *stubPresigner) PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	p.calls++
	p.buckets = append(p.buckets, *params.Bucket)
	p.keys = append(p.keys, *params.Key)
	return &v4.PresignedHTTPRequest{URL: "https://images.test/" + *params.Key}, nil
}

func TestPresignedUploadReusesClient(t *testing.T) {
	presigner := &stubPresigner{}
	store := &ImageStore{bucket: "product-images", presigner: presigner}

	key1, url1, err := store.PresignedUpload(context.Background())
	require.NoError(t, err)
	key2, _, err := store.PresignedUpload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, presigner.calls)
	assert.Equal(t, []string{"product-images", "product-images"}, presigner.buckets)
	assert.NotEqual(t, key1, key2, "every upload gets its own object key")
	assert.Equal(t, "https://images.test/"+key1, url1)
}

func TestPresignedUploadKeyLayout(t *testing.T) {
	presigner := &stubPresigner{}
	store := &ImageStore{bucket: "product-images", presigner: presigner}

	key, _, err := store.PresignedUpload(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^products/\d{4}/\d{2}/[0-9a-f-]{36}$`), key)
}
