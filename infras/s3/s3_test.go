package s3_test

import (
	"bytes"
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/infras/s3"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	put     *awsS3.PutObjectInput
	body    []byte
	deleted *awsS3.DeleteObjectInput
	err     error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, params *awsS3.PutObjectInput, _ ...func(*awsS3.Options)) (*awsS3.PutObjectOutput, error) {
	f.put = params
	f.body, _ = io.ReadAll(params.Body)

	return &awsS3.PutObjectOutput{}, f.err
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, params *awsS3.DeleteObjectInput, _ ...func(*awsS3.Options)) (*awsS3.DeleteObjectOutput, error) {
	f.deleted = params

	return &awsS3.DeleteObjectOutput{}, f.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "rooms"
	cfg.External.S3.PublicDomain = "https://cdn.example.com"
	cfg.External.S3.APIEndpoint = "https://s3.example.com"

	return cfg
}

func fileHeader(t *testing.T, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="room.png"`)
	header.Set("Content-Type", "image/png")

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)

	return form.File["image"][0]
}

func TestUploadFile(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := s3.NewWithClient(api, testConfig(), mocks.NewOtel())

	url, err := svc.UploadFile(context.Background(), "rooms", fileHeader(t, "png-bytes"), "r-1.png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/rooms/r-1.png", url)
	assert.Equal(t, "rooms", *api.put.Bucket)
	assert.Equal(t, "rooms/r-1.png", *api.put.Key)
	assert.Equal(t, "image/png", *api.put.ContentType)
	assert.Equal(t, []byte("png-bytes"), api.body)
}

func TestUploadFile_Error(t *testing.T) {
	api := &fakeObjectAPI{err: errors.New("access denied")}
	svc := s3.NewWithClient(api, testConfig(), mocks.NewOtel())

	url, err := svc.UploadFile(context.Background(), "rooms", fileHeader(t, "png-bytes"), "r-1.png")

	assert.ErrorContains(t, err, "failed to upload file to S3")
	assert.Empty(t, url)
}

func TestDeleteFile(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantKey string
	}{
		{name: "public url", url: "https://cdn.example.com/rooms/r-1.png", wantKey: "rooms/r-1.png"},
		{name: "api url", url: "https://s3.example.com/rooms/rooms/r-1.png", wantKey: "rooms/r-1.png"},
		{name: "foreign url", url: "https://elsewhere.example.com/r-1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeObjectAPI{}
			svc := s3.NewWithClient(api, testConfig(), mocks.NewOtel())

			err := svc.DeleteFile(context.Background(), tt.url)
			require.NoError(t, err)

			if tt.wantKey == "" {
				assert.Nil(t, api.deleted)

				return
			}

			require.NotNil(t, api.deleted)
			assert.Equal(t, tt.wantKey, *api.deleted.Key)
		})
	}
}
