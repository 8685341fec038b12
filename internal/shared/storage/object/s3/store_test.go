package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/file.pdf", want: "user/file.pdf"},
		{name: "simple prefix", prefix: "root", key: "user/file.pdf", want: "root/user/file.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "user/file.pdf", want: "root/user/file.pdf"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/user/file.pdf", want: "root/user/file.pdf"},
		{name: "nested prefix", prefix: "root/sub", key: "user/file.pdf", want: "root/sub/user/file.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

type fakeS3 struct {
	puts   []*s3.PutObjectInput
	bodies []string
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, params)
	f.bodies = append(f.bodies, string(data))
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("stored"))}, nil
}

func TestSaveUploadsUnderPrefixWithKMS(t *testing.T) {
	fake := &fakeS3{}
	store := newStore(fake, "bucket", "/archive/", "kms-key")

	key, size, mime, err := store.Save(context.Background(), "digest", "cv.pdf", strings.NewReader("%PDF-1.7 data"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(key, "digest/") || !strings.HasSuffix(key, "_cv.pdf") {
		t.Fatalf("unexpected key %q", key)
	}
	if size != int64(len("%PDF-1.7 data")) || mime != "application/pdf" {
		t.Fatalf("unexpected size/mime %d %q", size, mime)
	}
	if len(fake.puts) != 1 {
		t.Fatalf("expected one put, got %d", len(fake.puts))
	}
	put := fake.puts[0]
	if got := aws.ToString(put.Key); got != "archive/"+key {
		t.Fatalf("unexpected object key %q", got)
	}
	if put.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms || aws.ToString(put.SSEKMSKeyId) != "kms-key" {
		t.Fatalf("expected kms encryption, got %v", put.ServerSideEncryption)
	}
	if fake.bodies[0] != "%PDF-1.7 data" {
		t.Fatalf("unexpected body %q", fake.bodies[0])
	}
}

func TestSaveWithKeyDefaultsToAES(t *testing.T) {
	fake := &fakeS3{}
	store := newStore(fake, "bucket", "", "")

	n, err := store.SaveWithKey(context.Background(), "k/cv.pdf.extracted.txt", "text/plain; charset=utf-8", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 bytes, got %d", n)
	}
	if fake.puts[0].ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("expected AES256, got %v", fake.puts[0].ServerSideEncryption)
	}
}
