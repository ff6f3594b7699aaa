package upload

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewMockForTests returns an *S3Store backed by an in-memory fake HTTP
// transport. Only PutObject is implemented; that is all the upload
// path needs.
func NewMockForTests() (*S3Store, *MockState) {
	state := &MockState{objects: map[string][]byte{}}
	cfg, _ := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("us-east-1"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
	)
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: &mockRoundTripper{state: state}}
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String("https://mock.s3.local")
	})
	store := &S3Store{
		client:  client,
		bucket:  "mock-bucket",
		region:  "us-east-1",
		baseURL: "https://cdn.arcade.local",
	}
	return store, state
}

// MockState records the objects the fake transport accepted.
type MockState struct {
	mu      sync.Mutex
	objects map[string][]byte
}

// Object returns a stored body by key.
func (m *MockState) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[key]
	return b, ok
}

// Len returns the number of stored objects.
func (m *MockState) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

type mockRoundTripper struct{ state *MockState }

func (t *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodPut {
		return &http.Response{
			StatusCode: http.StatusNotImplemented,
			Body:       io.NopCloser(bytes.NewReader(nil)),
			Header:     http.Header{},
		}, nil
	}
	key := pathKey(req.URL.Path)
	body, _ := io.ReadAll(req.Body)
	if dec, ok := decodeChunked(req.Header, body); ok {
		body = dec
	}
	t.state.mu.Lock()
	t.state.objects[key] = body
	t.state.mu.Unlock()
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Header:     http.Header{"ETag": {"\"etag\""}},
	}, nil
}

// pathKey strips the leading /bucket/ segment of a path-style URL.
func pathKey(path string) string {
	trimmed := path
	if len(trimmed) > 0 && trimmed[0] == '/' {
		trimmed = trimmed[1:]
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == '/' {
			return trimmed[i+1:]
		}
	}
	return trimmed
}

// decodeChunked unwraps aws-chunked encoded bodies the SDK produces
// for signed uploads. The SDK marks them either with chunk signatures
// in the body or, for unsigned-payload-trailer uploads, with the
// aws-chunked content encoding / decoded-content-length headers.
func decodeChunked(header http.Header, body []byte) ([]byte, bool) {
	if !strings.Contains(header.Get("Content-Encoding"), "aws-chunked") &&
		header.Get("X-Amz-Decoded-Content-Length") == "" &&
		!bytes.Contains(body, []byte(";chunk-signature=")) {
		return nil, false
	}
	var out []byte
	rest := body
	for {
		idx := bytes.Index(rest, []byte("\r\n"))
		if idx < 0 {
			break
		}
		header := rest[:idx]
		rest = rest[idx+2:]
		sizePart := header
		if semi := bytes.IndexByte(header, ';'); semi >= 0 {
			sizePart = header[:semi]
		}
		var size int64
		for _, c := range sizePart {
			switch {
			case c >= '0' && c <= '9':
				size = size*16 + int64(c-'0')
			case c >= 'a' && c <= 'f':
				size = size*16 + int64(c-'a'+10)
			case c >= 'A' && c <= 'F':
				size = size*16 + int64(c-'A'+10)
			default:
				return nil, false
			}
		}
		if size == 0 {
			break
		}
		if int64(len(rest)) < size+2 {
			return nil, false
		}
		out = append(out, rest[:size]...)
		rest = rest[size+2:]
	}
	return out, true
}
