package handler

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/MikhailRaia/cat-viewer/internal/catapi"
	"github.com/MikhailRaia/cat-viewer/internal/model"
	"github.com/MikhailRaia/cat-viewer/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

func newBufconnClient(t *testing.T, svc ImageService) proto.ImageServiceClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	proto.RegisterImageServiceServer(server, NewImageGRPCServer(svc))

	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return proto.NewImageServiceClient(conn)
}

func TestImageGRPCServer_RandomImage(t *testing.T) {
	tests := []struct {
		name     string
		mockURL  string
		mockErr  error
		wantURL  string
		wantCode codes.Code
	}{
		{
			name:     "Success",
			mockURL:  "http://example.com/cat.jpg",
			wantURL:  "http://example.com/cat.jpg",
			wantCode: codes.OK,
		},
		{
			name:     "Malformed response",
			mockErr:  catapi.ErrMalformedResponse,
			wantCode: codes.Internal,
		},
		{
			name:     "Invalid image shape",
			mockErr:  catapi.ErrInvalidImageShape,
			wantCode: codes.Internal,
		},
		{
			name:     "Upstream unreachable",
			mockErr:  errors.New("dial tcp: connection refused"),
			wantCode: codes.Unavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newBufconnClient(t, &mockImageService{
				randomImageFunc: func(ctx context.Context) (model.Image, error) {
					return model.Image{URL: tt.mockURL}, tt.mockErr
				},
			})

			resp, err := client.RandomImage(context.Background(), &emptypb.Empty{})

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode != codes.OK {
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, resp.GetValue())
		})
	}
}

func TestCodeForFetchError(t *testing.T) {
	assert.Equal(t, codes.Internal, codeForFetchError(catapi.ErrDecodeResponse))
	assert.Equal(t, codes.DeadlineExceeded, codeForFetchError(context.DeadlineExceeded))
	assert.Equal(t, codes.Canceled, codeForFetchError(context.Canceled))
}
