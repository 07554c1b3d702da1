package handler

import (
	"context"
	"errors"

	"github.com/MikhailRaia/cat-viewer/internal/catapi"
	"github.com/MikhailRaia/cat-viewer/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ImageGRPCServer struct {
	proto.UnimplementedImageServiceServer
	imageService ImageService
}

func NewImageGRPCServer(imageService ImageService) *ImageGRPCServer {
	return &ImageGRPCServer{
		imageService: imageService,
	}
}

func (s *ImageGRPCServer) RandomImage(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	image, err := s.imageService.RandomImage(ctx)
	if err != nil {
		return nil, status.Error(codeForFetchError(err), err.Error())
	}

	return wrapperspb.String(image.URL), nil
}

func codeForFetchError(err error) codes.Code {
	switch {
	case errors.Is(err, catapi.ErrMalformedResponse),
		errors.Is(err, catapi.ErrInvalidImageShape),
		errors.Is(err, catapi.ErrDecodeResponse):
		return codes.Internal
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Unavailable
	}
}
