package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// RandomImageFullMethod is the fully qualified name of the RandomImage RPC.
const RandomImageFullMethod = "/catviewer.ImageService/RandomImage"

// ImageServiceServer is the server API for ImageService service.
type ImageServiceServer interface {
	// RandomImage returns the url of a freshly fetched cat image.
	RandomImage(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// UnimplementedImageServiceServer can be embedded to have forward compatible implementations.
type UnimplementedImageServiceServer struct{}

func (UnimplementedImageServiceServer) RandomImage(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method RandomImage not implemented")
}

func RegisterImageServiceServer(s grpc.ServiceRegistrar, srv ImageServiceServer) {
	s.RegisterService(&_ImageService_serviceDesc, srv)
}

func _ImageService_RandomImage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImageServiceServer).RandomImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RandomImageFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImageServiceServer).RandomImage(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var _ImageService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "catviewer.ImageService",
	HandlerType: (*ImageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RandomImage",
			Handler:    _ImageService_RandomImage_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catviewer.proto",
}

// ImageServiceClient is the client API for ImageService service.
type ImageServiceClient interface {
	RandomImage(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type imageServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewImageServiceClient wraps a connection into an ImageServiceClient.
func NewImageServiceClient(cc grpc.ClientConnInterface) ImageServiceClient {
	return &imageServiceClient{cc: cc}
}

func (c *imageServiceClient) RandomImage(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, RandomImageFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
