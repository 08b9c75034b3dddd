package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service carries protobuf well-known types on the wire, so it needs no
// generated message code. Request and response fields use the same camelCase
// names as the REST payloads.
const (
	ServiceName = "battlogger.v1.BattLogService"

	ListBatteriesFullMethod   = "/" + ServiceName + "/ListBatteries"
	GetBatteryTestsFullMethod = "/" + ServiceName + "/GetBatteryTests"
	RecordTestRunFullMethod   = "/" + ServiceName + "/RecordTestRun"
)

type BattLogServiceServer interface {
	ListBatteries(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	GetBatteryTests(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	RecordTestRun(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterBattLogServiceServer(s grpc.ServiceRegistrar, srv BattLogServiceServer) {
	s.RegisterService(&BattLogServiceDesc, srv)
}

func listBatteriesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattLogServiceServer).ListBatteries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListBatteriesFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattLogServiceServer).ListBatteries(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getBatteryTestsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattLogServiceServer).GetBatteryTests(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetBatteryTestsFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattLogServiceServer).GetBatteryTests(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func recordTestRunHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattLogServiceServer).RecordTestRun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RecordTestRunFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BattLogServiceServer).RecordTestRun(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var BattLogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattLogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListBatteries", Handler: listBatteriesHandler},
		{MethodName: "GetBatteryTests", Handler: getBatteryTestsHandler},
		{MethodName: "RecordTestRun", Handler: recordTestRunHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "battlogger/v1/battlog.proto",
}
