package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/battlogger/pkg/battlog"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/models"
)

type BattLogServer struct {
	Battlog          *battlog.BattLog
	RateLimiterStore *battlog.RateLimiterStore
}

// NewServer builds a grpc.Server with the service registered and test run
// recording limited per battery.
func NewServer(s *BattLogServer, opts ...grpc.ServerOption) *grpc.Server {
	interceptor := s.CreateRateLimitInterceptor([]string{RecordTestRunFullMethod})
	server := grpc.NewServer(append(opts, grpc.UnaryInterceptor(interceptor))...)
	RegisterBattLogServiceServer(server, s)
	return server
}

func (s *BattLogServer) logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameGrpcServer)
}

func codeFor(kind common.ErrorKind) codes.Code {
	switch kind {
	case common.KindValidation:
		return codes.InvalidArgument
	case common.KindNotFound:
		return codes.NotFound
	case common.KindConflict:
		return codes.AlreadyExists
	case common.KindIntegrity:
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// toStatus converts a service error into a status. Internal causes are
// logged and replaced by fallback.
func (s *BattLogServer) toStatus(method string, err error, fallback string) error {
	code := codeFor(common.KindOf(err))
	if code == codes.Internal {
		s.logger().Error(fallback, zap.String("method", method), zap.Error(err))
	}
	return status.Error(code, common.MessageOf(err, fallback))
}

func (s *BattLogServer) ListBatteries(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	var query models.BatteryQuery
	if err := fromJSONMessage(req, &query); err != nil {
		return nil, status.Error(codes.InvalidArgument, "Invalid query.")
	}

	rows, err := s.Battlog.Battery.ListBatteries(ctx, query)
	if err != nil {
		return nil, s.toStatus(ListBatteriesFullMethod, err, "Failed to fetch battery data.")
	}

	out, err := toListValue(rows)
	if err != nil {
		return nil, s.toStatus(ListBatteriesFullMethod, err, "Failed to fetch battery data.")
	}
	return out, nil
}

func (s *BattLogServer) GetBatteryTests(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	batteryID, ok := common.Fields(req.AsMap()).NonEmptyString("batteryId")
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "Missing required field: batteryId.")
	}

	tests, err := s.Battlog.TestRun.GetBatteryTests(ctx, batteryID)
	if err != nil {
		return nil, s.toStatus(GetBatteryTestsFullMethod, err, "Failed to fetch battery tests.")
	}

	out, err := toListValue(tests)
	if err != nil {
		return nil, s.toStatus(GetBatteryTestsFullMethod, err, "Failed to fetch battery tests.")
	}
	return out, nil
}

func (s *BattLogServer) RecordTestRun(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := battlog.TestRunFromFields(req.AsMap())
	if err != nil {
		return nil, s.toStatus(RecordTestRunFullMethod, err, "Failed to add battery test.")
	}

	id, err := s.Battlog.TestRun.CreateTestRun(ctx, input)
	if err != nil {
		return nil, s.toStatus(RecordTestRunFullMethod, err, "Failed to add battery test.")
	}

	return structpb.NewStruct(map[string]any{
		"message": "Battery test added successfully.",
		"id":      id,
	})
}
