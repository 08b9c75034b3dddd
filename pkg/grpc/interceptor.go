package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/battlogger/pkg/common"
)

func (s *BattLogServer) CheckBatteryLimiter(batteryID string) bool {
	return s.RateLimiterStore.Allow(batteryID)
}

// CreateRateLimitInterceptor limits the listed methods per batteryId found in
// the request. Requests without one are left to the handler to reject.
func (s *BattLogServer) CreateRateLimitInterceptor(fullMethods []string) grpc.UnaryServerInterceptor {
	targets := common.Reducer(fullMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if targets[info.FullMethod] {
			if r, ok := req.(*structpb.Struct); ok {
				if batteryID := r.GetFields()["batteryId"].GetStringValue(); batteryID != "" {
					if !s.CheckBatteryLimiter(batteryID) {
						return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
					}
				}
			}
		}

		return handler(ctx, req)
	}
}
