package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/battlogger/pkg/battlog"
	"liyu1981.xyz/battlogger/pkg/models"
)

// Client calls BattLogService over an established connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) ListBatteries(ctx context.Context, query models.BatteryQuery, opts ...grpc.CallOption) ([]models.BatteryData, error) {
	in, err := toStruct(query)
	if err != nil {
		return nil, err
	}
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListBatteriesFullMethod, in, out, opts...); err != nil {
		return nil, err
	}

	rows := []models.BatteryData{}
	if err := fromJSONMessage(out, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetBatteryTests(ctx context.Context, batteryID string, opts ...grpc.CallOption) ([]models.TestRun, error) {
	in, err := structpb.NewStruct(map[string]any{"batteryId": batteryID})
	if err != nil {
		return nil, err
	}
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, GetBatteryTestsFullMethod, in, out, opts...); err != nil {
		return nil, err
	}

	tests := []models.TestRun{}
	if err := fromJSONMessage(out, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// RecordTestRun appends run and returns the id the server assigned.
func (c *Client) RecordTestRun(ctx context.Context, run *models.TestRun, opts ...grpc.CallOption) (string, error) {
	in, err := structpb.NewStruct(battlog.TestRunFields(run))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RecordTestRunFullMethod, in, out, opts...); err != nil {
		return "", err
	}
	return out.GetFields()["id"].GetStringValue(), nil
}
