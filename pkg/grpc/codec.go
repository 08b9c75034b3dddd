package grpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// toListValue renders rows through their JSON form so the wire fields match
// the REST payloads exactly.
func toListValue(rows any) (*structpb.ListValue, error) {
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal rows: %w", err)
	}
	out := &structpb.ListValue{}
	if err := out.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("convert rows: %w", err)
	}
	return out, nil
}

func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal message: %w", err)
	}
	out := &structpb.Struct{}
	if err := out.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("convert message: %w", err)
	}
	return out, nil
}

// fromJSONMessage decodes a Struct or ListValue into dest.
func fromJSONMessage(msg json.Marshaler, dest any) error {
	data, err := msg.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	return nil
}
