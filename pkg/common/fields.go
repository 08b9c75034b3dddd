package common

import (
	z "github.com/Oudwins/zog"
)

// Field schemas. Each field is checked on its own so a caller decides the
// order in which failures are reported.
var (
	nonEmptyStringSchema = z.String().Trim().Min(1).Required()
	optionalStringSchema = z.String().Trim()
	numberSchema         = z.Float64().Required()
	nonNegativeSchema    = z.Float64().Required().GTE(0)
	positiveSchema       = z.Float64().Required().GT(0)
)

// Fields is a loosely typed request payload, such as a decoded JSON object or
// a protobuf Struct.
type Fields map[string]any

func (f Fields) Present(key string) bool {
	v, ok := f[key]
	return ok && v != nil
}

// NonEmptyString returns key trimmed, failing when it is absent or blank.
func (f Fields) NonEmptyString(key string) (string, bool) {
	var out string
	issues := nonEmptyStringSchema.Parse(f[key], &out)
	return out, len(issues) == 0
}

// OptionalString returns key trimmed, or nil when it is absent or blank.
func (f Fields) OptionalString(key string) *string {
	if !f.Present(key) {
		return nil
	}
	var out string
	if issues := optionalStringSchema.Parse(f[key], &out); len(issues) > 0 || out == "" {
		return nil
	}
	return &out
}

func (f Fields) Number(key string) (float64, bool) {
	var out float64
	issues := numberSchema.Parse(f[key], &out)
	return out, len(issues) == 0
}

func (f Fields) NonNegative(key string) (float64, bool) {
	var out float64
	issues := nonNegativeSchema.Parse(f[key], &out)
	return out, len(issues) == 0
}

func (f Fields) Positive(key string) (float64, bool) {
	var out float64
	issues := positiveSchema.Parse(f[key], &out)
	return out, len(issues) == 0
}
