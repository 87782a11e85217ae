package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata is attached
// as a google.protobuf.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		if details, detailErr := structpb.NewStruct(protoSafeMeta(customErr.Meta)); detailErr == nil {
			if withDetails, withErr := st.WithDetails(details); withErr == nil {
				st = withDetails
			}
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC status error back to an *Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}

	return customErr
}

// protoSafeMeta rewrites metadata values structpb cannot represent directly
func protoSafeMeta(meta map[string]any) map[string]any {
	safe := make(map[string]any, len(meta))
	for k, v := range meta {
		switch val := v.(type) {
		case nil, bool, string, int, int32, int64, float32, float64:
			safe[k] = val
		case []string:
			items := make([]any, len(val))
			for i, item := range val {
				items[i] = item
			}
			safe[k] = items
		case map[string][]string:
			fields := make(map[string]any, len(val))
			for field, msgs := range val {
				items := make([]any, len(msgs))
				for i, msg := range msgs {
					items[i] = msg
				}
				fields[field] = items
			}
			safe[k] = fields
		default:
			safe[k] = fmt.Sprint(val)
		}
	}
	return safe
}
