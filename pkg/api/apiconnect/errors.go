package apiconnect

import (
	"errors"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ValidationMessages returns the user-facing messages attached to an
// InvalidArgument error, one per violated rule. It returns nil for other
// errors or when the server attached no details.
func ValidationMessages(err error) []string {
	var cerr *connect.Error
	if !errors.As(err, &cerr) || cerr.Code() != connect.CodeInvalidArgument {
		return nil
	}

	var messages []string
	for _, detail := range cerr.Details() {
		msg, err := detail.Value()
		if err != nil {
			continue
		}
		if s, ok := msg.(*wrapperspb.StringValue); ok {
			messages = append(messages, s.GetValue())
		}
	}
	return messages
}
