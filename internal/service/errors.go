package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/storage"
)

// toConnectError maps storage and validation errors to Connect codes.
// Anything unrecognised is logged and reported as CodeInternal.
func toConnectError(op string, err error) error {
	var verr *calculator.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationError(verr.Messages)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrDuplicateName), errors.Is(err, storage.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, storage.ErrPersonInUse):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, storage.ErrUnknownPerson), errors.Is(err, calculator.ErrUnknownPerson):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	slog.Error(op+" failed", "error", err)
	return connect.NewError(connect.CodeInternal, fmt.Errorf("%s failed", op))
}

// validationError builds a CodeInvalidArgument error with one
// StringValue detail per message.
func validationError(messages []string) error {
	cerr := connect.NewError(connect.CodeInvalidArgument, errors.New(strings.Join(messages, " ")))
	for _, msg := range messages {
		detail, err := connect.NewErrorDetail(wrapperspb.String(msg))
		if err != nil {
			continue
		}
		cerr.AddDetail(detail)
	}
	return cerr
}

// parseID parses a required identifier.
func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid %s %q", field, value))
	}
	return id, nil
}

// parseOptionalID parses an identifier that may be blank. Blank becomes
// uuid.Nil so the validator can report it.
func parseOptionalID(field, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return uuid.Nil, nil
	}
	return parseID(field, value)
}
