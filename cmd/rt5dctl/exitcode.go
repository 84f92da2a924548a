package main

import (
	"errors"
	"fmt"

	"github.com/jc8810/rt5dctl/internal/serialio"
	"github.com/jc8810/rt5dctl/pkg/codeplug"
	"github.com/jc8810/rt5dctl/pkg/proto"
	"github.com/jc8810/rt5dctl/pkg/session"
)

// usageError marks a bad invocation — wrong argument count, unreadable
// input file, unparseable flag — as distinct from a failure that happened
// while actually talking to a radio.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// exitCode maps an error returned from a command's RunE to the process
// exit code documented for the CLI: 0 success, 1 usage/generic, 2
// protocol, 3 transport.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var transportErr *serialio.TransportError
	if errors.As(err, &transportErr) {
		return 3
	}

	var sizeErr *session.SizeError
	if errors.As(err, &sizeErr) {
		return 2
	}
	if errors.Is(err, proto.ErrRetryExhausted) || errors.Is(err, proto.ErrCrcMismatch) || errors.Is(err, proto.ErrMalformedLength) {
		return 2
	}

	var codecErr *codeplug.CodecError
	if errors.As(err, &codecErr) {
		return 1
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return 1
	}

	return 1
}
