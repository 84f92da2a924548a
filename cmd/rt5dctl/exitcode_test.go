package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jc8810/rt5dctl/internal/serialio"
	"github.com/jc8810/rt5dctl/pkg/codeplug"
	"github.com/jc8810/rt5dctl/pkg/proto"
	"github.com/jc8810/rt5dctl/pkg/session"
)

func TestExitCodeSuccess(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
}

func TestExitCodeTransport(t *testing.T) {
	vp := serialio.NewVirtualPort(func([]byte) []byte { return nil })
	vp.Close()
	_, err := vp.ReadExact(context.Background(), 1)
	assert.Equal(t, 3, exitCode(err))
}

func TestExitCodeProtocol(t *testing.T) {
	assert.Equal(t, 2, exitCode(proto.ErrRetryExhausted))
	assert.Equal(t, 2, exitCode(proto.ErrCrcMismatch))

	sizeErr := &session.SizeError{Step: "dtmf", Want: 272, Got: 1}
	assert.Equal(t, 2, exitCode(sizeErr))
}

func TestExitCodeCodecAndUsage(t *testing.T) {
	_, codecErr := codeplug.DecodeDtmf(make([]byte, 1))
	assert.Equal(t, 1, exitCode(codecErr))

	assert.Equal(t, 1, exitCode(usagef("bad argument")))
	assert.Equal(t, 1, exitCode(errors.New("anything else")))
}
