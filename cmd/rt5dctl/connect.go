package main

import (
	"context"
	"time"

	"github.com/jc8810/rt5dctl/internal/rtconfig"
	"github.com/jc8810/rt5dctl/internal/serialio"
	"github.com/jc8810/rt5dctl/pkg/proto"
	"github.com/jc8810/rt5dctl/pkg/session"
)

// sessionDeadline bounds one end-to-end session (§5): handshake through
// end-of-session, including a write's 10-second post-flash settle wait.
const sessionDeadline = 120 * time.Second

// connect opens portName, wraps it in a Transport and a Session, and
// records portName as the last-used port in the settings file. The caller
// owns closing the returned port.
func connect(portName string) (*session.Session, serialio.Port, error) {
	port, err := serialio.Open(portName)
	if err != nil {
		return nil, nil, err
	}

	entry := log.WithField("component", "session")
	tr := proto.New(port, entry)
	sess := session.New(tr, entry)

	settings, err := rtconfig.Load()
	if err == nil {
		settings.Port = portName
		_ = rtconfig.Save(settings)
	}

	return sess, port, nil
}

func sessionContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), sessionDeadline)
}
