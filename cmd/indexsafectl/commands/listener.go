// listener.go provides functions to create network listeners.

package commands

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/indexsafe/pkg/cert"
	"golang.org/x/sys/unix"
)

func getListener(
	ctx context.Context,
	addr string,
) (net.Listener, error) {
	parts := strings.SplitN(addr, ":", 2)

	if len(parts) == 1 {
		return listenUnix(ctx, addr)
	}

	switch parts[0] {
	case "unix":
		return listenUnix(ctx, parts[1])
	case "tcp", "tcp4", "tcp6":
		return net.Listen(parts[0], parts[1])
	case "tcp+ssl":
		addr = parts[1]
	default:
		return net.Listen("tcp", addr)
	}

	cert, err := cert.GenerateSelfSignedForServer()
	if err != nil {
		return nil, fmt.Errorf("failed to generate self-signed certificate: %w", err)
	}

	listener, err := tls.Listen("tcp", addr, &tls.Config{
		Certificates: []tls.Certificate{cert},
		NextProtos:   []string{"h2"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS listener at %s: %w", addr, err)
	}

	return listener, nil
}

// listenUnix removes a stale socket left by a previous run. Anything
// else at path is left alone.
func listenUnix(
	ctx context.Context,
	path string,
) (net.Listener, error) {
	fi, err := os.Lstat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return net.Listen("unix", path)
	case err != nil:
		return nil, fmt.Errorf("unable to stat '%s': %w", path, err)
	case fi.Mode()&os.ModeSocket == 0:
		return nil, fmt.Errorf("'%s' already exists and is not a socket (mode %s)", path, fi.Mode())
	}

	err = unix.Unlink(path)
	switch {
	case err == nil:
		logger.Debugf(ctx, "removed a stale socket at '%s'", path)
	case errors.Is(err, unix.ENOENT):
	default:
		return nil, fmt.Errorf("unable to remove '%s': %w", path, err)
	}
	return net.Listen("unix", path)
}
