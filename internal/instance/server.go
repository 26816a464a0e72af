// Package instance implements single-instance detection and the hot
// hand-off path between processes of the same application. Claiming the
// app_id endpoint doubles as the "am I first" check: the claim is a live
// kernel-managed listener, so a crashed holder never locks anyone out.
package instance

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/superexif/sendto/internal/endpoint"
	"github.com/superexif/sendto/internal/log"
	"github.com/superexif/sendto/internal/paths"
	"github.com/superexif/sendto/internal/protocol"
)

// ErrClaimFailed signals that another live process already owns the endpoint
// for this app_id. This is the normal not-first-instance outcome; callers
// should hot-send and exit rather than treat it as a fault.
var ErrClaimFailed = errors.New("another instance already owns the endpoint")

// readTimeout bounds how long one connection may take to deliver its line.
const readTimeout = 5 * time.Second

// Server owns the claimed endpoint for one app_id and forwards each received
// file list to the registered handler.
//
// The handler runs on the server's accept goroutine. It must marshal onto
// the thread owning UI or application state before touching it.
type Server struct {
	appID    string
	listener net.Listener
	onFiles  func([]string)
	logger   *slog.Logger
}

// New claims the endpoint for appID and returns the server holding it.
// endpointDir overrides the socket directory; "" selects the default.
// Returns ErrClaimFailed when another live instance holds the endpoint.
func New(appID, endpointDir string, onFiles func([]string)) (*Server, error) {
	if appID == "" {
		return nil, fmt.Errorf("app_id is empty")
	}
	if onFiles == nil {
		return nil, fmt.Errorf("onFiles handler is nil")
	}

	l, err := endpoint.Listen(appID, endpointDir)
	if err != nil {
		if errors.Is(err, endpoint.ErrInUse) {
			return nil, fmt.Errorf("%w: app_id %s", ErrClaimFailed, appID)
		}
		return nil, fmt.Errorf("claim endpoint: %w", err)
	}

	logger := log.WithComponent("instance").With(slog.String("app_id", appID))
	logger.Info("endpoint claimed", "addr", l.Addr().String())

	return &Server{
		appID:    appID,
		listener: l,
		onFiles:  onFiles,
		logger:   logger,
	}, nil
}

// Serve accepts connections until ctx is cancelled or the server is closed.
// Each connection is handled to completion before the next accept: read one
// line, decode, dispatch, close. One bad connection never stops the loop.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("accept loop started")
	defer s.logger.Info("accept loop stopped")

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.listener.Close()
		case <-done:
		}
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.handleConn(conn)
	}
}

// Close releases the claim. On unix this also unlinks the socket file.
func (s *Server) Close() error {
	return s.listener.Close()
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.logger.Warn("dropping connection, read failed", "error", err)
		return
	}

	files, err := protocol.Decode(line)
	if err != nil {
		s.logger.Warn("dropping connection, malformed payload", "error", err)
		return
	}

	files = paths.Normalize(files)
	if len(files) == 0 {
		s.logger.Debug("ignoring hand-off with no usable paths")
		return
	}

	s.logger.Debug("received file list", "count", len(files))
	s.onFiles(files)
}
