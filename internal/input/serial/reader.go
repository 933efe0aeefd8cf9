// Package serial reads discrete controller signals from a serial port.
// A device sends one command per line; lines containing JUMP or DUCK set a
// flag that the game loop drains once per tick.
package serial

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"go.bug.st/serial"
)

// DefaultBaud is the controller's line speed.
const DefaultBaud = 115200

// Reader owns the serial port and the pending signal flags.
type Reader struct {
	port   string
	baud   int
	logger *log.Logger

	jump      atomic.Bool
	duck      atomic.Bool
	available atomic.Bool
}

// NewReader creates a reader for port. A nil logger discards output.
func NewReader(port string, baud int, logger *log.Logger) *Reader {
	if baud <= 0 {
		baud = DefaultBaud
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Reader{port: port, baud: baud, logger: logger}
}

// Run opens the port and listens until ctx is done. An unavailable device
// disables the reader and returns nil so the game keeps running on the
// keyboard.
func (r *Reader) Run(ctx context.Context) error {
	p, err := serial.Open(r.port, &serial.Mode{BaudRate: r.baud})
	if err != nil {
		r.available.Store(false)
		r.logger.Warn("serial input disabled", "port", r.port, "error", err)
		return nil
	}
	r.logger.Info("serial input connected", "port", r.port, "baud", r.baud)

	stop := context.AfterFunc(ctx, func() { p.Close() })
	defer stop()

	err = r.Listen(ctx, p)
	p.Close()
	if err != nil && ctx.Err() == nil {
		r.logger.Warn("serial input lost", "port", r.port, "error", err)
	}
	return nil
}

// Listen scans lines from src and raises flags until src ends or ctx is
// done. It marks the reader available while it runs.
func (r *Reader) Listen(ctx context.Context, src io.Reader) error {
	r.available.Store(true)
	defer r.available.Store(false)

	sc := bufio.NewScanner(src)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		r.handle(sc.Text())
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("serial: read %s: %w", r.port, err)
	}
	return nil
}

func (r *Reader) handle(line string) {
	switch {
	case strings.Contains(line, "JUMP"):
		r.jump.Store(true)
	case strings.Contains(line, "DUCK"):
		r.duck.Store(true)
	default:
		r.logger.Debug("serial line ignored", "line", line)
	}
}

// Drain returns and clears the pending flags.
func (r *Reader) Drain() (jump, duck bool) {
	return r.jump.Swap(false), r.duck.Swap(false)
}

// Available reports whether the device is currently connected.
func (r *Reader) Available() bool {
	return r.available.Load()
}

// Ports lists serial ports present on the system.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("serial: list ports: %w", err)
	}
	return ports, nil
}
