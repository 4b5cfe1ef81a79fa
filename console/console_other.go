//go:build !windows

package console

import (
	"github.com/dshills/wincon/coord"
	"github.com/dshills/wincon/record"
)

// Console is a stub on platforms without a Win32 console subsystem; every
// operation returns ErrUnsupported.
type Console struct{}

// Current fails with ErrUnsupported.
func Current() (*Console, error) {
	return nil, ErrUnsupported
}

// Close fails with ErrUnsupported.
func (c *Console) Close() error {
	return ErrUnsupported
}

// Info fails with ErrUnsupported.
func (c *Console) Info() (ScreenBufferInfo, error) {
	return ScreenBufferInfo{}, ErrUnsupported
}

// TerminalSize fails with ErrUnsupported.
func (c *Console) TerminalSize() (coord.Size, error) {
	return coord.Size{}, ErrUnsupported
}

// ReadInput fails with ErrUnsupported.
func (c *Console) ReadInput(buf []record.Raw) (int, error) {
	return 0, ErrUnsupported
}

// PeekInput fails with ErrUnsupported.
func (c *Console) PeekInput(buf []record.Raw) (int, error) {
	return 0, ErrUnsupported
}

// InputMode fails with ErrUnsupported.
func (c *Console) InputMode() (uint32, error) {
	return 0, ErrUnsupported
}

// SetInputMode fails with ErrUnsupported.
func (c *Console) SetInputMode(mode uint32) error {
	return ErrUnsupported
}

// EnableInputEvents fails with ErrUnsupported.
func (c *Console) EnableInputEvents() (uint32, error) {
	return 0, ErrUnsupported
}
