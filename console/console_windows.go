//go:build windows

package console

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/dshills/wincon/coord"
	"github.com/dshills/wincon/record"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procReadConsoleInputW = kernel32.NewProc("ReadConsoleInputW")
	procPeekConsoleInputW = kernel32.NewProc("PeekConsoleInputW")
)

// Console wraps the console input and screen-buffer devices of the current
// process. The devices are opened by name so the handles keep working when
// the standard streams are redirected.
type Console struct {
	in  windows.Handle
	out windows.Handle
}

// Current opens the console attached to the current process.
func Current() (*Console, error) {
	in, err := openDevice("CONIN$")
	if err != nil {
		return nil, err
	}
	out, err := openDevice("CONOUT$")
	if err != nil {
		windows.CloseHandle(in)
		return nil, err
	}
	return &Console{in: in, out: out}, nil
}

func openDevice(name string) (windows.Handle, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return windows.InvalidHandle, err
	}
	h, err := windows.CreateFile(p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil, windows.OPEN_EXISTING, 0, 0)
	if err != nil {
		return windows.InvalidHandle, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return h, nil
}

// Close releases both device handles.
func (c *Console) Close() error {
	inErr := windows.CloseHandle(c.in)
	outErr := windows.CloseHandle(c.out)
	if inErr != nil {
		return inErr
	}
	return outErr
}

// Info queries the geometry of the active screen buffer.
func (c *Console) Info() (ScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.out, &info); err != nil {
		return ScreenBufferInfo{}, err
	}
	return ScreenBufferInfo{
		BufferSize:     coord.NewSize(info.Size.X, info.Size.Y),
		CursorPosition: coord.New(info.CursorPosition.X, info.CursorPosition.Y),
		Attributes:     info.Attributes,
		Window: Rect{
			Left:   info.Window.Left,
			Top:    info.Window.Top,
			Right:  info.Window.Right,
			Bottom: info.Window.Bottom,
		},
		MaximumWindowSize: coord.NewSize(info.MaximumWindowSize.X, info.MaximumWindowSize.Y),
	}, nil
}

// TerminalSize implements record.SizeProvider against the live console.
func (c *Console) TerminalSize() (coord.Size, error) {
	info, err := c.Info()
	if err != nil {
		return coord.Size{}, err
	}
	return info.TerminalSize(), nil
}

// ReadInput blocks until input is available, fills buf with up to len(buf)
// raw records and returns the count. record.Raw matches the INPUT_RECORD
// layout, so the OS writes into the slice directly.
func (c *Console) ReadInput(buf []record.Raw) (int, error) {
	return c.readInput(procReadConsoleInputW, buf)
}

// PeekInput is ReadInput without consuming the records from the input buffer.
// It does not block: with no input pending it returns 0.
func (c *Console) PeekInput(buf []record.Raw) (int, error) {
	return c.readInput(procPeekConsoleInputW, buf)
}

func (c *Console) readInput(proc *windows.LazyProc, buf []record.Raw) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	var n uint32
	r1, _, err := proc.Call(
		uintptr(c.in),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&n)),
	)
	if r1 == 0 {
		return 0, err
	}
	return int(n), nil
}

// InputMode returns the console input-mode bits.
func (c *Console) InputMode() (uint32, error) {
	var mode uint32
	if err := windows.GetConsoleMode(c.in, &mode); err != nil {
		return 0, err
	}
	return mode, nil
}

// SetInputMode replaces the console input-mode bits.
func (c *Console) SetInputMode(mode uint32) error {
	return windows.SetConsoleMode(c.in, mode)
}

// EnableInputEvents switches the input mode to deliver mouse and
// window-resize records, returning the previous mode so the caller can
// restore it. Quick-edit mode is cleared because it swallows mouse records.
func (c *Console) EnableInputEvents() (uint32, error) {
	prev, err := c.InputMode()
	if err != nil {
		return 0, err
	}
	mode := prev | EnableMouseInput | EnableWindowInput | EnableExtendedFlags
	mode &^= EnableQuickEditMode
	if err := c.SetInputMode(mode); err != nil {
		return 0, err
	}
	return prev, nil
}
