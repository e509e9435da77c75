//go:build linux

package kb

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unsafe"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sys/unix"
)

const inputDevDir = "/dev/input"

// evdev ioctl numbers: _IOC(_IOC_READ, 'E', nr, len)
const (
	iocRead      = 2
	iocNrShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30
)

func eviocg(nr, size int) uint {
	return iocRead<<iocDirShift | uint('E')<<iocTypeShift | uint(nr)<<iocNrShift | uint(size)<<iocSizeShift
}

func eviocgbit(ev, size int) uint {
	return eviocg(0x20+ev, size)
}

func eviocgname(size int) uint {
	return eviocg(0x06, size)
}

func ioctlRead(fd int, req uint, buf []byte) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return errno
	}
	return nil
}

func testBit(bits []byte, bit int) bool {
	idx := bit / 8
	if idx >= len(bits) {
		return false
	}
	return bits[idx]&(1<<uint(bit%8)) != 0
}

// keys a device must advertise to count as a keyboard
var keyboardProbeCodes = []int{
	0x1e, // a
	0x2c, // z
	0x39, // space
	0x1c, // enter
	0x2a, // left shift
}

func (u *uinputInjector) isKeyboardNode(path string) (string, bool) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return "", false
	}
	defer unix.Close(fd)

	evBits := make([]byte, (evMax+8)/8)
	if err := ioctlRead(fd, eviocgbit(0, len(evBits)), evBits); err != nil {
		return "", false
	}
	if !testBit(evBits, evKey) {
		return "", false
	}
	keyBits := make([]byte, (keyMax+8)/8)
	if err := ioctlRead(fd, eviocgbit(evKey, len(keyBits)), keyBits); err != nil {
		return "", false
	}
	for _, code := range keyboardProbeCodes {
		if !testBit(keyBits, code) {
			return "", false
		}
	}

	nameBuf := make([]byte, 256)
	name := ""
	if err := ioctlRead(fd, eviocgname(len(nameBuf)), nameBuf); err == nil {
		name = strings.TrimRight(string(nameBuf), "\x00")
	}
	// never resolve to our own virtual device
	if name == u.name {
		return "", false
	}
	return name, true
}

func (u *uinputInjector) scanKeyboards() (string, string) {
	entries, err := os.ReadDir(inputDevDir)
	if err != nil {
		return "", ""
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "event") {
			continue
		}
		path := filepath.Join(inputDevDir, entry.Name())
		name, ok := u.isKeyboardNode(path)
		if ok {
			return path, name
		}
	}
	return "", ""
}

// WaitForKeyboard resolves a physical keyboard device, watching for one to
// appear until the timeout elapses.
func (u *uinputInjector) WaitForKeyboard(timeout time.Duration) (string, error) {
	path, name := u.scanKeyboards()
	if path != "" {
		if u.verbose {
			log.Printf("keyboard device detected: %s (%s)\n", path, name)
		}
		return path, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return "", Fatalf("failed creating device watcher: %v", err)
	}
	defer watcher.Close()
	if err := watcher.Add(inputDevDir); err != nil {
		return "", Fatalf("failed watching %s: %v", inputDevDir, err)
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		select {
		case event := <-watcher.Events:
			if !event.Has(fsnotify.Create) {
				continue
			}
			// the node needs a moment before its ioctls respond
			time.Sleep(100 * time.Millisecond)
			name, ok := u.isKeyboardNode(event.Name)
			if ok {
				if u.verbose {
					log.Printf("keyboard device detected: %s (%s)\n", event.Name, name)
				}
				return event.Name, nil
			}
		case err := <-watcher.Errors:
			return "", Fatalf("device watcher failed: %v", err)
		case <-deadline.C:
			return "", Fatalf("no keyboard device detected within %s", timeout)
		}
	}
}
