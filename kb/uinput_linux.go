//go:build linux

package kb

import (
	"log"
	"unsafe"

	"golang.org/x/sys/unix"
)

const uinputPath = "/dev/uinput"

const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiSetEvbit   = 0x40045564
	uiSetKeybit  = 0x40045565
)

const (
	evSyn     = 0x00
	evKey     = 0x01
	synReport = 0

	evMax  = 0x1f
	keyMax = 0x2ff

	busUSB = 0x03

	uinputMaxNameSize = 80
	absSize           = 64
)

const defaultDeviceName = "keytype virtual keyboard"

type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

type uinputUserDev struct {
	Name         [uinputMaxNameSize]byte
	ID           inputID
	FFEffectsMax int32
	Absmax       [absSize]int32
	Absmin       [absSize]int32
	Absfuzz      [absSize]int32
	Absflat      [absSize]int32
}

type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

func (ev *inputEvent) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(ev)), unsafe.Sizeof(*ev))
}

type uinputInjector struct {
	fd      int
	name    string
	debug   bool
	verbose bool
}

// NewInjector acquires a virtual keyboard device through /dev/uinput.
func NewInjector() (Injector, error) {
	name := ViperGetString("device_name")
	if name == "" {
		name = defaultDeviceName
	}
	fd, err := unix.Open(uinputPath, unix.O_WRONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, Fatalf("failed opening %s: %v", uinputPath, err)
	}
	injector := &uinputInjector{
		fd:      fd,
		name:    name,
		debug:   ViperGetBool("debug"),
		verbose: ViperGetBool("verbose"),
	}
	err = injector.configure()
	if err != nil {
		unix.Close(fd)
		return nil, err
	}
	if injector.verbose {
		log.Printf("created uinput device '%s'\n", name)
	}
	return injector, nil
}

func (u *uinputInjector) configure() error {
	if err := unix.IoctlSetInt(u.fd, uiSetEvbit, evSyn); err != nil {
		return Fatalf("UI_SET_EVBIT(EV_SYN): %v", err)
	}
	if err := unix.IoctlSetInt(u.fd, uiSetEvbit, evKey); err != nil {
		return Fatalf("UI_SET_EVBIT(EV_KEY): %v", err)
	}
	for code := 0; code <= keyMax; code++ {
		_ = unix.IoctlSetInt(u.fd, uiSetKeybit, code)
	}

	var setup uinputUserDev
	copy(setup.Name[:], u.name)
	setup.ID.Bustype = busUSB
	setup.ID.Vendor = 0x1
	setup.ID.Product = 0x1
	setup.ID.Version = 1

	buf := unsafe.Slice((*byte)(unsafe.Pointer(&setup)), unsafe.Sizeof(setup))
	if _, err := unix.Write(u.fd, buf); err != nil {
		return Fatalf("failed writing uinput setup: %v", err)
	}
	if err := unix.IoctlSetInt(u.fd, uiDevCreate, 0); err != nil {
		return Fatalf("UI_DEV_CREATE: %v", err)
	}
	return nil
}

// Send injects one key transition followed by a sync report.
func (u *uinputInjector) Send(event KeyEvent) error {
	value := int32(0)
	if event.Direction == KeyDown {
		value = 1
	}
	key := inputEvent{Type: evKey, Code: event.Code, Value: value}
	if _, err := unix.Write(u.fd, key.bytes()); err != nil {
		return Fatalf("failed writing key event: %v", err)
	}
	syn := inputEvent{Type: evSyn, Code: synReport}
	if _, err := unix.Write(u.fd, syn.bytes()); err != nil {
		return Fatalf("failed writing sync event: %v", err)
	}
	return nil
}

func (u *uinputInjector) Close() error {
	if u.fd < 0 {
		return nil
	}
	_ = unix.IoctlSetInt(u.fd, uiDevDestroy, 0)
	err := unix.Close(u.fd)
	u.fd = -1
	if err != nil {
		return Fatalf("failed closing %s: %v", uinputPath, err)
	}
	if u.verbose {
		log.Printf("released uinput device '%s'\n", u.name)
	}
	return nil
}
