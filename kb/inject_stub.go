//go:build !linux

package kb

// NewInjector fails on platforms without uinput support.
func NewInjector() (Injector, error) {
	return nil, Fatalf("keyboard injection is not supported on this platform")
}
