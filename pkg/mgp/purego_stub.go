//go:build !linux && !darwin && !freebsd

package mgp

// The database host ships for Linux only; other platforms get the scripted
// double (mgpmock) and the in-process simulator (pkg/host).

func openProcessImage() (uintptr, error) { return 0, ErrUnsupportedOS }

func registerEntryPoints(uintptr) {}

func (h *Host) procCallback(string) uintptr { return 0 }
