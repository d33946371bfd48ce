package hw

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// MapBAR maps the register BAR of the PCI device at slot (e.g.
// "0000:01:00.0") through sysfs. Needs root privileges.
func MapBAR(slot string, bar int, size int) (*MMIO, func() error, error) {
	path := filepath.Join("/sys/bus/pci/devices", slot, fmt.Sprintf("resource%d", bar))
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer unix.Close(fd)

	mem, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	unmap := func() error {
		if err := unix.Munmap(mem); err != nil {
			return fmt.Errorf("munmap %s: %w", path, err)
		}
		return nil
	}
	return NewMMIO(mem), unmap, nil
}
