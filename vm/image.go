package vm

import (
	"encoding/binary"
	"fmt"
	"os"
)

// LoadImage copies a program image into memory. An image is a sequence of
// big-endian 16-bit words whose first word is the load origin; the rest
// are copied into memory from the origin up.
func LoadImage(mem *Memory, image []byte) error {
	if len(image) < 4 {
		return fmt.Errorf("image too short: %d bytes", len(image))
	}
	if len(image)%2 != 0 {
		return fmt.Errorf("image is %d bytes, not a whole number of words", len(image))
	}

	origin := binary.BigEndian.Uint16(image)
	words := (len(image) - 2) / 2
	if words > MemorySize-int(origin) {
		return fmt.Errorf("image of %d words at origin %#04x overflows memory", words, origin)
	}

	for i := 0; i < words; i++ {
		mem.cells[int(origin)+i] = binary.BigEndian.Uint16(image[2+2*i:])
	}
	return nil
}

// LoadImageFile reads the image file at path and loads it into memory.
func LoadImageFile(mem *Memory, path string) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := LoadImage(mem, image); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
