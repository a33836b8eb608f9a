package vm

// signExtend treats the low bits of v as a two's-complement value and
// widens it to 16 bits by replicating the sign bit.
func signExtend(v, bits uint16) uint16 {
	if (v>>(bits-1))&1 != 0 {
		v |= 0xFFFF << bits
	}
	return v
}
