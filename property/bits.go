package property

import "math"

func float32FromBits(u uint32) float32 { return math.Float32frombits(u) }
func float32Bits(f float32) uint32     { return math.Float32bits(f) }

func float64FromBits(u uint64) float64 { return math.Float64frombits(u) }
func float64Bits(f float64) uint64     { return math.Float64bits(f) }

func leU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putLeU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func leU64(b []byte) uint64 {
	return uint64(leU32(b)) | uint64(leU32(b[4:]))<<32
}

func putLeU64(b []byte, v uint64) {
	putLeU32(b, uint32(v))
	putLeU32(b[4:], uint32(v>>32))
}
