package wbxml

import "github.com/oma-wbxml/wbxmlconv/wbxmlerr"

// maxMBUint32Bytes is the longest a mb_u_int32 may be: 32 bits need at
// most five 7-bit groups (35 bits of payload).
const maxMBUint32Bytes = 5

// EncodeMBUint32 returns n encoded as a WBXML multi-byte unsigned
// integer: 7 bits per byte, most-significant group first, every byte
// but the last has its high bit set.
func EncodeMBUint32(n uint32) []byte {
	if n == 0 {
		return []byte{0x00}
	}
	var tmp [maxMBUint32Bytes]byte
	i := maxMBUint32Bytes
	for n > 0 {
		i--
		tmp[i] = byte(n & 0x7F)
		n >>= 7
	}
	out := make([]byte, 0, maxMBUint32Bytes-i)
	for ; i < maxMBUint32Bytes-1; i++ {
		out = append(out, tmp[i]|0x80)
	}
	out = append(out, tmp[maxMBUint32Bytes-1])
	return out
}

// DecodeMBUint32 reads a multi-byte unsigned integer from the front of
// buf and returns its value together with the number of bytes
// consumed. It fails with wbxmlerr.InvalidMBUint32 past five
// continuation bytes and wbxmlerr.UnexpectedEOF if buf runs out first.
func DecodeMBUint32(buf []byte) (uint32, int, error) {
	var result uint32
	for i := 0; i < maxMBUint32Bytes; i++ {
		if i >= len(buf) {
			return 0, i, wbxmlerr.New(wbxmlerr.UnexpectedEOF, "mb_u_int32 truncated")
		}
		b := buf[i]
		result = (result << 7) | uint32(b&0x7F)
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
	}
	return 0, maxMBUint32Bytes, wbxmlerr.New(wbxmlerr.InvalidMBUint32, "mb_u_int32 longer than 5 bytes")
}
