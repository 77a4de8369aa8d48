package charset

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// NativeEndian is the byte order assumed for UTF-16 text that carries
// no byte order mark, matching what platform string decoders assume
// for their native UTF-16 encoding.
var NativeEndian binary.ByteOrder = func() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}()
