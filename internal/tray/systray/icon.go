package systray

import (
	"bytes"
	"encoding/binary"
	"runtime"
)

// platformIcon returns the icon in the format the native tray expects.
// Windows loads tray icons as ICO; everything else takes PNG directly.
func platformIcon(png []byte) []byte {
	if runtime.GOOS == "windows" {
		return pngToICO(png)
	}
	return png
}

// pngToICO wraps PNG bytes in a single-image ICO container. ICO has carried
// embedded PNG data since Vista.
func pngToICO(png []byte) []byte {
	buf := new(bytes.Buffer)

	// ICONDIR: reserved, type 1 (icon), one image
	_ = binary.Write(buf, binary.LittleEndian, uint16(0))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))

	// ICONDIRENTRY: 0 means 256 for width and height
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.WriteByte(0)
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(buf, binary.LittleEndian, uint16(32))
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(png)))
	_ = binary.Write(buf, binary.LittleEndian, uint32(6+16))

	buf.Write(png)
	return buf.Bytes()
}
