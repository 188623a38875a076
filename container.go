package picojpeg

import (
	"encoding/binary"
	"io"
)

// containerHeader is the small codec header that follows the passthrough
// raster header: quality and macroblock count, both fixed-width
// little-endian 32-bit values (§4.10 / §9's portability note).
type containerHeader struct {
	quality      uint32
	macroblockCount uint32
}

// writeContainer serializes rasterHeader byte-for-byte, then the codec
// header, then one length-prefixed chunk per macroblock in mbs, in order.
func writeContainer(w io.Writer, rasterHeader []byte, quality int, mbs [][]byte) error {
	if _, err := w.Write(rasterHeader); err != nil {
		return InputUnreadableError(err.Error())
	}
	hdr := containerHeader{quality: uint32(quality), macroblockCount: uint32(len(mbs))}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], hdr.quality)
	if _, err := w.Write(lenBuf[:]); err != nil {
		return InputUnreadableError(err.Error())
	}
	binary.LittleEndian.PutUint32(lenBuf[:], hdr.macroblockCount)
	if _, err := w.Write(lenBuf[:]); err != nil {
		return InputUnreadableError(err.Error())
	}
	for _, chunk := range mbs {
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(chunk)))
		if _, err := w.Write(lenBuf[:]); err != nil {
			return InputUnreadableError(err.Error())
		}
		if _, err := w.Write(chunk); err != nil {
			return InputUnreadableError(err.Error())
		}
	}
	return nil
}

// readContainer parses rasterHeaderSize bytes of passthrough raster header
// followed by the codec header and macroblock chunks, returning each piece
// separately for the orchestrator to hand to the raster writer and the
// per-macroblock Huffman decoder.
func readContainer(r io.Reader, rasterHeaderSize int) (rasterHeader []byte, quality int, chunks [][]byte, err error) {
	rasterHeader = make([]byte, rasterHeaderSize)
	if _, err := io.ReadFull(r, rasterHeader); err != nil {
		return nil, 0, nil, MalformedError("truncated raster header: " + err.Error())
	}
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, 0, nil, MalformedError("truncated quality field: " + err.Error())
	}
	quality = int(binary.LittleEndian.Uint32(buf[:]))
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, 0, nil, MalformedError("truncated macroblock count: " + err.Error())
	}
	count := binary.LittleEndian.Uint32(buf[:])

	chunks = make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, 0, nil, MalformedError("truncated chunk length prefix")
		}
		n := binary.LittleEndian.Uint32(buf[:])
		chunk := make([]byte, n)
		if _, err := io.ReadFull(r, chunk); err != nil {
			return nil, 0, nil, MalformedError("truncated macroblock chunk")
		}
		chunks = append(chunks, chunk)
	}
	return rasterHeader, quality, chunks, nil
}
