package picojpeg

// Fixed Huffman specifications, reproduced from JPEG Annex K.3. Chroma
// streams deliberately reuse these same luminance tables end to end — a
// simplification of standard JPEG locked in by the spec, mirrored on both
// the encode and decode sides.
//
// counts[i] is the number of codes of length i+1 bits; values[k] is the
// symbol assigned to the k'th codeword in (length, arrival-order) order.
var (
	dcCounts = [16]byte{0, 1, 5, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0}
	dcValues = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	acCounts = [16]byte{0, 2, 1, 3, 3, 2, 4, 3, 5, 5, 4, 4, 0, 0, 1, 125}
	acValues = []byte{
		0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12,
		0x21, 0x31, 0x41, 0x06, 0x13, 0x51, 0x61, 0x07,
		0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xa1, 0x08,
		0x23, 0x42, 0xb1, 0xc1, 0x15, 0x52, 0xd1, 0xf0,
		0x24, 0x33, 0x62, 0x72, 0x82, 0x09, 0x0a, 0x16,
		0x17, 0x18, 0x19, 0x1a, 0x25, 0x26, 0x27, 0x28,
		0x29, 0x2a, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39,
		0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49,
		0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59,
		0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69,
		0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79,
		0x7a, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
		0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98,
		0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7,
		0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6,
		0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3, 0xc4, 0xc5,
		0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4,
		0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xe1, 0xe2,
		0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea,
		0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
		0xf9, 0xfa,
	}

	dcHuff = buildHuffmanTable(dcCounts, dcValues)
	acHuff = buildHuffmanTable(acCounts, acValues)
)

const (
	acSymbolEOB = 0x00
	acSymbolZRL = 0xf0
)

// huffCode is the (code, length) pair a symbol encodes to. Length is 0 for
// symbols the spec never assigns, which must never be looked up.
type huffCode struct {
	code   uint32
	length uint8
}

// huffEntry is one (code, symbol) pair in the decode side's length bucket.
type huffEntry struct {
	code   uint32
	symbol byte
}

// huffmanTable is a compiled (counts, values) specification: an encode-side lookup by symbol
// value, and a decode-side table bucketed by code length (§9's
// recommendation over a flat linear scan).
type huffmanTable struct {
	encode [256]huffCode
	decode [17][]huffEntry // index 1..16
}

func buildHuffmanTable(counts [16]byte, values []byte) *huffmanTable {
	t := &huffmanTable{}
	code, k := uint32(0), 0
	for length := 1; length <= 16; length++ {
		for j := byte(0); j < counts[length-1]; j++ {
			sym := values[k]
			t.encode[sym] = huffCode{code: code, length: uint8(length)}
			t.decode[length] = append(t.decode[length], huffEntry{code: code, symbol: sym})
			code++
			k++
		}
		code <<= 1
	}
	return t
}

func encodeSymbol(w *bitWriter, t *huffmanTable, symbol byte) error {
	hc := t.encode[symbol]
	if hc.length == 0 {
		return MalformedError("no Huffman code assigned to symbol")
	}
	return w.writeBits(hc.code, uint(hc.length))
}

// decodeSymbol matches a prefix against t by code length, one bit at a
// time, failing if no code matches within 16 bits.
func decodeSymbol(r *bitReader, t *huffmanTable) (byte, error) {
	code := uint32(0)
	for length := 1; length <= 16; length++ {
		bit, err := r.readBit()
		if err != nil {
			return 0, err
		}
		code <<= 1
		if bit {
			code |= 1
		}
		for _, e := range t.decode[length] {
			if e.code == code {
				return e.symbol, nil
			}
		}
	}
	return 0, MalformedError("no Huffman code matched within 16 bits")
}

// encodeBlock writes one block's DC difference and AC pairs to w, per
// §4.8: DC as (category code, amplitude bits), then every AC pair it is
// given, unconditionally — the RLE producer is responsible for always
// including a terminal EOB.
func encodeBlock(w *bitWriter, rb *rleBlock) error {
	dc, _ := clampDC(rb.dc)
	s := category(dc)
	if err := encodeSymbol(w, dcHuff, byte(s)); err != nil {
		return err
	}
	if s > 0 {
		if err := w.writeBits(categoryCode(dc, s), uint(s)); err != nil {
			return err
		}
	}
	for _, p := range rb.ac {
		switch {
		case p.isEOB():
			if err := encodeSymbol(w, acHuff, acSymbolEOB); err != nil {
				return err
			}
		case p.isZRL():
			if err := encodeSymbol(w, acHuff, acSymbolZRL); err != nil {
				return err
			}
		default:
			v, _ := clampAC(p.value)
			s := category(v)
			sym := byte(p.run<<4) | byte(s)
			if err := encodeSymbol(w, acHuff, sym); err != nil {
				return err
			}
			if err := w.writeBits(categoryCode(v, s), uint(s)); err != nil {
				return err
			}
		}
	}
	return nil
}

// decodeBlock runs the AC decoding state machine of §4.8 and returns the
// reconstructed DC value and the 63 AC coefficients (in zig-zag order, not
// yet devectorized).
func decodeBlock(r *bitReader) (dc int32, ac [63]int32, err error) {
	dcSym, err := decodeSymbol(r, dcHuff)
	if err != nil {
		return 0, ac, err
	}
	s := int(dcSym)
	if s > maxDCCategory {
		return 0, ac, MalformedError("DC category exceeds limit")
	}
	if s > 0 {
		bitsVal, err := r.readBits(uint(s))
		if err != nil {
			return 0, ac, err
		}
		dc = categoryDecode(s, bitsVal)
	}

	i := 0
	for i < 63 {
		sym, err := decodeSymbol(r, acHuff)
		if err != nil {
			return 0, ac, err
		}
		run := int(sym >> 4)
		size := int(sym & 0x0f)
		switch {
		case run == 0 && size == 0: // EOB
			i = 63
		case run == 15 && size == 0: // ZRL; reaching the end of the block finishes it
			i += 16
		default:
			i += run
			if i >= 63 {
				return 0, ac, MalformedError("AC run index exceeds 63")
			}
			bitsVal, err := r.readBits(uint(size))
			if err != nil {
				return 0, ac, err
			}
			ac[i] = categoryDecode(size, bitsVal)
			i++
			if i == 63 {
				// The encoder terminates every block with EOB, even when
				// the last AC coefficient is nonzero; consume it here.
				sym, err := decodeSymbol(r, acHuff)
				if err != nil {
					return 0, ac, err
				}
				if sym != acSymbolEOB {
					return 0, ac, MalformedError("missing EOB after final AC coefficient")
				}
			}
		}
	}
	return dc, ac, nil
}
