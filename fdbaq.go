package s1l0

// decodeFDBAQBlockSize is the fixed per-channel block size samples are
// grouped into for BRC/THIDX selection (§3, §4.4).
const decodeFDBAQBlockSize = 128

// decodeFDBAQ decodes a compressed payload of numQuads quads, encoded with
// the block-adaptive Huffman scheme of §4.4, into the interleaved complex
// layout (IE0+jQE0), (IO0+jQO0), ... of length 2*numQuads.
//
// Decode order per 128-sample block follows the teacher's own lookup-table
// discipline for hot decode loops (arloliu-mebo's Gorilla bit-state reuse),
// applied to this format's own fixed per-block structure: read BRC at the
// IE block, decode IE, align; read THIDX at the QE block, decode QE,
// align; decode IO then QO reusing the same BRC/THIDX, aligning after each.
func decodeFDBAQ(payload []byte, numQuads int) ([]complex64, error) {
	if numQuads == 0 {
		return []complex64{}, nil
	}

	ie := make([]float32, numQuads)
	io := make([]float32, numQuads)
	qe := make([]float32, numQuads)
	qo := make([]float32, numQuads)

	r := NewBitReader(payload)
	nBlocks := (numQuads + decodeFDBAQBlockSize - 1) / decodeFDBAQBlockSize

	for block := 0; block < nBlocks; block++ {
		start := block * decodeFDBAQBlockSize
		n := decodeFDBAQBlockSize
		if start+n > numQuads {
			n = numQuads - start
		}

		brcRaw, err := r.ReadU(3)
		if err != nil {
			return nil, err
		}
		brc := int(brcRaw)
		if brc >= fdbaqBRCCount {
			return nil, &DecodeError{Kind: ErrHuffmanOverflow, Offset: int64(r.Position() / 8), Detail: "BRC code out of range"}
		}

		if err := decodeHuffmanBlock(r, brc, 0, ie[start:start+n]); err != nil {
			return nil, err
		}
		r.AlignToByte16()

		thidxRaw, err := r.ReadU(8)
		if err != nil {
			return nil, err
		}
		thidx := int(thidxRaw)

		if err := decodeHuffmanBlock(r, brc, thidx, qe[start:start+n]); err != nil {
			return nil, err
		}
		r.AlignToByte16()

		if err := decodeHuffmanBlock(r, brc, thidx, io[start:start+n]); err != nil {
			return nil, err
		}
		r.AlignToByte16()

		if err := decodeHuffmanBlock(r, brc, thidx, qo[start:start+n]); err != nil {
			return nil, err
		}
		r.AlignToByte16()
	}

	out := make([]complex64, 2*numQuads)
	for i := 0; i < numQuads; i++ {
		out[2*i] = complex(ie[i], qe[i])
		out[2*i+1] = complex(io[i], qo[i])
	}

	return out, nil
}

// decodeHuffmanBlock decodes len(out) Huffman-coded samples for BRC brc
// (and, for the dequantization step, thidx) into out, using the
// precomputed flat peek table for brc.
func decodeHuffmanBlock(r *BitReader, brc, thidx int, out []float32) error {
	maxlen := brcMaxCodeLength[brc]
	table := brcLookup[brc]

	for i := range out {
		peek, avail, err := r.PeekUpTo(maxlen)
		if err != nil {
			return err
		}

		entry := table[peek]
		if !entry.Valid || int(entry.CodeLen) > avail {
			return &DecodeError{Kind: ErrHuffmanOverflow, Offset: int64(r.Position() / 8), Detail: "bit pattern matched no Huffman leaf within max code length"}
		}

		if err := r.Skip(int(entry.CodeLen)); err != nil {
			return err
		}

		sign, err := r.ReadU(1)
		if err != nil {
			return err
		}

		out[i] = dequantize(sign != 0, entry.Magnitude, brc, thidx)
	}

	return nil
}
