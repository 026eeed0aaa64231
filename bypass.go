package s1l0

// bypassSampleBits is the fixed per-sample width for the Bypass encoding:
// 1 sign bit + 9 magnitude bits (§4.5).
const bypassSampleBits = 10

// decodeBypass decodes a Bypass-encoded payload of numQuads quads into the
// interleaved complex layout (IE0+jQE0), (IO0+jQO0), ... of length
// 2*numQuads, grounded on the teacher's own sign-magnitude-by-hand sample
// expansion (record.go's DecodeSignedTwoByteArray) generalized from whole
// bytes to a 10-bit field.
func decodeBypass(payload []byte, numQuads int) ([]complex64, error) {
	if numQuads == 0 {
		return []complex64{}, nil
	}

	r := NewBitReader(payload)

	ie, err := decodeBypassChannel(r, numQuads)
	if err != nil {
		return nil, err
	}
	r.AlignToByte16()

	io, err := decodeBypassChannel(r, numQuads)
	if err != nil {
		return nil, err
	}
	r.AlignToByte16()

	qe, err := decodeBypassChannel(r, numQuads)
	if err != nil {
		return nil, err
	}
	r.AlignToByte16()

	qo, err := decodeBypassChannel(r, numQuads)
	if err != nil {
		return nil, err
	}
	r.AlignToByte16()

	out := make([]complex64, 2*numQuads)
	for i := 0; i < numQuads; i++ {
		out[2*i] = complex(ie[i], qe[i])
		out[2*i+1] = complex(io[i], qo[i])
	}

	return out, nil
}

func decodeBypassChannel(r *BitReader, n int) ([]float32, error) {
	out := make([]float32, n)

	for i := 0; i < n; i++ {
		sign, magnitude, err := r.ReadSignMagnitude(bypassSampleBits)
		if err != nil {
			return nil, err
		}

		v := float32(magnitude)
		if sign {
			v = -v
		}
		out[i] = v
	}

	return out, nil
}
