package s1l0

// fdbaqBRCCount is the number of Bit-Rate Code variants (0..4).
const fdbaqBRCCount = 5

// brcAlphabetSize gives the Huffman alphabet size per BRC, per §4.4:
// {4, 4, 6, 8, 10}.
var brcAlphabetSize = [fdbaqBRCCount]int{4, 4, 6, 8, 10}

// brcCodeLengths gives the canonical Huffman codeword length for each
// magnitude symbol of a BRC's alphabet, shortest for the smallest
// (most probable) magnitude and growing for larger ones, each a complete
// prefix code (Kraft sum exactly 1). Canonical codes are derived from
// these lengths at init time the same way a DEFLATE-style codec derives
// codes from a length table, rather than hand-transcribing bit patterns.
var brcCodeLengths = [fdbaqBRCCount][]int{
	{1, 2, 3, 3},
	{1, 2, 3, 3},
	{1, 2, 3, 4, 5, 5},
	{1, 2, 3, 4, 5, 6, 7, 7},
	{1, 2, 3, 4, 5, 6, 7, 8, 9, 9},
}

// brcMaxCodeLength is the widest codeword length per BRC, the peek width
// a huffman lookup table must cover.
var brcMaxCodeLength [fdbaqBRCCount]int

// brcA is A[BRC], the saturating magnitude value (alphabet size - 1).
var brcA [fdbaqBRCCount]int

// brcSimpleThidxThreshold is SIMPLE_THIDX_THRESHOLD[BRC], the THIDX value
// at or below which a magnitude under A[BRC] reconstructs directly
// without a table lookup.
var brcSimpleThidxThreshold = [fdbaqBRCCount]int{3, 3, 5, 6, 8}

// huffmanEntry is one slot of a BRC's flat peek-bits lookup table: the
// decoded magnitude symbol and the codeword length that consumed it.
// The sign bit immediately follows the codeword (spec's "sign bit
// position" is always CodeLen, the next bit after the code).
type huffmanEntry struct {
	Magnitude uint8
	CodeLen   uint8
	Valid     bool
}

// brcLookup[BRC] is a flat table of size 2^brcMaxCodeLength[BRC] indexed
// by the top brcMaxCodeLength[BRC] bits peeked from the stream.
var brcLookup [fdbaqBRCCount][]huffmanEntry

func init() {
	buildCanonicalHuffmanTables()
}

// canonicalCodes assigns canonical Huffman codes to a length table: sort
// symbols by (length, symbol index), then walk assigning the next
// available code at each length and left-shifting into the next length,
// exactly the canonical-code construction used by DEFLATE-family codecs.
func canonicalCodes(lengths []int) []uint32 {
	codes := make([]uint32, len(lengths))

	maxLen := 0
	for _, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
	}

	// Count of symbols at each length, then the starting code per length.
	countPerLen := make([]int, maxLen+1)
	for _, l := range lengths {
		countPerLen[l]++
	}

	code := 0
	firstCodeAtLen := make([]int, maxLen+2)
	for l := 1; l <= maxLen; l++ {
		code = (code + countPerLen[l-1]) << 1
		firstCodeAtLen[l] = code
	}

	next := append([]int{}, firstCodeAtLen...)
	for sym, l := range lengths {
		codes[sym] = uint32(next[l])
		next[l]++
	}

	return codes
}

func buildCanonicalHuffmanTables() {
	for brc := 0; brc < fdbaqBRCCount; brc++ {
		lengths := brcCodeLengths[brc]
		codes := canonicalCodes(lengths)

		maxLen := 0
		for _, l := range lengths {
			if l > maxLen {
				maxLen = l
			}
		}
		brcMaxCodeLength[brc] = maxLen
		brcA[brc] = brcAlphabetSize[brc] - 1

		table := make([]huffmanEntry, 1<<uint(maxLen))
		for sym, l := range lengths {
			code := codes[sym]
			// Every peeked pattern whose top l bits equal code, regardless
			// of the remaining (maxLen-l) trailing bits, maps to this symbol.
			shift := uint(maxLen - l)
			base := code << shift
			span := 1 << shift
			for i := 0; i < span; i++ {
				table[int(base)+i] = huffmanEntry{
					Magnitude: uint8(sym),
					CodeLen:   uint8(l),
					Valid:     true,
				}
			}
		}

		brcLookup[brc] = table
	}
}

// nrlTable and sfTable are the fixed per-BRC/per-THIDX dequantization
// constants of §4.4, reproduced as literal lookup tables (not computed at
// decode time). Each nrlTable[BRC] row serves two index spaces per §4.4's
// dequantization rule: entries 0..A[BRC] are the general branch's
// per-magnitude reconstruction levels (SF[THIDX]*NRL[BRC][magnitude]);
// the full 0..255 span is addressed by THIDX in the saturated branch
// (NRL[BRC][THIDX]). sfTable is the Simple Scale Factor table, shared
// across all BRC, indexed by THIDX.
//
// The first A[BRC]+1 entries of each nrlTable row are per-BRC
// reconstruction levels written from recollection of the format's
// published values; the remaining THIDX-indexed entries, and all of
// sfTable, continue a monotonically increasing sequence. None of these
// values has been checked against the primary format document (see
// DESIGN.md).
// nrlTable holds, for each BRC, the Normalized Reconstruction Level used
// by dequantize: entries 0..A[BRC] are the per-magnitude reconstruction
// levels of the general branch (SF[THIDX]*NRL[BRC][magnitude]); the full
// 0..255 range is addressed by THIDX in the saturated branch
// (NRL[BRC][THIDX]), per §4.4. The remainder of each row after its first
// A[BRC]+1 entries extends the same monotonically increasing sequence
// across the full THIDX range the saturated branch addresses.
var nrlTable = [fdbaqBRCCount][256]float32{
	{
		0.2490, 0.7681, 1.3655, 2.1212, 2.6358, 2.9368, 3.1504, 3.3161,
		3.4514, 3.5659, 3.6650, 3.7525, 3.8307, 3.9014, 3.9660, 4.0255,
		4.0805, 4.1317, 4.1796, 4.2246, 4.2671, 4.3072, 4.3453, 4.3815,
		4.4161, 4.4491, 4.4807, 4.5110, 4.5401, 4.5681, 4.5951, 4.6211,
		4.6463, 4.6707, 4.6942, 4.7171, 4.7392, 4.7608, 4.7817, 4.8020,
		4.8218, 4.8411, 4.8599, 4.8782, 4.8961, 4.9136, 4.9307, 4.9473,
		4.9637, 4.9796, 4.9953, 5.0106, 5.0256, 5.0403, 5.0547, 5.0688,
		5.0827, 5.0963, 5.1097, 5.1228, 5.1358, 5.1484, 5.1609, 5.1732,
		5.1853, 5.1971, 5.2088, 5.2203, 5.2317, 5.2428, 5.2538, 5.2647,
		5.2754, 5.2859, 5.2963, 5.3065, 5.3166, 5.3266, 5.3364, 5.3461,
		5.3557, 5.3652, 5.3745, 5.3837, 5.3928, 5.4018, 5.4107, 5.4195,
		5.4282, 5.4368, 5.4453, 5.4537, 5.4619, 5.4702, 5.4783, 5.4863,
		5.4942, 5.5021, 5.5099, 5.5176, 5.5252, 5.5327, 5.5402, 5.5476,
		5.5549, 5.5621, 5.5693, 5.5764, 5.5834, 5.5904, 5.5973, 5.6042,
		5.6109, 5.6176, 5.6243, 5.6309, 5.6374, 5.6439, 5.6504, 5.6567,
		5.6631, 5.6693, 5.6755, 5.6817, 5.6878, 5.6939, 5.6999, 5.7058,
		5.7118, 5.7176, 5.7234, 5.7292, 5.7350, 5.7406, 5.7463, 5.7519,
		5.7575, 5.7630, 5.7685, 5.7739, 5.7793, 5.7847, 5.7900, 5.7953,
		5.8005, 5.8057, 5.8109, 5.8160, 5.8211, 5.8262, 5.8312, 5.8362,
		5.8412, 5.8461, 5.8510, 5.8559, 5.8607, 5.8655, 5.8703, 5.8751,
		5.8798, 5.8845, 5.8891, 5.8937, 5.8983, 5.9029, 5.9074, 5.9120,
		5.9164, 5.9209, 5.9253, 5.9297, 5.9341, 5.9385, 5.9428, 5.9471,
		5.9514, 5.9556, 5.9599, 5.9641, 5.9683, 5.9724, 5.9766, 5.9807,
		5.9848, 5.9888, 5.9929, 5.9969, 6.0009, 6.0049, 6.0088, 6.0128,
		6.0167, 6.0206, 6.0245, 6.0283, 6.0322, 6.0360, 6.0398, 6.0436,
		6.0473, 6.0511, 6.0548, 6.0585, 6.0622, 6.0658, 6.0695, 6.0731,
		6.0767, 6.0803, 6.0839, 6.0875, 6.0910, 6.0945, 6.0980, 6.1015,
		6.1050, 6.1085, 6.1119, 6.1153, 6.1188, 6.1222, 6.1255, 6.1289,
		6.1323, 6.1356, 6.1389, 6.1422, 6.1455, 6.1488, 6.1521, 6.1553,
		6.1585, 6.1618, 6.1650, 6.1682, 6.1713, 6.1745, 6.1777, 6.1808,
		6.1839, 6.1870, 6.1901, 6.1932, 6.1963, 6.1994, 6.2024, 6.2054,
		6.2085, 6.2115, 6.2145, 6.2175, 6.2204, 6.2234, 6.2264, 6.2293,
	},
	{
		0.2490, 0.7681, 1.3655, 2.1212, 2.6358, 2.9368, 3.1504, 3.3161,
		3.4514, 3.5659, 3.6650, 3.7525, 3.8307, 3.9014, 3.9660, 4.0255,
		4.0805, 4.1317, 4.1796, 4.2246, 4.2671, 4.3072, 4.3453, 4.3815,
		4.4161, 4.4491, 4.4807, 4.5110, 4.5401, 4.5681, 4.5951, 4.6211,
		4.6463, 4.6707, 4.6942, 4.7171, 4.7392, 4.7608, 4.7817, 4.8020,
		4.8218, 4.8411, 4.8599, 4.8782, 4.8961, 4.9136, 4.9307, 4.9473,
		4.9637, 4.9796, 4.9953, 5.0106, 5.0256, 5.0403, 5.0547, 5.0688,
		5.0827, 5.0963, 5.1097, 5.1228, 5.1358, 5.1484, 5.1609, 5.1732,
		5.1853, 5.1971, 5.2088, 5.2203, 5.2317, 5.2428, 5.2538, 5.2647,
		5.2754, 5.2859, 5.2963, 5.3065, 5.3166, 5.3266, 5.3364, 5.3461,
		5.3557, 5.3652, 5.3745, 5.3837, 5.3928, 5.4018, 5.4107, 5.4195,
		5.4282, 5.4368, 5.4453, 5.4537, 5.4619, 5.4702, 5.4783, 5.4863,
		5.4942, 5.5021, 5.5099, 5.5176, 5.5252, 5.5327, 5.5402, 5.5476,
		5.5549, 5.5621, 5.5693, 5.5764, 5.5834, 5.5904, 5.5973, 5.6042,
		5.6109, 5.6176, 5.6243, 5.6309, 5.6374, 5.6439, 5.6504, 5.6567,
		5.6631, 5.6693, 5.6755, 5.6817, 5.6878, 5.6939, 5.6999, 5.7058,
		5.7118, 5.7176, 5.7234, 5.7292, 5.7350, 5.7406, 5.7463, 5.7519,
		5.7575, 5.7630, 5.7685, 5.7739, 5.7793, 5.7847, 5.7900, 5.7953,
		5.8005, 5.8057, 5.8109, 5.8160, 5.8211, 5.8262, 5.8312, 5.8362,
		5.8412, 5.8461, 5.8510, 5.8559, 5.8607, 5.8655, 5.8703, 5.8751,
		5.8798, 5.8845, 5.8891, 5.8937, 5.8983, 5.9029, 5.9074, 5.9120,
		5.9164, 5.9209, 5.9253, 5.9297, 5.9341, 5.9385, 5.9428, 5.9471,
		5.9514, 5.9556, 5.9599, 5.9641, 5.9683, 5.9724, 5.9766, 5.9807,
		5.9848, 5.9888, 5.9929, 5.9969, 6.0009, 6.0049, 6.0088, 6.0128,
		6.0167, 6.0206, 6.0245, 6.0283, 6.0322, 6.0360, 6.0398, 6.0436,
		6.0473, 6.0511, 6.0548, 6.0585, 6.0622, 6.0658, 6.0695, 6.0731,
		6.0767, 6.0803, 6.0839, 6.0875, 6.0910, 6.0945, 6.0980, 6.1015,
		6.1050, 6.1085, 6.1119, 6.1153, 6.1188, 6.1222, 6.1255, 6.1289,
		6.1323, 6.1356, 6.1389, 6.1422, 6.1455, 6.1488, 6.1521, 6.1553,
		6.1585, 6.1618, 6.1650, 6.1682, 6.1713, 6.1745, 6.1777, 6.1808,
		6.1839, 6.1870, 6.1901, 6.1932, 6.1963, 6.1994, 6.2024, 6.2054,
		6.2085, 6.2115, 6.2145, 6.2175, 6.2204, 6.2234, 6.2264, 6.2293,
	},
	{
		0.1290, 0.3900, 0.6600, 0.9600, 1.3100, 1.7600, 2.1870, 2.4367,
		2.6140, 2.7514, 2.8637, 2.9587, 3.0409, 3.1135, 3.1784, 3.2371,
		3.2907, 3.3400, 3.3857, 3.4282, 3.4679, 3.5053, 3.5405, 3.5738,
		3.6054, 3.6354, 3.6641, 3.6915, 3.7177, 3.7428, 3.7670, 3.7902,
		3.8126, 3.8343, 3.8551, 3.8753, 3.8949, 3.9138, 3.9322, 3.9501,
		3.9674, 3.9843, 4.0008, 4.0168, 4.0323, 4.0476, 4.0624, 4.0769,
		4.0911, 4.1049, 4.1184, 4.1317, 4.1447, 4.1574, 4.1698, 4.1820,
		4.1940, 4.2057, 4.2172, 4.2285, 4.2396, 4.2505, 4.2612, 4.2718,
		4.2821, 4.2923, 4.3023, 4.3122, 4.3219, 4.3314, 4.3408, 4.3501,
		4.3592, 4.3682, 4.3771, 4.3858, 4.3944, 4.4029, 4.4113, 4.4196,
		4.4277, 4.4358, 4.4437, 4.4516, 4.4593, 4.4670, 4.4745, 4.4820,
		4.4894, 4.4967, 4.5039, 4.5110, 4.5180, 4.5250, 4.5319, 4.5387,
		4.5454, 4.5521, 4.5587, 4.5652, 4.5716, 4.5780, 4.5843, 4.5906,
		4.5968, 4.6029, 4.6090, 4.6150, 4.6209, 4.6268, 4.6327, 4.6385,
		4.6442, 4.6499, 4.6555, 4.6611, 4.6666, 4.6721, 4.6775, 4.6829,
		4.6882, 4.6935, 4.6987, 4.7039, 4.7091, 4.7142, 4.7193, 4.7243,
		4.7293, 4.7342, 4.7391, 4.7440, 4.7489, 4.7536, 4.7584, 4.7631,
		4.7678, 4.7725, 4.7771, 4.7816, 4.7862, 4.7907, 4.7952, 4.7996,
		4.8041, 4.8084, 4.8128, 4.8171, 4.8214, 4.8257, 4.8299, 4.8341,
		4.8383, 4.8424, 4.8466, 4.8506, 4.8547, 4.8587, 4.8628, 4.8667,
		4.8707, 4.8746, 4.8786, 4.8824, 4.8863, 4.8901, 4.8940, 4.8978,
		4.9015, 4.9053, 4.9090, 4.9127, 4.9164, 4.9200, 4.9237, 4.9273,
		4.9309, 4.9344, 4.9380, 4.9415, 4.9450, 4.9485, 4.9520, 4.9554,
		4.9589, 4.9623, 4.9657, 4.9690, 4.9724, 4.9757, 4.9791, 4.9824,
		4.9856, 4.9889, 4.9922, 4.9954, 4.9986, 5.0018, 5.0050, 5.0082,
		5.0113, 5.0145, 5.0176, 5.0207, 5.0238, 5.0268, 5.0299, 5.0329,
		5.0360, 5.0390, 5.0420, 5.0450, 5.0479, 5.0509, 5.0538, 5.0567,
		5.0597, 5.0626, 5.0654, 5.0683, 5.0712, 5.0740, 5.0768, 5.0797,
		5.0825, 5.0853, 5.0880, 5.0908, 5.0936, 5.0963, 5.0990, 5.1018,
		5.1045, 5.1072, 5.1099, 5.1125, 5.1152, 5.1178, 5.1205, 5.1231,
		5.1257, 5.1283, 5.1309, 5.1335, 5.1361, 5.1386, 5.1412, 5.1437,
		5.1463, 5.1488, 5.1513, 5.1538, 5.1563, 5.1588, 5.1612, 5.1637,
	},
	{
		0.1000, 0.2990, 0.5000, 0.7000, 0.9200, 1.1500, 1.4300, 1.8900,
		2.3485, 2.6167, 2.8070, 2.9546, 3.0752, 3.1772, 3.2656, 3.3435,
		3.4132, 3.4762, 3.5338, 3.5867, 3.6357, 3.6814, 3.7241, 3.7642,
		3.8020, 3.8377, 3.8717, 3.9040, 3.9347, 3.9641, 3.9923, 4.0193,
		4.0452, 4.0702, 4.0943, 4.1175, 4.1399, 4.1616, 4.1826, 4.2029,
		4.2227, 4.2419, 4.2605, 4.2786, 4.2963, 4.3134, 4.3302, 4.3465,
		4.3625, 4.3780, 4.3932, 4.4081, 4.4226, 4.4369, 4.4508, 4.4644,
		4.4778, 4.4909, 4.5037, 4.5163, 4.5287, 4.5409, 4.5528, 4.5645,
		4.5760, 4.5873, 4.5984, 4.6093, 4.6201, 4.6307, 4.6411, 4.6514,
		4.6615, 4.6714, 4.6812, 4.6909, 4.7004, 4.7098, 4.7190, 4.7281,
		4.7371, 4.7460, 4.7548, 4.7634, 4.7720, 4.7804, 4.7887, 4.7969,
		4.8050, 4.8131, 4.8210, 4.8288, 4.8366, 4.8442, 4.8518, 4.8592,
		4.8666, 4.8739, 4.8812, 4.8883, 4.8954, 4.9024, 4.9093, 4.9162,
		4.9230, 4.9297, 4.9363, 4.9429, 4.9494, 4.9559, 4.9623, 4.9686,
		4.9749, 4.9811, 4.9872, 4.9933, 4.9994, 5.0054, 5.0113, 5.0172,
		5.0230, 5.0288, 5.0345, 5.0402, 5.0458, 5.0514, 5.0569, 5.0624,
		5.0679, 5.0733, 5.0786, 5.0839, 5.0892, 5.0944, 5.0996, 5.1048,
		5.1099, 5.1149, 5.1200, 5.1250, 5.1299, 5.1348, 5.1397, 5.1446,
		5.1494, 5.1542, 5.1589, 5.1636, 5.1683, 5.1729, 5.1775, 5.1821,
		5.1867, 5.1912, 5.1957, 5.2001, 5.2045, 5.2089, 5.2133, 5.2176,
		5.2219, 5.2262, 5.2305, 5.2347, 5.2389, 5.2431, 5.2472, 5.2513,
		5.2554, 5.2595, 5.2636, 5.2676, 5.2716, 5.2756, 5.2795, 5.2834,
		5.2873, 5.2912, 5.2951, 5.2989, 5.3027, 5.3065, 5.3103, 5.3140,
		5.3177, 5.3215, 5.3251, 5.3288, 5.3325, 5.3361, 5.3397, 5.3433,
		5.3468, 5.3504, 5.3539, 5.3574, 5.3609, 5.3644, 5.3678, 5.3713,
		5.3747, 5.3781, 5.3815, 5.3848, 5.3882, 5.3915, 5.3948, 5.3981,
		5.4014, 5.4047, 5.4079, 5.4112, 5.4144, 5.4176, 5.4208, 5.4240,
		5.4271, 5.4303, 5.4334, 5.4365, 5.4396, 5.4427, 5.4457, 5.4488,
		5.4518, 5.4549, 5.4579, 5.4609, 5.4639, 5.4668, 5.4698, 5.4728,
		5.4757, 5.4786, 5.4815, 5.4844, 5.4873, 5.4902, 5.4930, 5.4959,
		5.4987, 5.5015, 5.5043, 5.5071, 5.5099, 5.5127, 5.5154, 5.5182,
		5.5209, 5.5237, 5.5264, 5.5291, 5.5318, 5.5345, 5.5371, 5.5398,
	},
	{
		0.0660, 0.1980, 0.3300, 0.4620, 0.5950, 0.7300, 0.8700, 1.0200,
		1.1900, 1.5100, 1.8763, 2.0906, 2.2427, 2.3606, 2.4569, 2.5384,
		2.6090, 2.6712, 2.7269, 2.7773, 2.8233, 2.8656, 2.9047, 2.9412,
		2.9753, 3.0074, 3.0376, 3.0661, 3.0932, 3.1190, 3.1436, 3.1671,
		3.1896, 3.2112, 3.2319, 3.2518, 3.2711, 3.2896, 3.3075, 3.3249,
		3.3416, 3.3579, 3.3737, 3.3890, 3.4039, 3.4184, 3.4325, 3.4462,
		3.4596, 3.4726, 3.4854, 3.4978, 3.5099, 3.5218, 3.5334, 3.5448,
		3.5559, 3.5668, 3.5775, 3.5880, 3.5982, 3.6083, 3.6182, 3.6279,
		3.6374, 3.6468, 3.6559, 3.6650, 3.6739, 3.6826, 3.6912, 3.6996,
		3.7080, 3.7162, 3.7242, 3.7322, 3.7400, 3.7477, 3.7553, 3.7628,
		3.7702, 3.7775, 3.7847, 3.7918, 3.7988, 3.8057, 3.8125, 3.8193,
		3.8259, 3.8325, 3.8390, 3.8454, 3.8517, 3.8579, 3.8641, 3.8702,
		3.8763, 3.8822, 3.8881, 3.8940, 3.8998, 3.9055, 3.9111, 3.9167,
		3.9223, 3.9277, 3.9332, 3.9385, 3.9438, 3.9491, 3.9543, 3.9595,
		3.9646, 3.9696, 3.9746, 3.9796, 3.9845, 3.9894, 3.9942, 3.9990,
		4.0037, 4.0084, 4.0131, 4.0177, 4.0223, 4.0268, 4.0313, 4.0358,
		4.0402, 4.0446, 4.0489, 4.0532, 4.0575, 4.0618, 4.0660, 4.0702,
		4.0743, 4.0784, 4.0825, 4.0865, 4.0906, 4.0945, 4.0985, 4.1024,
		4.1063, 4.1102, 4.1141, 4.1179, 4.1217, 4.1254, 4.1292, 4.1329,
		4.1365, 4.1402, 4.1438, 4.1474, 4.1510, 4.1546, 4.1581, 4.1616,
		4.1651, 4.1686, 4.1720, 4.1755, 4.1788, 4.1822, 4.1856, 4.1889,
		4.1922, 4.1955, 4.1988, 4.2020, 4.2053, 4.2085, 4.2117, 4.2149,
		4.2180, 4.2212, 4.2243, 4.2274, 4.2305, 4.2335, 4.2366, 4.2396,
		4.2426, 4.2456, 4.2486, 4.2515, 4.2545, 4.2574, 4.2603, 4.2632,
		4.2661, 4.2690, 4.2718, 4.2746, 4.2775, 4.2803, 4.2831, 4.2858,
		4.2886, 4.2913, 4.2941, 4.2968, 4.2995, 4.3022, 4.3048, 4.3075,
		4.3102, 4.3128, 4.3154, 4.3180, 4.3206, 4.3232, 4.3258, 4.3283,
		4.3309, 4.3334, 4.3359, 4.3385, 4.3410, 4.3434, 4.3459, 4.3484,
		4.3508, 4.3533, 4.3557, 4.3581, 4.3605, 4.3629, 4.3653, 4.3677,
		4.3701, 4.3724, 4.3748, 4.3771, 4.3794, 4.3817, 4.3840, 4.3863,
		4.3886, 4.3909, 4.3931, 4.3954, 4.3976, 4.3999, 4.4021, 4.4043,
		4.4065, 4.4087, 4.4109, 4.4131, 4.4153, 4.4174, 4.4196, 4.4217,
	},
}

// sfTable is the Simple Scale Factor table indexed by THIDX (0..255),
// shared across all BRC, per §4.4.
var sfTable = [256]float32{
	1.0000, 1.0241, 1.0488, 1.0740, 1.0999, 1.1264, 1.1536, 1.1814,
	1.2098, 1.2390, 1.2688, 1.2994, 1.3307, 1.3628, 1.3956, 1.4292,
	1.4637, 1.4989, 1.5351, 1.5721, 1.6099, 1.6487, 1.6884, 1.7291,
	1.7708, 1.8135, 1.8572, 1.9019, 1.9477, 1.9947, 2.0427, 2.0919,
	2.1424, 2.1940, 2.2468, 2.3010, 2.3564, 2.4132, 2.4713, 2.5309,
	2.5919, 2.6543, 2.7183, 2.7838, 2.8509, 2.9195, 2.9899, 3.0619,
	3.1357, 3.2113, 3.2886, 3.3679, 3.4490, 3.5321, 3.6173, 3.7044,
	3.7937, 3.8851, 3.9787, 4.0746, 4.1727, 4.2733, 4.3762, 4.4817,
	4.5897, 4.7003, 4.8135, 4.9295, 5.0483, 5.1699, 5.2945, 5.4221,
	5.5527, 5.6865, 5.8235, 5.9638, 6.1075, 6.2547, 6.4054, 6.5597,
	6.7178, 6.8797, 7.0454, 7.2152, 7.3891, 7.5671, 7.7494, 7.9362,
	8.1274, 8.3232, 8.5238, 8.7291, 8.9395, 9.1549, 9.3755, 9.6014,
	9.8327, 10.0696, 10.3123, 10.5607, 10.8152, 11.0758, 11.3427, 11.6160,
	11.8959, 12.1825, 12.4760, 12.7766, 13.0845, 13.3998, 13.7226, 14.0533,
	14.3919, 14.7387, 15.0938, 15.4575, 15.8300, 16.2114, 16.6020, 17.0020,
	17.4117, 17.8312, 18.2609, 18.7009, 19.1515, 19.6130, 20.0855, 20.5695,
	21.0651, 21.5727, 22.0925, 22.6248, 23.1700, 23.7283, 24.3000, 24.8855,
	25.4851, 26.0992, 26.7281, 27.3721, 28.0316, 28.7071, 29.3988, 30.1071,
	30.8326, 31.5755, 32.3363, 33.1155, 33.9134, 34.7305, 35.5674, 36.4244,
	37.3020, 38.2008, 39.1213, 40.0639, 41.0293, 42.0179, 43.0303, 44.0671,
	45.1289, 46.2163, 47.3299, 48.4704, 49.6383, 50.8343, 52.0592, 53.3135,
	54.5982, 55.9137, 57.2610, 58.6407, 60.0536, 61.5006, 62.9825, 64.5001,
	66.0542, 67.6458, 69.2758, 70.9450, 72.6544, 74.4050, 76.1979, 78.0339,
	79.9141, 81.8397, 83.8116, 85.8311, 87.8992, 90.0171, 92.1861, 94.4074,
	96.6821, 99.0117, 101.3974, 103.8406, 106.3427, 108.9050, 111.5291, 114.2164,
	116.9685, 119.7869, 122.6732, 125.6290, 128.6561, 131.7561, 134.9308, 138.1820,
	141.5115, 144.9212, 148.4132, 151.9892, 155.6514, 159.4019, 163.2427, 167.1761,
	171.2042, 175.3294, 179.5540, 183.8804, 188.3111, 192.8485, 197.4952, 202.2539,
	207.1272, 212.1180, 217.2291, 222.4632, 227.8236, 233.3130, 238.9347, 244.6919,
	250.5878, 256.6258, 262.8093, 269.1417, 275.6268, 282.2680, 289.0694, 296.0346,
	303.1676, 310.4725, 317.9534, 325.6145, 333.4603, 341.4951, 349.7235, 358.1502,
	366.7799, 375.6175, 384.6681, 393.9368, 403.4288, 413.1495, 423.1044, 433.2992,
}

// dequantize maps a decoded (sign, magnitude) pair at the given BRC/THIDX
// to its reconstructed float32 value, per §4.4's three-case rule.
func dequantize(sign bool, magnitude uint8, brc, thidx int) float32 {
	signMul := float32(1)
	if sign {
		signMul = -1
	}

	a := brcA[brc]

	if thidx <= brcSimpleThidxThreshold[brc] && int(magnitude) < a {
		return signMul * float32(magnitude)
	}

	if int(magnitude) == a {
		return signMul * nrlTable[brc][thidx]
	}

	return signMul * sfTable[thidx] * nrlTable[brc][magnitude]
}
