package mctab

// Cases is indexed by classification code for the first 256 rows. Rows from
// NumBase onwards are the disambiguated variants of codes with ambiguous
// faces, located through Ambiguities.
//
// Columns: Topology, NPoly, NList, Ring, Edges, Sizes, Order, Code, Flip.
var Cases = [...]Case{
	{0, 0, 0, 0, 0x000, 0x0000, [2]uint64{0x0000000000000000, 0x0}, 0x00, 0x00},   // 0x00
	{1, 1, 1, 0, 0x109, 0x0003, [2]uint64{0x0000000000000830, 0x0}, 0x01, 0x00},   // 0x01
	{1, 1, 1, 0, 0x203, 0x0003, [2]uint64{0x0000000000000190, 0x0}, 0x02, 0x00},   // 0x02
	{2, 1, 1, 0, 0x30a, 0x0004, [2]uint64{0x0000000000009831, 0x0}, 0x03, 0x00},   // 0x03
	{1, 1, 1, 0, 0x406, 0x0003, [2]uint64{0x00000000000002a1, 0x0}, 0x04, 0x00},   // 0x04
	{3, 2, 2, 0, 0x50f, 0x0033, [2]uint64{0x00000000002a1830, 0x0}, 0x05, 0x00},   // 0x05
	{2, 1, 1, 0, 0x605, 0x0004, [2]uint64{0x0000000000002a90, 0x0}, 0x06, 0x00},   // 0x06
	{4, 1, 1, 0, 0x70c, 0x0005, [2]uint64{0x00000000000a9832, 0x0}, 0x07, 0x00},   // 0x07
	{1, 1, 1, 0, 0x80c, 0x0003, [2]uint64{0x00000000000003b2, 0x0}, 0x08, 0x00},   // 0x08
	{2, 1, 1, 0, 0x905, 0x0004, [2]uint64{0x0000000000008b20, 0x0}, 0x09, 0x00},   // 0x09
	{3, 2, 2, 0, 0xa0f, 0x0033, [2]uint64{0x00000000003b2190, 0x0}, 0x0a, 0x00},   // 0x0a
	{4, 1, 1, 0, 0xb06, 0x0005, [2]uint64{0x0000000000098b21, 0x0}, 0x0b, 0x00},   // 0x0b
	{2, 1, 1, 0, 0xc0a, 0x0004, [2]uint64{0x0000000000003ba1, 0x0}, 0x0c, 0x00},   // 0x0c
	{4, 1, 1, 0, 0xd03, 0x0005, [2]uint64{0x000000000008ba10, 0x0}, 0x0d, 0x00},   // 0x0d
	{4, 1, 1, 0, 0xe09, 0x0005, [2]uint64{0x000000000003ba90, 0x0}, 0x0e, 0x00},   // 0x0e
	{5, 1, 1, 0, 0xf00, 0x0004, [2]uint64{0x000000000000ba98, 0x0}, 0x0f, 0x00},   // 0x0f
	{1, 1, 1, 0, 0x190, 0x0003, [2]uint64{0x0000000000000784, 0x0}, 0x10, 0x00},   // 0x10
	{2, 1, 1, 0, 0x099, 0x0004, [2]uint64{0x0000000000004730, 0x0}, 0x11, 0x00},   // 0x11
	{3, 2, 2, 0, 0x393, 0x0033, [2]uint64{0x0000000000784190, 0x0}, 0x12, 0x00},   // 0x12
	{4, 1, 1, 0, 0x29a, 0x0005, [2]uint64{0x0000000000094731, 0x0}, 0x13, 0x00},   // 0x13
	{6, 2, 2, 0, 0x596, 0x0033, [2]uint64{0x00000000007842a1, 0x0}, 0x14, 0x00},   // 0x14
	{7, 2, 2, 0, 0x49f, 0x0034, [2]uint64{0x0000000002a14730, 0x0}, 0x15, 0x00},   // 0x15
	{7, 2, 2, 0, 0x795, 0x0034, [2]uint64{0x0000000007842a90, 0x0}, 0x16, 0x00},   // 0x16
	{8, 1, 1, 0, 0x69c, 0x0006, [2]uint64{0x0000000000a94732, 0x0}, 0x17, 0x00},   // 0x17
	{3, 2, 2, 0, 0x99c, 0x0033, [2]uint64{0x00000000007843b2, 0x0}, 0x18, 0x00},   // 0x18
	{4, 1, 1, 0, 0x895, 0x0005, [2]uint64{0x0000000000047b20, 0x0}, 0x19, 0x00},   // 0x19
	{9, 3, 3, 0, 0xb9f, 0x0333, [2]uint64{0x00000007843b2190, 0x0}, 0x1a, 0x00},   // 0x1a
	{10, 1, 1, 0, 0xa96, 0x0006, [2]uint64{0x0000000000947b21, 0x0}, 0x1b, 0x00},  // 0x1b
	{7, 2, 2, 0, 0xd9a, 0x0034, [2]uint64{0x0000000007843ba1, 0x0}, 0x1c, 0x00},   // 0x1c
	{8, 1, 1, 0, 0xc93, 0x0006, [2]uint64{0x000000000047ba10, 0x0}, 0x1d, 0x00},   // 0x1d
	{11, 2, 2, 0, 0xf99, 0x0035, [2]uint64{0x000000007843ba90, 0x0}, 0x1e, 0x00},  // 0x1e
	{4, 1, 1, 0, 0xe90, 0x0005, [2]uint64{0x000000000007ba94, 0x0}, 0x1f, 0x00},   // 0x1f
	{1, 1, 1, 0, 0x230, 0x0003, [2]uint64{0x0000000000000954, 0x0}, 0x20, 0x00},   // 0x20
	{3, 2, 2, 0, 0x339, 0x0033, [2]uint64{0x0000000000954830, 0x0}, 0x21, 0x00},   // 0x21
	{2, 1, 1, 0, 0x033, 0x0004, [2]uint64{0x0000000000001540, 0x0}, 0x22, 0x00},   // 0x22
	{4, 1, 1, 0, 0x13a, 0x0005, [2]uint64{0x0000000000054831, 0x0}, 0x23, 0x00},   // 0x23
	{3, 2, 2, 0, 0x636, 0x0033, [2]uint64{0x00000000009542a1, 0x0}, 0x24, 0x00},   // 0x24
	{9, 3, 3, 0, 0x73f, 0x0333, [2]uint64{0x00000009542a1830, 0x0}, 0x25, 0x00},   // 0x25
	{4, 1, 1, 0, 0x435, 0x0005, [2]uint64{0x000000000002a540, 0x0}, 0x26, 0x00},   // 0x26
	{10, 1, 1, 0, 0x53c, 0x0006, [2]uint64{0x0000000000a54832, 0x0}, 0x27, 0x00},  // 0x27
	{6, 2, 2, 0, 0xa3c, 0x0033, [2]uint64{0x00000000009543b2, 0x0}, 0x28, 0x00},   // 0x28
	{7, 2, 2, 0, 0xb35, 0x0034, [2]uint64{0x0000000009548b20, 0x0}, 0x29, 0x00},   // 0x29
	{7, 2, 2, 0, 0x83f, 0x0034, [2]uint64{0x0000000003b21540, 0x0}, 0x2a, 0x00},   // 0x2a
	{8, 1, 1, 0, 0x936, 0x0006, [2]uint64{0x0000000000548b21, 0x0}, 0x2b, 0x00},   // 0x2b
	{7, 2, 2, 0, 0xe3a, 0x0034, [2]uint64{0x0000000009543ba1, 0x0}, 0x2c, 0x00},   // 0x2c
	{11, 2, 2, 0, 0xf33, 0x0035, [2]uint64{0x000000009548ba10, 0x0}, 0x2d, 0x00},  // 0x2d
	{8, 1, 1, 0, 0xc39, 0x0006, [2]uint64{0x00000000003ba540, 0x0}, 0x2e, 0x00},   // 0x2e
	{4, 1, 1, 0, 0xd30, 0x0005, [2]uint64{0x000000000008ba54, 0x0}, 0x2f, 0x00},   // 0x2f
	{2, 1, 1, 0, 0x3a0, 0x0004, [2]uint64{0x0000000000007895, 0x0}, 0x30, 0x00},   // 0x30
	{4, 1, 1, 0, 0x2a9, 0x0005, [2]uint64{0x0000000000095730, 0x0}, 0x31, 0x00},   // 0x31
	{4, 1, 1, 0, 0x1a3, 0x0005, [2]uint64{0x0000000000015780, 0x0}, 0x32, 0x00},   // 0x32
	{5, 1, 1, 0, 0x0aa, 0x0004, [2]uint64{0x0000000000005731, 0x0}, 0x33, 0x00},   // 0x33
	{7, 2, 2, 0, 0x7a6, 0x0043, [2]uint64{0x00000000078952a1, 0x0}, 0x34, 0x00},   // 0x34
	{11, 2, 2, 0, 0x6af, 0x0035, [2]uint64{0x000000002a195730, 0x0}, 0x35, 0x00},  // 0x35
	{8, 1, 1, 0, 0x5a5, 0x0006, [2]uint64{0x00000000002a5780, 0x0}, 0x36, 0x00},   // 0x36
	{4, 1, 1, 0, 0x4ac, 0x0005, [2]uint64{0x00000000000a5732, 0x0}, 0x37, 0x00},   // 0x37
	{7, 2, 2, 0, 0xbac, 0x0043, [2]uint64{0x00000000078953b2, 0x0}, 0x38, 0x00},   // 0x38
	{8, 1, 1, 0, 0xaa5, 0x0006, [2]uint64{0x0000000000957b20, 0x0}, 0x39, 0x00},   // 0x39
	{11, 2, 2, 0, 0x9af, 0x0035, [2]uint64{0x000000003b215780, 0x0}, 0x3a, 0x00},  // 0x3a
	{4, 1, 1, 0, 0x8a6, 0x0005, [2]uint64{0x0000000000057b21, 0x0}, 0x3b, 0x00},   // 0x3b
	{12, 2, 2, 0, 0xfaa, 0x0044, [2]uint64{0x0000000078953ba1, 0x0}, 0x3c, 0x00},  // 0x3c
	{7, 2, 2, 0, 0xea3, 0x0054, [2]uint64{0x00000000957bba10, 0x0}, 0x3d, 0x00},   // 0x3d
	{7, 2, 2, 0, 0xda9, 0x0054, [2]uint64{0x000000003ba55780, 0x0}, 0x3e, 0x00},   // 0x3e
	{2, 1, 1, 0, 0xca0, 0x0004, [2]uint64{0x0000000000007ba5, 0x0}, 0x3f, 0x00},   // 0x3f
	{1, 1, 1, 0, 0x460, 0x0003, [2]uint64{0x0000000000000a65, 0x0}, 0x40, 0x00},   // 0x40
	{6, 2, 2, 0, 0x569, 0x0033, [2]uint64{0x0000000000a65830, 0x0}, 0x41, 0x00},   // 0x41
	{3, 2, 2, 0, 0x663, 0x0033, [2]uint64{0x0000000000a65190, 0x0}, 0x42, 0x00},   // 0x42
	{7, 2, 2, 0, 0x76a, 0x0034, [2]uint64{0x000000000a659831, 0x0}, 0x43, 0x00},   // 0x43
	{2, 1, 1, 0, 0x066, 0x0004, [2]uint64{0x0000000000002651, 0x0}, 0x44, 0x00},   // 0x44
	{7, 2, 2, 0, 0x16f, 0x0043, [2]uint64{0x0000000002651830, 0x0}, 0x45, 0x00},   // 0x45
	{4, 1, 1, 0, 0x265, 0x0005, [2]uint64{0x0000000000026590, 0x0}, 0x46, 0x00},   // 0x46
	{8, 1, 1, 0, 0x36c, 0x0006, [2]uint64{0x0000000000659832, 0x0}, 0x47, 0x00},   // 0x47
	{3, 2, 2, 0, 0xc6c, 0x0033, [2]uint64{0x0000000000a653b2, 0x0}, 0x48, 0x00},   // 0x48
	{7, 2, 2, 0, 0xd65, 0x0034, [2]uint64{0x000000000a658b20, 0x0}, 0x49, 0x00},   // 0x49
	{9, 3, 3, 0, 0xe6f, 0x0333, [2]uint64{0x0000000a653b2190, 0x0}, 0x4a, 0x00},   // 0x4a
	{11, 2, 2, 0, 0xf66, 0x0035, [2]uint64{0x00000000a6598b21, 0x0}, 0x4b, 0x00},  // 0x4b
	{4, 1, 1, 0, 0x86a, 0x0005, [2]uint64{0x000000000003b651, 0x0}, 0x4c, 0x00},   // 0x4c
	{8, 1, 1, 0, 0x963, 0x0006, [2]uint64{0x00000000008b6510, 0x0}, 0x4d, 0x00},   // 0x4d
	{10, 1, 1, 0, 0xa69, 0x0006, [2]uint64{0x00000000003b6590, 0x0}, 0x4e, 0x00},  // 0x4e
	{4, 1, 1, 0, 0xb60, 0x0005, [2]uint64{0x0000000000098b65, 0x0}, 0x4f, 0x00},   // 0x4f
	{3, 2, 2, 0, 0x5f0, 0x0033, [2]uint64{0x0000000000a65784, 0x0}, 0x50, 0x00},   // 0x50
	{7, 2, 2, 0, 0x4f9, 0x0034, [2]uint64{0x000000000a654730, 0x0}, 0x51, 0x00},   // 0x51
	{9, 3, 3, 0, 0x7f3, 0x0333, [2]uint64{0x0000000a65784190, 0x0}, 0x52, 0x00},   // 0x52
	{11, 2, 2, 0, 0x6fa, 0x0035, [2]uint64{0x00000000a6594731, 0x0}, 0x53, 0x00},  // 0x53
	{7, 2, 2, 0, 0x1f6, 0x0034, [2]uint64{0x0000000007842651, 0x0}, 0x54, 0x00},   // 0x54
	{12, 2, 2, 0, 0x0ff, 0x0044, [2]uint64{0x0000000026514730, 0x0}, 0x55, 0x00},  // 0x55
	{11, 2, 2, 0, 0x3f5, 0x0035, [2]uint64{0x0000000078426590, 0x0}, 0x56, 0x00},  // 0x56
	{7, 2, 2, 0, 0x2fc, 0x0045, [2]uint64{0x0000000265994732, 0x0}, 0x57, 0x00},   // 0x57
	{9, 3, 3, 0, 0xdfc, 0x0333, [2]uint64{0x0000000a657843b2, 0x0}, 0x58, 0x00},   // 0x58
	{11, 2, 2, 0, 0xcf5, 0x0035, [2]uint64{0x00000000a6547b20, 0x0}, 0x59, 0x00},  // 0x59
	{13, 4, 4, 0, 0xfff, 0x3333, [2]uint64{0x0000a657843b2190, 0x0}, 0x5a, 0x00},  // 0x5a
	{9, 2, 2, 0, 0xef6, 0x0036, [2]uint64{0x0000000a65947b21, 0x0}, 0x5b, 0x00},   // 0x5b
	{11, 2, 2, 0, 0x9fa, 0x0035, [2]uint64{0x000000007843b651, 0x0}, 0x5c, 0x00},  // 0x5c
	{7, 2, 2, 0, 0x8f3, 0x0045, [2]uint64{0x0000000047bb6510, 0x0}, 0x5d, 0x00},   // 0x5d
	{9, 2, 2, 0, 0xbf9, 0x0036, [2]uint64{0x00000007843b6590, 0x0}, 0x5e, 0x00},   // 0x5e
	{3, 2, 2, 0, 0xaf0, 0x0044, [2]uint64{0x00000000947bb659, 0x0}, 0x5f, 0x00},   // 0x5f
	{2, 1, 1, 0, 0x650, 0x0004, [2]uint64{0x0000000000009a64, 0x0}, 0x60, 0x00},   // 0x60
	{7, 2, 2, 0, 0x759, 0x0043, [2]uint64{0x0000000009a64830, 0x0}, 0x61, 0x00},   // 0x61
	{4, 1, 1, 0, 0x453, 0x0005, [2]uint64{0x000000000001a640, 0x0}, 0x62, 0x00},   // 0x62
	{8, 1, 1, 0, 0x55a, 0x0006, [2]uint64{0x0000000000a64831, 0x0}, 0x63, 0x00},   // 0x63
	{4, 1, 1, 0, 0x256, 0x0005, [2]uint64{0x0000000000026491, 0x0}, 0x64, 0x00},   // 0x64
	{11, 2, 2, 0, 0x35f, 0x0053, [2]uint64{0x0000000026491830, 0x0}, 0x65, 0x00},  // 0x65
	{5, 1, 1, 0, 0x055, 0x0004, [2]uint64{0x0000000000002640, 0x0}, 0x66, 0x00},   // 0x66
	{4, 1, 1, 0, 0x15c, 0x0005, [2]uint64{0x0000000000064832, 0x0}, 0x67, 0x00},   // 0x67
	{7, 2, 2, 0, 0xe5c, 0x0043, [2]uint64{0x0000000009a643b2, 0x0}, 0x68, 0x00},   // 0x68
	{12, 2, 2, 0, 0xf55, 0x0044, [2]uint64{0x000000009a648b20, 0x0}, 0x69, 0x00},  // 0x69
	{11, 2, 2, 0, 0xc5f, 0x0035, [2]uint64{0x000000003b21a640, 0x0}, 0x6a, 0x00},  // 0x6a
	{7, 2, 2, 0, 0xd56, 0x0054, [2]uint64{0x00000001a6488b21, 0x0}, 0x6b, 0x00},   // 0x6b
	{8, 1, 1, 0, 0xa5a, 0x0006, [2]uint64{0x00000000003b6491, 0x0}, 0x6c, 0x00},   // 0x6c
	{7, 2, 2, 0, 0xb53, 0x0054, [2]uint64{0x0000000108b66491, 0x0}, 0x6d, 0x00},   // 0x6d
	{4, 1, 1, 0, 0x859, 0x0005, [2]uint64{0x000000000003b640, 0x0}, 0x6e, 0x00},   // 0x6e
	{2, 1, 1, 0, 0x950, 0x0004, [2]uint64{0x0000000000008b64, 0x0}, 0x6f, 0x00},   // 0x6f
	{4, 1, 1, 0, 0x7c0, 0x0005, [2]uint64{0x00000000000789a6, 0x0}, 0x70, 0x00},   // 0x70
	{8, 1, 1, 0, 0x6c9, 0x0006, [2]uint64{0x00000000009a6730, 0x0}, 0x71, 0x00},   // 0x71
	{10, 1, 1, 0, 0x5c3, 0x0006, [2]uint64{0x00000000001a6780, 0x0}, 0x72, 0x00},  // 0x72
	{4, 1, 1, 0, 0x4ca, 0x0005, [2]uint64{0x00000000000a6731, 0x0}, 0x73, 0x00},   // 0x73
	{8, 1, 1, 0, 0x3c6, 0x0006, [2]uint64{0x0000000000267891, 0x0}, 0x74, 0x00},   // 0x74
	{7, 2, 2, 0, 0x2cf, 0x0045, [2]uint64{0x0000000730991267, 0x0}, 0x75, 0x00},   // 0x75
	{4, 1, 1, 0, 0x1c5, 0x0005, [2]uint64{0x0000000000026780, 0x0}, 0x76, 0x00},   // 0x76
	{2, 1, 1, 0, 0x0cc, 0x0004, [2]uint64{0x0000000000006732, 0x0}, 0x77, 0x00},   // 0x77
	{11, 2, 2, 0, 0xfcc, 0x0053, [2]uint64{0x00000000789a63b2, 0x0}, 0x78, 0x00},  // 0x78
	{7, 2, 2, 0, 0xec5, 0x0054, [2]uint64{0x000000009a677b20, 0x0}, 0x79, 0x00},   // 0x79
	{9, 2, 2, 0, 0xdcf, 0x0036, [2]uint64{0x00000003b21a6780, 0x0}, 0x7a, 0x00},   // 0x7a
	{3, 2, 2, 0, 0xcc6, 0x0044, [2]uint64{0x000000001a677b21, 0x0}, 0x7b, 0x00},   // 0x7b
	{7, 2, 2, 0, 0xbca, 0x0045, [2]uint64{0x000000013b667891, 0x0}, 0x7c, 0x00},   // 0x7c
	{6, 2, 2, 0, 0xac3, 0x0033, [2]uint64{0x00000000007b6910, 0x0}, 0x7d, 0x00},   // 0x7d
	{3, 2, 2, 0, 0x9c9, 0x0044, [2]uint64{0x0000000003b66780, 0x0}, 0x7e, 0x00},   // 0x7e
	{1, 1, 1, 0, 0x8c0, 0x0003, [2]uint64{0x00000000000007b6, 0x0}, 0x7f, 0x00},   // 0x7f
	{1, 1, 1, 0, 0x8c0, 0x0003, [2]uint64{0x0000000000000b76, 0x0}, 0x80, 0x00},   // 0x80
	{3, 2, 2, 0, 0x9c9, 0x0033, [2]uint64{0x0000000000b76830, 0x0}, 0x81, 0x00},   // 0x81
	{6, 2, 2, 0, 0xac3, 0x0033, [2]uint64{0x0000000000b76190, 0x0}, 0x82, 0x00},   // 0x82
	{7, 2, 2, 0, 0xbca, 0x0034, [2]uint64{0x000000000b769831, 0x0}, 0x83, 0x00},   // 0x83
	{3, 2, 2, 0, 0xcc6, 0x0033, [2]uint64{0x0000000000b762a1, 0x0}, 0x84, 0x00},   // 0x84
	{9, 3, 3, 0, 0xdcf, 0x0333, [2]uint64{0x0000000b762a1830, 0x0}, 0x85, 0x00},   // 0x85
	{7, 2, 2, 0, 0xec5, 0x0034, [2]uint64{0x000000000b762a90, 0x0}, 0x86, 0x00},   // 0x86
	{11, 2, 2, 0, 0xfcc, 0x0035, [2]uint64{0x00000000b76a9832, 0x0}, 0x87, 0x00},  // 0x87
	{2, 1, 1, 0, 0x0cc, 0x0004, [2]uint64{0x0000000000003762, 0x0}, 0x88, 0x00},   // 0x88
	{4, 1, 1, 0, 0x1c5, 0x0005, [2]uint64{0x0000000000087620, 0x0}, 0x89, 0x00},   // 0x89
	{7, 2, 2, 0, 0x2cf, 0x0043, [2]uint64{0x0000000003762190, 0x0}, 0x8a, 0x00},   // 0x8a
	{8, 1, 1, 0, 0x3c6, 0x0006, [2]uint64{0x0000000000987621, 0x0}, 0x8b, 0x00},   // 0x8b
	{4, 1, 1, 0, 0x4ca, 0x0005, [2]uint64{0x00000000000376a1, 0x0}, 0x8c, 0x00},   // 0x8c
	{10, 1, 1, 0, 0x5c3, 0x0006, [2]uint64{0x0000000000876a10, 0x0}, 0x8d, 0x00},  // 0x8d
	{8, 1, 1, 0, 0x6c9, 0x0006, [2]uint64{0x0000000000376a90, 0x0}, 0x8e, 0x00},   // 0x8e
	{4, 1, 1, 0, 0x7c0, 0x0005, [2]uint64{0x00000000000a9876, 0x0}, 0x8f, 0x00},   // 0x8f
	{2, 1, 1, 0, 0x950, 0x0004, [2]uint64{0x0000000000006b84, 0x0}, 0x90, 0x00},   // 0x90
	{4, 1, 1, 0, 0x859, 0x0005, [2]uint64{0x0000000000046b30, 0x0}, 0x91, 0x00},   // 0x91
	{7, 2, 2, 0, 0xb53, 0x0043, [2]uint64{0x0000000006b84190, 0x0}, 0x92, 0x00},   // 0x92
	{8, 1, 1, 0, 0xa5a, 0x0006, [2]uint64{0x0000000000946b31, 0x0}, 0x93, 0x00},   // 0x93
	{7, 2, 2, 0, 0xd56, 0x0043, [2]uint64{0x0000000006b842a1, 0x0}, 0x94, 0x00},   // 0x94
	{11, 2, 2, 0, 0xc5f, 0x0035, [2]uint64{0x000000002a146b30, 0x0}, 0x95, 0x00},  // 0x95
	{12, 2, 2, 0, 0xf55, 0x0044, [2]uint64{0x000000006b842a90, 0x0}, 0x96, 0x00},  // 0x96
	{7, 2, 2, 0, 0xe5c, 0x0054, [2]uint64{0x000000032a9446b3, 0x0}, 0x97, 0x00},   // 0x97
	{4, 1, 1, 0, 0x15c, 0x0005, [2]uint64{0x0000000000038462, 0x0}, 0x98, 0x00},   // 0x98
	{5, 1, 1, 0, 0x055, 0x0004, [2]uint64{0x0000000000004620, 0x0}, 0x99, 0x00},   // 0x99
	{11, 2, 2, 0, 0x35f, 0x0053, [2]uint64{0x0000000038462190, 0x0}, 0x9a, 0x00},  // 0x9a
	{4, 1, 1, 0, 0x256, 0x0005, [2]uint64{0x0000000000094621, 0x0}, 0x9b, 0x00},   // 0x9b
	{8, 1, 1, 0, 0x55a, 0x0006, [2]uint64{0x00000000003846a1, 0x0}, 0x9c, 0x00},   // 0x9c
	{4, 1, 1, 0, 0x453, 0x0005, [2]uint64{0x0000000000046a10, 0x0}, 0x9d, 0x00},   // 0x9d
	{7, 2, 2, 0, 0x759, 0x0045, [2]uint64{0x0000000a9033846a, 0x0}, 0x9e, 0x00},   // 0x9e
	{2, 1, 1, 0, 0x650, 0x0004, [2]uint64{0x0000000000006a94, 0x0}, 0x9f, 0x00},   // 0x9f
	{3, 2, 2, 0, 0xaf0, 0x0033, [2]uint64{0x0000000000b76954, 0x0}, 0xa0, 0x00},   // 0xa0
	{9, 3, 3, 0, 0xbf9, 0x0333, [2]uint64{0x0000000b76954830, 0x0}, 0xa1, 0x00},   // 0xa1
	{7, 2, 2, 0, 0x8f3, 0x0034, [2]uint64{0x000000000b761540, 0x0}, 0xa2, 0x00},   // 0xa2
	{11, 2, 2, 0, 0x9fa, 0x0035, [2]uint64{0x00000000b7654831, 0x0}, 0xa3, 0x00},  // 0xa3
	{9, 3, 3, 0, 0xef6, 0x0333, [2]uint64{0x0000000b769542a1, 0x0}, 0xa4, 0x00},   // 0xa4
	{13, 4, 4, 0, 0xfff, 0x3333, [2]uint64{0x0000b769542a1830, 0x0}, 0xa5, 0x00},  // 0xa5
	{11, 2, 2, 0, 0xcf5, 0x0035, [2]uint64{0x00000000b762a540, 0x0}, 0xa6, 0x00},  // 0xa6
	{9, 2, 2, 0, 0xdfc, 0x0036, [2]uint64{0x0000000b76a54832, 0x0}, 0xa7, 0x00},   // 0xa7
	{7, 2, 2, 0, 0x2fc, 0x0034, [2]uint64{0x0000000009543762, 0x0}, 0xa8, 0x00},   // 0xa8
	{11, 2, 2, 0, 0x3f5, 0x0035, [2]uint64{0x0000000095487620, 0x0}, 0xa9, 0x00},  // 0xa9
	{12, 2, 2, 0, 0x0ff, 0x0044, [2]uint64{0x0000000037621540, 0x0}, 0xaa, 0x00},  // 0xaa
	{7, 2, 2, 0, 0x1f6, 0x0045, [2]uint64{0x0000000154887621, 0x0}, 0xab, 0x00},   // 0xab
	{11, 2, 2, 0, 0x6fa, 0x0035, [2]uint64{0x00000000954376a1, 0x0}, 0xac, 0x00},  // 0xac
	{9, 2, 2, 0, 0x7f3, 0x0036, [2]uint64{0x0000000954876a10, 0x0}, 0xad, 0x00},   // 0xad
	{7, 2, 2, 0, 0x4f9, 0x0054, [2]uint64{0x00000000376aa540, 0x0}, 0xae, 0x00},   // 0xae
	{3, 2, 2, 0, 0x5f0, 0x0044, [2]uint64{0x00000000a548876a, 0x0}, 0xaf, 0x00},   // 0xaf
	{4, 1, 1, 0, 0xb60, 0x0005, [2]uint64{0x000000000006b895, 0x0}, 0xb0, 0x00},   // 0xb0
	{10, 1, 1, 0, 0xa69, 0x0006, [2]uint64{0x0000000000956b30, 0x0}, 0xb1, 0x00},  // 0xb1
	{8, 1, 1, 0, 0x963, 0x0006, [2]uint64{0x0000000000156b80, 0x0}, 0xb2, 0x00},   // 0xb2
	{4, 1, 1, 0, 0x86a, 0x0005, [2]uint64{0x0000000000056b31, 0x0}, 0xb3, 0x00},   // 0xb3
	{11, 2, 2, 0, 0xf66, 0x0053, [2]uint64{0x000000006b8952a1, 0x0}, 0xb4, 0x00},  // 0xb4
	{9, 2, 2, 0, 0xe6f, 0x0036, [2]uint64{0x00000002a1956b30, 0x0}, 0xb5, 0x00},   // 0xb5
	{7, 2, 2, 0, 0xd65, 0x0045, [2]uint64{0x000000002a556b80, 0x0}, 0xb6, 0x00},   // 0xb6
	{3, 2, 2, 0, 0xc6c, 0x0044, [2]uint64{0x0000000032a556b3, 0x0}, 0xb7, 0x00},   // 0xb7
	{8, 1, 1, 0, 0x36c, 0x0006, [2]uint64{0x0000000000389562, 0x0}, 0xb8, 0x00},   // 0xb8
	{4, 1, 1, 0, 0x265, 0x0005, [2]uint64{0x0000000000095620, 0x0}, 0xb9, 0x00},   // 0xb9
	{7, 2, 2, 0, 0x16f, 0x0054, [2]uint64{0x0000000801566238, 0x0}, 0xba, 0x00},   // 0xba
	{2, 1, 1, 0, 0x066, 0x0004, [2]uint64{0x0000000000005621, 0x0}, 0xbb, 0x00},   // 0xbb
	{7, 2, 2, 0, 0x76a, 0x0054, [2]uint64{0x00000006a1388956, 0x0}, 0xbc, 0x00},   // 0xbc
	{3, 2, 2, 0, 0x663, 0x0044, [2]uint64{0x0000000009566a10, 0x0}, 0xbd, 0x00},   // 0xbd
	{6, 2, 2, 0, 0x569, 0x0033, [2]uint64{0x00000000006a5380, 0x0}, 0xbe, 0x00},   // 0xbe
	{1, 1, 1, 0, 0x460, 0x0003, [2]uint64{0x00000000000006a5, 0x0}, 0xbf, 0x00},   // 0xbf
	{2, 1, 1, 0, 0xca0, 0x0004, [2]uint64{0x000000000000ab75, 0x0}, 0xc0, 0x00},   // 0xc0
	{7, 2, 2, 0, 0xda9, 0x0043, [2]uint64{0x000000000ab75830, 0x0}, 0xc1, 0x00},   // 0xc1
	{7, 2, 2, 0, 0xea3, 0x0043, [2]uint64{0x000000000ab75190, 0x0}, 0xc2, 0x00},   // 0xc2
	{12, 2, 2, 0, 0xfaa, 0x0044, [2]uint64{0x00000000ab759831, 0x0}, 0xc3, 0x00},  // 0xc3
	{4, 1, 1, 0, 0x8a6, 0x0005, [2]uint64{0x000000000002b751, 0x0}, 0xc4, 0x00},   // 0xc4
	{11, 2, 2, 0, 0x9af, 0x0053, [2]uint64{0x000000002b751830, 0x0}, 0xc5, 0x00},  // 0xc5
	{8, 1, 1, 0, 0xaa5, 0x0006, [2]uint64{0x00000000002b7590, 0x0}, 0xc6, 0x00},   // 0xc6
	{7, 2, 2, 0, 0xbac, 0x0054, [2]uint64{0x00000002b7599832, 0x0}, 0xc7, 0x00},   // 0xc7
	{4, 1, 1, 0, 0x4ac, 0x0005, [2]uint64{0x00000000000375a2, 0x0}, 0xc8, 0x00},   // 0xc8
	{8, 1, 1, 0, 0x5a5, 0x0006, [2]uint64{0x0000000000875a20, 0x0}, 0xc9, 0x00},   // 0xc9
	{11, 2, 2, 0, 0x6af, 0x0053, [2]uint64{0x00000000375a2190, 0x0}, 0xca, 0x00},  // 0xca
	{7, 2, 2, 0, 0x7a6, 0x0054, [2]uint64{0x00000002198775a2, 0x0}, 0xcb, 0x00},   // 0xcb
	{5, 1, 1, 0, 0x0aa, 0x0004, [2]uint64{0x0000000000003751, 0x0}, 0xcc, 0x00},   // 0xcc
	{4, 1, 1, 0, 0x1a3, 0x0005, [2]uint64{0x0000000000087510, 0x0}, 0xcd, 0x00},   // 0xcd
	{4, 1, 1, 0, 0x2a9, 0x0005, [2]uint64{0x0000000000037590, 0x0}, 0xce, 0x00},   // 0xce
	{2, 1, 1, 0, 0x3a0, 0x0004, [2]uint64{0x0000000000009875, 0x0}, 0xcf, 0x00},   // 0xcf
	{4, 1, 1, 0, 0xd30, 0x0005, [2]uint64{0x000000000005ab84, 0x0}, 0xd0, 0x00},   // 0xd0
	{8, 1, 1, 0, 0xc39, 0x0006, [2]uint64{0x000000000045ab30, 0x0}, 0xd1, 0x00},   // 0xd1
	{11, 2, 2, 0, 0xf33, 0x0053, [2]uint64{0x000000005ab84190, 0x0}, 0xd2, 0x00},  // 0xd2
	{7, 2, 2, 0, 0xe3a, 0x0045, [2]uint64{0x0000000319445ab3, 0x0}, 0xd3, 0x00},   // 0xd3
	{8, 1, 1, 0, 0x936, 0x0006, [2]uint64{0x00000000002b8451, 0x0}, 0xd4, 0x00},   // 0xd4
	{7, 2, 2, 0, 0x83f, 0x0054, [2]uint64{0x0000000b3045512b, 0x0}, 0xd5, 0x00},   // 0xd5
	{7, 2, 2, 0, 0xb35, 0x0054, [2]uint64{0x00000005902bb845, 0x0}, 0xd6, 0x00},   // 0xd6
	{6, 2, 2, 0, 0xa3c, 0x0033, [2]uint64{0x0000000000594b32, 0x0}, 0xd7, 0x00},   // 0xd7
	{10, 1, 1, 0, 0x53c, 0x0006, [2]uint64{0x00000000003845a2, 0x0}, 0xd8, 0x00},  // 0xd8
	{4, 1, 1, 0, 0x435, 0x0005, [2]uint64{0x0000000000045a20, 0x0}, 0xd9, 0x00},   // 0xd9
	{9, 2, 2, 0, 0x73f, 0x0063, [2]uint64{0x00000003845a2190, 0x0}, 0xda, 0x00},   // 0xda
	{3, 2, 2, 0, 0x636, 0x0044, [2]uint64{0x00000000219445a2, 0x0}, 0xdb, 0x00},   // 0xdb
	{4, 1, 1, 0, 0x13a, 0x0005, [2]uint64{0x0000000000038451, 0x0}, 0xdc, 0x00},   // 0xdc
	{2, 1, 1, 0, 0x033, 0x0004, [2]uint64{0x0000000000004510, 0x0}, 0xdd, 0x00},   // 0xdd
	{3, 2, 2, 0, 0x339, 0x0044, [2]uint64{0x0000000059033845, 0x0}, 0xde, 0x00},   // 0xde
	{1, 1, 1, 0, 0x230, 0x0003, [2]uint64{0x0000000000000594, 0x0}, 0xdf, 0x00},   // 0xdf
	{4, 1, 1, 0, 0xe90, 0x0005, [2]uint64{0x000000000009ab74, 0x0}, 0xe0, 0x00},   // 0xe0
	{11, 2, 2, 0, 0xf99, 0x0053, [2]uint64{0x000000009ab74830, 0x0}, 0xe1, 0x00},  // 0xe1
	{8, 1, 1, 0, 0xc93, 0x0006, [2]uint64{0x00000000001ab740, 0x0}, 0xe2, 0x00},   // 0xe2
	{7, 2, 2, 0, 0xd9a, 0x0054, [2]uint64{0x00000001ab744831, 0x0}, 0xe3, 0x00},   // 0xe3
	{10, 1, 1, 0, 0xa96, 0x0006, [2]uint64{0x00000000002b7491, 0x0}, 0xe4, 0x00},  // 0xe4
	{9, 2, 2, 0, 0xb9f, 0x0063, [2]uint64{0x00000002b7491830, 0x0}, 0xe5, 0x00},   // 0xe5
	{4, 1, 1, 0, 0x895, 0x0005, [2]uint64{0x000000000002b740, 0x0}, 0xe6, 0x00},   // 0xe6
	{3, 2, 2, 0, 0x99c, 0x0044, [2]uint64{0x000000002b744832, 0x0}, 0xe7, 0x00},   // 0xe7
	{8, 1, 1, 0, 0x69c, 0x0006, [2]uint64{0x00000000003749a2, 0x0}, 0xe8, 0x00},   // 0xe8
	{7, 2, 2, 0, 0x795, 0x0045, [2]uint64{0x00000002087749a2, 0x0}, 0xe9, 0x00},   // 0xe9
	{7, 2, 2, 0, 0x49f, 0x0045, [2]uint64{0x0000000401aa2374, 0x0}, 0xea, 0x00},   // 0xea
	{6, 2, 2, 0, 0x596, 0x0033, [2]uint64{0x0000000000874a21, 0x0}, 0xeb, 0x00},   // 0xeb
	{4, 1, 1, 0, 0x29a, 0x0005, [2]uint64{0x0000000000037491, 0x0}, 0xec, 0x00},   // 0xec
	{3, 2, 2, 0, 0x393, 0x0044, [2]uint64{0x0000000010877491, 0x0}, 0xed, 0x00},   // 0xed
	{2, 1, 1, 0, 0x099, 0x0004, [2]uint64{0x0000000000003740, 0x0}, 0xee, 0x00},   // 0xee
	{1, 1, 1, 0, 0x190, 0x0003, [2]uint64{0x0000000000000874, 0x0}, 0xef, 0x00},   // 0xef
	{5, 1, 1, 0, 0xf00, 0x0004, [2]uint64{0x0000000000009ab8, 0x0}, 0xf0, 0x00},   // 0xf0
	{4, 1, 1, 0, 0xe09, 0x0005, [2]uint64{0x000000000009ab30, 0x0}, 0xf1, 0x00},   // 0xf1
	{4, 1, 1, 0, 0xd03, 0x0005, [2]uint64{0x000000000001ab80, 0x0}, 0xf2, 0x00},   // 0xf2
	{2, 1, 1, 0, 0xc0a, 0x0004, [2]uint64{0x000000000000ab31, 0x0}, 0xf3, 0x00},   // 0xf3
	{4, 1, 1, 0, 0xb06, 0x0005, [2]uint64{0x000000000002b891, 0x0}, 0xf4, 0x00},   // 0xf4
	{3, 2, 2, 0, 0xa0f, 0x0044, [2]uint64{0x00000000b309912b, 0x0}, 0xf5, 0x00},   // 0xf5
	{2, 1, 1, 0, 0x905, 0x0004, [2]uint64{0x0000000000002b80, 0x0}, 0xf6, 0x00},   // 0xf6
	{1, 1, 1, 0, 0x80c, 0x0003, [2]uint64{0x0000000000000b32, 0x0}, 0xf7, 0x00},   // 0xf7
	{4, 1, 1, 0, 0x70c, 0x0005, [2]uint64{0x00000000000389a2, 0x0}, 0xf8, 0x00},   // 0xf8
	{2, 1, 1, 0, 0x605, 0x0004, [2]uint64{0x0000000000009a20, 0x0}, 0xf9, 0x00},   // 0xf9
	{3, 2, 2, 0, 0x50f, 0x0044, [2]uint64{0x00000000801aa238, 0x0}, 0xfa, 0x00},   // 0xfa
	{1, 1, 1, 0, 0x406, 0x0003, [2]uint64{0x0000000000000a21, 0x0}, 0xfb, 0x00},   // 0xfb
	{2, 1, 1, 0, 0x30a, 0x0004, [2]uint64{0x0000000000003891, 0x0}, 0xfc, 0x00},   // 0xfc
	{1, 1, 1, 0, 0x203, 0x0003, [2]uint64{0x0000000000000910, 0x0}, 0xfd, 0x00},   // 0xfd
	{1, 1, 1, 0, 0x109, 0x0003, [2]uint64{0x0000000000000380, 0x0}, 0xfe, 0x00},   // 0xfe
	{0, 0, 0, 0, 0x000, 0x0000, [2]uint64{0x0000000000000000, 0x0}, 0xff, 0x00},   // 0xff
	{3, 2, 2, 0, 0x50f, 0x0044, [2]uint64{0x00000000a108832a, 0x0}, 0x05, 0x10},   // 256
	{3, 2, 2, 0, 0xa0f, 0x0044, [2]uint64{0x00000000903bb219, 0x0}, 0x0a, 0x10},   // 257
	{3, 2, 2, 0, 0x393, 0x0044, [2]uint64{0x0000000078011947, 0x0}, 0x12, 0x04},   // 258
	{7, 2, 2, 0, 0x49f, 0x0054, [2]uint64{0x0000000a1047732a, 0x0}, 0x15, 0x10},   // 259
	{7, 2, 2, 0, 0x795, 0x0054, [2]uint64{0x00000007802aa947, 0x0}, 0x16, 0x04},   // 260
	{3, 2, 2, 0, 0x99c, 0x0044, [2]uint64{0x00000000238447b2, 0x0}, 0x18, 0x01},   // 261
	{9, 3, 3, 0, 0xb9f, 0x0443, [2]uint64{0x00000238447b2190, 0x0}, 0x1a, 0x01},   // 262
	{9, 3, 3, 0, 0xb9f, 0x0344, [2]uint64{0x000003b278011947, 0x0}, 0x1a, 0x04},   // 263
	{9, 9, 1, 1, 0xb9f, 0x0009, [2]uint64{0x00000001947b2380, 0x0}, 0x1a, 0x05},   // 264
	{9, 3, 3, 0, 0xb9f, 0x0344, [2]uint64{0x00000784903bb219, 0x0}, 0x1a, 0x10},   // 265
	{9, 9, 1, 1, 0xb9f, 0x0009, [2]uint64{0x00000003847b2190, 0x0}, 0x1a, 0x11},   // 266
	{9, 9, 1, 1, 0xb9f, 0x0009, [2]uint64{0x00000003b2194780, 0x0}, 0x1a, 0x14},   // 267
	{9, 2, 2, 0, 0xb9f, 0x0063, [2]uint64{0x0000000947b21380, 0x0}, 0x1a, 0x15},   // 268
	{7, 2, 2, 0, 0xd9a, 0x0045, [2]uint64{0x0000000138447ba1, 0x0}, 0x1c, 0x01},   // 269
	{11, 3, 3, 0, 0xf99, 0x0444, [2]uint64{0x0000384aa90347ba, 0x0}, 0x1e, 0x01},  // 270
	{11, 3, 3, 0, 0xf99, 0x0444, [2]uint64{0x000003ba780aa947, 0x0}, 0x1e, 0x04},  // 271
	{11, 2, 2, 0, 0xf99, 0x0053, [2]uint64{0x000000007ba94380, 0x0}, 0x1e, 0x05},  // 272
	{3, 2, 2, 0, 0x339, 0x0044, [2]uint64{0x0000000030955483, 0x0}, 0x21, 0x04},   // 273
	{3, 2, 2, 0, 0x636, 0x0044, [2]uint64{0x0000000049122a54, 0x0}, 0x24, 0x02},   // 274
	{9, 3, 3, 0, 0x73f, 0x0443, [2]uint64{0x0000049122a54830, 0x0}, 0x25, 0x02},   // 275
	{9, 3, 3, 0, 0x73f, 0x0344, [2]uint64{0x000002a130955483, 0x0}, 0x25, 0x04},   // 276
	{9, 9, 1, 1, 0x73f, 0x0009, [2]uint64{0x0000000912a54830, 0x0}, 0x25, 0x06},   // 277
	{9, 3, 3, 0, 0x73f, 0x0344, [2]uint64{0x00000954a108832a, 0x0}, 0x25, 0x10},   // 278
	{9, 9, 1, 1, 0x73f, 0x0009, [2]uint64{0x0000000832a54910, 0x0}, 0x25, 0x12},   // 279
	{9, 9, 1, 1, 0x73f, 0x0009, [2]uint64{0x0000000954832a10, 0x0}, 0x25, 0x14},   // 280
	{9, 2, 2, 0, 0x73f, 0x0063, [2]uint64{0x0000000a54832910, 0x0}, 0x25, 0x16},   // 281
	{7, 2, 2, 0, 0xb35, 0x0045, [2]uint64{0x00000002095548b2, 0x0}, 0x29, 0x04},   // 282
	{7, 2, 2, 0, 0x83f, 0x0045, [2]uint64{0x0000000403bb2154, 0x0}, 0x2a, 0x10},   // 283
	{7, 2, 2, 0, 0xe3a, 0x0054, [2]uint64{0x00000004913bba54, 0x0}, 0x2c, 0x02},   // 284
	{11, 3, 3, 0, 0xf33, 0x0444, [2]uint64{0x0000108b491bba54, 0x0}, 0x2d, 0x02},  // 285
	{11, 3, 3, 0, 0xf33, 0x0444, [2]uint64{0x0000b095548bba10, 0x0}, 0x2d, 0x04},  // 286
	{11, 2, 2, 0, 0xf33, 0x0053, [2]uint64{0x000000008ba54910, 0x0}, 0x2d, 0x06},  // 287
	{7, 2, 2, 0, 0x7a6, 0x0045, [2]uint64{0x000000089122a578, 0x0}, 0x34, 0x02},   // 288
	{11, 3, 3, 0, 0x6af, 0x0444, [2]uint64{0x0000912773092a57, 0x0}, 0x35, 0x02},  // 289
	{11, 3, 3, 0, 0x6af, 0x0444, [2]uint64{0x00000957a107732a, 0x0}, 0x35, 0x10},  // 290
	{11, 2, 2, 0, 0x6af, 0x0053, [2]uint64{0x00000000a5732910, 0x0}, 0x35, 0x12},  // 291
	{7, 2, 2, 0, 0xbac, 0x0054, [2]uint64{0x00000002389557b2, 0x0}, 0x38, 0x01},   // 292
	{11, 3, 3, 0, 0x9af, 0x0444, [2]uint64{0x00008015238557b2, 0x0}, 0x3a, 0x01},  // 293
	{11, 3, 3, 0, 0x9af, 0x0444, [2]uint64{0x0000503bb2155780, 0x0}, 0x3a, 0x10},  // 294
	{11, 2, 2, 0, 0x9af, 0x0053, [2]uint64{0x0000000057b21380, 0x0}, 0x3a, 0x11},  // 295
	{12, 8, 1, 1, 0xfaa, 0x0008, [2]uint64{0x0000000038957ba1, 0x0}, 0x3c, 0x01},  // 296
	{12, 8, 1, 1, 0xfaa, 0x0008, [2]uint64{0x000000003ba57891, 0x0}, 0x3c, 0x02},  // 297
	{12, 2, 2, 0, 0xfaa, 0x0044, [2]uint64{0x000000007ba53891, 0x0}, 0x3c, 0x03},  // 298
	{7, 2, 2, 0, 0xea3, 0x0043, [2]uint64{0x0000000007ba5910, 0x0}, 0x3d, 0x02},   // 299
	{7, 2, 2, 0, 0xda9, 0x0043, [2]uint64{0x0000000007ba5380, 0x0}, 0x3e, 0x01},   // 300
	{3, 2, 2, 0, 0x663, 0x0044, [2]uint64{0x0000000001a66590, 0x0}, 0x42, 0x02},   // 301
	{7, 2, 2, 0, 0x76a, 0x0045, [2]uint64{0x000000031a665983, 0x0}, 0x43, 0x02},   // 302
	{7, 2, 2, 0, 0x16f, 0x0045, [2]uint64{0x0000000510883265, 0x0}, 0x45, 0x10},   // 303
	{3, 2, 2, 0, 0xc6c, 0x0044, [2]uint64{0x000000005a233b65, 0x0}, 0x48, 0x08},   // 304
	{7, 2, 2, 0, 0xd65, 0x0054, [2]uint64{0x000000008b655a20, 0x0}, 0x49, 0x08},   // 305
	{9, 3, 3, 0, 0xe6f, 0x0344, [2]uint64{0x000003b201a66590, 0x0}, 0x4a, 0x02},   // 306
	{9, 3, 3, 0, 0xe6f, 0x0443, [2]uint64{0x000005a233b65190, 0x0}, 0x4a, 0x08},   // 307
	{9, 9, 1, 1, 0xe6f, 0x0009, [2]uint64{0x00000001a23b6590, 0x0}, 0x4a, 0x0a},   // 308
	{9, 3, 3, 0, 0xe6f, 0x0344, [2]uint64{0x00000a65903bb219, 0x0}, 0x4a, 0x10},   // 309
	{9, 9, 1, 1, 0xe6f, 0x0009, [2]uint64{0x00000003b21a6590, 0x0}, 0x4a, 0x12},   // 310
	{9, 9, 1, 1, 0xe6f, 0x0009, [2]uint64{0x00000003b65a2190, 0x0}, 0x4a, 0x18},   // 311
	{9, 2, 2, 0, 0xe6f, 0x0036, [2]uint64{0x0000000a213b6590, 0x0}, 0x4a, 0x1a},   // 312
	{11, 3, 3, 0, 0xf66, 0x0444, [2]uint64{0x000081a665988b21, 0x0}, 0x4b, 0x02},  // 313
	{11, 3, 3, 0, 0xf66, 0x0444, [2]uint64{0x000021985a288b65, 0x0}, 0x4b, 0x08},  // 314
	{11, 2, 2, 0, 0xf66, 0x0053, [2]uint64{0x0000000098b65a21, 0x0}, 0x4b, 0x0a},  // 315
	{3, 2, 2, 0, 0x5f0, 0x0044, [2]uint64{0x00000000845aa678, 0x0}, 0x50, 0x20},   // 316
	{7, 2, 2, 0, 0x4f9, 0x0045, [2]uint64{0x0000000045aa6730, 0x0}, 0x51, 0x20},   // 317
	{9, 3, 3, 0, 0x7f3, 0x0344, [2]uint64{0x0000078401a66590, 0x0}, 0x52, 0x02},   // 318
	{9, 3, 3, 0, 0x7f3, 0x0344, [2]uint64{0x00000a6578011947, 0x0}, 0x52, 0x04},   // 319
	{9, 9, 1, 1, 0x7f3, 0x0009, [2]uint64{0x00000001a6594780, 0x0}, 0x52, 0x06},   // 320
	{9, 3, 3, 0, 0x7f3, 0x0443, [2]uint64{0x00000845aa678190, 0x0}, 0x52, 0x20},   // 321
	{9, 9, 1, 1, 0x7f3, 0x0009, [2]uint64{0x00000001a6784590, 0x0}, 0x52, 0x22},   // 322
	{9, 9, 1, 1, 0x7f3, 0x0009, [2]uint64{0x00000001945a6780, 0x0}, 0x52, 0x24},   // 323
	{9, 2, 2, 0, 0x7f3, 0x0036, [2]uint64{0x00000005941a6780, 0x0}, 0x52, 0x26},   // 324
	{11, 3, 3, 0, 0x6fa, 0x0444, [2]uint64{0x0000659331a69473, 0x0}, 0x53, 0x02},  // 325
	{11, 3, 3, 0, 0x6fa, 0x0444, [2]uint64{0x000045a33194a673, 0x0}, 0x53, 0x20},  // 326
	{11, 2, 2, 0, 0x6fa, 0x0035, [2]uint64{0x00000000594a6731, 0x0}, 0x53, 0x22},  // 327
	{7, 2, 2, 0, 0x1f6, 0x0054, [2]uint64{0x0000000126788451, 0x0}, 0x54, 0x20},   // 328
	{12, 8, 1, 1, 0x0ff, 0x0008, [2]uint64{0x0000000047326510, 0x0}, 0x55, 0x10},  // 329
	{12, 8, 1, 1, 0x0ff, 0x0008, [2]uint64{0x0000000045126730, 0x0}, 0x55, 0x20},  // 330
	{12, 2, 2, 0, 0x0ff, 0x0044, [2]uint64{0x0000000067324510, 0x0}, 0x55, 0x30},  // 331
	{11, 3, 3, 0, 0x3f5, 0x0444, [2]uint64{0x0000780294722659, 0x0}, 0x56, 0x04},  // 332
	{11, 3, 3, 0, 0x3f5, 0x0444, [2]uint64{0x0000590284522678, 0x0}, 0x56, 0x20},  // 333
	{11, 2, 2, 0, 0x3f5, 0x0035, [2]uint64{0x0000000059426780, 0x0}, 0x56, 0x24},  // 334
	{7, 2, 2, 0, 0x2fc, 0x0034, [2]uint64{0x0000000005946732, 0x0}, 0x57, 0x20},   // 335
	{9, 3, 3, 0, 0xdfc, 0x0344, [2]uint64{0x00000a65238447b2, 0x0}, 0x58, 0x01},   // 336
	{9, 3, 3, 0, 0xdfc, 0x0344, [2]uint64{0x000007845a233b65, 0x0}, 0x58, 0x08},   // 337
	{9, 9, 1, 1, 0xdfc, 0x0009, [2]uint64{0x00000003847b65a2, 0x0}, 0x58, 0x09},   // 338
	{9, 3, 3, 0, 0xdfc, 0x0443, [2]uint64{0x00000845aa6783b2, 0x0}, 0x58, 0x20},   // 339
	{9, 9, 1, 1, 0xdfc, 0x0009, [2]uint64{0x00000003845a67b2, 0x0}, 0x58, 0x21},   // 340
	{9, 9, 1, 1, 0xdfc, 0x0009, [2]uint64{0x00000003b67845a2, 0x0}, 0x58, 0x28},   // 341
	{9, 2, 2, 0, 0xdfc, 0x0036, [2]uint64{0x00000007b63845a2, 0x0}, 0x58, 0x29},   // 342
	{11, 3, 3, 0, 0xcf5, 0x0444, [2]uint64{0x0000b650047b5a20, 0x0}, 0x59, 0x08},  // 343
	{11, 3, 3, 0, 0xcf5, 0x0444, [2]uint64{0x0000a670045a7b20, 0x0}, 0x59, 0x20},  // 344
	{11, 2, 2, 0, 0xcf5, 0x0035, [2]uint64{0x000000007b645a20, 0x0}, 0x59, 0x28},  // 345
	{13, 4, 4, 0, 0xfff, 0x3443, [2]uint64{0x00a65238447b2190, 0x0}, 0x5a, 0x01},  // 346
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x007843b201a66590, 0x0}, 0x5a, 0x02},  // 347
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0x238447b201a66590, 0x0}, 0x5a, 0x03},  // 348
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x00a653b278011947, 0x0}, 0x5a, 0x04},  // 349
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000a651947b2380, 0x0}, 0x5a, 0x05}, // 350
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00003b21a6594780, 0x0}, 0x5a, 0x06}, // 351
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x1a638652359947b2, 0x80}, 0x5a, 0x07}, // 352
	{13, 4, 4, 0, 0xfff, 0x3443, [2]uint64{0x007845a233b65190, 0x0}, 0x5a, 0x08},  // 353
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x00003847b65a2190, 0x0}, 0x5a, 0x09}, // 354
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00007841a23b6590, 0x0}, 0x5a, 0x0a}, // 355
	{13, 4, 4, 0, 0xfff, 0x4455, [2]uint64{0x01471aa2384b6590, 0x7b}, 0x5a, 0x0b}, // 356
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0x5a233b6578011947, 0x0}, 0x5a, 0x0c},  // 357
	{13, 4, 4, 0, 0xfff, 0x4545, [2]uint64{0x011947b80655a238, 0xb6}, 0x5a, 0x0d}, // 358
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x01a47a294233b659, 0x78}, 0x5a, 0x0e}, // 359
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0x947bb659801aa238, 0x0}, 0x5a, 0x0f},  // 360
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x00a65784903bb219, 0x0}, 0x5a, 0x10},  // 361
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000a653847b2190, 0x0}, 0x5a, 0x11}, // 362
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00007843b21a6590, 0x0}, 0x5a, 0x12}, // 363
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x903a6381a8447b21, 0x65}, 0x5a, 0x13}, // 364
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000a653b2194780, 0x0}, 0x5a, 0x14}, // 365
	{13, 3, 3, 0, 0xfff, 0x0363, [2]uint64{0x0000a65947b21380, 0x0}, 0x5a, 0x15},  // 366
	{13, 12, 1, 1, 0xfff, 0x000c, [2]uint64{0x00003b21a6594780, 0x0}, 0x5a, 0x16}, // 367
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x0000a65947b21380, 0x0}, 0x5a, 0x17}, // 368
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00007843b65a2190, 0x0}, 0x5a, 0x18}, // 369
	{13, 12, 1, 1, 0xfff, 0x000c, [2]uint64{0x00003847b65a2190, 0x0}, 0x5a, 0x19}, // 370
	{13, 3, 3, 0, 0xfff, 0x0336, [2]uint64{0x0000784a213b6590, 0x0}, 0x5a, 0x1a},  // 371
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000a213847b6590, 0x0}, 0x5a, 0x1b}, // 372
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0xb65805a78a221947, 0x3}, 0x5a, 0x1c},  // 373
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x0000947b65a21380, 0x0}, 0x5a, 0x1d}, // 374
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000a213b6594780, 0x0}, 0x5a, 0x1e}, // 375
	{13, 4, 4, 0, 0xfff, 0x4433, [2]uint64{0x00947bb659a21380, 0x0}, 0x5a, 0x1f},  // 376
	{13, 4, 4, 0, 0xfff, 0x4433, [2]uint64{0x00845aa6783b2190, 0x0}, 0x5a, 0x20},  // 377
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x00003845a67b2190, 0x0}, 0x5a, 0x21}, // 378
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00003b21a6784590, 0x0}, 0x5a, 0x22}, // 379
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0xa67907b59b223845, 0x1}, 0x5a, 0x23},  // 380
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00003b21945a6780, 0x0}, 0x5a, 0x24}, // 381
	{13, 12, 1, 1, 0xfff, 0x000c, [2]uint64{0x00001945a67b2380, 0x0}, 0x5a, 0x25}, // 382
	{13, 3, 3, 0, 0xfff, 0x0336, [2]uint64{0x00005943b21a6780, 0x0}, 0x5a, 0x26},  // 383
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00005941a67b2380, 0x0}, 0x5a, 0x27}, // 384
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x00003b67845a2190, 0x0}, 0x5a, 0x28}, // 385
	{13, 3, 3, 0, 0xfff, 0x0363, [2]uint64{0x00007b63845a2190, 0x0}, 0x5a, 0x29},  // 386
	{13, 12, 1, 1, 0xfff, 0x000c, [2]uint64{0x00001a23b6784590, 0x0}, 0x5a, 0x2a}, // 387
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00007b61a2384590, 0x0}, 0x5a, 0x2b}, // 388
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x801b6193b9445a23, 0x67}, 0x5a, 0x2c}, // 389
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00007b61945a2380, 0x0}, 0x5a, 0x2d}, // 390
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00005941a23b6780, 0x0}, 0x5a, 0x2e}, // 391
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x007b6594801aa238, 0x0}, 0x5a, 0x2f},  // 392
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0x845aa678903bb219, 0x0}, 0x5a, 0x30},  // 393
	{13, 4, 4, 0, 0xfff, 0x4545, [2]uint64{0x033845a90677b219, 0xa6}, 0x5a, 0x31}, // 394
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x03b45b284211a678, 0x59}, 0x5a, 0x32}, // 395
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0x1a677b2159033845, 0x0}, 0x5a, 0x33},  // 396
	{13, 4, 4, 0, 0xfff, 0x4455, [2]uint64{0x03453bb2194a6780, 0x5a}, 0x5a, 0x34}, // 397
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x0000945a67b21380, 0x0}, 0x5a, 0x35}, // 398
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00005943b21a6780, 0x0}, 0x5a, 0x36}, // 399
	{13, 4, 4, 0, 0xfff, 0x3443, [2]uint64{0x005941a677b21380, 0x0}, 0x5a, 0x37},  // 400
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x3b619672178845a2, 0x90}, 0x5a, 0x38}, // 401
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00007b63845a2190, 0x0}, 0x5a, 0x39}, // 402
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000a213b6784590, 0x0}, 0x5a, 0x3a}, // 403
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x007b6a2159033845, 0x0}, 0x5a, 0x3b},  // 404
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0x219445a203b66780, 0x0}, 0x5a, 0x3c},  // 405
	{13, 4, 4, 0, 0xfff, 0x3443, [2]uint64{0x007b6219445a2380, 0x0}, 0x5a, 0x3d},  // 406
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x00594a2103b66780, 0x0}, 0x5a, 0x3e},  // 407
	{13, 4, 4, 0, 0xfff, 0x3333, [2]uint64{0x00007b6594a21380, 0x0}, 0x5a, 0x3f},  // 408
	{9, 9, 1, 1, 0xef6, 0x0009, [2]uint64{0x0000000a65947b21, 0x0}, 0x5b, 0x02},   // 409
	{9, 9, 1, 1, 0xef6, 0x0009, [2]uint64{0x0000000947b65a21, 0x0}, 0x5b, 0x08},   // 410
	{9, 3, 3, 0, 0xef6, 0x0443, [2]uint64{0x00000947bb659a21, 0x0}, 0x5b, 0x0a},   // 411
	{9, 9, 1, 1, 0xef6, 0x0009, [2]uint64{0x0000000945a67b21, 0x0}, 0x5b, 0x20},   // 412
	{9, 3, 3, 0, 0xef6, 0x0344, [2]uint64{0x000005941a677b21, 0x0}, 0x5b, 0x22},   // 413
	{9, 3, 3, 0, 0xef6, 0x0344, [2]uint64{0x000007b6219445a2, 0x0}, 0x5b, 0x28},   // 414
	{9, 3, 3, 0, 0xef6, 0x0333, [2]uint64{0x00000007b6594a21, 0x0}, 0x5b, 0x2a},   // 415
	{11, 3, 3, 0, 0x9fa, 0x0444, [2]uint64{0x000047b11384b651, 0x0}, 0x5c, 0x01},  // 416
	{11, 3, 3, 0, 0x9fa, 0x0444, [2]uint64{0x0000678113b68451, 0x0}, 0x5c, 0x20},  // 417
	{11, 2, 2, 0, 0x9fa, 0x0035, [2]uint64{0x000000007b638451, 0x0}, 0x5c, 0x21},  // 418
	{7, 2, 2, 0, 0x8f3, 0x0034, [2]uint64{0x0000000007b64510, 0x0}, 0x5d, 0x20},   // 419
	{9, 9, 1, 1, 0xbf9, 0x0009, [2]uint64{0x00000003847b6590, 0x0}, 0x5e, 0x01},   // 420
	{9, 9, 1, 1, 0xbf9, 0x0009, [2]uint64{0x00000003b6594780, 0x0}, 0x5e, 0x04},   // 421
	{9, 3, 3, 0, 0xbf9, 0x0443, [2]uint64{0x00000947bb659380, 0x0}, 0x5e, 0x05},   // 422
	{9, 9, 1, 1, 0xbf9, 0x0009, [2]uint64{0x00000003b6784590, 0x0}, 0x5e, 0x20},   // 423
	{9, 3, 3, 0, 0xbf9, 0x0344, [2]uint64{0x000007b659033845, 0x0}, 0x5e, 0x21},   // 424
	{9, 3, 3, 0, 0xbf9, 0x0344, [2]uint64{0x0000059403b66780, 0x0}, 0x5e, 0x24},   // 425
	{9, 3, 3, 0, 0xbf9, 0x0333, [2]uint64{0x00000007b6594380, 0x0}, 0x5e, 0x25},   // 426
	{3, 2, 2, 0, 0xaf0, 0x0033, [2]uint64{0x00000000007b6594, 0x0}, 0x5f, 0x20},   // 427
	{7, 2, 2, 0, 0x759, 0x0054, [2]uint64{0x0000000309a66483, 0x0}, 0x61, 0x04},   // 428
	{11, 3, 3, 0, 0x35f, 0x0444, [2]uint64{0x0000630991266483, 0x0}, 0x65, 0x04},  // 429
	{11, 3, 3, 0, 0x35f, 0x0444, [2]uint64{0x0000610883266491, 0x0}, 0x65, 0x10},  // 430
	{11, 2, 2, 0, 0x35f, 0x0053, [2]uint64{0x0000000064832910, 0x0}, 0x65, 0x14},  // 431
	{7, 2, 2, 0, 0xe5c, 0x0045, [2]uint64{0x00000009a233b649, 0x0}, 0x68, 0x08},   // 432
	{12, 8, 1, 1, 0xf55, 0x0008, [2]uint64{0x000000009a648b20, 0x0}, 0x69, 0x04},  // 433
	{12, 8, 1, 1, 0xf55, 0x0008, [2]uint64{0x000000008b649a20, 0x0}, 0x69, 0x08},  // 434
	{12, 2, 2, 0, 0xf55, 0x0044, [2]uint64{0x000000008b649a20, 0x0}, 0x69, 0x0c},  // 435
	{11, 3, 3, 0, 0xc5f, 0x0444, [2]uint64{0x0000a234401a3b64, 0x0}, 0x6a, 0x08},  // 436
	{11, 3, 3, 0, 0xc5f, 0x0444, [2]uint64{0x0000b214403b1a64, 0x0}, 0x6a, 0x10},  // 437
	{11, 2, 2, 0, 0xc5f, 0x0035, [2]uint64{0x00000000a213b640, 0x0}, 0x6a, 0x18},  // 438
	{7, 2, 2, 0, 0xd56, 0x0043, [2]uint64{0x0000000008b64a21, 0x0}, 0x6b, 0x08},   // 439
	{7, 2, 2, 0, 0xb53, 0x0043, [2]uint64{0x0000000008b64910, 0x0}, 0x6d, 0x04},   // 440
	{7, 2, 2, 0, 0x2cf, 0x0043, [2]uint64{0x0000000006732910, 0x0}, 0x75, 0x10},   // 441
	{11, 3, 3, 0, 0xfcc, 0x0444, [2]uint64{0x000023897b299a67, 0x0}, 0x78, 0x01},  // 442
	{11, 3, 3, 0, 0xfcc, 0x0444, [2]uint64{0x00003b699a236789, 0x0}, 0x78, 0x08},  // 443
	{11, 2, 2, 0, 0xfcc, 0x0035, [2]uint64{0x000000007b6389a2, 0x0}, 0x78, 0x09},  // 444
	{7, 2, 2, 0, 0xec5, 0x0034, [2]uint64{0x0000000007b69a20, 0x0}, 0x79, 0x08},   // 445
	{9, 9, 1, 1, 0xdcf, 0x0009, [2]uint64{0x00000001a67b2380, 0x0}, 0x7a, 0x01},   // 446
	{9, 9, 1, 1, 0xdcf, 0x0009, [2]uint64{0x00000001a23b6780, 0x0}, 0x7a, 0x08},   // 447
	{9, 3, 3, 0, 0xdcf, 0x0344, [2]uint64{0x000007b6801aa238, 0x0}, 0x7a, 0x09},   // 448
	{9, 9, 1, 1, 0xdcf, 0x0009, [2]uint64{0x00000003b21a6780, 0x0}, 0x7a, 0x10},   // 449
	{9, 3, 3, 0, 0xdcf, 0x0443, [2]uint64{0x000001a677b21380, 0x0}, 0x7a, 0x11},   // 450
	{9, 3, 3, 0, 0xdcf, 0x0344, [2]uint64{0x00000a2103b66780, 0x0}, 0x7a, 0x18},   // 451
	{9, 3, 3, 0, 0xdcf, 0x0333, [2]uint64{0x00000007b6a21380, 0x0}, 0x7a, 0x19},   // 452
	{3, 2, 2, 0, 0xcc6, 0x0033, [2]uint64{0x00000000007b6a21, 0x0}, 0x7b, 0x08},   // 453
	{7, 2, 2, 0, 0xbca, 0x0034, [2]uint64{0x0000000007b63891, 0x0}, 0x7c, 0x01},   // 454
	{3, 2, 2, 0, 0x9c9, 0x0033, [2]uint64{0x00000000007b6380, 0x0}, 0x7e, 0x01},   // 455
	{3, 2, 2, 0, 0x9c9, 0x0044, [2]uint64{0x0000000008766b30, 0x0}, 0x81, 0x01},   // 456
	{7, 2, 2, 0, 0xbca, 0x0054, [2]uint64{0x0000000198766b31, 0x0}, 0x83, 0x01},   // 457
	{3, 2, 2, 0, 0xcc6, 0x0044, [2]uint64{0x0000000012b776a1, 0x0}, 0x84, 0x08},   // 458
	{9, 3, 3, 0, 0xdcf, 0x0344, [2]uint64{0x000002a108766b30, 0x0}, 0x85, 0x01},   // 459
	{9, 3, 3, 0, 0xdcf, 0x0443, [2]uint64{0x0000012b776a1830, 0x0}, 0x85, 0x08},   // 460
	{9, 9, 1, 1, 0xdcf, 0x0009, [2]uint64{0x0000000876a12b30, 0x0}, 0x85, 0x09},   // 461
	{9, 3, 3, 0, 0xdcf, 0x0344, [2]uint64{0x00000b76a108832a, 0x0}, 0x85, 0x10},   // 462
	{9, 9, 1, 1, 0xdcf, 0x0009, [2]uint64{0x0000000876b32a10, 0x0}, 0x85, 0x11},   // 463
	{9, 9, 1, 1, 0xdcf, 0x0009, [2]uint64{0x0000000832b76a10, 0x0}, 0x85, 0x18},   // 464
	{9, 2, 2, 0, 0xdcf, 0x0036, [2]uint64{0x0000000b32876a10, 0x0}, 0x85, 0x19},   // 465
	{7, 2, 2, 0, 0xec5, 0x0045, [2]uint64{0x000000002b776a90, 0x0}, 0x86, 0x08},   // 466
	{11, 3, 3, 0, 0xfcc, 0x0444, [2]uint64{0x000032a96b399876, 0x0}, 0x87, 0x01},  // 467
	{11, 3, 3, 0, 0xfcc, 0x0444, [2]uint64{0x000092b776a99832, 0x0}, 0x87, 0x08},  // 468
	{11, 2, 2, 0, 0xfcc, 0x0053, [2]uint64{0x00000000a9876b32, 0x0}, 0x87, 0x09},  // 469
	{7, 2, 2, 0, 0x2cf, 0x0054, [2]uint64{0x0000000903766219, 0x0}, 0x8a, 0x10},   // 470
	{7, 2, 2, 0, 0xb53, 0x0045, [2]uint64{0x0000000b8011946b, 0x0}, 0x92, 0x04},   // 471
	{7, 2, 2, 0, 0xd56, 0x0054, [2]uint64{0x000000012b8446a1, 0x0}, 0x94, 0x08},   // 472
	{11, 3, 3, 0, 0xc5f, 0x0444, [2]uint64{0x0000b30412b446a1, 0x0}, 0x95, 0x08},  // 473
	{11, 3, 3, 0, 0xc5f, 0x0444, [2]uint64{0x0000a10432a446b3, 0x0}, 0x95, 0x10},  // 474
	{11, 2, 2, 0, 0xc5f, 0x0035, [2]uint64{0x00000000b3246a10, 0x0}, 0x95, 0x18},  // 475
	{12, 8, 1, 1, 0xf55, 0x0008, [2]uint64{0x000000002a946b80, 0x0}, 0x96, 0x04},  // 476
	{12, 8, 1, 1, 0xf55, 0x0008, [2]uint64{0x000000002b846a90, 0x0}, 0x96, 0x08},  // 477
	{12, 2, 2, 0, 0xf55, 0x0044, [2]uint64{0x000000006a942b80, 0x0}, 0x96, 0x0c},  // 478
	{7, 2, 2, 0, 0xe5c, 0x0043, [2]uint64{0x0000000006a94b32, 0x0}, 0x97, 0x08},   // 479
	{11, 3, 3, 0, 0x35f, 0x0444, [2]uint64{0x0000680119466238, 0x0}, 0x9a, 0x04},  // 480
	{11, 3, 3, 0, 0x35f, 0x0444, [2]uint64{0x0000690338466219, 0x0}, 0x9a, 0x10},  // 481
	{11, 2, 2, 0, 0x35f, 0x0053, [2]uint64{0x0000000094621380, 0x0}, 0x9a, 0x14},  // 482
	{7, 2, 2, 0, 0x759, 0x0043, [2]uint64{0x0000000006a94380, 0x0}, 0x9e, 0x04},   // 483
	{3, 2, 2, 0, 0xaf0, 0x0044, [2]uint64{0x00000000b749956b, 0x0}, 0xa0, 0x20},   // 484
	{9, 3, 3, 0, 0xbf9, 0x0344, [2]uint64{0x0000095408766b30, 0x0}, 0xa1, 0x01},   // 485
	{9, 3, 3, 0, 0xbf9, 0x0344, [2]uint64{0x00000b7630955483, 0x0}, 0xa1, 0x04},   // 486
	{9, 9, 1, 1, 0xbf9, 0x0009, [2]uint64{0x0000000954876b30, 0x0}, 0xa1, 0x05},   // 487
	{9, 3, 3, 0, 0xbf9, 0x0443, [2]uint64{0x00000b749956b830, 0x0}, 0xa1, 0x20},   // 488
	{9, 9, 1, 1, 0xbf9, 0x0009, [2]uint64{0x0000000874956b30, 0x0}, 0xa1, 0x21},   // 489
	{9, 9, 1, 1, 0xbf9, 0x0009, [2]uint64{0x0000000956b74830, 0x0}, 0xa1, 0x24},   // 490
	{9, 2, 2, 0, 0xbf9, 0x0036, [2]uint64{0x0000000874956b30, 0x0}, 0xa1, 0x25},   // 491
	{7, 2, 2, 0, 0x8f3, 0x0054, [2]uint64{0x00000000156bb740, 0x0}, 0xa2, 0x20},   // 492
	{11, 3, 3, 0, 0x9fa, 0x0444, [2]uint64{0x0000876115486b31, 0x0}, 0xa3, 0x01},  // 493
	{11, 3, 3, 0, 0x9fa, 0x0444, [2]uint64{0x0000b741156b4831, 0x0}, 0xa3, 0x20},  // 494
	{11, 2, 2, 0, 0x9fa, 0x0035, [2]uint64{0x0000000087456b31, 0x0}, 0xa3, 0x21},  // 495
	{9, 3, 3, 0, 0xef6, 0x0344, [2]uint64{0x00000b7649122a54, 0x0}, 0xa4, 0x02},   // 496
	{9, 3, 3, 0, 0xef6, 0x0344, [2]uint64{0x0000095412b776a1, 0x0}, 0xa4, 0x08},   // 497
	{9, 9, 1, 1, 0xef6, 0x0009, [2]uint64{0x00000002b76a5491, 0x0}, 0xa4, 0x0a},   // 498
	{9, 3, 3, 0, 0xef6, 0x0443, [2]uint64{0x00000b749956b2a1, 0x0}, 0xa4, 0x20},   // 499
	{9, 9, 1, 1, 0xef6, 0x0009, [2]uint64{0x00000002a56b7491, 0x0}, 0xa4, 0x22},   // 500
	{9, 9, 1, 1, 0xef6, 0x0009, [2]uint64{0x00000002b74956a1, 0x0}, 0xa4, 0x28},   // 501
	{9, 2, 2, 0, 0xef6, 0x0036, [2]uint64{0x00000006a52b7491, 0x0}, 0xa4, 0x2a},   // 502
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x009542a108766b30, 0x0}, 0xa5, 0x01},  // 503
	{13, 4, 4, 0, 0xfff, 0x3443, [2]uint64{0x00b7649122a54830, 0x0}, 0xa5, 0x02},  // 504
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0x49122a5408766b30, 0x0}, 0xa5, 0x03},  // 505
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x00b762a130955483, 0x0}, 0xa5, 0x04},  // 506
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00002a1954876b30, 0x0}, 0xa5, 0x05}, // 507
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000b76912a54830, 0x0}, 0xa5, 0x06}, // 508
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x309769187122a548, 0x6b}, 0xa5, 0x07}, // 509
	{13, 4, 4, 0, 0xfff, 0x3443, [2]uint64{0x0095412b776a1830, 0x0}, 0xa5, 0x08},  // 510
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000954876a12b30, 0x0}, 0xa5, 0x09}, // 511
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x00002b76a5491830, 0x0}, 0xa5, 0x0a}, // 512
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x76a30a5b3544912b, 0x8}, 0xa5, 0x0b},  // 513
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0x12b776a130955483, 0x0}, 0xa5, 0x0c},  // 514
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x0952b541248876a1, 0xb3}, 0xa5, 0x0d}, // 515
	{13, 4, 4, 0, 0xfff, 0x4545, [2]uint64{0x09912b7306aa5483, 0x76}, 0xa5, 0x0e}, // 516
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0xa548876ab309912b, 0x0}, 0xa5, 0x0f},  // 517
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x00b76954a108832a, 0x0}, 0xa5, 0x10},  // 518
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000954876b32a10, 0x0}, 0xa5, 0x11}, // 519
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000b76832a54910, 0x0}, 0xa5, 0x12}, // 520
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x876916b49b332a54, 0x10}, 0xa5, 0x13}, // 521
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000b76954832a10, 0x0}, 0xa5, 0x14}, // 522
	{13, 12, 1, 1, 0xfff, 0x000c, [2]uint64{0x0000954876b32a10, 0x0}, 0xa5, 0x15}, // 523
	{13, 3, 3, 0, 0xfff, 0x0363, [2]uint64{0x0000b76a54832910, 0x0}, 0xa5, 0x16},  // 524
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x0000a54876b32910, 0x0}, 0xa5, 0x17}, // 525
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000954832b76a10, 0x0}, 0xa5, 0x18}, // 526
	{13, 3, 3, 0, 0xfff, 0x0336, [2]uint64{0x0000954b32876a10, 0x0}, 0xa5, 0x19},  // 527
	{13, 12, 1, 1, 0xfff, 0x000c, [2]uint64{0x0000832b76a54910, 0x0}, 0xa5, 0x1a}, // 528
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000b32876a54910, 0x0}, 0xa5, 0x1b}, // 529
	{13, 4, 4, 0, 0xfff, 0x4455, [2]uint64{0x092b955483276a10, 0xb7}, 0xa5, 0x1c}, // 530
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000b32954876a10, 0x0}, 0xa5, 0x1d}, // 531
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x0000b76a54832910, 0x0}, 0xa5, 0x1e}, // 532
	{13, 4, 4, 0, 0xfff, 0x4433, [2]uint64{0x00a548876ab32910, 0x0}, 0xa5, 0x1f},  // 533
	{13, 4, 4, 0, 0xfff, 0x4433, [2]uint64{0x00b749956b2a1830, 0x0}, 0xa5, 0x20},  // 534
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00002a1874956b30, 0x0}, 0xa5, 0x21}, // 535
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x00002a56b7491830, 0x0}, 0xa5, 0x22}, // 536
	{13, 4, 4, 0, 0xfff, 0x4455, [2]uint64{0x082a877491256b30, 0xa5}, 0xa5, 0x23}, // 537
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00002a1956b74830, 0x0}, 0xa5, 0x24}, // 538
	{13, 3, 3, 0, 0xfff, 0x0336, [2]uint64{0x00008742a1956b30, 0x0}, 0xa5, 0x25},  // 539
	{13, 12, 1, 1, 0xfff, 0x000c, [2]uint64{0x0000912a56b74830, 0x0}, 0xa5, 0x26}, // 540
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000874912a56b30, 0x0}, 0xa5, 0x27}, // 541
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x00002b74956a1830, 0x0}, 0xa5, 0x28}, // 542
	{13, 12, 1, 1, 0xfff, 0x000c, [2]uint64{0x0000874956a12b30, 0x0}, 0xa5, 0x29}, // 543
	{13, 3, 3, 0, 0xfff, 0x0363, [2]uint64{0x00006a52b7491830, 0x0}, 0xa5, 0x2a},  // 544
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00006a5874912b30, 0x0}, 0xa5, 0x2b}, // 545
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x956836a48a112b74, 0x30}, 0xa5, 0x2c}, // 546
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000874956a12b30, 0x0}, 0xa5, 0x2d}, // 547
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00006a5912b74830, 0x0}, 0xa5, 0x2e}, // 548
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x006a5874b309912b, 0x0}, 0xa5, 0x2f},  // 549
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0xb749956ba108832a, 0x0}, 0xa5, 0x30},  // 550
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x0872a743249956b3, 0xa1}, 0xa5, 0x31}, // 551
	{13, 4, 4, 0, 0xfff, 0x4545, [2]uint64{0x08832a5106bb7491, 0x56}, 0xa5, 0x32}, // 552
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0x32a556b310877491, 0x0}, 0xa5, 0x33},  // 553
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x56b10b7a1744832a, 0x9}, 0xa5, 0x34},  // 554
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000874956b32a10, 0x0}, 0xa5, 0x35}, // 555
	{13, 10, 2, 2, 0xfff, 0x0093, [2]uint64{0x0000a56b74832910, 0x0}, 0xa5, 0x36}, // 556
	{13, 4, 4, 0, 0xfff, 0x3443, [2]uint64{0x0087432a556b3910, 0x0}, 0xa5, 0x37},  // 557
	{13, 4, 4, 0, 0xfff, 0x5445, [2]uint64{0x108568395322b749, 0x6a}, 0xa5, 0x38}, // 558
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x0000b32874956a10, 0x0}, 0xa5, 0x39}, // 559
	{13, 10, 2, 1, 0xfff, 0x0039, [2]uint64{0x00006a5832b74910, 0x0}, 0xa5, 0x3a}, // 560
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x006a5b3210877491, 0x0}, 0xa5, 0x3b},  // 561
	{13, 4, 4, 0, 0xfff, 0x4444, [2]uint64{0x2b74483209566a10, 0x0}, 0xa5, 0x3c},  // 562
	{13, 4, 4, 0, 0xfff, 0x3344, [2]uint64{0x00874b3209566a10, 0x0}, 0xa5, 0x3d},  // 563
	{13, 4, 4, 0, 0xfff, 0x3443, [2]uint64{0x006a52b744832910, 0x0}, 0xa5, 0x3e},  // 564
	{13, 4, 4, 0, 0xfff, 0x3333, [2]uint64{0x00006a5874b32910, 0x0}, 0xa5, 0x3f},  // 565
	{11, 3, 3, 0, 0xcf5, 0x0444, [2]uint64{0x000076a002b7a540, 0x0}, 0xa6, 0x08},  // 566
	{11, 3, 3, 0, 0xcf5, 0x0444, [2]uint64{0x000056b002a5b740, 0x0}, 0xa6, 0x20},  // 567
	{11, 2, 2, 0, 0xcf5, 0x0035, [2]uint64{0x000000006a52b740, 0x0}, 0xa6, 0x28},  // 568
	{9, 9, 1, 1, 0xdfc, 0x0009, [2]uint64{0x0000000a54876b32, 0x0}, 0xa7, 0x01},   // 569
	{9, 9, 1, 1, 0xdfc, 0x0009, [2]uint64{0x0000000b76a54832, 0x0}, 0xa7, 0x08},   // 570
	{9, 3, 3, 0, 0xdfc, 0x0443, [2]uint64{0x00000a548876ab32, 0x0}, 0xa7, 0x09},   // 571
	{9, 9, 1, 1, 0xdfc, 0x0009, [2]uint64{0x0000000a56b74832, 0x0}, 0xa7, 0x20},   // 572
	{9, 3, 3, 0, 0xdfc, 0x0344, [2]uint64{0x0000087432a556b3, 0x0}, 0xa7, 0x21},   // 573
	{9, 3, 3, 0, 0xdfc, 0x0344, [2]uint64{0x000006a52b744832, 0x0}, 0xa7, 0x28},   // 574
	{9, 3, 3, 0, 0xdfc, 0x0333, [2]uint64{0x00000006a5874b32, 0x0}, 0xa7, 0x29},   // 575
	{7, 2, 2, 0, 0x2fc, 0x0054, [2]uint64{0x0000000237499562, 0x0}, 0xa8, 0x20},   // 576
	{11, 3, 3, 0, 0x3f5, 0x0444, [2]uint64{0x0000548220958762, 0x0}, 0xa9, 0x04},  // 577
	{11, 3, 3, 0, 0x3f5, 0x0444, [2]uint64{0x0000749220879562, 0x0}, 0xa9, 0x20},  // 578
	{11, 2, 2, 0, 0x3f5, 0x0035, [2]uint64{0x0000000087495620, 0x0}, 0xa9, 0x24},  // 579
	{12, 8, 1, 1, 0x0ff, 0x0008, [2]uint64{0x0000000037621540, 0x0}, 0xaa, 0x10},  // 580
	{12, 8, 1, 1, 0x0ff, 0x0008, [2]uint64{0x0000000015623740, 0x0}, 0xaa, 0x20},  // 581
	{12, 2, 2, 0, 0x0ff, 0x0044, [2]uint64{0x0000000056213740, 0x0}, 0xaa, 0x30},  // 582
	{7, 2, 2, 0, 0x1f6, 0x0034, [2]uint64{0x0000000008745621, 0x0}, 0xab, 0x20},   // 583
	{11, 3, 3, 0, 0x6fa, 0x0444, [2]uint64{0x00004913a543376a, 0x0}, 0xac, 0x02},  // 584
	{11, 3, 3, 0, 0x6fa, 0x0444, [2]uint64{0x00006a1395633749, 0x0}, 0xac, 0x20},  // 585
	{11, 2, 2, 0, 0x6fa, 0x0035, [2]uint64{0x000000006a537491, 0x0}, 0xac, 0x22},  // 586
	{9, 9, 1, 1, 0x7f3, 0x0009, [2]uint64{0x0000000876a54910, 0x0}, 0xad, 0x02},   // 587
	{9, 9, 1, 1, 0x7f3, 0x0009, [2]uint64{0x0000000954876a10, 0x0}, 0xad, 0x04},   // 588
	{9, 3, 3, 0, 0x7f3, 0x0443, [2]uint64{0x00000a548876a910, 0x0}, 0xad, 0x06},   // 589
	{9, 9, 1, 1, 0x7f3, 0x0009, [2]uint64{0x0000000874956a10, 0x0}, 0xad, 0x20},   // 590
	{9, 3, 3, 0, 0x7f3, 0x0344, [2]uint64{0x000006a510877491, 0x0}, 0xad, 0x22},   // 591
	{9, 3, 3, 0, 0x7f3, 0x0344, [2]uint64{0x0000087409566a10, 0x0}, 0xad, 0x24},   // 592
	{9, 3, 3, 0, 0x7f3, 0x0333, [2]uint64{0x00000006a5874910, 0x0}, 0xad, 0x26},   // 593
	{7, 2, 2, 0, 0x4f9, 0x0034, [2]uint64{0x0000000006a53740, 0x0}, 0xae, 0x20},   // 594
	{3, 2, 2, 0, 0x5f0, 0x0033, [2]uint64{0x00000000006a5874, 0x0}, 0xaf, 0x20},   // 595
	{11, 3, 3, 0, 0xf66, 0x0444, [2]uint64{0x00002a58891256b8, 0x0}, 0xb4, 0x02},  // 596
	{11, 3, 3, 0, 0xf66, 0x0444, [2]uint64{0x000012b86a188956, 0x0}, 0xb4, 0x08},  // 597
	{11, 2, 2, 0, 0xf66, 0x0035, [2]uint64{0x000000006a52b891, 0x0}, 0xb4, 0x0a},  // 598
	{9, 9, 1, 1, 0xe6f, 0x0009, [2]uint64{0x0000000912a56b30, 0x0}, 0xb5, 0x02},   // 599
	{9, 9, 1, 1, 0xe6f, 0x0009, [2]uint64{0x0000000956a12b30, 0x0}, 0xb5, 0x08},   // 600
	{9, 3, 3, 0, 0xe6f, 0x0344, [2]uint64{0x000006a5b309912b, 0x0}, 0xb5, 0x0a},   // 601
	{9, 9, 1, 1, 0xe6f, 0x0009, [2]uint64{0x0000000956b32a10, 0x0}, 0xb5, 0x10},   // 602
	{9, 3, 3, 0, 0xe6f, 0x0443, [2]uint64{0x0000032a556b3910, 0x0}, 0xb5, 0x12},   // 603
	{9, 3, 3, 0, 0xe6f, 0x0344, [2]uint64{0x00000b3209566a10, 0x0}, 0xb5, 0x18},   // 604
	{9, 3, 3, 0, 0xe6f, 0x0333, [2]uint64{0x00000006a5b32910, 0x0}, 0xb5, 0x1a},   // 605
	{7, 2, 2, 0, 0xd65, 0x0034, [2]uint64{0x0000000006a52b80, 0x0}, 0xb6, 0x08},   // 606
	{3, 2, 2, 0, 0xc6c, 0x0033, [2]uint64{0x00000000006a5b32, 0x0}, 0xb7, 0x08},   // 607
	{7, 2, 2, 0, 0x16f, 0x0043, [2]uint64{0x0000000005621380, 0x0}, 0xba, 0x10},   // 608
	{7, 2, 2, 0, 0x76a, 0x0034, [2]uint64{0x0000000006a53891, 0x0}, 0xbc, 0x02},   // 609
	{3, 2, 2, 0, 0x663, 0x0033, [2]uint64{0x00000000006a5910, 0x0}, 0xbd, 0x02},   // 610
	{7, 2, 2, 0, 0xda9, 0x0054, [2]uint64{0x00000000875aab30, 0x0}, 0xc1, 0x01},   // 611
	{7, 2, 2, 0, 0xea3, 0x0054, [2]uint64{0x000000001ab77590, 0x0}, 0xc2, 0x02},   // 612
	{12, 8, 1, 1, 0xfaa, 0x0008, [2]uint64{0x000000009875ab31, 0x0}, 0xc3, 0x01},  // 613
	{12, 8, 1, 1, 0xfaa, 0x0008, [2]uint64{0x00000000ab759831, 0x0}, 0xc3, 0x02},  // 614
	{12, 2, 2, 0, 0xfaa, 0x0044, [2]uint64{0x000000009875ab31, 0x0}, 0xc3, 0x03},  // 615
	{11, 3, 3, 0, 0x9af, 0x0444, [2]uint64{0x00000875b305512b, 0x0}, 0xc5, 0x01},  // 616
	{11, 3, 3, 0, 0x9af, 0x0444, [2]uint64{0x0000832551082b75, 0x0}, 0xc5, 0x10},  // 617
	{11, 2, 2, 0, 0x9af, 0x0035, [2]uint64{0x00000000b3287510, 0x0}, 0xc5, 0x11},  // 618
	{7, 2, 2, 0, 0xbac, 0x0043, [2]uint64{0x0000000009875b32, 0x0}, 0xc7, 0x01},   // 619
	{11, 3, 3, 0, 0x6af, 0x0444, [2]uint64{0x0000701aa2377590, 0x0}, 0xca, 0x02},  // 620
	{11, 3, 3, 0, 0x6af, 0x0444, [2]uint64{0x00009037219775a2, 0x0}, 0xca, 0x10},  // 621
	{11, 2, 2, 0, 0x6af, 0x0035, [2]uint64{0x00000000a2137590, 0x0}, 0xca, 0x12},  // 622
	{7, 2, 2, 0, 0x7a6, 0x0043, [2]uint64{0x0000000009875a21, 0x0}, 0xcb, 0x02},   // 623
	{11, 3, 3, 0, 0xf33, 0x0444, [2]uint64{0x000001ab590bb845, 0x0}, 0xd2, 0x02},  // 624
	{11, 3, 3, 0, 0xf33, 0x0444, [2]uint64{0x0000194bb80145ab, 0x0}, 0xd2, 0x04},  // 625
	{11, 2, 2, 0, 0xf33, 0x0035, [2]uint64{0x000000005941ab80, 0x0}, 0xd2, 0x06},  // 626
	{7, 2, 2, 0, 0xe3a, 0x0034, [2]uint64{0x000000000594ab31, 0x0}, 0xd3, 0x02},   // 627
	{7, 2, 2, 0, 0x83f, 0x0034, [2]uint64{0x000000000b324510, 0x0}, 0xd5, 0x10},   // 628
	{7, 2, 2, 0, 0xb35, 0x0034, [2]uint64{0x0000000005942b80, 0x0}, 0xd6, 0x04},   // 629
	{9, 9, 1, 1, 0x73f, 0x0009, [2]uint64{0x00000001a2384590, 0x0}, 0xda, 0x02},   // 630
	{9, 9, 1, 1, 0x73f, 0x0009, [2]uint64{0x00000001945a2380, 0x0}, 0xda, 0x04},   // 631
	{9, 3, 3, 0, 0x73f, 0x0344, [2]uint64{0x00000594801aa238, 0x0}, 0xda, 0x06},   // 632
	{9, 9, 1, 1, 0x73f, 0x0009, [2]uint64{0x00000003845a2190, 0x0}, 0xda, 0x10},   // 633
	{9, 3, 3, 0, 0x73f, 0x0344, [2]uint64{0x00000a2159033845, 0x0}, 0xda, 0x12},   // 634
	{9, 3, 3, 0, 0x73f, 0x0443, [2]uint64{0x00000219445a2380, 0x0}, 0xda, 0x14},   // 635
	{9, 3, 3, 0, 0x73f, 0x0333, [2]uint64{0x0000000594a21380, 0x0}, 0xda, 0x16},   // 636
	{3, 2, 2, 0, 0x636, 0x0033, [2]uint64{0x0000000000594a21, 0x0}, 0xdb, 0x02},   // 637
	{3, 2, 2, 0, 0x339, 0x0033, [2]uint64{0x0000000000594380, 0x0}, 0xde, 0x04},   // 638
	{11, 3, 3, 0, 0xf99, 0x0444, [2]uint64{0x0000a087749aab30, 0x0}, 0xe1, 0x01},  // 639
	{11, 3, 3, 0, 0xf99, 0x0444, [2]uint64{0x0000309a483aab74, 0x0}, 0xe1, 0x04},  // 640
	{11, 2, 2, 0, 0xf99, 0x0035, [2]uint64{0x000000008749ab30, 0x0}, 0xe1, 0x05},  // 641
	{7, 2, 2, 0, 0xd9a, 0x0034, [2]uint64{0x000000000874ab31, 0x0}, 0xe3, 0x01},   // 642
	{9, 9, 1, 1, 0xb9f, 0x0009, [2]uint64{0x0000000874912b30, 0x0}, 0xe5, 0x01},   // 643
	{9, 9, 1, 1, 0xb9f, 0x0009, [2]uint64{0x0000000912b74830, 0x0}, 0xe5, 0x04},   // 644
	{9, 3, 3, 0, 0xb9f, 0x0344, [2]uint64{0x00000874b309912b, 0x0}, 0xe5, 0x05},   // 645
	{9, 9, 1, 1, 0xb9f, 0x0009, [2]uint64{0x0000000832b74910, 0x0}, 0xe5, 0x10},   // 646
	{9, 3, 3, 0, 0xb9f, 0x0344, [2]uint64{0x00000b3210877491, 0x0}, 0xe5, 0x11},   // 647
	{9, 3, 3, 0, 0xb9f, 0x0443, [2]uint64{0x000002b744832910, 0x0}, 0xe5, 0x14},   // 648
	{9, 3, 3, 0, 0xb9f, 0x0333, [2]uint64{0x0000000874b32910, 0x0}, 0xe5, 0x15},   // 649
	{3, 2, 2, 0, 0x99c, 0x0033, [2]uint64{0x0000000000874b32, 0x0}, 0xe7, 0x01},   // 650
	{7, 2, 2, 0, 0x795, 0x0034, [2]uint64{0x0000000008749a20, 0x0}, 0xe9, 0x04},   // 651
	{7, 2, 2, 0, 0x49f, 0x0034, [2]uint64{0x000000000a213740, 0x0}, 0xea, 0x10},   // 652
	{3, 2, 2, 0, 0x393, 0x0033, [2]uint64{0x0000000000874910, 0x0}, 0xed, 0x04},   // 653
	{3, 2, 2, 0, 0xa0f, 0x0033, [2]uint64{0x0000000000b32910, 0x0}, 0xf5, 0x10},   // 654
	{3, 2, 2, 0, 0x50f, 0x0033, [2]uint64{0x0000000000a21380, 0x0}, 0xfa, 0x10},   // 655
}

// Ambiguities is indexed by base classification code.
//
// Columns: NFaces, Faces, Base.
var Ambiguities = [NumBase]Ambiguity{
	{0, 0x00000, 0}, // 0x00
	{0, 0x00000, 0}, // 0x01
	{0, 0x00000, 0}, // 0x02
	{0, 0x00000, 0}, // 0x03
	{0, 0x00000, 0}, // 0x04
	{1, 0x00004, 256}, // 0x05
	{0, 0x00000, 0}, // 0x06
	{0, 0x00000, 0}, // 0x07
	{0, 0x00000, 0}, // 0x08
	{0, 0x00000, 0}, // 0x09
	{1, 0x00004, 257}, // 0x0a
	{0, 0x00000, 0}, // 0x0b
	{0, 0x00000, 0}, // 0x0c
	{0, 0x00000, 0}, // 0x0d
	{0, 0x00000, 0}, // 0x0e
	{0, 0x00000, 0}, // 0x0f
	{0, 0x00000, 0}, // 0x10
	{0, 0x00000, 0}, // 0x11
	{1, 0x00002, 258}, // 0x12
	{0, 0x00000, 0}, // 0x13
	{0, 0x00000, 0}, // 0x14
	{1, 0x00004, 259}, // 0x15
	{1, 0x00002, 260}, // 0x16
	{0, 0x00000, 0}, // 0x17
	{1, 0x00000, 261}, // 0x18
	{0, 0x00000, 0}, // 0x19
	{3, 0x00110, 262}, // 0x1a
	{0, 0x00000, 0}, // 0x1b
	{1, 0x00000, 269}, // 0x1c
	{0, 0x00000, 0}, // 0x1d
	{2, 0x00010, 270}, // 0x1e
	{0, 0x00000, 0}, // 0x1f
	{0, 0x00000, 0}, // 0x20
	{1, 0x00002, 273}, // 0x21
	{0, 0x00000, 0}, // 0x22
	{0, 0x00000, 0}, // 0x23
	{1, 0x00001, 274}, // 0x24
	{3, 0x00111, 275}, // 0x25
	{0, 0x00000, 0}, // 0x26
	{0, 0x00000, 0}, // 0x27
	{0, 0x00000, 0}, // 0x28
	{1, 0x00002, 282}, // 0x29
	{1, 0x00004, 283}, // 0x2a
	{0, 0x00000, 0}, // 0x2b
	{1, 0x00001, 284}, // 0x2c
	{2, 0x00011, 285}, // 0x2d
	{0, 0x00000, 0}, // 0x2e
	{0, 0x00000, 0}, // 0x2f
	{0, 0x00000, 0}, // 0x30
	{0, 0x00000, 0}, // 0x31
	{0, 0x00000, 0}, // 0x32
	{0, 0x00000, 0}, // 0x33
	{1, 0x00001, 288}, // 0x34
	{2, 0x00021, 289}, // 0x35
	{0, 0x00000, 0}, // 0x36
	{0, 0x00000, 0}, // 0x37
	{1, 0x00000, 292}, // 0x38
	{0, 0x00000, 0}, // 0x39
	{2, 0x00020, 293}, // 0x3a
	{0, 0x00000, 0}, // 0x3b
	{2, 0x00008, 296}, // 0x3c
	{1, 0x00001, 299}, // 0x3d
	{1, 0x00000, 300}, // 0x3e
	{0, 0x00000, 0}, // 0x3f
	{0, 0x00000, 0}, // 0x40
	{0, 0x00000, 0}, // 0x41
	{1, 0x00001, 301}, // 0x42
	{1, 0x00001, 302}, // 0x43
	{0, 0x00000, 0}, // 0x44
	{1, 0x00004, 303}, // 0x45
	{0, 0x00000, 0}, // 0x46
	{0, 0x00000, 0}, // 0x47
	{1, 0x00003, 304}, // 0x48
	{1, 0x00003, 305}, // 0x49
	{3, 0x00119, 306}, // 0x4a
	{2, 0x00019, 313}, // 0x4b
	{0, 0x00000, 0}, // 0x4c
	{0, 0x00000, 0}, // 0x4d
	{0, 0x00000, 0}, // 0x4e
	{0, 0x00000, 0}, // 0x4f
	{1, 0x00005, 316}, // 0x50
	{1, 0x00005, 317}, // 0x51
	{3, 0x00151, 318}, // 0x52
	{2, 0x00029, 325}, // 0x53
	{1, 0x00005, 328}, // 0x54
	{2, 0x0002c, 329}, // 0x55
	{2, 0x0002a, 332}, // 0x56
	{1, 0x00005, 335}, // 0x57
	{3, 0x00158, 336}, // 0x58
	{2, 0x0002b, 343}, // 0x59
	{6, 0x2c688, 346}, // 0x5a
	{3, 0x00159, 409}, // 0x5b
	{2, 0x00028, 416}, // 0x5c
	{1, 0x00005, 419}, // 0x5d
	{3, 0x00150, 420}, // 0x5e
	{1, 0x00005, 427}, // 0x5f
	{0, 0x00000, 0}, // 0x60
	{1, 0x00002, 428}, // 0x61
	{0, 0x00000, 0}, // 0x62
	{0, 0x00000, 0}, // 0x63
	{0, 0x00000, 0}, // 0x64
	{2, 0x00022, 429}, // 0x65
	{0, 0x00000, 0}, // 0x66
	{0, 0x00000, 0}, // 0x67
	{1, 0x00003, 432}, // 0x68
	{2, 0x0001a, 433}, // 0x69
	{2, 0x00023, 436}, // 0x6a
	{1, 0x00003, 439}, // 0x6b
	{0, 0x00000, 0}, // 0x6c
	{1, 0x00002, 440}, // 0x6d
	{0, 0x00000, 0}, // 0x6e
	{0, 0x00000, 0}, // 0x6f
	{0, 0x00000, 0}, // 0x70
	{0, 0x00000, 0}, // 0x71
	{0, 0x00000, 0}, // 0x72
	{0, 0x00000, 0}, // 0x73
	{0, 0x00000, 0}, // 0x74
	{1, 0x00004, 441}, // 0x75
	{0, 0x00000, 0}, // 0x76
	{0, 0x00000, 0}, // 0x77
	{2, 0x00018, 442}, // 0x78
	{1, 0x00003, 445}, // 0x79
	{3, 0x00118, 446}, // 0x7a
	{1, 0x00003, 453}, // 0x7b
	{1, 0x00000, 454}, // 0x7c
	{0, 0x00000, 0}, // 0x7d
	{1, 0x00000, 455}, // 0x7e
	{0, 0x00000, 0}, // 0x7f
	{0, 0x00000, 0}, // 0x80
	{1, 0x00000, 456}, // 0x81
	{0, 0x00000, 0}, // 0x82
	{1, 0x00000, 457}, // 0x83
	{1, 0x00003, 458}, // 0x84
	{3, 0x00118, 459}, // 0x85
	{1, 0x00003, 466}, // 0x86
	{2, 0x00018, 467}, // 0x87
	{0, 0x00000, 0}, // 0x88
	{0, 0x00000, 0}, // 0x89
	{1, 0x00004, 470}, // 0x8a
	{0, 0x00000, 0}, // 0x8b
	{0, 0x00000, 0}, // 0x8c
	{0, 0x00000, 0}, // 0x8d
	{0, 0x00000, 0}, // 0x8e
	{0, 0x00000, 0}, // 0x8f
	{0, 0x00000, 0}, // 0x90
	{0, 0x00000, 0}, // 0x91
	{1, 0x00002, 471}, // 0x92
	{0, 0x00000, 0}, // 0x93
	{1, 0x00003, 472}, // 0x94
	{2, 0x00023, 473}, // 0x95
	{2, 0x0001a, 476}, // 0x96
	{1, 0x00003, 479}, // 0x97
	{0, 0x00000, 0}, // 0x98
	{0, 0x00000, 0}, // 0x99
	{2, 0x00022, 480}, // 0x9a
	{0, 0x00000, 0}, // 0x9b
	{0, 0x00000, 0}, // 0x9c
	{0, 0x00000, 0}, // 0x9d
	{1, 0x00002, 483}, // 0x9e
	{0, 0x00000, 0}, // 0x9f
	{1, 0x00005, 484}, // 0xa0
	{3, 0x00150, 485}, // 0xa1
	{1, 0x00005, 492}, // 0xa2
	{2, 0x00028, 493}, // 0xa3
	{3, 0x00159, 496}, // 0xa4
	{6, 0x2c688, 503}, // 0xa5
	{2, 0x0002b, 566}, // 0xa6
	{3, 0x00158, 569}, // 0xa7
	{1, 0x00005, 576}, // 0xa8
	{2, 0x0002a, 577}, // 0xa9
	{2, 0x0002c, 580}, // 0xaa
	{1, 0x00005, 583}, // 0xab
	{2, 0x00029, 584}, // 0xac
	{3, 0x00151, 587}, // 0xad
	{1, 0x00005, 594}, // 0xae
	{1, 0x00005, 595}, // 0xaf
	{0, 0x00000, 0}, // 0xb0
	{0, 0x00000, 0}, // 0xb1
	{0, 0x00000, 0}, // 0xb2
	{0, 0x00000, 0}, // 0xb3
	{2, 0x00019, 596}, // 0xb4
	{3, 0x00119, 599}, // 0xb5
	{1, 0x00003, 606}, // 0xb6
	{1, 0x00003, 607}, // 0xb7
	{0, 0x00000, 0}, // 0xb8
	{0, 0x00000, 0}, // 0xb9
	{1, 0x00004, 608}, // 0xba
	{0, 0x00000, 0}, // 0xbb
	{1, 0x00001, 609}, // 0xbc
	{1, 0x00001, 610}, // 0xbd
	{0, 0x00000, 0}, // 0xbe
	{0, 0x00000, 0}, // 0xbf
	{0, 0x00000, 0}, // 0xc0
	{1, 0x00000, 611}, // 0xc1
	{1, 0x00001, 612}, // 0xc2
	{2, 0x00008, 613}, // 0xc3
	{0, 0x00000, 0}, // 0xc4
	{2, 0x00020, 616}, // 0xc5
	{0, 0x00000, 0}, // 0xc6
	{1, 0x00000, 619}, // 0xc7
	{0, 0x00000, 0}, // 0xc8
	{0, 0x00000, 0}, // 0xc9
	{2, 0x00021, 620}, // 0xca
	{1, 0x00001, 623}, // 0xcb
	{0, 0x00000, 0}, // 0xcc
	{0, 0x00000, 0}, // 0xcd
	{0, 0x00000, 0}, // 0xce
	{0, 0x00000, 0}, // 0xcf
	{0, 0x00000, 0}, // 0xd0
	{0, 0x00000, 0}, // 0xd1
	{2, 0x00011, 624}, // 0xd2
	{1, 0x00001, 627}, // 0xd3
	{0, 0x00000, 0}, // 0xd4
	{1, 0x00004, 628}, // 0xd5
	{1, 0x00002, 629}, // 0xd6
	{0, 0x00000, 0}, // 0xd7
	{0, 0x00000, 0}, // 0xd8
	{0, 0x00000, 0}, // 0xd9
	{3, 0x00111, 630}, // 0xda
	{1, 0x00001, 637}, // 0xdb
	{0, 0x00000, 0}, // 0xdc
	{0, 0x00000, 0}, // 0xdd
	{1, 0x00002, 638}, // 0xde
	{0, 0x00000, 0}, // 0xdf
	{0, 0x00000, 0}, // 0xe0
	{2, 0x00010, 639}, // 0xe1
	{0, 0x00000, 0}, // 0xe2
	{1, 0x00000, 642}, // 0xe3
	{0, 0x00000, 0}, // 0xe4
	{3, 0x00110, 643}, // 0xe5
	{0, 0x00000, 0}, // 0xe6
	{1, 0x00000, 650}, // 0xe7
	{0, 0x00000, 0}, // 0xe8
	{1, 0x00002, 651}, // 0xe9
	{1, 0x00004, 652}, // 0xea
	{0, 0x00000, 0}, // 0xeb
	{0, 0x00000, 0}, // 0xec
	{1, 0x00002, 653}, // 0xed
	{0, 0x00000, 0}, // 0xee
	{0, 0x00000, 0}, // 0xef
	{0, 0x00000, 0}, // 0xf0
	{0, 0x00000, 0}, // 0xf1
	{0, 0x00000, 0}, // 0xf2
	{0, 0x00000, 0}, // 0xf3
	{0, 0x00000, 0}, // 0xf4
	{1, 0x00004, 654}, // 0xf5
	{0, 0x00000, 0}, // 0xf6
	{0, 0x00000, 0}, // 0xf7
	{0, 0x00000, 0}, // 0xf8
	{0, 0x00000, 0}, // 0xf9
	{1, 0x00004, 655}, // 0xfa
	{0, 0x00000, 0}, // 0xfb
	{0, 0x00000, 0}, // 0xfc
	{0, 0x00000, 0}, // 0xfd
	{0, 0x00000, 0}, // 0xfe
	{0, 0x00000, 0}, // 0xff
}
