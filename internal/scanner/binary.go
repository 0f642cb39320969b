package scanner

// IsBinary classifies a buffer the same way git's own heuristic does: any
// NUL byte is binary, otherwise a buffer is binary when more than 30% of
// its bytes fall outside the text set. Empty buffers are text.
func IsBinary(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	nontext := 0
	for _, b := range buf {
		if b == 0 {
			return true
		}
		if !isTextByte(b) {
			nontext++
		}
	}
	return float64(nontext)/float64(len(buf)) > 0.30
}

// Text bytes are BEL, BS, TAB, LF, FF, CR, ESC and everything >= 0x20.
func isTextByte(b byte) bool {
	switch b {
	case 7, 8, 9, 10, 12, 13, 27:
		return true
	}
	return b >= 0x20
}
