package pdftext

import "unicode"

// PDFDocEncoding (PDF 32000-1:2008, Annex D) is close to Latin-1: the
// printable ASCII range and 0xA1..0xFF map to themselves, typographic
// characters occupy 0x80..0x9E, and 0x18..0x1F hold spacing accents.
// pdfDocExtra lists only the non-identity code points; zero means the
// code point is not covered here.
var pdfDocExtra = [256]rune{
	0x18: '˘', // breve
	0x19: 'ˇ', // caron
	0x1a: 'ˆ', // circumflex
	0x1b: '˙', // dot above
	0x1c: '˝', // double acute
	0x1d: '˛', // ogonek
	0x1e: '˚', // ring above
	0x1f: '˜', // tilde
	0x80: '•', // bullet
	0x81: '†', // dagger
	0x82: '‡', // double dagger
	0x83: '…', // ellipsis
	0x84: '—', // em dash
	0x85: '–', // en dash
	0x86: 'ƒ', // florin
	0x87: '⁄', // fraction slash
	0x88: '‹', // left angle quote
	0x89: '›', // right angle quote
	0x8a: '−', // minus
	0x8b: '‰', // per mille
	0x8c: '„', // low double quote
	0x8d: '“', // left double quote
	0x8e: '”', // right double quote
	0x8f: '‘', // left single quote
	0x90: '’', // right single quote
	0x91: '‚', // low single quote
	0x92: '™', // trademark
	0x93: 'ﬁ', // fi ligature
	0x94: 'ﬂ', // fl ligature
	0x95: 'Ł', // Lslash
	0x96: 'Œ', // OE
	0x97: 'Š', // Scaron
	0x98: 'Ÿ', // Ydieresis
	0x99: 'Ž', // Zcaron
	0x9a: 'ı', // dotless i
	0x9b: 'ł', // lslash
	0x9c: 'œ', // oe
	0x9d: 'š', // scaron
	0x9e: 'ž', // zcaron
	0xa0: '€', // euro
}

var pdfDocByte = make(map[rune]byte, 48)

func init() {
	for c, r := range pdfDocExtra {
		if r != 0 {
			pdfDocByte[r] = byte(c)
		}
	}
}

// decodePDFDocByte maps a single PDFDocEncoding code point to a rune.
// Undefined code points (0x00..0x17 except tab/LF/CR, 0x7F, 0x9F, 0xAD)
// decode to unicode.ReplacementChar.
func decodePDFDocByte(c byte) rune {
	switch {
	case c == '\t' || c == '\n' || c == '\r':
		return rune(c)
	case c >= 0x20 && c <= 0x7e:
		return rune(c)
	case c >= 0xa1 && c != 0xad:
		return rune(c)
	}
	if r := pdfDocExtra[c]; r != 0 {
		return r
	}
	return unicode.ReplacementChar
}

// encodePDFDocByte returns the PDFDocEncoding code point for r, or false
// if r has none.
func encodePDFDocByte(r rune) (byte, bool) {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return byte(r), true
	case r >= 0x20 && r <= 0x7e:
		return byte(r), true
	case r >= 0xa1 && r <= 0xff && r != 0xad:
		return byte(r), true
	}
	c, ok := pdfDocByte[r]
	return c, ok
}
