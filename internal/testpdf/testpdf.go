// Package testpdf builds tiny single-page PDF documents for tests.
package testpdf

import (
	"bytes"
	"fmt"
)

// Minimal returns a one-page document with a hand-built cross reference
// table. When info is non-empty it becomes the body of object 4, wired
// up as the trailer's Info entry; typically it is a dictionary such as
// "<< /Author (Jane) >>". Offsets are computed, so the result parses
// like the output of a real producer.
func Minimal(info string) []byte {
	var buf bytes.Buffer
	var offsets []int
	obj := func(nr int, body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", nr, body)
	}

	buf.WriteString("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")
	obj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	obj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	obj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	if info != "" {
		obj(4, info)
	}

	xref := buf.Len()
	size := len(offsets) + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R", size)
	if info != "" {
		buf.WriteString(" /Info 4 0 R")
	}
	buf.WriteString(" >>\n")
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xref)
	return buf.Bytes()
}
