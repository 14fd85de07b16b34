// Command inspect dumps how a PDF stores its document metadata: the
// trailer's Info reference and, for every Info entry, the raw object
// type next to its decoded text. Useful when a file's metadata reads
// back unexpectedly.
package main

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pdfmeta/pdftext"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("usage: inspect <file>")
		os.Exit(1)
	}
	fname := os.Args[1]
	ctx, err := api.ReadContextFile(fname)
	if err != nil {
		fmt.Printf("read context %s: %v\n", fname, err)
		os.Exit(1)
	}

	fmt.Printf("Pages: %d\n", ctx.PageCount)
	if ctx.Info == nil {
		fmt.Printf("Info: <nil>\n")
		return
	}
	fmt.Printf("Info: %d %d R\n", ctx.Info.ObjectNumber, ctx.Info.GenerationNumber)

	d, err := ctx.DereferenceDict(*ctx.Info)
	if err != nil {
		fmt.Printf("Info: could not deref dict: %v\n", err)
		os.Exit(1)
	}
	if d == nil {
		fmt.Printf("Info: dangling reference\n")
		return
	}

	for k, v := range d {
		fmt.Printf("\n--- %s ---\n", k)
		fmt.Printf("raw: %T %v\n", v, v)
		obj, err := ctx.Dereference(v)
		if err != nil {
			fmt.Printf("deref: error: %v\n", err)
			continue
		}
		text, lossy := pdftext.Decode(obj)
		fmt.Printf("text: %q lossy=%v\n", text, lossy)
	}
}
