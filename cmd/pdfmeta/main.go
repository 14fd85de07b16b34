package main

import (
	"os"

	"pdfmeta/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
