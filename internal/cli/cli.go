// Package cli implements the pdfmeta command line.
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/log"

	"pdfmeta"
)

const usage = `usage: pdfmeta [-verbose] <command> [arguments]

commands:
  list   <file>                          print all metadata entries
  get    <file> <key>                    print the value stored under key
  set    [-o <out>] <file> <key> <value> set key to value, in place unless -o is given
  del    <file> <key>                    delete the entry for key
  rename <file> <old> <new>              move the entry for old to new
`

// Execute runs the command line given by args (without the program name)
// and returns the process exit code.
func Execute(args []string) int {
	fs := flag.NewFlagSet("pdfmeta", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "enable document store logging")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *verbose {
		log.SetDefaultLoggers()
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	var err error
	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "list":
		err = list(cmdArgs)
	case "get":
		err = get(cmdArgs)
	case "set":
		err = set(cmdArgs)
	case "del":
		err = del(cmdArgs)
	case "rename":
		err = renameKey(cmdArgs)
	default:
		fmt.Println("error: unknown command:", cmd)
		return 2
	}
	if err != nil {
		fmt.Println("error:", err)
		return 1
	}
	return 0
}

func list(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: pdfmeta list <file>")
	}
	entries, err := pdfmeta.Get(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no metadata entries")
		return nil
	}
	for _, e := range entries {
		mark := ""
		if e.Lossy {
			mark = " [lossy]"
		}
		fmt.Printf("%s: %s%s\n", e.Key, e.Value, mark)
	}
	return nil
}

func get(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: pdfmeta get <file> <key>")
	}
	entries, err := pdfmeta.Get(args[0])
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Key == args[1] {
			fmt.Println(e.Value)
			return nil
		}
	}
	return pdfmeta.ErrKeyNotFound
}

func set(args []string) error {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	out := fs.String("o", "", "write the result to `file` instead of updating in place")
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) != 3 {
		return errors.New("usage: pdfmeta set [-o <out>] <file> <key> <value>")
	}
	if *out != "" {
		return pdfmeta.Set(rest[0], *out, rest[1], rest[2])
	}
	return pdfmeta.UpdateInPlace(rest[0], rest[1], rest[2])
}

func del(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: pdfmeta del <file> <key>")
	}
	return pdfmeta.Remove(args[0], args[1])
}

func renameKey(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: pdfmeta rename <file> <old> <new>")
	}
	return pdfmeta.Rename(args[0], args[1], args[2])
}
