package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	schemanorm "github.com/reoring/schemanorm"
)

func main() {
	fs := flag.NewFlagSet("schemanorm", flag.ExitOnError)
	var (
		yamlIn  bool
		verbose bool
		defsKey string
		defKey  string
	)
	fs.BoolVar(&yamlIn, "yaml", false, "treat input as YAML (default: JSON, or by .yaml/.yml extension)")
	fs.BoolVar(&verbose, "v", false, "print rewrite notes to stderr")
	fs.StringVar(&defsKey, "defs-key", schemanorm.DefaultDefsKey, "generator-specific definitions container key")
	fs.StringVar(&defKey, "definitions-key", schemanorm.DefaultDefinitionsKey, "stable definitions container key")
	fs.Usage = usage(fs)
	_ = fs.Parse(os.Args[1:])

	path := fs.Arg(0)
	data, err := readInput(path)
	if err != nil {
		fatalf("read: %v", err)
	}

	var doc map[string]any
	if yamlIn || strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		doc, err = schemanorm.FromYAML(data)
	} else {
		doc, err = schemanorm.FromJSON(data)
	}
	if err != nil {
		fatalf("decode: %v", err)
	}

	diag := schemanorm.Normalize(doc, schemanorm.Options{DefsKey: defsKey, DefinitionsKey: defKey})
	if verbose {
		for _, n := range diag.Notes() {
			fmt.Fprintln(os.Stderr, "note:", n)
		}
	}

	out, err := schemanorm.ToJSONIndent(doc)
	if err != nil {
		fatalf("encode: %v", err)
	}
	fmt.Println(string(out))
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(os.Stderr, "schemanorm CLI\n\nUsage:\n  schemanorm [flags] [schema.json|schema.yaml|-]\n\nReads a JSON Schema document, rewrites it to the legacy layout, and prints\ncanonical JSON. With no file (or -), reads stdin.")
		fs.PrintDefaults()
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, "schemanorm: "+f+"\n", a...)
	os.Exit(1)
}
