package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	kindval "github.com/kindval/kindval"
	"github.com/kindval/kindval/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "kindval CLI\n\nUsage:\n  kindval validate -schema schema.{json,yaml} document.json\n\nExits 0 when the document is valid, 1 when it is not, 2 on usage or schema errors.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema document (.json, .yaml or .yml)")
	_ = fs.Parse(args)
	if schemaPath == "" || fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		fatalf("reading schema: %v", err)
	}
	var sch *schema.Schema
	switch filepath.Ext(schemaPath) {
	case ".yaml", ".yml":
		sch, err = schema.CompileYAML(raw)
	default:
		sch, err = schema.CompileJSON(raw)
	}
	if err != nil {
		fatalf("compiling schema: %v", err)
	}

	doc, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatalf("reading document: %v", err)
	}
	if err := sch.ValidateJSON(doc); err != nil {
		iss, ok := kindval.AsIssues(err)
		if !ok {
			fatalf("validate: %v", err)
		}
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "%s at %s: %s\n", it.Code, it.Path, it.Message)
		}
		os.Exit(1)
	}
	fmt.Println("ok")
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}
