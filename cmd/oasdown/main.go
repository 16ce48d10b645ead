// Command oasdown converts an OpenAPI 3.1.0 document to 3.0.2.
//
// Usage:
//
//	oasdown -s api-3.1.json -d api-3.0.json
//
// Source and destination may be JSON or YAML; the output format follows the
// destination extension.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/calumari/oasdown"
)

func main() {
	fs := flag.NewFlagSet("oasdown", flag.ContinueOnError)
	var src, dest string
	fs.StringVar(&src, "s", "", "path to the OpenAPI 3.1.0 document")
	fs.StringVar(&src, "source", "", "path to the OpenAPI 3.1.0 document")
	fs.StringVar(&dest, "d", "", "path to write the converted 3.0.2 document")
	fs.StringVar(&dest, "dest", "", "path to write the converted 3.0.2 document")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: oasdown -s <source> -d <dest>\n\nConvert an OpenAPI 3.1.0 document to 3.0.2.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(2)
	}
	if src == "" || dest == "" {
		fs.Usage()
		os.Exit(2)
	}

	if err := run(src, dest); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

// run loads, converts, and writes one document. All pipeline failures
// surface here; the converter itself holds no external resources to release.
func run(src, dest string) error {
	doc, err := oasdown.Load(src)
	if err != nil {
		return err
	}
	slog.Info("loaded OpenAPI document", "source", src)

	converted, err := oasdown.Convert(doc)
	if err != nil {
		return err
	}

	if err := oasdown.Write(converted, dest); err != nil {
		return err
	}
	slog.Info("converted document written", "dest", dest, "version", oasdown.TargetVersion)
	return nil
}
