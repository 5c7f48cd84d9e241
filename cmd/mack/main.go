// Command mack converts a markdown document into a Slack Block Kit message
// and prints the resulting JSON envelope.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/instantish/mack"
	"github.com/instantish/mack/internal/logging/gologger"
)

const (
	readFailedCode   = "MARKDOWN_READ_FAILED"
	encodeFailedCode = "BLOCKS_ENCODE_FAILED"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("mack: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mack", flag.ExitOnError)
	filePath := fs.String("file", "", "Markdown file to convert (reads stdin when empty)")
	extensions := fs.String("extensions", "", "Comma separated goldmark extensions (defaults to gfm,linkify,tasklist)")
	pretty := fs.Bool("pretty", false, "Indent the emitted JSON")
	logLevel := fs.String("log-level", "info", "Log level (trace|debug|info|warn|error|fatal)")
	logFormat := fs.String("log-format", "console", "Log output format (json|console|pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  *logLevel,
		Format: *logFormat,
	})
	if err != nil {
		return err
	}

	source, err := readSource(*filePath)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "read markdown source").
			WithTextCode(readFailedCode)
	}

	blocks, err := mack.Convert(source, mack.Config{
		Parser: mack.ParserConfig{Extensions: splitExtensions(*extensions)},
		Logger: provider,
	})
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	if *pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(mack.NewMessage(blocks)); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "encode block message").
			WithTextCode(encodeFailedCode)
	}

	return nil
}

func readSource(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func splitExtensions(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
