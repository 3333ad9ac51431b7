// Command schema writes the JSON schema of the vcaggregate config file, or checks that a written one is current.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/vcaggregate/pkg/config"
)

type opts struct {
	Output string `short:"o" long:"output" default:"pkg/config/schema.json" description:"schema file to write or check"`
	Check  bool   `long:"check" description:"fail if the schema file differs from the config instead of writing it"`
}

var errStale = errors.New("schema file is out of date, regenerate it")

func main() {
	var o opts
	if _, err := flags.Parse(&o); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	lgr.Setup(lgr.LevelBraces)
	lgr.SetupStdLogger(lgr.LevelBraces)

	if err := run(o); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func run(o opts) error {
	data, err := render()
	if err != nil {
		return err
	}

	if o.Check {
		current, err := os.ReadFile(o.Output)
		if err != nil {
			return fmt.Errorf("read schema file: %w", err)
		}
		if !bytes.Equal(bytes.TrimSpace(current), bytes.TrimSpace(data)) {
			return fmt.Errorf("%s: %w", o.Output, errStale)
		}
		log.Printf("[INFO] schema %s is up to date", o.Output)
		return nil
	}

	if err := os.WriteFile(o.Output, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write schema file: %w", err)
	}
	log.Printf("[INFO] schema written to %s", o.Output)
	return nil
}

// render returns the indented config schema with a trailing newline
func render() ([]byte, error) {
	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
