// Command disdump decodes a file of concatenated DIS PDUs and logs a
// one-line summary of each.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mellowdrifter/godis/dis"
	"github.com/mellowdrifter/godis/internal/config"
	"github.com/mellowdrifter/godis/internal/logging"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "disdump",
		Usage: "decode a stream of concatenated DIS PDUs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "path to a PDU file, or - for stdin"},
			&cli.BoolFlag{Name: "strict", Usage: "reject protocol-family mismatches and unread trailing body bytes"},
			&cli.BoolFlag{Name: "reject-unknown-pdu-type", Usage: "error instead of falling back to Other for unrecognized pdu types"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, or error"},
			&cli.StringFlag{Name: "output", Usage: "text or json"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if v := c.String("input"); v != "" {
		cfg.Input = v
	}
	if c.Bool("strict") {
		cfg.Strict = true
	}
	if c.Bool("reject-unknown-pdu-type") {
		cfg.RejectUnknownPduType = true
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := c.String("output"); v != "" {
		cfg.Output = v
	}

	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	data, err := readInput(cfg.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	results := dis.ParseStream(data, dis.DecodeOptions{
		Strict:               cfg.Strict,
		RejectUnknownPduType: cfg.RejectUnknownPduType,
	})

	var decoded, failed int
	for i, result := range results {
		if result.Err != nil {
			failed++
			log.Warnw("failed to decode pdu", "index", i, "error", result.Err)
			continue
		}
		decoded++
		p := result.Pdu
		switch cfg.Output {
		case "json":
			if err := printJSON(p); err != nil {
				log.Warnw("failed to render pdu as json", "index", i, "error", err)
			}
		default:
			log.Infow("pdu",
				"index", i,
				"version", p.Header.Version.String(),
				"pdu_type", p.Header.PduType.String(),
				"length", p.Header.Length,
			)
		}
	}
	log.Infow("parsed stream", "decoded", decoded, "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d pdus failed to decode", failed, len(results))
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printJSON(p dis.Pdu) error {
	summary := struct {
		Version string `json:"version"`
		PduType string `json:"pdu_type"`
		Length  uint16 `json:"length"`
	}{
		Version: p.Header.Version.String(),
		PduType: p.Header.PduType.String(),
		Length:  p.Header.Length,
	}
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(summary)
}
