// Command arithc compresses a file with the adaptive arithmetic coder.
package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kmayerpatel/arithcoder"
	"github.com/kmayerpatel/arithcoder/cmd/internal/cli"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

func main() {
	var inPath, outPath, model, encryptKey string

	cmd := &cobra.Command{
		Use:   "arithc",
		Short: "Compress a file with the adaptive arithmetic coder",
		RunE: func(_ *cobra.Command, args []string) error {
			if inPath == "" && len(args) > 0 {
				inPath = args[0]
			}
			if outPath == "" && len(args) > 1 {
				outPath = args[1]
			}
			return run(inPath, outPath, model, encryptKey)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input file (default: stdin)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&model, "model", "order0", "driver model: order0 or order1")
	cmd.Flags().StringVar(&encryptKey, "encrypt-key", "", "if set, seal the container under AES-256-CBC with a key derived from this passphrase")

	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("arithc failed")
		os.Exit(1)
	}
}

func run(inPath, outPath, modelFlag, encryptKey string) error {
	start := time.Now()

	in, err := openInput(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	data, err := readAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	dm, err := cli.NewDriverModel(modelFlag)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := arithcoder.Compress(&buf, data, dm); err != nil {
		log.Error().Err(err).Str("in", inPath).Str("model", modelFlag).Msg("compress failed")
		return err
	}

	payload := buf.Bytes()
	if encryptKey != "" {
		key := arithcoder.EncryptionKeyFromPassphrase(encryptKey)
		sealed, err := arithcoder.SealContainer(key, payload)
		if err != nil {
			return fmt.Errorf("seal container: %w", err)
		}
		payload = sealed
	}

	out, err := openOutput(outPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	if _, err := out.Write(payload); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info().
		Str("in", displayName(inPath, "stdin")).
		Str("out", displayName(outPath, "stdout")).
		Int("bytes_in", len(data)).
		Int("bytes_out", len(payload)).
		Str("model", modelFlag).
		Dur("elapsed", time.Since(start)).
		Msg("compressed")

	return nil
}
