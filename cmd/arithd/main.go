// Command arithd decompresses a file produced by arithc.
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
	var inPath, outPath, model, decryptKey string

	cmd := &cobra.Command{
		Use:   "arithd",
		Short: "Decompress a file produced by arithc",
		RunE: func(_ *cobra.Command, args []string) error {
			if inPath == "" && len(args) > 0 {
				inPath = args[0]
			}
			if outPath == "" && len(args) > 1 {
				outPath = args[1]
			}
			return run(inPath, outPath, model, decryptKey)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input file (default: stdin)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&model, "model", "order0", "driver model used to compress: order0 or order1")
	cmd.Flags().StringVar(&decryptKey, "decrypt-key", "", "if set, open an AES-256-CBC container sealed with a key derived from this passphrase")

	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("arithd failed")
		os.Exit(1)
	}
}

func run(inPath, outPath, modelFlag, decryptKey string) error {
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

	if decryptKey != "" {
		key := arithcoder.EncryptionKeyFromPassphrase(decryptKey)
		opened, err := arithcoder.OpenContainer(key, data)
		if err != nil {
			return fmt.Errorf("open container: %w", err)
		}
		data = opened
	}

	dm, err := cli.NewDriverModel(modelFlag)
	if err != nil {
		return err
	}

	decoded, err := arithcoder.Decompress(bytes.NewReader(data), dm)
	if err != nil {
		log.Error().Err(err).Str("in", inPath).Str("model", modelFlag).Msg("decompress failed")
		return err
	}

	out, err := openOutput(outPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	if _, err := out.Write(decoded); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info().
		Str("in", displayName(inPath, "stdin")).
		Str("out", displayName(outPath, "stdout")).
		Int("bytes_in", len(data)).
		Int("bytes_out", len(decoded)).
		Str("model", modelFlag).
		Dur("elapsed", time.Since(start)).
		Msg("decompressed")

	return nil
}
