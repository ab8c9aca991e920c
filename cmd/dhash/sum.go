package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/cli/sflags"
	"github.com/streamingfast/dhash"
	"go.uber.org/zap"
)

var sumCmd = Command(sumE,
	"sum <file>",
	"Print the 64-bit xxh3 digest of a file, use '-' to read standard input",
	Description(`
		Streams the input through one hasher and prints the resulting digest
		in hexadecimal.

		Keying is picked from the flags: a --secret file (optionally combined
		with --seed), a bare --seed, --library-defaults for xxh3 built-in
		keying, or, with no flags at all, the built-in secret. Two runs with
		the same keying over the same input always print the same digest.
	`),
	ExactArgs(1),
	Flags(func(flags *pflag.FlagSet) {
		flags.Uint64("seed", 0, "Seed the hasher, combined with the secret when one is given")
		flags.String("secret", "", "Path to a file holding exactly 192 bytes of keying material")
		flags.Bool("library-defaults", false, "Key with xxh3 built-in defaults instead of the built-in secret")
	}),
)

func sumE(cmd *cobra.Command, args []string) error {
	hasher, err := hasherFromFlags(
		sflags.MustGetUint64(cmd, "seed"),
		sflags.MustGetString(cmd, "secret"),
		sflags.MustGetBool(cmd, "library-defaults"),
	)
	if err != nil {
		return err
	}

	input := io.Reader(os.Stdin)
	if args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()

		input = file
	}

	written, err := io.Copy(hasher, input)
	if err != nil {
		return fmt.Errorf("hash input: %w", err)
	}

	zlog.Debug("hashed input", zap.Int64("bytes", written), zap.Uint64("seed", hasher.Seed()))
	fmt.Printf("%016x  %s\n", hasher.Sum64(), args[0])

	return nil
}

func hasherFromFlags(seed uint64, secretPath string, libraryDefaults bool) (*dhash.Hasher, error) {
	if libraryDefaults {
		if secretPath != "" || seed != 0 {
			return nil, fmt.Errorf("--library-defaults cannot be combined with --secret or --seed")
		}

		return dhash.NewLibraryDefault(), nil
	}

	if secretPath != "" {
		secret, err := os.ReadFile(secretPath)
		if err != nil {
			return nil, fmt.Errorf("read secret: %w", err)
		}

		hasher, err := dhash.NewWithSecretAndSeed(secret, seed)
		if err != nil {
			return nil, fmt.Errorf("secret file %q: %w", secretPath, err)
		}

		return hasher, nil
	}

	if seed != 0 {
		return dhash.New(seed), nil
	}

	return dhash.NewDefault(), nil
}
