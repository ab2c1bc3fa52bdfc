package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"captura-leads.backend/pkg/crypto"
)

var fatalfFn = log.Fatalf

// run prints the bcrypt hash of a password for bootstrapping user rows by hand.
// The password is the first positional argument.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("genhash", flag.ContinueOnError)
	fs.SetOutput(out)
	cost := fs.Int("cost", crypto.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || fs.Arg(0) == "" {
		return fmt.Errorf("usage: genhash [-cost N] <password>")
	}

	hasher := crypto.NewPasswordHasher(*cost)
	hash, err := hasher.Hash(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, _ = fmt.Fprintf(out, "cost=%d\n", hasher.Cost())
	_, _ = fmt.Fprintln(out, hash)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fatalfFn("%v", err)
	}
}
