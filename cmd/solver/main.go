// Command solver recovers secrets from JSON testcase files. Each file holds
// a threshold and a set of shares, some of which may be corrupted; the
// solver votes out the corrupted ones and prints the reconstructed secret.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/quorumvault/shamirx/arith"
	"github.com/quorumvault/shamirx/combin"
	"github.com/quorumvault/shamirx/shareio"
	"github.com/quorumvault/shamirx/sieve"
)

func main() {
	workers := pflag.IntP("workers", "w", 1, "parallel reconstruction workers")
	fieldName := pflag.String("field", "", "compute in a named prime field (P-256, P-384, P-521, secp256k1) instead of exact rationals")
	maxCombos := pflag.Int64("max-combinations", 10_000_000, "refuse inputs whose vote would visit more combinations than this")
	pflag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	files := pflag.Args()
	if len(files) == 0 {
		log.Fatal("usage: solver [flags] testcase.json [testcase.json ...]")
	}

	var field *arith.Field
	if *fieldName != "" {
		p := arith.ModulusGet(*fieldName)
		if p == nil {
			log.Fatalw("unknown field", "name", *fieldName)
		}
		field, err = arith.NewField(p)
		if err != nil {
			log.Fatalw("bad field", "name", *fieldName, "err", err)
		}
	}

	exit := 0
	for _, path := range files {
		secret, err := solveFile(log, path, field, *workers, *maxCombos)
		if err != nil {
			log.Errorw("recovery failed", "file", path, "err", err)
			exit = 1
			continue
		}
		fmt.Printf("%s: %s\n", path, secret.String())
	}
	os.Exit(exit)
}

func solveFile(log *zap.SugaredLogger, path string, field *arith.Field, workers int, maxCombos int64) (*big.Int, error) {
	set, err := shareio.ParseFile(path)
	if err != nil {
		return nil, err
	}

	total, err := combin.Count(len(set.Shares), set.K)
	if err != nil {
		return nil, err
	}
	if total.Cmp(big.NewInt(maxCombos)) > 0 {
		return nil, fmt.Errorf("vote over %d shares with k=%d needs %s combinations, above the budget of %d",
			len(set.Shares), set.K, total.String(), maxCombos)
	}

	log.Infow("share set loaded",
		"file", path,
		"id", set.ID,
		"shares", len(set.Shares),
		"k", set.K,
		"combinations", total.String(),
		"fingerprint", fmt.Sprintf("%x", set.Fingerprint),
	)

	switch {
	case field != nil && workers > 1:
		return sieve.SolveModParallel(set.Shares, set.K, field, workers)
	case field != nil:
		return sieve.SolveMod(set.Shares, set.K, field)
	case workers > 1:
		return sieve.SolveParallel(set.Shares, set.K, workers)
	default:
		return sieve.Solve(set.Shares, set.K)
	}
}
