package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion runs first: when invoked by the shell's completion
	// hook, Complete prints candidates and exits.
	lookbacks := predict.Set{"3m", "6m", "1y", "2y"}
	analysis := map[string]complete.Predictor{
		"tickers":  predict.Something,
		"lookback": lookbacks,
		"d":        predict.Something,
		"u":        predict.Nothing,
	}
	balances := map[string]complete.Predictor{
		"taxable":     predict.Something,
		"traditional": predict.Something,
		"roth":        predict.Something,
	}
	trading := map[string]complete.Predictor{
		"band":     predict.Something,
		"holdings": predict.Files("*.jsonl"),
	}
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"market-file":  predict.Files("*.jsonl"),
			"classes-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"update": {Flags: map[string]complete.Predictor{
				"tickers":  predict.Something,
				"lookback": lookbacks,
				"d":        predict.Something,
				"intraday": predict.Nothing,
			}},
			"classes": {},
			"weights": {Flags: analysis},
			"place":   {Flags: merge(analysis, balances)},
			"trades":  {Flags: merge(analysis, balances, trading)},
			"analyze": {Flags: merge(analysis, balances, trading)},
			"assist":  {Flags: merge(analysis, balances, trading)},
			"topic":   {Args: predict.Set{"risk-parity", "tax-placement", "rebalancing", "market-data", "*"}},
		},
	}
	completion.Complete("rbl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func merge(ms ...map[string]complete.Predictor) map[string]complete.Predictor {
	out := make(map[string]complete.Predictor)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
