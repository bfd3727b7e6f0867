package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// valueArgs parses flags out of raw for a command that sets DisableFlagParsing, so values
// such as -40 reach it as positional arguments instead of being read as shorthand flags.
// It returns exactly n positional arguments in their original order.
func valueArgs(cmd *cobra.Command, raw []string, n int) ([]string, error) {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.AddFlagSet(cmd.Flags())
	fs.AddFlagSet(cmd.InheritedFlags())

	negatives := make(map[string]string)
	toParse := make([]string, len(raw))
	for i, arg := range raw {
		if isNegativeNumber(arg) {
			placeholder := fmt.Sprintf("\x00%d", i)
			negatives[placeholder] = arg
			arg = placeholder
		}
		toParse[i] = arg
	}

	if err := fs.Parse(toParse); err != nil {
		return nil, err
	}
	if help, _ := fs.GetBool("help"); help {
		_ = fs.Set("help", "false")
		return nil, pflag.ErrHelp
	}

	args := fs.Args()
	for i, arg := range args {
		if v, ok := negatives[arg]; ok {
			args[i] = v
		}
	}
	if err := cobra.ExactArgs(n)(cmd, args); err != nil {
		return nil, err
	}
	return args, nil
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}
