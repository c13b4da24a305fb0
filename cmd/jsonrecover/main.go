// Command jsonrecover reads JSON-like text from a file argument or stdin and
// prints the recovered structures as standard JSON, one per line.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/GuptaDevansh-2004/ChabotAgentProject/core/jsonish"
	"github.com/GuptaDevansh-2004/ChabotAgentProject/internal/config"
)

func main() {
	strict := flag.Bool("strict", false, "parse strict JSON only: no tuples, braces always mean objects")
	first := flag.Bool("first", false, "stop after the first recovered structure")
	indent := flag.Bool("indent", false, "pretty-print output with two-space indentation")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevelFromEnv(),
	})))

	text, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonrecover: %v\n", err)
		os.Exit(1)
	}

	opts := jsonish.DefaultOptions()
	opts.StrictJSON = *strict
	opts.ExtractMultiple = !*first

	results, err := jsonish.Parse(text, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonrecover: %v\n", err)
		os.Exit(1)
	}

	out := json.NewEncoder(os.Stdout)
	if *indent {
		out.SetIndent("", "  ")
	}
	for _, v := range results {
		if err := out.Encode(v); err != nil {
			fmt.Fprintf(os.Stderr, "jsonrecover: %v\n", err)
			os.Exit(1)
		}
	}
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
