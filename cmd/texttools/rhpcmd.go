package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/devtext/texttools/config"
	"github.com/devtext/texttools/file"
	"github.com/devtext/texttools/rhp"
)

func runParse(args []string, ruleSet config.RuleSet) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	output := fs.String("o", "", "write AST JSON to this path instead of stdout")
	fs.Parse(args)

	content, matchPath, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	opts := rhpOptionsForPath(ruleSet, matchPath)

	node, err := rhp.ParseToAST(content, &opts)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding AST: %w", err)
	}

	return writeResult(*output, string(encoded))
}

func runToJSON(args []string, ruleSet config.RuleSet) error {
	fs := flag.NewFlagSet("tojson", flag.ExitOnError)
	output := fs.String("o", "", "write JSON to this path instead of stdout")
	fs.Parse(args)

	content, matchPath, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	opts := rhpOptionsForPath(ruleSet, matchPath)

	result, err := rhp.ToJSON(content, &opts)
	if err != nil {
		return err
	}

	return writeResult(*output, result)
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	fs.Parse(args)

	content, _, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	result := rhp.Validate(content)
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding validate result: %w", err)
	}
	fmt.Println(string(encoded))

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

func writeResult(outputPath string, content string) error {
	if outputPath == "" {
		fmt.Println(content)
		return nil
	}
	if err := file.WriteAtomic(outputPath, file.EnsureTrailingNewline(content)); err != nil {
		return fmt.Errorf("writing %q: %w", file.RelativePathCwd(outputPath), err)
	}
	return nil
}
