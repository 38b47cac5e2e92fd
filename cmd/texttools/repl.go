package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/google/shlex"

	"github.com/devtext/texttools/config"
	"github.com/devtext/texttools/rhp"
	"github.com/devtext/texttools/tto"
)

// replLoop drives the interactive mode: read a line, split it with shell
// quoting rules, dispatch it as a one-off subcommand invocation, and print
// the result. shouldExit decides when a line ends the session.
func replLoop(ruleSet config.RuleSet, shouldExit func(line string) bool) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if shouldExit(line) {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields, err := shlex.Split(line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}

		if err := replDispatch(fields[0], fields[1:], ruleSet); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
	return scanner.Err()
}

func replDispatch(cmd string, args []string, ruleSet config.RuleSet) error {
	text, matchPath, err := replText(args)
	if err != nil {
		return err
	}

	switch cmd {
	case "parse":
		opts := rhpOptionsForPath(ruleSet, matchPath)
		node, err := rhp.ParseToAST(text, &opts)
		if err != nil {
			return err
		}
		fmt.Printf("%+v\n", node)
	case "tojson":
		opts := rhpOptionsForPath(ruleSet, matchPath)
		out, err := rhp.ToJSON(text, &opts)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "validate":
		fmt.Printf("%+v\n", rhp.Validate(text))
	case "obfuscate":
		opts := ttoOptionsForPath(ruleSet, matchPath)
		result := tto.Obfuscate(text, &opts)
		fmt.Println(result.Output)
	case "analyze":
		fmt.Printf("%+v\n", tto.AnalyzeText(text))
	case "detect":
		fmt.Printf("%+v\n", tto.Detect(text))
	case "normalize":
		fmt.Println(tto.Normalize(text, nil))
	case "exit", "quit":
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", cmd)
	}
	return nil
}

// replText turns the REPL line's trailing arguments into input text: a
// single "@path" argument reads that file, anything else is joined with
// spaces and used verbatim.
func replText(args []string) (text string, matchPath string, err error) {
	if len(args) == 1 && strings.HasPrefix(args[0], "@") {
		path := strings.TrimPrefix(args[0], "@")
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("reading %q: %w", path, err)
		}
		return string(data), path, nil
	}
	return strings.Join(args, " "), "-", nil
}
