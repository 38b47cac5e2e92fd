// Command texttools is a CLI front end for the rhp and tto libraries: parse
// or convert Ruby Hash#inspect dumps to JSON, and obfuscate, analyze, or
// detect obfuscation of Thai text.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/devtext/texttools/config"
	"github.com/devtext/texttools/file"
	"github.com/devtext/texttools/rhp"
	"github.com/devtext/texttools/tto"
)

var (
	logPath    = flag.String("log", "", "log to file instead of discarding")
	configPath = flag.String("config", "", "path to a rule set file (default: the XDG config path)")
	noConfig   = flag.Bool("noconfig", false, "ignore the config file and use built-in defaults")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if *logPath != "" {
		logFile, err := os.Create(*logPath)
		if err != nil {
			exitWithError(err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(ioutil.Discard)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	ruleSet, err := loadRuleSet()
	if err != nil {
		exitWithError(err)
	}

	cmd, rest := args[0], args[1:]
	if err := dispatch(cmd, rest, ruleSet); err != nil {
		exitWithError(err)
	}
}

func loadRuleSet() (config.RuleSet, error) {
	if *configPath != "" {
		return config.LoadRuleSet(*configPath)
	}
	return LoadOrCreateConfig(*noConfig)
}

func dispatch(cmd string, args []string, ruleSet config.RuleSet) error {
	switch cmd {
	case "parse":
		return runParse(args, ruleSet)
	case "tojson":
		return runToJSON(args, ruleSet)
	case "validate":
		return runValidate(args)
	case "obfuscate":
		return runObfuscate(args, ruleSet)
	case "analyze":
		return runAnalyze(args)
	case "detect":
		return runDetect(args)
	case "normalize":
		return runNormalize(args)
	case "repl":
		return runRepl(ruleSet)
	default:
		return fmt.Errorf("unknown subcommand %q", cmd)
	}
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [OPTIONS] SUBCOMMAND [ARGS]\n\n", os.Args[0])
	fmt.Fprintf(f, "Subcommands: parse, tojson, validate, obfuscate, analyze, detect, normalize, repl\n\n")
	flag.PrintDefaults()
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}

// readInput reads the subcommand's input: from the named file, or from
// stdin when path is "" or "-". It also returns the path to use for
// rule-set glob matching (stdin matches against the literal string "-").
func readInput(path string) (content string, matchPath string, err error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "-", nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %q: %w", file.RelativePathCwd(path), err)
	}
	return string(data), path, nil
}

func rhpOptionsForPath(ruleSet config.RuleSet, path string) rhp.Options {
	return ruleSet.ConfigForPath(path).RHP.RHPOptions()
}

func ttoOptionsForPath(ruleSet config.RuleSet, path string) tto.Options {
	return ruleSet.ConfigForPath(path).TTO.TTOOptions()
}
