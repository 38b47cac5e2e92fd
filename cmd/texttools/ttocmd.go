package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/devtext/texttools/cellwidth"
	"github.com/devtext/texttools/config"
	"github.com/devtext/texttools/file"
	"github.com/devtext/texttools/tto"
)

func runObfuscate(args []string, ruleSet config.RuleSet) error {
	fs := flag.NewFlagSet("obfuscate", flag.ExitOnError)
	output := fs.String("o", "", "write the obfuscated text to this path instead of stdout")
	density := fs.Float64("density", -1, "override the configured obfuscation density (0-1)")
	showStats := fs.Bool("stats", false, "print a stats summary to stderr")
	fs.Parse(args)

	content, matchPath, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	if err := tto.ValidateInput(content); err != nil {
		return err
	}

	opts := ttoOptionsForPath(ruleSet, matchPath)
	if *density >= 0 {
		opts.Density = *density
	}

	result := tto.Obfuscate(content, &opts)

	if *showStats {
		printObfuscateStats(result)
	}

	return writeResult(*output, result.Output)
}

func printObfuscateStats(result tto.Result) {
	fmt.Fprintf(os.Stderr, "clusters: %d total, %d obfuscated (thai ratio %.2f)\n",
		result.Stats.TotalClusters, result.Stats.ObfuscatedClusters, result.Stats.ThaiRatio)
	for name, count := range result.Stats.ByStrategy {
		fmt.Fprintf(os.Stderr, "  %-16s %d\n", name, count)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
}

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "print the raw AnalysisResult as JSON")
	showInvisible := fs.Bool("show-invisible", false, "escape zero-width clusters in table output")
	fs.Parse(args)

	content, _, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	result := tto.AnalyzeText(content)

	if *asJSON {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding analysis: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	printAnalysisTable(content, result, *showInvisible)
	return nil
}

func printAnalysisTable(content string, result tto.AnalysisResult, showInvisible bool) {
	sizer := cellwidth.New(showInvisible)

	fmt.Printf("thai ratio:    %.2f\n", result.ThaiRatio)
	fmt.Printf("effectiveness: %.2f\n", result.Effectiveness)
	fmt.Println("breakdown:")
	for category, count := range result.Breakdown {
		fmt.Printf("  %-16s %d\n", category, count)
	}
	if len(result.Recommendations) > 0 {
		fmt.Println("recommendations:")
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}

	resistance := tto.EstimateThreatResistance(content)
	fmt.Println("threat resistance:")
	for threat, score := range resistance {
		fmt.Printf("  %-20s %.2f\n", threat, score)
	}

	segResult := tto.SegmentText(content)
	fmt.Printf("clusters: %d (%d obfuscatable)\n", segResult.TotalClusters, segResult.ObfuscatableClusters)
	fmt.Printf("%-4s %-10s %-6s %s\n", "#", "strategy", "width", "cluster")
	for _, cluster := range segResult.Clusters {
		width := sizer.GraphemeClusterWidth(cluster.Runes)
		display := cluster.Segment
		if showInvisible && uniseg.StringWidth(cluster.Segment) == 0 {
			display = cellwidth.EscapeInvisible(cluster.Runes)
		}
		fmt.Printf("%-4d %-10s %-6d %s\n", cluster.CharIndex, cluster.RecommendedStrategy, width, display)
	}
}

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "print the raw DetectResult as JSON")
	fs.Parse(args)

	content, _, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	result := tto.Detect(content)

	if *asJSON {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding detect result: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	fmt.Printf("zero-width characters: %v\n", result.HasZeroWidth)
	fmt.Printf("latin/thai script mix: %v\n", result.HasLatinMix)
	fmt.Printf("suspicion score:       %.2f\n", result.SuspicionScore)
	return nil
}

func runNormalize(args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	output := fs.String("o", "", "write the normalized text to this path instead of stdout")
	keepHomoglyphs := fs.Bool("keep-homoglyphs", false, "skip the reverse-homoglyph repair pass")
	fs.Parse(args)

	content, _, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	opts := &tto.NormalizeOptions{DisableReverseHomoglyphMap: *keepHomoglyphs}
	result := tto.Normalize(content, opts)

	return writeResult(*output, result)
}

// runRepl implements the interactive mode: read a line, split it into a
// subcommand and arguments with shell quoting rules, run it, print the
// result, repeat until EOF.
func runRepl(ruleSet config.RuleSet) error {
	fmt.Println("texttools repl. Type a subcommand and arguments, or \"exit\".")
	return replLoop(ruleSet, func(line string) bool {
		return strings.TrimSpace(line) == "exit"
	})
}
