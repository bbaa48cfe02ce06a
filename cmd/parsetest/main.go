package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joshua0006/moneybee/internal/domain/catalog"
	"github.com/joshua0006/moneybee/internal/domain/parse"
	"github.com/joshua0006/moneybee/pkg/money"
)

func main() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	parser := parse.NewParser(catalog.Default(), logger)

	if len(os.Args) > 1 {
		printResult(parser.Parse(strings.Join(os.Args[1:], " ")))
		return
	}

	// No args: read one expense line per input line from stdin.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		printResult(parser.Parse(line))
		fmt.Println()
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func printResult(result parse.ParsedExpense) {
	display := money.NewFromDecimal(result.Amount, result.Currency).Display()

	fmt.Printf("Input:       %s\n", result.RawText)
	fmt.Printf("Amount:      %s (%s)\n", display, result.Currency)
	fmt.Printf("Description: %s\n", result.Description)
	fmt.Printf("Category:    %s\n", result.Category)
	fmt.Printf("Type:        %s\n", result.Type)
	if result.Merchant != "" {
		fmt.Printf("Merchant:    %s\n", result.Merchant)
	}
	fmt.Printf("Method:      %s\n", result.Method)
	fmt.Printf("Confidence:  overall %.2f (amount %.2f, description %.2f, category %.2f, type %.2f)\n",
		result.Confidence.Overall,
		result.Confidence.Amount,
		result.Confidence.Description,
		result.Confidence.Category,
		result.Confidence.Type,
	)
	fmt.Printf("Reasoning:   %s\n", result.Reasoning)
}
