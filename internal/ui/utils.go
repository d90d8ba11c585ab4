package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Colors for consistent UI
const (
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorReset  = "\033[0m"
)

var stdin = bufio.NewReader(os.Stdin)

// PrintWarning displays a warning message with consistent formatting
func PrintWarning(message string) {
	fmt.Printf("%s\nWarning:%s\n", ColorYellow, ColorReset)
	fmt.Printf("%s%s%s\n", ColorYellow, message, ColorReset)
}

// PrintError displays an error message with consistent formatting
func PrintError(message string) {
	fmt.Printf("\n%sError: %s%s\n", ColorRed, message, ColorReset)
}

// PrintSuccess displays a success message with consistent formatting
func PrintSuccess(message string) {
	fmt.Printf("\n%s%s%s\n", ColorGreen, message, ColorReset)
}

// PrintInfo displays an info message with consistent formatting
func PrintInfo(message string) {
	fmt.Printf("%s%s%s", ColorBlue, message, ColorReset)
}

// ReadString reads a trimmed line from stdin
func ReadString(prompt string) string {
	PrintInfo(prompt)
	input, _ := stdin.ReadString('\n')
	return strings.TrimSpace(input)
}

// ReadStringWithDefault returns fallback when the answer is empty
func ReadStringWithDefault(prompt, fallback string) string {
	input := ReadString(fmt.Sprintf("%s[%s]: ", prompt, fallback))
	if input == "" {
		return fallback
	}
	return input
}

// ReadPositiveIntWithDefault reads a positive integer, returning fallback on an empty answer
func ReadPositiveIntWithDefault(prompt string, fallback int) (int, error) {
	input := ReadString(fmt.Sprintf("%s[%d]: ", prompt, fallback))
	if input == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(input)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid number: %s. Please enter a positive integer", input)
	}
	return value, nil
}

// ReadRatioWithDefault reads a number in (0, 1), returning fallback on an empty answer
func ReadRatioWithDefault(prompt string, fallback float64) (float64, error) {
	input := ReadString(fmt.Sprintf("%s[%g]: ", prompt, fallback))
	if input == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(input, 64)
	if err != nil || value <= 0 || value >= 1 {
		return 0, fmt.Errorf("invalid ratio: %s. Please enter a number between 0 and 1", input)
	}
	return value, nil
}

// ReadInt reads an integer from stdin with validation
func ReadInt(prompt string, min, max int) (int, error) {
	input := ReadString(prompt)
	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", input)
	}
	if value < min || value > max {
		return 0, fmt.Errorf("value must be between %d and %d", min, max)
	}
	return value, nil
}
