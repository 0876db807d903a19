package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

var stdin = bufio.NewReader(os.Stdin)

// ReadLine prompts the user and returns the trimmed answer. An empty
// answer returns fallback.
func ReadLine(label, fallback string) string {
	if fallback != "" {
		fmt.Printf("%s [%s]: ", label, fallback)
	} else {
		fmt.Printf("%s: ", label)
	}

	input, err := stdin.ReadString('\n')
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read input, using fallback")
		return fallback
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return fallback
	}
	return input
}

// Confirm asks a yes/no question in Portuguese. Enter picks the default.
func Confirm(label string, def bool) bool {
	hint := "s/N"
	if def {
		hint = "S/n"
	}
	fmt.Printf("%s [%s]: ", label, hint)

	input, err := stdin.ReadString('\n')
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read input, using default")
		return def
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "s", "sim", "y", "yes":
		return true
	case "n", "nao", "não", "no":
		return false
	default:
		return def
	}
}
