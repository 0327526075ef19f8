package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// readSeed returns the seed from args[0], or from the first line of stdin
// when fromStdin is set. Keeping seeds off the command line keeps them out
// of shell history.
func readSeed(cmd *cobra.Command, args []string, fromStdin bool) (string, error) {
	if fromStdin {
		if len(args) > 0 {
			return "", fmt.Errorf("pass the seed either as an argument or on stdin, not both")
		}
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read seed from stdin: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	if len(args) != 1 {
		return "", fmt.Errorf("seed required (argument or --stdin)")
	}
	return args[0], nil
}
