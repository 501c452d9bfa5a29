package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// generate <description>: run the pipeline once and print the verdict.
// Exit codes: 0 valid, 1 hard failure, 2 still invalid after the fix pass.
func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate one component from a natural-language description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")

			result, err := pipe.Run(cmd.Context(), description)
			if err != nil {
				return err
			}

			for _, w := range result.Warnings {
				fmt.Printf("[security] %s\n", w)
			}

			if result.Valid {
				fmt.Printf("Component %q valid after %d attempt(s). Files written:\n", result.Naming.Stem, result.Attempts)
				for _, path := range sortedPaths(result.SavedPaths) {
					fmt.Printf("    %s\n", path)
				}
				return nil
			}

			fmt.Printf("Component %q still has %d error(s) after the fix attempt:\n", result.Naming.Stem, len(result.Errors))
			for _, e := range result.Errors {
				fmt.Printf("    - %s\n", e.Error())
			}
			for _, path := range sortedPaths(result.SavedPaths) {
				fmt.Printf("Saved for review: %s\n", path)
			}
			os.Exit(2)
			return nil
		},
	}
}

func sortedPaths(paths map[string]string) []string {
	// Stable order for output: ts, html, css, then anything else.
	order := []string{"ts", "html", "css", "failed", "errors"}
	var out []string
	for _, key := range order {
		if p, ok := paths[key]; ok {
			out = append(out, p)
		}
	}
	return out
}
