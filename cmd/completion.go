package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/shiftbook/internal/shift"
)

// completionWriters maps each supported shell to its script generator
var completionWriters = map[string]func(w io.Writer) error{
	"bash":       func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
	"zsh":        func(w io.Writer) error { return rootCmd.GenZshCompletion(w) },
	"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": func(w io.Writer) error { return rootCmd.GenPowerShellCompletionWithDesc(w) },
}

// configKeys are the keys accepted by "shiftbook config set"
var configKeys = []string{
	"timezone", "theme", "backend", "data_dir", "database_path", "feed_path",
	"annual_ceiling", "warning_threshold", "reset_clears_overrides",
	"recurring.enabled", "recurring.start_time", "recurring.end_time",
	"recurring.saturday_rate", "recurring.sunday_rate",
}

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for shiftbook to stdout.

Besides commands and flags, the scripts complete --kind values and the keys
of "shiftbook config set".

Examples:
  source <(shiftbook completion bash)
  shiftbook completion zsh > "${fpath[1]}/_shiftbook"
  shiftbook completion fish > ~/.config/fish/completions/shiftbook.fish
  shiftbook completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: supportedShells(),
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)

	_ = addCmd.RegisterFlagCompletionFunc("kind", completeKinds)
	configSetCmd.ValidArgsFunction = completeConfigKeys
}

func supportedShells() []string {
	shells := make([]string, 0, len(completionWriters))
	for name := range completionWriters {
		shells = append(shells, name)
	}
	sort.Strings(shells)
	return shells
}

// generateCompletion writes the completion script for shell
func generateCompletion(shell string) {
	write, ok := completionWriters[shell]
	if !ok {
		usageError(fmt.Sprintf("Unsupported shell '%s'", shell), "Supported shells: "+strings.Join(supportedShells(), ", "))
		return
	}

	if err := write(deps.Stdout); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion\n", shell)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}

func completeKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	kinds := make([]string, 0, len(shift.Kinds))
	for _, k := range shift.Kinds {
		kinds = append(kinds, fmt.Sprintf("%s\t%s", k, k.Label()))
	}
	return kinds, cobra.ShellCompDirectiveNoFileComp
}

// completeConfigKeys offers the setting names for the first argument only
func completeConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var matches []string
	for _, key := range configKeys {
		if strings.HasPrefix(key, toComplete) {
			matches = append(matches, key)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
