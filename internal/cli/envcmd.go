package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termyhq/termy/internal/shellenv"
)

func newEnvCmd() *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the environment exported to child shells",
		Long: `Print the environment variables termy exports to child shells,
derived from the current configuration.

Examples:
  termy env                     # One KEY=VALUE pair per line
  eval "$(termy env --export)"  # Apply in the current shell`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := loadConfig()
			if err != nil {
				return err
			}
			pairs := shellenv.Environ(result.Options)

			env := make(map[string]string, len(pairs))
			for _, pair := range pairs {
				key, value, _ := strings.Cut(pair, "=")
				env[key] = value
			}

			return formatter().OutputData(env, func(w io.Writer) error {
				for _, pair := range pairs {
					line := pair
					if export {
						key, value, _ := strings.Cut(pair, "=")
						line = "export " + key + "=" + shellQuote(value)
					}
					if _, err := io.WriteString(w, line+"\n"); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&export, "export", false, "Print as shell export statements")
	return cmd
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
