package cli

import (
	"github.com/spf13/cobra"

	"catalog-backend/internal/catalog/validation"
	"catalog-backend/internal/platform/config"
)

// NewRootCommand は serve / validate を持つルートコマンドを組み立てる。
// サブコマンド無しで起動した場合は serve と同じ。
func NewRootCommand(engine *validation.Engine) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Library book catalog backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath, engine)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to config.yaml")

	root.AddCommand(newServeCommand(&configPath, engine))
	root.AddCommand(newValidateCommand(engine))
	return root
}
