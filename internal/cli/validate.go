package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"catalog-backend/internal/catalog/validation"
)

// ErrInvalidRecord は validate で検証エラーがあったことを示す（終了コード 1）
var ErrInvalidRecord = errors.New("record is invalid")

func newValidateCommand(engine *validation.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Validate and normalize a book record read from a JSON file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}
			return runValidate(in, cmd.OutOrStdout(), engine)
		},
	}
}

func runValidate(in io.Reader, out io.Writer, engine *validation.Engine) error {
	var raw validation.RawBook
	if err := json.NewDecoder(in).Decode(&raw); err != nil {
		return fmt.Errorf("decode book record: %w", err)
	}

	res := engine.Validate(raw)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}
	if !res.Valid {
		return ErrInvalidRecord
	}
	return nil
}
