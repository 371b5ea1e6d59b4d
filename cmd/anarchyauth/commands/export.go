package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"anarchyauth/internal/domain"
	"anarchyauth/internal/util/fsutil"
)

func exportCmd() *cobra.Command {
	var keyType, dir string
	var stdout bool
	cmd := &cobra.Command{
		Use:   "export <image>",
		Short: "Write the derived key as an armored block or OpenSSH public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deriveFile(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			art, err := appCtx.Export.Export(d.SessionID, domain.KeyType(keyType))
			if err != nil {
				return err
			}
			if stdout {
				_, err := cmd.OutOrStdout().Write(art.Content)
				if err == nil && art.Content[len(art.Content)-1] != '\n' {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				return err
			}

			path := filepath.Join(dir, art.Filename)
			perm := os.FileMode(0o644)
			if domain.KeyType(keyType) == domain.KeyTypePrivate {
				perm = 0o600
			}
			if err := fsutil.WriteFile(path, art.Content, perm); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyType, "type", "t", string(domain.KeyTypePublic), "key to export: private, public or ssh")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to write into")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print to stdout instead of writing a file")
	return cmd
}
