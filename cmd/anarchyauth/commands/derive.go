package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"anarchyauth/internal/domain"
	"anarchyauth/internal/imaging"
)

// deriveFile opens a session for the key derived from the image at path.
func deriveFile(ctx context.Context, cmd *cobra.Command, path string) (domain.Derivation, error) {
	if !imaging.Allowed(path) {
		return domain.Derivation{}, fmt.Errorf("%s: unsupported file type (want png, jpg, jpeg, bmp or tiff)", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Derivation{}, err
	}
	d, err := appCtx.Identity.DeriveFromImage(ctx, path, data)
	if err != nil {
		return domain.Derivation{}, err
	}
	if d.Warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", d.Warning)
	}
	return d, nil
}

func deriveCmd() *cobra.Command {
	var showPrivate bool
	cmd := &cobra.Command{
		Use:   "derive <image>",
		Short: "Derive a keypair from an eye image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deriveFile(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Session:     %s\n", d.SessionID)
			fmt.Fprintf(out, "Method:      %s\n", d.Method)
			if d.IrisCodesCount > 0 {
				fmt.Fprintf(out, "Iris codes:  %d\n", d.IrisCodesCount)
			}
			fmt.Fprintf(out, "Fingerprint: %s\n", d.Fingerprint)
			fmt.Fprintf(out, "Public key:  %s\n", hex.EncodeToString(d.KeyPair.Public[:]))
			if showPrivate {
				fmt.Fprintf(out, "Private key: %s\n", hex.EncodeToString(d.KeyPair.Private[:]))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPrivate, "show-private", false, "also print the private key seed")
	return cmd
}
