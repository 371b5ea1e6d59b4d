package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errInvalidSignature makes verify exit non-zero on a mismatch.
var errInvalidSignature = errors.New("signature is invalid")

func signCmd() *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "sign <image>",
		Short: "Sign a message with the key derived from an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deriveFile(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			signed, err := appCtx.Signing.Sign(d.SessionID, message)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed.Armored)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to sign")
	return cmd
}

func verifyCmd() *cobra.Command {
	var message, signature string
	cmd := &cobra.Command{
		Use:   "verify <image>",
		Short: "Verify a hex signature with the key derived from an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deriveFile(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			v, err := appCtx.Signing.Verify(d.SessionID, message, signature)
			if err != nil {
				return err
			}
			if !v.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), "Signature is invalid")
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature is valid")
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "signed message")
	cmd.Flags().StringVarP(&signature, "signature", "s", "", "signature as 128 hex characters")
	return cmd
}
