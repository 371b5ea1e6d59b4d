// Package commands defines the anarchyauth CLI and wires dependencies for subcommands.
//
// Commands
//
//   - serve          Run the HTTP key service
//   - derive         Derive a keypair from an eye image and print it
//   - sign           Sign a message with the key derived from an image
//   - verify         Verify a signature with the key derived from an image
//   - export         Write the derived key as an armored block or SSH key
//   - fingerprint    Print the key fingerprint for an image
//   - config init    Write a config file holding the effective settings
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph before
// any subcommand runs. Offline commands open a throwaway session in the
// in-process store; the same image always yields the same key.
package commands
