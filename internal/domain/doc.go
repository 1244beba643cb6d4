// Package domain contains the value types the pattern demos pass around.
//
// The domain does not depend on YAML parsing, the terminal, or the filesystem.
// Infra/adapters map into/from these types.
package domain
