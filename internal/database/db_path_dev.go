//go:build !prod

package database

// GetDefaultDBPath keeps the dev database next to the binary for easy inspection.
func GetDefaultDBPath() string {
	return "authfront.db"
}
