//go:build !windows

package icons

// ResolveShortcut is a no-op outside Windows; .lnk files only carry
// meaning there.
func ResolveShortcut(path string) (target string, name string) {
	return path, ""
}
