package manifest

// PackageFile is the subset of package.json read by typeget.
// Every other field in the document is ignored.
type PackageFile struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}
