package domain

import (
	"slices"
	"strings"
)

// ManifestFile is the name of the manifest read from the working directory.
const ManifestFile = "package.json"

// TypesScope is the namespace that type-declaration packages are published under.
const TypesScope = "@types/"

// Manifest holds the dependency maps declared in package.json.
// A nil map means the manifest does not declare that group.
type Manifest struct {
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// CollectDependencyNames returns the names from Dependencies followed by the
// names from DevDependencies. Each group is sorted so the result does not depend
// on map iteration order. Names present in both groups appear twice.
func CollectDependencyNames(m *Manifest) []string {
	if m == nil {
		return nil
	}

	names := make([]string, 0, len(m.Dependencies)+len(m.DevDependencies))
	names = append(names, sortedKeys(m.Dependencies)...)
	names = append(names, sortedKeys(m.DevDependencies)...)
	return names
}

func sortedKeys(deps map[string]string) []string {
	keys := make([]string, 0, len(deps))
	for name := range deps {
		keys = append(keys, name)
	}
	slices.Sort(keys)
	return keys
}

// TypePackages maps dependency names to their type-declaration packages.
// Names already in the types scope and names listed in skip produce nothing.
func TypePackages(names, skip []string) []string {
	packages := make([]string, 0, len(names))
	for _, name := range names {
		if IsTypesPackage(name) || slices.Contains(skip, name) {
			continue
		}
		packages = append(packages, TypesScope+name)
	}
	return packages
}

// IsTypesPackage reports whether name already refers to a type-declaration package.
func IsTypesPackage(name string) bool {
	return strings.HasPrefix(name, TypesScope)
}
