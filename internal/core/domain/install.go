package domain

// InstallJob is a single type package to install with a package manager.
type InstallJob struct {
	// Manager is the package manager executable, e.g. "npm".
	Manager string

	// Package is the type-declaration package name, e.g. "@types/lodash".
	Package string
}

// Args returns the package manager arguments that install the package as a
// development dependency.
func (j InstallJob) Args() []string {
	return []string{"install", j.Package, "--save-dev"}
}

// String returns the full command line for display.
func (j InstallJob) String() string {
	s := j.Manager
	for _, arg := range j.Args() {
		s += " " + arg
	}
	return s
}

// NewInstallJobs builds one job per package, in order.
func NewInstallJobs(manager string, packages []string) []InstallJob {
	jobs := make([]InstallJob, len(packages))
	for i, pkg := range packages {
		jobs[i] = InstallJob{Manager: manager, Package: pkg}
	}
	return jobs
}
