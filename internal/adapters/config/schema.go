package config

// Typefile represents the structure of the .typeget.yaml settings file.
type Typefile struct {
	PackageManager string   `yaml:"packageManager"`
	Parallelism    int      `yaml:"parallelism"`
	Timeout        string   `yaml:"timeout"`
	Skip           []string `yaml:"skip"`
}
