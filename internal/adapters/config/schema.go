package config

// Descriptor represents the structure of the optional prebuild.yaml file.
// Every field overrides one default of the built-in library descriptor;
// absent fields keep the defaults.
type Descriptor struct {
	Library LibraryDTO `yaml:"library"`
}

// LibraryDTO represents a library override in the configuration.
type LibraryDTO struct {
	Name       string `yaml:"name"`
	Version    string `yaml:"version"`
	URL        string `yaml:"url"`
	LibFile    string `yaml:"libFile"`
	GlueSource string `yaml:"glueSource"`
	GlueOutput string `yaml:"glueOutput"`
}
