package config

const (
	defaultConfigPath = "~/.config/tagcloud/config.toml"
	projectConfigName = "tagcloud.toml"
	defaultOutputDir  = "."
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"

	// OutputExtension is appended to the output base name.
	OutputExtension = ".html"
)

var (
	defaultPreconnect = []Preconnect{
		{Origin: "https://fonts.googleapis.com"},
		{Origin: "https://fonts.gstatic.com", CrossOrigin: true},
	}
	defaultStylesheets = []string{
		"https://fonts.googleapis.com/css2?family=Inria+Sans:ital,wght@0,300;0,400;0,700;1,300;1,400;1,700&display=swap",
		"http://web.cse.ohio-state.edu/software/2231/web-sw2/assignments/projects/tag-cloud-generator/data/tagcloud.css",
		"tagcloud.css",
	}
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
		},
		Render: Render{
			Preconnect:  append([]Preconnect(nil), defaultPreconnect...),
			Stylesheets: append([]string(nil), defaultStylesheets...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
