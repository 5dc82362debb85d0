package config

// CreateDefaultConfiguration returns the built-in layer. The changelog path
// is left unset; Build fills it in after all layers are merged.
func CreateDefaultConfiguration() *Config {
	return &Config{
		ChangelogDateFormat: dateFormatPtr(DateFormatAuto),
		BumpAfterRelease:    boolPtr(true),
		CommitChanges:       boolPtr(true),
		Tag:                 boolPtr(false),
		GitHubRelease:       boolPtr(false),
	}
}
