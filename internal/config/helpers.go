package config

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func dateFormatPtr(f DateFormat) *DateFormat {
	return &f
}

func derefString(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func derefBool(p *bool, fallback bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}
