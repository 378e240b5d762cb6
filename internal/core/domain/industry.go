package domain

// UnknownIndustry is returned when neither rules nor the classifier can
// label a role.
const UnknownIndustry = "unknown"

// IndustryProfile maps an industry label to the keywords that identify it.
type IndustryProfile struct {
	Industry string   `yaml:"industry" json:"industry"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}
