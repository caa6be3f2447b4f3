package guardrails

type ValidationResult struct {
	IsValid  bool   // true = allowed ; false = blocked
	Reason   string // Why the question was blocked
	Category string // "security_exploit", "private_data", "harmful_content", "financial_credentials", "off_topic", "too_short"
}
