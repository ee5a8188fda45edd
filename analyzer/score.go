package analyzer

// Score weights per issue severity.
const (
	criticalPenalty = 15
	warningPenalty  = 5
	infoPenalty     = 2
)

// calculateOverallScore derives the 0-100 health score from the issue
// list alone. A page with no issues scores 100.
func calculateOverallScore(issues []Issue) int {
	score := 100

	for _, issue := range issues {
		switch issue.Type {
		case IssueCritical:
			score -= criticalPenalty
		case IssueWarning:
			score -= warningPenalty
		case IssueInfo:
			score -= infoPenalty
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
