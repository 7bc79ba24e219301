package query

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

var (
	departmentAfterKeyword = regexp.MustCompile(`(?i)department[:\s]+(\w+)`)
	knownDepartment        = regexp.MustCompile(`(?i)(engineering|sales|leadership)`)
)

type keywordRule struct {
	intent   Intent
	keywords []string
	params   func(original, lowered string) Parameters
}

// keywordRules are evaluated in order and the first hit wins. Categories
// overlap, so "gaps due to risk" must resolve to gaps before at_risk.
var keywordRules = []keywordRule{
	{intent: IntentCompletedCourses, keywords: []string{"completed", "finished", "done"}},
	{intent: IntentTeamLeaders, keywords: []string{"team leader", "leadership", "can lead"}},
	{intent: IntentGaps, keywords: []string{"gap", "missing", "need"}, params: gapParams},
	{intent: IntentAtRisk, keywords: []string{"risk"}},
	{intent: IntentHighPotential, keywords: []string{"high potential", "potential"}},
	{intent: IntentByDepartment, keywords: []string{"department"}, params: departmentParams},
	{intent: IntentTrainingStats, keywords: []string{"training", "statistics", "stats"}},
	{intent: IntentIncompleteTraining, keywords: []string{"incomplete", "not finished"}},
}

// ClassifyKeywords is the deterministic classifier. It never fails.
func ClassifyKeywords(text string) Classification {
	lowered := strings.ToLower(text)
	for _, rule := range keywordRules {
		if !containsAny(lowered, rule.keywords) {
			continue
		}
		c := Classification{Intent: rule.intent}
		if rule.params != nil {
			c.Parameters = rule.params(text, lowered)
		}
		return c
	}
	return Classification{Intent: IntentGeneral}
}

func gapParams(_, lowered string) Parameters {
	switch {
	case containsAny(lowered, []string{"technical", "tech"}):
		return Parameters{Category: domain.CategoryTechnical}
	case containsAny(lowered, []string{"leadership", "lead"}):
		return Parameters{Category: domain.CategoryLeadership}
	case containsAny(lowered, []string{"core", "communication"}):
		return Parameters{Category: domain.CategoryCore}
	default:
		return Parameters{}
	}
}

func departmentParams(original, _ string) Parameters {
	if m := departmentAfterKeyword.FindStringSubmatch(original); m != nil {
		return Parameters{Department: m[1]}
	}
	if m := knownDepartment.FindStringSubmatch(original); m != nil {
		return Parameters{Department: m[1]}
	}
	return Parameters{}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
