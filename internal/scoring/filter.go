package scoring

import (
	"strings"
	"time"

	"github.com/alexanderramin/hrpulse/internal/domain"
)

// Filter narrows the talent directory. Zero-valued fields match everything.
type Filter struct {
	Search     string
	Department string
	Risk       domain.RiskLevel
	Potential  domain.PotentialLevel
}

// FilterEmployees applies f and keeps input order.
func FilterEmployees(employees []*domain.Employee, f Filter, now time.Time) []*domain.Employee {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var out []*domain.Employee
	for _, e := range employees {
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		if f.Department != "" && e.Department != f.Department {
			continue
		}
		if f.Risk != "" && e.RiskLevel != f.Risk {
			continue
		}
		if f.Potential != "" && CalculatePotential(e, now).Level != f.Potential {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e *domain.Employee, lowered string) bool {
	for _, field := range []string{e.FirstName, e.LastName, e.Role, e.Department} {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}

// Departments returns the distinct departments in first-seen order.
func Departments(employees []*domain.Employee) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range employees {
		if !seen[e.Department] {
			seen[e.Department] = true
			out = append(out, e.Department)
		}
	}
	return out
}
