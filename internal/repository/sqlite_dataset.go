package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/hrpulse/internal/db"
	"github.com/alexanderramin/hrpulse/internal/domain"
)

// SQLiteDatasetRepo implements DatasetRepo over the snapshot tables.
type SQLiteDatasetRepo struct {
	db *sql.DB
}

func NewSQLiteDatasetRepo(conn *sql.DB) *SQLiteDatasetRepo {
	return &SQLiteDatasetRepo{db: conn}
}

// Save replaces the snapshot in a single transaction.
func (r *SQLiteDatasetRepo) Save(ctx context.Context, employees []*domain.Employee, courses []domain.Course) error {
	return db.WithinTx(ctx, r.db, func(ctx context.Context, tx db.DBTX) error {
		for _, table := range []string{"course_links", "competencies", "gap_analyses", "training_tracks", "appraisals", "employees", "courses"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}
		for i, c := range courses {
			if err := insertCourse(ctx, tx, i, c); err != nil {
				return err
			}
		}
		for i, e := range employees {
			if err := insertEmployee(ctx, tx, i, e); err != nil {
				return fmt.Errorf("employee %s: %w", e.ID, err)
			}
		}
		return nil
	})
}

func insertCourse(ctx context.Context, tx db.DBTX, seq int, c domain.Course) error {
	skills, err := toJSON(nonNilStrings(c.Skills))
	if err != nil {
		return fmt.Errorf("encoding skills: %w", err)
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO courses (id, seq, title, category, description,
		duration_hours, difficulty, skills, completion_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, seq, c.Title, string(c.Category), c.Description,
		c.DurationHours, string(c.Difficulty), skills, nullableFloatToValue(c.CompletionRate),
	)
	if err != nil {
		return fmt.Errorf("inserting course %s: %w", c.ID, err)
	}
	return nil
}

func insertEmployee(ctx context.Context, tx db.DBTX, seq int, e *domain.Employee) error {
	trend, err := toJSON(nonNilFloats(e.PerformanceTrend))
	if err != nil {
		return fmt.Errorf("encoding performance trend: %w", err)
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO employees (id, seq, first_name, last_name, email,
		department, role, level, hire_date, manager_id, risk_level, is_high_potential, performance_trend)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, seq, e.FirstName, e.LastName, e.Email,
		e.Department, e.Role, e.Level, e.HireDate.Format(dateLayout), e.ManagerID,
		string(e.RiskLevel), boolToInt(e.IsHighPotential), trend,
	)
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}

	for i, a := range e.Appraisals {
		_, err := tx.ExecContext(ctx, `INSERT INTO appraisals (id, employee_id, seq, period,
			overall_score, feedback, reviewer_id, date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, e.ID, i, a.Period, a.OverallScore, a.Feedback, a.ReviewerID, a.Date.Format(dateLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting appraisal %s: %w", a.ID, err)
		}
		if err := insertCompetencies(ctx, tx, "appraisal", a.ID, a.Competencies); err != nil {
			return err
		}
	}

	for i, t := range e.TrainingTracks {
		_, err := tx.ExecContext(ctx, `INSERT INTO training_tracks (employee_id, seq, id, name,
			estimated_duration, priority, status, progress) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, i, t.ID, t.Name, t.EstimatedDuration, string(t.Priority), string(t.Status), t.Progress,
		)
		if err != nil {
			return fmt.Errorf("inserting track %s: %w", t.ID, err)
		}
		if err := insertCourseLinks(ctx, tx, "track", trackOwnerID(e.ID, i), t.Courses); err != nil {
			return err
		}
	}

	if ga := e.GapAnalysis; ga != nil {
		_, err := tx.ExecContext(ctx, `INSERT INTO gap_analyses (employee_id, priority,
			estimated_impact, rationale) VALUES (?, ?, ?, ?)`,
			e.ID, string(ga.Priority), ga.EstimatedImpact, ga.Rationale,
		)
		if err != nil {
			return fmt.Errorf("inserting gap analysis: %w", err)
		}
		if err := insertCompetencies(ctx, tx, "gap", e.ID, ga.CompetencyGaps); err != nil {
			return err
		}
		if err := insertCourseLinks(ctx, tx, "gap", e.ID, ga.RecommendedCourses); err != nil {
			return err
		}
	}
	return nil
}

func insertCompetencies(ctx context.Context, tx db.DBTX, kind, ownerID string, comps []domain.Competency) error {
	for i, c := range comps {
		_, err := tx.ExecContext(ctx, `INSERT INTO competencies (owner_kind, owner_id, seq, id, name,
			category, description, required_level, current_level) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			kind, ownerID, i, c.ID, c.Name, string(c.Category), c.Description, c.RequiredLevel, c.CurrentLevel,
		)
		if err != nil {
			return fmt.Errorf("inserting %s competency %s: %w", kind, c.ID, err)
		}
	}
	return nil
}

func insertCourseLinks(ctx context.Context, tx db.DBTX, kind, ownerID string, courses []domain.Course) error {
	for i, c := range courses {
		_, err := tx.ExecContext(ctx, `INSERT INTO course_links (owner_kind, owner_id, seq, course_id)
			VALUES (?, ?, ?, ?)`, kind, ownerID, i, c.ID)
		if err != nil {
			return fmt.Errorf("linking %s course %s: %w", kind, c.ID, err)
		}
	}
	return nil
}

type ownerKey struct {
	kind string
	id   string
}

// Load reads the whole snapshot. Each table is read to completion before
// the next query, so a single-connection database never deadlocks.
func (r *SQLiteDatasetRepo) Load(ctx context.Context) ([]*domain.Employee, []domain.Course, error) {
	courses, catalog, err := r.loadCourses(ctx)
	if err != nil {
		return nil, nil, err
	}
	employees, byID, err := r.loadEmployees(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(employees) == 0 {
		return nil, nil, ErrEmptySnapshot
	}

	comps, err := r.loadCompetencies(ctx)
	if err != nil {
		return nil, nil, err
	}
	links, err := r.loadCourseLinks(ctx, catalog)
	if err != nil {
		return nil, nil, err
	}
	if err := r.loadAppraisals(ctx, byID, comps); err != nil {
		return nil, nil, err
	}
	if err := r.loadTracks(ctx, byID, links); err != nil {
		return nil, nil, err
	}
	if err := r.loadGapAnalyses(ctx, byID, comps, links); err != nil {
		return nil, nil, err
	}
	return employees, courses, nil
}

func (r *SQLiteDatasetRepo) loadCourses(ctx context.Context) ([]domain.Course, map[string]domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, category, description, duration_hours,
		difficulty, skills, completion_rate FROM courses ORDER BY seq`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	catalog := make(map[string]domain.Course)
	for rows.Next() {
		var (
			c              domain.Course
			category, diff string
			skills         string
			rate           sql.NullFloat64
		)
		if err := rows.Scan(&c.ID, &c.Title, &category, &c.Description, &c.DurationHours, &diff, &skills, &rate); err != nil {
			return nil, nil, fmt.Errorf("scanning course: %w", err)
		}
		c.Category = domain.CompetencyCategory(category)
		c.Difficulty = domain.Difficulty(diff)
		c.CompletionRate = nullFloatPtr(rate)
		if err := json.Unmarshal([]byte(skills), &c.Skills); err != nil {
			return nil, nil, fmt.Errorf("decoding skills of %s: %w", c.ID, err)
		}
		if len(c.Skills) == 0 {
			c.Skills = nil
		}
		courses = append(courses, c)
		catalog[c.ID] = c
	}
	return courses, catalog, rows.Err()
}

func (r *SQLiteDatasetRepo) loadEmployees(ctx context.Context) ([]*domain.Employee, map[string]*domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, first_name, last_name, email, department, role,
		level, hire_date, manager_id, risk_level, is_high_potential, performance_trend
		FROM employees ORDER BY seq`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying employees: %w", err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	byID := make(map[string]*domain.Employee)
	for rows.Next() {
		var (
			e                 domain.Employee
			hire, risk, trend string
			highPotential     int
		)
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Department, &e.Role,
			&e.Level, &hire, &e.ManagerID, &risk, &highPotential, &trend); err != nil {
			return nil, nil, fmt.Errorf("scanning employee: %w", err)
		}
		if e.HireDate, err = parseDate("hire_date", hire); err != nil {
			return nil, nil, err
		}
		e.RiskLevel = domain.RiskLevel(risk)
		e.IsHighPotential = intToBool(highPotential)
		if err := json.Unmarshal([]byte(trend), &e.PerformanceTrend); err != nil {
			return nil, nil, fmt.Errorf("decoding performance trend of %s: %w", e.ID, err)
		}
		employees = append(employees, &e)
		byID[e.ID] = &e
	}
	return employees, byID, rows.Err()
}

func (r *SQLiteDatasetRepo) loadCompetencies(ctx context.Context) (map[ownerKey][]domain.Competency, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT owner_kind, owner_id, id, name, category, description,
		required_level, current_level FROM competencies ORDER BY owner_kind, owner_id, seq`)
	if err != nil {
		return nil, fmt.Errorf("querying competencies: %w", err)
	}
	defer rows.Close()

	out := make(map[ownerKey][]domain.Competency)
	for rows.Next() {
		var (
			key      ownerKey
			c        domain.Competency
			category string
		)
		if err := rows.Scan(&key.kind, &key.id, &c.ID, &c.Name, &category, &c.Description,
			&c.RequiredLevel, &c.CurrentLevel); err != nil {
			return nil, fmt.Errorf("scanning competency: %w", err)
		}
		c.Category = domain.CompetencyCategory(category)
		out[key] = append(out[key], c)
	}
	return out, rows.Err()
}

func (r *SQLiteDatasetRepo) loadCourseLinks(ctx context.Context, catalog map[string]domain.Course) (map[ownerKey][]domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT owner_kind, owner_id, course_id FROM course_links
		ORDER BY owner_kind, owner_id, seq`)
	if err != nil {
		return nil, fmt.Errorf("querying course links: %w", err)
	}
	defer rows.Close()

	out := make(map[ownerKey][]domain.Course)
	for rows.Next() {
		var key ownerKey
		var courseID string
		if err := rows.Scan(&key.kind, &key.id, &courseID); err != nil {
			return nil, fmt.Errorf("scanning course link: %w", err)
		}
		if c, ok := catalog[courseID]; ok {
			out[key] = append(out[key], c)
		}
	}
	return out, rows.Err()
}

func (r *SQLiteDatasetRepo) loadAppraisals(ctx context.Context, byID map[string]*domain.Employee, comps map[ownerKey][]domain.Competency) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, employee_id, period, overall_score, feedback,
		reviewer_id, date FROM appraisals ORDER BY employee_id, seq`)
	if err != nil {
		return fmt.Errorf("querying appraisals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a    domain.Appraisal
			date string
		)
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Period, &a.OverallScore, &a.Feedback, &a.ReviewerID, &date); err != nil {
			return fmt.Errorf("scanning appraisal: %w", err)
		}
		if a.Date, err = parseDate("appraisal date", date); err != nil {
			return err
		}
		a.Competencies = comps[ownerKey{"appraisal", a.ID}]
		if e, ok := byID[a.EmployeeID]; ok {
			e.Appraisals = append(e.Appraisals, a)
		}
	}
	return rows.Err()
}

func (r *SQLiteDatasetRepo) loadTracks(ctx context.Context, byID map[string]*domain.Employee, links map[ownerKey][]domain.Course) error {
	rows, err := r.db.QueryContext(ctx, `SELECT employee_id, seq, id, name, estimated_duration,
		priority, status, progress FROM training_tracks ORDER BY employee_id, seq`)
	if err != nil {
		return fmt.Errorf("querying training tracks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t                domain.TrainingTrack
			employeeID       string
			seq              int
			priority, status string
		)
		if err := rows.Scan(&employeeID, &seq, &t.ID, &t.Name, &t.EstimatedDuration, &priority, &status, &t.Progress); err != nil {
			return fmt.Errorf("scanning training track: %w", err)
		}
		t.Priority = domain.Priority(priority)
		t.Status = domain.CompletionStatus(status)
		t.Courses = links[ownerKey{"track", trackOwnerID(employeeID, seq)}]
		if e, ok := byID[employeeID]; ok {
			e.TrainingTracks = append(e.TrainingTracks, t)
		}
	}
	return rows.Err()
}

func (r *SQLiteDatasetRepo) loadGapAnalyses(ctx context.Context, byID map[string]*domain.Employee, comps map[ownerKey][]domain.Competency, links map[ownerKey][]domain.Course) error {
	rows, err := r.db.QueryContext(ctx, `SELECT employee_id, priority, estimated_impact, rationale FROM gap_analyses`)
	if err != nil {
		return fmt.Errorf("querying gap analyses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ga       domain.GapAnalysis
			priority string
		)
		if err := rows.Scan(&ga.EmployeeID, &priority, &ga.EstimatedImpact, &ga.Rationale); err != nil {
			return fmt.Errorf("scanning gap analysis: %w", err)
		}
		ga.Priority = domain.Priority(priority)
		ga.CompetencyGaps = comps[ownerKey{"gap", ga.EmployeeID}]
		ga.RecommendedCourses = links[ownerKey{"gap", ga.EmployeeID}]
		if e, ok := byID[ga.EmployeeID]; ok {
			e.GapAnalysis = &ga
		}
	}
	return rows.Err()
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilFloats(f []float64) []float64 {
	if f == nil {
		return []float64{}
	}
	return f
}
