// Package seed owns the in-memory dataset every command reads from: the
// embedded demo workforce, a YAML file, or a SQLite snapshot.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/hrpulse/internal/db"
	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/importer"
	"github.com/alexanderramin/hrpulse/internal/repository"
)

//go:embed employees.yaml
var embeddedYAML []byte

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidDataset   = errors.New("invalid dataset")
)

// Dataset is read-only after construction. Callers must not mutate the
// employees it hands out.
type Dataset struct {
	employees []*domain.Employee
	byID      map[string]*domain.Employee
	courses   []domain.Course
}

func New(employees []*domain.Employee, courses []domain.Course) *Dataset {
	d := &Dataset{
		employees: append([]*domain.Employee(nil), employees...),
		byID:      make(map[string]*domain.Employee, len(employees)),
		courses:   append([]domain.Course(nil), courses...),
	}
	for _, e := range d.employees {
		d.byID[e.ID] = e
	}
	return d
}

// Employees returns the employees in dataset order.
func (d *Dataset) Employees() []*domain.Employee {
	return append([]*domain.Employee(nil), d.employees...)
}

func (d *Dataset) Employee(id string) (*domain.Employee, error) {
	e, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}
	return e, nil
}

func (d *Dataset) Courses() []domain.Course {
	return append([]domain.Course(nil), d.courses...)
}

func (d *Dataset) Len() int { return len(d.employees) }

// Embedded returns the built-in demo workforce.
func Embedded() (*Dataset, error) {
	return parse(embeddedYAML)
}

// Open loads the dataset named by path: empty for the embedded seed, a
// .db file for a SQLite snapshot, anything else as YAML. Record-level
// warnings from Employee.Validate are logged, not returned.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Dataset, error) {
	var (
		d   *Dataset
		err error
	)
	switch {
	case path == "":
		d, err = Embedded()
	case strings.EqualFold(filepath.Ext(path), ".db"):
		d, err = openSnapshot(ctx, path)
	default:
		d, err = loadYAML(path)
	}
	if err != nil {
		return nil, err
	}
	if logger != nil {
		for _, e := range d.employees {
			for _, problem := range e.Validate() {
				logger.Warn("dataset warning", "employee", e.ID, "problem", problem)
			}
		}
	}
	return d, nil
}

func loadYAML(path string) (*Dataset, error) {
	schema, err := importer.LoadDatasetSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", path, err)
	}
	return build(schema)
}

func parse(data []byte) (*Dataset, error) {
	schema, err := importer.ParseDatasetSchema(data)
	if err != nil {
		return nil, err
	}
	return build(schema)
}

func build(schema *importer.DatasetSchema) (*Dataset, error) {
	if errs := importer.ValidateDatasetSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(errs...))
	}
	converted, err := importer.Convert(schema)
	if err != nil {
		return nil, err
	}
	return New(converted.Employees, converted.Courses), nil
}

func openSnapshot(ctx context.Context, path string) (*Dataset, error) {
	conn, err := db.OpenDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	defer conn.Close()

	employees, courses, err := repository.NewSQLiteDatasetRepo(conn).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	return New(employees, courses), nil
}
