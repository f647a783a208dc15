package group

import (
	"context"
	"fmt"

	"student-recordbook/internal/models"
	"student-recordbook/internal/repository"

	"github.com/jmoiron/sqlx"
)

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// DDL различается по драйверам из-за автоинкрементных ключей
var schemaStatements = map[string][]string{
	"sqlite": {
		`CREATE TABLE IF NOT EXISTS students (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			last_name TEXT NOT NULL,
			first_name TEXT NOT NULL,
			birth_date TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS exams (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			student_id INTEGER NOT NULL,
			subject TEXT NOT NULL,
			exam_date TEXT NOT NULL,
			teacher_name TEXT NOT NULL,
			FOREIGN KEY (student_id) REFERENCES students (id)
		)`,
	},
	"postgres": {
		`CREATE TABLE IF NOT EXISTS students (
			id BIGSERIAL PRIMARY KEY,
			last_name TEXT NOT NULL,
			first_name TEXT NOT NULL,
			birth_date TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS exams (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students (id),
			subject TEXT NOT NULL,
			exam_date TEXT NOT NULL,
			teacher_name TEXT NOT NULL
		)`,
	},
}

// строки таблиц; id нигде не выходит за пределы репозитория
type studentRow struct {
	ID        int64  `db:"id"`
	LastName  string `db:"last_name"`
	FirstName string `db:"first_name"`
	BirthDate string `db:"birth_date"`
}

type examRow struct {
	ID          int64  `db:"id"`
	StudentID   int64  `db:"student_id"`
	Subject     string `db:"subject"`
	ExamDate    string `db:"exam_date"`
	TeacherName string `db:"teacher_name"`
}

func (r *groupRepository) Save(ctx context.Context, group *models.Group) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("начало транзакции: %w", err)
	}
	defer tx.Rollback()

	if err := r.ensureSchema(ctx, tx); err != nil {
		return err
	}

	// Полная замена: сначала экзамены, потом студенты,
	// чтобы не оставалось висячих внешних ключей
	if _, err := tx.ExecContext(ctx, `DELETE FROM exams`); err != nil {
		return fmt.Errorf("очистка exams: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM students`); err != nil {
		return fmt.Errorf("очистка students: %w", err)
	}

	insertStudent := tx.Rebind(`
		INSERT INTO students (last_name, first_name, birth_date)
		VALUES (?, ?, ?)
		RETURNING id
	`)
	insertExam := tx.Rebind(`
		INSERT INTO exams (student_id, subject, exam_date, teacher_name)
		VALUES (?, ?, ?, ?)
	`)

	for _, student := range group.Students {
		var studentID int64
		err := tx.QueryRowContext(ctx, insertStudent,
			student.LastName,
			student.FirstName,
			student.BirthDate,
		).Scan(&studentID)
		if err != nil {
			return fmt.Errorf("вставка студента %s: %w", student.DisplayLabel(), err)
		}

		for _, exam := range student.Exams {
			_, err := tx.ExecContext(ctx, insertExam,
				studentID,
				exam.Subject,
				exam.ExamDate,
				exam.TeacherName,
			)
			if err != nil {
				return fmt.Errorf("вставка экзамена %q студента %s: %w",
					exam.Subject, student.DisplayLabel(), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("фиксация транзакции: %w", err)
	}
	return nil
}

func (r *groupRepository) Load(ctx context.Context) (*models.Group, error) {
	ok, err := r.hasSchema(ctx)
	if err != nil {
		return nil, fmt.Errorf("проверка схемы: %w", err)
	}
	if !ok {
		return nil, repository.ErrSchemaMissing
	}

	var students []studentRow
	err = r.db.SelectContext(ctx, &students, `
		SELECT id, last_name, first_name, birth_date
		FROM students
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("чтение students: %w", err)
	}
	if len(students) == 0 {
		return nil, repository.ErrNoData
	}

	selectExams := r.db.Rebind(`
		SELECT id, student_id, subject, exam_date, teacher_name
		FROM exams
		WHERE student_id = ?
		ORDER BY id
	`)

	group := models.NewGroup()
	for _, row := range students {
		student := models.NewStudent(row.LastName, row.FirstName, row.BirthDate)

		var exams []examRow
		if err := r.db.SelectContext(ctx, &exams, selectExams, row.ID); err != nil {
			return nil, fmt.Errorf("чтение exams студента %s: %w", student.DisplayLabel(), err)
		}
		for _, exam := range exams {
			student.AddExam(exam.Subject, exam.ExamDate, exam.TeacherName)
		}

		group.AddStudent(student)
	}

	return group, nil
}

func (r *groupRepository) ensureSchema(ctx context.Context, tx *sqlx.Tx) error {
	statements, ok := schemaStatements[r.db.DriverName()]
	if !ok {
		return fmt.Errorf("неподдерживаемый драйвер %q", r.db.DriverName())
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("создание схемы: %w", err)
		}
	}
	return nil
}

// hasSchema проверяет наличие таблицы students в базе
func (r *groupRepository) hasSchema(ctx context.Context) (bool, error) {
	var count int
	switch r.db.DriverName() {
	case "postgres":
		err := r.db.GetContext(ctx, &count, `
			SELECT count(*) FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = 'students'
		`)
		return count > 0, err
	default: // sqlite
		err := r.db.GetContext(ctx, &count, `
			SELECT count(*) FROM sqlite_master
			WHERE type = 'table' AND name = 'students'
		`)
		return count > 0, err
	}
}
