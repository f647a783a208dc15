package console

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"student-recordbook/internal/models"
	"student-recordbook/internal/repository"

	"go.uber.org/zap"
)

type fakeGroupService struct {
	saved   *models.Group
	toLoad  *models.Group
	loadErr error
}

func (f *fakeGroupService) SaveGroup(_ context.Context, group *models.Group) error {
	f.saved = group
	return nil
}

func (f *fakeGroupService) LoadGroup(_ context.Context) (*models.Group, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.toLoad, nil
}

func newTestSession(input string, svc *fakeGroupService) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return &Session{
		groupService: svc,
		logger:       zap.NewNop().Sugar(),
		in:           bufio.NewScanner(strings.NewReader(input)),
		out:          &out,
		group:        models.NewGroup(),
	}, &out
}

func TestSessionAddStudentAndSave(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"1",          // добавить студентов
		"1",          // один студент
		"Ivanov",     // фамилия
		"Ivan",       // имя
		"2000-01-01", // дата рождения
		"3",          // три экзамена
		"Math", "2023-01-10", "Petrov",
		"Physics", "2023-01-15", "Sidorov",
		"History", "2023-01-20", "Volkov",
		"3", // сохранить
		"0", // выход
	}, "\n") + "\n"

	svc := &fakeGroupService{}
	session, _ := newTestSession(input, svc)
	session.Run(context.Background())

	if svc.saved == nil {
		t.Fatal("save was not called")
	}
	if len(svc.saved.Students) != 1 {
		t.Fatalf("saved students = %d, want 1", len(svc.saved.Students))
	}
	student := svc.saved.Students[0]
	if student.DisplayLabel() != "Ivanov Ivan (2000-01-01)" {
		t.Fatalf("student = %q", student.DisplayLabel())
	}
	if len(student.Exams) != 3 {
		t.Fatalf("exams = %d, want 3", len(student.Exams))
	}
}

func TestSessionNonNumericCountAbortsWithoutPartialState(t *testing.T) {
	t.Parallel()

	input := "1\nмного\n0\n"
	svc := &fakeGroupService{}
	session, out := newTestSession(input, svc)
	session.Run(context.Background())

	if len(session.group.Students) != 0 {
		t.Fatalf("group = %d students, want 0 after aborted entry", len(session.group.Students))
	}
	if !strings.Contains(out.String(), "операция отменена") {
		t.Fatalf("output does not report aborted operation: %q", out.String())
	}
}

func TestSessionLoadReplacesCurrentGroup(t *testing.T) {
	t.Parallel()

	loaded := models.NewGroup()
	loaded.AddStudent(models.NewStudent("Sidorov", "Sidor", "2002-03-03"))

	svc := &fakeGroupService{toLoad: loaded}
	session, _ := newTestSession("4\n0\n", svc)
	session.group.AddStudent(models.NewStudent("Ivanov", "Ivan", "2000-01-01"))
	session.Run(context.Background())

	if len(session.group.Students) != 1 || session.group.Students[0].LastName != "Sidorov" {
		t.Fatalf("group after load = %+v, want single Sidorov", session.group.Students)
	}
}

func TestSessionLoadNoDataMessage(t *testing.T) {
	t.Parallel()

	svc := &fakeGroupService{loadErr: repository.ErrNoData}
	session, out := newTestSession("4\n0\n", svc)
	session.Run(context.Background())

	if !strings.Contains(out.String(), "нет данных") {
		t.Fatalf("output does not report missing data: %q", out.String())
	}
}
