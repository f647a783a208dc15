package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"student-recordbook/internal/models"
	"student-recordbook/internal/repository"
	"student-recordbook/internal/service"

	"go.uber.org/zap"
)

// Session - интерактивная консольная сессия: меню, ввод студентов,
// таблица, сохранение и загрузка группы.
type Session struct {
	groupService service.GroupService
	logger       *zap.SugaredLogger

	in  *bufio.Scanner
	out io.Writer

	group *models.Group
}

func NewSession(groupService service.GroupService, logger *zap.SugaredLogger) *Session {
	return &Session{
		groupService: groupService,
		logger:       logger,
		in:           bufio.NewScanner(os.Stdin),
		out:          os.Stdout,
		group:        models.NewGroup(),
	}
}

// Run крутит меню до выбора выхода либо конца ввода
func (s *Session) Run(ctx context.Context) {
	s.logger.Infow("🖥️ Сессия запущена")

	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "=== Управление группой студентов ===")
		fmt.Fprintln(s.out, "1 - Добавить студентов")
		fmt.Fprintln(s.out, "2 - Показать таблицу")
		fmt.Fprintln(s.out, "3 - Сохранить в базу")
		fmt.Fprintln(s.out, "4 - Загрузить из базы")
		fmt.Fprintln(s.out, "0 - Выход")

		choice, err := readLine(s.in, s.out, "Выберите пункт: ")
		if err != nil {
			// конец ввода - завершаемся как при выборе выхода
			return
		}

		switch choice {
		case "1":
			s.handleAddStudents()
		case "2":
			fmt.Fprint(s.out, "\nСписок студентов группы:\n")
			fmt.Fprint(s.out, s.group.RenderTable())
		case "3":
			s.handleSave(ctx)
		case "4":
			s.handleLoad(ctx)
		case "0":
			fmt.Fprintln(s.out, "До свидания!")
			return
		default:
			fmt.Fprintln(s.out, "Нет такого пункта меню")
		}
	}
}

// handleAddStudents собирает студентов с экзаменами и добавляет их в группу.
// При ошибке ввода операция прерывается целиком, группа не меняется.
func (s *Session) handleAddStudents() {
	count, err := readInt(s.in, s.out, "Сколько студентов добавить: ")
	if err != nil {
		fmt.Fprintln(s.out, "Ожидалось число, операция отменена")
		return
	}

	added := make([]*models.Student, 0, count)
	for i := 1; i <= count; i++ {
		fmt.Fprintf(s.out, "\nСтудент %d:\n", i)

		lastName, err := readLine(s.in, s.out, "Фамилия: ")
		if err != nil {
			fmt.Fprintln(s.out, "Ввод прерван, операция отменена")
			return
		}
		firstName, err := readLine(s.in, s.out, "Имя: ")
		if err != nil {
			fmt.Fprintln(s.out, "Ввод прерван, операция отменена")
			return
		}
		birthDate, err := readLine(s.in, s.out, "Дата рождения (ГГГГ-ММ-ДД): ")
		if err != nil {
			fmt.Fprintln(s.out, "Ввод прерван, операция отменена")
			return
		}

		student := models.NewStudent(lastName, firstName, birthDate)

		examCount, err := readExamCount(s.in, s.out)
		if err != nil {
			fmt.Fprintln(s.out, "Ожидалось число, операция отменена")
			return
		}

		for j := 1; j <= examCount; j++ {
			fmt.Fprintf(s.out, "Экзамен %d:\n", j)

			subject, err := readLine(s.in, s.out, "  Предмет: ")
			if err != nil {
				fmt.Fprintln(s.out, "Ввод прерван, операция отменена")
				return
			}
			examDate, err := readLine(s.in, s.out, "  Дата экзамена (ГГГГ-ММ-ДД): ")
			if err != nil {
				fmt.Fprintln(s.out, "Ввод прерван, операция отменена")
				return
			}
			teacherName, err := readLine(s.in, s.out, "  ФИО преподавателя: ")
			if err != nil {
				fmt.Fprintln(s.out, "Ввод прерван, операция отменена")
				return
			}

			student.AddExam(subject, examDate, teacherName)
		}

		added = append(added, student)
	}

	for _, student := range added {
		s.group.AddStudent(student)
	}
	fmt.Fprintf(s.out, "\nДобавлено студентов: %d\n", len(added))
}

func (s *Session) handleSave(ctx context.Context) {
	if err := s.groupService.SaveGroup(ctx, s.group); err != nil {
		fmt.Fprintf(s.out, "Не удалось сохранить группу: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Группа сохранена")
}

func (s *Session) handleLoad(ctx context.Context) {
	group, err := s.groupService.LoadGroup(ctx)
	switch {
	case errors.Is(err, repository.ErrNoData):
		fmt.Fprintln(s.out, "В базе нет данных")
		return
	case errors.Is(err, repository.ErrSchemaMissing):
		fmt.Fprintln(s.out, "База пуста: таблицы еще не создавались")
		return
	case err != nil:
		fmt.Fprintf(s.out, "Не удалось загрузить группу: %v\n", err)
		return
	}

	// Загрузка полностью замещает текущую группу
	s.group = group
	fmt.Fprintf(s.out, "Загружено студентов: %d\n", len(group.Students))
}
