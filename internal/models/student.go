package models

import "fmt"

// Student - студент группы вместе с его зачеткой
type Student struct {
	LastName  string      `json:"last_name"`
	FirstName string      `json:"first_name"`
	BirthDate string      `json:"birth_date"` // дата рождения в формате ГГГГ-ММ-ДД
	Exams     []ExamEntry `json:"exams"`
}

// ExamEntry - одна запись зачетки (предмет, дата, преподаватель).
// После добавления запись не меняется и не удаляется.
type ExamEntry struct {
	Subject     string `json:"subject"`
	ExamDate    string `json:"exam_date"`
	TeacherName string `json:"teacher_name"`
}

func NewStudent(lastName, firstName, birthDate string) *Student {
	return &Student{
		LastName:  lastName,
		FirstName: firstName,
		BirthDate: birthDate,
	}
}

// AddExam добавляет экзамен в конец зачетки
func (s *Student) AddExam(subject, examDate, teacherName string) {
	s.Exams = append(s.Exams, ExamEntry{
		Subject:     subject,
		ExamDate:    examDate,
		TeacherName: teacherName,
	})
}

// DisplayLabel возвращает строку вида "Фамилия Имя (дата рождения)"
func (s *Student) DisplayLabel() string {
	return fmt.Sprintf("%s %s (%s)", s.LastName, s.FirstName, s.BirthDate)
}
