package models

import (
	"fmt"
	"strings"
)

// Group - учебная группа, упорядоченный список студентов.
// Порядок добавления = порядок отображения.
type Group struct {
	Students []*Student `json:"students"`
}

func NewGroup() *Group {
	return &Group{}
}

// AddStudent добавляет студента в конец списка.
// Дубликаты не проверяются.
func (g *Group) AddStudent(student *Student) {
	g.Students = append(g.Students, student)
}

// RenderTable возвращает таблицу студентов группы:
// № | Фамилия | Имя | Дата рождения, ширина колонок 3/15/15/12,
// разделители - строки из 50 дефисов.
func (g *Group) RenderTable() string {
	var b strings.Builder
	sep := strings.Repeat("-", 50)

	b.WriteString(sep + "\n")
	b.WriteString(fmt.Sprintf("%-3s | %-15s | %-15s | %-12s\n", "№", "Фамилия", "Имя", "Дата рождения"))
	b.WriteString(sep + "\n")
	for i, student := range g.Students {
		b.WriteString(fmt.Sprintf("%-3d | %-15s | %-15s | %-12s\n",
			i+1, student.LastName, student.FirstName, student.BirthDate))
	}
	b.WriteString(sep + "\n")

	return b.String()
}
