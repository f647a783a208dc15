package repository

import (
	"context"
	"errors"

	"student-recordbook/internal/models"
)

// Ошибки загрузки. Причины различаются намеренно: пустая база,
// отсутствующая схема и прочие сбои хранилища - разные ситуации,
// и вызывающий код реагирует на них по-разному.
var (
	// ErrNoData - таблицы есть, но в students нет ни одной строки
	// (данные еще ни разу не сохранялись либо сохранена пустая группа)
	ErrNoData = errors.New("нет сохраненных данных")

	// ErrSchemaMissing - база открылась, но таблиц students/exams в ней нет
	// (новый либо чужой файл)
	ErrSchemaMissing = errors.New("схема базы отсутствует")
)

type GroupRepository interface {
	// Save полностью замещает содержимое базы текущим состоянием группы
	// в одной транзакции: создание схемы при необходимости, очистка
	// обеих таблиц, вставка студентов и их экзаменов в порядке группы.
	Save(ctx context.Context, group *models.Group) error

	// Load восстанавливает группу из базы: студенты в порядке их
	// идентификаторов (порядок вставки на момент последнего сохранения),
	// экзамены каждого студента - в сохраненном порядке.
	// Возвращает ErrNoData либо ErrSchemaMissing, остальные ошибки
	// хранилища пробрасываются обернутыми.
	Load(ctx context.Context) (*models.Group, error)
}
