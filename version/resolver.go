package version

import (
	"errors"
	"fmt"
	"sort"
)

// List — упорядоченный список всех версий API, когда-либо введенных сервером.
// Инвариант: список непустой и строго возрастает.
type List []Token

// Кастомные ошибки резолвера.
var (
	ErrEmptyList     = errors.New("список известных версий пуст")
	ErrNotIncreasing = errors.New("список известных версий должен строго возрастать")
)

// NewList создает список известных версий, проверяя инварианты:
// список непустой и строго возрастает.
func NewList(tokens ...Token) (List, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyList
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i] <= tokens[i-1] {
			return nil, fmt.Errorf("%w: %s после %s", ErrNotIncreasing, tokens[i], tokens[i-1])
		}
	}
	return List(tokens), nil
}

// Latest возвращает самую свежую известную версию.
func (l List) Latest() (Token, error) {
	if len(l) == 0 {
		return 0, ErrEmptyList
	}
	return l[len(l)-1], nil
}

// Contains сообщает, присутствует ли токен в списке.
func (l List) Contains(t Token) bool {
	i := sort.Search(len(l), func(i int) bool { return l[i] >= t })
	return i < len(l) && l[i] == t
}

// Resolve возвращает известную версию, по которой следует сформировать ответ.
//
// Если requested == nil (версия не запрошена), возвращается самая свежая
// известная версия. Иначе возвращается наибольшая известная версия, не
// превышающая запрошенную (floor-поиск бинарным поиском). Если запрошенная
// версия старше самой ранней известной, возвращается самая ранняя.
//
// Результат всегда является элементом списка; новые значения версий не
// изобретаются. Функция чистая, без побочных эффектов, и безопасна для
// конкурентных вызовов.
func (l List) Resolve(requested *Token) (Token, error) {
	if len(l) == 0 {
		return 0, ErrEmptyList
	}
	if requested == nil {
		return l[len(l)-1], nil
	}

	// Индекс первой известной версии, строго превышающей запрошенную.
	i := sort.Search(len(l), func(i int) bool { return l[i] > *requested })
	if i == 0 {
		// Запрошенная версия старше самой ранней известной.
		return l[0], nil
	}
	return l[i-1], nil
}
