package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Форматы даты, допустимые во входных значениях.
const (
	tokenLayout       = "20060102"   // каноническая форма yyyymmdd
	tokenLayoutDashed = "2006-01-02" // форма с дефисами, удобная для заголовков
)

// Token представляет версию API в виде даты, закодированной целым числом yyyymmdd.
// Например, 20130101 соответствует 1 января 2013 года. Токены сравниваются
// обычными операторами <, > и ==.
type Token int

// Кастомные ошибки разбора токена.
var (
	ErrInvalidToken = errors.New("некорректный токен версии")
)

// NewToken создает токен версии из даты (время суток и часовой пояс отбрасываются).
func NewToken(t time.Time) Token {
	y, m, d := t.Date()
	return Token(y*10000 + int(m)*100 + d)
}

// ParseToken разбирает строковое представление токена версии.
// Допустимы формы "20130101" и "2013-01-01". Значение должно быть
// реальной календарной датой: "20131301" будет отвергнуто.
func ParseToken(s string) (Token, error) {
	layout := tokenLayout
	if strings.Contains(s, "-") {
		layout = tokenLayoutDashed
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, s)
	}
	return NewToken(t), nil
}

// Time возвращает дату (UTC, полночь), соответствующую токену версии.
func (t Token) Time() time.Time {
	return time.Date(int(t)/10000, time.Month(int(t)/100%100), int(t)%100, 0, 0, 0, 0, time.UTC)
}

// String возвращает каноническую форму yyyymmdd.
func (t Token) String() string {
	return strconv.Itoa(int(t))
}
