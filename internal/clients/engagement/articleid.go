package engagement

import "encoding/base64"

// articleIDMaxLen — длина усечения идентификатора.
const articleIDMaxLen = 100

// ArticleID — детерминированный, безопасный для URL/ФС идентификатор статьи
// по её каноническому URL (не по заголовку): base64 от URL, очищенный от
// не-алфанумерики и усечённый до 100 символов.
//
// Инвариант: один и тот же URL всегда даёт один и тот же id. Коллизии после
// усечения теоретически возможны и принимаются без коррекции.
func ArticleID(articleURL string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(articleURL))

	buf := make([]byte, 0, len(encoded))
	for i := 0; i < len(encoded); i++ {
		ch := encoded[i]
		if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' {
			buf = append(buf, ch)
		}
	}

	if len(buf) > articleIDMaxLen {
		buf = buf[:articleIDMaxLen]
	}

	return string(buf)
}
