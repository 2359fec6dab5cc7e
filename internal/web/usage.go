package web

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
)

// Markdown source of the 사용법 section. Converted once at server startup.
const usageMarkdown = `1. 아래 입력란에 한국어 단어를 입력하세요
2. '행시 생성하기' 버튼을 클릭하세요
3. AI가 각 글자로 시작하는 아름다운 행시를 만들어드립니다

**예시:**

- 입력: 바다
- 출력: [바]람이 불어오는 / [다]정한 마음으로
`

func renderUsage() (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(usageMarkdown), &buf); err != nil {
		return "", err
	}
	// goldmark escapes raw HTML by default, so the output is safe to inline.
	return template.HTML(buf.String()), nil
}
