// Package prompt renders the instruction prompts sent to the text-generation
// providers. All prompts are deterministic string templates.
package prompt

import (
	"fmt"
	"strings"
)

// BuildAcrostic renders the 행시 instruction prompt for word. The word is
// trimmed and interpolated twice: once inside rule 1 and once in the labeled
// 단어 field.
func BuildAcrostic(word string) string {
	clean := strings.TrimSpace(word)

	return fmt.Sprintf(`당신은 한국어 행시 전문가입니다. 주어진 단어의 각 글자로 시작하는 행시를 만들어주세요.

규칙:
1. 단어 '%s'의 각 글자로 시작하는 행시를 만드세요
2. 각 행은 해당 글자를 대괄호로 감싸서 시작해야 합니다 (예: [바], [다])
3. 각 행은 의미있고 아름다운 문장이어야 합니다
4. 전체적으로 통일감 있는 주제나 이야기가 있으면 좋습니다
5. 각 행은 10-20자 정도의 적당한 길이로 만드세요

단어: %s

행시를 만들어주세요:`, clean, clean)
}
