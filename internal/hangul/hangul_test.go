package hangul

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsSyllableRejectsNonHangul(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"\t\n",
		"hello",
		"hello world",
		"12345",
		"!@#$%",
		"...",
		"ㄱㄴㄷ",   // bare jamo, not syllables
		"ㅏㅓㅗ",   // bare vowels
		"カタカナ",  // Japanese
		"中文字符",  // Chinese
		"héllo", // accented latin
	}

	for _, input := range cases {
		assert.False(t, ContainsSyllable(input), "input: %q", input)
	}
}

func TestContainsSyllableAcceptsAnyHangulSyllable(t *testing.T) {
	cases := []string{
		"바다",
		"가",    // first syllable of the block
		"힣",    // last syllable of the block
		"hello바",
		"바hello",
		"123바다456",
		"바 다",
		"  사랑  ",
		"사랑!",
		"ㄱ바",   // jamo plus one real syllable
	}

	for _, input := range cases {
		assert.True(t, ContainsSyllable(input), "input: %q", input)
	}
}

func TestSyllables(t *testing.T) {
	assert.Equal(t, []string{"바", "다"}, Syllables("바다"))
	assert.Equal(t, []string{"바", "다"}, Syllables("  바다  "))
	assert.Equal(t, []string{"바", "다"}, Syllables("바1다!"))
	assert.Nil(t, Syllables("abc"))
	assert.Nil(t, Syllables(""))
}
