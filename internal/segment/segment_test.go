package segment

import (
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestNormalize_DeletesDisallowedRunes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello, world!", "helloworld"},
		{"Hello hello WORLD world", "HellohelloWORLDworld"},
		{"你好，世界！", "你好世界"},
		{"foo-bar_baz 42", "foobarbaz42"},
		{"Ünïcode résumé", "ncodersum"},
		{"\t\n  ", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_CJKBlockBoundaries(t *testing.T) {
	// U+4E00 and U+9FA5 bound the allowed ideograph range inclusively.
	if got := Normalize("一龥"); got != "一龥" {
		t.Fatalf("expected boundary ideographs kept, got %q", got)
	}
	// U+4DFF and U+9FA6 sit just outside and must be deleted.
	if got := Normalize("䷿龦"); got != "" {
		t.Fatalf("expected out-of-range runes deleted, got %q", got)
	}
	// Other CJK scripts (kana here) are outside the counted alphabet.
	if got := Normalize("こんにちは"); got != "" {
		t.Fatalf("expected kana deleted, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello hello WORLD world 世界 世界 测试",
		"a, b; c.",
		"已经规范化的Text123",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNormalize_DeletionConcatenates(t *testing.T) {
	// Latin words separated only by removed punctuation merge into one run.
	if got := Normalize("word1, word2"); got != "word1word2" {
		t.Fatalf("expected concatenation, got %q", got)
	}
}

var (
	tokOnce sync.Once
	tok     *GseTokenizer
	tokErr  error
)

func loadTokenizer(t *testing.T) *GseTokenizer {
	t.Helper()
	tokOnce.Do(func() {
		tok, tokErr = NewGseTokenizer()
	})
	if tokErr != nil {
		t.Fatalf("loading segmenter dictionary: %v", tokErr)
	}
	return tok
}

func TestGseTokenizer_CJKFixture(t *testing.T) {
	// Pins the reference segmenter's output on a small fixture so counting
	// behavior stays reproducible across dictionary upgrades.
	tk := loadTokenizer(t)

	got := tk.Segment("世界世界测试")
	want := []string{"世界", "世界", "测试"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segment mismatch: got %v want %v", got, want)
	}
}

func TestGseTokenizer_LatinRun(t *testing.T) {
	tk := loadTokenizer(t)

	got := tk.Segment("hello")
	if len(got) == 0 || strings.Join(got, "") != "hello" {
		t.Fatalf("expected latin run preserved, got %v", got)
	}
}

func TestGseTokenizer_EmptyInput(t *testing.T) {
	tk := loadTokenizer(t)
	if got := tk.Segment(""); len(got) != 0 {
		t.Fatalf("expected no tokens for empty input, got %v", got)
	}
}

func TestTokenize_NormalizesBeforeSegmenting(t *testing.T) {
	tk := loadTokenizer(t)

	got := Tokenize(tk, "世界。世界！测试")
	want := []string{"世界", "世界", "测试"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokenize mismatch: got %v want %v", got, want)
	}
}
