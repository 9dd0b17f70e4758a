package markup

import (
	"strings"
	"testing"
)

func BenchmarkParseAndTokenize(b *testing.B) {
	input := strings.Repeat(`# Quarterly report

This is **bold** text with *emphasis* and ***both***.

> A quoted remark with `+"`code`"+`.

- First point
- Second point

1. Step one
2. Step two

---
`, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc := Parse(input)
		for _, block := range doc.Blocks {
			_ = Tokenize(block.Text)
		}
	}
}
