package security

import "testing"

func TestContentSanitizer_StripsTags(t *testing.T) {
	s := NewContentSanitizer()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text passes through", "buy milk", "buy milk"},
		{"script removed", `<script>alert("x")</script>buy milk`, "buy milk"},
		{"tags stripped keeping text", "<b>buy</b> <i>milk</i>", "buy milk"},
		{"img removed", `<img src="https://example.com/x.png">note`, "note"},
		{"event handler removed", `<a href="#" onclick="steal()">link</a>`, "link"},
		{"empty input", "", ""},
		{"whitespace trimmed", "  buy milk  ", "buy milk"},
		{"ampersand preserved", "milk & eggs", "milk & eggs"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Sanitize(tc.input)
			if got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestContentSanitizer_Idempotent(t *testing.T) {
	s := NewContentSanitizer()

	input := `<script>x</script>hello & <b>world</b>`
	once := s.Sanitize(input)
	twice := s.Sanitize(once)

	if once != twice {
		t.Errorf("Sanitize is not idempotent: %q -> %q", once, twice)
	}
}
