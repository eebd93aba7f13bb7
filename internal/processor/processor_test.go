package processor

import (
	"bytes"
	"strings"
	"testing"
)

const testGUID = "79f7005c-7ced-5357-bf24-a22518251c1b"

func TestProcessor_Patch(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		placeholder string
		replacement string
		want        string
		wantCount   int
	}{
		{
			name:        "single occurrence",
			doc:         `<fmiModelDescription guid="PLACEHOLDER">`,
			placeholder: "PLACEHOLDER",
			want:        `<fmiModelDescription guid="` + testGUID + `">`,
			wantCount:   1,
		},
		{
			name:        "multiple occurrences",
			doc:         "@GUID@ and @GUID@\n@GUID@",
			placeholder: "@GUID@",
			want:        testGUID + " and " + testGUID + "\n" + testGUID,
			wantCount:   3,
		},
		{
			name:        "not present",
			doc:         "<a/>",
			placeholder: "@GUID@",
			want:        "<a/>",
			wantCount:   0,
		},
		{
			name:        "case sensitive",
			doc:         "placeholder",
			placeholder: "PLACEHOLDER",
			want:        "placeholder",
			wantCount:   0,
		},
		{
			name:        "non-overlapping leftmost first",
			doc:         "aaaa",
			placeholder: "aa",
			replacement: "X",
			want:        "XX",
			wantCount:   2,
		},
		{
			name:        "odd overlap leaves remainder",
			doc:         "aaa",
			placeholder: "aa",
			replacement: "X",
			want:        "Xa",
			wantCount:   1,
		},
		{
			name:        "regex characters are literal",
			doc:         "x.*y x.*y",
			placeholder: ".*",
			replacement: "X",
			want:        "xXy xXy",
			wantCount:   2,
		},
		{
			name:        "empty placeholder matches nothing",
			doc:         "abc",
			placeholder: "",
			want:        "abc",
			wantCount:   0,
		},
		{
			name:        "empty document",
			doc:         "",
			placeholder: "X",
			want:        "",
			wantCount:   0,
		},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacement := tt.replacement
			if replacement == "" {
				replacement = testGUID
			}

			got, n := p.Patch([]byte(tt.doc), tt.placeholder, replacement)
			if string(got) != tt.want {
				t.Errorf("Patch() = %q, want %q", got, tt.want)
			}
			if n != tt.wantCount {
				t.Errorf("Patch() count = %d, want %d", n, tt.wantCount)
			}
		})
	}
}

func TestProcessor_PatchPreservesBytes(t *testing.T) {
	doc := []byte("\xff\xfe<a guid=\"@G@\"/>\r\n\x00")
	want := []byte("\xff\xfe<a guid=\"" + testGUID + "\"/>\r\n\x00")

	got, n := New().Patch(doc, "@G@", testGUID)
	if !bytes.Equal(got, want) {
		t.Errorf("Patch() = %q, want %q", got, want)
	}
	if n != 1 {
		t.Errorf("Patch() count = %d, want 1", n)
	}
}

func TestProcessor_PatchReturnsCopy(t *testing.T) {
	doc := []byte("no placeholder here")

	got, _ := New().Patch(doc, "@G@", testGUID)
	got[0] = 'N'

	if doc[0] != 'n' {
		t.Error("Patch() result should not alias the input")
	}
}

func TestProcessor_Header(t *testing.T) {
	got := string(New().Header("MY_MACRO", testGUID))
	want := "#ifndef MY_MACRO\n" +
		"#define MY_MACRO \"" + testGUID + "\"\n" +
		"#endif\n"

	if got != want {
		t.Errorf("Header() = %q, want %q", got, want)
	}
}

func TestProcessor_HeaderLines(t *testing.T) {
	for _, name := range []string{"FMU_GUID", "guid", "_X1"} {
		t.Run(name, func(t *testing.T) {
			out := string(New().Header(name, testGUID))
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

			if len(lines) != 3 {
				t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
			}
			if lines[0] != "#ifndef "+name {
				t.Errorf("line 1 = %q", lines[0])
			}
			if lines[1] != "#define "+name+` "`+testGUID+`"` {
				t.Errorf("line 2 = %q", lines[1])
			}
			if lines[2] != "#endif" {
				t.Errorf("line 3 = %q", lines[2])
			}
		})
	}
}
