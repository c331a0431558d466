package csvline

import (
	"errors"
	"testing"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields []string
		want   string
	}{
		{
			name:   "basic",
			fields: []string{"a", "b", "c"},
			want:   "a,b,c",
		},
		{
			name:   "singleEmptyField",
			fields: []string{""},
			want:   "",
		},
		{
			name:   "emptyFields",
			fields: []string{"", "b", ""},
			want:   ",b,",
		},
		{
			name:   "loneQuote",
			fields: []string{"\""},
			want:   "\"\"\"\"",
		},
		{
			name:   "commaForcesQuote",
			fields: []string{","},
			want:   "\",\"",
		},
		{
			name:   "crlfForcesQuote",
			fields: []string{"\r\n"},
			want:   "\"\r\n\"",
		},
		{
			name:   "bareCarriageReturn",
			fields: []string{"a\rb"},
			want:   "\"a\rb\"",
		},
		{
			name:   "quoteEscaping",
			fields: []string{"he said \"hello\"", "plain"},
			want:   "\"he said \"\"hello\"\"\",plain",
		},
		{
			name:   "quoteInsideSpaces",
			fields: []string{" \" "},
			want:   "\" \"\" \"",
		},
		{
			name:   "commaInsideSpaces",
			fields: []string{" , "},
			want:   "\" , \"",
		},
		{
			name:   "whitespaceVerbatim",
			fields: []string{" ", "\t", "   ", " \t "},
			want:   " ,\t,   , \t ",
		},
		{
			name:   "multibyte",
			fields: []string{"あ", "い,う"},
			want:   "あ,\"い,う\"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok, err := Join(tc.fields)
			if err != nil {
				t.Fatalf("Join() error = %v", err)
			}
			if !ok {
				t.Fatalf("Join() ok = false, want true")
			}
			if got != tc.want {
				t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, tc.want)
			}
		})
	}
}

func TestJoinNoRecord(t *testing.T) {
	t.Parallel()

	line, ok, err := Join([]string{})
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if ok || line != "" {
		t.Fatalf("Join([]) = %q, %v; want no record", line, ok)
	}

	line, ok, err = Join([]string{""})
	if err != nil || !ok || line != "" {
		t.Fatalf("Join([\"\"]) = %q, %v, %v; want empty line", line, ok, err)
	}
}

func TestJoinNil(t *testing.T) {
	t.Parallel()

	if _, _, err := Join(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Join(nil) error = %v, want ErrInvalidArgument", err)
	}
}

func TestAppendJoin(t *testing.T) {
	t.Parallel()

	dst := []byte("prefix:")
	dst = AppendJoin(dst, []string{"a", "b\"c"})
	if got, want := string(dst), "prefix:a,\"b\"\"c\""; got != want {
		t.Fatalf("AppendJoin() = %q, want %q", got, want)
	}

	if got := AppendJoin(nil, nil); len(got) != 0 {
		t.Fatalf("AppendJoin(nil, nil) = %q, want empty", got)
	}
}
