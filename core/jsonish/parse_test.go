package jsonish

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

// mustParseOne parses text with the given options and fails the test on error.
func mustParseOne(t *testing.T, text string, opts Options) Value {
	t.Helper()
	v, err := ParseOne(text, opts)
	if err != nil {
		t.Fatalf("ParseOne(%q) error: %v", text, err)
	}
	return v
}

func TestParseValidJSONMatchesStdlib(t *testing.T) {
	docs := []string{
		`{"a":1,"b":[1,2,3],"c":{"d":true,"e":null},"f":"text","g":-2.5}`,
		`[true,false,null,"x",3]`,
		`{"nested":[{"k":"v"},{"k2":[1,2]}]}`,
		`{}`,
		`[]`,
		`{"s":"brackets [ and { inside strings","t":"colons : too"}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			got := mustParseOne(t, doc, DefaultOptions())
			encoded, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			var want bytes.Buffer
			if err := json.Compact(&want, []byte(doc)); err != nil {
				t.Fatalf("Compact() error: %v", err)
			}
			if string(encoded) != want.String() {
				t.Errorf("parsed %s, want %s", encoded, want.String())
			}
		})
	}
}

func TestParseBasicObject(t *testing.T) {
	v := mustParseOne(t, `{"a": 1, "b": [1,2,3]}`, DefaultOptions())
	obj, ok := v.Object()
	if !ok {
		t.Fatalf("kind = %v, want object", v.Kind())
	}
	a, _ := obj.Get("a")
	if n, ok := a.Int(); !ok || n != 1 {
		t.Errorf("a = %v, want int 1", a)
	}
	b, _ := obj.Get("b")
	if b.String() != "[1, 2, 3]" {
		t.Errorf("b = %v, want [1, 2, 3]", b)
	}
}

func TestParseSetLiteral(t *testing.T) {
	v := mustParseOne(t, `{1,2,2,3}`, DefaultOptions())
	set, ok := v.Set()
	if !ok {
		t.Fatalf("kind = %v, want set", v.Kind())
	}
	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", set.Len())
	}
	for _, want := range []int64{1, 2, 3} {
		if !set.Contains(IntValue(want)) {
			t.Errorf("set missing %d", want)
		}
	}
}

func TestParseTupleLiteral(t *testing.T) {
	v := mustParseOne(t, `("a", 1, true)`, DefaultOptions())
	if v.Kind() != KindTuple {
		t.Fatalf("kind = %v, want tuple", v.Kind())
	}
	if v.String() != `("a", 1, true)` {
		t.Errorf("tuple = %v, want (\"a\", 1, true)", v)
	}
}

func TestParseSingleQuotedKey(t *testing.T) {
	v := mustParseOne(t, `{'a': "it's fine"}`, DefaultOptions())
	obj, ok := v.Object()
	if !ok {
		t.Fatalf("kind = %v, want object", v.Kind())
	}
	a, found := obj.Get("a")
	if !found {
		t.Fatalf("key a missing; keys = %v", obj.Keys())
	}
	if text, _ := a.Text(); text != "it's fine" {
		t.Errorf("a = %q, want %q", text, "it's fine")
	}
}

func TestParseTrailingComma(t *testing.T) {
	v := mustParseOne(t, `[1,2,3,]`, DefaultOptions())
	if v.String() != "[1, 2, 3]" {
		t.Errorf("parsed %v, want [1, 2, 3]", v)
	}
}

func TestParseMultipleCandidates(t *testing.T) {
	text := `The model said {"a": 1} and later added {"b": 2} before stopping.`

	results, err := Parse(text, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].String() != `{"a": 1}` || results[1].String() != `{"b": 2}` {
		t.Errorf("results = %v, %v; want left-to-right candidates", results[0], results[1])
	}

	opts := DefaultOptions()
	opts.ExtractMultiple = false
	only, err := Parse(text, opts)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(only) != 1 || only[0].String() != `{"a": 1}` {
		t.Errorf("single extraction = %v, want first candidate only", only)
	}
}

func TestParseCandidateFallsBackToRawText(t *testing.T) {
	// The first candidate is balanced for braces but its interior cannot be
	// parsed or cleaned; it must come back as raw text while the second
	// candidate still parses structurally.
	results, err := Parse(`{[} and {"a": 1}`, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if text, ok := results[0].Text(); !ok || text != "{[}" {
		t.Errorf("first result = %v, want raw string {[}", results[0])
	}
	if results[1].String() != `{"a": 1}` {
		t.Errorf("second result = %v, want object", results[1])
	}
}

func TestParseBrokenElementDegradesToRawText(t *testing.T) {
	// The value of "a" holds an unbalanced bracket region; the element
	// degrades to its raw text while keys before and after survive.
	v := mustParseOne(t, `{"a": {"b": [1, 2}, "c": 3}`, DefaultOptions())
	obj, ok := v.Object()
	if !ok {
		t.Fatalf("kind = %v, want object", v.Kind())
	}
	a, _ := obj.Get("a")
	nested, ok := a.Object()
	if !ok {
		t.Fatalf("a kind = %v, want object", a.Kind())
	}
	b, _ := nested.Get("b")
	if text, ok := b.Text(); !ok || text != "[1, 2" {
		t.Errorf("b = %v, want raw string \"[1, 2\"", b)
	}
	c, found := obj.Get("c")
	if !found {
		t.Fatal("key c lost after broken element")
	}
	if n, _ := c.Int(); n != 3 {
		t.Errorf("c = %v, want 3", c)
	}
}

func TestParseUnicodeEscapes(t *testing.T) {
	v := mustParseOne(t, `{"a": "\u0041", "b": "\uZZZZ"}`, DefaultOptions())
	obj, _ := v.Object()
	a, _ := obj.Get("a")
	if text, _ := a.Text(); text != "A" {
		t.Errorf("a = %q, want %q", text, "A")
	}
	b, _ := obj.Get("b")
	if text, _ := b.Text(); text != `\uZZZZ` {
		t.Errorf("b = %q, want %q", text, `\uZZZZ`)
	}
}

func TestParseQuotedStructure(t *testing.T) {
	text := `{"data": "{\"x\":1}"}`

	v := mustParseOne(t, text, DefaultOptions())
	obj, _ := v.Object()
	data, _ := obj.Get("data")
	inner, ok := data.Object()
	if !ok {
		t.Fatalf("data kind = %v, want object", data.Kind())
	}
	x, _ := inner.Get("x")
	if n, _ := x.Int(); n != 1 {
		t.Errorf("x = %v, want 1", x)
	}

	opts := DefaultOptions()
	opts.ParseQuotedStructures = false
	v = mustParseOne(t, text, opts)
	obj, _ = v.Object()
	data, _ = obj.Get("data")
	if text, ok := data.Text(); !ok || text != `{"x":1}` {
		t.Errorf("data = %v, want literal string with quoted structure disabled", data)
	}
}

func TestParseTolerantEscapesInnerQuotes(t *testing.T) {
	// Unescaped quotes inside a bracketed fragment embedded in a string: the
	// tolerant escaper repairs them, and the repaired string then parses as a
	// quoted tuple.
	v := mustParseOne(t, `{"a": "("A","B")"}`, DefaultOptions())
	obj, _ := v.Object()
	a, _ := obj.Get("a")
	if a.Kind() != KindTuple {
		t.Fatalf("a kind = %v, want tuple", a.Kind())
	}
	if a.String() != `("A", "B")` {
		t.Errorf("a = %v, want (\"A\", \"B\")", a)
	}
}

func TestParseTolerantKeepsValidJSONWithBracketInString(t *testing.T) {
	// The escaper heuristic would corrupt this valid document; the parser
	// must fall back to the untouched text.
	v := mustParseOne(t, `{"a": "x[", "b": 2}`, DefaultOptions())
	obj, ok := v.Object()
	if !ok {
		t.Fatalf("kind = %v, want object", v.Kind())
	}
	a, _ := obj.Get("a")
	if text, _ := a.Text(); text != "x[" {
		t.Errorf("a = %q, want %q", text, "x[")
	}
	b, _ := obj.Get("b")
	if n, _ := b.Int(); n != 2 {
		t.Errorf("b = %v, want 2", b)
	}
}

func TestParseStrictJSON(t *testing.T) {
	opts := DefaultOptions()
	opts.StrictJSON = true

	results, err := Parse(`prefix (1, 2) then {"a": 1}`, opts)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(results) != 1 || results[0].String() != `{"a": 1}` {
		t.Errorf("results = %v, want only the object in strict mode", results)
	}

	if _, err := Parse(`(1, 2)`, opts); !errors.Is(err, ErrInvalidJSONLike) {
		t.Errorf("Parse() error = %v, want ErrInvalidJSONLike", err)
	}

	// Strict mode never produces sets: brace content without colons parses
	// as an object of bare keys.
	v := mustParseOne(t, `{1, 2}`, opts)
	if v.Kind() != KindObject {
		t.Errorf("kind = %v, want object in strict mode", v.Kind())
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t"} {
		v := mustParseOne(t, text, DefaultOptions())
		obj, ok := v.Object()
		if !ok {
			t.Fatalf("kind = %v, want empty object", v.Kind())
		}
		if obj.Len() != 0 {
			t.Errorf("Len() = %d, want 0", obj.Len())
		}
	}
}

func TestParseNoStructureFails(t *testing.T) {
	_, err := Parse("there is nothing structured here", DefaultOptions())
	if !errors.Is(err, ErrInvalidJSONLike) {
		t.Errorf("Parse() error = %v, want ErrInvalidJSONLike", err)
	}
}

func TestParseRecoversAfterFalseOpener(t *testing.T) {
	// The first brace never closes; scanning must advance and still find the
	// later balanced object.
	results, err := Parse(`{oops and {"a": 2}`, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].String() != `{"a": 2}` {
		t.Errorf("result = %v, want {\"a\": 2}", results[0])
	}
}

func TestParseAny(t *testing.T) {
	t.Run("map input", func(t *testing.T) {
		results, err := ParseAny(map[string]int{"a": 1}, DefaultOptions())
		if err != nil {
			t.Fatalf("ParseAny() error: %v", err)
		}
		if results[0].String() != `{"a": 1}` {
			t.Errorf("result = %v, want {\"a\": 1}", results[0])
		}
	})

	t.Run("byte slice input", func(t *testing.T) {
		results, err := ParseAny([]byte(`[1, 2]`), DefaultOptions())
		if err != nil {
			t.Fatalf("ParseAny() error: %v", err)
		}
		if results[0].String() != "[1, 2]" {
			t.Errorf("result = %v, want [1, 2]", results[0])
		}
	})

	t.Run("nil input", func(t *testing.T) {
		if _, err := ParseAny(nil, DefaultOptions()); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseAny(nil) error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("unencodable input", func(t *testing.T) {
		if _, err := ParseAny(make(chan int), DefaultOptions()); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseAny(chan) error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestParseDuplicateKeysLastWriteWins(t *testing.T) {
	v := mustParseOne(t, `{"a": 1, "b": 2, "a": 3}`, DefaultOptions())
	obj, _ := v.Object()
	if obj.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", obj.Len())
	}
	a, _ := obj.Get("a")
	if n, _ := a.Int(); n != 3 {
		t.Errorf("a = %v, want 3", a)
	}
	if keys := obj.Keys(); keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v, want original positions", keys)
	}
}

func TestParseSingleQuotedValue(t *testing.T) {
	v := mustParseOne(t, `{"mode": 'fast'}`, DefaultOptions())
	obj, _ := v.Object()
	mode, found := obj.Get("mode")
	if !found {
		t.Fatalf("mode missing; keys = %v", obj.Keys())
	}
	if text, _ := mode.Text(); text != "fast" {
		t.Errorf("mode = %q, want %q", text, "fast")
	}
}
