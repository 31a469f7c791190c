package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"jackfront/internal/diag"
	"jackfront/internal/lexer"
	"jackfront/internal/source"
)

func TestJSONOutput(t *testing.T) {
	bag, fs := singleDiag("A.jack", "class A {\n  let x = 32768;\n}\n", diag.LexIntegerOutOfRange, 20, 25,
		"integer constant 32768 is out of range [0, 32767]")

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "LEX1004" || d.Severity != "ERROR" || d.Phase != "lexical error" {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	if d.Location.File != "A.jack" || d.Location.StartLine != 2 || d.Location.StartCol != 11 {
		t.Errorf("unexpected location %+v", d.Location)
	}
}

func TestJSONMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("M.jack", []byte("abc"))
	bag := diag.NewBag(0)
	for i := range uint32(3) {
		d := diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: i, End: i + 1}, "x")
		bag.Add(&d)
	}
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("count = %d", out.Count)
	}
}

func TestSarif(t *testing.T) {
	bag, fs := singleDiag("/home/user/project/B.jack", "class B { $ }", diag.LexUnknownChar, 10, 11, "unexpected character '$'")
	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "jackfront", ToolVersion: "dev", InvocationArgs: []string{"B.jack"}}); err != nil {
		t.Fatal(err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatal(err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("bad log %+v", log)
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "jackfront" || len(run.Tool.Driver.Rules) != 1 || run.Tool.Driver.Rules[0].ID != "LEX1001" {
		t.Errorf("driver = %+v", run.Tool.Driver)
	}
	r := run.Results[0]
	if r.Level != "error" || r.Locations[0].PhysicalLocation.ArtifactLocation.URI != "B.jack" ||
		r.Locations[0].PhysicalLocation.Region.StartColumn != 11 {
		t.Errorf("result = %+v", r)
	}
	if run.Invocations[0].ExecutionSuccessful {
		t.Error("run with errors must not be successful")
	}
	if _, err := uuid.Parse(run.AutomationDetails.GUID); err != nil {
		t.Errorf("random run guid %q: %v", run.AutomationDetails.GUID, err)
	}
}

func TestSarifFixedRunID(t *testing.T) {
	bag, fs := singleDiag("B.jack", "class B { $ }", diag.LexUnknownChar, 10, 11, "unexpected character '$'")
	id := uuid.MustParse("6f1c3d2e-8a4b-4c5d-9e6f-7a8b9c0d1e2f")
	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "jackfront", RunID: id}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"guid": "6f1c3d2e-8a4b-4c5d-9e6f-7a8b9c0d1e2f"`) {
		t.Fatalf("guid missing:\n%s", buf.String())
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("T.jack", []byte("let x = 7;")))
	toks, err := lexer.Collect(lexer.New(file, lexer.Options{}))
	if err != nil {
		t.Fatal(err)
	}

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(pretty.String()), "\n")
	if len(lines) != 5 || !strings.Contains(lines[3], `integerConstant "7" at 1:9-1:10`) {
		t.Fatalf("pretty tokens:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks, fs); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 5 || out[3].Value == nil || *out[3].Value != 7 || out[0].Value != nil {
		t.Fatalf("json tokens: %s", js.String())
	}
}
