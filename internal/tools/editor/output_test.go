package editor

import "testing"

func TestExtractLastJSONLine(t *testing.T) {
	output := "loading assets\n" +
		`{"status": "success", "result": {"a": 1}}` + "\n"

	resp, ok := extractLastJSONLine(output)
	if !ok {
		t.Fatal("expected a parsed result")
	}
	if !resp.IsSuccess() || resp.Result["a"] != float64(1) {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestExtractLastJSONLineTakesLast(t *testing.T) {
	output := `{"status": "success", "result": {"step": 1}}` + "\n" +
		"more work\n" +
		`{"status": "success", "result": {"step": 2}}` + "\n"

	resp, ok := extractLastJSONLine(output)
	if !ok {
		t.Fatal("expected a parsed result")
	}
	if resp.Result["step"] != float64(2) {
		t.Errorf("expected last JSON line to win, got %v", resp.Result)
	}
}

func TestExtractLastJSONLineSkipsUntagged(t *testing.T) {
	output := `{"status": "error", "error": "boom"}` + "\n" +
		`{"debug": "not a result"}` + "\n"

	resp, ok := extractLastJSONLine(output)
	if !ok {
		t.Fatal("expected the tagged line to be found")
	}
	if resp.IsSuccess() || resp.Error != "boom" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestExtractLastJSONLineNonstandardStatus(t *testing.T) {
	// Any status key marks the verdict line, even a value the canonical
	// contract does not name; normalization then treats it like an untagged
	// legacy object.
	resp, ok := extractLastJSONLine(`{"status": "partial", "done": 3}` + "\n")
	if !ok {
		t.Fatal("expected status-tagged line to be accepted")
	}
	if !resp.IsSuccess() || resp.Result["done"] != float64(3) {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestExtractLastJSONLineNoMatch(t *testing.T) {
	for _, output := range []string{
		"",
		"plain text only\n",
		`{"broken": json` + "\n",
		`{"debug": "no status key"}` + "\n",
	} {
		if _, ok := extractLastJSONLine(output); ok {
			t.Errorf("expected no result for %q", output)
		}
	}
}
