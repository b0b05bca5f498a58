package chart

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"sitetwin/internal/model"
)

func fp(v float64) *float64 { return &v }

func tp(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func decode(t *testing.T, s *Spec) map[string]any {
	t.Helper()
	js, err := s.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(js), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestSCurveSkipsUndatedRows(t *testing.T) {
	t.Parallel()

	spec := SCurve([]model.SCurvePoint{
		{Date: tp(2025, 2, 1), Planned: fp(1000), Actual: fp(1100)},
		{Date: nil, Planned: fp(50)},
	})
	if got := len(spec.Data.Values); got != 2 {
		t.Fatalf("len(values)=%d, want 2 (one date, two series)", got)
	}
	if spec.Data.Values[0]["date"] != "2025-02-01" {
		t.Fatalf("date=%v", spec.Data.Values[0]["date"])
	}

	out := decode(t, spec)
	if out["$schema"] != schemaURL {
		t.Fatalf("$schema=%v", out["$schema"])
	}
	if mark := out["mark"].(map[string]any); mark["type"] != "line" {
		t.Fatalf("mark=%v", mark)
	}
}

func TestDelaysKeepsNullDays(t *testing.T) {
	t.Parallel()

	three := 3
	spec := Delays([]model.ActivityDelay{
		{Activity: "Footing", Days: &three},
		{Activity: "Roof"},
	})
	if spec.Data.Values[0]["days"] != 3 {
		t.Fatalf("days=%v, want 3", spec.Data.Values[0]["days"])
	}
	if spec.Data.Values[1]["days"] != nil {
		t.Fatalf("days=%v, want nil", spec.Data.Values[1]["days"])
	}
	order, ok := spec.Encoding.X.Sort.([]string)
	if !ok || len(order) != 2 || order[0] != "Footing" {
		t.Fatalf("sort=%v, want activity order", spec.Encoding.X.Sort)
	}
}

func TestIndexScatterNeedsBothIndices(t *testing.T) {
	t.Parallel()

	spec := IndexScatter([]model.IndexPoint{
		{Activity: "A", SPI: fp(1.1), CPI: fp(0.9)},
		{Activity: "B", SPI: fp(1.0)},
	})
	if len(spec.Data.Values) != 1 {
		t.Fatalf("len(values)=%d, want 1", len(spec.Data.Values))
	}
}

func TestGantt(t *testing.T) {
	t.Parallel()

	bars := []model.GanttBar{
		{Activity: "Foundation Complete", Start: tp(2025, 2, 15), End: *tp(2025, 2, 14), Actual: tp(2025, 2, 14), Completed: true},
		{Activity: "Roof Installation", Start: tp(2025, 4, 1), End: *tp(2025, 4, 20)},
	}
	spec := Gantt(bars)
	out := decode(t, spec)

	values := out["data"].(map[string]any)["values"].([]any)
	if len(values) != 2 {
		t.Fatalf("len(values)=%d, want 2", len(values))
	}
	pending := values[1].(map[string]any)
	if pending["Actual Date"] != nil || pending["End"] != "2025-04-20" {
		t.Fatalf("pending row=%v", pending)
	}

	color := out["encoding"].(map[string]any)["color"].(map[string]any)
	if color["value"] != "#E76F51" {
		t.Fatalf("pending color=%v", color["value"])
	}
	cond := color["condition"].(map[string]any)
	if cond["value"] != "#264653" || !strings.Contains(cond["test"].(string), "Actual Date") {
		t.Fatalf("condition=%v", cond)
	}
	if spec.Height != 350 {
		t.Fatalf("Height=%d, want 350", spec.Height)
	}
}

func TestFinancialGroupsSeries(t *testing.T) {
	t.Parallel()

	spec := Financial([]model.FinancialRow{{Category: "Transport", Planned: 30, Spent: 20}})
	if len(spec.Data.Values) != 2 {
		t.Fatalf("len(values)=%d, want 2", len(spec.Data.Values))
	}
	if spec.Encoding.XOffset == nil || spec.Encoding.XOffset.Field != "series" {
		t.Fatalf("XOffset=%+v, want grouped by series", spec.Encoding.XOffset)
	}
}

func TestJSONEscapesScriptClose(t *testing.T) {
	t.Parallel()

	spec := Delays([]model.ActivityDelay{{Activity: "</script><b>x"}})
	js, err := spec.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if strings.Contains(string(js), "</script>") {
		t.Fatalf("spec JSON must not contain a raw </script>: %s", js)
	}
}
