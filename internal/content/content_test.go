package content

import (
	"reflect"
	"testing"
)

func TestDecode_Empty(t *testing.T) {
	tree, err := Decode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree) != 0 {
		t.Errorf("tree = %v, want empty", tree)
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Fatal("expected error")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tree := map[string]any{
		"version": float64(3),
		"pages": []any{
			map[string]any{"componentFile": "abc"},
		},
	}
	data, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, tree) {
		t.Errorf("round trip = %v, want %v", got, tree)
	}
}

func TestMigrate(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want int
	}{
		{"nil tree", nil, CurrentVersion},
		{"missing version", map[string]any{}, CurrentVersion},
		{"older version", map[string]any{"version": float64(2)}, CurrentVersion},
		{"current version", map[string]any{"version": CurrentVersion}, CurrentVersion},
		{"newer version", map[string]any{"version": float64(9)}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Migrate(tt.in)
			if v := version(got); v != tt.want {
				t.Errorf("version = %d, want %d", v, tt.want)
			}
		})
	}
}

func TestPruneNulls(t *testing.T) {
	tree := map[string]any{
		"keep":   "x",
		"drop":   nil,
		"nested": map[string]any{"inner": nil, "ok": float64(1)},
		"seq": []any{
			map[string]any{"gone": nil},
			"scalar",
		},
	}
	got := PruneNulls(tree)

	if _, ok := got["drop"]; ok {
		t.Error("top-level null survived")
	}
	nested := got["nested"].(map[string]any)
	if _, ok := nested["inner"]; ok {
		t.Error("nested null survived")
	}
	if nested["ok"] != float64(1) {
		t.Error("non-null nested value lost")
	}
	first := got["seq"].([]any)[0].(map[string]any)
	if _, ok := first["gone"]; ok {
		t.Error("null inside sequence element survived")
	}
}
