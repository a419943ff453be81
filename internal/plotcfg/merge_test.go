package plotcfg

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		primary   Tree
		secondary Tree
		want      Tree
	}{
		{
			name:      "empty primary",
			primary:   Tree{},
			secondary: Tree{"a": 1},
			want:      Tree{"a": 1},
		},
		{
			name:      "empty secondary",
			primary:   Tree{"a": 1},
			secondary: Tree{},
			want:      Tree{"a": 1},
		},
		{
			name:      "nested merge",
			primary:   Tree{"a": Tree{"x": 1}},
			secondary: Tree{"a": Tree{"x": 2, "y": 3}},
			want:      Tree{"a": Tree{"x": 1, "y": 3}},
		},
		{
			name:      "scalar replaces subtree wholesale",
			primary:   Tree{"a": 5},
			secondary: Tree{"a": Tree{"x": 1}},
			want:      Tree{"a": 5},
		},
		{
			name:      "subtree replaces scalar wholesale",
			primary:   Tree{"a": Tree{"x": 1}},
			secondary: Tree{"a": 5},
			want:      Tree{"a": Tree{"x": 1}},
		},
		{
			name:      "disjoint keys",
			primary:   Tree{"a": 1},
			secondary: Tree{"b": 2},
			want:      Tree{"a": 1, "b": 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.primary, tt.secondary)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotAlias(t *testing.T) {
	primary := Tree{"a": Tree{"x": 1}, "list": []interface{}{1, 2}}
	secondary := Tree{"a": Tree{"y": 2}}

	merged := Merge(primary, secondary)

	merged["a"].(Tree)["x"] = 99
	merged["list"].([]interface{})[0] = 99

	if primary["a"].(Tree)["x"] != 1 {
		t.Error("merged tree aliases primary's subtree")
	}
	if primary["list"].([]interface{})[0] != 1 {
		t.Error("merged tree aliases primary's list")
	}
	if v, ok := secondary["a"].(Tree)["x"]; ok {
		t.Errorf("secondary was mutated: gained x=%v", v)
	}
}

func TestFilterSection(t *testing.T) {
	section := Tree{"label": "E", "clip_box": 1}
	got := FilterSection(section, []string{"clip_box"})
	want := Tree{"label": "E"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterSection() = %#v, want %#v", got, want)
	}

	// Absent denylisted keys are not an error, input is unchanged.
	got = FilterSection(section, []string{"missing"})
	if !reflect.DeepEqual(got, section) {
		t.Errorf("FilterSection() = %#v, want %#v", got, section)
	}
	if _, ok := section["clip_box"]; !ok {
		t.Error("input section was mutated")
	}
}
