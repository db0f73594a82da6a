package palette

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected Mode
	}{
		{"all rybw", []string{"Red", "Yellow", "Blue", "White"}, RYBW},
		{"all cmyw", []string{"Cyan", "Magenta", "Yellow", "White"}, CMYW},
		{"cmyw majority", []string{"Cyan", "Magenta"}, CMYW},
		{"rybw majority", []string{"Red", "Blue", "Cyan"}, RYBW},

		// Yellow and White exist in both palettes: a tie, default RYBW.
		{"tie resolves rybw", []string{"Yellow", "White"}, RYBW},
		{"no matches", []string{"Lid", "Base"}, RYBW},
		{"empty", nil, RYBW},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.names); got != tt.expected {
				t.Errorf("Detect(%v) = %s, want %s", tt.names, got, tt.expected)
			}
		})
	}
}

func TestGroupID(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		expected string
	}{
		{"Red", RYBW, "1"},
		{"Yellow", RYBW, "2"},
		{"Blue", RYBW, "3"},
		{"White", RYBW, "4"},
		{"Cyan", CMYW, "1"},
		{"Magenta", CMYW, "2"},
		{"Yellow", CMYW, "3"},
		{"White", CMYW, "4"},

		// Unknown names fall back to the first color.
		{"Chartreuse", RYBW, "1"},
		{"Red", CMYW, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String()+"_"+tt.name, func(t *testing.T) {
			if got := GroupID(tt.name, tt.mode); got != tt.expected {
				t.Errorf("GroupID(%q, %s) = %s, want %s", tt.name, tt.mode, got, tt.expected)
			}
		})
	}
}

func TestEntriesOrder(t *testing.T) {
	rybw := Entries(RYBW)
	want := []string{"Red", "Yellow", "Blue", "White"}

	for i, name := range want {
		if rybw[i].Name != name {
			t.Errorf("Entries(RYBW)[%d] = %s, want %s", i, rybw[i].Name, name)
		}
	}

	cmyw := Entries(CMYW)
	want = []string{"Cyan", "Magenta", "Yellow", "White"}

	for i, name := range want {
		if cmyw[i].Name != name {
			t.Errorf("Entries(CMYW)[%d] = %s, want %s", i, cmyw[i].Name, name)
		}
	}

	// Auto resolves to the tie-break palette.
	if Entries(Auto)[0].Name != "Red" {
		t.Error("Entries(Auto) should resolve to the RYBW palette")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Mode
		wantErr  bool
	}{
		{"rybw", RYBW, false},
		{"cmyw", CMYW, false},
		{"CMYW", CMYW, false},
		{"auto", Auto, false},
		{"", Auto, false},
		{"rgb", Auto, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}

		if !tt.wantErr && got != tt.expected {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.expected)
		}
	}
}
