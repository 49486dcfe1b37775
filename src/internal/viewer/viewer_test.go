package viewer

import (
	"encoding/json"
	"strings"
	"testing"

	"molsim/src/internal/chem"
)

func TestSceneSpec_AllStyles(t *testing.T) {
	for _, s := range Styles {
		spec, err := SceneSpec(s.ID)
		if err != nil {
			t.Fatalf("SceneSpec(%s): %v", s.ID, err)
		}
		var decoded map[string]any
		if err := json.Unmarshal([]byte(spec), &decoded); err != nil {
			t.Errorf("SceneSpec(%s) is not valid JSON: %v", s.ID, err)
		}
		if len(decoded) == 0 {
			t.Errorf("SceneSpec(%s) is empty", s.ID)
		}
	}
}

func TestSceneSpec_BallAndStick(t *testing.T) {
	spec, err := SceneSpec(BallAndStick)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(spec), `"stick"`) || !strings.Contains(string(spec), `"sphere"`) {
		t.Errorf("ball_and_stick spec = %s, want stick and sphere entries", spec)
	}
}

func TestNormalize(t *testing.T) {
	if Normalize("sphere") != Sphere {
		t.Error("sphere should normalize to itself")
	}
	if Normalize("") != Stick {
		t.Error("empty style should default to stick")
	}
	if Normalize("cartoon") != Stick {
		t.Error("unknown style should default to stick")
	}
}

func TestValidBackground(t *testing.T) {
	if !ValidBackground("white") {
		t.Error("white should be valid")
	}
	if ValidBackground("magenta") {
		t.Error("magenta should not be valid")
	}
}

func TestPropertyRows(t *testing.T) {
	p := chem.Properties{
		Formula:         "C2H6O",
		MolecularWeight: 46.07,
		HeavyAtoms:      3,
	}
	rows := PropertyRows(p)
	if rows[0].Value != "C2H6O" {
		t.Errorf("first row = %+v, want formula", rows[0])
	}
	if rows[1].Value != "46.07" || rows[1].Unit != "g/mol" {
		t.Errorf("weight row = %+v", rows[1])
	}
}

func TestTemplate_Parses(t *testing.T) {
	tpl := Template()
	if tpl.Lookup("index.html") == nil {
		t.Error("index.html not found in parsed template")
	}
}
