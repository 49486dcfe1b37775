package presets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	list := Defaults()
	if len(list) != 20 {
		t.Errorf("defaults = %d entries, want 20", len(list))
	}
	found := false
	for _, p := range list {
		if p.Name == "Ethanol" && p.SMILES == "CCO" {
			found = true
		}
		if p.Name == "" || p.SMILES == "" {
			t.Errorf("entry %+v has empty field", p)
		}
	}
	if !found {
		t.Error("defaults missing Ethanol/CCO")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	content := "- name: Methanol\n  smiles: CO\n- name: Formaldehyde\n  smiles: C=O\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Methanol" || list[1].SMILES != "C=O" {
		t.Errorf("unexpected catalog: %+v", list)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	list, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != len(Defaults()) {
		t.Errorf("got %d entries, want %d", len(list), len(Defaults()))
	}
}

func TestLoad_RejectsIncomplete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	if err := os.WriteFile(path, []byte("- name: NoSmiles\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for entry without smiles")
	}
}
