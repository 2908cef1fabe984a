package normalize

import "testing"

func TestInspectCounts(t *testing.T) {
	text := "First paragraph line one\nline two here\n\nSecond paragraph text"
	info := Inspect(text)

	if info.WordCount != 10 {
		t.Fatalf("expected 10 words, got %d", info.WordCount)
	}
	if info.LineCount != 4 {
		t.Fatalf("expected 4 lines, got %d", info.LineCount)
	}
	if info.ParagraphCount != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", info.ParagraphCount)
	}
}

func TestInspectDetectsStructure(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		hasTables bool
		hasLists  bool
	}{
		{"pipe table", "Name | Dose | Frequency", true, false},
		{"numbered list", "1 Take with food\n2 Avoid alcohol", false, true},
		{"dashed list", "- metformin\n- lisinopril", false, true},
		{"plain prose", "Patient is recovering well without complication", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Inspect(tt.text)
			if info.HasTables != tt.hasTables {
				t.Fatalf("HasTables = %v, want %v", info.HasTables, tt.hasTables)
			}
			if info.HasLists != tt.hasLists {
				t.Fatalf("HasLists = %v, want %v", info.HasLists, tt.hasLists)
			}
		})
	}
}

func TestInspectFindsMedicationBlocks(t *testing.T) {
	info := Inspect("Medication: Metformin 500mg\ntake with meals")
	if len(info.MedicationBlocks) == 0 {
		t.Fatalf("expected at least one medication block")
	}

	empty := Inspect("Nothing clinical in this note at all")
	if len(empty.MedicationBlocks) != 0 {
		t.Fatalf("expected no medication blocks, got %v", empty.MedicationBlocks)
	}
}

func TestInspectEmptyText(t *testing.T) {
	info := Inspect("")
	if info.WordCount != 0 || info.LineCount != 0 || info.ParagraphCount != 0 {
		t.Fatalf("expected zero counts for empty text, got %+v", info)
	}
}
