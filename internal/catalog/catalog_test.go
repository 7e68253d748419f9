package catalog

import (
	"testing"

	"github.com/rmartin/promptsynth/internal/domain"
)

func TestFlatten(t *testing.T) {
	templates, categories := Flatten()

	if len(templates) != 10 {
		t.Errorf("expected 10 templates, got %d", len(templates))
	}
	if len(categories) != len(templates) {
		t.Errorf("category map size %d != template map size %d", len(categories), len(templates))
	}

	tpl, ok := templates["Meeting Summary"]
	if !ok {
		t.Fatal("Meeting Summary missing from flat map")
	}
	if tpl.Category != "Work" || categories["Meeting Summary"] != "Work" {
		t.Errorf("Meeting Summary category = %q / %q, want Work", tpl.Category, categories["Meeting Summary"])
	}
	if tpl.Tone != "Clear and helpful" || tpl.OutputType != "Bullet List" {
		t.Errorf("Meeting Summary prefill wrong: %+v", tpl)
	}
}

func TestTemplateEnumsAreValid(t *testing.T) {
	templates, _ := Flatten()
	for name, tpl := range templates {
		if domain.NormalizeTone(tpl.Tone) != tpl.Tone {
			t.Errorf("%s carries tone %q outside the enumeration", name, tpl.Tone)
		}
		if domain.NormalizeOutputType(tpl.OutputType) != tpl.OutputType {
			t.Errorf("%s carries format %q outside the enumeration", name, tpl.OutputType)
		}
	}
}

func TestGet(t *testing.T) {
	tpl, ok := Get("Tweet Thread")
	if !ok {
		t.Fatal("known template not found")
	}
	if tpl.Category != "Social Media" {
		t.Errorf("category = %q, want Social Media", tpl.Category)
	}

	if _, ok := Get("No Such Template"); ok {
		t.Error("unknown name must report ok=false")
	}
}

func TestRandomPicksFromCatalog(t *testing.T) {
	templates, _ := Flatten()
	for i := 0; i < 50; i++ {
		tpl := Random()
		if _, ok := templates[tpl.Name]; !ok {
			t.Fatalf("Random returned %q, not in catalog", tpl.Name)
		}
	}
}

func TestEveryCategoryHasAnEmoji(t *testing.T) {
	for _, cat := range Categories {
		if cat.Emoji == "" {
			t.Errorf("category %s has no emoji", cat.Name)
		}
		if CategoryEmojis[cat.Name] != cat.Emoji {
			t.Errorf("emoji map disagrees for %s", cat.Name)
		}
	}
}

func TestTipAndSignOffPools(t *testing.T) {
	if len(Tips) == 0 || len(SignOffs) == 0 {
		t.Fatal("tip and sign-off pools must not be empty")
	}
	seen := map[string]bool{}
	for _, tip := range Tips {
		seen[tip] = true
	}
	for i := 0; i < 50; i++ {
		if !seen[RandomTip()] {
			t.Fatal("RandomTip returned a value outside the pool")
		}
	}
}
