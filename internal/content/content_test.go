package content

import "testing"

func checkQuestions(t *testing.T, where string, qs []Question) {
	t.Helper()
	for i, q := range qs {
		if len(q.Choices) < 2 {
			t.Errorf("%s question %d: expected at least 2 choices, got %d", where, i, len(q.Choices))
		}
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			t.Errorf("%s question %d: answer index %d out of range", where, i, q.Answer)
		}
	}
}

func TestSightWordsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, w := range SightWords {
		if seen[w] {
			t.Errorf("Duplicate sight word %q", w)
		}
		seen[w] = true
	}
	if len(SightWords) < 30 {
		t.Errorf("Expected at least 30 sight words for a 20-word run, got %d", len(SightWords))
	}
}

func TestPassages(t *testing.T) {
	if len(Passages) == 0 {
		t.Fatal("Expected at least one passage")
	}
	for _, p := range Passages {
		if p.Title == "" || p.Text == "" {
			t.Errorf("Passage %q missing title or text", p.Title)
		}
		checkQuestions(t, p.Title, p.Questions)
	}
}

func TestStories(t *testing.T) {
	if len(Stories) == 0 {
		t.Fatal("Expected at least one story")
	}
	for _, s := range Stories {
		checkQuestions(t, s.Title, s.Questions)
	}
}

func TestComplaints(t *testing.T) {
	if len(Complaints) == 0 {
		t.Fatal("Expected at least one complaint")
	}
	for i, c := range Complaints {
		if len(c.HappinessImpact) != len(c.Choices) {
			t.Errorf("Complaint %d: %d impacts for %d choices", i, len(c.HappinessImpact), len(c.Choices))
		}
		if c.Correct < 0 || c.Correct >= len(c.Choices) {
			t.Errorf("Complaint %d: correct index %d out of range", i, c.Correct)
		}
	}
}

func TestRecipes(t *testing.T) {
	if len(Recipes) == 0 {
		t.Fatal("Expected at least one recipe")
	}
	for _, r := range Recipes {
		if len(r.Ingredients) == 0 || len(r.Directions) == 0 {
			t.Errorf("Recipe %q missing ingredients or directions", r.Title)
		}
		checkQuestions(t, r.Title, r.Questions)
	}
}

func TestSynonymSetsContainAnswers(t *testing.T) {
	for _, set := range SynonymWords {
		if !contains(set.Choices, set.Synonym) {
			t.Errorf("Word %q: synonym %q not among choices", set.Word, set.Synonym)
		}
		if !contains(set.Choices, set.Antonym) {
			t.Errorf("Word %q: antonym %q not among choices", set.Word, set.Antonym)
		}
		if set.Synonym == set.Antonym {
			t.Errorf("Word %q: synonym equals antonym", set.Word)
		}
	}
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
