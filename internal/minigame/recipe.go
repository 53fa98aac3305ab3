package minigame

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bright4Pres/KONEKTA/internal/config"
	"github.com/bright4Pres/KONEKTA/internal/content"
	"github.com/bright4Pres/KONEKTA/internal/progress"
	"github.com/bright4Pres/KONEKTA/internal/ui"
)

// Recipe is the procedural-text game: read a recipe, then answer
// questions about its ingredients and steps.
type Recipe struct {
	cfg  *config.Config
	sink ProgressSink

	recipeIdx   int
	questionIdx int
	recipeShown bool
	selected    int
	showResult  bool
	resultTimer float64
	score       int
	elapsed     float64
	next        string
}

// NewRecipe creates the recipe-reading screen.
func NewRecipe(cfg *config.Config, sink ProgressSink) *Recipe {
	return &Recipe{cfg: cfg, sink: sink}
}

// Enter starts from the first recipe.
func (r *Recipe) Enter() {
	r.next = ""
	r.recipeIdx = 0
	r.questionIdx = 0
	r.recipeShown = false
	r.selected = -1
	r.showResult = false
	r.score = 0
	r.elapsed = 0
}

// Exit logs the run.
func (r *Recipe) Exit() {
	logResult(r.sink, r.cfg.StudentID, progress.ModuleRecipe,
		r.score, r.score*config.PointsPerCorrect, r.elapsed)
}

// Next reports the pending transition.
func (r *Recipe) Next() string { return r.next }

func (r *Recipe) recipe() *content.Recipe {
	return &content.Recipes[r.recipeIdx]
}

// choose records an answer and raises the result view.
func (r *Recipe) choose(i int) {
	q := r.recipe().Questions[r.questionIdx]
	if i < 0 || i >= len(q.Choices) {
		return
	}
	r.selected = i
	r.showResult = true
	r.resultTimer = 0
	if i == q.Answer {
		r.score++
	}
}

// advance steps to the next question, the next recipe, or back to the
// hub when all recipes are done.
func (r *Recipe) advance() {
	r.showResult = false
	r.selected = -1
	r.questionIdx++
	if r.questionIdx >= len(r.recipe().Questions) {
		r.recipeIdx++
		r.questionIdx = 0
		r.recipeShown = false
		if r.recipeIdx >= len(content.Recipes) {
			r.next = config.StateOverworld
		}
	}
}

// Update advances the read/quiz flow.
func (r *Recipe) Update(dt float64) error {
	r.elapsed += dt
	if escPressed() {
		r.next = config.StateOverworld
		return nil
	}
	if r.recipeIdx >= len(content.Recipes) {
		return nil
	}

	if !r.recipeShown {
		if spacePressed() {
			r.recipeShown = true
		}
		return nil
	}

	if r.showResult {
		r.resultTimer += dt
		if r.resultTimer >= config.FeedbackSec {
			r.advance()
		}
		return nil
	}

	if i := pollDigit(len(r.recipe().Questions[r.questionIdx].Choices)); i >= 0 {
		r.choose(i)
	}
	return nil
}

// Draw renders the recipe card or the current question.
func (r *Recipe) Draw(screen *ebiten.Image) {
	screen.Fill(config.Green)
	drawHeader(screen, "Recipe Game", r.score)
	if r.recipeIdx >= len(content.Recipes) {
		return
	}

	recipe := r.recipe()
	ui.DrawTextCentered(screen, recipe.Title, config.ScreenWidth/2, 60)

	if !r.recipeShown {
		y := 110
		ui.DrawText(screen, "Ingredients:", 50, y)
		y += 28
		for _, ing := range recipe.Ingredients {
			ui.DrawText(screen, "- "+ing, 70, y)
			y += 22
		}
		y += 16
		ui.DrawText(screen, "Directions:", 50, y)
		y += 28
		for i, dir := range recipe.Directions {
			ui.DrawText(screen, fmt.Sprintf("%d. %s", i+1, dir), 50, y)
			y += 22
		}
		ui.DrawText(screen, "Press SPACE to start questions", 50, config.ScreenHeight-70)
		return
	}

	q := recipe.Questions[r.questionIdx]
	ui.DrawText(screen, fmt.Sprintf("Tanong %d/%d", r.questionIdx+1, len(recipe.Questions)), 20, 70)
	ui.DrawText(screen, q.Q, 50, 150)

	y := 220
	for i, choice := range q.Choices {
		label := fmt.Sprintf("%d. %s", i+1, choice)
		if r.showResult {
			switch {
			case i == q.Answer:
				ui.DrawBox(screen, 44, y-6, ui.TextWidth(label)+12, 26, config.Green, config.White)
			case i == r.selected:
				ui.DrawBox(screen, 44, y-6, ui.TextWidth(label)+12, 26, config.Red, config.White)
			}
		}
		ui.DrawText(screen, label, 50, y)
		y += 40
	}

	if r.showResult {
		result := "Hindi tama."
		if r.selected == q.Answer {
			result = "Tama!"
		}
		ui.DrawText(screen, result, 50, y+20)
	}
}
