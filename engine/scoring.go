package engine

import (
	"sort"

	"brew-and-bite-api/catalog"
)

// ScoredMenuItem is a menu item with its context-adjusted score. Recomputed
// per request, never persisted.
type ScoredMenuItem struct {
	catalog.MenuItem
	DynamicScore float64 `json:"dynamic_score"`
}

const (
	specialsCount   = 4
	suggestionCount = 3
)

// gamedaySpecials are boosted by exact name on a Gameday.
var gamedaySpecials = map[string]bool{
	"Chicken Biryani": true,
	"Cold Coffee":     true,
}

// ScoreItems computes the dynamic score of every item under the given ambient
// context and returns them sorted by descending score. The uniform jitter in
// [-0.5, 0.5) makes the ordering a total order without any secondary key and
// shuffles ties between requests.
func ScoreItems(items []catalog.MenuItem, ctx Context, rng Rand) []ScoredMenuItem {
	scored := make([]ScoredMenuItem, 0, len(items))
	for _, item := range items {
		score := float64(item.BasePopularity)
		switch {
		case ctx.Temperature < 24:
			if oneOf(item.FlavorCategory, "hot", "hearty", "warm") {
				score += 3
			}
			if item.Type == "cold" {
				score -= 2
			}
		case ctx.Temperature > 30:
			if oneOf(item.FlavorCategory, "cold", "light") {
				score += 3
			}
			if oneOf(item.FlavorCategory, "hot", "hearty") {
				score -= 2
			}
		}
		switch ctx.Event {
		case EventFestivalWeekend:
			if oneOf(item.Type, "sweet", "classic", "hearty") {
				score += 4
			}
		case EventGameday:
			if gamedaySpecials[item.Name] {
				score += 3
			}
		}
		scored = append(scored, ScoredMenuItem{
			MenuItem:     item,
			DynamicScore: score + rng.Float64() - 0.5,
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].DynamicScore > scored[j].DynamicScore
	})
	return scored
}

// TopSpecials returns the four highest scoring items for "today's specials".
func TopSpecials(items []catalog.MenuItem, ctx Context, rng Rand) []ScoredMenuItem {
	return topN(ScoreItems(items, ctx, rng), specialsCount)
}

// Suggestions ranks the items not already in the cart and returns the top
// three. Cart matching is by exact item name.
func Suggestions(items []catalog.MenuItem, cartNames []string, ctx Context, rng Rand) []ScoredMenuItem {
	inCart := make(map[string]bool, len(cartNames))
	for _, name := range cartNames {
		inCart[name] = true
	}
	candidates := make([]catalog.MenuItem, 0, len(items))
	for _, item := range items {
		if !inCart[item.Name] {
			candidates = append(candidates, item)
		}
	}
	return topN(ScoreItems(candidates, ctx, rng), suggestionCount)
}

func topN(scored []ScoredMenuItem, n int) []ScoredMenuItem {
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

// ScoredTable pairs a table with its preference score.
type ScoredTable struct {
	Table catalog.Table `json:"table"`
	Score int           `json:"score"`
}

// ScoreTables ranks tables against a seating preference: +10 when the stated
// preference matches a table property (unless the preference is "any"), +2 for
// any window table. The sort is stable, so equal scores keep input order.
func ScoreTables(tables []catalog.Table, preference string) []ScoredTable {
	scored := make([]ScoredTable, 0, len(tables))
	for _, t := range tables {
		score := 0
		if preference != "any" && t.HasProperty(preference) {
			score += 10
		}
		if t.HasProperty("window") {
			score += 2
		}
		scored = append(scored, ScoredTable{Table: t, Score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func oneOf(v string, options ...string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
