package engine

import (
	"math/rand"
	"testing"

	"brew-and-bite-api/catalog"
)

// zeroRand removes the jitter so the contextual contributions can be asserted
// exactly: Float64 always returns 0.5, making the jitter term 0.
type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0.5 }

func scoreOf(t *testing.T, scored []ScoredMenuItem, name string) float64 {
	t.Helper()
	for _, s := range scored {
		if s.Name == name {
			return s.DynamicScore
		}
	}
	t.Fatalf("item %q not in scored set", name)
	return 0
}

func TestColdWeatherBoostsWarmFood(t *testing.T) {
	items := []catalog.MenuItem{
		{Name: "Aloo Paratha", BasePopularity: 9, FlavorCategory: "hearty", Type: "classic"},
		{Name: "Masala Oats", BasePopularity: 7, FlavorCategory: "warm", Type: "healthy"},
		{Name: "Iced Tea", BasePopularity: 7, FlavorCategory: "cold", Type: "cold"},
		{Name: "Dosa", BasePopularity: 8, FlavorCategory: "classic", Type: "healthy"},
	}
	scored := ScoreItems(items, Context{Temperature: 20}, zeroRand{})

	if got := scoreOf(t, scored, "Aloo Paratha"); got != 12 {
		t.Fatalf("hearty item at 20°C: expected 12, got %v", got)
	}
	if got := scoreOf(t, scored, "Masala Oats"); got != 10 {
		t.Fatalf("warm item at 20°C: expected 10, got %v", got)
	}
	// cold type is penalised even though its flavor got no boost
	if got := scoreOf(t, scored, "Iced Tea"); got != 5 {
		t.Fatalf("cold-type item at 20°C: expected 5, got %v", got)
	}
	if got := scoreOf(t, scored, "Dosa"); got != 8 {
		t.Fatalf("neutral item at 20°C: expected 8, got %v", got)
	}
}

func TestHotWeatherBoostsColdAndLight(t *testing.T) {
	items := []catalog.MenuItem{
		{Name: "Watermelon Juice", BasePopularity: 8, FlavorCategory: "cold", Type: "refreshing"},
		{Name: "Caesar Salad", BasePopularity: 6, FlavorCategory: "light", Type: "healthy"},
		{Name: "Masala Chai", BasePopularity: 10, FlavorCategory: "hot", Type: "classic"},
		{Name: "Chicken Korma", BasePopularity: 8, FlavorCategory: "hearty", Type: "classic"},
	}
	scored := ScoreItems(items, Context{Temperature: 33}, zeroRand{})

	if got := scoreOf(t, scored, "Watermelon Juice"); got != 11 {
		t.Fatalf("cold item at 33°C: expected 11, got %v", got)
	}
	if got := scoreOf(t, scored, "Caesar Salad"); got != 9 {
		t.Fatalf("light item at 33°C: expected 9, got %v", got)
	}
	if got := scoreOf(t, scored, "Masala Chai"); got != 8 {
		t.Fatalf("hot item at 33°C: expected 8, got %v", got)
	}
	if got := scoreOf(t, scored, "Chicken Korma"); got != 6 {
		t.Fatalf("hearty item at 33°C: expected 6, got %v", got)
	}
}

func TestMildWeatherIsNeutral(t *testing.T) {
	items := []catalog.MenuItem{
		{Name: "Masala Chai", BasePopularity: 10, FlavorCategory: "hot", Type: "classic"},
	}
	for _, temp := range []float64{24, 27, 30} {
		scored := ScoreItems(items, Context{Temperature: temp}, zeroRand{})
		if got := scoreOf(t, scored, "Masala Chai"); got != 10 {
			t.Fatalf("at %v°C expected base score 10, got %v", temp, got)
		}
	}
}

func TestFestivalWeekendBoostsComfortTypes(t *testing.T) {
	items := []catalog.MenuItem{
		{Name: "Mango Lassi", BasePopularity: 8, FlavorCategory: "cold", Type: "sweet"},
		{Name: "Green Tea", BasePopularity: 7, FlavorCategory: "hot", Type: "healthy"},
	}
	ctx := Context{Temperature: 26, Event: EventFestivalWeekend}
	scored := ScoreItems(items, ctx, zeroRand{})

	if got := scoreOf(t, scored, "Mango Lassi"); got != 12 {
		t.Fatalf("sweet item on festival weekend: expected 12, got %v", got)
	}
	if got := scoreOf(t, scored, "Green Tea"); got != 7 {
		t.Fatalf("healthy item on festival weekend: expected 7, got %v", got)
	}
}

func TestGamedayBoostsExactNamesOnly(t *testing.T) {
	items := []catalog.MenuItem{
		{Name: "Chicken Biryani", BasePopularity: 9, FlavorCategory: "hearty", Type: "classic"},
		{Name: "Cold Coffee", BasePopularity: 8, FlavorCategory: "cold", Type: "sweet"},
		{Name: "Chicken Biryani Special", BasePopularity: 9, FlavorCategory: "hearty", Type: "classic"},
	}
	ctx := Context{Temperature: 26, Event: EventGameday}
	scored := ScoreItems(items, ctx, zeroRand{})

	if got := scoreOf(t, scored, "Chicken Biryani"); got != 12 {
		t.Fatalf("gameday special: expected 12, got %v", got)
	}
	if got := scoreOf(t, scored, "Cold Coffee"); got != 11 {
		t.Fatalf("gameday special: expected 11, got %v", got)
	}
	if got := scoreOf(t, scored, "Chicken Biryani Special"); got != 9 {
		t.Fatalf("near-miss name must not be boosted: expected 9, got %v", got)
	}
}

func TestScoringIsDeterministicUnderASeed(t *testing.T) {
	items := catalog.Load().Items()
	ctx := Context{Temperature: 26}

	first := ScoreItems(items, ctx, rand.New(rand.NewSource(42)))
	second := ScoreItems(items, ctx, rand.New(rand.NewSource(42)))

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].DynamicScore != second[i].DynamicScore {
			t.Fatalf("position %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestScoresAreSortedDescending(t *testing.T) {
	scored := ScoreItems(catalog.Load().Items(), Context{Temperature: 20}, rand.New(rand.NewSource(7)))
	for i := 1; i < len(scored); i++ {
		if scored[i].DynamicScore > scored[i-1].DynamicScore {
			t.Fatalf("not sorted at %d: %v before %v", i, scored[i-1].DynamicScore, scored[i].DynamicScore)
		}
	}
}

func TestTopSpecialsReturnsFour(t *testing.T) {
	specials := TopSpecials(catalog.Load().Items(), Context{Temperature: 26}, rand.New(rand.NewSource(1)))
	if len(specials) != 4 {
		t.Fatalf("expected 4 specials, got %d", len(specials))
	}
}

func TestSuggestionsSkipCartItems(t *testing.T) {
	cart := []string{"Masala Chai", "Cappuccino", "Aloo Paratha"}
	suggestions := Suggestions(catalog.Load().Items(), cart, Context{Temperature: 26}, rand.New(rand.NewSource(1)))

	if len(suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(suggestions))
	}
	inCart := map[string]bool{}
	for _, name := range cart {
		inCart[name] = true
	}
	for _, s := range suggestions {
		if inCart[s.Name] {
			t.Fatalf("suggested %q which is already in the cart", s.Name)
		}
	}
}

func TestScoreTables(t *testing.T) {
	tables := []catalog.Table{
		{ID: 1, Name: "Table 1", Properties: []string{"window", "quiet"}},
		{ID: 2, Name: "Table 2", Properties: []string{"window"}},
		{ID: 4, Name: "Table 4", Properties: []string{"social"}},
	}

	scored := ScoreTables(tables, "quiet")
	if scored[0].Table.ID != 1 || scored[0].Score != 12 {
		t.Fatalf("expected table 1 first with score 12, got table %d score %d", scored[0].Table.ID, scored[0].Score)
	}
	if scored[1].Table.ID != 2 || scored[1].Score != 2 {
		t.Fatalf("expected table 2 second with score 2, got table %d score %d", scored[1].Table.ID, scored[1].Score)
	}
	if scored[2].Table.ID != 4 || scored[2].Score != 0 {
		t.Fatalf("expected table 4 last with score 0, got table %d score %d", scored[2].Table.ID, scored[2].Score)
	}
}

func TestScoreTablesAnyMeansNoPreferenceBonus(t *testing.T) {
	tables := []catalog.Table{
		// "any" never matches a property, even if a table had it as a tag
		{ID: 1, Name: "Table 1", Properties: []string{"any"}},
	}
	scored := ScoreTables(tables, "any")
	if scored[0].Score != 0 {
		t.Fatalf("preference 'any' must not score, got %d", scored[0].Score)
	}
}

func TestScoreTablesTiesKeepInputOrder(t *testing.T) {
	tables := []catalog.Table{
		{ID: 4, Name: "Table 4", Properties: []string{"social"}},
		{ID: 3, Name: "Table 3", Properties: []string{"quiet", "corner"}},
	}
	scored := ScoreTables(tables, "any")
	if scored[0].Table.ID != 4 || scored[1].Table.ID != 3 {
		t.Fatalf("tied tables must keep input order, got %d then %d", scored[0].Table.ID, scored[1].Table.ID)
	}
}
