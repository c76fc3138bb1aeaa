package catalog

// Meal sections the menu is grouped under.
const (
	SectionBreakfast = "breakfast"
	SectionLunch     = "lunch"
	SectionDinner    = "dinner"
	SectionDrinks    = "drinks"
)

// MenuItem is a static catalog entry. MealSection is the grouping key
// (breakfast/lunch/dinner/drinks); FlavorCategory is the temperature/flavor
// tag ("hot", "cold", "hearty", ...) used by the scoring rules. The two are
// deliberately separate fields so pricing can match the section while scoring
// matches the flavor.
type MenuItem struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          int    `json:"price"`
	BasePopularity int    `json:"base_popularity"`
	MealSection    string `json:"meal_section"`
	FlavorCategory string `json:"flavor_category"`
	Type           string `json:"type"`
}

// Table is a static dining table with descriptive property tags.
type Table struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	Properties []string `json:"properties"`
}

// HasProperty reports whether the table carries the given property tag.
func (t Table) HasProperty(p string) bool {
	for _, prop := range t.Properties {
		if prop == p {
			return true
		}
	}
	return false
}

// Catalog holds the loaded-once menu and table data. It is read-only after
// Load and safe to share across requests.
type Catalog struct {
	sections map[string][]MenuItem
	items    []MenuItem
	tables   []Table
	images   map[int]string
}

// Load builds the catalog from the static data below.
func Load() *Catalog {
	c := &Catalog{
		sections: menuData,
		tables:   tableData,
		images:   imageMap,
	}
	for _, section := range sectionOrder {
		c.items = append(c.items, menuData[section]...)
	}
	return c
}

// Items returns every menu item across all sections.
func (c *Catalog) Items() []MenuItem {
	return c.items
}

// Section returns the items of one meal section. ok is false for an unknown
// section name.
func (c *Catalog) Section(name string) (items []MenuItem, ok bool) {
	items, ok = c.sections[name]
	return items, ok
}

// Tables returns all dining tables.
func (c *Catalog) Tables() []Table {
	return c.tables
}

// TableName returns the display name for a table id, or "Unknown" when the id
// is not in the catalog.
func (c *Catalog) TableName(id int) string {
	for _, t := range c.tables {
		if t.ID == id {
			return t.Name
		}
	}
	return "Unknown"
}

// ImagePath returns the static image path for a menu item id, falling back to
// the logo for ids without a photo.
func (c *Catalog) ImagePath(id int) string {
	if p, ok := c.images[id]; ok {
		return p
	}
	return "images/logo.png"
}

var sectionOrder = []string{SectionBreakfast, SectionLunch, SectionDinner, SectionDrinks}

var menuData = map[string][]MenuItem{
	SectionBreakfast: {
		{ID: 1, Name: "Masala Oats", Description: "Healthy oats cooked with Indian spices.", Price: 150, BasePopularity: 7, MealSection: SectionBreakfast, FlavorCategory: "warm", Type: "healthy"},
		{ID: 2, Name: "Pancakes & Syrup", Description: "Fluffy pancakes with maple syrup and berries.", Price: 220, BasePopularity: 8, MealSection: SectionBreakfast, FlavorCategory: "sweet", Type: "classic"},
		{ID: 9, Name: "Aloo Paratha", Description: "Whole wheat flatbread stuffed with spiced potato, served with pickle.", Price: 180, BasePopularity: 9, MealSection: SectionBreakfast, FlavorCategory: "hearty", Type: "classic"},
		{ID: 10, Name: "Fruit Smoothie Bowl", Description: "Blended fresh fruits topped with granola and seeds.", Price: 200, BasePopularity: 6, MealSection: SectionBreakfast, FlavorCategory: "cold", Type: "healthy"},
		{ID: 11, Name: "Scrambled Eggs on Toast", Description: "Creamy scrambled eggs with buttered toast and grilled tomatoes.", Price: 210, BasePopularity: 7, MealSection: SectionBreakfast, FlavorCategory: "warm", Type: "classic"},
		{ID: 12, Name: "Dosa", Description: "Crispy South Indian crepe served with sambar and chutneys.", Price: 190, BasePopularity: 8, MealSection: SectionBreakfast, FlavorCategory: "classic", Type: "healthy"},
		{ID: 13, Name: "French Toast", Description: "Golden brown French toast with a dusting of powdered sugar.", Price: 230, BasePopularity: 7, MealSection: SectionBreakfast, FlavorCategory: "sweet", Type: "classic"},
		{ID: 29, Name: "Muesli with Yogurt", Description: "Toasted muesli served with fresh yogurt and honey.", Price: 170, BasePopularity: 6, MealSection: SectionBreakfast, FlavorCategory: "cold", Type: "healthy"},
		{ID: 30, Name: "Uttapam", Description: "Thick South Indian pancake topped with onions and tomatoes.", Price: 195, BasePopularity: 7, MealSection: SectionBreakfast, FlavorCategory: "classic", Type: "healthy"},
		{ID: 31, Name: "Belgian Waffles", Description: "Crispy waffles served with whipped cream and chocolate sauce.", Price: 240, BasePopularity: 8, MealSection: SectionBreakfast, FlavorCategory: "sweet", Type: "classic"},
		{ID: 32, Name: "Cheela (Savory Pancake)", Description: "Lentil flour pancake with mixed vegetables and spices.", Price: 160, BasePopularity: 7, MealSection: SectionBreakfast, FlavorCategory: "warm", Type: "healthy"},
		{ID: 33, Name: "Omelette Pav", Description: "Spicy Indian omelette served inside a soft bread roll.", Price: 185, BasePopularity: 9, MealSection: SectionBreakfast, FlavorCategory: "hearty", Type: "classic"},
	},
	SectionLunch: {
		{ID: 3, Name: "Chicken Biryani", Description: "Aromatic rice dish with tender chicken.", Price: 350, BasePopularity: 9, MealSection: SectionLunch, FlavorCategory: "hearty", Type: "classic"},
		{ID: 4, Name: "Veg Thali", Description: "Complete meal with rice, roti, dal, and sabzi.", Price: 250, BasePopularity: 8, MealSection: SectionLunch, FlavorCategory: "classic", Type: "hearty"},
		{ID: 14, Name: "Paneer Butter Masala & Naan", Description: "Creamy paneer curry served with soft naan bread.", Price: 300, BasePopularity: 9, MealSection: SectionLunch, FlavorCategory: "hearty", Type: "classic"},
		{ID: 15, Name: "Chicken Wrap", Description: "Grilled chicken and fresh veggies wrapped in a soft tortilla.", Price: 280, BasePopularity: 7, MealSection: SectionLunch, FlavorCategory: "light", Type: "fast food"},
		{ID: 16, Name: "Pasta Arrabiata", Description: "Penne pasta in a spicy tomato sauce with olives.", Price: 320, BasePopularity: 7, MealSection: SectionLunch, FlavorCategory: "continental", Type: "classic"},
		{ID: 17, Name: "Dal Makhani & Rice", Description: "Slow-cooked black lentils in a rich, creamy sauce with basmati rice.", Price: 270, BasePopularity: 8, MealSection: SectionLunch, FlavorCategory: "hearty", Type: "classic"},
		{ID: 18, Name: "Caesar Salad with Grilled Chicken", Description: "Fresh romaine lettuce, croutons, parmesan, and grilled chicken with Caesar dressing.", Price: 380, BasePopularity: 6, MealSection: SectionLunch, FlavorCategory: "light", Type: "healthy"},
		{ID: 34, Name: "Rajma Chawal (Kidney Beans & Rice)", Description: "Classic North Indian comfort food: red kidney bean curry served with steamed rice.", Price: 240, BasePopularity: 8, MealSection: SectionLunch, FlavorCategory: "hearty", Type: "classic"},
		{ID: 35, Name: "Quinoa and Vegetable Bowl", Description: "High-protein quinoa mixed with roasted seasonal vegetables and a lemon vinaigrette.", Price: 360, BasePopularity: 6, MealSection: SectionLunch, FlavorCategory: "light", Type: "healthy"},
		{ID: 36, Name: "Club Sandwich", Description: "Triple-decker sandwich with chicken/veg, cheese, lettuce, tomato, and fries.", Price: 290, BasePopularity: 9, MealSection: SectionLunch, FlavorCategory: "light", Type: "fast food"},
		{ID: 37, Name: "Mutter Paneer & Roti", Description: "Peas and cottage cheese in a rich tomato gravy, served with Indian flatbread.", Price: 295, BasePopularity: 7, MealSection: SectionLunch, FlavorCategory: "hearty", Type: "classic"},
		{ID: 38, Name: "Spicy Tuna Melt", Description: "Grilled sandwich with spicy tuna, melted cheese, and fresh slaw.", Price: 310, BasePopularity: 6, MealSection: SectionLunch, FlavorCategory: "light", Type: "fast food"},
	},
	SectionDinner: {
		{ID: 5, Name: "Paneer Tikka Masala", Description: "Grilled paneer in a spiced creamy tomato sauce.", Price: 320, BasePopularity: 9, MealSection: SectionDinner, FlavorCategory: "hearty", Type: "classic"},
		{ID: 6, Name: "Grilled Fish", Description: "Fish fillet grilled with lemon-butter sauce.", Price: 450, BasePopularity: 7, MealSection: SectionDinner, FlavorCategory: "light", Type: "healthy"},
		{ID: 19, Name: "Mushroom Do Pyaza", Description: "Mushrooms cooked with two types of onions in a rich gravy.", Price: 290, BasePopularity: 7, MealSection: SectionDinner, FlavorCategory: "hearty", Type: "classic"},
		{ID: 20, Name: "Chicken Korma", Description: "Mildly spiced chicken curry in a rich cashew-based gravy.", Price: 380, BasePopularity: 8, MealSection: SectionDinner, FlavorCategory: "hearty", Type: "classic"},
		{ID: 21, Name: "Veg Pulao with Raita", Description: "Fragrant basmati rice cooked with mixed vegetables, served with spiced yogurt.", Price: 260, BasePopularity: 6, MealSection: SectionDinner, FlavorCategory: "light", Type: "healthy"},
		{ID: 22, Name: "Shepherd's Pie", Description: "Hearty minced meat and vegetable filling topped with mashed potatoes.", Price: 400, BasePopularity: 7, MealSection: SectionDinner, FlavorCategory: "hearty", Type: "classic"},
		{ID: 23, Name: "Lemon Herb Roasted Chicken", Description: "Half chicken roasted with lemon and herbs, served with roasted vegetables.", Price: 500, BasePopularity: 8, MealSection: SectionDinner, FlavorCategory: "light", Type: "healthy"},
		{ID: 39, Name: "Baingan Bharta", Description: "Smoked and mashed eggplant cooked with Indian spices, served with tandoori roti.", Price: 310, BasePopularity: 6, MealSection: SectionDinner, FlavorCategory: "hearty", Type: "classic"},
		{ID: 40, Name: "Chicken Stroganoff", Description: "Slices of chicken breast in a creamy mushroom sauce, served over buttered rice.", Price: 430, BasePopularity: 7, MealSection: SectionDinner, FlavorCategory: "hearty", Type: "classic"},
		{ID: 41, Name: "Minestrone Soup", Description: "Classic Italian vegetable soup with pasta and a drizzle of olive oil.", Price: 280, BasePopularity: 6, MealSection: SectionDinner, FlavorCategory: "light", Type: "healthy"},
		{ID: 42, Name: "Tandoori Prawns", Description: "Prawns marinated in yogurt and spices, cooked in a tandoor (clay oven).", Price: 550, BasePopularity: 8, MealSection: SectionDinner, FlavorCategory: "light", Type: "classic"},
		{ID: 43, Name: "Veggie Burger with Sweet Potato Fries", Description: "Homemade veggie patty in a sesame bun with all the fixings.", Price: 340, BasePopularity: 7, MealSection: SectionDinner, FlavorCategory: "hearty", Type: "fast food"},
	},
	SectionDrinks: {
		{ID: 7, Name: "Cold Coffee", Description: "Rich and creamy cold coffee.", Price: 180, BasePopularity: 8, MealSection: SectionDrinks, FlavorCategory: "cold", Type: "sweet"},
		{ID: 8, Name: "Masala Chai", Description: "Traditional Indian spiced tea.", Price: 90, BasePopularity: 10, MealSection: SectionDrinks, FlavorCategory: "hot", Type: "classic"},
		{ID: 24, Name: "Fresh Lime Soda", Description: "Refreshing lime soda, available sweet, salty, or mixed.", Price: 120, BasePopularity: 9, MealSection: SectionDrinks, FlavorCategory: "cold", Type: "refreshing"},
		{ID: 25, Name: "Espresso", Description: "Strong, concentrated coffee shot.", Price: 100, BasePopularity: 6, MealSection: SectionDrinks, FlavorCategory: "hot", Type: "coffee"},
		{ID: 26, Name: "Green Tea", Description: "Light and healthy green tea, perfect for digestion.", Price: 80, BasePopularity: 7, MealSection: SectionDrinks, FlavorCategory: "hot", Type: "healthy"},
		{ID: 27, Name: "Mango Lassi", Description: "Sweet and creamy yogurt drink blended with fresh mango pulp.", Price: 160, BasePopularity: 8, MealSection: SectionDrinks, FlavorCategory: "cold", Type: "sweet"},
		{ID: 28, Name: "Iced Tea (Peach)", Description: "Chilled black tea infused with sweet peach flavor.", Price: 140, BasePopularity: 7, MealSection: SectionDrinks, FlavorCategory: "cold", Type: "sweet"},
		{ID: 44, Name: "Caramel Frappe", Description: "Blended coffee with caramel syrup and whipped cream.", Price: 220, BasePopularity: 9, MealSection: SectionDrinks, FlavorCategory: "cold", Type: "sweet"},
		{ID: 45, Name: "Hot Chocolate", Description: "Rich, dark melted chocolate with steamed milk.", Price: 190, BasePopularity: 8, MealSection: SectionDrinks, FlavorCategory: "hot", Type: "sweet"},
		{ID: 46, Name: "Ginger Lemon Honey Tea", Description: "A soothing, warm beverage for relaxation and immunity.", Price: 110, BasePopularity: 7, MealSection: SectionDrinks, FlavorCategory: "hot", Type: "healthy"},
		{ID: 47, Name: "Watermelon Juice", Description: "Freshly squeezed watermelon juice, a natural coolant.", Price: 150, BasePopularity: 8, MealSection: SectionDrinks, FlavorCategory: "cold", Type: "refreshing"},
		{ID: 48, Name: "Cappuccino", Description: "Espresso with steamed milk and a thick layer of foam.", Price: 130, BasePopularity: 9, MealSection: SectionDrinks, FlavorCategory: "hot", Type: "coffee"},
	},
}

var tableData = []Table{
	{ID: 1, Name: "Table 1", Capacity: 2, Properties: []string{"window", "quiet"}},
	{ID: 2, Name: "Table 2", Capacity: 2, Properties: []string{"window"}},
	{ID: 3, Name: "Table 3", Capacity: 4, Properties: []string{"quiet", "corner"}},
	{ID: 4, Name: "Table 4", Capacity: 4, Properties: []string{"social"}},
	{ID: 5, Name: "Table 5", Capacity: 6, Properties: []string{"social", "group"}},
	{ID: 6, Name: "Table 6", Capacity: 8, Properties: []string{"group", "private"}},
}

var imageMap = map[int]string{
	1: "images/masalaoats.jpg", 2: "images/pancakes.jpg", 3: "images/Chicken-Biryani.jpg",
	4: "images/vegthali.jpg", 5: "images/paneer.png", 6: "images/grilledfish.jpg",
	7: "images/coldcoffee.jpg", 8: "images/masalachai.jpg", 9: "images/alooparatha.jpg",
	10: "images/fruit_smoothie_bowl.jpg", 11: "images/scrambled_eggs.jpg", 12: "images/dosa.jpg",
	13: "images/french_toast.jpg", 14: "images/paneer_butter_masala.jpg", 15: "images/chicken_wrap.jpg",
	16: "images/pasta_arrabiata.jpg", 17: "images/dal_makhani.jpg", 18: "images/caesar_salad.jpg",
	19: "images/mushroom_do_pyaza.jpg", 20: "images/chicken_korma.jpg", 21: "images/veg_pulao.jpg",
	22: "images/shepherds_pie.jpg", 23: "images/roasted_chicken.jpg", 24: "images/fresh_lime_soda.jpg",
	25: "images/espresso.jpg", 26: "images/green_tea.jpg", 27: "images/mango_lassi.jpg",
	28: "images/iced_peach_tea.jpg", 29: "images/muesli.jpg", 30: "images/uttapam.jpg",
	31: "images/waffles.jpg", 32: "images/cheela.jpg", 33: "images/omelette_pav.jpg",
	34: "images/rajmachawal.jpg", 35: "images/quinoa_bowl.jpg", 36: "images/club_sandwich.jpg",
	37: "images/mutter_paneer.jpg", 38: "images/tuna_melt.jpg", 39: "images/baingan_bharta.jpg",
	40: "images/chicken_stroganoff.jpg", 41: "images/minestrone_soup.jpg", 42: "images/tandoori_prawns.jpg",
	43: "images/veggie_burger.jpg", 44: "images/caramel_frappe.jpg", 45: "images/hot_chocolate.jpg",
	46: "images/ginger_tea.jpg", 47: "images/watermelon_juice.jpg", 48: "images/cappuccino.jpg",
}
