// internal/domain/catalog/seed.go
package catalog

import "github.com/your-org/mealbox-backend/internal/pkg/i18n"

// Seed data for the mock catalog. Mirrors what a real menu service would
// return; prices are in SAR.

func seedCategories() []Category {
	return []Category{
		{ID: "cat-breakfast", Name: i18n.Text{AR: "فطور", EN: "Breakfast"}, Slug: "breakfast", Icon: "fa-mug-hot"},
		{ID: "cat-lunch", Name: i18n.Text{AR: "غداء", EN: "Lunch"}, Slug: "lunch", Icon: "fa-utensils"},
		{ID: "cat-salads", Name: i18n.Text{AR: "سلطات", EN: "Salads"}, Slug: "salads", Icon: "fa-leaf"},
		{ID: "cat-snacks", Name: i18n.Text{AR: "وجبات خفيفة", EN: "Snacks"}, Slug: "snacks", Icon: "fa-cookie-bite"},
	}
}

func seedMeals() []Meal {
	return []Meal{
		{
			ID:         "meal-shakshuka",
			CategoryID: "cat-breakfast",
			Name:       i18n.Text{AR: "شكشوكة بالبيض", EN: "Shakshuka"},
			Description: i18n.Text{
				AR: "بيض مطهو في صلصة طماطم متبلة مع الفلفل",
				EN: "Eggs poached in a spiced tomato and pepper sauce",
			},
			Image:     "/images/meals/shakshuka.jpg",
			Nutrition: Nutrition{Kcal: 320, Protein: 18, Carbs: 14, Fat: 21},
			PriceSAR:  22,
		},
		{
			ID:         "meal-oats-bowl",
			CategoryID: "cat-breakfast",
			Name:       i18n.Text{AR: "شوفان بالتمر واللوز", EN: "Date & Almond Oats"},
			Description: i18n.Text{
				AR: "شوفان مطبوخ بالحليب مع التمر واللوز المحمص",
				EN: "Oats cooked in milk with dates and toasted almonds",
			},
			Image:     "/images/meals/oats-bowl.jpg",
			Nutrition: Nutrition{Kcal: 410, Protein: 14, Carbs: 62, Fat: 12},
			PriceSAR:  18,
			Tags:      []DietTag{TagVegan},
		},
		{
			ID:         "meal-grilled-chicken",
			CategoryID: "cat-lunch",
			Name:       i18n.Text{AR: "صدر دجاج مشوي مع الأرز", EN: "Grilled Chicken & Rice"},
			Description: i18n.Text{
				AR: "صدر دجاج متبل مشوي يقدم مع أرز بسمتي وخضار",
				EN: "Marinated grilled chicken breast with basmati rice and vegetables",
			},
			Image:     "/images/meals/grilled-chicken.jpg",
			Nutrition: Nutrition{Kcal: 520, Protein: 42, Carbs: 48, Fat: 16},
			PriceSAR:  32,
			Tags:      []DietTag{TagHighProtein},
		},
		{
			ID:         "meal-salmon-teriyaki",
			CategoryID: "cat-lunch",
			Name:       i18n.Text{AR: "سلمون ترياكي", EN: "Teriyaki Salmon"},
			Description: i18n.Text{
				AR: "فيليه سلمون بصلصة الترياكي مع كينوا",
				EN: "Salmon fillet glazed with teriyaki sauce over quinoa",
			},
			Image:     "/images/meals/salmon-teriyaki.jpg",
			Nutrition: Nutrition{Kcal: 480, Protein: 36, Carbs: 38, Fat: 19},
			PriceSAR:  45,
			Tags:      []DietTag{TagHighProtein, TagGlutenFree},
		},
		{
			ID:         "meal-beef-kabsa",
			CategoryID: "cat-lunch",
			Name:       i18n.Text{AR: "كبسة لحم قليلة الدهون", EN: "Lean Beef Kabsa"},
			Description: i18n.Text{
				AR: "كبسة لحم بقري قليل الدهن مع أرز بني",
				EN: "Traditional kabsa with lean beef and brown rice",
			},
			Image:     "/images/meals/beef-kabsa.jpg",
			Nutrition: Nutrition{Kcal: 560, Protein: 38, Carbs: 58, Fat: 18},
			PriceSAR:  38,
		},
		{
			ID:         "meal-keto-steak",
			CategoryID: "cat-lunch",
			Name:       i18n.Text{AR: "ستيك كيتو بالزبدة", EN: "Keto Butter Steak"},
			Description: i18n.Text{
				AR: "شرائح ستيك بزبدة الأعشاب مع بروكلي مشوي",
				EN: "Sliced steak in herb butter with roasted broccoli",
			},
			Image:     "/images/meals/keto-steak.jpg",
			Nutrition: Nutrition{Kcal: 610, Protein: 44, Carbs: 9, Fat: 45},
			PriceSAR:  52,
			Tags:      []DietTag{TagKeto, TagGlutenFree, TagHighProtein},
		},
		{
			ID:         "meal-quinoa-salad",
			CategoryID: "cat-salads",
			Name:       i18n.Text{AR: "سلطة كينوا بالأفوكادو", EN: "Quinoa Avocado Salad"},
			Description: i18n.Text{
				AR: "كينوا مع أفوكادو وخضار ورقية وصلصة ليمون",
				EN: "Quinoa with avocado, leafy greens and a lemon dressing",
			},
			Image:     "/images/meals/quinoa-salad.jpg",
			Nutrition: Nutrition{Kcal: 380, Protein: 12, Carbs: 42, Fat: 19},
			PriceSAR:  26,
			Tags:      []DietTag{TagVegan, TagGlutenFree},
		},
		{
			ID:         "meal-fattoush",
			CategoryID: "cat-salads",
			Name:       i18n.Text{AR: "فتوش", EN: "Fattoush"},
			Description: i18n.Text{
				AR: "سلطة فتوش بخبز محمص ودبس الرمان",
				EN: "Fattoush salad with toasted bread and pomegranate molasses",
			},
			Image:     "/images/meals/fattoush.jpg",
			Nutrition: Nutrition{Kcal: 240, Protein: 6, Carbs: 30, Fat: 11},
			PriceSAR:  19,
			Tags:      []DietTag{TagVegan},
		},
		{
			ID:         "meal-protein-box",
			CategoryID: "cat-snacks",
			Name:       i18n.Text{AR: "صندوق البروتين", EN: "Protein Snack Box"},
			Description: i18n.Text{
				AR: "بيض مسلوق وجبن ومكسرات وخضار مقطعة",
				EN: "Boiled eggs, cheese, nuts and vegetable sticks",
			},
			Image:     "/images/meals/protein-box.jpg",
			Nutrition: Nutrition{Kcal: 290, Protein: 21, Carbs: 10, Fat: 19},
			PriceSAR:  17,
			Tags:      []DietTag{TagHighProtein, TagGlutenFree},
		},
		{
			ID:         "meal-fruit-cup",
			CategoryID: "cat-snacks",
			Name:       i18n.Text{AR: "كوب فواكه موسمية", EN: "Seasonal Fruit Cup"},
			Description: i18n.Text{
				AR: "تشكيلة فواكه طازجة مقطعة",
				EN: "Assortment of fresh cut seasonal fruit",
			},
			Image:     "/images/meals/fruit-cup.jpg",
			Nutrition: Nutrition{Kcal: 120, Protein: 2, Carbs: 28, Fat: 1},
			PriceSAR:  12,
			Tags:      []DietTag{TagVegan, TagGlutenFree},
		},
	}
}

func seedPlans() []SubscriptionPlan {
	return []SubscriptionPlan{
		{
			ID:   "plan-balanced-weekly",
			Name: i18n.Text{AR: "الخطة المتوازنة", EN: "Balanced Plan"},
			Description: i18n.Text{
				AR: "ثلاث وجبات متوازنة يومياً طوال الأسبوع",
				EN: "Three balanced meals a day, all week long",
			},
			Period:       BillingWeekly,
			BasePriceSAR: 210,
			MealsPerDay:  3,
			DaysPerWeek:  7,
		},
		{
			ID:   "plan-worklunch-weekly",
			Name: i18n.Text{AR: "خطة غداء العمل", EN: "Work Lunch Plan"},
			Description: i18n.Text{
				AR: "وجبة غداء واحدة في أيام العمل",
				EN: "One lunch on working days",
			},
			Period:       BillingWeekly,
			BasePriceSAR: 90,
			MealsPerDay:  1,
			DaysPerWeek:  5,
		},
		{
			ID:   "plan-athlete-monthly",
			Name: i18n.Text{AR: "خطة الرياضيين", EN: "Athlete Plan"},
			Description: i18n.Text{
				AR: "وجبتان غنيتان بالبروتين يومياً لستة أيام",
				EN: "Two high-protein meals a day, six days a week",
			},
			Period:       BillingMonthly,
			BasePriceSAR: 1080,
			MealsPerDay:  2,
			DaysPerWeek:  6,
		},
	}
}
