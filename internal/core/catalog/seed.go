package catalog

import "pantry-matcher/internal/pkg/common"

// communitySeedRecipes 社群預設食譜，id 3001 起，可被墓碑標記刪除
func communitySeedRecipes() []common.Recipe {
	return []common.Recipe{
		{
			ID:          3001,
			Title:       "No-Cook Chickpea Salad Wrap",
			Ingredients: []string{"canned chickpeas", "tortilla", "lemon", "olive oil", "garlic powder", "salt", "pepper", "spinach"},
			Instructions: []string{
				"Mash drained chickpeas with lemon juice, olive oil, garlic powder, salt, and pepper",
				"Lay spinach on a tortilla",
				"Spoon chickpea mixture on top and wrap tightly",
				"Serve immediately or chill for 10 minutes",
			},
			PrepTime:   10,
			CookTime:   0,
			Servings:   2,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"community", "no-cook", "quick"},
			Dietary: common.Dietary{
				Vegan:      true,
				Vegetarian: common.BoolPtr(true),
				GlutenFree: false,
				Halal:      true,
				NutFree:    true,
				DairyFree:  common.BoolPtr(true),
				EggFree:    common.BoolPtr(true),
			},
			Appliances: []string{common.ApplianceNone},
			Category:   "lunch",
			Source:     common.SourceCommunity,
		},
		{
			ID:          3002,
			Title:       "Microwave Mug Omelette",
			Ingredients: []string{"2 eggs", "spinach", "tomato", "salt", "pepper"},
			Instructions: []string{
				"Whisk eggs, salt, and pepper in a microwave-safe mug",
				"Stir in chopped spinach and diced tomato",
				"Microwave 60-90 seconds, stirring halfway, until set",
			},
			PrepTime:   3,
			CookTime:   2,
			Servings:   1,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"community", "microwave", "quick"},
			Dietary: common.Dietary{
				Vegan:      false,
				Vegetarian: common.BoolPtr(true),
				GlutenFree: true,
				Halal:      true,
				NutFree:    true,
				DairyFree:  common.BoolPtr(true),
				EggFree:    common.BoolPtr(false),
			},
			Appliances: []string{common.ApplianceMicrowave},
			Category:   "breakfast",
			Source:     common.SourceCommunity,
		},
		{
			ID:          3003,
			Title:       "One-Pot Tomato Lentil Pasta",
			Ingredients: []string{"pasta", "canned lentils", "canned tomatoes", "garlic powder", "onion powder", "olive oil", "salt", "pepper"},
			Instructions: []string{
				"Add pasta, lentils, tomatoes, spices, and water to a pot",
				"Simmer until pasta is al dente and liquid is mostly absorbed",
				"Finish with olive oil and adjust seasoning",
			},
			PrepTime:   5,
			CookTime:   15,
			Servings:   3,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"community", "one-pot", "budget"},
			Dietary: common.Dietary{
				Vegan:      true,
				Vegetarian: common.BoolPtr(true),
				GlutenFree: false,
				Halal:      true,
				NutFree:    true,
				DairyFree:  common.BoolPtr(true),
				EggFree:    common.BoolPtr(true),
			},
			Appliances: []string{common.ApplianceStove},
			Category:   "dinner",
			Source:     common.SourceCommunity,
		},
		{
			ID:          3004,
			Title:       "Peanut Butter Banana Overnight Oats",
			Ingredients: []string{"oats", "milk", "peanut butter", "banana", "honey"},
			Instructions: []string{
				"Combine oats, milk, peanut butter, and honey in a jar",
				"Stir well and refrigerate overnight",
				"Top with sliced banana before serving",
			},
			PrepTime:   5,
			CookTime:   0,
			Servings:   1,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"community", "no-cook", "meal-prep"},
			Dietary: common.Dietary{
				Vegan:      false,
				Vegetarian: common.BoolPtr(true),
				GlutenFree: false,
				Halal:      true,
				NutFree:    false,
				DairyFree:  common.BoolPtr(false),
				EggFree:    common.BoolPtr(true),
			},
			Appliances: []string{common.ApplianceNone},
			Category:   "breakfast",
			Source:     common.SourceCommunity,
		},
	}
}

// pantrySeedRecipes 內建常備食譜，只填必要飲食欄位，其餘交由 Enrich 推斷補齊
func pantrySeedRecipes() []common.Recipe {
	return []common.Recipe{
		{
			ID:          1,
			Title:       "Simple Rice & Beans Bowl",
			Ingredients: []string{"rice", "beans", "onion", "garlic", "cumin"},
			Instructions: []string{
				"Cook rice according to package directions",
				"Sauté diced onion and minced garlic in a pan",
				"Add drained beans and cumin, heat through",
				"Serve beans over rice",
				"Optional: top with cheese or salsa if available",
			},
			PrepTime:   5,
			CookTime:   25,
			Servings:   4,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"vegetarian", "budget-friendly", "protein-rich"},
			ImageURL:   "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: true, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceStove},
			Category:   "dinner",
			Source:     common.SourcePantry,
		},
		{
			ID:          2,
			Title:       "Quick Pasta Marinara",
			Ingredients: []string{"pasta", "tomatoes", "garlic", "olive oil", "basil"},
			Instructions: []string{
				"Boil water and cook pasta until al dente",
				"While pasta cooks, sauté minced garlic in olive oil",
				"Add crushed tomatoes and simmer for 10 minutes",
				"Drain pasta and toss with sauce",
				"Garnish with fresh or dried basil",
			},
			PrepTime:   5,
			CookTime:   15,
			Servings:   3,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"vegetarian", "quick", "italian"},
			ImageURL:   "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: false, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceStove},
			Category:   "dinner",
			Source:     common.SourcePantry,
		},
		{
			ID:          3,
			Title:       "Vegetable Stir-Fry",
			Ingredients: []string{"rice", "carrots", "broccoli", "soy sauce", "garlic", "ginger"},
			Instructions: []string{
				"Cook rice and set aside",
				"Chop vegetables into bite-sized pieces",
				"Heat oil in a large pan or wok",
				"Stir-fry vegetables with minced garlic and ginger",
				"Add soy sauce and serve over rice",
			},
			PrepTime:   10,
			CookTime:   15,
			Servings:   4,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"vegetarian", "healthy", "asian"},
			ImageURL:   "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: true, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceStove},
			Category:   "dinner",
			Source:     common.SourcePantry,
		},
		{
			ID:          4,
			Title:       "Egg Fried Rice",
			Ingredients: []string{"rice", "eggs", "soy sauce", "peas", "carrots", "garlic"},
			Instructions: []string{
				"Use day-old rice if possible (freshly cooked works too)",
				"Scramble eggs in a large pan and set aside",
				"Stir-fry diced vegetables in the same pan",
				"Add rice and break up any clumps",
				"Mix in eggs and soy sauce, stir well",
			},
			PrepTime:   10,
			CookTime:   10,
			Servings:   3,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"budget-friendly", "quick", "protein-rich"},
			ImageURL:   "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=800",
			Dietary:    common.Dietary{Vegan: false, GlutenFree: true, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceStove},
			Category:   "dinner",
			Source:     common.SourcePantry,
		},
		{
			ID:          5,
			Title:       "Black Bean Tacos",
			Ingredients: []string{"beans", "tortillas", "onion", "cumin", "cheese", "lettuce"},
			Instructions: []string{
				"Sauté diced onion until soft",
				"Add black beans and cumin, mash slightly",
				"Warm tortillas in a dry pan",
				"Fill tortillas with bean mixture",
				"Top with shredded cheese and lettuce",
			},
			PrepTime:   5,
			CookTime:   10,
			Servings:   4,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"vegetarian", "mexican", "quick"},
			ImageURL:   "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=800",
			Dietary:    common.Dietary{Vegan: false, GlutenFree: true, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceStove},
			Category:   "lunch",
			Source:     common.SourcePantry,
		},
		{
			ID:          6,
			Title:       "Tomato & Basil Soup",
			Ingredients: []string{"tomatoes", "onion", "garlic", "basil", "vegetable broth"},
			Instructions: []string{
				"Sauté diced onion and garlic until fragrant",
				"Add crushed tomatoes and vegetable broth",
				"Simmer for 20 minutes",
				"Blend until smooth (or leave chunky)",
				"Stir in fresh or dried basil",
			},
			PrepTime:   5,
			CookTime:   25,
			Servings:   4,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"vegetarian", "soup", "comfort-food"},
			ImageURL:   "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: true, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceStove},
			Category:   "soup",
			Source:     common.SourcePantry,
		},
		{
			ID:          7,
			Title:       "Peanut Butter Banana Oatmeal",
			Ingredients: []string{"oats", "banana", "peanut butter", "milk", "honey"},
			Instructions: []string{
				"Cook oats with milk according to package directions",
				"Slice banana",
				"Top cooked oatmeal with banana slices",
				"Add a spoonful of peanut butter",
				"Drizzle with honey if desired",
			},
			PrepTime:   2,
			CookTime:   5,
			Servings:   1,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"breakfast", "healthy", "quick"},
			ImageURL:   "https://images.unsplash.com/photo-1517673776422-9b97b44b8b18?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: true, Halal: true, NutFree: false},
			Appliances: []string{common.ApplianceMicrowave},
			Category:   "breakfast",
			Source:     common.SourcePantry,
		},
		{
			ID:          8,
			Title:       "Microwave Baked Potato",
			Ingredients: []string{"potatoes", "olive oil", "salt", "pepper"},
			Instructions: []string{
				"Wash potato and pierce with a fork several times",
				"Rub with olive oil and sprinkle with salt",
				"Place on microwave-safe plate",
				"Microwave on high for 5-7 minutes until tender",
				"Top with your choice of toppings (cheese, beans, veggies)",
			},
			PrepTime:   2,
			CookTime:   7,
			Servings:   1,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"quick", "microwave-friendly", "customizable"},
			ImageURL:   "https://images.unsplash.com/photo-1518013431117-eb1465fa5752?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: true, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceMicrowave},
			Category:   "lunch",
			Source:     common.SourcePantry,
		},
		{
			ID:          9,
			Title:       "Lentil Curry",
			Ingredients: []string{"lentils", "onion", "tomatoes", "curry powder", "coconut milk"},
			Instructions: []string{
				"Sauté diced onion until translucent",
				"Add curry powder and cook for 1 minute",
				"Add lentils, tomatoes, and coconut milk",
				"Simmer for 25-30 minutes until lentils are tender",
				"Serve over rice",
			},
			PrepTime:   5,
			CookTime:   35,
			Servings:   6,
			Difficulty: common.DifficultyMedium,
			Tags:       []string{"vegetarian", "indian", "protein-rich"},
			ImageURL:   "https://images.unsplash.com/photo-1588166524941-3bf61a9c41db?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: true, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceStove},
			Category:   "dinner",
			Source:     common.SourcePantry,
		},
		{
			ID:          10,
			Title:       "Veggie Quesadilla",
			Ingredients: []string{"tortillas", "cheese", "bell peppers", "onion", "beans"},
			Instructions: []string{
				"Sauté sliced peppers and onions until soft",
				"Place tortilla in a pan",
				"Add cheese, vegetables, and beans on half",
				"Fold tortilla in half and cook until golden",
				"Flip and cook other side, cut into wedges",
			},
			PrepTime:   5,
			CookTime:   10,
			Servings:   2,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"vegetarian", "quick", "mexican"},
			ImageURL:   "https://images.unsplash.com/photo-1618040996337-56904b7850b9?w=800",
			Dietary:    common.Dietary{Vegan: false, GlutenFree: true, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceStove},
			Category:   "lunch",
			Source:     common.SourcePantry,
		},
		{
			ID:          11,
			Title:       "Instant Ramen Upgrade",
			Ingredients: []string{"ramen noodles", "eggs", "frozen vegetables", "soy sauce", "green onions"},
			Instructions: []string{
				"Boil water in kettle or microwave",
				"Add ramen noodles and frozen vegetables",
				"Let sit for 3 minutes",
				"Add a beaten egg and stir (or microwave egg separately)",
				"Season with soy sauce and top with green onions",
			},
			PrepTime:   2,
			CookTime:   5,
			Servings:   1,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"quick", "budget-friendly", "dorm-friendly"},
			ImageURL:   "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=800",
			Dietary:    common.Dietary{Vegan: false, GlutenFree: false, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceMicrowave, common.ApplianceKettle},
			Category:   "lunch",
			Source:     common.SourcePantry,
		},
		{
			ID:          12,
			Title:       "Microwave Mac & Cheese",
			Ingredients: []string{"pasta", "milk", "cheese", "butter", "salt"},
			Instructions: []string{
				"Place pasta in microwave-safe bowl with water to cover",
				"Microwave for 8-10 minutes, stirring halfway",
				"Drain excess water",
				"Add milk, butter, and shredded cheese",
				"Microwave for 1 more minute and stir until creamy",
			},
			PrepTime:   2,
			CookTime:   11,
			Servings:   2,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"comfort-food", "microwave-friendly", "quick"},
			ImageURL:   "https://images.unsplash.com/photo-1543339494-b4cd4f7ba686?w=800",
			Dietary:    common.Dietary{Vegan: false, GlutenFree: false, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceMicrowave},
			Category:   "dinner",
			Source:     common.SourcePantry,
		},
		{
			ID:          13,
			Title:       "Apple Cinnamon Oats (No Cook)",
			Ingredients: []string{"oats", "milk", "apple", "cinnamon", "honey"},
			Instructions: []string{
				"Mix oats and milk in a jar or bowl",
				"Dice apple and add to mixture",
				"Sprinkle with cinnamon and drizzle honey",
				"Stir well and refrigerate overnight",
				"Enjoy cold the next morning",
			},
			PrepTime:   5,
			CookTime:   0,
			Servings:   1,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"breakfast", "no-cook", "overnight", "healthy"},
			ImageURL:   "https://images.unsplash.com/photo-1517673776422-9b97b44b8b18?w=800",
			Dietary:    common.Dietary{Vegan: false, GlutenFree: true, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceNone},
			Category:   "breakfast",
			Source:     common.SourcePantry,
		},
		{
			ID:          14,
			Title:       "Bean & Veggie Wrap",
			Ingredients: []string{"tortillas", "beans", "lettuce", "tomatoes", "salsa"},
			Instructions: []string{
				"Warm beans in microwave if desired",
				"Warm tortilla for 15-20 seconds in microwave",
				"Layer beans, chopped lettuce, and tomatoes",
				"Add salsa on top",
				"Roll up and enjoy",
			},
			PrepTime:   5,
			CookTime:   1,
			Servings:   1,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"no-cook", "quick", "portable"},
			ImageURL:   "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: true, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceMicrowave},
			Category:   "lunch",
			Source:     common.SourcePantry,
		},
		{
			ID:          15,
			Title:       "Fruit & Yogurt Parfait",
			Ingredients: []string{"yogurt", "granola", "banana", "berries", "honey"},
			Instructions: []string{
				"Layer yogurt in a cup or bowl",
				"Add sliced banana and berries",
				"Sprinkle granola on top",
				"Drizzle with honey",
				"No cooking required!",
			},
			PrepTime:   3,
			CookTime:   0,
			Servings:   1,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"breakfast", "no-cook", "healthy", "quick"},
			ImageURL:   "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=800",
			Dietary:    common.Dietary{Vegan: false, GlutenFree: false, Halal: true, NutFree: false},
			Appliances: []string{common.ApplianceNone},
			Category:   "breakfast",
			Source:     common.SourcePantry,
		},
		{
			ID:          16,
			Title:       "PB&J Energy Bites",
			Ingredients: []string{"oats", "peanut butter", "honey", "dried fruit", "cinnamon"},
			Instructions: []string{
				"Mix oats, peanut butter, and honey in a bowl",
				"Chop dried fruit and add to mixture",
				"Add cinnamon and mix well",
				"Roll into small balls",
				"Refrigerate for 30 minutes and enjoy",
			},
			PrepTime:   10,
			CookTime:   0,
			Servings:   12,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"snack", "no-cook", "portable", "energy-boost"},
			ImageURL:   "https://images.unsplash.com/photo-1590080876192-4b93e3b0e8f0?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: true, Halal: true, NutFree: false},
			Appliances: []string{common.ApplianceNone},
			Category:   "snack",
			Source:     common.SourcePantry,
		},
		{
			ID:          17,
			Title:       "Veggie Pasta Salad",
			Ingredients: []string{"pasta", "bell peppers", "tomatoes", "olive oil", "Italian seasoning"},
			Instructions: []string{
				"Cook pasta according to package directions",
				"Rinse with cold water and drain",
				"Chop vegetables into small pieces",
				"Mix pasta with vegetables",
				"Dress with olive oil and Italian seasoning",
			},
			PrepTime:   5,
			CookTime:   10,
			Servings:   4,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"cold-dish", "meal-prep", "portable"},
			ImageURL:   "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: false, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceStove, common.ApplianceMicrowave},
			Category:   "lunch",
			Source:     common.SourcePantry,
		},
		{
			ID:          18,
			Title:       "Hummus & Veggie Snack Plate",
			Ingredients: []string{"hummus", "carrots", "bell peppers", "cucumbers", "pretzels"},
			Instructions: []string{
				"Wash and slice vegetables into sticks",
				"Arrange on a plate",
				"Add hummus to center for dipping",
				"Add pretzels on the side",
				"No cooking needed!",
			},
			PrepTime:   5,
			CookTime:   0,
			Servings:   1,
			Difficulty: common.DifficultyEasy,
			Tags:       []string{"snack", "no-cook", "healthy", "quick"},
			ImageURL:   "https://images.unsplash.com/photo-1607532941433-304659e8198a?w=800",
			Dietary:    common.Dietary{Vegan: true, GlutenFree: false, Halal: true, NutFree: true},
			Appliances: []string{common.ApplianceNone},
			Category:   "snack",
			Source:     common.SourcePantry,
		},
	}
}
