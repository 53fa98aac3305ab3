// Package content holds the static learning material: sight words,
// reading passages, comprehension stories, barangay complaints,
// recipes and synonym/antonym word sets. All data is immutable.
package content

// Question is a multiple-choice comprehension question.
type Question struct {
	Q       string
	Choices []string
	Answer  int // index into Choices
}

// Passage is a short reading-fluency text with follow-up questions.
type Passage struct {
	Level     string
	Title     string
	Text      string
	Questions []Question
}

// Story is a longer multi-paragraph comprehension text. Paragraphs are
// separated by blank lines in Text.
type Story struct {
	Level     string
	Title     string
	Text      string
	Questions []Question
}

// Complaint is one barangay-captain scenario: the resident's problem,
// four responses, the literacy-correct index and the per-choice
// happiness impact.
type Complaint struct {
	Complaint       string
	Choices         []string
	Correct         int
	HappinessImpact []int
}

// Recipe is a readable recipe followed by comprehension questions.
type Recipe struct {
	Title       string
	Ingredients []string
	Directions  []string
	Questions   []Question
}

// WordSet is one synonym/antonym exercise: the prompt word, its
// synonym and antonym, and the four displayed choices.
type WordSet struct {
	Word    string
	Synonym string
	Antonym string
	Choices []string
}

// SightWords is the Grade 6 sight-word pool for the word-recognition
// assessment.
var SightWords = []string{
	"because", "through", "thought", "enough", "answer",
	"always", "together", "different", "important", "between",
	"question", "mountain", "country", "yesterday", "morning",
	"brother", "sister", "family", "school", "teacher",
	"friend", "people", "children", "animal", "water",
	"afraid", "beautiful", "carefully", "community", "delicious",
	"education", "favorite", "grateful", "harvest", "island",
	"journey", "kindness", "language", "market", "neighbor",
}

// Passages are the Grade 1-3 reading-fluency texts.
var Passages = []Passage{
	{
		Level: "Grade 1-2",
		Title: "Si Ana at ang Puno",
		Text: "Ana planted a mango tree behind her house. Every morning " +
			"she watered it before going to school. After three years the " +
			"tree grew tall and gave sweet fruit. Ana shared the mangoes " +
			"with her neighbors.",
		Questions: []Question{
			{
				Q:       "What did Ana plant?",
				Choices: []string{"A mango tree", "A coconut tree", "A flower"},
				Answer:  0,
			},
			{
				Q:       "When did Ana water the tree?",
				Choices: []string{"Every night", "Every morning", "Once a week"},
				Answer:  1,
			},
			{
				Q:       "What did Ana do with the fruit?",
				Choices: []string{"She sold it", "She kept it all", "She shared it with neighbors"},
				Answer:  2,
			},
		},
	},
	{
		Level: "Grade 2-3",
		Title: "Ang Bagong Bisikleta",
		Text: "Marco saved his allowance for six months to buy a bicycle. " +
			"When he finally bought it, he used it to deliver bread for his " +
			"uncle's bakery every weekend. Soon Marco was saving money " +
			"again, this time for his sister's school supplies.",
		Questions: []Question{
			{
				Q:       "How long did Marco save for the bicycle?",
				Choices: []string{"Six weeks", "Six months", "One year"},
				Answer:  1,
			},
			{
				Q:       "What did Marco deliver?",
				Choices: []string{"Bread", "Newspapers", "Fish"},
				Answer:  0,
			},
			{
				Q:       "What was Marco saving for next?",
				Choices: []string{"A new bicycle", "A basketball", "His sister's school supplies"},
				Answer:  2,
			},
		},
	},
}

// Stories are the Grade 4-6 comprehension texts.
var Stories = []Story{
	{
		Level: "Grade 4-5",
		Title: "Ang Ilog ng Barangay",
		Text: "The river beside Barangay Malinis was once full of fish. " +
			"Families fished there every afternoon, and children swam near " +
			"the old bamboo bridge.\n\n" +
			"One summer the water turned gray. Plastic bags hung on the " +
			"rocks and the fish disappeared. The barangay council called a " +
			"meeting, and Kapitana Reyes asked every purok to send " +
			"volunteers.\n\n" +
			"For one month the volunteers collected garbage every Saturday " +
			"and posted signs about proper waste disposal. By the next " +
			"rainy season, small fish had returned to the shallows, and the " +
			"council passed an ordinance to keep the river clean.",
		Questions: []Question{
			{
				Q:       "Why did the fish disappear from the river?",
				Choices: []string{"The water became polluted", "Fishermen caught them all", "The river dried up", "A storm washed them away"},
				Answer:  0,
			},
			{
				Q:       "What did Kapitana Reyes ask of every purok?",
				Choices: []string{"To pay a fine", "To send volunteers", "To stop fishing", "To build a new bridge"},
				Answer:  1,
			},
			{
				Q:       "What did the council do to protect the river afterwards?",
				Choices: []string{"Closed the river", "Built a fence", "Passed a clean-river ordinance", "Moved the barangay"},
				Answer:  2,
			},
		},
	},
	{
		Level: "Grade 5-6",
		Title: "Ang Liham ni Lolo",
		Text: "When Lolo Andres passed away, he left each grandchild a " +
			"sealed letter. Liza's letter held no money, only a list of " +
			"five books and a note: read one each summer, then pass it on.\n\n" +
			"Liza was disappointed at first. Her cousins had received old " +
			"coins and a watch. But she read the first book that April, a " +
			"story about a fisherman's daughter who became a teacher.\n\n" +
			"Five summers later Liza had read all five books and lent them " +
			"to eleven classmates. On the last page of the last book she " +
			"found a second note in Lolo's handwriting: a library is an " +
			"inheritance that grows when it is given away.",
		Questions: []Question{
			{
				Q:       "What did Liza inherit from Lolo Andres?",
				Choices: []string{"Old coins", "A watch", "A letter with a list of books", "A fishing boat"},
				Answer:  2,
			},
			{
				Q:       "How did Liza feel about the letter at first?",
				Choices: []string{"Disappointed", "Proud", "Frightened", "Amused"},
				Answer:  0,
			},
			{
				Q:       "What lesson does the second note teach?",
				Choices: []string{"Money is the best gift", "Books must be kept safe at home", "Reading is only for summer", "Shared knowledge grows in value"},
				Answer:  3,
			},
		},
	},
}

// Complaints are the barangay-captain scenarios. The correct choice is
// always the one that uses reading the applicable rule or record.
var Complaints = []Complaint{
	{
		Complaint: "Captain, my neighbor's pig escaped and ate my camote patch! The law says he should pay, but he won't!",
		Choices: []string{
			"Tell the neighbor to be nicer.",
			"Refer to the Barangay Ordinance on Livestock.",
			"Go buy more camote.",
			"Organize a community meeting to discuss animal control.",
		},
		Correct:         1,
		HappinessImpact: []int{5, 20, -10, 10},
	},
	{
		Complaint: "Captain, there's a big pothole on our street that's causing accidents. The barangay should fix it!",
		Choices: []string{
			"Say sorry for the inconvenience.",
			"Check the barangay budget for road repairs.",
			"Tell them to avoid the pothole.",
			"Report it to the municipal engineer.",
		},
		Correct:         1,
		HappinessImpact: []int{5, 20, -5, 15},
	},
	{
		Complaint: "Captain, my child was bullied at school and the teacher did nothing. What should I do?",
		Choices: []string{
			"Talk to the bully's parents personally.",
			"File a formal complaint with the school administration.",
			"Tell my child to fight back.",
			"Seek counseling for both children.",
		},
		Correct:         1,
		HappinessImpact: []int{10, 25, -15, 20},
	},
	{
		Complaint: "Captain, the barangay hall roof is leaking during rains. It's been like this for months!",
		Choices: []string{
			"Express sympathy for the inconvenience.",
			"Review maintenance records and allocate funds for repair.",
			"Suggest they use buckets to catch the water.",
			"Contact the municipal office for assistance.",
		},
		Correct:         1,
		HappinessImpact: []int{5, 20, -5, 15},
	},
	{
		Complaint: "Captain, someone is dumping garbage in our clean barangay. The ordinance says it's illegal!",
		Choices: []string{
			"Ask them politely to stop.",
			"Cite the specific anti-littering ordinance and issue a warning.",
			"Ignore it since it's not your property.",
			"Organize a barangay clean-up drive.",
		},
		Correct:         1,
		HappinessImpact: []int{10, 25, -10, 20},
	},
}

// Recipes for the recipe-reading quiz.
var Recipes = []Recipe{
	{
		Title: "Tinola",
		Ingredients: []string{
			"1 whole chicken, cut into pieces",
			"2 tablespoons cooking oil",
			"1 onion, chopped",
			"2 cloves garlic, minced",
			"1 thumb-sized ginger, sliced",
			"4 cups water",
			"2 green papaya, peeled and cubed",
			"2 tablespoons fish sauce",
			"Salt and pepper to taste",
			"Calamansi (optional)",
		},
		Directions: []string{
			"Heat oil in a pot over medium heat.",
			"Saute garlic, onion, and ginger until fragrant.",
			"Add chicken pieces and cook until lightly browned.",
			"Pour in water and bring to a boil.",
			"Add fish sauce, salt, and pepper.",
			"Simmer for 20 minutes or until chicken is tender.",
			"Add papaya cubes and cook for another 10 minutes.",
			"Serve hot with calamansi on the side.",
		},
		Questions: []Question{
			{
				Q:       "What is the first step in cooking Tinola?",
				Choices: []string{"Add chicken", "Heat oil and saute garlic, onion, and ginger", "Add water"},
				Answer:  1,
			},
			{
				Q:       "How many cups of water are needed?",
				Choices: []string{"2 cups", "4 cups", "6 cups"},
				Answer:  1,
			},
			{
				Q:       "What vegetable is added last?",
				Choices: []string{"Onion", "Ginger", "Green papaya"},
				Answer:  2,
			},
		},
	},
	{
		Title: "Champorado",
		Ingredients: []string{
			"1 cup glutinous rice",
			"4 cups water",
			"1/2 cup cocoa powder",
			"1/2 cup sugar",
			"Evaporated milk for serving",
		},
		Directions: []string{
			"Bring the water to a boil in a pot.",
			"Add the glutinous rice and stir.",
			"Simmer for 15 minutes, stirring so the rice does not stick.",
			"Dissolve the cocoa powder in a little hot water and pour it in.",
			"Add sugar and cook 5 more minutes until thick.",
			"Serve warm with a drizzle of evaporated milk.",
		},
		Questions: []Question{
			{
				Q:       "What kind of rice is used in champorado?",
				Choices: []string{"Glutinous rice", "Brown rice", "Fried rice"},
				Answer:  0,
			},
			{
				Q:       "When is the sugar added?",
				Choices: []string{"Before the rice", "After the cocoa", "Never"},
				Answer:  1,
			},
			{
				Q:       "What is drizzled on top when serving?",
				Choices: []string{"Fish sauce", "Calamansi juice", "Evaporated milk"},
				Answer:  2,
			},
		},
	},
}

// SynonymWords is the synonym/antonym exercise pool. Each set's
// Choices always contain both the synonym and the antonym.
var SynonymWords = []WordSet{
	{Word: "happy", Synonym: "joyful", Antonym: "sad", Choices: []string{"joyful", "sad", "angry", "tired"}},
	{Word: "big", Synonym: "large", Antonym: "small", Choices: []string{"large", "small", "tiny", "huge"}},
	{Word: "fast", Synonym: "quick", Antonym: "slow", Choices: []string{"quick", "slow", "rapid", "speedy"}},
	{Word: "hot", Synonym: "warm", Antonym: "cold", Choices: []string{"warm", "cold", "cool", "freezing"}},
	{Word: "bright", Synonym: "brilliant", Antonym: "dark", Choices: []string{"brilliant", "dark", "shiny", "dim"}},
	{Word: "strong", Synonym: "powerful", Antonym: "weak", Choices: []string{"powerful", "weak", "mighty", "feeble"}},
	{Word: "easy", Synonym: "simple", Antonym: "difficult", Choices: []string{"simple", "difficult", "hard", "complex"}},
	{Word: "new", Synonym: "fresh", Antonym: "old", Choices: []string{"fresh", "old", "modern", "ancient"}},
	{Word: "rich", Synonym: "wealthy", Antonym: "poor", Choices: []string{"wealthy", "poor", "broke", "affluent"}},
	{Word: "clean", Synonym: "spotless", Antonym: "dirty", Choices: []string{"spotless", "dirty", "neat", "filthy"}},
	{Word: "brave", Synonym: "courageous", Antonym: "cowardly", Choices: []string{"courageous", "cowardly", "fearless", "timid"}},
	{Word: "beautiful", Synonym: "pretty", Antonym: "ugly", Choices: []string{"pretty", "ugly", "gorgeous", "hideous"}},
	{Word: "good", Synonym: "excellent", Antonym: "bad", Choices: []string{"excellent", "bad", "great", "terrible"}},
	{Word: "smart", Synonym: "intelligent", Antonym: "stupid", Choices: []string{"intelligent", "stupid", "clever", "dumb"}},
	{Word: "loud", Synonym: "noisy", Antonym: "quiet", Choices: []string{"noisy", "quiet", "booming", "silent"}},
	{Word: "sweet", Synonym: "sugary", Antonym: "bitter", Choices: []string{"sugary", "bitter", "tasty", "sour"}},
	{Word: "empty", Synonym: "vacant", Antonym: "full", Choices: []string{"vacant", "full", "hollow", "packed"}},
	{Word: "high", Synonym: "tall", Antonym: "low", Choices: []string{"tall", "low", "elevated", "short"}},
	{Word: "young", Synonym: "youthful", Antonym: "old", Choices: []string{"youthful", "old", "juvenile", "elderly"}},
	{Word: "wide", Synonym: "broad", Antonym: "narrow", Choices: []string{"broad", "narrow", "spacious", "tight"}},
	{Word: "thick", Synonym: "dense", Antonym: "thin", Choices: []string{"dense", "thin", "heavy", "slim"}},
	{Word: "rough", Synonym: "coarse", Antonym: "smooth", Choices: []string{"coarse", "smooth", "bumpy", "soft"}},
	{Word: "hard", Synonym: "solid", Antonym: "soft", Choices: []string{"solid", "soft", "firm", "tender"}},
	{Word: "wet", Synonym: "damp", Antonym: "dry", Choices: []string{"damp", "dry", "moist", "arid"}},
	{Word: "safe", Synonym: "secure", Antonym: "dangerous", Choices: []string{"secure", "dangerous", "protected", "risky"}},
	{Word: "near", Synonym: "close", Antonym: "far", Choices: []string{"close", "far", "nearby", "distant"}},
	{Word: "early", Synonym: "prompt", Antonym: "late", Choices: []string{"prompt", "late", "timely", "delayed"}},
	{Word: "tight", Synonym: "snug", Antonym: "loose", Choices: []string{"snug", "loose", "firm", "slack"}},
	{Word: "sharp", Synonym: "keen", Antonym: "dull", Choices: []string{"keen", "dull", "pointed", "blunt"}},
	{Word: "deep", Synonym: "profound", Antonym: "shallow", Choices: []string{"profound", "shallow", "bottomless", "superficial"}},
	{Word: "true", Synonym: "genuine", Antonym: "false", Choices: []string{"genuine", "false", "real", "fake"}},
	{Word: "kind", Synonym: "gentle", Antonym: "cruel", Choices: []string{"gentle", "cruel", "nice", "mean"}},
	{Word: "cheap", Synonym: "inexpensive", Antonym: "expensive", Choices: []string{"inexpensive", "expensive", "affordable", "costly"}},
	{Word: "wild", Synonym: "untamed", Antonym: "tame", Choices: []string{"untamed", "tame", "savage", "domesticated"}},
	{Word: "funny", Synonym: "humorous", Antonym: "serious", Choices: []string{"humorous", "serious", "comical", "solemn"}},
	{Word: "right", Synonym: "correct", Antonym: "wrong", Choices: []string{"correct", "wrong", "accurate", "incorrect"}},
	{Word: "fresh", Synonym: "crisp", Antonym: "stale", Choices: []string{"crisp", "stale", "new", "rotten"}},
	{Word: "calm", Synonym: "peaceful", Antonym: "stormy", Choices: []string{"peaceful", "stormy", "serene", "turbulent"}},
	{Word: "modern", Synonym: "contemporary", Antonym: "ancient", Choices: []string{"contemporary", "ancient", "current", "archaic"}},
	{Word: "sick", Synonym: "ill", Antonym: "healthy", Choices: []string{"ill", "healthy", "unwell", "fit"}},
	{Word: "simple", Synonym: "plain", Antonym: "complex", Choices: []string{"plain", "complex", "basic", "complicated"}},
	{Word: "polite", Synonym: "courteous", Antonym: "rude", Choices: []string{"courteous", "rude", "respectful", "impolite"}},
	{Word: "strange", Synonym: "odd", Antonym: "normal", Choices: []string{"odd", "normal", "weird", "ordinary"}},
	{Word: "famous", Synonym: "renowned", Antonym: "unknown", Choices: []string{"renowned", "unknown", "celebrated", "obscure"}},
	{Word: "lazy", Synonym: "idle", Antonym: "active", Choices: []string{"idle", "active", "sluggish", "energetic"}},
	{Word: "proud", Synonym: "confident", Antonym: "humble", Choices: []string{"confident", "humble", "arrogant", "modest"}},
	{Word: "hungry", Synonym: "starving", Antonym: "full", Choices: []string{"starving", "full", "famished", "satisfied"}},
	{Word: "scared", Synonym: "frightened", Antonym: "brave", Choices: []string{"frightened", "brave", "terrified", "fearless"}},
	{Word: "angry", Synonym: "furious", Antonym: "calm", Choices: []string{"furious", "calm", "mad", "peaceful"}},
}
