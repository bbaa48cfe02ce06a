package catalog

// Merchant maps a known business-name substring to a display name and a
// default category. Patterns are matched case-insensitively against the
// whole input text; brand names are treated as unambiguous category signals
// and checked before the generic keyword tables.
type Merchant struct {
	Pattern   string `csv:"pattern" json:"pattern"`
	CleanName string `csv:"clean_name" json:"clean_name"`
	Category  string `csv:"category" json:"category"`
}

// defaultMerchants returns the builtin merchant table. The vocabulary skews
// Singapore plus the global brands the original dataset carried.
func defaultMerchants() []Merchant {
	return []Merchant{
		// Food & Dining
		{Pattern: "starbucks", CleanName: "Starbucks", Category: "Food & Dining"},
		{Pattern: "mcdonald", CleanName: "McDonald's", Category: "Food & Dining"},
		{Pattern: "kfc", CleanName: "KFC", Category: "Food & Dining"},
		{Pattern: "burger king", CleanName: "Burger King", Category: "Food & Dining"},
		{Pattern: "subway", CleanName: "Subway", Category: "Food & Dining"},
		{Pattern: "din tai fung", CleanName: "Din Tai Fung", Category: "Food & Dining"},
		{Pattern: "toast box", CleanName: "Toast Box", Category: "Food & Dining"},
		{Pattern: "ya kun", CleanName: "Ya Kun Kaya Toast", Category: "Food & Dining"},
		{Pattern: "old chang kee", CleanName: "Old Chang Kee", Category: "Food & Dining"},
		{Pattern: "koufu", CleanName: "Koufu", Category: "Food & Dining"},
		{Pattern: "grabfood", CleanName: "GrabFood", Category: "Food & Dining"},
		{Pattern: "foodpanda", CleanName: "Foodpanda", Category: "Food & Dining"},
		{Pattern: "deliveroo", CleanName: "Deliveroo", Category: "Food & Dining"},
		{Pattern: "uber eats", CleanName: "Uber Eats", Category: "Food & Dining"},
		{Pattern: "liho", CleanName: "LiHO", Category: "Food & Dining"},
		{Pattern: "koi", CleanName: "KOI Thé", Category: "Food & Dining"},
		{Pattern: "gong cha", CleanName: "Gong Cha", Category: "Food & Dining"},

		// Groceries
		{Pattern: "ntuc", CleanName: "NTUC FairPrice", Category: "Groceries"},
		{Pattern: "fairprice", CleanName: "NTUC FairPrice", Category: "Groceries"},
		{Pattern: "cold storage", CleanName: "Cold Storage", Category: "Groceries"},
		{Pattern: "sheng siong", CleanName: "Sheng Siong", Category: "Groceries"},
		{Pattern: "giant", CleanName: "Giant", Category: "Groceries"},
		{Pattern: "don don donki", CleanName: "Don Don Donki", Category: "Groceries"},
		{Pattern: "redmart", CleanName: "RedMart", Category: "Groceries"},

		// Transportation. Table order is match priority: "grabfood" sits
		// above the bare "grab" pattern so delivery orders don't classify
		// as transport.
		{Pattern: "grab", CleanName: "Grab", Category: "Transportation"},
		{Pattern: "gojek", CleanName: "Gojek", Category: "Transportation"},
		{Pattern: "comfortdelgro", CleanName: "ComfortDelGro", Category: "Transportation"},
		{Pattern: "comfort taxi", CleanName: "ComfortDelGro", Category: "Transportation"},
		{Pattern: "tada", CleanName: "TADA", Category: "Transportation"},
		{Pattern: "uber", CleanName: "Uber", Category: "Transportation"},
		{Pattern: "lyft", CleanName: "Lyft", Category: "Transportation"},
		{Pattern: "ez-link", CleanName: "EZ-Link", Category: "Transportation"},
		{Pattern: "ezlink", CleanName: "EZ-Link", Category: "Transportation"},
		{Pattern: "simplygo", CleanName: "SimplyGo", Category: "Transportation"},
		{Pattern: "shell", CleanName: "Shell", Category: "Transportation"},
		{Pattern: "esso", CleanName: "Esso", Category: "Transportation"},
		{Pattern: "caltex", CleanName: "Caltex", Category: "Transportation"},
		{Pattern: "spc", CleanName: "SPC", Category: "Transportation"},

		// Shopping
		{Pattern: "shopee", CleanName: "Shopee", Category: "Shopping"},
		{Pattern: "lazada", CleanName: "Lazada", Category: "Shopping"},
		{Pattern: "amazon", CleanName: "Amazon", Category: "Shopping"},
		{Pattern: "taobao", CleanName: "Taobao", Category: "Shopping"},
		{Pattern: "qoo10", CleanName: "Qoo10", Category: "Shopping"},
		{Pattern: "uniqlo", CleanName: "Uniqlo", Category: "Shopping"},
		{Pattern: "ikea", CleanName: "IKEA", Category: "Shopping"},
		{Pattern: "decathlon", CleanName: "Decathlon", Category: "Shopping"},
		{Pattern: "challenger", CleanName: "Challenger", Category: "Shopping"},
		{Pattern: "apple store", CleanName: "Apple Store", Category: "Shopping"},

		// Entertainment
		{Pattern: "netflix", CleanName: "Netflix", Category: "Entertainment"},
		{Pattern: "spotify", CleanName: "Spotify", Category: "Entertainment"},
		{Pattern: "disney+", CleanName: "Disney+", Category: "Entertainment"},
		{Pattern: "youtube premium", CleanName: "YouTube Premium", Category: "Entertainment"},
		{Pattern: "golden village", CleanName: "Golden Village", Category: "Entertainment"},
		{Pattern: "cathay cineplex", CleanName: "Cathay Cineplexes", Category: "Entertainment"},
		{Pattern: "shaw theatres", CleanName: "Shaw Theatres", Category: "Entertainment"},
		{Pattern: "steam", CleanName: "Steam", Category: "Entertainment"},

		// Bills & Utilities
		{Pattern: "singtel", CleanName: "Singtel", Category: "Bills & Utilities"},
		{Pattern: "starhub", CleanName: "StarHub", Category: "Bills & Utilities"},
		{Pattern: "m1", CleanName: "M1", Category: "Bills & Utilities"},
		{Pattern: "circles.life", CleanName: "Circles.Life", Category: "Bills & Utilities"},
		{Pattern: "sp group", CleanName: "SP Group", Category: "Bills & Utilities"},
		{Pattern: "sp services", CleanName: "SP Group", Category: "Bills & Utilities"},

		// Healthcare
		{Pattern: "guardian", CleanName: "Guardian", Category: "Healthcare"},
		{Pattern: "watsons", CleanName: "Watsons", Category: "Healthcare"},
		{Pattern: "unity pharmacy", CleanName: "Unity Pharmacy", Category: "Healthcare"},
		{Pattern: "raffles medical", CleanName: "Raffles Medical", Category: "Healthcare"},

		// Travel
		{Pattern: "singapore airlines", CleanName: "Singapore Airlines", Category: "Travel"},
		{Pattern: "scoot", CleanName: "Scoot", Category: "Travel"},
		{Pattern: "jetstar", CleanName: "Jetstar", Category: "Travel"},
		{Pattern: "airasia", CleanName: "AirAsia", Category: "Travel"},
		{Pattern: "agoda", CleanName: "Agoda", Category: "Travel"},
		{Pattern: "booking.com", CleanName: "Booking.com", Category: "Travel"},
		{Pattern: "airbnb", CleanName: "Airbnb", Category: "Travel"},
		{Pattern: "changi airport", CleanName: "Changi Airport", Category: "Transportation"},
	}
}
