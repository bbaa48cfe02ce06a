package catalog

// Keyword tables for category suggestion and type classification. Keywords
// are lowercase; matching is substring-based with longer keywords scoring
// higher, so specific terms ("movie tickets") beat generic ones ("movie").

func defaultCategoryKeywords() map[string][]string {
	return map[string][]string{
		"Food & Dining": {
			"lunch", "dinner", "breakfast", "brunch", "supper", "coffee", "kopi",
			"tea", "bubble tea", "boba", "restaurant", "cafe", "food", "meal",
			"snack", "takeout", "takeaway", "delivery", "hawker", "food court",
			"kopitiam", "zi char", "chicken rice", "laksa", "pizza", "burger",
			"sushi", "ramen", "noodles", "dim sum", "bakery", "dessert",
		},
		"Groceries": {
			"grocery", "groceries", "supermarket", "market", "wet market",
			"provisions", "vegetables", "fruits", "meat", "eggs", "milk",
		},
		"Transportation": {
			"taxi", "cab", "ride", "bus", "mrt", "train", "subway", "metro",
			"petrol", "gas", "fuel", "parking", "erp", "toll", "car wash",
			"bike", "scooter", "airport transfer", "transport",
		},
		"Shopping": {
			"shopping", "clothes", "clothing", "shoes", "bag", "mall",
			"online order", "electronics", "gadget", "furniture", "stationery",
			"gift", "toy",
		},
		"Entertainment": {
			"movie", "cinema", "concert", "game", "gaming", "arcade", "karaoke",
			"ktv", "bar", "club", "drinks", "beer", "wine", "streaming",
			"subscription box", "tickets",
		},
		"Bills & Utilities": {
			"bill", "electricity", "power", "water bill", "utilities", "internet",
			"wifi", "broadband", "phone bill", "mobile plan", "insurance",
			"rent", "mortgage", "conservancy", "town council", "subscription",
		},
		"Healthcare": {
			"doctor", "clinic", "hospital", "dental", "dentist", "pharmacy",
			"medicine", "medication", "vitamins", "checkup", "tcm",
			"physiotherapy", "specialist",
		},
		"Education": {
			"tuition", "course", "class", "school fees", "textbook", "books",
			"workshop", "seminar", "exam fee", "enrichment",
		},
		"Travel": {
			"flight", "hotel", "airbnb", "hostel", "holiday", "vacation",
			"trip", "travel", "visa fee", "luggage", "tour",
		},
		"Personal Care": {
			"haircut", "salon", "barber", "spa", "massage", "facial",
			"manicure", "gym", "fitness", "yoga", "skincare", "cosmetics",
		},
	}
}

// Type-classifier keyword lists. The two lists are disjoint; verbs carry the
// strongest signal and are kept specific so length-weighting favors them.
var defaultIncomeKeywords = []string{
	"salary", "payday", "paycheck", "wages", "earned", "received", "bonus",
	"refund", "refunded", "reimbursement", "reimbursed", "cashback",
	"commission", "dividend", "interest earned", "payout", "deposit",
	"allowance", "freelance payment", "sold", "income", "ang bao", "angpao",
}

var defaultExpenseKeywords = []string{
	"bought", "buy", "paid", "pay", "spent", "spend", "purchase", "purchased",
	"bill", "fee", "fees", "charge", "charged", "subscription", "renewal",
	"order", "ordered", "topped up", "top up", "donation", "fine", "owe",
}

// Noise words dropped by the description cleaner. Lowercase, punctuation
// already stripped by the tokenizer.
func defaultNoiseWords() map[string]struct{} {
	words := []string{
		"spent", "spend", "paid", "pay", "bought", "buy", "purchase",
		"purchased", "got", "get", "for", "on", "at", "in", "the", "a", "an",
		"my", "me", "i", "of", "to", "from", "with", "was", "is", "just",
		"today", "yesterday", "about", "around", "approximately", "roughly",
		"some", "dollars", "dollar", "bucks", "buck", "usd", "sgd", "eur",
		"euro", "euros", "cost", "costs", "worth",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
