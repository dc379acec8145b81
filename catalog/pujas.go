package catalog

// PujaCatalog is the fixed set of puja types a request may name. Matching and
// extraction treat this list as the closed capability vocabulary.
var PujaCatalog = []string{
	"Satyanarayan Katha", "Griha Pravesh", "Mundan", "Rudra Abhishek",
	"Ganesh Puja", "Navgrah Shanti", "Durga Puja", "Lakshmi Puja",
	"Mahamrityunjaya Jaap", "Kaal Sarp Dosh Puja", "Hanuman Puja",
	"Sundarkand Path", "Katha & Havan", "Vastu Shanti", "Narayan Nagbali",
	"Saraswati Puja", "Chandi Path", "Navratri Puja", "Sat Chandi Yagya",
}

// Instructions carries the per-puja guidance shown alongside search results.
type Instructions struct {
	Preparation string `json:"preparation"`
	Duration    string `json:"duration"`
	DressCode   string `json:"dressCode"`
	Notes       string `json:"notes"`
}

var pujaSamagri = map[string][]string{
	"Satyanarayan Katha":   {"Kalash with coconut & mango leaves", "Panchamrit", "Haldi-Kumkum", "Rice (Akshat)", "Diya & Ghee", "Flowers", "Fruits & Sweets", "Banana leaves", "Tulsi leaves", "Red cloth"},
	"Griha Pravesh":        {"Kalash & Coconut", "Mango leaves", "Ganga Jal", "Turmeric & Kumkum", "Rice", "Dhoop/Incense", "Camphor", "Flowers", "Havan samagri", "Wheat flour (swastik)"},
	"Mundan":               {"New blade/razor", "Holy water", "Cotton", "Haldi paste", "Flowers", "Coconut", "Rice", "Camphor", "Cloth", "Mirror (optional)"},
	"Rudra Abhishek":       {"Milk", "Curd", "Honey", "Ghee", "Sugar", "Bilva leaves", "Water", "Black sesame", "Roli & Rice"},
	"Ganesh Puja":          {"Ganesh idol/photo", "Durva grass", "Modak/Laddu", "Red cloth", "Haldi-Kumkum", "Rice", "Incense", "Camphor", "Flowers", "Fruits"},
	"Navgrah Shanti":       {"Navgrah yantra", "Nine grains", "Flowers", "Multi-color cloth", "Til (sesame)", "Havan samagri", "Ghee", "Fruits", "Sweets"},
	"Durga Puja":           {"Durga idol/photo", "Red cloth", "Sindoor", "Flowers", "Fruits", "Sweets", "Incense", "Camphor", "Havan samagri", "Kalash"},
	"Lakshmi Puja":         {"Lakshmi idol/photo", "Lotus flowers", "Kumkum", "Akshat", "Coins", "Kalash & Coconut", "Diya & Ghee", "Fruits", "Sweets"},
	"Mahamrityunjaya Jaap": {"Shiv yantra", "Bilva leaves", "Panchamrit", "Water", "Black sesame", "Camphor", "Incense", "Flowers"},
	"Kaal Sarp Dosh Puja":  {"Abhishek dravya", "Naag-Nagin idols (optional)", "Kalash", "Black sesame", "Flowers", "Havan samagri", "Camphor"},
	"Hanuman Puja":         {"Hanuman idol/photo", "Sindoor", "Jasmine oil", "Betel leaves", "Flowers", "Fruits", "Sweets", "Incense", "Camphor"},
	"Sundarkand Path":      {"Ramayan/Sundarkand book", "Diya & Ghee", "Incense", "Camphor", "Flowers", "Fruits", "Sweets", "Asan (mat)"},
	"Katha & Havan":        {"Katha granth", "Kalash", "Coconut", "Havan kund", "Havan samagri", "Ghee", "Camphor", "Spoons & Pot", "Darbha (Kusha) grass"},
	"Vastu Shanti":         {"Navgrah yantra", "Havan samagri", "Kalash", "Coconut", "Haldi-Kumkum", "Rice", "Flowers", "Fruits"},
	"Narayan Nagbali":      {"Sankalp items", "Pind daan samagri", "Kusha grass", "Black sesame", "White clothes", "Flowers", "Havan samagri"},
	"Saraswati Puja":       {"Saraswati idol/photo", "White cloth", "Books/Instruments", "Flowers", "Fruits", "Sweets", "Incense", "Camphor"},
	"Chandi Path":          {"Chandi text", "Kalash", "Coconut", "Red cloth", "Sindoor", "Flowers", "Fruits", "Havan samagri"},
	"Navratri Puja":        {"Kalash", "Coconut", "Red cloth", "Akshat", "Sindoor", "Flowers", "Fruits", "Nava Dhanya", "Diyas"},
	"Sat Chandi Yagya":     {"Chandi yantra", "Havan kund", "Havan samagri (large)", "Ghee (extra)", "Sruva/wooden spoons", "Darbha grass", "Fruits", "Sweets", "Cloths"},
}

var pujaInstructions = map[string]Instructions{
	"Satyanarayan Katha":   {"Clean puja area; keep kalash ready.", "~1.5-2 hours", "Traditional/ethnic, light colors preferred.", "Family members may keep light fast; distribute prasad to all."},
	"Griha Pravesh":        {"Home must be cleaned; threshold decorated with rangoli.", "~2-3 hours", "Traditional; head covered during sankalp.", "Enter house right foot first while carrying kalash."},	
	"Mundan":               {"Child's hair wetted; razor sterilized.", "~45-60 mins", "Comfortable; towel/cloth handy.", "Do in auspicious muhurat; protect scalp from sun after."},
	"Rudra Abhishek":       {"Abhishek dravya & bilva leaves ready.", "~1-1.5 hours", "Traditional/clean clothes.", "Avoid non-veg & alcohol before/after puja."},
	"Ganesh Puja":          {"Place Ganesh on clean red cloth.", "~60-90 mins", "Traditional.", "Offer 21 durva & modaks if possible."},
	"Navgrah Shanti":       {"Nine grains arranged in yantra.", "~2 hours", "Traditional.", "Pandit will guide on specific graha daan."},
	"Durga Puja":           {"Kalash sthapana; red chunri ready.", "~2-3 hours", "Red/bright shades traditional.", "Kumkum tilak and sindoor offered."},
	"Lakshmi Puja":         {"De-clutter wealth area; place coins.", "~60-90 mins", "Clean/bright traditional.", "Keep account books/locker keys near idol."},
	"Mahamrityunjaya Jaap": {"Silent & clean environment.", "~1.5-3 hours", "Traditional, simple.", "Best performed on Mondays/Pradosh."},
	"Kaal Sarp Dosh Puja":  {"Sankalp details ready.", "~2 hours", "Traditional (prefer white).", "Follow pandit's guidance strictly."},
	"Hanuman Puja":         {"Apply sindoor and oil as per vidhi.", "~45-75 mins", "Traditional.", "Chant Hanuman Chalisa collectively."},
	"Sundarkand Path":      {"Arrange path copies for participants.", "~2-3 hours", "Traditional.", "Light snacks & water for participants."},
	"Katha & Havan":        {"Open ventilated area for havan.", "~1.5-2 hours", "Traditional; cotton preferred.", "Keep water & fire safety in place."},
	"Vastu Shanti":         {"House map & owner details handy.", "~2 hours", "Traditional.", "Ideal before/after renovation or shifting."},
	"Narayan Nagbali":      {"Special sankalp; consult pandit.", "~1-2 days (elaborate)", "White traditional.", "Typically at specified tirtha; local simplified version possible."},
	"Saraswati Puja":       {"Keep books/instruments near idol.", "~60-90 mins", "White/yellow traditional.", "Good day for students to start studies."},
	"Chandi Path":          {"Quiet place; text copies arranged.", "~2-3 hours", "Traditional.", "Can be done with homa as per need."},
	"Navratri Puja":        {"Kalash sthapana day 1.", "Daily ~45-60 mins", "Traditional.", "Observe simple satvik diet."},
	"Sat Chandi Yagya":     {"Large havan setup.", "~4-6 hours", "Traditional.", "Requires extended samagri & arrangements."},
}

// SamagriFor returns the item checklist for a puja type.
func SamagriFor(puja string) ([]string, bool) {
	items, ok := pujaSamagri[puja]
	return items, ok
}

// InstructionsFor returns the preparation guidance for a puja type.
func InstructionsFor(puja string) (Instructions, bool) {
	info, ok := pujaInstructions[puja]
	return info, ok
}

// IsKnownPuja reports whether the given name is an exact catalog member.
func IsKnownPuja(name string) bool {
	for _, p := range PujaCatalog {
		if p == name {
			return true
		}
	}
	return false
}
