package catalog

import (
	"fmt"

	"panditseva/models"
)

// dayCycles are the recurring weekday availability patterns assigned to the
// roster.
var dayCycles = [][]string{
	{"Mon", "Wed", "Fri"},
	{"Tue", "Thu", "Sat"},
	{"Sat", "Sun"},
	{"Mon", "Tue", "Thu"},
	{"Wed", "Fri", "Sun"},
	{"Mon", "Sat"},
}

func feeFor(id int) int {
	fees := []int{500, 600, 700, 800, 900, 1000}
	return fees[(id-1)%len(fees)]
}

func hm(h, m int) int { return h*60 + m }

func win(label string, start, end int) models.TimeWindow {
	return models.TimeWindow{Label: label, Start: start, End: end}
}

// seedPandits are the hand-curated roster entries.
var seedPandits = []models.Pandit{
	{ID: 1, Name: "Pandit Chatterjee 1", Specializations: []string{"Satyanarayan Katha", "Lakshmi Puja", "Vastu Shanti"}, BaseFee: 900, City: "Kolkata",
		Languages: []string{"Sanskrit", "Hindi", "Bengali"}, Rating: 4.7, ExperienceYears: 14, ServiceMode: models.ModeOnsite, Phone: "+919812300001",
		TimeWindows: []models.TimeWindow{win("morning", hm(8, 30), hm(10, 30)), win("evening", hm(17, 30), hm(19, 30))}, Days: dayCycles[0]},
	{ID: 2, Name: "Pandit Mukherjee 2", Specializations: []string{"Durga Puja", "Chandi Path", "Navratri Puja"}, BaseFee: 800, City: "Howrah",
		Languages: []string{"Hindi", "English", "Bengali"}, Rating: 4.6, ExperienceYears: 12, ServiceMode: models.ModeEither, Phone: "+919812300002",
		TimeWindows: []models.TimeWindow{win("afternoon", hm(12, 30), hm(14, 30)), win("evening", hm(18, 0), hm(20, 0))}, Days: dayCycles[1]},
	{ID: 3, Name: "Pandit Banerjee 3", Specializations: []string{"Rudra Abhishek", "Mahamrityunjaya Jaap", "Ganesh Puja"}, BaseFee: 700, City: "Siliguri",
		Languages: []string{"Sanskrit", "Hindi", "English"}, Rating: 4.5, ExperienceYears: 9, ServiceMode: models.ModeOnline, Phone: "+919812300003",
		TimeWindows: []models.TimeWindow{win("morning", hm(9, 0), hm(11, 0))}, Days: dayCycles[2]},
	{ID: 4, Name: "Pandit Sarkar 4", Specializations: []string{"Griha Pravesh", "Vastu Shanti", "Lakshmi Puja"}, BaseFee: 600, City: "Durgapur",
		Languages: []string{"Hindi", "Bengali"}, Rating: 4.4, ExperienceYears: 8, ServiceMode: models.ModeOnsite, Phone: "+919812300004",
		TimeWindows: []models.TimeWindow{win("afternoon", hm(13, 0), hm(15, 0)), win("evening", hm(17, 30), hm(19, 0))}, Days: dayCycles[3]},
	{ID: 5, Name: "Pandit Ghosh 5", Specializations: []string{"Hanuman Puja", "Sundarkand Path", "Katha & Havan"}, BaseFee: 1000, City: "Asansol",
		Languages: []string{"Sanskrit", "Bengali"}, Rating: 4.8, ExperienceYears: 18, ServiceMode: models.ModeEither, Phone: "+919812300005",
		TimeWindows: []models.TimeWindow{win("evening", hm(17, 0), hm(20, 0))}, Days: dayCycles[4]},
	{ID: 6, Name: "Pandit Bhattacharya 6", Specializations: []string{"Satyanarayan Katha", "Ganesh Puja", "Lakshmi Puja"}, BaseFee: 500, City: "Kharagpur",
		Languages: []string{"Hindi", "English", "Bengali"}, Rating: 4.3, ExperienceYears: 7, ServiceMode: models.ModeOnsite, Phone: "+919812300006",
		TimeWindows: []models.TimeWindow{win("morning", hm(8, 30), hm(10, 30)), win("afternoon", hm(12, 0), hm(14, 0))}, Days: dayCycles[5]},
	{ID: 7, Name: "Pandit Das 7", Specializations: []string{"Navgrah Shanti", "Kaal Sarp Dosh Puja", "Rudra Abhishek"}, BaseFee: 900, City: "Bardhaman",
		Languages: []string{"Sanskrit", "Hindi", "Bengali"}, Rating: 4.6, ExperienceYears: 11, ServiceMode: models.ModeEither, Phone: "+919812300007",
		TimeWindows: []models.TimeWindow{win("afternoon", hm(12, 0), hm(16, 0))}, Days: dayCycles[0]},
	{ID: 8, Name: "Pandit Saha 8", Specializations: []string{"Lakshmi Puja", "Saraswati Puja", "Chandi Path"}, BaseFee: 800, City: "Haldia",
		Languages: []string{"Hindi", "Bengali"}, Rating: 4.5, ExperienceYears: 10, ServiceMode: models.ModeOnline, Phone: "+919812300008",
		TimeWindows: []models.TimeWindow{win("morning", hm(9, 0), hm(10, 30)), win("evening", hm(18, 0), hm(19, 30))}, Days: dayCycles[1]},
	{ID: 9, Name: "Pandit Sharma 9", Specializations: []string{"Vastu Shanti", "Griha Pravesh", "Katha & Havan"}, BaseFee: 700, City: "Kalyani",
		Languages: []string{"Sanskrit", "Hindi", "English"}, Rating: 4.2, ExperienceYears: 6, ServiceMode: models.ModeOnsite, Phone: "+919812300009",
		TimeWindows: []models.TimeWindow{win("afternoon", hm(12, 30), hm(14, 30))}, Days: dayCycles[2]},
	{ID: 10, Name: "Pandit Chatterjee 10", Specializations: []string{"Durga Puja", "Navratri Puja", "Chandi Path"}, BaseFee: 1000, City: "Bidhannagar",
		Languages: []string{"Hindi", "Bengali"}, Rating: 4.7, ExperienceYears: 15, ServiceMode: models.ModeEither, Phone: "+919812300010",
		TimeWindows: []models.TimeWindow{win("evening", hm(17, 0), hm(20, 0))}, Days: dayCycles[3]},
	{ID: 11, Name: "Pandit Mukherjee 11", Specializations: []string{"Sat Chandi Yagya", "Durga Puja", "Lakshmi Puja"}, BaseFee: 1000, City: "Salt Lake",
		Languages: []string{"Sanskrit", "Bengali"}, Rating: 4.8, ExperienceYears: 20, ServiceMode: models.ModeOnsite, Phone: "+919812300011",
		TimeWindows: []models.TimeWindow{win("morning", hm(8, 0), hm(10, 0))}, Days: dayCycles[4]},
	{ID: 12, Name: "Pandit Banerjee 12", Specializations: []string{"Ganesh Puja", "Satyanarayan Katha", "Saraswati Puja"}, BaseFee: 600, City: "Hooghly",
		Languages: []string{"Hindi", "English", "Bengali"}, Rating: 4.4, ExperienceYears: 9, ServiceMode: models.ModeEither, Phone: "+919812300012",
		TimeWindows: []models.TimeWindow{win("afternoon", hm(12, 0), hm(15, 0))}, Days: dayCycles[5]},
	{ID: 13, Name: "Pandit Sarkar 13", Specializations: []string{"Hanuman Puja", "Sundarkand Path", "Mahamrityunjaya Jaap"}, BaseFee: 700, City: "Behala",
		Languages: []string{"Sanskrit", "Hindi", "Bengali"}, Rating: 4.6, ExperienceYears: 13, ServiceMode: models.ModeOnsite, Phone: "+919812300013",
		TimeWindows: []models.TimeWindow{win("evening", hm(17, 30), hm(19, 30))}, Days: dayCycles[0]},
	{ID: 14, Name: "Pandit Ghosh 14", Specializations: []string{"Kaal Sarp Dosh Puja", "Navgrah Shanti", "Rudra Abhishek"}, BaseFee: 600, City: "Barasat",
		Languages: []string{"Hindi", "Bengali"}, Rating: 4.5, ExperienceYears: 10, ServiceMode: models.ModeOnline, Phone: "+919812300014",
		TimeWindows: []models.TimeWindow{win("morning", hm(9, 0), hm(11, 0))}, Days: dayCycles[1]},
	{ID: 15, Name: "Pandit Bhattacharya 15", Specializations: []string{"Vastu Shanti", "Griha Pravesh", "Katha & Havan"}, BaseFee: 500, City: "Bally",
		Languages: []string{"Sanskrit", "Hindi", "English"}, Rating: 4.3, ExperienceYears: 7, ServiceMode: models.ModeOnsite, Phone: "+919812300015",
		TimeWindows: []models.TimeWindow{win("afternoon", hm(12, 30), hm(14, 30)), win("evening", hm(18, 0), hm(19, 30))}, Days: dayCycles[2]},
	{ID: 16, Name: "Pandit Das 16", Specializations: []string{"Saraswati Puja", "Lakshmi Puja", "Satyanarayan Katha"}, BaseFee: 900, City: "Serampore",
		Languages: []string{"Hindi", "English", "Bengali"}, Rating: 4.7, ExperienceYears: 16, ServiceMode: models.ModeEither, Phone: "+919812300016",
		TimeWindows: []models.TimeWindow{win("morning", hm(8, 30), hm(10, 30))}, Days: dayCycles[3]},
	{ID: 17, Name: "Pandit Saha 17", Specializations: []string{"Chandi Path", "Navratri Puja", "Durga Puja"}, BaseFee: 700, City: "Krishnanagar",
		Languages: []string{"Sanskrit", "Bengali"}, Rating: 4.4, ExperienceYears: 8, ServiceMode: models.ModeOnline, Phone: "+919812300017",
		TimeWindows: []models.TimeWindow{win("evening", hm(17, 0), hm(19, 0))}, Days: dayCycles[4]},
	{ID: 18, Name: "Pandit Sharma 18", Specializations: []string{"Ganesh Puja", "Rudra Abhishek", "Mahamrityunjaya Jaap"}, BaseFee: 600, City: "Siliguri",
		Languages: []string{"Hindi", "English", "Bengali"}, Rating: 4.2, ExperienceYears: 6, ServiceMode: models.ModeOnsite, Phone: "+919812300018",
		TimeWindows: []models.TimeWindow{win("afternoon", hm(12, 0), hm(15, 0))}, Days: dayCycles[5]},
	{ID: 19, Name: "Pandit Chatterjee 19", Specializations: []string{"Satyanarayan Katha", "Lakshmi Puja", "Vastu Shanti"}, BaseFee: 1000, City: "Kolkata",
		Languages: []string{"Sanskrit", "Hindi", "Bengali"}, Rating: 4.9, ExperienceYears: 21, ServiceMode: models.ModeEither, Phone: "+919812300019",
		TimeWindows: []models.TimeWindow{win("morning", hm(8, 0), hm(10, 0)), win("evening", hm(18, 0), hm(19, 30))}, Days: dayCycles[0]},
	{ID: 20, Name: "Pandit Mukherjee 20", Specializations: []string{"Griha Pravesh", "Vastu Shanti", "Katha & Havan"}, BaseFee: 800, City: "Howrah",
		Languages: []string{"Hindi", "English", "Bengali"}, Rating: 4.5, ExperienceYears: 11, ServiceMode: models.ModeOnsite, Phone: "+919812300020",
		TimeWindows: []models.TimeWindow{win("afternoon", hm(13, 0), hm(15, 0))}, Days: dayCycles[1]},
}

// extraEntry seeds one generated roster entry.
type extraEntry struct {
	id    int
	city  string
	specs []string
}

var extraEntries = []extraEntry{
	{21, "Purulia", []string{"Rudra Abhishek", "Ganesh Puja", "Navgrah Shanti"}},
	{22, "Midnapore", []string{"Durga Puja", "Lakshmi Puja", "Mahamrityunjaya Jaap"}},
	{23, "Kolkata", []string{"Kaal Sarp Dosh Puja", "Hanuman Puja", "Sundarkand Path"}},
	{24, "Howrah", []string{"Katha & Havan", "Vastu Shanti", "Narayan Nagbali"}},
	{25, "Siliguri", []string{"Saraswati Puja", "Chandi Path", "Navratri Puja"}},
	{26, "Durgapur", []string{"Sat Chandi Yagya", "Satyanarayan Katha", "Griha Pravesh"}},
	{27, "Asansol", []string{"Mundan", "Rudra Abhishek", "Ganesh Puja"}},
	{28, "Kharagpur", []string{"Navgrah Shanti", "Durga Puja", "Lakshmi Puja"}},
	{29, "Bardhaman", []string{"Mahamrityunjaya Jaap", "Kaal Sarp Dosh Puja", "Hanuman Puja"}},
	{30, "Haldia", []string{"Sundarkand Path", "Katha & Havan", "Vastu Shanti"}},
	{31, "Kalyani", []string{"Narayan Nagbali", "Saraswati Puja", "Chandi Path"}},
	{32, "Bidhannagar", []string{"Navratri Puja", "Sat Chandi Yagya", "Satyanarayan Katha"}},
	{33, "Salt Lake", []string{"Griha Pravesh", "Mundan", "Rudra Abhishek"}},
	{34, "Hooghly", []string{"Ganesh Puja", "Navgrah Shanti", "Durga Puja"}},
	{35, "Behala", []string{"Lakshmi Puja", "Mahamrityunjaya Jaap", "Kaal Sarp Dosh Puja"}},
	{36, "Barasat", []string{"Hanuman Puja", "Sundarkand Path", "Katha & Havan"}},
	{37, "Bally", []string{"Vastu Shanti", "Narayan Nagbali", "Saraswati Puja"}},
	{38, "Serampore", []string{"Chandi Path", "Navratri Puja", "Sat Chandi Yagya"}},
	{39, "Krishnanagar", []string{"Satyanarayan Katha", "Griha Pravesh", "Mundan"}},
	{40, "Jalpaiguri", []string{"Rudra Abhishek", "Ganesh Puja", "Navgrah Shanti"}},
	{41, "Malda", []string{"Durga Puja", "Lakshmi Puja", "Mahamrityunjaya Jaap"}},
	{42, "Murshidabad", []string{"Kaal Sarp Dosh Puja", "Hanuman Puja", "Sundarkand Path"}},
	{43, "Bankura", []string{"Katha & Havan", "Vastu Shanti", "Narayan Nagbali"}},
	{44, "Purulia", []string{"Saraswati Puja", "Chandi Path", "Navratri Puja"}},
	{45, "Midnapore", []string{"Sat Chandi Yagya", "Satyanarayan Katha", "Griha Pravesh"}},
	{46, "Kolkata", []string{"Mundan", "Rudra Abhishek", "Ganesh Puja"}},
	{47, "Howrah", []string{"Navgrah Shanti", "Durga Puja", "Lakshmi Puja"}},
	{48, "Siliguri", []string{"Mahamrityunjaya Jaap", "Kaal Sarp Dosh Puja", "Hanuman Puja"}},
	{49, "Durgapur", []string{"Sundarkand Path", "Katha & Havan", "Vastu Shanti"}},
	{50, "Asansol", []string{"Narayan Nagbali", "Saraswati Puja", "Chandi Path"}},
	{51, "Kharagpur", []string{"Satyanarayan Katha", "Lakshmi Puja", "Vastu Shanti"}},
	{52, "Bardhaman", []string{"Durga Puja", "Chandi Path", "Navratri Puja"}},
	{53, "Haldia", []string{"Rudra Abhishek", "Mahamrityunjaya Jaap", "Ganesh Puja"}},
	{54, "Kalyani", []string{"Griha Pravesh", "Vastu Shanti", "Lakshmi Puja"}},
	{55, "Bidhannagar", []string{"Hanuman Puja", "Sundarkand Path", "Katha & Havan"}},
	{56, "Salt Lake", []string{"Kaal Sarp Dosh Puja", "Navgrah Shanti", "Rudra Abhishek"}},
	{57, "Hooghly", []string{"Saraswati Puja", "Lakshmi Puja", "Satyanarayan Katha"}},
	{58, "Behala", []string{"Navratri Puja", "Durga Puja", "Chandi Path"}},
	{59, "Barasat", []string{"Mundan", "Griha Pravesh", "Vastu Shanti"}},
	{60, "Bally", []string{"Ganesh Puja", "Navgrah Shanti", "Rudra Abhishek"}},
	{61, "Serampore", []string{"Sat Chandi Yagya", "Chandi Path", "Navratri Puja"}},
	{62, "Krishnanagar", []string{"Sundarkand Path", "Katha & Havan", "Vastu Shanti"}},
	{63, "Jalpaiguri", []string{"Narayan Nagbali", "Saraswati Puja", "Chandi Path"}},
	{64, "Malda", []string{"Satyanarayan Katha", "Griha Pravesh", "Mundan"}},
	{65, "Murshidabad", []string{"Rudra Abhishek", "Ganesh Puja", "Navgrah Shanti"}},
	{66, "Bankura", []string{"Durga Puja", "Lakshmi Puja", "Mahamrityunjaya Jaap"}},
	{67, "Purulia", []string{"Kaal Sarp Dosh Puja", "Hanuman Puja", "Sundarkand Path"}},
	{68, "Midnapore", []string{"Katha & Havan", "Vastu Shanti", "Narayan Nagbali"}},
	{69, "Kolkata", []string{"Saraswati Puja", "Chandi Path", "Navratri Puja"}},
	{70, "Howrah", []string{"Sat Chandi Yagya", "Satyanarayan Katha", "Griha Pravesh"}},
	{71, "Siliguri", []string{"Mundan", "Rudra Abhishek", "Ganesh Puja"}},
	{72, "Durgapur", []string{"Navgrah Shanti", "Durga Puja", "Lakshmi Puja"}},
	{73, "Asansol", []string{"Mahamrityunjaya Jaap", "Kaal Sarp Dosh Puja", "Hanuman Puja"}},
	{74, "Kharagpur", []string{"Sundarkand Path", "Katha & Havan", "Vastu Shanti"}},
	{75, "Bardhaman", []string{"Narayan Nagbali", "Saraswati Puja", "Chandi Path"}},
	{76, "Haldia", []string{"Navratri Puja", "Sat Chandi Yagya", "Satyanarayan Katha"}},
	{77, "Kalyani", []string{"Griha Pravesh", "Mundan", "Rudra Abhishek"}},
	{78, "Bidhannagar", []string{"Ganesh Puja", "Navgrah Shanti", "Durga Puja"}},
	{79, "Salt Lake", []string{"Lakshmi Puja", "Mahamrityunjaya Jaap", "Kaal Sarp Dosh Puja"}},
	{80, "Hooghly", []string{"Hanuman Puja", "Sundarkand Path", "Katha & Havan"}},
	{81, "Behala", []string{"Vastu Shanti", "Narayan Nagbali", "Saraswati Puja"}},
	{82, "Barasat", []string{"Chandi Path", "Navratri Puja", "Sat Chandi Yagya"}},
	{83, "Bally", []string{"Satyanarayan Katha", "Griha Pravesh", "Mundan"}},
	{84, "Serampore", []string{"Rudra Abhishek", "Ganesh Puja", "Navgrah Shanti"}},
	{85, "Krishnanagar", []string{"Durga Puja", "Lakshmi Puja", "Mahamrityunjaya Jaap"}},
	{86, "Jalpaiguri", []string{"Kaal Sarp Dosh Puja", "Hanuman Puja", "Sundarkand Path"}},
	{87, "Malda", []string{"Katha & Havan", "Vastu Shanti", "Narayan Nagbali"}},
	{88, "Murshidabad", []string{"Saraswati Puja", "Chandi Path", "Navratri Puja"}},
	{89, "Bankura", []string{"Sat Chandi Yagya", "Satyanarayan Katha", "Griha Pravesh"}},
	{90, "Purulia", []string{"Mundan", "Rudra Abhishek", "Ganesh Puja"}},
	{91, "Midnapore", []string{"Navgrah Shanti", "Durga Puja", "Lakshmi Puja"}},
	{92, "Kolkata", []string{"Mahamrityunjaya Jaap", "Kaal Sarp Dosh Puja", "Hanuman Puja"}},
	{93, "Howrah", []string{"Sundarkand Path", "Katha & Havan", "Vastu Shanti"}},
	{94, "Siliguri", []string{"Narayan Nagbali", "Saraswati Puja", "Chandi Path"}},
	{95, "Durgapur", []string{"Navratri Puja", "Sat Chandi Yagya", "Satyanarayan Katha"}},
	{96, "Asansol", []string{"Griha Pravesh", "Mundan", "Rudra Abhishek"}},
	{97, "Kharagpur", []string{"Ganesh Puja", "Navgrah Shanti", "Durga Puja"}},
	{98, "Bardhaman", []string{"Lakshmi Puja", "Mahamrityunjaya Jaap", "Kaal Sarp Dosh Puja"}},
	{99, "Haldia", []string{"Hanuman Puja", "Sundarkand Path", "Katha & Havan"}},
	{100, "Kalyani", []string{"Vastu Shanti", "Narayan Nagbali", "Saraswati Puja"}},
}

var trilingualCities = map[string]bool{
	"Siliguri": true, "Kolkata": true, "Bidhannagar": true, "Salt Lake": true, "Kalyani": true,
}

func buildExtra(e extraEntry) models.Pandit {
	langs := []string{"Hindi", "Bengali"}
	if trilingualCities[e.city] {
		langs = []string{"Hindi", "English", "Bengali"}
	}

	mode := models.ModeOnsite
	switch {
	case e.id%5 == 0 || e.id%5 == 2:
		mode = models.ModeEither
	case e.id%3 == 0:
		mode = models.ModeOnline
	}

	windows := []models.TimeWindow{win("morning", hm(8, 0), hm(10, 0))}
	if e.id%2 == 0 {
		windows = []models.TimeWindow{
			win("afternoon", hm(12, 0), hm(14, 30)),
			win("evening", hm(17, 30), hm(19, 0)),
		}
	}

	return models.Pandit{
		ID:              e.id,
		Name:            fmt.Sprintf("Pandit %s %d", e.city, e.id),
		Specializations: e.specs,
		BaseFee:         feeFor(e.id),
		City:            e.city,
		Languages:       langs,
		Rating:          4.0 + float64(e.id%10)/10.0,
		ExperienceYears: 4 + e.id%10,
		ServiceMode:     mode,
		Phone:           fmt.Sprintf("+9198123000%02d", e.id),
		TimeWindows:     windows,
		Days:            dayCycles[(e.id-1)%len(dayCycles)],
	}
}

var pandits []models.Pandit

func init() {
	pandits = append(pandits, seedPandits...)
	for _, e := range extraEntries {
		pandits = append(pandits, buildExtra(e))
	}
}

// Pandits returns the full roster in ID order. The slice and its entries are
// shared immutable state; callers must not modify them.
func Pandits() []models.Pandit {
	return pandits
}
