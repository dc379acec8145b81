package catalog

import "sort"

// Coordinates of the served cities. Distance math treats any city missing
// from this table as unreachable.
var cityCoords = map[string][2]float64{
	"Kolkata":      {22.5726, 88.3639},
	"Howrah":       {22.5958, 88.2636},
	"Siliguri":     {26.7271, 88.3953},
	"Durgapur":     {23.5204, 87.3119},
	"Asansol":      {23.6739, 86.9524},
	"Kharagpur":    {22.3460, 87.2319},
	"Bardhaman":    {23.2324, 87.8615},
	"Haldia":       {22.0667, 88.0698},
	"Kalyani":      {22.9868, 88.4345},
	"Bidhannagar":  {22.5726, 88.4333},
	"Salt Lake":    {22.6070, 88.4273},
	"Hooghly":      {22.9089, 88.3966},
	"Behala":       {22.5010, 88.2950},
	"Barasat":      {22.7229, 88.4800},
	"Bally":        {22.6500, 88.3400},
	"Serampore":    {22.7528, 88.3426},
	"Krishnanagar": {23.4058, 88.4900},
	"Jalpaiguri":   {26.5435, 88.7200},
	"Malda":        {25.0108, 88.1411},
	"Murshidabad":  {24.1750, 88.2800},
	"Bankura":      {23.2324, 87.0750},
	"Purulia":      {23.3300, 86.3650},
	"Midnapore":    {22.4300, 87.3200},
}

// CitySynonyms maps common spellings to canonical city names.
var CitySynonyms = map[string]string{
	"saltlake":    "Salt Lake",
	"salt lake":   "Salt Lake",
	"bidhannagar": "Bidhannagar",
}

var allCities []string

func init() {
	for c := range cityCoords {
		allCities = append(allCities, c)
	}
	sort.Strings(allCities)
}

// Cities returns the known city names in sorted order.
func Cities() []string {
	return allCities
}

// CityCoords returns the latitude and longitude of a city.
func CityCoords(city string) (lat, lon float64, ok bool) {
	c, ok := cityCoords[city]
	return c[0], c[1], ok
}
