package destinations

import (
	"sort"
	"strings"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

// Catalog is the immutable destination data store, built once at startup and
// injected into consumers. Nothing mutates it after construction.
type Catalog struct {
	destinations map[string]types.Destination
	keys         []string
}

// NewCatalog builds the catalog from the curated destination tables.
func NewCatalog() *Catalog {
	dests := catalogData()
	keys := make([]string, 0, len(dests))
	for k := range dests {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Catalog{destinations: dests, keys: keys}
}

// Keys returns the known destination keys in sorted order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Get returns the destination stored under an exact key.
func (c *Catalog) Get(key string) (*types.Destination, bool) {
	d, ok := c.destinations[key]
	if !ok {
		return nil, false
	}
	return &d, true
}

// Resolve matches a free-form destination query against the catalog keys the
// way the planner clients send them: lowercased, spaces to underscores,
// commas stripped, substring match in either direction.
func (c *Catalog) Resolve(query string) (*types.Destination, bool) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	normalized = strings.ReplaceAll(normalized, ",", "")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	if normalized == "" {
		return nil, false
	}
	if d, ok := c.Get(normalized); ok {
		return d, true
	}
	for _, key := range c.keys {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			return c.Get(key)
		}
	}
	return nil, false
}

// Filter returns the destinations satisfying all supplied predicates.
func (c *Catalog) Filter(f types.DestinationFilter) []types.Destination {
	var out []types.Destination
	for _, key := range c.keys {
		d := c.destinations[key]
		if f.Region != "" && !strings.EqualFold(d.Region, f.Region) {
			continue
		}
		if f.MinSafetyRating > 0 && d.SafetyRating < f.MinSafetyRating {
			continue
		}
		if f.HiddenGemsOnly && !d.HiddenGem {
			continue
		}
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(d.Name), q) && !strings.Contains(strings.ToLower(d.Country), q) {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

// Interests returns the supported interest tags.
func (c *Catalog) Interests() []string {
	return []string{
		"scenic drives", "hikes", "beaches", "theme parks", "museums",
		"historic landmarks", "family friendly", "dining hot spots",
		"outdoor", "cultural experiences", "solo female",
	}
}

// Guidelines returns the static safety advice payload for solo female travelers.
func Guidelines() types.SafetyGuidelines {
	return types.SafetyGuidelines{
		GeneralTips: []string{
			"Research accommodation in safe, well-reviewed areas",
			"Share your itinerary with someone at home",
			"Trust your instincts - if something feels wrong, leave",
			"Dress appropriately for local culture and customs",
			"Keep emergency contacts and embassy information handy",
			"Use official transportation options when possible",
			"Stay confident and aware of your surroundings",
		},
		AccommodationTips: []string{
			"Choose well-reviewed accommodations in safe neighborhoods",
			"Consider female-only hostels or guesthouses",
			"Book accommodations near public transportation",
			"Read recent reviews from other solo female travelers",
		},
		TransportationTips: []string{
			"Use official ride-sharing apps or registered taxis",
			"Sit near the driver on public transport if possible",
			"Avoid walking alone late at night in unfamiliar areas",
			"Keep transportation apps downloaded and ready to use",
		},
	}
}

func coords(lat, lng float64) *types.Coordinates {
	return &types.Coordinates{Latitude: lat, Longitude: lng}
}

// catalogData holds the curated destination tables, including solo female
// safety ratings (5 = extremely safe ... 1 = high risk) and per-interest
// activity lists.
func catalogData() map[string]types.Destination {
	return map[string]types.Destination{
		"new_york": {
			Key:          "new_york",
			Name:         "New York City, NY",
			Country:      "United States",
			Region:       "North America",
			SafetyRating: 4,
			SafetyNotes:  "Very safe in Manhattan and Brooklyn. Use ride-sharing at night, avoid empty subway cars.",
			Description:  "The city that never sleeps - museums, Broadway, and iconic landmarks",
			HiddenGem:    false,
			Activities: map[string][]types.Activity{
				"museums": {
					{
						Name:        "Metropolitan Museum of Art",
						Category:    "museums",
						Description: "One of the world's largest and most prestigious art museums",
						Coordinates: coords(40.7794, -73.9632),
						Address:     "1000 5th Ave, New York, NY 10028",
						Duration:    "3-4 hours",
						BestTime:    "10:00 AM - 2:00 PM",
						Type:        types.ActivityTypeCity,
						Zone:        "Upper East Side",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Very safe, well-staffed, good for solo exploration",
					},
					{
						Name:        "Museum of Modern Art (MoMA)",
						Category:    "museums",
						Description: "Premier collection of contemporary and modern art",
						Coordinates: coords(40.7614, -73.9776),
						Address:     "11 W 53rd St, New York, NY 10019",
						Duration:    "2-3 hours",
						BestTime:    "11:00 AM - 3:00 PM",
						Type:        types.ActivityTypeCity,
						Zone:        "Midtown",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Excellent for solo visits, frequent security presence",
					},
				},
				"historic landmarks": {
					{
						Name:        "Statue of Liberty",
						Category:    "historic landmarks",
						Description: "Iconic symbol of freedom and democracy",
						Coordinates: coords(40.6892, -74.0445),
						Address:     "Liberty Island, New York, NY 10004",
						Duration:    "4-5 hours",
						BestTime:    "Morning ferry",
						Type:        types.ActivityTypeCity,
						Zone:        "Harbor",
						OptimalTime: types.OptimalHalfDay,
						SafetyNotes: "Safe ferry ride and island visit, join group tours",
					},
				},
				"family friendly": {
					{
						Name:        "Central Park",
						Category:    "family friendly",
						Description: "Large public park with playgrounds, lakes, and activities",
						Coordinates: coords(40.7829, -73.9654),
						Address:     "Central Park, New York, NY",
						Duration:    "3-4 hours",
						BestTime:    "Morning to afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "Midtown",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Very safe during day, stick to main paths, avoid after dark",
					},
				},
				"solo female": {
					{
						Name:        "High Line Park",
						Category:    "solo female",
						Description: "Elevated park perfect for solo walks with great city views",
						Coordinates: coords(40.7480, -74.0048),
						Address:     "High Line, New York, NY 10011",
						Duration:    "1-2 hours",
						BestTime:    "Morning or late afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "Chelsea",
						OptimalTime: types.OptimalAfternoon,
						SafetyNotes: "Excellent for solo female travelers - well-patrolled, lots of people",
					},
				},
			},
		},
		"toronto": {
			Key:          "toronto",
			Name:         "Toronto, Ontario",
			Country:      "Canada",
			Region:       "North America",
			SafetyRating: 5,
			SafetyNotes:  "One of the safest major cities globally. Excellent public transport and helpful locals.",
			Description:  "Diverse, multicultural city with CN Tower and vibrant neighborhoods",
			HiddenGem:    false,
			Activities: map[string][]types.Activity{
				"historic landmarks": {
					{
						Name:        "CN Tower",
						Category:    "historic landmarks",
						Description: "Iconic telecommunications tower with observation decks",
						Coordinates: coords(43.6426, -79.3871),
						Address:     "290 Bremner Blvd, Toronto, ON M5V 3L9",
						Duration:    "2-3 hours",
						BestTime:    "Sunset for best views",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalEvening,
						SafetyNotes: "Extremely safe, perfect for solo travelers",
					},
				},
				"cultural experiences": {
					{
						Name:        "Distillery District",
						Category:    "cultural experiences",
						Description: "Historic cobblestone streets with art galleries and cafes",
						Coordinates: coords(43.6503, -79.3594),
						Address:     "55 Mill St, Toronto, ON M5A 3C4",
						Duration:    "2-4 hours",
						BestTime:    "Afternoon to evening",
						Type:        types.ActivityTypeCity,
						Zone:        "Old Town",
						OptimalTime: types.OptimalAfternoon,
						SafetyNotes: "Very safe, pedestrian-only area, great for solo exploration",
					},
				},
				"solo female": {
					{
						Name:        "Harbourfront Centre",
						Category:    "solo female",
						Description: "Cultural center by the lake with events and waterfront walks",
						Coordinates: coords(43.6385, -79.3837),
						Address:     "235 Queens Quay W, Toronto, ON M5J 2G8",
						Duration:    "2-3 hours",
						BestTime:    "Day or evening",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Extremely safe, well-lit waterfront, regular security patrols",
					},
				},
			},
		},
		"peggy_cove": {
			Key:          "peggy_cove",
			Name:         "Peggy's Cove, Nova Scotia",
			Country:      "Canada",
			Region:       "North America",
			SafetyRating: 5,
			SafetyNotes:  "Extremely safe small community. Locals are very helpful to solo travelers.",
			Description:  "Picturesque fishing village with iconic lighthouse and rugged coastline",
			HiddenGem:    true,
			Activities: map[string][]types.Activity{
				"scenic drives": {
					{
						Name:        "Peggy's Cove Lighthouse",
						Category:    "scenic drives",
						Description: "Canada's most photographed lighthouse on granite rocks",
						Coordinates: coords(44.4925, -63.9168),
						Address:     "178 Peggys Point Rd, Peggys Cove, NS B3Z 3S1",
						Duration:    "1-2 hours",
						BestTime:    "Golden hour for photography",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalEvening,
						SafetyNotes: "Very safe, small community, easy parking and walking",
					},
				},
				"solo female": {
					{
						Name:        "Coastal Walking Trail",
						Category:    "solo female",
						Description: "Safe coastal trail with stunning ocean views",
						Coordinates: coords(44.4930, -63.9150),
						Address:     "Peggy's Cove, NS",
						Duration:    "30-60 minutes",
						BestTime:    "Morning or afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Very safe trail, well-marked, other walkers usually present",
					},
				},
			},
		},
		"mexico_city": {
			Key:          "mexico_city",
			Name:         "Mexico City, Mexico",
			Country:      "Mexico",
			Region:       "North America",
			SafetyRating: 3,
			SafetyNotes:  "Generally safe in tourist areas like Roma Norte, Condesa. Avoid displaying valuables, use Uber.",
			Description:  "Vibrant capital with incredible food, museums, and historic architecture",
			HiddenGem:    false,
			Activities: map[string][]types.Activity{
				"museums": {
					{
						Name:        "Frida Kahlo Museum",
						Category:    "museums",
						Description: "The Blue House where Frida Kahlo lived and worked",
						Coordinates: coords(19.3550, -99.1624),
						Address:     "Londres 247, Del Carmen, Coyoacán, 04100 Ciudad de México, CDMX",
						Duration:    "2-3 hours",
						BestTime:    "Morning to avoid crowds",
						Type:        types.ActivityTypeCity,
						Zone:        "Coyoacán",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Safe area (Coyoacán), book tickets online, join guided tours",
					},
				},
				"cultural experiences": {
					{
						Name:        "Roma Norte Neighborhood",
						Category:    "cultural experiences",
						Description: "Hip neighborhood with galleries, cafes, and boutiques",
						Coordinates: coords(19.4160, -99.1677),
						Address:     "Roma Norte, Mexico City, CDMX",
						Duration:    "3-4 hours",
						BestTime:    "Afternoon to evening",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalAfternoon,
						SafetyNotes: "Very safe neighborhood for solo female travelers, walkable and well-policed",
					},
				},
				"solo female": {
					{
						Name:        "Condesa Park Area",
						Category:    "solo female",
						Description: "Safe, upscale area perfect for solo female travelers",
						Coordinates: coords(19.4095, -99.1720),
						Address:     "Condesa, Mexico City, CDMX",
						Duration:    "2-3 hours",
						BestTime:    "Day to evening",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Excellent for solo women - safe, trendy, good restaurants and cafes",
					},
				},
			},
		},
		"london": {
			Key:          "london",
			Name:         "London, UK",
			Country:      "United Kingdom",
			Region:       "Europe",
			SafetyRating: 4,
			SafetyNotes:  "Generally very safe. Be aware of pickpockets in tourist areas. Public transport excellent.",
			Description:  "Historic capital with world-class museums, royal palaces, and diverse culture",
			HiddenGem:    false,
			Activities: map[string][]types.Activity{
				"museums": {
					{
						Name:        "British Museum",
						Category:    "museums",
						Description: "World's largest collection of historical artifacts and art",
						Coordinates: coords(51.5194, -0.1270),
						Address:     "Great Russell St, London WC1B 3DG, UK",
						Duration:    "4-6 hours",
						BestTime:    "Early morning to avoid crowds",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Very safe, excellent for solo exploration",
					},
					{
						Name:        "Tate Modern",
						Category:    "museums",
						Description: "Premier modern and contemporary art gallery",
						Coordinates: coords(51.5076, -0.0994),
						Address:     "Bankside, London SE1 9TG, UK",
						Duration:    "3-4 hours",
						BestTime:    "Afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "South Bank",
						OptimalTime: types.OptimalAfternoon,
						SafetyNotes: "Safe, well-staffed, great for solo art lovers",
					},
				},
				"historic landmarks": {
					{
						Name:        "Tower of London",
						Category:    "historic landmarks",
						Description: "Historic castle and home to the Crown Jewels",
						Coordinates: coords(51.5081, -0.0759),
						Address:     "St Katharine's & Wapping, London EC3N 4AB, UK",
						Duration:    "3-4 hours",
						BestTime:    "Early morning",
						Type:        types.ActivityTypeCity,
						Zone:        "City",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Very safe, guided tours available",
					},
					{
						Name:        "Westminster Abbey",
						Category:    "historic landmarks",
						Description: "Gothic abbey church where monarchs are crowned",
						Coordinates: coords(51.4994, -0.1273),
						Address:     "20 Deans Yd, Westminster, London SW1P 3PA, UK",
						Duration:    "2-3 hours",
						BestTime:    "Morning",
						Type:        types.ActivityTypeCity,
						Zone:        "Westminster",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Safe, audio guides available for solo visitors",
					},
				},
				"solo female": {
					{
						Name:        "Covent Garden",
						Category:    "solo female",
						Description: "Vibrant market area perfect for solo exploration",
						Coordinates: coords(51.5118, -0.1226),
						Address:     "Covent Garden, London WC2E, UK",
						Duration:    "2-3 hours",
						BestTime:    "Afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalAfternoon,
						SafetyNotes: "Excellent for solo female travelers - safe, lively, great shopping and cafes",
					},
				},
			},
		},
		"paris": {
			Key:          "paris",
			Name:         "Paris, France",
			Country:      "France",
			Region:       "Europe",
			SafetyRating: 4,
			SafetyNotes:  "Generally very safe. Be aware of pickpockets in tourist areas. Metro safe during day.",
			Description:  "City of Light with world-class museums, cuisine, and romantic atmosphere",
			HiddenGem:    false,
			Activities: map[string][]types.Activity{
				"museums": {
					{
						Name:        "Louvre Museum",
						Category:    "museums",
						Description: "World's largest art museum housing the Mona Lisa",
						Coordinates: coords(48.8606, 2.3376),
						Address:     "Rue de Rivoli, 75001 Paris, France",
						Duration:    "4-6 hours",
						BestTime:    "Early morning or late afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Very safe, excellent for solo visits, book timed entry",
					},
				},
				"historic landmarks": {
					{
						Name:        "Eiffel Tower",
						Category:    "historic landmarks",
						Description: "Iconic iron lattice tower and symbol of Paris",
						Coordinates: coords(48.8584, 2.2945),
						Address:     "Champ de Mars, 5 Avenue Anatole France, 75007 Paris",
						Duration:    "2-3 hours",
						BestTime:    "Sunset for best photos",
						Type:        types.ActivityTypeCity,
						Zone:        "7th Arrondissement",
						OptimalTime: types.OptimalEvening,
						SafetyNotes: "Very safe area, well-patrolled, great for solo photos",
					},
				},
				"solo female": {
					{
						Name:        "Marais District",
						Category:    "solo female",
						Description: "Historic district perfect for solo exploration with cafes and boutiques",
						Coordinates: coords(48.8566, 2.3522),
						Address:     "Le Marais, Paris, France",
						Duration:    "3-4 hours",
						BestTime:    "Afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalAfternoon,
						SafetyNotes: "Excellent for solo female travelers - safe, walkable, lots to see",
					},
				},
			},
		},
		"cesky_krumlov": {
			Key:          "cesky_krumlov",
			Name:         "Český Krumlov, Czech Republic",
			Country:      "Czech Republic",
			Region:       "Europe",
			SafetyRating: 5,
			SafetyNotes:  "Extremely safe small town. One of the safest places in Europe for solo female travel.",
			Description:  "Fairytale medieval town with castle and winding cobblestone streets",
			HiddenGem:    true,
			Activities: map[string][]types.Activity{
				"historic landmarks": {
					{
						Name:        "Český Krumlov Castle",
						Category:    "historic landmarks",
						Description: "13th-century castle complex overlooking the Vltava River",
						Coordinates: coords(48.8127, 14.3175),
						Address:     "Zámek 59, 381 01 Český Krumlov, Czechia",
						Duration:    "3-4 hours",
						BestTime:    "Morning for fewer crowds",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Extremely safe, perfect for solo exploration, English tours available",
					},
				},
				"scenic drives": {
					{
						Name:        "Old Town Walking Tour",
						Category:    "scenic drives",
						Description: "Medieval streets perfect for leisurely strolling",
						Coordinates: coords(48.8101, 14.3153),
						Address:     "Historic Center, Český Krumlov, Czechia",
						Duration:    "2-3 hours",
						BestTime:    "Anytime",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalAfternoon,
						SafetyNotes: "Extremely safe for solo walking, very friendly locals",
					},
				},
				"solo female": {
					{
						Name:        "Vltava River Views",
						Category:    "solo female",
						Description: "Peaceful riverside walks perfect for solo reflection",
						Coordinates: coords(48.8105, 14.3140),
						Address:     "Český Krumlov, Czechia",
						Duration:    "1-2 hours",
						BestTime:    "Early morning or late afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "Riverside",
						OptimalTime: types.OptimalEvening,
						SafetyNotes: "Extremely peaceful and safe, perfect for solo female travelers",
					},
				},
			},
		},
		"tokyo": {
			Key:          "tokyo",
			Name:         "Tokyo, Japan",
			Country:      "Japan",
			Region:       "Asia",
			SafetyRating: 5,
			SafetyNotes:  "One of the safest major cities globally. Extremely low crime rate, helpful police.",
			Description:  "Blend of ultra-modern and traditional culture, incredible food scene",
			HiddenGem:    false,
			Activities: map[string][]types.Activity{
				"cultural experiences": {
					{
						Name:        "Senso-ji Temple",
						Category:    "cultural experiences",
						Description: "Tokyo's oldest temple in historic Asakusa district",
						Coordinates: coords(35.7148, 139.7967),
						Address:     "2-3-1 Asakusa, Taito City, Tokyo 111-0032, Japan",
						Duration:    "2-3 hours",
						BestTime:    "Early morning for fewer crowds",
						Type:        types.ActivityTypeCity,
						Zone:        "Asakusa",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Extremely safe, perfect for solo cultural exploration",
					},
				},
				"family friendly": {
					{
						Name:        "Ueno Park",
						Category:    "family friendly",
						Description: "Large park with museums, zoo, and cherry blossoms",
						Coordinates: coords(35.7144, 139.7744),
						Address:     "Uenokoen, Taito City, Tokyo 110-0007, Japan",
						Duration:    "3-4 hours",
						BestTime:    "Morning to afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "Ueno",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Extremely safe, great for solo park walks and museum visits",
					},
				},
				"solo female": {
					{
						Name:        "Shibuya Crossing",
						Category:    "solo female",
						Description: "World's busiest pedestrian crossing, iconic Tokyo experience",
						Coordinates: coords(35.6598, 139.7006),
						Address:     "Shibuya City, Tokyo, Japan",
						Duration:    "1-2 hours",
						BestTime:    "Evening for the full experience",
						Type:        types.ActivityTypeCity,
						Zone:        "Shibuya",
						OptimalTime: types.OptimalEvening,
						SafetyNotes: "Extremely safe even with crowds, perfect solo experience",
					},
				},
			},
		},
		"luang_prabang": {
			Key:          "luang_prabang",
			Name:         "Luang Prabang, Laos",
			Country:      "Laos",
			Region:       "Asia",
			SafetyRating: 4,
			SafetyNotes:  "Generally safe for solo female travelers. Conservative dress recommended. Avoid walking alone very late.",
			Description:  "UNESCO World Heritage town with Buddhist temples and French colonial architecture",
			HiddenGem:    true,
			Activities: map[string][]types.Activity{
				"cultural experiences": {
					{
						Name:        "Alms Ceremony",
						Category:    "cultural experiences",
						Description: "Traditional Buddhist morning alms giving ceremony",
						Coordinates: coords(19.8845, 102.1348),
						Address:     "Sisavangvong Road, Luang Prabang, Laos",
						Duration:    "1 hour",
						BestTime:    "6:00 AM",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Safe cultural experience, maintain respectful distance, dress modestly",
					},
				},
				"scenic drives": {
					{
						Name:        "Kuang Si Falls",
						Category:    "scenic drives",
						Description: "Multi-tiered waterfall with turquoise pools",
						Coordinates: coords(19.7489, 102.0714),
						Address:     "Kuang Si Falls, Luang Prabang, Laos",
						Duration:    "Full day",
						BestTime:    "Morning for best lighting",
						Type:        types.ActivityTypeDayTrip,
						Zone:        "Day Trip",
						OptimalTime: types.OptimalFullDay,
						SafetyNotes: "Safe with tour groups, swimming allowed in designated areas",
					},
				},
				"solo female": {
					{
						Name:        "Night Market",
						Category:    "solo female",
						Description: "Evening handicraft market perfect for solo browsing",
						Coordinates: coords(19.8854, 102.1351),
						Address:     "Sisavangvong Road, Luang Prabang, Laos",
						Duration:    "2-3 hours",
						BestTime:    "Evening after 6 PM",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalEvening,
						SafetyNotes: "Safe for solo female shopping, well-lit, friendly vendors",
					},
				},
			},
		},
		"buenos_aires": {
			Key:          "buenos_aires",
			Name:         "Buenos Aires, Argentina",
			Country:      "Argentina",
			Region:       "South America",
			SafetyRating: 3,
			SafetyNotes:  "Generally safe in tourist areas like Palermo, Recoleta. Use official taxis, avoid showing valuables.",
			Description:  "Paris of South America with tango, steak, and European architecture",
			HiddenGem:    false,
			Activities: map[string][]types.Activity{
				"cultural experiences": {
					{
						Name:        "San Telmo Sunday Market",
						Category:    "cultural experiences",
						Description: "Historic neighborhood market with tango performances",
						Coordinates: coords(-34.6211, -58.3731),
						Address:     "Defensa 1179, C1065 CABA, Argentina",
						Duration:    "3-4 hours",
						BestTime:    "Sunday afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "San Telmo",
						OptimalTime: types.OptimalAfternoon,
						SafetyNotes: "Safe during market hours, stay in main tourist areas",
					},
				},
				"historic landmarks": {
					{
						Name:        "Recoleta Cemetery",
						Category:    "historic landmarks",
						Description: "Famous cemetery where Eva Perón is buried",
						Coordinates: coords(-34.5877, -58.3923),
						Address:     "Junín 1760, C1113 CABA, Argentina",
						Duration:    "1-2 hours",
						BestTime:    "Morning or afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "Recoleta",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Very safe area (Recoleta), well-maintained, security present",
					},
				},
				"solo female": {
					{
						Name:        "Palermo Neighborhood",
						Category:    "solo female",
						Description: "Trendy neighborhood perfect for solo exploration",
						Coordinates: coords(-34.5875, -58.4270),
						Address:     "Palermo, Buenos Aires, Argentina",
						Duration:    "4-6 hours",
						BestTime:    "Afternoon to evening",
						Type:        types.ActivityTypeCity,
						Zone:        "Palermo",
						OptimalTime: types.OptimalAfternoon,
						SafetyNotes: "Very safe for solo female travelers, upscale area with good restaurants",
					},
				},
			},
		},
		"melbourne": {
			Key:          "melbourne",
			Name:         "Melbourne, Australia",
			Country:      "Australia",
			Region:       "Australia/Oceania",
			SafetyRating: 5,
			SafetyNotes:  "Extremely safe city. Excellent public transport. Very solo-female-friendly culture.",
			Description:  "Cultural capital with coffee culture, street art, and diverse food scene",
			HiddenGem:    false,
			Activities: map[string][]types.Activity{
				"cultural experiences": {
					{
						Name:        "Hosier Lane Street Art",
						Category:    "cultural experiences",
						Description: "Famous laneway covered in ever-changing street art",
						Coordinates: coords(-37.8162, 144.9692),
						Address:     "Hosier Ln, Melbourne VIC 3000, Australia",
						Duration:    "1-2 hours",
						BestTime:    "Anytime",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Very safe, central location, perfect for solo photography",
					},
				},
				"family friendly": {
					{
						Name:        "Royal Botanic Gardens",
						Category:    "family friendly",
						Description: "Beautiful gardens along the Yarra River",
						Coordinates: coords(-37.8304, 144.9796),
						Address:     "Birdwood Ave, Melbourne VIC 3004, Australia",
						Duration:    "2-3 hours",
						BestTime:    "Morning to afternoon",
						Type:        types.ActivityTypeCity,
						Zone:        "South Yarra",
						OptimalTime: types.OptimalMorning,
						SafetyNotes: "Extremely safe, perfect for solo walks and picnics",
					},
				},
				"solo female": {
					{
						Name:        "Federation Square",
						Category:    "solo female",
						Description: "Cultural hub perfect for solo travelers to people-watch",
						Coordinates: coords(-37.8179, 144.9690),
						Address:     "Flinders St & Swanston St, Melbourne VIC 3000, Australia",
						Duration:    "2-3 hours",
						BestTime:    "Afternoon to evening",
						Type:        types.ActivityTypeCity,
						Zone:        "Central",
						OptimalTime: types.OptimalAfternoon,
						SafetyNotes: "Extremely safe, central meeting point, lots of activities",
					},
				},
			},
		},
		"sintra": {
			Key:          "sintra",
			Name:         "Sintra, Portugal",
			Country:      "Portugal",
			Region:       "Europe",
			SafetyRating: 5,
			SafetyNotes:  "Extremely safe small town. Perfect for solo female travelers.",
			Description:  "Fairytale town with colorful palaces and romantic gardens",
			HiddenGem:    true,
		},
		"hallstatt": {
			Key:          "hallstatt",
			Name:         "Hallstatt, Austria",
			Country:      "Austria",
			Region:       "Europe",
			SafetyRating: 5,
			SafetyNotes:  "One of the safest places in Europe. Tiny village, very welcoming.",
			Description:  "Picture-perfect lakeside village in the Austrian Alps",
			HiddenGem:    true,
		},
		"rothenburg": {
			Key:          "rothenburg",
			Name:         "Rothenburg ob der Tauber, Germany",
			Country:      "Germany",
			Region:       "Europe",
			SafetyRating: 5,
			SafetyNotes:  "Extremely safe medieval town. Perfect for solo exploration.",
			Description:  "Best-preserved medieval town in Germany",
			HiddenGem:    true,
		},
	}
}
