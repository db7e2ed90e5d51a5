package itinerary

// plans holds the hand-authored schedule for each trip type.
var plans = map[TripType]Itinerary{
	ThreeDay: {
		Title:       "3-Day Spiritual Discovery",
		Description: "A perfect introduction to Sikkim's monastery heritage",
		Days: []Day{
			{
				Day:           1,
				Title:         "Gangtok Monasteries",
				Activities:    []string{"Arrival and check-in", "Enchey Monastery visit", "Traditional dinner"},
				Monasteries:   []string{"Enchey Monastery"},
				Accommodation: "Gangtok Hotel",
			},
			{
				Day:           2,
				Title:         "Rumtek Monastery Experience",
				Activities:    []string{"Early morning prayers", "Monastery tour", "Meditation session"},
				Monasteries:   []string{"Rumtek Monastery"},
				Accommodation: "Monastery Guesthouse",
			},
			{
				Day:         3,
				Title:       "Cultural Immersion",
				Activities:  []string{"Local market visit", "Traditional crafts workshop", "Departure"},
				Monasteries: []string{},
			},
		},
	},
	SevenDay: {
		Title:       "7-Day Complete Sikkim Experience",
		Description: "Comprehensive journey through all regions of Sikkim",
		Days: []Day{
			{Day: 1, Title: "Arrival in Gangtok", Activities: []string{"Airport pickup", "Hotel check-in", "Enchey Monastery", "Welcome dinner"}, Monasteries: []string{"Enchey Monastery"}},
			{Day: 2, Title: "East Sikkim Exploration", Activities: []string{"Rumtek Monastery", "Traditional lunch", "Local village visit"}, Monasteries: []string{"Rumtek Monastery"}},
			{Day: 3, Title: "Journey to West Sikkim", Activities: []string{"Drive to Pelling", "Pemayangtse Monastery", "Sunset views"}, Monasteries: []string{"Pemayangtse Monastery"}},
			{Day: 4, Title: "Sacred Tashiding", Activities: []string{"Tashiding Monastery pilgrimage", "River valley trek", "Local homestay"}, Monasteries: []string{"Tashiding Monastery"}},
			{Day: 5, Title: "North Sikkim Adventure", Activities: []string{"High altitude monasteries", "Mountain photography", "Cultural exchange"}, Monasteries: []string{"Phensang Monastery"}},
			{Day: 6, Title: "Festival and Culture", Activities: []string{"Traditional festival (if available)", "Handicraft workshops", "Farewell dinner"}, Monasteries: []string{}},
			{Day: 7, Title: "Departure", Activities: []string{"Final monastery visit", "Shopping", "Airport transfer"}, Monasteries: []string{}},
		},
	},
	Adventure: {
		Title:       "Adventure & Monastery Trek",
		Description: "Combine spiritual discovery with mountain adventures",
		Days: []Day{
			{Day: 1, Title: "Base Camp Setup", Activities: []string{"Trekking gear preparation", "Monastery blessing ceremony", "Acclimatization"}, Monasteries: []string{"Rumtek Monastery"}},
			{Day: 2, Title: "High Altitude Monasteries", Activities: []string{"Mountain monastery trek", "Photography session", "Meditation retreat"}, Monasteries: []string{"Phensang Monastery"}},
			{Day: 3, Title: "Adventure Activities", Activities: []string{"River rafting", "Mountain biking", "Rock climbing", "Monastery visit"}, Monasteries: []string{"Tashiding Monastery"}},
		},
	},
	Cultural: {
		Title:       "Cultural Immersion Journey",
		Description: "Deep dive into Buddhist culture and traditions",
		Days: []Day{
			{Day: 1, Title: "Cultural Orientation", Activities: []string{"Cultural center visit", "Traditional welcome ceremony", "Monastery introduction"}, Monasteries: []string{"Enchey Monastery"}},
			{Day: 2, Title: "Living with Monks", Activities: []string{"Monastery stay", "Prayer ceremonies", "Buddhist philosophy learning"}, Monasteries: []string{"Rumtek Monastery"}},
			{Day: 3, Title: "Traditional Arts", Activities: []string{"Thangka painting workshop", "Traditional music", "Crafts learning"}, Monasteries: []string{"Pemayangtse Monastery"}},
			{Day: 4, Title: "Festival Participation", Activities: []string{"Festival preparation", "Traditional dance", "Community feast"}, Monasteries: []string{"Tashiding Monastery"}},
		},
	},
}
