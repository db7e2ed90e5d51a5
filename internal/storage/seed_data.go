package storage

import (
	"time"

	"github.com/neexbeast/monastery-trails/internal/catalog"
)

const (
	imgRumtek    = "/generated_images/Rumtek_monastery_architecture_detail_513ef8a9.png"
	imgHimalayan = "/generated_images/Himalayan_monastery_landscape_hero_32d4dac4.png"
)

func strPtr(s string) *string { return &s }

func day(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

var seedMonasteries = []catalog.NewMonastery{
	{
		Name:            "Rumtek Monastery",
		Description:     "The largest monastery in Sikkim and seat of the Karmapa. This magnificent structure was built in the 1960s to house the relocated Karmapa from Tibet. Features stunning Tibetan architecture with golden roofs, intricate murals, and houses precious Buddhist artifacts including golden stupas, ancient manuscripts, and religious relics.",
		Region:          catalog.RegionEast,
		Latitude:        "27.3350",
		Longitude:       "88.5593",
		Image:           imgRumtek,
		Significance:    "Seat of the 16th Karmapa - Kagyu School",
		BestTimeToVisit: "October to May",
	},
	{
		Name:            "Enchey Monastery",
		Description:     "A 200-year-old monastery perched on a hilltop with panoramic views of Gangtok and surrounding mountains. Built in 1909, it belongs to the Nyingma order and is known for its beautiful murals depicting Buddhist teachings and peaceful atmosphere perfect for meditation.",
		Region:          catalog.RegionEast,
		Latitude:        "27.3330",
		Longitude:       "88.6140",
		Image:           imgHimalayan,
		Significance:    "Nyingma tradition - Guru Padmasambhava lineage",
		BestTimeToVisit: "March to June",
	},
	{
		Name:            "Pemayangtse Monastery",
		Description:     "One of the oldest and most important monasteries in Sikkim, founded in 1705. Features a unique seven-tiered wooden sculpture representing the celestial palace of Guru Rinpoche. The monastery offers stunning views of Kanchenjunga and houses ancient murals and manuscripts.",
		Region:          catalog.RegionWest,
		Latitude:        "27.2060",
		Longitude:       "88.2470",
		Image:           imgHimalayan,
		Significance:    "Premier Nyingma monastery of Sikkim",
		BestTimeToVisit: "October to May",
	},
	{
		Name:            "Tashiding Monastery",
		Description:     "Sacred monastery situated on a heart-shaped hilltop between Rathong and Rangeet rivers. Founded in 1717, it is famous for its sacred Bumchu ceremony and offers breathtaking panoramic views of snow-capped mountains and valleys.",
		Region:          catalog.RegionWest,
		Latitude:        "27.3220",
		Longitude:       "88.2720",
		Image:           imgRumtek,
		Significance:    "Most sacred Nyingma pilgrimage site",
		BestTimeToVisit: "Year round",
	},
	{
		Name:            "Phensang Monastery",
		Description:     "A serene monastery in North Sikkim known for its pristine mountain location and traditional Buddhist practices. Located at high altitude, it offers breathtaking views of snow-capped peaks and is perfect for those seeking spiritual solitude.",
		Region:          catalog.RegionNorth,
		Latitude:        "27.7000",
		Longitude:       "88.5000",
		Image:           imgHimalayan,
		Significance:    "High altitude meditation center",
		BestTimeToVisit: "May to September",
	},
	{
		Name:            "Bon Monastery",
		Description:     "Unique monastery following the ancient Bon tradition, offering insights into pre-Buddhist spiritual practices of the Himalayan region. This rare monastery preserves ancient rituals and practices that predate Buddhism in Tibet.",
		Region:          catalog.RegionSouth,
		Latitude:        "27.1000",
		Longitude:       "88.4000",
		Image:           imgRumtek,
		Significance:    "Ancient Bon tradition preservation",
		BestTimeToVisit: "October to April",
	},
	{
		Name:            "Dubdi Monastery",
		Description:     "The oldest monastery in Sikkim, established in 1701 by Lhatsun Chempo. Located on a hilltop above Yuksom, it is considered the cradle of Buddhism in Sikkim and offers peaceful meditation spots with historical significance.",
		Region:          catalog.RegionWest,
		Latitude:        "27.3667",
		Longitude:       "88.2167",
		Image:           imgHimalayan,
		Significance:    "First monastery in Sikkim - Nyingma",
		BestTimeToVisit: "March to November",
	},
	{
		Name:            "Ranka Monastery",
		Description:     "Also known as Lingdum Monastery, this modern monastery was built in 1998 and features contemporary Buddhist architecture. It houses a beautiful collection of Buddhist art and offers meditation programs for visitors.",
		Region:          catalog.RegionEast,
		Latitude:        "27.2833",
		Longitude:       "88.5667",
		Image:           imgRumtek,
		Significance:    "Modern Kagyu monastery",
		BestTimeToVisit: "Year round",
	},
}

var seedFestivals = []catalog.NewFestival{
	{
		Name:         "Losar",
		Date:         "February 2024",
		Description:  "Tibetan New Year celebrated with traditional masked dances, prayers, colorful decorations, and community feasts across all monasteries. This 15-day celebration marks the most important festival in the Buddhist calendar.",
		Monastery:    strPtr("All Monasteries"),
		Significance: "Tibetan New Year - Most Important Buddhist Festival",
	},
	{
		Name:         "Saga Dawa",
		Date:         "May 2024",
		Description:  "Sacred month commemorating Buddha's birth, enlightenment, and nirvana with special prayers, rituals, and merit-making activities. Devotees engage in circumambulation and offer prayers for world peace.",
		Monastery:    strPtr("Pemayangtse Monastery"),
		Significance: "Triple Blessed Day of Buddha",
	},
	{
		Name:         "Pang Lhabsol",
		Date:         "August 2024",
		Description:  "Unique festival celebrating Mount Khangchendzonga as the guardian deity of Sikkim, featuring spectacular warrior dances and traditional ceremonies that showcase the cultural heritage of the region.",
		Monastery:    strPtr("Enchey Monastery"),
		Significance: "Mountain Guardian Festival",
	},
	{
		Name:         "Drupka Teshi",
		Date:         "July 2024",
		Description:  "Celebrates Buddha's first sermon with special prayers, traditional performances, and teachings. Monks and devotees gather to listen to dharma teachings and participate in religious ceremonies.",
		Monastery:    strPtr("Tashiding Monastery"),
		Significance: "First Sermon Day",
	},
	{
		Name:         "Bumchu",
		Date:         "January 2024",
		Description:  "Sacred water ceremony at Tashiding Monastery where the water level in a sacred pot predicts the coming year's fortune. This unique festival draws thousands of pilgrims.",
		Monastery:    strPtr("Tashiding Monastery"),
		Significance: "Sacred Water Prophecy",
	},
	{
		Name:         "Dushera",
		Date:         "October 2024",
		Description:  "Hindu festival celebrating the victory of good over evil, widely celebrated across Sikkim with cultural performances, traditional dances, and community gatherings.",
		Monastery:    strPtr("Local Communities"),
		Significance: "Victory of Good over Evil",
	},
}

var seedAccommodations = []catalog.NewAccommodation{
	{
		Name:      "Mayfair Spa Resort & Casino",
		Type:      catalog.AccommodationHotel,
		Location:  "Gangtok",
		Price:     8000,
		Rating:    5,
		Amenities: []string{"Spa", "Casino", "Mountain View", "Restaurant", "WiFi", "Pool"},
		Image:     imgHimalayan,
	},
	{
		Name:      "WelcomHotel Denzong",
		Type:      catalog.AccommodationHotel,
		Location:  "Gangtok",
		Price:     6000,
		Rating:    4,
		Amenities: []string{"Restaurant", "Business Center", "WiFi", "Room Service", "Parking"},
		Image:     imgRumtek,
	},
	{
		Name:      "Traditional Lepcha Homestay",
		Type:      catalog.AccommodationHomestay,
		Location:  "Dzongu",
		Price:     1500,
		Rating:    4,
		Amenities: []string{"Traditional Meals", "Cultural Experience", "Mountain View", "Organic Garden"},
		Image:     imgHimalayan,
	},
	{
		Name:      "Monastery Guesthouse",
		Type:      catalog.AccommodationHomestay,
		Location:  "Rumtek",
		Price:     800,
		Rating:    3,
		Amenities: []string{"Meditation Hall", "Vegetarian Meals", "Peaceful Environment", "Library"},
		Image:     imgRumtek,
	},
	{
		Name:      "Bamboo Grove Eco Lodge",
		Type:      catalog.AccommodationEcoLodge,
		Location:  "Pelling",
		Price:     3500,
		Rating:    4,
		Amenities: []string{"Eco-friendly", "Nature Trails", "Organic Food", "Solar Power", "Bird Watching"},
		Image:     imgHimalayan,
	},
	{
		Name:      "Mountain Retreat Eco Resort",
		Type:      catalog.AccommodationEcoLodge,
		Location:  "Lachung",
		Price:     4000,
		Rating:    4,
		Amenities: []string{"Mountain View", "Yoga", "Organic Meals", "Nature Walks", "Clean Energy"},
		Image:     imgRumtek,
	},
}

var seedBlogs = []catalog.NewBlog{
	{
		Title:       "A Spiritual Journey Through Rumtek Monastery",
		Content:     "Discover the profound spiritual experience of visiting one of Sikkim's most significant monasteries. From the early morning prayers echoing through the halls to the intricate Buddhist art adorning every surface, Rumtek offers a window into centuries-old traditions that continue to thrive in the modern world. The monastery complex houses over 300 monks and serves as a center for Buddhist learning and meditation practices. Visitors can witness daily prayer ceremonies, explore the main prayer hall with its stunning golden Buddha statue, and learn about Tibetan Buddhist philosophy from resident monks.",
		Author:      "Priya Sharma",
		PublishedAt: day("2024-01-15"),
		Category:    catalog.CategoryExperiences,
		Image:       imgRumtek,
	},
	{
		Title:       "Essential Tips for First-Time Visitors to Sikkim Monasteries",
		Content:     "Planning your first monastery visit in Sikkim? This comprehensive guide covers everything from dress codes and photography etiquette to the best times for visits and how to participate respectfully in prayer ceremonies. Learn about the cultural significance of different rituals, understand the meaning behind colorful prayer flags, and discover practical considerations for a meaningful spiritual experience. Important tips include wearing modest clothing, removing shoes before entering prayer halls, and maintaining silence during ceremonies.",
		Author:      "David Chen",
		PublishedAt: day("2024-01-20"),
		Category:    catalog.CategoryTravelTips,
		Image:       imgHimalayan,
	},
	{
		Title:       "Understanding Buddhist Festivals in Sikkim",
		Content:     "Explore the rich tapestry of Buddhist festivals celebrated throughout Sikkim. From the colorful masked dances of Losar to the sacred significance of Saga Dawa, each festival offers unique insights into Tibetan Buddhist culture and provides visitors with unforgettable experiences. Learn about the spiritual meaning behind different ceremonies, the role of music and dance in Buddhist traditions, and how to respectfully participate in these sacred celebrations.",
		Author:      "Lama Tenzin Norbu",
		PublishedAt: day("2024-01-25"),
		Category:    catalog.CategoryCulture,
		Image:       imgRumtek,
	},
	{
		Title:       "Photography Guide: Capturing the Beauty of Himalayan Monasteries",
		Content:     "Learn the art of monastery photography while respecting sacred spaces. This guide covers camera settings for low-light interiors, composition techniques for architectural details, and the ethics of photographing religious ceremonies and practitioners. Discover how to capture the essence of spiritual life without disturbing the peaceful atmosphere, and understand when photography is appropriate and when it should be avoided.",
		Author:      "Sarah Miller",
		PublishedAt: day("2024-02-01"),
		Category:    catalog.CategoryGuides,
		Image:       imgHimalayan,
	},
	{
		Title:       "The Ancient Art of Thangka Painting in Sikkim Monasteries",
		Content:     "Delve into the sacred art of Thangka painting, a traditional Tibetan Buddhist art form preserved in Sikkim's monasteries. Learn about the spiritual significance of these intricate paintings, the materials and techniques used, and meet the master artists who continue this ancient tradition. Discover how these sacred artworks serve as both teaching tools and objects of meditation.",
		Author:      "Master Karma Tashi",
		PublishedAt: day("2024-02-05"),
		Category:    catalog.CategoryCulture,
		Image:       imgRumtek,
	},
}
