package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"roamai/internal/models/travel_models"
	"roamai/pkg/utils"
)

type ActivityTemplate struct {
	Name            string
	Description     string
	DurationMinutes int
	BasePrice       float64
}

// ActivityCatalog maps interests to categories and regions to template pools.
// It is immutable configuration; the service never writes to it.
type ActivityCatalog struct {
	InterestCategories map[travel_models.TravelInterest][]string
	RegionTemplates    map[string]map[string][]ActivityTemplate
	CountryRegions     map[string]string
}

func DefaultActivityCatalog() ActivityCatalog {
	return ActivityCatalog{
		InterestCategories: map[travel_models.TravelInterest][]string{
			travel_models.InterestAdventure:   {"Adventure", "Outdoor", "Sports", "Adrenaline"},
			travel_models.InterestRelaxation:  {"Spa", "Wellness", "Beach", "Nature"},
			travel_models.InterestCulture:     {"Museum", "Art", "History", "Cultural", "Heritage"},
			travel_models.InterestFood:        {"Food", "Culinary", "Cooking Class", "Wine Tasting", "Food Tour"},
			travel_models.InterestShopping:    {"Shopping", "Market", "Mall", "Boutique"},
			travel_models.InterestNature:      {"Nature", "Park", "Wildlife", "Garden", "Hiking"},
			travel_models.InterestBeach:       {"Beach", "Water Sports", "Snorkeling", "Diving", "Surfing"},
			travel_models.InterestPilgrimage:  {"Religious", "Spiritual", "Pilgrimage", "Temple", "Mosque", "Church"},
			travel_models.InterestSightseeing: {"Sightseeing", "Tour", "Landmark", "Attraction"},
			travel_models.InterestHistory:     {"History", "Archaeology", "Monument", "Heritage"},
		},
		RegionTemplates: map[string]map[string][]ActivityTemplate{
			"Middle East": {
				"Adventure": {
					{Name: "Desert Safari", Description: "Experience an exciting desert adventure with dune bashing followed by a BBQ dinner under the stars with traditional entertainment.", DurationMinutes: 360, BasePrice: 85},
					{Name: "Sandboarding Adventure", Description: "Ride the desert sand dunes on a sandboard, similar to snowboarding but on sand.", DurationMinutes: 240, BasePrice: 65},
					{Name: "Hot Air Balloon Desert Ride", Description: "Soar above the desert landscape in a hot air balloon for stunning views of the sunrise.", DurationMinutes: 180, BasePrice: 200},
				},
				"Cultural": {
					{Name: "Old City Walking Tour", Description: "Explore the historic districts with a knowledgeable guide sharing insights on the architecture, history, and culture.", DurationMinutes: 180, BasePrice: 50},
					{Name: "Traditional Craft Workshop", Description: "Learn traditional crafts from local artisans, such as calligraphy, pottery, or textile weaving.", DurationMinutes: 120, BasePrice: 60},
					{Name: "Evening Cultural Show", Description: "Enjoy traditional music, dance performances, and cuisine in an authentic setting.", DurationMinutes: 180, BasePrice: 70},
				},
				"Food": {
					{Name: "Street Food Tour", Description: "Taste a variety of local street foods with a culinary expert guiding you through the best vendors and dishes.", DurationMinutes: 210, BasePrice: 75},
					{Name: "Cooking Class", Description: "Learn to prepare traditional dishes with a local chef, followed by enjoying the meal you've created.", DurationMinutes: 180, BasePrice: 90},
					{Name: "Dinner Cruise", Description: "Enjoy a luxurious dinner while cruising along the coast or river, taking in the night views of the city.", DurationMinutes: 180, BasePrice: 110},
				},
				"Religious": {
					{Name: "Sacred Sites Tour", Description: "Visit important religious sites with a knowledgeable guide explaining their significance and history.", DurationMinutes: 240, BasePrice: 60},
					{Name: "Spiritual Meditation Session", Description: "Participate in a guided meditation session at a significant spiritual location.", DurationMinutes: 120, BasePrice: 45},
					{Name: "Religious Festival Experience", Description: "Witness or participate in a traditional religious festival or ceremony, learning about its cultural significance.", DurationMinutes: 180, BasePrice: 55},
				},
			},
			"Europe": {
				"Adventure": {
					{Name: "Mountain Biking Tour", Description: "Navigate scenic mountain trails with a guide, suitable for various skill levels.", DurationMinutes: 240, BasePrice: 70},
					{Name: "Zipline Adventure", Description: "Experience the thrill of ziplining across valleys with stunning views of the landscape.", DurationMinutes: 180, BasePrice: 85},
					{Name: "Kayaking Expedition", Description: "Paddle through rivers or coastal waters, exploring hidden spots accessible only by water.", DurationMinutes: 210, BasePrice: 75},
				},
				"Cultural": {
					{Name: "Museum Private Tour", Description: "Enjoy a private tour of a prestigious museum with an art historian or curator.", DurationMinutes: 150, BasePrice: 90},
					{Name: "Historical Walking Tour", Description: "Walk through historical districts with a historian sharing insights and stories about significant events and places.", DurationMinutes: 180, BasePrice: 50},
					{Name: "Opera or Classical Concert", Description: "Attend a world-class opera or classical music performance in a historic venue.", DurationMinutes: 180, BasePrice: 120},
				},
				"Food": {
					{Name: "Wine Tasting Tour", Description: "Visit vineyards or wine cellars, learning about wine production and tasting various local wines.", DurationMinutes: 240, BasePrice: 95},
					{Name: "Gourmet Food Tour", Description: "Sample delicacies at high-end food shops, markets, and eateries with a culinary expert.", DurationMinutes: 210, BasePrice: 85},
					{Name: "Farm-to-Table Experience", Description: "Visit a local farm, help harvest ingredients, and enjoy a meal prepared with fresh produce.", DurationMinutes: 300, BasePrice: 110},
				},
			},
			"Asia": {
				"Adventure": {
					{Name: "Jungle Trekking", Description: "Hike through lush rainforests with a guide pointing out wildlife and unique plants.", DurationMinutes: 300, BasePrice: 65},
					{Name: "Island Hopping Tour", Description: "Visit multiple islands by boat, with opportunities for swimming, snorkeling, and beach relaxation.", DurationMinutes: 360, BasePrice: 80},
					{Name: "White Water Rafting", Description: "Navigate rushing river rapids with a team and experienced guide.", DurationMinutes: 240, BasePrice: 75},
				},
				"Cultural": {
					{Name: "Temple Tour", Description: "Visit ancient temples with a guide explaining their historical and religious significance.", DurationMinutes: 240, BasePrice: 55},
					{Name: "Traditional Dance Lesson", Description: "Learn the basics of a traditional dance form from a professional dancer.", DurationMinutes: 120, BasePrice: 50},
					{Name: "Tea Ceremony Experience", Description: "Participate in a traditional tea ceremony, learning about its cultural importance and techniques.", DurationMinutes: 90, BasePrice: 60},
				},
				"Food": {
					{Name: "Night Market Food Tour", Description: "Explore vibrant night markets with a guide helping you discover the best local dishes.", DurationMinutes: 180, BasePrice: 65},
					{Name: "Asian Cooking Class", Description: "Learn to prepare authentic dishes with a local chef, including a visit to a market to select ingredients.", DurationMinutes: 240, BasePrice: 80},
					{Name: "Street Food Breakfast Tour", Description: "Start your day sampling traditional breakfast dishes from street vendors and local cafes.", DurationMinutes: 150, BasePrice: 55},
				},
			},
			"North America": {
				"Adventure": {
					{Name: "Helicopter Tour", Description: "See breathtaking views from above with a helicopter tour over natural or urban landscapes.", DurationMinutes: 60, BasePrice: 250},
					{Name: "Wildlife Safari", Description: "Spot native wildlife in their natural habitats with a naturalist guide.", DurationMinutes: 240, BasePrice: 85},
					{Name: "Rock Climbing Experience", Description: "Try rock climbing with professional instructors and equipment on natural formations or indoor walls.", DurationMinutes: 180, BasePrice: 70},
				},
				"Cultural": {
					{Name: "Broadway Show", Description: "Attend a world-famous Broadway musical or play in New York City.", DurationMinutes: 150, BasePrice: 150},
					{Name: "Native American Heritage Tour", Description: "Learn about indigenous cultures, traditions, and history from native guides.", DurationMinutes: 210, BasePrice: 65},
					{Name: "Jazz Club Evening", Description: "Enjoy live jazz performances in a historic or renowned venue with dinner or drinks.", DurationMinutes: 180, BasePrice: 90},
				},
				"Food": {
					{Name: "Food Truck Tour", Description: "Sample a variety of cuisines from popular food trucks with a culinary guide.", DurationMinutes: 180, BasePrice: 70},
					{Name: "Craft Beer Tasting", Description: "Visit microbreweries and sample a range of craft beers with explanations about brewing techniques.", DurationMinutes: 210, BasePrice: 75},
					{Name: "Farm-to-Table Dinner", Description: "Enjoy a multi-course meal prepared with locally sourced ingredients, often at a farm or garden setting.", DurationMinutes: 180, BasePrice: 120},
				},
			},
		},
		CountryRegions: map[string]string{
			"Saudi Arabia": "Middle East", "United Arab Emirates": "Middle East", "Qatar": "Middle East",
			"Bahrain": "Middle East", "Kuwait": "Middle East", "Oman": "Middle East",
			"Jordan": "Middle East", "Lebanon": "Middle East", "Israel": "Middle East",
			"United Kingdom": "Europe", "France": "Europe", "Germany": "Europe", "Italy": "Europe",
			"Spain": "Europe", "Portugal": "Europe", "Greece": "Europe", "Switzerland": "Europe",
			"Austria": "Europe", "Netherlands": "Europe", "Belgium": "Europe", "Sweden": "Europe",
			"Norway": "Europe", "Denmark": "Europe", "Finland": "Europe",
			"Japan": "Asia", "China": "Asia", "Thailand": "Asia", "Vietnam": "Asia",
			"Singapore": "Asia", "Indonesia": "Asia", "Malaysia": "Asia", "South Korea": "Asia",
			"India": "Asia", "Philippines": "Asia", "Sri Lanka": "Asia", "Maldives": "Asia",
			"United States": "North America", "Canada": "North America", "Mexico": "North America",
		},
	}
}

var regionNames = []string{"Middle East", "Europe", "Asia", "North America"}

type DurationRange struct {
	MinMinutes int
	MaxMinutes int
}

type ActivitySearchCriteria struct {
	Destination       travel_models.Location
	Date              time.Time
	Interests         []travel_models.TravelInterest
	Travelers         int
	MaxPricePerPerson float64 // 0 means no ceiling
	DurationRange     *DurationRange
}

type ActivityServiceInterface interface {
	SearchActivities(ctx context.Context, criteria ActivitySearchCriteria) ([]travel_models.Activity, error)
	BookActivity(ctx context.Context, activity travel_models.Activity, traveler travel_models.TravelerDetails) (*travel_models.Booking, error)
}

type ActivityService struct {
	catalog ActivityCatalog
	rand    *utils.RandSource
}

func NewActivityService(catalog ActivityCatalog, rand *utils.RandSource) ActivityServiceInterface {
	return &ActivityService{
		catalog: catalog,
		rand:    rand,
	}
}

// SearchActivities maps interests to categories, picks the region's template
// pool, and generates 1-3 candidates per matched category. Candidates over
// MaxPricePerPerson are excluded. Results sort ascending by per-person price.
func (a *ActivityService) SearchActivities(ctx context.Context, criteria ActivitySearchCriteria) ([]travel_models.Activity, error) {
	log.Printf("Searching activities in %s on %s", criteria.Destination.City, criteria.Date.Format("2006-01-02"))

	if criteria.Travelers < 1 {
		criteria.Travelers = 1
	}

	region := criteria.Destination.Region
	if region == "" {
		region = a.regionForCountry(criteria.Destination.Country)
	}

	categories := a.categoriesForInterests(criteria.Interests)

	regionTemplates, ok := a.catalog.RegionTemplates[region]
	if !ok {
		regionTemplates = a.catalog.RegionTemplates[regionNames[a.rand.IntN(len(regionNames))]]
	}

	var activities []travel_models.Activity
	for _, category := range categories {
		templates := matchTemplates(regionTemplates, category)
		if len(templates) == 0 {
			// No category match in this region; borrow a random pool.
			pools := sortedCategories(regionTemplates)
			if len(pools) == 0 {
				continue
			}
			templates = regionTemplates[pools[a.rand.IntN(len(pools))]]
		}

		count := a.rand.IntBetween(1, 3)
		for i := 0; i < count; i++ {
			template := templates[a.rand.IntN(len(templates))]

			startTime := fmt.Sprintf("%02d:%02d", a.rand.IntBetween(9, 17), 15*a.rand.IntN(4))

			durationMinutes := template.DurationMinutes
			if criteria.DurationRange != nil {
				if durationMinutes < criteria.DurationRange.MinMinutes {
					durationMinutes = criteria.DurationRange.MinMinutes
				} else if durationMinutes > criteria.DurationRange.MaxMinutes {
					durationMinutes = criteria.DurationRange.MaxMinutes
				}
			}

			pricePerPerson := template.BasePrice * (1 + a.rand.FloatBetween(-0.1, 0.1))
			if criteria.MaxPricePerPerson > 0 && pricePerPerson > criteria.MaxPricePerPerson {
				continue
			}
			totalPrice := pricePerPerson * float64(criteria.Travelers)

			activities = append(activities, travel_models.Activity{
				ActivityID:      utils.GenerateID("A"),
				Name:            template.Name,
				Description:     template.Description,
				Location:        criteria.Destination,
				Date:            criteria.Date,
				StartTime:       startTime,
				DurationMinutes: durationMinutes,
				PricePerPerson:  utils.Round2(pricePerPerson),
				TotalPrice:      utils.Round2(totalPrice),
				BookingURL:      "https://example.com/book/activity/" + utils.GenerateID(""),
				Category:        []string{category},
				Images: []string{
					"https://example.com/images/activity1.jpg",
					"https://example.com/images/activity2.jpg",
				},
			})
		}
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].PricePerPerson < activities[j].PricePerPerson
	})

	return activities, nil
}

func (a *ActivityService) BookActivity(ctx context.Context, activity travel_models.Activity, traveler travel_models.TravelerDetails) (*travel_models.Booking, error) {
	log.Printf("Booking activity: %s", activity.Name)

	paymentMethod := traveler.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Credit Card"
	}

	return &travel_models.Booking{
		BookingID:         utils.GenerateID("B"),
		BookingType:       travel_models.BookingTypeActivity,
		Provider:          activity.Name + " Provider",
		Status:            travel_models.BookingStatusConfirmed,
		BookingDate:       time.Now(),
		ReferenceNumber:   utils.GenerateID(utils.InitialsCode(activity.Name, 2)),
		ConfirmationEmail: traveler.Email,
		PaymentDetails: &travel_models.PaymentSummary{
			Amount:        activity.TotalPrice,
			Currency:      "USD",
			PaymentMethod: paymentMethod,
			IsPaid:        true,
		},
		CancellationPolicy: "Free cancellation up to 24 hours before the activity.",
	}, nil
}

// categoriesForInterests expands interests into a de-duplicated category list,
// preserving first-seen order so results stay stable for a given input.
func (a *ActivityService) categoriesForInterests(interests []travel_models.TravelInterest) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, interest := range interests {
		for _, category := range a.catalog.InterestCategories[interest] {
			if !seen[category] {
				seen[category] = true
				categories = append(categories, category)
			}
		}
	}
	return categories
}

func (a *ActivityService) regionForCountry(country string) string {
	if region, ok := a.catalog.CountryRegions[country]; ok {
		return region
	}
	return regionNames[a.rand.IntN(len(regionNames))]
}

// matchTemplates collects templates whose category name overlaps the
// requested one in either direction ("Cultural" matches "Culture" etc.).
// Pools are visited in sorted key order so equal seeds give equal results.
func matchTemplates(regionTemplates map[string][]ActivityTemplate, category string) []ActivityTemplate {
	var matched []ActivityTemplate
	for _, templateCategory := range sortedCategories(regionTemplates) {
		if strings.Contains(templateCategory, category) || strings.Contains(category, templateCategory) {
			matched = append(matched, regionTemplates[templateCategory]...)
		}
	}
	return matched
}

func sortedCategories(regionTemplates map[string][]ActivityTemplate) []string {
	categories := make([]string, 0, len(regionTemplates))
	for category := range regionTemplates {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
