package planner

// DefaultTravelType is the template used when a trip's travel type has no
// template of its own.
const DefaultTravelType = "family"

// Number of template activities assigned to each day
const activitiesPerDay = 3

var activityTemplates = map[string][]string{
	"family": {
		"Visit local temples and cultural sites",
		"Enjoy traditional cuisine at local restaurants",
		"Relax at beaches/resorts",
		"Shopping at local markets",
		"Nature walks and sightseeing",
	},
	"solo": {
		"Explore hidden gems and local spots",
		"Try adventure activities",
		"Visit cafes and work remotely",
		"Cultural immersion activities",
		"Photography and journaling",
	},
	"couple": {
		"Romantic dinners and sunsets",
		"Spa treatments and relaxation",
		"Private boat rides or tours",
		"Photography sessions",
		"Local festival participation",
	},
	"adventure": {
		"Trekking and hiking",
		"Water sports and activities",
		"Wildlife safaris",
		"Camping experiences",
		"Extreme sports",
	},
}

// ActivitiesFor returns the full template list for a travel type, falling
// back to the family template for unknown types.
func ActivitiesFor(travelType string) []string {
	if activities, ok := activityTemplates[travelType]; ok {
		return activities
	}
	return activityTemplates[DefaultTravelType]
}

// dayActivities returns the template activities assigned to a single day.
// Every day of a trip currently receives the same leading entries of the
// template. Returns a fresh slice so day records never alias the template.
func dayActivities(travelType string) []string {
	template := ActivitiesFor(travelType)
	activities := make([]string, activitiesPerDay)
	copy(activities, template[:activitiesPerDay])
	return activities
}
