package advisor

const activityDefault = "Enjoy your day with activities you love!"

var activityRules = []rule[string]{
	{keywords: []string{"rain"}, outcome: "It's rainy. Best to stay indoors with a book or watch a movie."},
	{keywords: []string{"clear"}, outcome: "Great weather! Perfect for a walk, outdoor sports, or cycling."},
	{keywords: []string{"cloud"}, outcome: "Cloudy skies! Consider a relaxing outdoor walk or a visit to a café."},
	{keywords: []string{"snow"}, outcome: "Snowy weather! Try skiing, building a snowman, or enjoy a warm drink inside."},
	{keywords: []string{"storm"}, outcome: "Stormy weather! Stay safe indoors, read a book, or binge-watch a series."},
}

// ActivityRecommendation suggests a single activity from the weather description.
func ActivityRecommendation(description string) string {
	return firstMatch(activityRules, description, activityDefault)
}
