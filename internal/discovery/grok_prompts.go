package discovery

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wildercal/internal/domain"
)

const grokSystemPrompt = `You are a local family activities researcher for Wilder Seasons, a nature-based family guide publisher.

Find authentic, locally loved places for families with children ages 0-9.

We want:
- Places local parents actually recommend to each other
- Hidden gems that do not show up in typical tourist searches
- Family farms, local bakeries, neighborhood parks with character
- Free or low-cost destinations ($20 max per person)
- Nature-connected experiences

We do not want:
- Chain restaurants or stores
- Tourist traps or heavily commercialized attractions
- Expensive venues (over $20 per person)
- Places that tolerate but do not welcome young kids

For each place found, return structured JSON as specified in the user prompt.`

const placesSchema = `{
  "places": [
    {
      "name": "Place Name",
      "category": "nature|farm|library|museum|indoor_play|garden|seasonal",
      "description": "What it is and why families love it",
      "insiderTip": "Best time to visit or what to bring",
      "cost": "free|under $10|under $20"
    }
  ]
}`

func xParentsPrompt(req Request) string {
	tag := strings.ReplaceAll(req.City, " ", "")
	return fmt.Sprintf(`Search X for family activity recommendations in %[1]s, %[2]s.

Look for:
1. Posts asking where to take kids in %[1]s
2. Posts sharing favorite spots or hidden gems for families
3. Local parent accounts sharing weekend activities
4. Posts with hashtags like #%[3]sMoms, #%[3]sKids, #%[3]sFamilies
5. Replies where parents recommend specific places

Focus on farms with kid activities, local bakeries and ice cream shops, parks with features parents mention, free nature spots and seasonal family activities.

Return as JSON, using "whyParentsLoveIt" in place of "description":
%[4]s`, req.City, req.State, tag, placesSchema)
}

func neighborhoodPrompt(req Request) string {
	return fmt.Sprintf(`Find family-friendly hidden gems in %[1]s, %[2]s by searching neighborhood by neighborhood.

For each major neighborhood find:
1. The playground or park locals love
2. The local treat spot (bakery, ice cream, donut shop)
3. A nature access point (creek, trail, garden)
4. A rainy-day option (library, indoor play, museum)
5. Any hidden gem unique to that neighborhood

Return as JSON:
%[3]s`, req.City, req.State, placesSchema)
}

func blogDomainsPrompt(req Request) string {
	return fmt.Sprintf(`Find local parenting blogs, mom blogs and family activity websites specific to %[1]s, %[2]s.

Search for "%[1]s mom blog", "%[1]s parenting blog", "%[1]s family activities blog" and "things to do %[1]s kids blog".

Exclude national parenting sites. Return ONLY a JSON object with domain names:
{"domains": ["example-city-moms.com", "local-family-blog.com"]}`, req.City, req.State)
}

func blogSearchPrompt(req Request, domains []string) string {
	return fmt.Sprintf(`Search these local %[1]s, %[2]s family sources for activity recommendations: %[3]s

Look for "best of" lists for families, seasonal activity guides, farm and orchard recommendations, playground guides and hidden gem roundups.

Return as JSON:
%[4]s`, req.City, req.State, strings.Join(domains, ", "), placesSchema)
}

var seasonalKeywords = map[domain.Season][]string{
	domain.SeasonSpring: {"easter egg hunt", "spring festival", "baby animals", "tulip festival", "plant sale", "wildflower walk", "nature program"},
	domain.SeasonSummer: {"berry picking", "splash pad", "free outdoor concert", "farmers market", "firefly watching", "u-pick farm", "outdoor movie night"},
	domain.SeasonFall:   {"pumpkin patch", "apple orchard", "corn maze", "fall festival", "hayride", "cider mill", "harvest celebration"},
	domain.SeasonWinter: {"christmas tree farm", "holiday lights", "sledding hill", "ice skating", "indoor play", "hot cocoa", "holiday market"},
}

func seasonalPrompt(req Request, season domain.Season) string {
	var queries strings.Builder
	for _, kw := range seasonalKeywords[season] {
		fmt.Fprintf(&queries, "- \"%s %s %s\"\n", kw, req.City, req.State)
	}
	return fmt.Sprintf(`Find %[1]s family activities in %[2]s, %[3]s.

Search for these specific activities:
%[4]s
Also search X for recent posts about %[1]s activities families are enjoying in %[2]s.

Note when each activity operates and any tips for visiting with young kids (ages 0-9). Prioritize local, family-owned operations over commercial chains.

Return as JSON:
%[5]s`, season, req.City, req.State, queries.String(), placesSchema)
}
