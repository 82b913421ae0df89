package catalog

import "trend_scout/internal/domain"

var defaultCategories = []Category{
	{
		Name: "Funny",
		Terms: map[domain.Platform][]string{
			domain.PlatformTikTok:    {"fyp", "funny", "comedy", "memes", "foryou"},
			domain.PlatformInstagram: {"funny", "memes", "comedy", "lol", "funnyvideos"},
			domain.PlatformTwitter:   {"funny", "memes", "comedy", "viral", "lol"},
			domain.PlatformFacebook:  {"funny", "comedy", "memes"},
		},
		Feeds: []string{"https://www.reddit.com/r/funny/.rss"},
	},
	{
		Name: "Animals",
		Terms: map[domain.Platform][]string{
			domain.PlatformTikTok:    {"animals", "cute", "pets", "dogs", "cats"},
			domain.PlatformInstagram: {"animals", "cute", "petsofinstagram", "dogsofinstagram", "catsofinstagram"},
			domain.PlatformTwitter:   {"animals", "pets", "cute animals", "wildlife"},
			domain.PlatformFacebook:  {"animals", "pets", "wildlife"},
		},
		Feeds: []string{"https://www.reddit.com/r/aww/.rss"},
	},
	{
		Name: "Relationships",
		Terms: map[domain.Platform][]string{
			domain.PlatformTikTok:    {"relationships", "dating", "marriage", "storytime"},
			domain.PlatformInstagram: {"relationships", "relationshipgoals", "dating", "marriage"},
			domain.PlatformTwitter:   {"relationships", "dating", "AITA", "relationship advice"},
			domain.PlatformFacebook:  {"relationships", "family", "marriage"},
		},
		Feeds: []string{"https://www.reddit.com/r/relationships/.rss"},
	},
	{
		Name: "Art & Design",
		Terms: map[domain.Platform][]string{
			domain.PlatformTikTok:    {"art", "design", "creative", "artist"},
			domain.PlatformInstagram: {"art", "design", "artwork", "creativity", "artistsoninstagram"},
			domain.PlatformTwitter:   {"art", "design", "creative", "artist"},
			domain.PlatformFacebook:  {"art", "design", "creative"},
		},
		Feeds: []string{"https://www.reddit.com/r/Art/.rss"},
	},
	{
		Name: "Entertainment",
		Terms: map[domain.Platform][]string{
			domain.PlatformTikTok:    {"entertainment", "celebrity", "movies", "tv"},
			domain.PlatformInstagram: {"entertainment", "celebrity", "movies", "tvshows"},
			domain.PlatformTwitter:   {"entertainment", "celebrity news", "movies", "TV"},
			domain.PlatformFacebook:  {"entertainment", "celebrity", "movies"},
		},
		Feeds: []string{"https://rss.nytimes.com/services/xml/rss/nyt/Movies.xml"},
	},
	{
		Name: "Curiosities",
		Terms: map[domain.Platform][]string{
			domain.PlatformTikTok:    {"interesting", "didyouknow", "facts", "todayilearned"},
			domain.PlatformInstagram: {"interesting", "facts", "knowledge", "didyouknow"},
			domain.PlatformTwitter:   {"interesting", "TIL", "facts", "mind blown"},
			domain.PlatformFacebook:  {"interesting", "facts", "curiosities"},
		},
		Feeds: []string{"https://www.reddit.com/r/todayilearned/.rss"},
	},
	{
		Name: "Lifestyle",
		Terms: map[domain.Platform][]string{
			domain.PlatformTikTok:    {"lifestyle", "lifehacks", "wellness", "selfcare"},
			domain.PlatformInstagram: {"lifestyle", "wellness", "selfcare", "lifestyleblogger"},
			domain.PlatformTwitter:   {"lifestyle", "wellness", "life tips"},
			domain.PlatformFacebook:  {"lifestyle", "wellness", "life tips"},
		},
		Feeds: []string{"https://www.reddit.com/r/LifeProTips/.rss"},
	},
	{
		Name: "Society",
		Terms: map[domain.Platform][]string{
			domain.PlatformTikTok:    {"society", "social", "community", "awareness"},
			domain.PlatformInstagram: {"society", "social", "community", "socialissues"},
			domain.PlatformTwitter:   {"society", "social issues", "community"},
			domain.PlatformFacebook:  {"society", "social issues", "community"},
		},
		Feeds: []string{"https://www.reddit.com/r/news/.rss"},
	},
	{
		Name: "Entertainment News",
		Terms: map[domain.Platform][]string{
			domain.PlatformTikTok:    {"celebritynews", "gossip", "hollywood"},
			domain.PlatformInstagram: {"celebritynews", "gossip", "enews"},
			domain.PlatformTwitter:   {"celebrity news", "Hollywood gossip", "entertainment news"},
			domain.PlatformFacebook:  {"celebrity news", "entertainment news"},
		},
		Feeds: []string{"https://rss.nytimes.com/services/xml/rss/nyt/Movies.xml"},
	},
	{
		Name: "Politics",
		Terms: map[domain.Platform][]string{
			domain.PlatformTikTok:    {"politics", "news", "political"},
			domain.PlatformInstagram: {"politics", "political", "news"},
			domain.PlatformTwitter:   {"politics", "political news", "breaking news"},
			domain.PlatformFacebook:  {"politics", "political news"},
		},
		Feeds: []string{"https://rss.nytimes.com/services/xml/rss/nyt/Politics.xml"},
	},
}
