package catalog

import "github.com/subscope-dev/subscope/internal/model"

// patterns is the merchant pattern table. Processor prefixes come first so a
// wrapped charge ("PAYPAL *SPOTIFY") resolves through extraction rather than
// matching the wrapped vendor directly. Order within the table is part of the
// matching contract.
var patterns = []Pattern{
	// Payment processors. The real vendor follows the prefix.
	{Match: "PAYPAL", ExtractVendor: true},
	{Match: "PYPL", ExtractVendor: true},
	{Match: "SQ *", ExtractVendor: true},
	{Match: "TST*", ExtractVendor: true},
	{Match: "SP *", ExtractVendor: true},
	{Match: "GOOGLE *", ExtractVendor: true},
	{Match: "APL*", ExtractVendor: true},
	{Match: "FSP*", ExtractVendor: true},
	{Match: "PADDLE.NET", ExtractVendor: true},
	{Match: "EB *", ExtractVendor: true},
	{Match: "WPY*", ExtractVendor: true},
	{Match: "IN *", ExtractVendor: true},

	// Streaming and entertainment.
	{Match: "NETFLIX", DisplayName: "Netflix", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "SPOTIFY", DisplayName: "Spotify", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "HULU", DisplayName: "Hulu", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "DISNEY PLUS", DisplayName: "Disney+", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "DISNEYPLUS", DisplayName: "Disney+", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "HBO MAX", DisplayName: "Max", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "MAX.COM", DisplayName: "Max", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "PARAMOUNT+", DisplayName: "Paramount+", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "PARAMOUNT PLUS", DisplayName: "Paramount+", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "PEACOCK", DisplayName: "Peacock", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "CRAVE", DisplayName: "Crave", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "APPLE.COM/BILL", DisplayName: "Apple Services", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "YOUTUBE PREMIUM", DisplayName: "YouTube Premium", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "YOUTUBETV", DisplayName: "YouTube TV", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "AMAZON PRIME", DisplayName: "Amazon Prime", Category: model.CategoryShopping, IsSubscription: true},
	{Match: "AMZN PRIME", DisplayName: "Amazon Prime", Category: model.CategoryShopping, IsSubscription: true},
	{Match: "AUDIBLE", DisplayName: "Audible", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "CRUNCHYROLL", DisplayName: "Crunchyroll", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "TWITCH", DisplayName: "Twitch", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "DEEZER", DisplayName: "Deezer", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "TIDAL", DisplayName: "Tidal", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "PANDORA", DisplayName: "Pandora", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "SIRIUSXM", DisplayName: "SiriusXM", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "SIRIUS XM", DisplayName: "SiriusXM", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "SOUNDCLOUD", DisplayName: "SoundCloud", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "CURIOSITYSTREAM", DisplayName: "CuriosityStream", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "SHUDDER", DisplayName: "Shudder", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "BRITBOX", DisplayName: "BritBox", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "MUBI", DisplayName: "MUBI", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "PLEX", DisplayName: "Plex", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "VIMEO", DisplayName: "Vimeo", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "DAZN", DisplayName: "DAZN", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "ESPN+", DisplayName: "ESPN+", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "NBA LEAGUE PASS", DisplayName: "NBA League Pass", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "MLB.TV", DisplayName: "MLB.TV", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "PATREON", DisplayName: "Patreon", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "ONLYFANS", DisplayName: "OnlyFans", Category: model.CategoryEntertainment, IsSubscription: true},
	{Match: "CINEPLEX", DisplayName: "Cineplex", Category: model.CategoryEntertainment},
	{Match: "AMC THEATRES", DisplayName: "AMC Theatres", Category: model.CategoryEntertainment},
	{Match: "TICKETMASTER", DisplayName: "Ticketmaster", Category: model.CategoryEntertainment},

	// Gaming.
	{Match: "XBOX GAME PASS", DisplayName: "Xbox Game Pass", Category: model.CategoryGaming, IsSubscription: true},
	{Match: "MICROSOFT*XBOX", DisplayName: "Xbox", Category: model.CategoryGaming, IsSubscription: true},
	{Match: "PLAYSTATION NETWORK", DisplayName: "PlayStation", Category: model.CategoryGaming, IsSubscription: true},
	{Match: "PLAYSTATIONNETWORK", DisplayName: "PlayStation", Category: model.CategoryGaming, IsSubscription: true},
	{Match: "NINTENDO", DisplayName: "Nintendo", Category: model.CategoryGaming, IsSubscription: true},
	{Match: "STEAMGAMES", DisplayName: "Steam", Category: model.CategoryGaming},
	{Match: "STEAM PURCHASE", DisplayName: "Steam", Category: model.CategoryGaming},
	{Match: "EA PLAY", DisplayName: "EA Play", Category: model.CategoryGaming, IsSubscription: true},
	{Match: "UBISOFT", DisplayName: "Ubisoft", Category: model.CategoryGaming},
	{Match: "BLIZZARD", DisplayName: "Blizzard", Category: model.CategoryGaming},
	{Match: "EPIC GAMES", DisplayName: "Epic Games", Category: model.CategoryGaming},
	{Match: "ROBLOX", DisplayName: "Roblox", Category: model.CategoryGaming},
	{Match: "DISCORD", DisplayName: "Discord Nitro", Category: model.CategoryGaming, IsSubscription: true},
	{Match: "HUMBLE BUNDLE", DisplayName: "Humble Bundle", Category: model.CategoryGaming, IsSubscription: true},
	{Match: "GOG.COM", DisplayName: "GOG", Category: model.CategoryGaming},

	// News and reading.
	{Match: "NYTIMES", DisplayName: "The New York Times", Category: model.CategoryNews, IsSubscription: true},
	{Match: "NEW YORK TIMES", DisplayName: "The New York Times", Category: model.CategoryNews, IsSubscription: true},
	{Match: "WSJ", DisplayName: "The Wall Street Journal", Category: model.CategoryNews, IsSubscription: true},
	{Match: "WASHINGTON POST", DisplayName: "The Washington Post", Category: model.CategoryNews, IsSubscription: true},
	{Match: "THE ECONOMIST", DisplayName: "The Economist", Category: model.CategoryNews, IsSubscription: true},
	{Match: "THE ATHLETIC", DisplayName: "The Athletic", Category: model.CategoryNews, IsSubscription: true},
	{Match: "GLOBE AND MAIL", DisplayName: "The Globe and Mail", Category: model.CategoryNews, IsSubscription: true},
	{Match: "TORONTO STAR", DisplayName: "Toronto Star", Category: model.CategoryNews, IsSubscription: true},
	{Match: "FINANCIAL TIMES", DisplayName: "Financial Times", Category: model.CategoryNews, IsSubscription: true},
	{Match: "GUARDIAN", DisplayName: "The Guardian", Category: model.CategoryNews, IsSubscription: true},
	{Match: "BLOOMBERG", DisplayName: "Bloomberg", Category: model.CategoryNews, IsSubscription: true},
	{Match: "MEDIUM.COM", DisplayName: "Medium", Category: model.CategoryNews, IsSubscription: true},
	{Match: "MEDIUM MONTHLY", DisplayName: "Medium", Category: model.CategoryNews, IsSubscription: true},
	{Match: "SUBSTACK", DisplayName: "Substack", Category: model.CategoryNews, IsSubscription: true},
	{Match: "APPLE NEWS", DisplayName: "Apple News+", Category: model.CategoryNews, IsSubscription: true},
	{Match: "SCRIBD", DisplayName: "Scribd", Category: model.CategoryNews, IsSubscription: true},
	{Match: "KINDLE UNLTD", DisplayName: "Kindle Unlimited", Category: model.CategoryNews, IsSubscription: true},
	{Match: "KINDLE UNLIMITED", DisplayName: "Kindle Unlimited", Category: model.CategoryNews, IsSubscription: true},
	{Match: "BLINKIST", DisplayName: "Blinkist", Category: model.CategoryNews, IsSubscription: true},

	// Software, productivity, cloud.
	{Match: "ADOBE", DisplayName: "Adobe", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "MICROSOFT 365", DisplayName: "Microsoft 365", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "MSFT * M365", DisplayName: "Microsoft 365", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "GOOGLE ONE", DisplayName: "Google One", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "GOOGLE STORAGE", DisplayName: "Google One", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "GOOGLE WORKSPACE", DisplayName: "Google Workspace", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "GSUITE", DisplayName: "Google Workspace", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "DROPBOX", DisplayName: "Dropbox", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "ICLOUD", DisplayName: "iCloud+", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "NOTION", DisplayName: "Notion", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "SLACK", DisplayName: "Slack", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "ZOOM.US", DisplayName: "Zoom", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "ZOOM VIDEO", DisplayName: "Zoom", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "CANVA", DisplayName: "Canva", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "FIGMA", DisplayName: "Figma", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "GITHUB", DisplayName: "GitHub", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "GITLAB", DisplayName: "GitLab", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "ATLASSIAN", DisplayName: "Atlassian", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "JETBRAINS", DisplayName: "JetBrains", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "1PASSWORD", DisplayName: "1Password", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "LASTPASS", DisplayName: "LastPass", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "DASHLANE", DisplayName: "Dashlane", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "NORDVPN", DisplayName: "NordVPN", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "EXPRESSVPN", DisplayName: "ExpressVPN", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "SURFSHARK", DisplayName: "Surfshark", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "PROTON", DisplayName: "Proton", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "EVERNOTE", DisplayName: "Evernote", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "TODOIST", DisplayName: "Todoist", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "TRELLO", DisplayName: "Trello", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "ASANA", DisplayName: "Asana", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "MONDAY.COM", DisplayName: "Monday.com", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "AIRTABLE", DisplayName: "Airtable", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "MAILCHIMP", DisplayName: "Mailchimp", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "SQUARESPACE", DisplayName: "Squarespace", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "WIX.COM", DisplayName: "Wix", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "WORDPRESS", DisplayName: "WordPress.com", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "GODADDY", DisplayName: "GoDaddy", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "NAMECHEAP", DisplayName: "Namecheap", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "AMAZON WEB SERVICES", DisplayName: "Amazon Web Services", Category: model.CategoryProductivity},
	{Match: "AWS.AMAZON", DisplayName: "Amazon Web Services", Category: model.CategoryProductivity},
	{Match: "DIGITALOCEAN", DisplayName: "DigitalOcean", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "HEROKU", DisplayName: "Heroku", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "LINODE", DisplayName: "Linode", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "VERCEL", DisplayName: "Vercel", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "NETLIFY", DisplayName: "Netlify", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "OPENAI", DisplayName: "OpenAI", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "CHATGPT", DisplayName: "ChatGPT", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "CLAUDE.AI", DisplayName: "Claude", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "ANTHROPIC", DisplayName: "Claude", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "MIDJOURNEY", DisplayName: "Midjourney", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "GRAMMARLY", DisplayName: "Grammarly", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "BACKBLAZE", DisplayName: "Backblaze", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "SETAPP", DisplayName: "Setapp", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "LINKEDIN", DisplayName: "LinkedIn Premium", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "ZAPIER", DisplayName: "Zapier", Category: model.CategoryProductivity, IsSubscription: true},
	{Match: "CLOUDFLARE", DisplayName: "Cloudflare", Category: model.CategoryProductivity, IsSubscription: true},

	// Health and fitness.
	{Match: "PLANET FITNESS", DisplayName: "Planet Fitness", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "LA FITNESS", DisplayName: "LA Fitness", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "GOODLIFE", DisplayName: "GoodLife Fitness", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "ANYTIME FITNESS", DisplayName: "Anytime Fitness", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "EQUINOX", DisplayName: "Equinox", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "PELOTON", DisplayName: "Peloton", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "STRAVA", DisplayName: "Strava", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "MYFITNESSPAL", DisplayName: "MyFitnessPal", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "CALM.COM", DisplayName: "Calm", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "HEADSPACE", DisplayName: "Headspace", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "FITBIT", DisplayName: "Fitbit Premium", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "WHOOP", DisplayName: "WHOOP", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "NOOM", DisplayName: "Noom", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "CLASSPASS", DisplayName: "ClassPass", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "ORANGETHEORY", DisplayName: "Orangetheory", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "24 HOUR FITNESS", DisplayName: "24 Hour Fitness", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "YMCA", DisplayName: "YMCA", Category: model.CategoryHealth, IsSubscription: true},
	{Match: "CROSSFIT", DisplayName: "CrossFit", Category: model.CategoryHealth, IsSubscription: true},

	// Education.
	{Match: "COURSERA", DisplayName: "Coursera", Category: model.CategoryEducation, IsSubscription: true},
	{Match: "UDEMY", DisplayName: "Udemy", Category: model.CategoryEducation},
	{Match: "SKILLSHARE", DisplayName: "Skillshare", Category: model.CategoryEducation, IsSubscription: true},
	{Match: "MASTERCLASS", DisplayName: "MasterClass", Category: model.CategoryEducation, IsSubscription: true},
	{Match: "DUOLINGO", DisplayName: "Duolingo", Category: model.CategoryEducation, IsSubscription: true},
	{Match: "BABBEL", DisplayName: "Babbel", Category: model.CategoryEducation, IsSubscription: true},
	{Match: "ROSETTA STONE", DisplayName: "Rosetta Stone", Category: model.CategoryEducation, IsSubscription: true},
	{Match: "CHEGG", DisplayName: "Chegg", Category: model.CategoryEducation, IsSubscription: true},
	{Match: "BRILLIANT.ORG", DisplayName: "Brilliant", Category: model.CategoryEducation, IsSubscription: true},
	{Match: "CODECADEMY", DisplayName: "Codecademy", Category: model.CategoryEducation, IsSubscription: true},
	{Match: "PLURALSIGHT", DisplayName: "Pluralsight", Category: model.CategoryEducation, IsSubscription: true},

	// Utilities and telecom.
	{Match: "AT&T", DisplayName: "AT&T", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "VERIZON", DisplayName: "Verizon", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "T-MOBILE", DisplayName: "T-Mobile", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "ROGERS", DisplayName: "Rogers", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "BELL CANADA", DisplayName: "Bell Canada", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "BELL MOBILITY", DisplayName: "Bell Mobility", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "TELUS", DisplayName: "Telus", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "FIDO", DisplayName: "Fido", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "KOODO", DisplayName: "Koodo", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "FREEDOM MOBILE", DisplayName: "Freedom Mobile", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "XFINITY", DisplayName: "Xfinity", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "COMCAST", DisplayName: "Comcast", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "SPECTRUM", DisplayName: "Spectrum", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "COX COMM", DisplayName: "Cox", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "SHAW CABLE", DisplayName: "Shaw", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "HYDRO ONE", DisplayName: "Hydro One", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "HYDRO QUEBEC", DisplayName: "Hydro-Quebec", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "BC HYDRO", DisplayName: "BC Hydro", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "TORONTO HYDRO", DisplayName: "Toronto Hydro", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "ENBRIDGE", DisplayName: "Enbridge", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "FORTIS", DisplayName: "Fortis", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "CON EDISON", DisplayName: "Con Edison", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "PG&E", DisplayName: "PG&E", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "DUKE ENERGY", DisplayName: "Duke Energy", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "NATIONAL GRID", DisplayName: "National Grid", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "RELIANCE HOME", DisplayName: "Reliance Home Comfort", Category: model.CategoryUtilities, IsSubscription: true},
	{Match: "ADT SECURITY", DisplayName: "ADT", Category: model.CategoryUtilities, IsSubscription: true},

	// Insurance.
	{Match: "GEICO", DisplayName: "GEICO", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "PROGRESSIVE INS", DisplayName: "Progressive", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "STATE FARM", DisplayName: "State Farm", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "ALLSTATE", DisplayName: "Allstate", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "MANULIFE", DisplayName: "Manulife", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "SUN LIFE", DisplayName: "Sun Life", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "INTACT INS", DisplayName: "Intact Insurance", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "DESJARDINS INS", DisplayName: "Desjardins Insurance", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "AVIVA", DisplayName: "Aviva", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "WAWANESA", DisplayName: "Wawanesa", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "TD INSURANCE", DisplayName: "TD Insurance", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "BELAIRDIRECT", DisplayName: "Belairdirect", Category: model.CategoryInsurance, IsSubscription: true},
	{Match: "LEMONADE INS", DisplayName: "Lemonade", Category: model.CategoryInsurance, IsSubscription: true},

	// Meal kits and delivery memberships.
	{Match: "HELLOFRESH", DisplayName: "HelloFresh", Category: model.CategoryFood, IsSubscription: true},
	{Match: "BLUE APRON", DisplayName: "Blue Apron", Category: model.CategoryFood, IsSubscription: true},
	{Match: "CHEFS PLATE", DisplayName: "Chefs Plate", Category: model.CategoryFood, IsSubscription: true},
	{Match: "GOODFOOD", DisplayName: "Goodfood", Category: model.CategoryFood, IsSubscription: true},
	{Match: "FACTOR75", DisplayName: "Factor", Category: model.CategoryFood, IsSubscription: true},
	{Match: "DASHPASS", DisplayName: "DashPass", Category: model.CategoryFood, IsSubscription: true},
	{Match: "UBER ONE", DisplayName: "Uber One", Category: model.CategoryFood, IsSubscription: true},
	{Match: "INSTACART+", DisplayName: "Instacart+", Category: model.CategoryFood, IsSubscription: true},
	{Match: "WALMART PLUS", DisplayName: "Walmart+", Category: model.CategoryShopping, IsSubscription: true},
	{Match: "COSTCO ANNUAL", DisplayName: "Costco Membership", Category: model.CategoryShopping, IsSubscription: true},

	// Everyday merchants. Not subscriptions, kept for clean display names.
	{Match: "DOORDASH", DisplayName: "DoorDash", Category: model.CategoryFood},
	{Match: "UBER EATS", DisplayName: "Uber Eats", Category: model.CategoryFood},
	{Match: "UBEREATS", DisplayName: "Uber Eats", Category: model.CategoryFood},
	{Match: "INSTACART", DisplayName: "Instacart", Category: model.CategoryFood},
	{Match: "SKIPTHEDISHES", DisplayName: "SkipTheDishes", Category: model.CategoryFood},
	{Match: "GRUBHUB", DisplayName: "Grubhub", Category: model.CategoryFood},
	{Match: "STARBUCKS", DisplayName: "Starbucks", Category: model.CategoryFood},
	{Match: "TIM HORTONS", DisplayName: "Tim Hortons", Category: model.CategoryFood},
	{Match: "MCDONALD", DisplayName: "McDonald's", Category: model.CategoryFood},
	{Match: "CHIPOTLE", DisplayName: "Chipotle", Category: model.CategoryFood},
	{Match: "SUBWAY", DisplayName: "Subway", Category: model.CategoryFood},
	{Match: "WHOLE FOODS", DisplayName: "Whole Foods", Category: model.CategoryFood},
	{Match: "TRADER JOE", DisplayName: "Trader Joe's", Category: model.CategoryFood},
	{Match: "LOBLAWS", DisplayName: "Loblaws", Category: model.CategoryFood},
	{Match: "SOBEYS", DisplayName: "Sobeys", Category: model.CategoryFood},
	{Match: "METRO ", DisplayName: "Metro", Category: model.CategoryFood},
	{Match: "KROGER", DisplayName: "Kroger", Category: model.CategoryFood},
	{Match: "SAFEWAY", DisplayName: "Safeway", Category: model.CategoryFood},
	{Match: "SHOPPERS DRUG MART", DisplayName: "Shoppers Drug Mart", Category: model.CategoryShopping},
	{Match: "7-ELEVEN", DisplayName: "7-Eleven", Category: model.CategoryShopping},
	{Match: "AMZN MKTP", DisplayName: "Amazon", Category: model.CategoryShopping},
	{Match: "AMAZON.COM", DisplayName: "Amazon", Category: model.CategoryShopping},
	{Match: "AMAZON.CA", DisplayName: "Amazon", Category: model.CategoryShopping},
	{Match: "WAL-MART", DisplayName: "Walmart", Category: model.CategoryShopping},
	{Match: "WALMART", DisplayName: "Walmart", Category: model.CategoryShopping},
	{Match: "COSTCO WHSE", DisplayName: "Costco", Category: model.CategoryShopping},
	{Match: "TARGET", DisplayName: "Target", Category: model.CategoryShopping},
	{Match: "HOME DEPOT", DisplayName: "Home Depot", Category: model.CategoryShopping},
	{Match: "LOWE'S", DisplayName: "Lowe's", Category: model.CategoryShopping},
	{Match: "IKEA", DisplayName: "IKEA", Category: model.CategoryShopping},
	{Match: "BEST BUY", DisplayName: "Best Buy", Category: model.CategoryShopping},
	{Match: "APPLE STORE", DisplayName: "Apple Store", Category: model.CategoryShopping},
	{Match: "NIKE", DisplayName: "Nike", Category: model.CategoryShopping},
	{Match: "LULULEMON", DisplayName: "Lululemon", Category: model.CategoryShopping},
	{Match: "SEPHORA", DisplayName: "Sephora", Category: model.CategoryShopping},
	{Match: "UNIQLO", DisplayName: "Uniqlo", Category: model.CategoryShopping},
	{Match: "CANADIAN TIRE", DisplayName: "Canadian Tire", Category: model.CategoryShopping},
	{Match: "DOLLARAMA", DisplayName: "Dollarama", Category: model.CategoryShopping},
	{Match: "WAYFAIR", DisplayName: "Wayfair", Category: model.CategoryShopping},
	{Match: "ETSY", DisplayName: "Etsy", Category: model.CategoryShopping},
	{Match: "EBAY", DisplayName: "eBay", Category: model.CategoryShopping},
	{Match: "ALIEXPRESS", DisplayName: "AliExpress", Category: model.CategoryShopping},
	{Match: "TEMU", DisplayName: "Temu", Category: model.CategoryShopping},
	{Match: "SHEIN", DisplayName: "Shein", Category: model.CategoryShopping},
	{Match: "SHELL ", DisplayName: "Shell", Category: model.CategoryTravel},
	{Match: "ESSO", DisplayName: "Esso", Category: model.CategoryTravel},
	{Match: "PETRO-CANADA", DisplayName: "Petro-Canada", Category: model.CategoryTravel},
	{Match: "CHEVRON", DisplayName: "Chevron", Category: model.CategoryTravel},
	{Match: "EXXON", DisplayName: "Exxon", Category: model.CategoryTravel},
	{Match: "UBER TRIP", DisplayName: "Uber", Category: model.CategoryTravel},
	{Match: "LYFT", DisplayName: "Lyft", Category: model.CategoryTravel},
	{Match: "AIRBNB", DisplayName: "Airbnb", Category: model.CategoryTravel},
	{Match: "EXPEDIA", DisplayName: "Expedia", Category: model.CategoryTravel},
	{Match: "BOOKING.COM", DisplayName: "Booking.com", Category: model.CategoryTravel},
	{Match: "AIR CANADA", DisplayName: "Air Canada", Category: model.CategoryTravel},
	{Match: "WESTJET", DisplayName: "WestJet", Category: model.CategoryTravel},
	{Match: "DELTA AIR", DisplayName: "Delta Air Lines", Category: model.CategoryTravel},
	{Match: "UNITED AIR", DisplayName: "United Airlines", Category: model.CategoryTravel},
	{Match: "AMERICAN AIR", DisplayName: "American Airlines", Category: model.CategoryTravel},
	{Match: "MARRIOTT", DisplayName: "Marriott", Category: model.CategoryTravel},
	{Match: "HILTON", DisplayName: "Hilton", Category: model.CategoryTravel},
	{Match: "PRESTO", DisplayName: "PRESTO", Category: model.CategoryTravel},

	// Bank fee descriptors.
	{Match: "MONTHLY ACCOUNT FEE", DisplayName: "Bank Account Fee", Category: model.CategoryFinance},
	{Match: "MONTHLY PLAN FEE", DisplayName: "Bank Account Fee", Category: model.CategoryFinance},
	{Match: "OVERDRAFT FEE", DisplayName: "Overdraft Fee", Category: model.CategoryFinance},
	{Match: "NSF FEE", DisplayName: "NSF Fee", Category: model.CategoryFinance},
	{Match: "SAFETY DEPOSIT BOX", DisplayName: "Safety Deposit Box", Category: model.CategoryFinance},
}
