package constants

// DayLabelStyle selects how weekday rows are labelled in the grid
type DayLabelStyle string

const (
	AppName            = "contribgrid"
	DefaultKeyringUser = "github-api-token"
	DefaultConfigDir   = "~/.config/contribgrid"
	Version            = "v0.3.0"

	// GraphQLEndpoint is the GitHub GraphQL API endpoint
	GraphQLEndpoint = "https://api.github.com/graphql"

	// DateFormat is the date format used by the contribution calendar (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Log constants
	LogDirName     = "logs"
	LogFileName    = "contribgrid.log"
	LogMaxSizeMB   = 10
	LogMaxBackups  = 3
	LogMaxAgeDays  = 28

	// Terminal prompts
	SpinnerMessage = "Fetching your contributions..."
	PromptTitle    = "Enter your GitHub username"

	// Level colors, matching the contribution heatmap on github.com
	ColorNone           = "#161b22"
	ColorFirstQuartile  = "#0e4429"
	ColorSecondQuartile = "#006d32"
	ColorThirdQuartile  = "#26a641"
	ColorFourthQuartile = "#39d353"

	// DefaultUnknownColor paints placeholder slots and unrecognized levels
	DefaultUnknownColor = "#000000"
	// DefaultBackgroundColor paints borders and label cells
	DefaultBackgroundColor = "#000000"

	// Day label styles
	DayLabelsNone  DayLabelStyle = "none"
	DayLabelsShort DayLabelStyle = "short"
	DayLabelsLong  DayLabelStyle = "long"
)
