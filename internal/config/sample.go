package config

// GenerateSampleConfig returns a commented config.toml with every option
func GenerateSampleConfig() string {
	return `# shiftbook configuration
# Place this file at ~/.config/shiftbook/config.toml (Linux),
# ~/Library/Application Support/shiftbook/config.toml (macOS)
# or %AppData%\shiftbook\config.toml (Windows).

# IANA time zone for scraper instants and "today" (e.g. "Asia/Tokyo")
timezone = "Local"

# TUI theme (a bubbletint ID such as "dracula"); empty uses the default
theme = ""

# Where hand-entered shifts live: "local" (JSON Lines) or "sqlite"
backend = "local"

# Data directory for ledger files and local shifts (default: config directory)
# data_dir = "~/shiftbook"

# SQLite database for the sqlite backend (default: <data_dir>/shiftbook.db)
# database_path = "~/shiftbook/shiftbook.db"

# Scraper output read by "shiftbook import" (default: <data_dir>/jobs.json)
# feed_path = "~/scraper/jobs.json"

# Annual earnings ceiling in yen and the warning fraction
annual_ceiling = 1030000
warning_threshold = 0.9

# Whether "shiftbook restore --all" also drops salary overrides
reset_clears_overrides = false

# Tiered retail scale in yen per hour; band edges are minutes since midnight
[rates]
morning = 1330
day = 1240
night = 1555
weekend_surcharge = 50
morning_end = 540
night_start = 1320

# Weekend retail shifts generated for every month
[recurring]
enabled = true
start_time = "09:00"
end_time = "13:00"
# Hourly pay of the generated shifts; 0 uses the tiered [rates] scale
saturday_rate = 1240
sunday_rate = 1290
`
}
