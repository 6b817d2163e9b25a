package wynncraft

const (
	defaultBaseURL  = "https://api.wynncraft.com/v3"
	userAgent       = "wynn-data-service"
	maxErrorBody    = 512
	worldNamePrefix = "WC"
)
