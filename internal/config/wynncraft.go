package config

// WynncraftConfig controls how we talk to the Wynncraft API.
type WynncraftConfig struct {
	BaseURL       string
	Timeout       Duration // per attempt; 0 disables
	RateInterval  Duration // minimum spacing between upstream calls; 0 disables the limiter
	RetryAttempts int
	RetryBackoff  Duration // initial backoff; grows exponentially
}

func loadWynncraft() WynncraftConfig {
	return WynncraftConfig{
		BaseURL:       envOrDefault(envWynnBaseURL, defaultWynnBaseURL),
		Timeout:       switchableDurationEnvOrDefault(envWynnTimeout, defaultWynnTimeout),
		RateInterval:  switchableDurationEnvOrDefault(envWynnRateInterval, defaultWynnRateInterval),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
	}
}
