package config

type InternalConfig struct {
	App   App
	Sync  Sync
	Cache Cache
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeout            int
	RequestBodyLimitInMegabyte int
	PresignedURLExpiryInHours  int
}

type Sync struct {
	MaxAttempts int
}

type Cache struct {
	StatisticsTTLInSeconds int
}
