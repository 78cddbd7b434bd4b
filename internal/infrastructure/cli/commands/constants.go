package commands

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
)

// Flag names shared by session commands.
const (
	flagBackend  = "backend"
	flagNoBanner = "no-banner"
)
