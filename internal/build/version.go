package build

var (
	// Overridden at link time with -ldflags "-X github.com/bornholm/brief/internal/build.ShortVersion=..."
	ShortVersion = "dev"
	LongVersion  = "dev"
)
