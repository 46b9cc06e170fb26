package versioning

// Set with -ldflags "-X github.com/dogechain-lab/objectchain/versioning.Version=..."
// at build time. Version follows SemVer.
var (
	Version   = "development"
	Commit    string
	BuildTime string
)
