package command

const (
	DefaultConfigFileName  = "config.hcl"
	DefaultCatalogFileName = "catalog.json"
	DefaultDataDir         = "./objectchain-data"
	DefaultLogLevel        = "INFO"
)

const (
	JSONOutputFlag = "json"
)
