package command

const (
	ConfigFlag   = "config"
	DataDirFlag  = "data-dir"
	LogLevelFlag = "log-level"
	CatalogFlag  = "catalog"
)
