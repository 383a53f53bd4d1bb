package constants

const (
	AppName        = `weblib`
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.weblib/`
)
