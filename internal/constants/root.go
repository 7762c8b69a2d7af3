package constants

const (
	// AppName is the application name used for keyring entries and process checks
	AppName = "intuisched"

	// DefaultKeyringUser is the keyring account under which the gateway token is stored
	DefaultKeyringUser = "gateway-token"

	// DefaultStorePath is the default local gateway store location
	DefaultStorePath = "~/.config/intuisched/gateway.db"
)
