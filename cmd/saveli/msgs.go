package saveli

// Short messages (one-liners)
const (
	MsgRootShort = "Moves game saves and creates links in their place"
	MsgRootLong = `saveli relocates game save data into a single storage location and
leaves links behind, so games keep reading and writing through their
usual paths while the data itself lives somewhere you can back up.`

	MsgSetStorageShort = "Set where game saves and meta data should be stored"
	MsgLinkShort       = "Move game saves to the storage path and link them"
	MsgLinkLong = `Move game saves from their original locations to the storage path
and create links to their new location.`
	MsgRestoreShort = "Create links to game saves already in the storage path"
	MsgRestoreLong  = `Creates links to game saves which have been moved to the storage
path, without moving any data. Useful after a reinstall.`
	MsgUnlinkShort = "The inverse of link"
	MsgSearchShort = "Search the catalog for a keyword"
	MsgAddShort    = "Add a custom entry to the catalog"
	MsgAddLong = `Add a custom entry to the catalog. The path is an environment
variable template such as '$XDG_DATA_HOME/MyGame/saves'. A custom
entry overrides a bundled entry with the same id.`
	MsgIgnoreShort = "Skip an entry in link, restore and unlink"
	MsgHeedShort   = "Stop skipping an entry"
	MsgDocsShort   = "Show the usage guide"

	// Flags
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without touching the filesystem"

	// Status messages
	MsgStoragePathSet = "Your storage path has been set to %s"
	MsgDryRunNotice   = "DRY RUN MODE - No changes were made"
	MsgBatchFailures  = "%d entries failed, see above"
	MsgSearchMatch    = "Found %s (%s)"
	MsgSearchNoMatch  = "Couldn't find any matching games"
	MsgAdded          = "Added %s (%s) to the catalog"
	MsgIgnored        = "%s will be skipped from now on"
	MsgHeeded         = "%s will no longer be skipped"
)
