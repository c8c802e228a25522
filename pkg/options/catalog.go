package options

func networkDefaults(main, test, regtest any) map[Network]any {
	return map[Network]any{
		NetworkMain:    main,
		NetworkTest:    test,
		NetworkRegtest: regtest,
	}
}

// catalog mirrors the option table of bitcoind's help output.
var catalog = map[string]Descriptor{
	// General
	"alertnotify":                 {Type: TypeString, Description: "Execute command when an alert is raised"},
	"assumevalid":                 {Type: TypeString, Description: "Assume that this block and its ancestors are valid"},
	"blockfilterindex":            {Type: TypeString, Default: "0", Description: "Maintain an index of compact filters by block"},
	"blocknotify":                 {Type: TypeString, Description: "Execute command when the best block changes"},
	"blockreconstructionextratxn": {Type: TypeNumber, Default: 100.0, Description: "Extra transactions to keep in memory for compact block reconstructions"},
	"blocksdir":                   {Type: TypeString, Description: "Specify directory to hold blocks subdirectory for *.dat files"},
	"blocksonly":                  {Type: TypeBoolean, Default: false, Description: "Reject transactions from network peers"},
	"coinstatsindex":              {Type: TypeBoolean, Default: false, Description: "Maintain coinstats index used by the gettxoutsetinfo RPC"},
	"conf":                        {Type: TypeString, OnlyAllowedInTop: true, Default: "bitcoin.conf", Description: "Specify path to read-only configuration file"},
	"daemon":                      {Type: TypeBoolean, Default: false, Description: "Run in the background as a daemon and accept commands"},
	"datadir":                     {Type: TypeString, OnlyAllowedInTop: true, Description: "Specify data directory"},
	"dbbatchsize":                 {Type: TypeNumber, Default: 16777216.0, Description: "Maximum database write batch size in bytes"},
	"dbcache":                     {Type: TypeNumber, Default: 450.0, Description: "Maximum database cache size in MiB"},
	"debuglogfile":                {Type: TypeString, Default: "debug.log", Description: "Specify location of debug log file"},
	"includeconf":                 {Type: TypeStringArray, Description: "Specify additional configuration file, relative to the datadir path"},
	"loadblock":                   {Type: TypeStringArray, Description: "Imports blocks from external file on startup"},
	"maxmempool":                  {Type: TypeNumber, Default: 300.0, Description: "Keep the transaction memory pool below n megabytes"},
	"maxorphantx":                 {Type: TypeNumber, Default: 100.0, Description: "Keep at most n unconnectable transactions in memory"},
	"mempoolexpiry":               {Type: TypeNumber, Default: 336.0, Description: "Do not keep transactions in the mempool longer than n hours"},
	"par":                         {Type: TypeNumber, Default: 0.0, Description: "Set the number of script verification threads"},
	"persistmempool":              {Type: TypeBoolean, Default: true, Description: "Whether to save the mempool on shutdown and load on restart"},
	"pid":                         {Type: TypeString, Default: "bitcoind.pid", Description: "Specify pid file"},
	"prune":                       {Type: TypeNumber, Default: 0.0, Description: "Reduce storage requirements by enabling pruning of old blocks"},
	"reindex":                     {Type: TypeBoolean, Default: false, Description: "Rebuild chain state and block index from the blk*.dat files on disk"},
	"reindex-chainstate":          {Type: TypeBoolean, Default: false, Description: "Rebuild chain state from the currently indexed blocks"},
	"settings":                    {Type: TypeString, Default: "settings.json", Description: "Specify path to dynamic settings data file"},
	"startupnotify":               {Type: TypeString, Description: "Execute command on startup"},
	"sysperms":                    {Type: TypeBoolean, Default: false, Description: "Create new files with system default permissions"},
	"txindex":                     {Type: TypeBoolean, Default: false, Description: "Maintain a full transaction index"},

	// Connection
	"addnode":           {Type: TypeStringArray, OnlyAppliesToMain: true, Description: "Add a node to connect to and attempt to keep the connection open"},
	"asmap":             {Type: TypeString, Description: "Specify asn mapping used for bucketing of the peers"},
	"bantime":           {Type: TypeNumber, Default: 86400.0, Description: "Default duration in seconds of manually configured bans"},
	"bind":              {Type: TypeStringArray, OnlyAppliesToMain: true, Description: "Bind to given address and always listen on it"},
	"connect":           {Type: TypeStringArray, OnlyAppliesToMain: true, Description: "Connect only to the specified node"},
	"discover":          {Type: TypeBoolean, Default: true, Description: "Discover own IP addresses"},
	"dns":               {Type: TypeBoolean, Default: true, Description: "Allow DNS lookups for -addnode, -seednode and -connect"},
	"dnsseed":           {Type: TypeBoolean, Default: true, Description: "Query for peer addresses via DNS lookup"},
	"externalip":        {Type: TypeStringArray, Description: "Specify your own public address"},
	"forcednsseed":      {Type: TypeBoolean, Default: false, Description: "Always query for peer addresses via DNS lookup"},
	"listen":            {Type: TypeBoolean, Default: true, Description: "Accept connections from outside"},
	"listenonion":       {Type: TypeBoolean, Default: true, Description: "Automatically create Tor onion service"},
	"maxconnections":    {Type: TypeNumber, Default: 125.0, Description: "Maintain at most n connections to peers"},
	"maxreceivebuffer":  {Type: TypeNumber, Default: 5000.0, Description: "Maximum per-connection receive buffer, n*1000 bytes"},
	"maxsendbuffer":     {Type: TypeNumber, Default: 1000.0, Description: "Maximum per-connection send buffer, n*1000 bytes"},
	"maxtimeadjustment": {Type: TypeNumber, Default: 4200.0, Description: "Maximum allowed median peer time offset adjustment"},
	"maxuploadtarget":   {Type: TypeNumber, Default: 0.0, Description: "Tries to keep outbound traffic under the given target in MiB per 24h"},
	"onion":             {Type: TypeString, Description: "Use separate SOCKS5 proxy to reach peers via Tor onion services"},
	"onlynet":           {Type: TypeStringArray, Description: "Make outgoing connections only through the given network"},
	"peerbloomfilters":  {Type: TypeBoolean, Default: false, Description: "Support filtering of blocks and transaction with bloom filters"},
	"peerblockfilters":  {Type: TypeBoolean, Default: false, Description: "Serve compact block filters to peers per BIP 157"},
	"port":              {Type: TypeNumber, OnlyAppliesToMain: true, NetworkDefaults: networkDefaults(8333.0, 18333.0, 18444.0), Description: "Listen for connections on port"},
	"proxy":             {Type: TypeString, Description: "Connect through SOCKS5 proxy"},
	"proxyrandomize":    {Type: TypeBoolean, Default: true, Description: "Randomize credentials for every proxy connection"},
	"seednode":          {Type: TypeStringArray, Description: "Connect to a node to retrieve peer addresses, and disconnect"},
	"timeout":           {Type: TypeNumber, Default: 5000.0, Description: "Specify connection timeout in milliseconds"},
	"torcontrol":        {Type: TypeString, Default: "127.0.0.1:9051", Description: "Tor control port to use if onion listening enabled"},
	"torpassword":       {Type: TypeString, Description: "Tor control port password"},
	"upnp":              {Type: TypeBoolean, Default: false, Description: "Use UPnP to map the listening port"},
	"whitebind":         {Type: TypeStringArray, Description: "Bind to given address and whitelist peers connecting to it"},
	"whitelist":         {Type: TypeStringArray, Description: "Whitelist peers connecting from the given IP address or CIDR"},

	// Wallet
	"addresstype":         {Type: TypeString, Default: "bech32", Description: "What type of addresses to use"},
	"avoidpartialspends":  {Type: TypeBoolean, Default: false, Description: "Group outputs by address, selecting all or none"},
	"changetype":          {Type: TypeString, Description: "What type of change to use"},
	"disablewallet":       {Type: TypeBoolean, Default: false, Description: "Do not load the wallet and disable wallet RPC calls"},
	"discardfee":          {Type: TypeNumber, Default: 0.0001, Description: "The fee rate in BTC/kvB that indicates your tolerance for discarding change"},
	"fallbackfee":         {Type: TypeNumber, Default: 0.0, Description: "A fee rate in BTC/kvB used if there is insufficient data for fee estimation"},
	"keypool":             {Type: TypeNumber, Default: 1000.0, Description: "Set key pool size"},
	"mintxfee":            {Type: TypeNumber, Default: 0.00001, Description: "Fee rates in BTC/kvB smaller than this are considered zero fee"},
	"paytxfee":            {Type: TypeNumber, Default: 0.0, Description: "Fee rate in BTC/kvB to add to transactions you send"},
	"spendzeroconfchange": {Type: TypeBoolean, Default: true, Description: "Spend unconfirmed change when sending transactions"},
	"txconfirmtarget":     {Type: TypeNumber, Default: 6.0, Description: "Try to confirm within n blocks when paytxfee is not set"},
	"wallet":              {Type: TypeStringArray, OnlyAppliesToMain: true, Description: "Specify wallet path to load at startup"},
	"walletbroadcast":     {Type: TypeBoolean, Default: true, Description: "Make the wallet broadcast transactions"},
	"walletdir":           {Type: TypeString, Description: "Specify directory to hold wallets"},
	"walletnotify":        {Type: TypeString, Description: "Execute command when a wallet transaction changes"},
	"walletrbf":           {Type: TypeBoolean, Default: false, Description: "Send transactions with full-RBF opt-in enabled"},

	// ZeroMQ
	"zmqpubhashblock": {Type: TypeString, Description: "Enable publish hash block in <address>"},
	"zmqpubhashtx":    {Type: TypeString, Description: "Enable publish hash transaction in <address>"},
	"zmqpubrawblock":  {Type: TypeString, Description: "Enable publish raw block in <address>"},
	"zmqpubrawtx":     {Type: TypeString, Description: "Enable publish raw transaction in <address>"},
	"zmqpubsequence":  {Type: TypeString, Description: "Enable publish hash block and tx sequence in <address>"},

	// Debugging/Testing
	"debug":           {Type: TypeStringArray, Description: "Output debugging information for the given category"},
	"debugexclude":    {Type: TypeStringArray, Description: "Exclude debugging information for a category"},
	"logips":          {Type: TypeBoolean, Default: false, Description: "Include IP addresses in debug output"},
	"logthreadnames":  {Type: TypeBoolean, Default: false, Description: "Prepend debug output with name of the originating thread"},
	"logtimestamps":   {Type: TypeBoolean, Default: true, Description: "Prepend debug output with timestamp"},
	"maxtxfee":        {Type: TypeNumber, Default: 0.1, Description: "Maximum total fees in BTC to use in a single wallet transaction"},
	"printtoconsole":  {Type: TypeBoolean, Description: "Send trace/debug info to console"},
	"shrinkdebugfile": {Type: TypeBoolean, Description: "Shrink debug.log file on client startup"},
	"uacomment":       {Type: TypeStringArray, Description: "Append comment to the user agent string"},

	// Chain selection
	"regtest":  {Type: TypeBoolean, OnlyAllowedInTop: true, Default: false, Description: "Use the regression test chain"},
	"testnet":  {Type: TypeBoolean, OnlyAllowedInTop: true, Default: false, Description: "Use the test chain"},
	"vbparams": {Type: TypeStringArray, NotAllowedInMain: true, Description: "Use given start/end times for specified version bits deployment (regtest-only)"},

	// Node relay
	"bytespersigop":       {Type: TypeNumber, Default: 20.0, Description: "Equivalent bytes per sigop in transactions for relay and mining"},
	"datacarrier":         {Type: TypeBoolean, Default: true, Description: "Relay and mine data carrier transactions"},
	"datacarriersize":     {Type: TypeNumber, Default: 83.0, Description: "Maximum size of data in data carrier transactions we relay and mine"},
	"minrelaytxfee":       {Type: TypeNumber, Default: 0.00001, Description: "Fees in BTC/kvB smaller than this are considered zero fee for relaying"},
	"whitelistforcerelay": {Type: TypeBoolean, Default: false, Description: "Add 'forcerelay' permission to whitelisted inbound peers"},
	"whitelistrelay":      {Type: TypeBoolean, Default: true, Description: "Add 'relay' permission to whitelisted inbound peers"},

	// Block creation
	"blockmaxweight": {Type: TypeNumber, Default: 3996000.0, Description: "Set maximum BIP141 block weight"},
	"blockmintxfee":  {Type: TypeNumber, Default: 0.00001, Description: "Set lowest fee rate in BTC/kvB for transactions to be included in block creation"},

	// RPC server
	"rest":             {Type: TypeBoolean, Default: false, Description: "Accept public REST requests"},
	"rpcallowip":       {Type: TypeStringArray, Description: "Allow JSON-RPC connections from specified source"},
	"rpcauth":          {Type: TypeStringArray, Description: "Username and HMAC-SHA-256 hashed password for JSON-RPC connections"},
	"rpcbind":          {Type: TypeStringArray, OnlyAppliesToMain: true, Description: "Bind to given address to listen for JSON-RPC connections"},
	"rpccookiefile":    {Type: TypeString, Description: "Location of the auth cookie"},
	"rpcpassword":      {Type: TypeString, Description: "Password for JSON-RPC connections"},
	"rpcport":          {Type: TypeNumber, OnlyAppliesToMain: true, NetworkDefaults: networkDefaults(8332.0, 18332.0, 18443.0), Description: "Listen for JSON-RPC connections on port"},
	"rpcserialversion": {Type: TypeNumber, Default: 1.0, Description: "Sets the serialization of raw transaction or block hex returned in non-verbose mode"},
	"rpcthreads":       {Type: TypeNumber, Default: 4.0, Description: "Set the number of threads to service RPC calls"},
	"rpcuser":          {Type: TypeString, Description: "Username for JSON-RPC connections"},
	"rpcwhitelist":     {Type: TypeStringArray, Description: "Set a whitelist to filter incoming RPC calls for a specific user"},
	"rpcworkqueue":     {Type: TypeNumber, Default: 16.0, Description: "Set the depth of the work queue to service RPC calls"},
	"server":           {Type: TypeBoolean, Default: false, Description: "Accept command line and JSON-RPC commands"},
}
