package testutil

import "flag"

// FlagOnline enables tests that download from the real release server.
var FlagOnline = flag.Bool("testutil.online", false, "Enable tests that use the network")
