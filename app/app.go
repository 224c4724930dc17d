package app

import (
	appbase "github.com/blessnetwork/blessnet/app/base"
	_ "github.com/blessnetwork/blessnet/app/deploy"
	_ "github.com/blessnetwork/blessnet/app/init"
	_ "github.com/blessnetwork/blessnet/app/manage"
	_ "github.com/blessnetwork/blessnet/app/options"
	_ "github.com/blessnetwork/blessnet/app/preview"
	_ "github.com/blessnetwork/blessnet/app/registry"
	_ "github.com/blessnetwork/blessnet/app/version"
)

var App = appbase.App
