package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/linecast/debugs"
	"github.com/reusee/linecast/feeds"
	"github.com/reusee/linecast/nets"
)

type Module struct {
	dscope.Module
	Debugs debugs.Module
	Feeds  feeds.Module
	Nets   nets.Module
}
