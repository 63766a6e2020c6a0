package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/linecast/nets"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}
