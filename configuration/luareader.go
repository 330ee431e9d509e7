// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/solnote/chain"
	"github.com/bitmark-inc/solnote/fault"
)

// ParseConfigurationFile - execute a Lua file and map the table it
// returns onto the configuration structure
//
// globals visible to the script:
//   arg[0]    the configuration file name
//   clusters  table of the valid cluster names
func ParseConfigurationFile(fileName string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	clusters := &lua.LTable{}
	for _, name := range []string{chain.Devnet, chain.Testnet, chain.MainnetBeta, chain.Localnet} {
		clusters.RawSetString(name, lua.LString(name))
	}
	L.SetGlobal("clusters", clusters)

	if err := L.DoFile(fileName); nil != err {
		return fault.Wrap(fault.ErrConfigurationFile, err)
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotTable
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: "gluamapper",
		},
	}
	if err := mapper.Map(table, config); nil != err {
		return fault.Wrap(fault.ErrConfigurationFile, err)
	}
	return nil
}
