// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/solnote/chain"
	"github.com/bitmark-inc/solnote/fault"
	"github.com/bitmark-inc/solnote/noterecord"
	"github.com/bitmark-inc/solnote/util"
)

// environment variable names
const (
	EnvPrivateKey = "PRIVATE_KEY"
	EnvProgramId  = "PROGRAM_ID"
	EnvCluster    = "CLUSTER"
	EnvLayout     = "NOTE_LAYOUT"
	EnvRPCURL     = "RPC_URL"
	EnvWSURL      = "WS_URL"
)

// basic defaults (directories and files are relative to the "DataDirectory")
const (
	DefaultEnvironmentFile = ".env"

	defaultDataDirectory = "."
	defaultLogDirectory  = "log"
	defaultLogFile       = "solnote.log"
	defaultLogCount      = 10          //  number of log files retained
	defaultLogSize       = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// EndpointType - explicit cluster URLs, both blank to use the
// cluster's public endpoints
type EndpointType struct {
	RPC string `gluamapper:"rpc" json:"rpc"`
	WS  string `gluamapper:"ws" json:"ws"`
}

// Configuration - settings for one run
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Cluster       string               `gluamapper:"cluster" json:"cluster"`
	Layout        string               `gluamapper:"layout" json:"layout"`
	PrivateKey    string               `gluamapper:"private_key" json:"-"`
	ProgramId     string               `gluamapper:"program_id" json:"program_id"`
	Endpoint      EndpointType         `gluamapper:"endpoint" json:"endpoint"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	layout noterecord.Layout
}

// Load - read decode and verify the configuration
//
// either file name may be blank; a named environment file that does
// not exist is ignored.  Key material is only copied here, it is
// decoded when a request is built.
func Load(configurationFileName string, environmentFileName string) (*Configuration, error) {

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		baseDirectory = filepath.Dir(configurationFileName)

		if err := ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	dotenv := map[string]string{}
	if "" != environmentFileName && util.EnsureFileExists(environmentFileName) {
		dotenv, err = godotenv.Read(environmentFileName)
		if nil != err {
			return nil, fault.Wrap(fault.ErrEnvironmentFile, err)
		}
	}

	// the real environment wins over the .env file which wins over
	// the configuration file
	lookup := func(key string) (string, bool) {
		if s := strings.TrimSpace(os.Getenv(key)); "" != s {
			return s, true
		}
		if s := strings.TrimSpace(dotenv[key]); "" != s {
			return s, true
		}
		return "", false
	}

	overrides := []struct {
		key   string
		field *string
	}{
		{EnvPrivateKey, &options.PrivateKey},
		{EnvProgramId, &options.ProgramId},
		{EnvCluster, &options.Cluster},
		{EnvLayout, &options.Layout},
		{EnvRPCURL, &options.Endpoint.RPC},
		{EnvWSURL, &options.Endpoint.WS},
	}
	for _, o := range overrides {
		if s, ok := lookup(o.key); ok {
			*o.field = s
		}
	}

	options.Cluster, err = chain.Canonical(options.Cluster)
	if nil != err {
		return nil, err
	}

	options.layout, err = noterecord.LayoutFromString(strings.ToLower(strings.TrimSpace(options.Layout)))
	if nil != err {
		return nil, err
	}
	options.Layout = options.layout.String()

	if ("" == options.Endpoint.RPC) != ("" == options.Endpoint.WS) {
		return nil, fault.ErrInvalidEndpoint
	}

	// "." is the directory holding the configuration file
	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = baseDirectory
	}
	options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)

	if "" == options.Logging.File || "." != filepath.Dir(options.Logging.File) {
		return nil, fault.Wrap(fault.ErrConfigurationFile, fault.InvalidError("logging file must be a plain name"))
	}

	return options, nil
}

// NoteLayout - the validated payload layout
func (c *Configuration) NoteLayout() noterecord.Layout {
	return c.layout
}

// SetCluster - replace the cluster, e.g. from a command line flag
func (c *Configuration) SetCluster(name string) error {
	cluster, err := chain.Canonical(name)
	if nil != err {
		return err
	}
	c.Cluster = cluster
	return nil
}

// SetLayout - replace the layout, e.g. from a command line flag
func (c *Configuration) SetLayout(name string) error {
	layout, err := noterecord.LayoutFromString(strings.ToLower(strings.TrimSpace(name)))
	if nil != err {
		return err
	}
	c.layout = layout
	c.Layout = layout.String()
	return nil
}

// Endpoints - the RPC and websocket URLs to connect to
func (c *Configuration) Endpoints() (string, string, error) {
	if "" != c.Endpoint.RPC {
		return c.Endpoint.RPC, c.Endpoint.WS, nil
	}
	return chain.Endpoints(c.Cluster)
}

// MakeLogDirectory - create the log directory if it does not exist
func (c *Configuration) MakeLogDirectory() error {
	return os.MkdirAll(c.Logging.Directory, 0700)
}
