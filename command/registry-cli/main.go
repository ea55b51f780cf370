// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "registry-cli"
	app.Usage = "client for the registryd asset registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " registryd host/IP and port, `HOST:PORT`",
			EnvVar: "REGISTRY_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "register",
			Usage:     "register a new digital asset",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Usage: "*asset title `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Usage: " asset description `STRING`",
				},
				cli.StringFlag{
					Name:  "type, y",
					Usage: "*asset type `TYPE` [IMAGE|AUDIO|VIDEO|DOCUMENT|CODE]",
				},
				cli.StringFlag{
					Name:  "creator, r",
					Usage: "*creator `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "hash, a",
					Usage: "+content hash `STRING`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Usage: "+compute the content hash of `FILE`",
				},
				cli.StringFlag{
					Name:  "format, o",
					Usage: "*file format `STRING`",
				},
				cli.Int64Flag{
					Name:  "size, s",
					Usage: " file size in `BYTES` (default: size of --file)",
				},
				cli.StringFlag{
					Name:  "dimensions",
					Usage: " dimensions `WxH`",
				},
				cli.Float64Flag{
					Name:  "duration",
					Usage: " duration in `SECONDS`",
				},
				cli.StringSliceFlag{
					Name:  "tag",
					Usage: " additional `TAG`, may be repeated",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "get",
			Usage:     "fetch an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*asset `ID`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "holdings",
			Usage:     "list assets currently held by a creator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "creator, r",
					Usage: "*creator `ACCOUNT`",
				},
			},
			Action: runHoldings,
		},
		{
			Name:      "transfer",
			Usage:     "transfer or license an asset to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*asset `ID`",
				},
				cli.StringFlag{
					Name:  "caller, a",
					Usage: "*calling `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "type, y",
					Value: "FULL",
					Usage: " transfer `TYPE` [FULL|LICENSE]",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "update",
			Usage:     "update some metadata fields of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*asset `ID`",
				},
				cli.StringFlag{
					Name:  "caller, a",
					Usage: "*calling `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "format, o",
					Usage: " file format `STRING`",
				},
				cli.Int64Flag{
					Name:  "size, s",
					Usage: " file size in `BYTES`",
				},
				cli.StringFlag{
					Name:  "dimensions",
					Usage: " dimensions `WxH`",
				},
				cli.Float64Flag{
					Name:  "duration",
					Usage: " duration in `SECONDS`",
				},
				cli.StringSliceFlag{
					Name:  "tag",
					Usage: " replace the additional tags, `TAG` may be repeated",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "revoke",
			Usage:     "permanently revoke an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*asset `ID`",
				},
				cli.StringFlag{
					Name:  "caller, a",
					Usage: "*calling `ACCOUNT`",
				},
			},
			Action: runRevoke,
		},
		{
			Name:      "provenance",
			Usage:     "list the chain of custody of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Usage: "*asset `ID`",
				},
			},
			Action: runProvenance,
		},
		{
			Name:   "info",
			Usage:  "display registryd status",
			Action: runInfo,
		},
		{
			Name:      "fingerprint",
			Usage:     "fingerprint a file (result is suitable as a content hash)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Usage: "*`FILE` of data to fingerprint",
				},
			},
			Action: runFingerprint,
		},
		{
			Name:  "version",
			Usage: "display registry-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		verbose := c.GlobalBool("verbose")
		connect := c.GlobalString("connect")

		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "connect: %q\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
