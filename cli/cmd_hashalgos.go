package main

import (
	"encoding/json"
	"fmt"

	"github.com/meisterluk/digests-go/internals"
	"gopkg.in/alecthomas/kingpin.v2"
)

// cliHashAlgosCommand defines the CLI arguments as kingpin requires them
type cliHashAlgosCommand struct {
	cmd          *kingpin.CmdClause
	CheckSupport *string
	ConfigOutput *bool
	JSONOutput   *bool
}

func newCLIHashAlgosCommand(app *kingpin.Application) *cliHashAlgosCommand {
	c := new(cliHashAlgosCommand)
	c.cmd = app.Command("hashalgos", "List supported hash algorithms.")

	c.CheckSupport = c.cmd.Flag("check-support", "exit code 1 indicates that the given hashalgo is unsupported").String()
	c.ConfigOutput = c.cmd.Flag("config", "only prints the configuration and terminates").Bool()
	c.JSONOutput = c.cmd.Flag("json", "return output as JSON, not as plain text").Bool()

	return c
}

func (c *cliHashAlgosCommand) Validate() (*HashAlgosCommand, error) {
	// migrate cliHashAlgosCommand to HashAlgosCommand
	cmd := new(HashAlgosCommand)
	cmd.CheckSupport = *c.CheckSupport
	cmd.ConfigOutput = *c.ConfigOutput
	cmd.JSONOutput = *c.JSONOutput

	// handle environment variables
	envJSON, errJSON := envToBool("DIGESTS_JSON")
	if errJSON == nil {
		cmd.JSONOutput = envJSON
	}

	return cmd, nil
}

// HashAlgosCommand defines the CLI command parameters
type HashAlgosCommand struct {
	CheckSupport string `json:"check-support"`
	ConfigOutput bool   `json:"config"`
	JSONOutput   bool   `json:"json"`
}

// hashAlgoEntry describes one supported algorithm for listing purposes
type hashAlgoEntry struct {
	Name         string `json:"name"`
	BlockSize    int    `json:"block-size"`
	DigestSize   int    `json:"digest-size"`
	SupportsHMAC bool   `json:"supports-hmac"`
}

// Run executes the CLI command hashalgos on the given parameter set,
// writes the result to Output w and error/information messages to log.
// It returns a pair (exit code, error)
func (c *HashAlgosCommand) Run(w Output, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	type dataSet struct {
		CheckSucceeded bool            `json:"check-result"`
		SupHashAlgos   []hashAlgoEntry `json:"supported-hash-algorithms"`
	}

	data := dataSet{
		CheckSucceeded: false,
		SupHashAlgos:   make([]hashAlgoEntry, 0, 20),
	}
	for _, name := range internals.SupportedHashAlgorithms() {
		algo := internals.HashAlgo(name)
		data.SupHashAlgos = append(data.SupHashAlgos, hashAlgoEntry{
			Name:         name,
			BlockSize:    algo.BlockSize(),
			DigestSize:   algo.DigestSize(),
			SupportsHMAC: algo.SupportsHMAC(),
		})
		if c.CheckSupport != "" && name == c.CheckSupport {
			data.CheckSucceeded = true
		}
	}

	if c.JSONOutput {
		b, err := json.Marshal(&data)
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		for _, entry := range data.SupHashAlgos {
			hmacNote := ``
			if entry.SupportsHMAC {
				hmacNote = ` hmac`
			}
			w.Printfln(`%-12s block=%-4d digest=%-3d%s`, entry.Name, entry.BlockSize, entry.DigestSize, hmacNote)
		}
	}

	if c.CheckSupport != "" && !data.CheckSucceeded {
		return 1, nil
	}
	return 0, nil
}
